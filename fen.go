package chesscore

import (
	"fmt"
	"strconv"
	"strings"
)

// StartingSeed is the standard initial position in the engine's seed
// format: the six FEN fields delimited by underscores.
const StartingSeed = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR_w_KQkq_-_0_1"

const seedFieldCount = 6

// decodeSeed parses a seed string into a board and its game record.
// An error is returned if any field cannot be decoded; validation goes no
// further than what seeding a position requires.
func decodeSeed(seed string) (*Board, GameState, error) {
	fields := strings.Split(strings.TrimSpace(seed), "_")
	if len(fields) != seedFieldCount {
		return nil, GameState{}, fmt.Errorf("chess: seed needs %d fields, got %d", seedFieldCount, len(fields))
	}

	board, err := boardFromArrangement(fields[0])
	if err != nil {
		return nil, GameState{}, err
	}

	var turn Color
	switch fields[1] {
	case "w":
		turn = White
	case "b":
		turn = Black
	default:
		return nil, GameState{}, fmt.Errorf("chess: invalid side to move %q", fields[1])
	}

	rights, err := parseCastlingRights(fields[2])
	if err != nil {
		return nil, GameState{}, err
	}

	state := GameState{
		arrangement: fields[0],
		sideToMove:  turn,
		castling:    rights,
	}

	if fields[3] != "-" {
		target, err := ParseSquare(fields[3])
		if err != nil {
			return nil, GameState{}, fmt.Errorf("chess: invalid en-passant target %q", fields[3])
		}
		state = state.withEnPassantTarget(target)
	}

	halfmove, err := strconv.ParseUint(fields[4], 10, 32)
	if err != nil {
		return nil, GameState{}, fmt.Errorf("chess: invalid halfmove clock %q", fields[4])
	}
	fullmove, err := strconv.ParseUint(fields[5], 10, 32)
	if err != nil || fullmove < 1 {
		return nil, GameState{}, fmt.Errorf("chess: invalid fullmove number %q", fields[5])
	}
	state.halfmoveClock = uint(halfmove)
	state.fullmoveNumber = uint(fullmove)

	return board, state, nil
}

// encodeSeed serializes a game record back into the seed format.
func encodeSeed(state GameState) string {
	turn := "w"
	if state.sideToMove == Black {
		turn = "b"
	}
	enPassant := "-"
	if target, ok := state.EnPassantTarget(); ok {
		enPassant = target.String()
	}
	return strings.Join([]string{
		state.arrangement,
		turn,
		state.castling.String(),
		enPassant,
		strconv.FormatUint(uint64(state.halfmoveClock), 10),
		strconv.FormatUint(uint64(state.fullmoveNumber), 10),
	}, "_")
}
