/*
Package chesscore implements a chess rules engine: given a position and a
proposed move it decides full legality (piece movement, obstruction, check
avoidance, castling, en passant, promotion, turn order) and, for legal
moves, produces the resulting position plus its derived status (normal,
check, checkmate, stalemate).
Example usage:

	// Create new game
	game := NewGame()

	// Make moves
	status, err := game.ApplyMove("e2e4")

	// Check game status
	if status == StatusCheckmate {
		fmt.Printf("%s is mated\n", game.Turn())
	}

The engine does not search for moves or evaluate positions; it is the
rule-checking core an external interface drives with coordinate move
strings and reads back through snapshots.
*/
package chesscore

import "fmt"

// A Game owns the authoritative board, the current game record, the undo
// history and any pending promotion. It is not safe for concurrent use;
// a single caller drives it to completion one operation at a time.
type Game struct {
	board     *Board
	state     GameState
	history   []GameState
	status    GameStatus
	promotion *PendingPromotion
}

// FEN takes a seed string and returns a function that resets the game to
// that position. The returned function is designed to be used in the
// NewGame constructor. An error is returned if the seed cannot be parsed.
func FEN(seed string) (func(*Game), error) {
	board, state, err := decodeSeed(seed)
	if err != nil {
		return nil, err
	}
	return func(g *Game) {
		g.board = board
		g.state = state
		g.history = nil
		g.promotion = pendingOnBoard(board)
		g.status = classify(board, state, state.sideToMove)
	}, nil
}

// NewGame returns a new game in the standard starting position.
// Optional functions can be provided to configure the initial game state.
//
// Example:
//
//	// Standard game
//	game := NewGame()
//
//	// Game from a seed
//	seed, _ := FEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR_w_KQkq_-_0_1")
//	game := NewGame(seed)
func NewGame(options ...func(*Game)) *Game {
	board, state, err := decodeSeed(StartingSeed)
	if err != nil {
		panic("chess: invalid starting seed: " + err.Error())
	}
	g := &Game{
		board:  board,
		state:  state,
		status: StatusNormal,
	}
	for _, f := range options {
		if f != nil {
			f(g)
		}
	}
	return g
}

// ApplyMove validates and commits a 4-character coordinate move such as
// "e2e4". On success it returns the status of the resulting position for
// the new side to move. On any failure the board and game record are left
// untouched and the error reports the reason: ErrMalformedMove for bad
// input, ErrIllegalMove (wrapped with the rule that failed) otherwise.
func (g *Game) ApplyMove(moveStr string) (GameStatus, error) {
	from, to, err := parseMoveString(moveStr)
	if err != nil {
		return g.status, err
	}
	board, state, promotion, err := tryMove(g.board, g.state, from, to)
	if err != nil {
		return g.status, err
	}
	g.history = append(g.history, g.state)
	g.board = board
	g.state = state
	g.promotion = promotion
	if g.promotion == nil {
		// An earlier arrival may still be unresolved; it survives until
		// the pawn is replaced or captured.
		g.promotion = pendingOnBoard(g.board)
	}
	g.status = classify(g.board, g.state, g.state.sideToMove)
	return g.status, nil
}

// Undo pops the most recent game record off the history, restores it and
// re-derives the board from its arrangement string. It returns
// ErrEmptyHistory, leaving the game untouched, when there is nothing to
// undo.
func (g *Game) Undo() error {
	if len(g.history) == 0 {
		return ErrEmptyHistory
	}
	prev := g.history[len(g.history)-1]
	board, err := boardFromArrangement(prev.arrangement)
	if err != nil {
		return fmt.Errorf("chess: corrupt history entry: %w", err)
	}
	g.history = g.history[:len(g.history)-1]
	g.board = board
	g.state = prev
	g.promotion = pendingOnBoard(g.board)
	g.status = classify(g.board, g.state, g.state.sideToMove)
	return nil
}

// Promote resolves a pending promotion by replacing the promoted pawn
// with the piece named by letter. Letters outside the promotable set
// (and the empty string) resolve to a Queen. It returns
// ErrNoPendingPromotion when no pawn awaits promotion.
func (g *Game) Promote(letter string) error {
	if g.promotion == nil {
		return ErrNoPendingPromotion
	}
	g.board.place(g.promotion.Square, Piece{
		Kind:  promotionKind(letter),
		Color: g.promotion.Color,
	})
	g.state = g.state.withArrangement(g.board.arrangement())
	g.promotion = pendingOnBoard(g.board)
	g.status = classify(g.board, g.state, g.state.sideToMove)
	return nil
}

// pendingOnBoard finds a pawn stranded on its last rank. Pawns only reach
// the last rank through promotion, so any such pawn is an unresolved
// promotion regardless of how many moves ago it arrived.
func pendingOnBoard(board *Board) *PendingPromotion {
	for file := 0; file < 8; file++ {
		if p := board.cells[7][file]; p.Kind == Pawn && p.Color == White {
			return &PendingPromotion{Color: White, Square: Square{File: file, Rank: 7}}
		}
		if p := board.cells[0][file]; p.Kind == Pawn && p.Color == Black {
			return &PendingPromotion{Color: Black, Square: Square{File: file, Rank: 0}}
		}
	}
	return nil
}

// ValidDestinations returns every square legally reachable from the named
// square in the current position, for callers highlighting moves. The
// result is ordered rank-major from a1.
func (g *Game) ValidDestinations(squareStr string) ([]Square, error) {
	from, err := ParseSquare(squareStr)
	if err != nil {
		return nil, err
	}
	return sortedSquares(g.destinationSet(from)), nil
}

func (g *Game) destinationSet(from Square) map[Square]struct{} {
	destinations := make(map[Square]struct{})
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			to := Square{File: file, Rank: rank}
			if _, _, _, err := tryMove(g.board, g.state, from, to); err == nil {
				destinations[to] = struct{}{}
			}
		}
	}
	return destinations
}

// SquareIsEmpty reports whether the named square holds no piece. Unknown
// square names count as empty, matching the tolerance callers expect when
// mapping arbitrary input to cells.
func (g *Game) SquareIsEmpty(squareStr string) bool {
	sq, err := ParseSquare(squareStr)
	if err != nil {
		return true
	}
	_, occupied := g.board.PieceAt(sq)
	return !occupied
}

// Snapshot returns the 64-entry presentation array the external renderer
// reads: one entry per square, "" for empty or a two-character
// {color}{pieceLetter} tag. The layout is column-major with rank 8 first
// within each file, matching the original display contract. Game status
// travels through Status, never through marker entries.
func (g *Game) Snapshot() [64]string {
	var out [64]string
	for file := 0; file < 8; file++ {
		for rank := 0; rank < 8; rank++ {
			p := g.board.cells[rank][file]
			if p.isZero() {
				continue
			}
			out[file*8+(7-rank)] = p.Color.tag() + string(p.Kind.letter())
		}
	}
	return out
}

// Status returns the classification of the current position for the side
// to move.
func (g *Game) Status() GameStatus { return g.status }

// Turn returns the side to move.
func (g *Game) Turn() Color { return g.state.sideToMove }

// State returns the current game record.
func (g *Game) State() GameState { return g.state }

// Board returns an independent copy of the authoritative board.
func (g *Game) Board() *Board { return g.board.Clone() }

// PendingPromotion returns the pawn awaiting promotion, if any.
func (g *Game) PendingPromotion() (PendingPromotion, bool) {
	if g.promotion == nil {
		return PendingPromotion{}, false
	}
	return *g.promotion, true
}

// FEN returns the current position in the engine's seed format.
func (g *Game) FEN() string { return encodeSeed(g.state) }

// HalfmoveClock returns the halfmove counter of the current record.
func (g *Game) HalfmoveClock() uint { return g.state.halfmoveClock }

// FullmoveNumber returns the fullmove counter of the current record.
func (g *Game) FullmoveNumber() uint { return g.state.fullmoveNumber }

// MovesPlayed returns how many committed moves can currently be undone.
func (g *Game) MovesPlayed() int { return len(g.history) }
