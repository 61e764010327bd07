package chesscore

// A GameStatus classifies a position for the side to move.
type GameStatus uint8

const (
	// StatusNormal indicates an ordinary position: the king is safe and
	// at least one legal move exists.
	StatusNormal GameStatus = iota
	// StatusCheck indicates the king is attacked but a legal move exists.
	StatusCheck
	// StatusCheckmate indicates the king is attacked and no legal move
	// exists.
	StatusCheckmate
	// StatusStalemate indicates the king is safe but no legal move exists.
	StatusStalemate
)

// String implements the fmt.Stringer interface.
func (s GameStatus) String() string {
	switch s {
	case StatusCheck:
		return "check"
	case StatusCheckmate:
		return "checkmate"
	case StatusStalemate:
		return "stalemate"
	}
	return "normal"
}

// classify derives the status of the given color's position by combining
// the king-attack scan with a search for any legal move. The move search
// probes every origin/destination pair and short-circuits on the first
// hit; at 64x64 bounded probes this stays cheap enough that nothing
// incremental is warranted.
func classify(board *Board, state GameState, color Color) GameStatus {
	attacked := false
	if kingSq, ok := board.kingSquare(color); ok {
		attacked = board.isSquareAttacked(kingSq, color.Other())
	}
	movable := hasAnyLegalMove(board, state, color)
	switch {
	case attacked && !movable:
		return StatusCheckmate
	case !attacked && !movable:
		return StatusStalemate
	case attacked:
		return StatusCheck
	default:
		return StatusNormal
	}
}

// hasAnyLegalMove reports whether the given color has at least one legal
// move in the position. All probes run against the caller's board and
// state as pure evaluations.
func hasAnyLegalMove(board *Board, state GameState, color Color) bool {
	if state.sideToMove != color {
		state = state.toggleTurnOnly()
	}
	for fromRank := 0; fromRank < 8; fromRank++ {
		for fromFile := 0; fromFile < 8; fromFile++ {
			p := board.cells[fromRank][fromFile]
			if p.isZero() || p.Color != color {
				continue
			}
			from := Square{File: fromFile, Rank: fromRank}
			for toRank := 0; toRank < 8; toRank++ {
				for toFile := 0; toFile < 8; toFile++ {
					to := Square{File: toFile, Rank: toRank}
					if _, _, _, err := tryMove(board, state, from, to); err == nil {
						return true
					}
				}
			}
		}
	}
	return false
}
