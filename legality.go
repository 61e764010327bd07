package chesscore

// A PendingPromotion marks a pawn that reached the last rank and awaits
// its replacement piece. It is explicit state on the game, never encoded
// in a piece kind.
type PendingPromotion struct {
	Color  Color
	Square Square
}

// tryMove validates the move from->to for the side to move in state and,
// when legal, returns the resulting board, game record and any pending
// promotion. The inputs are never mutated: probing and committing both go
// through here, and the caller decides whether to keep the returned
// values. On rejection the error wraps ErrIllegalMove with the reason.
func tryMove(board *Board, state GameState, from, to Square) (*Board, GameState, *PendingPromotion, error) {
	mover, ok := board.PieceAt(from)
	if !ok {
		return nil, GameState{}, nil, illegalf("no piece on %s", from)
	}
	if mover.Color != state.sideToMove {
		return nil, GameState{}, nil, illegalf("it is not %s's turn", mover.Color)
	}
	if target, occupied := board.PieceAt(to); occupied && target.Color == mover.Color {
		return nil, GameState{}, nil, illegalf("%s is occupied by a friendly piece", to)
	}

	m := Move{From: from, To: to, Kind: mover.Kind, Color: mover.Color}

	// Castling bypasses the generic vector, obstruction and pawn rules.
	if m.Kind == King && abs(m.deltaFile()) == 2 && m.deltaRank() == 0 {
		return tryCastle(board, state, m)
	}

	if !elementaryMatch(m.Kind, m.Color, m.deltaFile(), m.deltaRank()) {
		return nil, GameState{}, nil, illegalf("a %s does not move from %s to %s", m.Kind, m.From, m.To)
	}
	if isSliding(m.Kind) && !board.pathClear(m.From, m.To) {
		return nil, GameState{}, nil, illegalf("the path from %s to %s is obstructed", m.From, m.To)
	}

	next := board.Clone()
	nextState := state.withoutEnPassantTarget()
	var promotion *PendingPromotion

	if m.Kind == Pawn {
		epTarget, err := applyPawnRules(next, state, m)
		if err != nil {
			return nil, GameState{}, nil, err
		}
		if epTarget != nil {
			nextState = nextState.withEnPassantTarget(*epTarget)
		}
		if m.To.Rank == lastRank(m.Color) {
			promotion = &PendingPromotion{Color: m.Color, Square: m.To}
		}
	}

	next.place(m.To, next.remove(m.From))
	nextState = nextState.withoutCastlingRights(strippedRights(mover, m.From))

	// A legal move may never leave the mover's own king attacked.
	if kingSq, found := next.kingSquare(m.Color); found {
		if next.isSquareAttacked(kingSq, m.Color.Other()) {
			return nil, GameState{}, nil, illegalf("%s's king would be left in check", m.Color)
		}
	}

	nextState = nextState.withArrangement(next.arrangement()).advanceTurn()
	return next, nextState, promotion, nil
}

// applyPawnRules validates the pawn-specific constraints and performs the
// en-passant removal on the scratch board. It returns the en-passant
// target created by a double step, if any.
func applyPawnRules(next *Board, state GameState, m Move) (*Square, error) {
	forward := 1
	startRank := 1
	if m.Color == Black {
		forward = -1
		startRank = 6
	}
	_, destOccupied := next.PieceAt(m.To)

	switch {
	case m.deltaFile() == 0 && m.deltaRank() == forward:
		if destOccupied {
			return nil, illegalf("pawn on %s is blocked", m.From)
		}
		return nil, nil

	case m.deltaFile() == 0 && m.deltaRank() == 2*forward:
		if m.From.Rank != startRank {
			return nil, illegalf("pawn on %s may only double-step from its starting rank", m.From)
		}
		mid := Square{File: m.From.File, Rank: m.From.Rank + forward}
		if _, occupied := next.PieceAt(mid); occupied || destOccupied {
			return nil, illegalf("pawn on %s is blocked", m.From)
		}
		return &mid, nil

	default: // diagonal step, the only remaining elementary pawn vector
		if destOccupied {
			return nil, nil
		}
		if target, ok := state.EnPassantTarget(); ok && target == m.To {
			// The captured pawn sits beside the origin, not on the
			// destination square.
			next.remove(Square{File: m.To.File, Rank: m.From.Rank})
			return nil, nil
		}
		return nil, illegalf("pawn on %s has nothing to capture on %s", m.From, m.To)
	}
}

// tryCastle validates a castling move and, when legal, returns the
// position with both king and rook relocated. Both castling rights for
// the color are stripped on success.
func tryCastle(board *Board, state GameState, m Move) (*Board, GameState, *PendingPromotion, error) {
	kingside := m.deltaFile() > 0
	right := CastleWhiteKingside
	switch {
	case m.Color == White && !kingside:
		right = CastleWhiteQueenside
	case m.Color == Black && kingside:
		right = CastleBlackKingside
	case m.Color == Black && !kingside:
		right = CastleBlackQueenside
	}
	if !state.castling.Has(right) {
		return nil, GameState{}, nil, illegalf("%s no longer holds that castling right", m.Color)
	}

	rank := m.From.Rank
	rookFrom := Square{File: 0, Rank: rank}
	rookTo := Square{File: 3, Rank: rank}
	if kingside {
		rookFrom = Square{File: 7, Rank: rank}
		rookTo = Square{File: 5, Rank: rank}
	}
	if rook, ok := board.PieceAt(rookFrom); !ok || rook.Kind != Rook || rook.Color != m.Color {
		return nil, GameState{}, nil, illegalf("no castling rook on %s", rookFrom)
	}

	step := 1
	if !kingside {
		step = -1
	}
	for file := m.From.File + step; file != rookFrom.File; file += step {
		if _, occupied := board.PieceAt(Square{File: file, Rank: rank}); occupied {
			return nil, GameState{}, nil, illegalf("castling path through %s is obstructed", Square{File: file, Rank: rank})
		}
	}

	// The king's origin, transit and destination squares must all be safe.
	enemy := m.Color.Other()
	for _, sq := range []Square{m.From, {File: m.From.File + step, Rank: rank}, m.To} {
		if board.isSquareAttacked(sq, enemy) {
			return nil, GameState{}, nil, illegalf("castling through attacked square %s", sq)
		}
	}

	next := board.Clone()
	next.place(m.To, next.remove(m.From))
	next.place(rookTo, next.remove(rookFrom))

	pair := CastleWhiteKingside | CastleWhiteQueenside
	if m.Color == Black {
		pair = CastleBlackKingside | CastleBlackQueenside
	}
	nextState := state.withoutEnPassantTarget().
		withoutCastlingRights(pair).
		withArrangement(next.arrangement()).
		advanceTurn()
	return next, nextState, nil, nil
}

// strippedRights returns the castling rights lost by moving the given
// piece from its square: any king move loses both rights for the color,
// a rook move from a home corner loses that corner's right.
func strippedRights(mover Piece, from Square) CastlingRights {
	switch mover.Kind {
	case King:
		if mover.Color == White {
			return CastleWhiteKingside | CastleWhiteQueenside
		}
		return CastleBlackKingside | CastleBlackQueenside
	case Rook:
		switch from {
		case Square{File: 0, Rank: 0}:
			return CastleWhiteQueenside
		case Square{File: 7, Rank: 0}:
			return CastleWhiteKingside
		case Square{File: 0, Rank: 7}:
			return CastleBlackQueenside
		case Square{File: 7, Rank: 7}:
			return CastleBlackKingside
		}
	}
	return 0
}

// isSquareAttacked reports whether any piece of the given color attacks
// the target square. Attack detection reuses only the elementary vector,
// obstruction and pawn-capture-pattern rules; castling, en passant and
// check safety never apply here, which keeps the recursion between
// legality and check detection terminating.
func (b *Board) isSquareAttacked(target Square, by Color) bool {
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			p := b.cells[rank][file]
			if p.isZero() || p.Color != by {
				continue
			}
			from := Square{File: file, Rank: rank}
			df := target.File - from.File
			dr := target.Rank - from.Rank
			if p.Kind == Pawn {
				forward := 1
				if by == Black {
					forward = -1
				}
				if abs(df) == 1 && dr == forward {
					return true
				}
				continue
			}
			if !elementaryMatch(p.Kind, by, df, dr) {
				continue
			}
			if isSliding(p.Kind) && !b.pathClear(from, target) {
				continue
			}
			return true
		}
	}
	return false
}

// pathClear walks every square strictly between from and to and reports
// whether all of them are empty. It assumes the two squares share a rank,
// file or diagonal.
func (b *Board) pathClear(from, to Square) bool {
	df := sign(to.File - from.File)
	dr := sign(to.Rank - from.Rank)
	file, rank := from.File+df, from.Rank+dr
	for file != to.File || rank != to.Rank {
		if !b.cells[rank][file].isZero() {
			return false
		}
		file += df
		rank += dr
	}
	return true
}

func lastRank(color Color) int {
	if color == White {
		return 7
	}
	return 0
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}
