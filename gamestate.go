package chesscore

import (
	"fmt"
	"strings"
)

// CastlingRights is a set of per-color, per-side castling availability flags.
type CastlingRights uint8

const (
	CastleWhiteKingside CastlingRights = 1 << iota
	CastleWhiteQueenside
	CastleBlackKingside
	CastleBlackQueenside

	castleAll = CastleWhiteKingside | CastleWhiteQueenside | CastleBlackKingside | CastleBlackQueenside
)

// Has reports whether every right in rights is still held.
func (r CastlingRights) Has(rights CastlingRights) bool {
	return r&rights == rights
}

// String formats the rights in FEN form, "-" when none remain.
func (r CastlingRights) String() string {
	var sb strings.Builder
	if r.Has(CastleWhiteKingside) {
		sb.WriteByte('K')
	}
	if r.Has(CastleWhiteQueenside) {
		sb.WriteByte('Q')
	}
	if r.Has(CastleBlackKingside) {
		sb.WriteByte('k')
	}
	if r.Has(CastleBlackQueenside) {
		sb.WriteByte('q')
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

func parseCastlingRights(s string) (CastlingRights, error) {
	if s == "-" {
		return 0, nil
	}
	var r CastlingRights
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'K':
			r |= CastleWhiteKingside
		case 'Q':
			r |= CastleWhiteQueenside
		case 'k':
			r |= CastleBlackKingside
		case 'q':
			r |= CastleBlackQueenside
		default:
			return 0, fmt.Errorf("chess: invalid castling rights %q", s)
		}
	}
	return r, nil
}

// A GameState is the immutable FEN-equivalent record of a position: the
// serialized arrangement plus side to move, castling rights, en-passant
// target and move counters. Every transition returns a new value; old
// values stay valid and form the undo history.
type GameState struct {
	arrangement    string
	sideToMove     Color
	castling       CastlingRights
	enPassant      Square
	hasEnPassant   bool
	halfmoveClock  uint
	fullmoveNumber uint
}

// Arrangement returns the serialized rank-by-rank piece string.
func (s GameState) Arrangement() string { return s.arrangement }

// SideToMove returns the color whose turn it is.
func (s GameState) SideToMove() Color { return s.sideToMove }

// Castling returns the castling rights still held.
func (s GameState) Castling() CastlingRights { return s.castling }

// EnPassantTarget returns the square a pawn skipped on its most recent
// double step. The second return value is false when no target is set.
func (s GameState) EnPassantTarget() (Square, bool) {
	return s.enPassant, s.hasEnPassant
}

// HalfmoveClock returns the halfmove counter. The engine exposes it but
// does not adjudicate fifty-move terminations.
func (s GameState) HalfmoveClock() uint { return s.halfmoveClock }

// FullmoveNumber returns the fullmove counter, starting at 1.
func (s GameState) FullmoveNumber() uint { return s.fullmoveNumber }

func (s GameState) withArrangement(arrangement string) GameState {
	s.arrangement = arrangement
	return s
}

func (s GameState) withoutCastlingRights(rights CastlingRights) GameState {
	s.castling &^= rights
	return s
}

func (s GameState) withEnPassantTarget(sq Square) GameState {
	s.enPassant = sq
	s.hasEnPassant = true
	return s
}

func (s GameState) withoutEnPassantTarget() GameState {
	s.enPassant = Square{}
	s.hasEnPassant = false
	return s
}

// advanceTurn flips the side to move and advances the counters. The
// fullmove number grows only after Black has moved.
func (s GameState) advanceTurn() GameState {
	if s.sideToMove == Black {
		s.fullmoveNumber++
	}
	s.sideToMove = s.sideToMove.Other()
	s.halfmoveClock++
	return s
}

// toggleTurnOnly flips the side to move without touching the counters.
// It exists for rollback paths that need to hand the turn back after a
// rejected attempt without advancing the clocks.
func (s GameState) toggleTurnOnly() GameState {
	s.sideToMove = s.sideToMove.Other()
	return s
}
