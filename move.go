package chesscore

import "fmt"

// A Move is a normalized move request: origin, destination and the
// identity of the mover, resolved from the board at validation time.
// Probing and committing share the same value; whether the resulting
// position is kept is the caller's decision.
type Move struct {
	From  Square
	To    Square
	Kind  PieceKind
	Color Color
}

// deltaFile returns the signed file displacement.
func (m Move) deltaFile() int { return m.To.File - m.From.File }

// deltaRank returns the signed rank displacement.
func (m Move) deltaRank() int { return m.To.Rank - m.From.Rank }

// String formats the move as a 4-character coordinate string.
func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// parseMoveString decodes a 4-character coordinate move such as "e2e4".
func parseMoveString(s string) (from, to Square, err error) {
	if len(s) != 4 {
		return Square{}, Square{}, fmt.Errorf("%w: %q", ErrMalformedMove, s)
	}
	from, err = ParseSquare(s[:2])
	if err != nil {
		return Square{}, Square{}, fmt.Errorf("%w: %q", ErrMalformedMove, s)
	}
	to, err = ParseSquare(s[2:])
	if err != nil {
		return Square{}, Square{}, fmt.Errorf("%w: %q", ErrMalformedMove, s)
	}
	return from, to, nil
}
