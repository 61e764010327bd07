package chesscore

import (
	"fmt"
	"slices"

	"golang.org/x/exp/maps"
)

// A Square addresses one of the 64 board cells. File and Rank both range
// over 0..7; file 0 is the a-file and rank 0 is White's back rank.
type Square struct {
	File int
	Rank int
}

// ParseSquare decodes an algebraic square name such as "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return Square{}, fmt.Errorf("%w: %q", ErrMalformedSquare, s)
	}
	file := int(s[0] - 'a')
	rank := int(s[1] - '1')
	sq := Square{File: file, Rank: rank}
	if !sq.onBoard() {
		return Square{}, fmt.Errorf("%w: %q", ErrMalformedSquare, s)
	}
	return sq, nil
}

// String formats the square in algebraic notation.
func (s Square) String() string {
	return string([]byte{byte('a' + s.File), byte('1' + s.Rank)})
}

func (s Square) onBoard() bool {
	return s.File >= 0 && s.File < 8 && s.Rank >= 0 && s.Rank < 8
}

// sortedSquares flattens a square set into rank-major order from a1.
func sortedSquares(set map[Square]struct{}) []Square {
	squares := maps.Keys(set)
	slices.SortFunc(squares, func(a, b Square) int {
		if a.Rank != b.Rank {
			return a.Rank - b.Rank
		}
		return a.File - b.File
	})
	return squares
}
