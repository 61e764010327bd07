package chesscore

import (
	"fmt"
	"strings"
)

// A Board is an 8x8 mailbox of cells addressed by (rank, file). It stores
// occupancy only; derived state such as attack maps is always recomputed.
type Board struct {
	cells [8][8]Piece // [rank][file]
}

// PieceAt returns the piece occupying sq. The second return value is false
// for an empty cell.
func (b *Board) PieceAt(sq Square) (Piece, bool) {
	p := b.cells[sq.Rank][sq.File]
	return p, !p.isZero()
}

func (b *Board) place(sq Square, p Piece) {
	b.cells[sq.Rank][sq.File] = p
}

// remove empties the cell at sq and returns the previous occupant.
func (b *Board) remove(sq Square) Piece {
	p := b.cells[sq.Rank][sq.File]
	b.cells[sq.Rank][sq.File] = Piece{}
	return p
}

// Clone returns a fully independent copy of the board, used as the shadow
// board when a move's consequences are tested without touching the
// authoritative position.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

// kingSquare locates the king of the given color. The second return value
// is false when no such king is on the board, which only happens for
// hand-built partial positions.
func (b *Board) kingSquare(color Color) (Square, bool) {
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			p := b.cells[rank][file]
			if p.Kind == King && p.Color == color {
				return Square{File: file, Rank: rank}, true
			}
		}
	}
	return Square{}, false
}

// arrangement serializes the occupancy in FEN piece-placement form: ranks
// from 8 down to 1 separated by slashes, digits for runs of empty cells.
func (b *Board) arrangement() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empties := 0
		for file := 0; file < 8; file++ {
			p := b.cells[rank][file]
			if p.isZero() {
				empties++
				continue
			}
			if empties > 0 {
				sb.WriteByte(byte('0' + empties))
				empties = 0
			}
			sb.WriteByte(p.fenLetter())
		}
		if empties > 0 {
			sb.WriteByte(byte('0' + empties))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

// boardFromArrangement rebuilds a board from its serialized arrangement.
func boardFromArrangement(s string) (*Board, error) {
	ranks := strings.Split(s, "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("chess: arrangement needs 8 ranks, got %d", len(ranks))
	}
	b := &Board{}
	for i, row := range ranks {
		rank := 7 - i
		file := 0
		for j := 0; j < len(row); j++ {
			ch := row[j]
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			p, ok := pieceFromFENLetter(ch)
			if !ok || file > 7 {
				return nil, fmt.Errorf("chess: invalid arrangement rank %q", row)
			}
			b.cells[rank][file] = p
			file++
		}
		if file != 8 {
			return nil, fmt.Errorf("chess: arrangement rank %q does not cover 8 files", row)
		}
	}
	return b, nil
}

// Draw returns an ASCII rendering of the board, useful in test output.
func (b *Board) Draw() string {
	var sb strings.Builder
	sb.WriteByte('\n')
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(&sb, " %d ", rank+1)
		for file := 0; file < 8; file++ {
			p := b.cells[rank][file]
			if p.isZero() {
				sb.WriteString(" .")
			} else {
				sb.WriteByte(' ')
				sb.WriteByte(p.fenLetter())
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("    a b c d e f g h\n")
	return sb.String()
}
