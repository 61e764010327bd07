package chesscore

// A Color is the side a piece belongs to.
type Color int8

const (
	// NoColor is the zero value, held only by empty cells.
	NoColor Color = iota
	// White moves first.
	White
	// Black moves second.
	Black
)

// Other returns the opposing color. NoColor is its own opposite.
func (c Color) Other() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	}
	return NoColor
}

// String implements the fmt.Stringer interface.
func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	}
	return "no color"
}

// tag returns the single-letter presentation prefix used in snapshots.
func (c Color) tag() string {
	if c == White {
		return "w"
	}
	return "b"
}

// A PieceKind is the type of a chess piece. It carries no status or
// promotion overlays; pending promotion and game status are tracked as
// explicit state elsewhere.
type PieceKind int8

const (
	NoPiece PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

var kindLetters = map[PieceKind]byte{
	Pawn:   'P',
	Knight: 'N',
	Bishop: 'B',
	Rook:   'R',
	Queen:  'Q',
	King:   'K',
}

// letter returns the uppercase English piece letter.
func (k PieceKind) letter() byte {
	if l, ok := kindLetters[k]; ok {
		return l
	}
	return '?'
}

// String implements the fmt.Stringer interface.
func (k PieceKind) String() string {
	switch k {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	}
	return "no piece"
}

// promotionKind maps a single promotion letter to a piece kind. Any value
// outside the promotable set resolves to Queen.
func promotionKind(letter string) PieceKind {
	switch letter {
	case "N", "n":
		return Knight
	case "B", "b":
		return Bishop
	case "R", "r":
		return Rook
	default:
		return Queen
	}
}

// A Piece is an immutable kind/color pair. Pieces hold no positional or
// board awareness.
type Piece struct {
	Kind  PieceKind
	Color Color
}

// isZero reports whether p is the empty-cell value.
func (p Piece) isZero() bool {
	return p.Kind == NoPiece
}

// fenLetter returns the FEN arrangement letter: uppercase for white,
// lowercase for black.
func (p Piece) fenLetter() byte {
	l := p.Kind.letter()
	if p.Color == Black {
		return l + ('a' - 'A')
	}
	return l
}

// pieceFromFENLetter decodes a FEN arrangement letter. The second return
// value is false for characters outside the twelve piece letters.
func pieceFromFENLetter(ch byte) (Piece, bool) {
	color := White
	if ch >= 'a' && ch <= 'z' {
		color = Black
		ch -= 'a' - 'A'
	}
	for kind, letter := range kindLetters {
		if letter == ch {
			return Piece{Kind: kind, Color: color}, true
		}
	}
	return Piece{}, false
}
