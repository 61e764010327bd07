package chesscore

import (
	"io"

	svg "github.com/ajstarks/svgo"
)

const (
	svgCell = 45

	lightFill  = "fill:rgb(235,236,208)"
	darkFill   = "fill:rgb(119,149,86)"
	whitePiece = "text-anchor:middle;font-size:28px;font-weight:bold;fill:rgb(248,248,248);stroke:rgb(60,60,60);stroke-width:1"
	blackPiece = "text-anchor:middle;font-size:28px;font-weight:bold;fill:rgb(40,40,40)"
)

// WriteSVG renders the current position to w as an SVG board with the
// white side at the bottom. Pieces are drawn as their English letters.
func (g *Game) WriteSVG(w io.Writer) {
	canvas := svg.New(w)
	canvas.Start(8*svgCell, 8*svgCell)
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			x := file * svgCell
			y := (7 - rank) * svgCell
			fill := darkFill
			if (file+rank)%2 == 1 {
				fill = lightFill
			}
			canvas.Rect(x, y, svgCell, svgCell, fill)
			p := g.board.cells[rank][file]
			if p.isZero() {
				continue
			}
			style := blackPiece
			if p.Color == White {
				style = whitePiece
			}
			canvas.Text(x+svgCell/2, y+svgCell*3/4, string(p.Kind.letter()), style)
		}
	}
	canvas.End()
}
