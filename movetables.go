package chesscore

// A vector is a signed (file, rank) displacement used for elementary
// legality lookups.
type vector struct {
	df, dr int
}

var (
	knightVectors = []vector{
		{1, 2}, {2, 1}, {2, -1}, {1, -2},
		{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
	}
	kingVectors = []vector{
		{-1, 1}, {0, 1}, {1, 1}, {-1, 0},
		{1, 0}, {-1, -1}, {0, -1}, {1, -1},
	}

	rookDirections   = []vector{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	bishopDirections = []vector{{1, 1}, {-1, -1}, {-1, 1}, {1, -1}}

	// whitePawnVectors are the four pawn displacements signed for White;
	// Black uses the rank-negated set. The pawn rules in the legality
	// pipeline further restrict which of these apply in a position.
	whitePawnVectors = []vector{{0, 1}, {0, 2}, {1, 1}, {-1, 1}}
	blackPawnVectors = []vector{{0, -1}, {0, -2}, {-1, -1}, {1, -1}}

	// pieceVectors holds the full elementary displacement set per kind.
	// Sliding pieces get every scalar multiple of their directions up to
	// board bounds, matching how their reach is enumerated elsewhere.
	pieceVectors = map[PieceKind][]vector{
		Knight: knightVectors,
		King:   kingVectors,
		Rook:   slidingVectors(rookDirections),
		Bishop: slidingVectors(bishopDirections),
		Queen:  slidingVectors(append(append([]vector{}, rookDirections...), bishopDirections...)),
	}
)

func slidingVectors(directions []vector) []vector {
	vectors := make([]vector, 0, len(directions)*7)
	for _, d := range directions {
		for scale := 1; scale <= 7; scale++ {
			vectors = append(vectors, vector{df: d.df * scale, dr: d.dr * scale})
		}
	}
	return vectors
}

// elementaryMatch reports whether the displacement appears in the mover's
// elementary movement table. Castling is not an elementary king move.
func elementaryMatch(kind PieceKind, color Color, df, dr int) bool {
	var table []vector
	if kind == Pawn {
		table = whitePawnVectors
		if color == Black {
			table = blackPawnVectors
		}
	} else {
		table = pieceVectors[kind]
	}
	for _, v := range table {
		if v.df == df && v.dr == dr {
			return true
		}
	}
	return false
}

// isSliding reports whether the kind is subject to the obstruction walk.
func isSliding(kind PieceKind) bool {
	return kind == Bishop || kind == Rook || kind == Queen
}
