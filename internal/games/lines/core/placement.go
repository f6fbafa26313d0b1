package core

import "fmt"

// Placement is a resolved landing position for a piece.
type Placement struct {
	Anchor int
	Ref    Point
	Cells  [CellsPerPiece]Point
}

// Resolve finds where piece lands when the pointer is over ref.
//
// Anchors are tried in order 0..3 and the first anchor that yields four
// legal cells wins. For a regular piece the reference cell slides along the
// column between the nearest obstacles below and above the piece and stops at
// the first row where all four cells are in bounds and empty. A bomb ignores
// occupancy and only requires the four cells at ref to be in bounds.
func Resolve(g *Grid, piece Piece, ref Point, bomb bool) (Placement, error) {
	if !g.InBounds(ref) {
		return Placement{}, fmt.Errorf("resolve %v at %v: %w", piece, ref, ErrOutOfBounds)
	}
	for anchor := range CellsPerPiece {
		if bomb {
			cells := piece.At(ref, anchor)
			if allInBounds(g, cells) {
				return Placement{Anchor: anchor, Ref: ref, Cells: cells}, nil
			}
			continue
		}
		if pl, ok := resolveAnchor(g, piece, ref, anchor); ok {
			return pl, nil
		}
	}
	return Placement{}, fmt.Errorf("resolve %v at %v: %w", piece, ref, ErrIllegalPlacement)
}

func resolveAnchor(g *Grid, piece Piece, ref Point, anchor int) (Placement, bool) {
	minRow, maxRow := span(g, piece.At(ref, anchor))
	for row := minRow; row < maxRow; row++ {
		at := Pt(ref.Col, row)
		if g.occupied(at) {
			continue
		}
		cells := piece.At(at, anchor)
		if g.Fits(cells) {
			return Placement{Anchor: anchor, Ref: at, Cells: cells}, true
		}
	}
	return Placement{}, false
}

// span returns the row range the reference cell may slide through: minRow is
// the highest obstacle found scanning down from any in-bounds piece cell and
// maxRow is the lowest obstacle found scanning up.
func span(g *Grid, cells [CellsPerPiece]Point) (minRow, maxRow int) {
	maxRow = g.size
	for _, c := range cells {
		if !g.InBounds(c) {
			continue
		}
		for row := c.Row; row < g.size; row++ {
			if g.occupied(Pt(c.Col, row)) {
				maxRow = min(maxRow, row)
				break
			}
		}
		for row := c.Row; row >= 0; row-- {
			if g.occupied(Pt(c.Col, row)) {
				minRow = max(minRow, row)
				break
			}
		}
	}
	return minRow, maxRow
}

func allInBounds(g *Grid, cells [CellsPerPiece]Point) bool {
	for _, c := range cells {
		if !g.InBounds(c) {
			return false
		}
	}
	return true
}
