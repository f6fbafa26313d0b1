package core

import (
	"fmt"

	platformcore "github.com/vovakirdan/simplelines/internal/core"
)

// Random is the subset of *rand.Rand used by the engine.
type Random interface {
	Intn(n int) int
}

// Piece is a live piece: a shape in one rotation state with its offsets
// precomputed from all four anchors. Pieces are immutable values; rotating
// yields a new piece.
type Piece struct {
	kind     ShapeKind
	rotation Rotation
	anchors  [CellsPerPiece][CellsPerPiece]Point
}

// NewPiece builds a piece of the given kind and rotation.
func NewPiece(kind ShapeKind, rot Rotation) Piece {
	p := Piece{kind: kind, rotation: rot % RotationCount}
	base := shapeTable[kind%ShapeCount][p.rotation]
	for a := range CellsPerPiece {
		p.anchors[a] = reindex(base, a)
	}
	return p
}

// RandomPiece builds a piece of a random kind in the unrotated state.
func RandomPiece(rng Random) Piece {
	return NewPiece(ShapeKind(rng.Intn(ShapeCount)), RotateNone)
}

// Kind returns the piece shape.
func (p Piece) Kind() ShapeKind { return p.kind }

// Rotation returns the rotation state.
func (p Piece) Rotation() Rotation { return p.rotation }

// Color returns the block color for this piece.
func (p Piece) Color() platformcore.Color { return p.kind.Color() }

// Rotated returns the same shape in the next rotation state.
func (p Piece) Rotated() Piece {
	return NewPiece(p.kind, p.rotation.Next())
}

// Cells returns the offsets relative to the primary anchor.
func (p Piece) Cells() [CellsPerPiece]Point {
	return p.anchors[0]
}

// Offsets returns the cached offsets relative to the given anchor.
func (p Piece) Offsets(anchor int) ([CellsPerPiece]Point, error) {
	if anchor < 0 || anchor >= CellsPerPiece {
		return [CellsPerPiece]Point{}, fmt.Errorf("piece %v anchor %d: %w", p, anchor, ErrInvalidAnchor)
	}
	return p.anchors[anchor], nil
}

// At returns the absolute cells of the piece with the given anchor placed on ref.
// anchor must be in 0..3.
func (p Piece) At(ref Point, anchor int) [CellsPerPiece]Point {
	var out [CellsPerPiece]Point
	for i, off := range p.anchors[anchor] {
		out[i] = ref.Add(off)
	}
	return out
}

// Bounds returns the minimum and maximum offsets of the primary anchor cells.
func (p Piece) Bounds() (lo, hi Point) {
	lo, hi = p.anchors[0][0], p.anchors[0][0]
	for _, c := range p.anchors[0][1:] {
		lo.Col = min(lo.Col, c.Col)
		lo.Row = min(lo.Row, c.Row)
		hi.Col = max(hi.Col, c.Col)
		hi.Row = max(hi.Row, c.Row)
	}
	return lo, hi
}

// String returns e.g. "T@90".
func (p Piece) String() string {
	return fmt.Sprintf("%v@%v", p.kind, p.rotation)
}
