// Package core implements the SimpleLines grid/piece engine: the piece
// geometry table, live pieces, the occupancy grid with its block arena,
// and the placement resolver. It has no knowledge of timing or input.
package core

import (
	"fmt"
	"strings"

	platformcore "github.com/vovakirdan/simplelines/internal/core"
)

// Point is a grid coordinate; row 0 is the bottom of the board.
type Point = platformcore.Point

// Pt is a convenience constructor for Point.
func Pt(col, row int) Point { return platformcore.Pt(col, row) }

// CellsPerPiece is the number of cells in every piece.
const CellsPerPiece = 4

// ShapeKind identifies one of the seven tetromino shapes.
type ShapeKind uint8

const (
	ShapeI ShapeKind = iota // line
	ShapeJ                  // backward L
	ShapeL                  // forward L
	ShapeO                  // square
	ShapeS                  // backward Z
	ShapeT                  // stumpy T
	ShapeZ                  // forward Z

	ShapeCount = 7
)

// AllShapes lists every shape kind in table order.
func AllShapes() []ShapeKind {
	return []ShapeKind{ShapeI, ShapeJ, ShapeL, ShapeO, ShapeS, ShapeT, ShapeZ}
}

// String returns the single-letter shape name.
func (k ShapeKind) String() string {
	if int(k) >= ShapeCount {
		return "?"
	}
	return "IJLOSTZ"[k : k+1]
}

// Color returns the display color of blocks of this shape.
func (k ShapeKind) Color() platformcore.Color {
	switch k {
	case ShapeI:
		return platformcore.ColorOrange
	case ShapeJ:
		return platformcore.ColorRed
	case ShapeL:
		return platformcore.ColorCyan
	case ShapeO:
		return platformcore.ColorGreen
	case ShapeS:
		return platformcore.ColorMagenta
	case ShapeT:
		return platformcore.ColorBlue
	case ShapeZ:
		return platformcore.ColorYellow
	default:
		return platformcore.ColorDefault
	}
}

// ParseShapeKind parses a shape letter (case-insensitive).
func ParseShapeKind(s string) (ShapeKind, error) {
	idx := strings.Index("IJLOSTZ", strings.ToUpper(s))
	if len(s) != 1 || idx < 0 {
		return 0, fmt.Errorf("unknown shape %q", s)
	}
	return ShapeKind(idx), nil
}

// Rotation is a quarter-turn rotation state.
type Rotation uint8

const (
	RotateNone Rotation = iota
	Rotate90
	Rotate180
	Rotate270

	RotationCount = 4
)

// Next returns the following rotation state: None → 90 → 180 → 270 → None.
func (r Rotation) Next() Rotation {
	return (r + 1) % RotationCount
}

// String returns the rotation in degrees.
func (r Rotation) String() string {
	switch r {
	case RotateNone:
		return "0"
	case Rotate90:
		return "90"
	case Rotate180:
		return "180"
	case Rotate270:
		return "270"
	default:
		return "?"
	}
}

// shapeTable holds the canonical offsets of every (kind, rotation) pair,
// expressed from anchor 0. Cell 0 is always the origin.
var shapeTable = [ShapeCount][RotationCount][CellsPerPiece]Point{
	ShapeI: {
		RotateNone: {{0, 0}, {0, -1}, {0, 1}, {0, 2}},
		Rotate90:   {{0, 0}, {-1, 0}, {1, 0}, {2, 0}},
		Rotate180:  {{0, 0}, {0, -1}, {0, 1}, {0, 2}},
		Rotate270:  {{0, 0}, {-1, 0}, {1, 0}, {2, 0}},
	},
	ShapeJ: {
		RotateNone: {{0, 0}, {0, -1}, {0, 1}, {-1, -1}},
		Rotate90:   {{0, 0}, {-1, 0}, {-1, 1}, {1, 0}},
		Rotate180:  {{0, 0}, {0, -1}, {0, 1}, {1, 1}},
		Rotate270:  {{0, 0}, {-1, 0}, {1, -1}, {1, 0}},
	},
	ShapeL: {
		RotateNone: {{0, 0}, {0, -1}, {0, 1}, {1, -1}},
		Rotate90:   {{0, 0}, {-1, -1}, {-1, 0}, {1, 0}},
		Rotate180:  {{0, 0}, {0, -1}, {0, 1}, {-1, 1}},
		Rotate270:  {{0, 0}, {-1, 0}, {1, 0}, {1, 1}},
	},
	ShapeO: {
		RotateNone: {{0, 0}, {0, 1}, {1, 0}, {1, 1}},
		Rotate90:   {{0, 0}, {0, 1}, {1, 0}, {1, 1}},
		Rotate180:  {{0, 0}, {0, 1}, {1, 0}, {1, 1}},
		Rotate270:  {{0, 0}, {0, 1}, {1, 0}, {1, 1}},
	},
	ShapeS: {
		RotateNone: {{0, 0}, {0, 1}, {-1, 0}, {1, 1}},
		Rotate90:   {{0, 0}, {0, 1}, {1, -1}, {1, 0}},
		Rotate180:  {{0, 0}, {0, 1}, {-1, 0}, {1, 1}},
		Rotate270:  {{0, 0}, {0, 1}, {1, -1}, {1, 0}},
	},
	ShapeT: {
		RotateNone: {{0, 0}, {0, 1}, {-1, 1}, {1, 1}},
		Rotate90:   {{0, 0}, {1, -1}, {1, 0}, {1, 1}},
		Rotate180:  {{0, 0}, {0, 1}, {-1, 0}, {1, 0}},
		Rotate270:  {{0, 0}, {0, -1}, {0, 1}, {1, 0}},
	},
	ShapeZ: {
		RotateNone: {{0, 0}, {0, 1}, {-1, 1}, {1, 0}},
		Rotate90:   {{0, 0}, {0, -1}, {1, 0}, {1, 1}},
		Rotate180:  {{0, 0}, {0, 1}, {-1, 1}, {1, 0}},
		Rotate270:  {{0, 0}, {0, -1}, {1, 0}, {1, 1}},
	},
}

// Offsets returns the four cell offsets of (kind, rot) relative to the given
// anchor cell. Anchor 0 is the canonical table entry; anchor k re-expresses
// the same cells relative to cell k, so entry k is always the origin.
func Offsets(kind ShapeKind, rot Rotation, anchor int) ([CellsPerPiece]Point, error) {
	var out [CellsPerPiece]Point
	if int(kind) >= ShapeCount || int(rot) >= RotationCount {
		return out, fmt.Errorf("offsets %v/%v: unknown shape", kind, rot)
	}
	if anchor < 0 || anchor >= CellsPerPiece {
		return out, fmt.Errorf("offsets %v/%v anchor %d: %w", kind, rot, anchor, ErrInvalidAnchor)
	}
	return reindex(shapeTable[kind][rot], anchor), nil
}

// reindex re-expresses cells relative to cells[anchor].
func reindex(cells [CellsPerPiece]Point, anchor int) [CellsPerPiece]Point {
	var out [CellsPerPiece]Point
	origin := cells[anchor]
	for i, c := range cells {
		out[i] = c.Sub(origin)
	}
	return out
}
