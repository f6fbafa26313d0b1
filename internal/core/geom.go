// Package core provides fundamental types and utilities shared by the engine
// and the terminal shell. It has no external dependencies (especially no
// Bubble Tea) to keep game logic pure and testable.
package core

import (
	"strconv"
	"strings"
)

// Point is a grid coordinate or offset.
// Col grows to the right, Row grows upward (row 0 is the bottom of the board).
type Point struct {
	Col, Row int
}

// Pt is a convenience constructor for Point.
func Pt(col, row int) Point {
	return Point{Col: col, Row: row}
}

// Add returns p offset by d.
func (p Point) Add(d Point) Point {
	return Point{Col: p.Col + d.Col, Row: p.Row + d.Row}
}

// Sub returns the offset from o to p.
func (p Point) Sub(o Point) Point {
	return Point{Col: p.Col - o.Col, Row: p.Row - o.Row}
}

// String returns a "(col,row)" representation.
func (p Point) String() string {
	var b strings.Builder
	b.WriteRune('(')
	b.WriteString(strconv.Itoa(p.Col))
	b.WriteRune(',')
	b.WriteString(strconv.Itoa(p.Row))
	b.WriteRune(')')
	return b.String()
}

// Rect represents an axis-aligned area on the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
