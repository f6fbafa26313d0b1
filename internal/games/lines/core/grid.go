package core

import (
	"fmt"
	"strings"

	"github.com/kamstrup/intmap"

	platformcore "github.com/vovakirdan/simplelines/internal/core"
)

// BlockID identifies a block in the grid arena. Zero means "no block".
type BlockID uint32

// Block is one occupied cell's record.
type Block struct {
	ID    BlockID
	Color platformcore.Color
	Cell  Point
}

// Observer receives block-level notifications as the grid mutates.
type Observer interface {
	BlockPlaced(at Point, color platformcore.Color)
	BlockMoved(from, to Point)
	BlockDestroyed(at Point)
	BlockEjected(at Point)
}

type nopObserver struct{}

func (nopObserver) BlockPlaced(Point, platformcore.Color) {}
func (nopObserver) BlockMoved(Point, Point) {}
func (nopObserver) BlockDestroyed(Point) {}
func (nopObserver) BlockEjected(Point) {}

// Grid is a square occupancy matrix. Each cell is either empty (zero) or
// holds the ID of a block stored in the arena. Row 0 is the bottom row.
type Grid struct {
	size     int
	cells    []BlockID
	blocks   *intmap.Map[BlockID, Block]
	nextID   BlockID
	observer Observer
}

// NewGrid creates an empty size×size grid. obs may be nil.
func NewGrid(size int, obs Observer) (*Grid, error) {
	if size <= 0 {
		return nil, fmt.Errorf("new grid %d: %w", size, ErrInvalidSize)
	}
	g := &Grid{
		size:   size,
		cells:  make([]BlockID, size*size),
		blocks: intmap.New[BlockID, Block](size * size),
	}
	g.SetObserver(obs)
	return g, nil
}

// SetObserver replaces the block observer. nil disables notifications.
func (g *Grid) SetObserver(obs Observer) {
	if obs == nil {
		obs = nopObserver{}
	}
	g.observer = obs
}

// Size returns the grid dimension.
func (g *Grid) Size() int { return g.size }

// InBounds reports whether p lies inside the grid.
func (g *Grid) InBounds(p Point) bool {
	return p.Col >= 0 && p.Col < g.size && p.Row >= 0 && p.Row < g.size
}

// IsOccupied reports whether the cell at p holds a block.
func (g *Grid) IsOccupied(p Point) (bool, error) {
	if !g.InBounds(p) {
		return false, fmt.Errorf("is occupied %v: %w", p, ErrOutOfBounds)
	}
	return g.cells[g.index(p)] != 0, nil
}

// occupied is the unchecked form of IsOccupied; out-of-bounds reads as empty.
func (g *Grid) occupied(p Point) bool {
	return g.InBounds(p) && g.cells[g.index(p)] != 0
}

func (g *Grid) index(p Point) int {
	return p.Row*g.size + p.Col
}

// Place stores a new block of the given color at p.
func (g *Grid) Place(p Point, color platformcore.Color) (BlockID, error) {
	if !g.InBounds(p) {
		return 0, fmt.Errorf("place %v: %w", p, ErrOutOfBounds)
	}
	if g.cells[g.index(p)] != 0 {
		return 0, fmt.Errorf("place %v: %w", p, ErrOccupied)
	}
	g.nextID++
	id := g.nextID
	g.blocks.Put(id, Block{ID: id, Color: color, Cell: p})
	g.cells[g.index(p)] = id
	g.observer.BlockPlaced(p, color)
	return id, nil
}

// Clear removes the block at p without notifying the observer.
// Clearing an empty cell is a no-op.
func (g *Grid) Clear(p Point) error {
	if !g.InBounds(p) {
		return fmt.Errorf("clear %v: %w", p, ErrOutOfBounds)
	}
	g.remove(p)
	return nil
}

// Destroy removes the block at p and reports it as destroyed.
// Destroying an empty cell is a no-op.
func (g *Grid) Destroy(p Point) error {
	if !g.InBounds(p) {
		return fmt.Errorf("destroy %v: %w", p, ErrOutOfBounds)
	}
	if g.remove(p) {
		g.observer.BlockDestroyed(p)
	}
	return nil
}

func (g *Grid) remove(p Point) bool {
	idx := g.index(p)
	id := g.cells[idx]
	if id == 0 {
		return false
	}
	g.blocks.Del(id)
	g.cells[idx] = 0
	return true
}

// move relocates the block at from to the empty cell to.
func (g *Grid) move(from, to Point) {
	fi, ti := g.index(from), g.index(to)
	id := g.cells[fi]
	b, _ := g.blocks.Get(id)
	b.Cell = to
	g.blocks.Put(id, b)
	g.cells[ti] = id
	g.cells[fi] = 0
	g.observer.BlockMoved(from, to)
}

// Reset empties the grid silently.
func (g *Grid) Reset() {
	clear(g.cells)
	g.blocks.Clear()
	g.nextID = 0
}

// Block returns the block record for id.
func (g *Grid) Block(id BlockID) (Block, bool) {
	return g.blocks.Get(id)
}

// BlockAt returns the block occupying p, if any.
func (g *Grid) BlockAt(p Point) (Block, bool) {
	if !g.InBounds(p) {
		return Block{}, false
	}
	id := g.cells[g.index(p)]
	if id == 0 {
		return Block{}, false
	}
	return g.blocks.Get(id)
}

// OccupiedCount returns the number of blocks on the grid.
func (g *Grid) OccupiedCount() int {
	return g.blocks.Len()
}

// Fits reports whether every cell is in bounds and empty.
func (g *Grid) Fits(cells [CellsPerPiece]Point) bool {
	for _, c := range cells {
		if !g.InBounds(c) || g.occupied(c) {
			return false
		}
	}
	return true
}

// DetectFullRows returns the indices of fully occupied rows, bottom to top.
func (g *Grid) DetectFullRows() []int {
	var rows []int
	for row := range g.size {
		full := true
		for col := range g.size {
			if !g.occupied(Pt(col, row)) {
				full = false
				break
			}
		}
		if full {
			rows = append(rows, row)
		}
	}
	return rows
}

// Collapse destroys the given rows (ascending order) and drops everything
// above them. Row indices are given in pre-collapse coordinates; every
// earlier shift moves the effective position of later rows down by one.
func (g *Grid) Collapse(rows []int) {
	for _, row := range rows {
		for col := range g.size {
			_ = g.Destroy(Pt(col, row))
		}
	}
	for i, row := range rows {
		g.shiftDown(row + 1 - i)
	}
}

// shiftDown moves every block at or above row from one row down.
func (g *Grid) shiftDown(from int) {
	for row := max(from, 1); row < g.size; row++ {
		for col := range g.size {
			p := Pt(col, row)
			if g.occupied(p) {
				g.move(p, Pt(col, row-1))
			}
		}
	}
}

// Crank shifts every block up one row, ejecting blocks in the top row, and
// fills the bottom row with gray blocks leaving between 1 and maxHoles holes.
// The fill walks the columns in a random direction. It returns the number
// of ejected blocks.
func (g *Grid) Crank(rng Random, maxHoles int) int {
	maxHoles = max(maxHoles, 1)
	ejected := 0
	for row := g.size - 1; row >= 0; row-- {
		for col := range g.size {
			p := Pt(col, row)
			if !g.occupied(p) {
				continue
			}
			if row == g.size-1 {
				g.remove(p)
				g.observer.BlockEjected(p)
				ejected++
				continue
			}
			g.move(p, Pt(col, row+1))
		}
	}

	leftToRight := rng.Intn(2) == 0
	holes := 0
	for i := range g.size {
		col := i
		if !leftToRight {
			col = g.size - 1 - i
		}
		if holes < maxHoles && rng.Intn(2) == 0 {
			holes++
			continue
		}
		if holes == 0 && i == g.size-1 {
			holes++
			break
		}
		_, _ = g.Place(Pt(col, 0), platformcore.ColorGray)
	}
	return ejected
}

// BombEligible reports whether the piece has no placement anywhere on the
// grid with all four cells in bounds and empty.
func (g *Grid) BombEligible(p Piece) bool {
	for anchor := range CellsPerPiece {
		for row := range g.size {
			for col := range g.size {
				if g.Fits(p.At(Pt(col, row), anchor)) {
					return false
				}
			}
		}
	}
	return true
}

// Rows renders the grid top row first, '#' for occupied and '.' for empty.
func (g *Grid) Rows() []string {
	out := make([]string, 0, g.size)
	var b strings.Builder
	for row := g.size - 1; row >= 0; row-- {
		b.Reset()
		for col := range g.size {
			if g.occupied(Pt(col, row)) {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		out = append(out, b.String())
	}
	return out
}
