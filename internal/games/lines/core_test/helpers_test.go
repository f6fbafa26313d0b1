package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	platformcore "github.com/vovakirdan/simplelines/internal/core"
	"github.com/vovakirdan/simplelines/internal/games/lines/core"
)

// seqRand replays a fixed sequence of values, cycling when exhausted.
type seqRand struct {
	vals []int
	i    int
}

func (s *seqRand) Intn(n int) int {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v % n
}

// gridFrom builds a grid from rows given top first; '#' is occupied.
func gridFrom(t *testing.T, obs core.Observer, rows ...string) *core.Grid {
	t.Helper()
	g, err := core.NewGrid(len(rows), obs)
	require.NoError(t, err)
	for i, line := range rows {
		require.Len(t, line, len(rows))
		row := len(rows) - 1 - i
		for col, ch := range line {
			if ch == '#' {
				_, err := g.Place(core.Pt(col, row), platformcore.ColorWhite)
				require.NoError(t, err)
			}
		}
	}
	return g
}

func emptyGrid(t *testing.T) *core.Grid {
	t.Helper()
	g, err := core.NewGrid(8, nil)
	require.NoError(t, err)
	return g
}

type recorder struct {
	placed    []core.Point
	moved     [][2]core.Point
	destroyed []core.Point
	ejected   []core.Point
}

func (r *recorder) BlockPlaced(at core.Point, _ platformcore.Color) {
	r.placed = append(r.placed, at)
}

func (r *recorder) BlockMoved(from, to core.Point) {
	r.moved = append(r.moved, [2]core.Point{from, to})
}

func (r *recorder) BlockDestroyed(at core.Point) {
	r.destroyed = append(r.destroyed, at)
}

func (r *recorder) BlockEjected(at core.Point) {
	r.ejected = append(r.ejected, at)
}
