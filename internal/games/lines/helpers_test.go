package lines

import (
	"testing"

	"github.com/vovakirdan/simplelines/internal/config"
	"github.com/vovakirdan/simplelines/internal/core"
	lcore "github.com/vovakirdan/simplelines/internal/games/lines/core"
)

type panelEvent struct {
	id    AnimationID
	enter bool
}

// recorder captures the events a test cares about.
type recorder struct {
	NopListener
	states    []State
	cues      []Cue
	panels    []panelEvent
	cleared   []int
	levels    []int
	scores    []int
	bombs     []bool
	overs     []Stats
	resets    int
	placed    int
	destroyed int
	ejected   int
}

func (r *recorder) OnStateChanged(_, to State) { r.states = append(r.states, to) }
func (r *recorder) OnCue(c Cue) { r.cues = append(r.cues, c) }
func (r *recorder) OnLinesCleared(n int) { r.cleared = append(r.cleared, n) }
func (r *recorder) OnLevelChanged(l int) { r.levels = append(r.levels, l) }
func (r *recorder) OnScoreChanged(s int) { r.scores = append(r.scores, s) }
func (r *recorder) OnBombStateChanged(b bool) { r.bombs = append(r.bombs, b) }
func (r *recorder) OnGameOver(s Stats) { r.overs = append(r.overs, s) }
func (r *recorder) OnSessionReset() { r.resets++ }
func (r *recorder) OnBlockPlaced(lcore.Point, core.Color) { r.placed++ }
func (r *recorder) OnBlockDestroyed(lcore.Point) { r.destroyed++ }
func (r *recorder) OnBlockEjected(lcore.Point) { r.ejected++ }
func (r *recorder) OnPanel(id AnimationID, enter bool) {
	r.panels = append(r.panels, panelEvent{id, enter})
}

func (r *recorder) hasCue(c Cue) bool {
	for _, got := range r.cues {
		if got == c {
			return true
		}
	}
	return false
}

func (r *recorder) hasPanel(id AnimationID, enter bool) bool {
	for _, p := range r.panels {
		if p == (panelEvent{id, enter}) {
			return true
		}
	}
	return false
}

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}
}

func newTestGame(t *testing.T) (*Game, *recorder) {
	t.Helper()
	rec := &recorder{}
	g, err := New(config.DefaultLinesConfig(), WithListener(rec))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	g.Reset(testRuntime(42))
	return g, rec
}

// start plays the intro out and lands in Wait.
func start(t *testing.T, g *Game) {
	t.Helper()
	g.AnimationLastFrame(AnimIntro)
	g.Step()
	if g.FlowState() != StateWait {
		t.Fatalf("expected wait after intro, got %v", g.FlowState())
	}
}

func steps(g *Game, n int) {
	for range n {
		g.Step()
	}
}

func setPiece(g *Game, kind lcore.ShapeKind, rot lcore.Rotation) {
	g.piece = lcore.NewPiece(kind, rot)
	g.checkBomb()
}

// fill occupies cells from rows given top first; '#' is occupied.
func fill(t *testing.T, g *Game, rows ...string) {
	t.Helper()
	size := g.grid.Size()
	if len(rows) != size {
		t.Fatalf("fill: want %d rows, got %d", size, len(rows))
	}
	for i, line := range rows {
		for col, ch := range line {
			if ch != '#' {
				continue
			}
			if _, err := g.grid.Place(lcore.Pt(col, size-1-i), core.ColorGray); err != nil {
				t.Fatalf("fill: %v", err)
			}
		}
	}
}
