package lines

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/simplelines/internal/config"
	lcore "github.com/vovakirdan/simplelines/internal/games/lines/core"
)

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultLinesConfig()
	cfg.Grid.Size = 0
	if _, err := New(cfg); err == nil {
		t.Fatal("expected error for zero grid size")
	}
}

func TestResetStartsInBegin(t *testing.T) {
	g, rec := newTestGame(t)

	if g.FlowState() != StateBegin {
		t.Errorf("state = %v, want begin", g.FlowState())
	}
	if !g.PanelVisible(AnimIntro) {
		t.Error("intro panel should be visible after reset")
	}
	if g.TimerRunning() {
		t.Error("timer should not run before the intro ends")
	}
	if rec.resets != 1 {
		t.Errorf("resets = %d, want 1", rec.resets)
	}
	s := g.Stats()
	if s.Level != 1 || s.SecondsPerCrank != 18 || s.Score != 0 {
		t.Errorf("unexpected initial stats %+v", s)
	}
}

func TestIntroStartsTimer(t *testing.T) {
	g, _ := newTestGame(t)

	// Unrelated animation frames are ignored in Begin.
	g.AnimationFirstFrame(AnimIntro)
	g.Step()
	if g.FlowState() != StateBegin {
		t.Fatalf("state = %v, want begin", g.FlowState())
	}

	start(t, g)
	if !g.TimerRunning() {
		t.Error("timer should run after the intro")
	}
	if g.PanelVisible(AnimIntro) {
		t.Error("intro panel should be hidden")
	}
}

func TestDropOPieceAtOrigin(t *testing.T) {
	g, rec := newTestGame(t)
	start(t, g)
	setPiece(g, lcore.ShapeO, lcore.RotateNone)

	g.PointerSelect(lcore.Pt(0, 0))
	g.PointerRelease(lcore.Pt(0, 0))
	g.Step()
	if got := g.Preview(); len(got) != 4 {
		t.Fatalf("preview = %v, want 4 cells", got)
	}
	g.Step()
	if g.FlowState() != StateDrop {
		t.Fatalf("state = %v, want drop", g.FlowState())
	}
	g.Step()
	if g.FlowState() != StateWait {
		t.Fatalf("state = %v, want wait", g.FlowState())
	}

	for _, p := range []lcore.Point{lcore.Pt(0, 0), lcore.Pt(0, 1), lcore.Pt(1, 0), lcore.Pt(1, 1)} {
		if occ, _ := g.grid.IsOccupied(p); !occ {
			t.Errorf("cell %v not occupied", p)
		}
	}
	if n := g.grid.OccupiedCount(); n != 4 {
		t.Errorf("occupied = %d, want 4", n)
	}
	if s := g.Stats(); s.TotalLines != 0 || s.Score != 0 {
		t.Errorf("stats changed: %+v", s)
	}
	if rec.placed != 4 || !rec.hasCue(CuePlace) {
		t.Errorf("placed events = %d, place cue = %v", rec.placed, rec.hasCue(CuePlace))
	}
}

func TestDropWithoutPreviewDoesNothing(t *testing.T) {
	g, _ := newTestGame(t)
	start(t, g)

	g.PointerRelease(lcore.Pt(3, 3))
	g.Step()
	if g.FlowState() != StateWait {
		t.Errorf("state = %v, want wait", g.FlowState())
	}
	if g.grid.OccupiedCount() != 0 {
		t.Error("nothing should be placed without a preview")
	}
}

func TestDropOntoTakenCellFails(t *testing.T) {
	g, rec := newTestGame(t)
	start(t, g)
	setPiece(g, lcore.ShapeO, lcore.RotateNone)

	g.PointerSelect(lcore.Pt(3, 5))
	g.Step()
	cells := g.Preview()
	if len(cells) != lcore.CellsPerPiece {
		t.Fatalf("preview = %v, want a full piece", cells)
	}
	if _, err := g.grid.Place(cells[0], g.piece.Color()); err != nil {
		t.Fatalf("place: %v", err)
	}

	g.PointerRelease(lcore.Pt(3, 5))
	g.Step()
	if g.FlowState() != StateWait {
		t.Errorf("state = %v, want wait", g.FlowState())
	}
	for _, s := range rec.states {
		if s == StateDrop {
			t.Fatal("a drop onto a taken cell must not enter the drop state")
		}
	}
	if n := g.grid.OccupiedCount(); n != 1 {
		t.Errorf("occupied = %d, want only the blocking cell", n)
	}
}

func TestLineClearScoresSingle(t *testing.T) {
	g, rec := newTestGame(t)
	start(t, g)
	fill(t, g,
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"#######.",
	)
	setPiece(g, lcore.ShapeI, lcore.RotateNone)

	g.PointerSelect(lcore.Pt(7, 0))
	g.PointerRelease(lcore.Pt(7, 0))
	steps(g, 2)
	if g.FlowState() != StateDrop {
		t.Fatalf("state = %v, want drop", g.FlowState())
	}
	if rows := g.grid.DetectFullRows(); !reflect.DeepEqual(rows, []int{0}) {
		t.Fatalf("full rows = %v, want [0]", rows)
	}

	g.Step()
	if g.FlowState() != StateLine {
		t.Fatalf("state = %v, want line", g.FlowState())
	}
	g.Step()
	if g.FlowState() != StateWait {
		t.Fatalf("state = %v, want wait", g.FlowState())
	}

	s := g.Stats()
	if s.Singles != 1 || s.TotalLines != 1 || s.Score != 8 {
		t.Errorf("stats = %+v, want 1 single and score 8", s)
	}
	rows := g.grid.Rows()
	if rows[7] != ".......#" || rows[5] != ".......#" || rows[4] != "........" {
		t.Errorf("unexpected grid after collapse:\n%v", rows)
	}
	if !reflect.DeepEqual(rec.cleared, []int{1}) || !reflect.DeepEqual(rec.scores, []int{8}) {
		t.Errorf("cleared = %v scores = %v", rec.cleared, rec.scores)
	}

	// The line cue fires 0.15s after the clear.
	steps(g, 8)
	if rec.hasCue(CueLine) {
		t.Error("line cue fired early")
	}
	g.Step()
	if !rec.hasCue(CueLine) {
		t.Error("line cue did not fire")
	}
}

func TestScoreTable(t *testing.T) {
	want := []int{8, 64, 512, 4096}
	for n := 1; n <= 4; n++ {
		var s Stats
		if got := s.recordClear(n, 8); got != want[n-1] {
			t.Errorf("recordClear(%d) = %d, want %d", n, got, want[n-1])
		}
		counters := []int{s.Singles, s.Doubles, s.Triples, s.Quads}
		for i, c := range counters {
			exp := 0
			if i == n-1 {
				exp = 1
			}
			if c != exp {
				t.Errorf("n=%d counter %d = %d, want %d", n, i, c, exp)
			}
		}
		if s.TotalLines != n {
			t.Errorf("total = %d, want %d", s.TotalLines, n)
		}
	}
}

func TestLevelUpShortensTimer(t *testing.T) {
	g, rec := newTestGame(t)
	start(t, g)
	g.stats.TotalLines = 9
	fill(t, g,
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"#######.",
	)
	setPiece(g, lcore.ShapeI, lcore.RotateNone)
	g.PointerSelect(lcore.Pt(7, 0))
	g.PointerRelease(lcore.Pt(7, 0))
	steps(g, 4)

	s := g.Stats()
	if s.Level != 2 || s.SecondsPerCrank != 17 {
		t.Errorf("level = %d seconds = %v, want 2 and 17", s.Level, s.SecondsPerCrank)
	}
	if !reflect.DeepEqual(rec.levels, []int{2}) {
		t.Errorf("level events = %v", rec.levels)
	}
	if got := g.Snapshot().TimerRemaining; got != 17*60 {
		t.Errorf("timer remaining = %d, want %d", got, 17*60)
	}
}

func TestCrankOverflowEndsGame(t *testing.T) {
	g, rec := newTestGame(t)
	start(t, g)
	fill(t, g,
		"########",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
	)

	g.TimerExpired()
	g.Step()
	if g.FlowState() != StateCrank {
		t.Fatalf("state = %v, want crank", g.FlowState())
	}
	g.Step()
	if g.FlowState() != StateOver {
		t.Fatalf("state = %v, want over", g.FlowState())
	}
	if rec.ejected != 8 {
		t.Errorf("ejected = %d, want 8", rec.ejected)
	}
	if len(rec.overs) != 1 {
		t.Fatalf("game over events = %d, want 1", len(rec.overs))
	}
	if !g.State().GameOver {
		t.Error("platform state should report game over")
	}

	// Over cue at 0.2s, game over panel at 1.5s.
	steps(g, 11)
	if rec.hasCue(CueOver) {
		t.Error("over cue fired early")
	}
	g.Step()
	if !rec.hasCue(CueOver) {
		t.Error("over cue did not fire")
	}
	steps(g, 90-12)
	if !rec.hasPanel(AnimGameOver, true) || !g.PanelVisible(AnimGameOver) {
		t.Error("game over panel not shown")
	}
}

func TestCrankWithoutOverflowRetainsSelection(t *testing.T) {
	g, rec := newTestGame(t)
	start(t, g)
	setPiece(g, lcore.ShapeO, lcore.RotateNone)

	g.PointerSelect(lcore.Pt(3, 5))
	g.Step()
	if g.Preview() == nil {
		t.Fatal("expected preview")
	}

	// A release queued just before the crank must not be replayed afterwards.
	g.PointerRelease(lcore.Pt(3, 5))
	g.TimerExpired()
	g.Step()
	if g.FlowState() != StateCrank {
		t.Fatalf("state = %v, want crank", g.FlowState())
	}
	if g.Pending() != 0 {
		t.Errorf("pending = %d, crank transition should discard queued actions", g.Pending())
	}
	if g.Preview() == nil {
		t.Error("crank transition should keep the preview")
	}

	g.Step()
	if g.FlowState() != StateWait {
		t.Fatalf("state = %v, want wait", g.FlowState())
	}
	if !g.TimerRunning() {
		t.Error("timer should restart after a crank")
	}
	if g.Pending() != 0 || !g.active || g.Preview() == nil {
		t.Errorf("selection not kept: pending=%d active=%v preview=%v", g.Pending(), g.active, g.Preview())
	}

	steps(g, 3)
	for _, s := range rec.states {
		if s == StateDrop {
			t.Fatalf("queued release was replayed after the crank: states=%v", rec.states)
		}
	}
	size := g.grid.Size()
	if n := g.grid.OccupiedCount(); n < 5 || n > size-1 {
		t.Errorf("occupied = %d, want only the cranked row (5..%d)", n, size-1)
	}
	if g.FlowState() != StateWait || g.Preview() == nil {
		t.Errorf("state = %v preview = %v, want wait with preview", g.FlowState(), g.Preview())
	}
}

func TestQueueClearedOnTransition(t *testing.T) {
	g, _ := newTestGame(t)
	start(t, g)
	setPiece(g, lcore.ShapeO, lcore.RotateNone)

	g.PointerSelect(lcore.Pt(0, 0))
	g.PointerRelease(lcore.Pt(0, 0))
	g.RotateRequested()
	steps(g, 2)
	if g.FlowState() != StateDrop {
		t.Fatalf("state = %v, want drop", g.FlowState())
	}
	if g.Pending() != 0 {
		t.Errorf("pending = %d, queued rotate should be discarded", g.Pending())
	}
}

func TestInputGating(t *testing.T) {
	g, _ := newTestGame(t)

	// Begin accepts only animation frames.
	g.PointerEnter(lcore.Pt(1, 1))
	g.PointerSelect(lcore.Pt(1, 1))
	g.PointerRelease(lcore.Pt(1, 1))
	g.RotateRequested()
	g.PauseRequested()
	g.ResumeRequested()
	g.QuitRequested()
	g.ReplayRequested()
	if g.Pending() != 0 {
		t.Errorf("begin: pending = %d, want 0", g.Pending())
	}
	g.AnimationFirstFrame(AnimGameOver)
	if g.Pending() != 1 {
		t.Errorf("animation frames must always queue, pending = %d", g.Pending())
	}
	g.Step()

	start(t, g)
	g.ResumeRequested()
	g.QuitRequested()
	g.ReplayRequested()
	if g.Pending() != 0 {
		t.Errorf("wait: pending = %d, want 0", g.Pending())
	}
	g.RotateRequested()
	g.PauseRequested()
	if g.Pending() != 2 {
		t.Errorf("wait: pending = %d, want 2", g.Pending())
	}
}

func TestReleaseOutsideGridDeselects(t *testing.T) {
	g, _ := newTestGame(t)
	start(t, g)

	g.PointerSelect(lcore.Pt(2, 2))
	g.Step()
	if g.Preview() == nil {
		t.Fatal("expected preview")
	}
	g.PointerRelease(lcore.Pt(-1, -1))
	g.Step()
	if g.Preview() != nil || g.active {
		t.Error("release outside the grid should deselect")
	}
	if g.FlowState() != StateWait || g.grid.OccupiedCount() != 0 {
		t.Error("deselect must not drop")
	}

	// Hovering while inactive shows nothing.
	g.PointerEnter(lcore.Pt(2, 2))
	g.Step()
	if g.Preview() != nil {
		t.Error("hover without an active play area should not preview")
	}
}

func TestReleaseOutsideWaitHidesPreview(t *testing.T) {
	g, _ := newTestGame(t)
	start(t, g)

	g.PointerSelect(lcore.Pt(2, 2))
	g.Step()
	g.TimerExpired()
	g.Step()
	if g.FlowState() != StateCrank || g.Preview() == nil {
		t.Fatalf("expected crank with retained preview, got %v", g.FlowState())
	}

	g.PointerRelease(lcore.Pt(2, 2))
	if g.Preview() != nil {
		t.Error("stale preview should be hidden")
	}
	if g.Pending() != 0 {
		t.Error("release outside wait must not queue")
	}
}

func TestRotateRecomputesBomb(t *testing.T) {
	g, rec := newTestGame(t)
	start(t, g)
	fill(t, g,
		"########",
		"########",
		"########",
		"########",
		"#######.",
		"#######.",
		"#######.",
		"#######.",
	)
	setPiece(g, lcore.ShapeI, lcore.Rotate90)
	if !g.Bomb() {
		t.Fatal("horizontal I should be a bomb")
	}

	g.RotateRequested()
	g.Step()
	if g.Piece().Rotation() != lcore.Rotate180 {
		t.Errorf("rotation = %v, want 180", g.Piece().Rotation())
	}
	if g.Bomb() {
		t.Error("vertical I fits the gap")
	}
	if !reflect.DeepEqual(rec.bombs, []bool{true, false}) {
		t.Errorf("bomb events = %v", rec.bombs)
	}
}

func TestBombExplodes(t *testing.T) {
	g, rec := newTestGame(t)
	start(t, g)
	fill(t, g,
		"########",
		"########",
		"########",
		"########",
		"########",
		"########",
		"########",
		"#######.",
	)
	setPiece(g, lcore.ShapeO, lcore.RotateNone)
	if !g.Bomb() {
		t.Fatal("expected bomb")
	}

	g.PointerSelect(lcore.Pt(3, 3))
	g.PointerRelease(lcore.Pt(3, 3))
	steps(g, 2)
	if g.FlowState() != StateExplode {
		t.Fatalf("state = %v, want explode", g.FlowState())
	}
	if rec.destroyed != 4 || g.grid.OccupiedCount() != 59 {
		t.Errorf("destroyed = %d occupied = %d", rec.destroyed, g.grid.OccupiedCount())
	}
	for _, p := range []lcore.Point{lcore.Pt(3, 3), lcore.Pt(3, 4), lcore.Pt(4, 3), lcore.Pt(4, 4)} {
		if occ, _ := g.grid.IsOccupied(p); occ {
			t.Errorf("cell %v should be cleared", p)
		}
	}

	g.Step()
	if g.FlowState() != StateWait || !rec.hasCue(CueExplode) {
		t.Errorf("state = %v, explode cue = %v", g.FlowState(), rec.hasCue(CueExplode))
	}
}

func TestPauseResume(t *testing.T) {
	g, rec := newTestGame(t)
	start(t, g)
	g.stats.Score = 120
	steps(g, 5)

	g.PauseRequested()
	g.Step()
	if g.FlowState() != StatePause || !g.State().Paused {
		t.Fatalf("state = %v, want pause", g.FlowState())
	}
	if g.PauseStats().Score != 120 {
		t.Errorf("pause stats score = %d, want 120", g.PauseStats().Score)
	}
	if !rec.hasPanel(AnimPause, true) {
		t.Error("pause panel not requested")
	}

	remaining := g.timer.remaining
	steps(g, 30)
	if g.timer.remaining != remaining {
		t.Error("timer must not run while paused")
	}

	g.ResumeRequested()
	g.Step()
	if g.FlowState() != StateBegin || !rec.hasPanel(AnimPause, false) {
		t.Fatalf("state = %v, want begin with pause exit", g.FlowState())
	}
	g.AnimationFirstFrame(AnimPause)
	g.Step()
	if g.FlowState() != StateWait {
		t.Fatalf("state = %v, want wait", g.FlowState())
	}
	g.Step()
	if g.timer.remaining != remaining-1 {
		t.Errorf("timer did not resume: %d vs %d", g.timer.remaining, remaining)
	}
}

func TestTimerExpiredIgnoredWhilePaused(t *testing.T) {
	g, rec := newTestGame(t)
	start(t, g)

	g.PauseRequested()
	g.Step()
	if g.FlowState() != StatePause {
		t.Fatalf("state = %v, want pause", g.FlowState())
	}
	g.TimerExpired()
	if !g.TimerRunning() {
		t.Fatal("expiry outside wait must leave the timer running")
	}

	g.ResumeRequested()
	g.Step()
	g.AnimationFirstFrame(AnimPause)
	steps(g, 3)
	if g.FlowState() != StateWait {
		t.Fatalf("state = %v, want wait", g.FlowState())
	}
	for _, s := range rec.states {
		if s == StateCrank {
			t.Fatal("an expiry sent while paused cranked after resume")
		}
	}
	if g.grid.OccupiedCount() != 0 {
		t.Error("no row should have been cranked")
	}
}

func TestQuitReloadsSession(t *testing.T) {
	g, rec := newTestGame(t)
	start(t, g)
	g.stats.Score = 500
	fill(t, g,
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"###.....",
	)

	g.PauseRequested()
	g.Step()
	g.QuitRequested()
	g.Step()
	if g.FlowState() != StateOver || !rec.hasPanel(AnimIntro, true) {
		t.Fatalf("state = %v, want over with intro", g.FlowState())
	}
	if len(rec.overs) != 0 {
		t.Error("quitting is not a game over")
	}

	g.AnimationFirstFrame(AnimIntro)
	g.Step()
	if g.FlowState() != StateBegin {
		t.Fatalf("state = %v, want begin", g.FlowState())
	}
	if rec.resets != 2 {
		t.Errorf("resets = %d, want 2", rec.resets)
	}
	if g.grid.OccupiedCount() != 0 || g.Stats().Score != 0 {
		t.Error("session not reloaded")
	}
	if !g.PanelVisible(AnimIntro) {
		t.Error("intro should be shown after reload")
	}
}

func TestReplayAfterGameOver(t *testing.T) {
	g, rec := newTestGame(t)
	start(t, g)
	fill(t, g,
		"########",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
	)
	g.TimerExpired()
	steps(g, 2)
	if g.FlowState() != StateOver {
		t.Fatalf("state = %v, want over", g.FlowState())
	}

	g.ReplayRequested()
	g.Step()
	if !rec.hasPanel(AnimIntro, true) {
		t.Fatal("replay should bring the intro in")
	}
	g.AnimationFirstFrame(AnimIntro)
	g.Step()
	if g.FlowState() != StateBegin {
		t.Fatalf("state = %v, want begin", g.FlowState())
	}

	// Deferred game over effects were cancelled by the reload.
	steps(g, 120)
	if rec.hasCue(CueOver) || rec.hasPanel(AnimGameOver, true) {
		t.Error("stale game over callbacks fired after reload")
	}
}

func TestReloadCancelsLineCue(t *testing.T) {
	g, rec := newTestGame(t)
	start(t, g)
	fill(t, g,
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"#######.",
	)
	setPiece(g, lcore.ShapeI, lcore.RotateNone)
	g.PointerSelect(lcore.Pt(7, 0))
	g.PointerRelease(lcore.Pt(7, 0))
	steps(g, 4)
	if g.Stats().TotalLines != 1 {
		t.Fatal("expected a cleared line")
	}

	g.reload()
	steps(g, 20)
	if rec.hasCue(CueLine) {
		t.Error("line cue survived the reload")
	}
}

// drive feeds a fixed input script, exercising every state.
func drive(g *Game, n int) {
	for i := range n {
		switch g.FlowState() {
		case StateBegin:
			g.AnimationLastFrame(AnimIntro)
		case StateWait:
			c := lcore.Pt(i%8, (i/8)%8)
			switch i % 3 {
			case 0:
				g.PointerSelect(c)
			case 1:
				g.PointerRelease(c)
			}
			if i%7 == 0 {
				g.RotateRequested()
			}
			if i%40 == 0 {
				g.TimerExpired()
			}
		case StateOver:
			g.ReplayRequested()
			g.AnimationFirstFrame(AnimIntro)
		}
		g.Step()
	}
}

func TestDeterminism(t *testing.T) {
	run := func() []Snapshot {
		g, err := New(config.DefaultLinesConfig())
		if err != nil {
			t.Fatal(err)
		}
		g.Reset(testRuntime(7))
		var snaps []Snapshot
		for range 20 {
			drive(g, 50)
			snaps = append(snaps, g.Snapshot())
		}
		return snaps
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed produced different games")
	}
}
