// Package lines implements the SimpleLines game flow: the tick-driven state
// machine that sequences input, drops, explosions, line clears, cranks,
// pausing, and game over on top of the grid engine in lines/core.
package lines

import (
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/simplelines/internal/config"
	"github.com/vovakirdan/simplelines/internal/core"
	lcore "github.com/vovakirdan/simplelines/internal/games/lines/core"
)

// ErrInvalidTransition is reported when a queued action is not recognized
// by the current state. It is logged and the action dropped.
var ErrInvalidTransition = errors.New("lines: action not valid in state")

// Game is the SimpleLines engine. It is not safe for concurrent use; all
// calls must come from the goroutine that calls Step.
type Game struct {
	cfg        config.LinesConfig
	rt         core.RuntimeConfig
	log        *log.Logger
	listener   Listener
	difficulty *config.DifficultyManager

	rng   *rand.Rand
	tick  uint64
	grid  *lcore.Grid
	state State

	piece lcore.Piece
	next  lcore.Piece
	bomb  bool

	queue actionQueue
	sched scheduler
	timer crankTimer

	stats      Stats
	pauseStats Stats
	finalStats Stats

	// Lit cells of the current drop preview.
	preview    [lcore.CellsPerPiece]lcore.Point
	hasPreview bool
	// Hovered cell that produced the preview, restored after a crank.
	lastDrop    lcore.Point
	hasLastDrop bool
	active      bool

	lines  []int
	panels [animCount]bool

	screenW int
	screenH int
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the engine logger.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.log = l
		}
	}
}

// WithListener sets the event listener. Use Listeners to attach several.
func WithListener(l Listener) Option {
	return func(g *Game) {
		if l != nil {
			g.listener = l
		}
	}
}

// New creates a game for the given configuration. Reset must be called
// before the first Step.
func New(cfg config.LinesConfig, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &Game{
		cfg:        cfg,
		log:        log.New(io.Discard),
		listener:   NopListener{},
		difficulty: config.NewDifficultyManager(cfg.Difficulty, cfg.Timer),
	}
	for _, opt := range opts {
		opt(g)
	}
	grid, err := lcore.NewGrid(cfg.Grid.Size, blockEvents{g})
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	g.grid = grid
	g.rng = rand.New(rand.NewSource(1))
	return g, nil
}

// ID returns the game identifier.
func (g *Game) ID() string { return "lines" }

// Title returns the display name.
func (g *Game) Title() string { return "SimpleLines" }

// Reset reseeds the RNG from cfg and starts a fresh session in Begin.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.rt = rt
	g.screenW = rt.ScreenW
	g.screenH = rt.ScreenH
	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.tick = 0
	g.reload()
}

// Resize updates the layout dimensions.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
}

// reload starts a new session, keeping the RNG stream.
func (g *Game) reload() {
	g.sched.sessionReset()
	g.queue.clear()
	g.timer.stop()
	g.grid.Reset()

	level := g.difficulty.StartLevel()
	g.stats = Stats{Level: level, SecondsPerCrank: g.difficulty.SecondsPerCrank(level)}
	g.pauseStats = Stats{}
	g.finalStats = Stats{}
	g.lines = nil
	g.hasLastDrop = false
	g.bomb = false
	g.panels = [animCount]bool{AnimIntro: true}

	g.piece = lcore.RandomPiece(g.rng)
	g.next = lcore.RandomPiece(g.rng)

	g.changeState(StateBegin, false)
	g.log.Debug("session reloaded", "level", level, "seconds", g.stats.SecondsPerCrank)
	g.listener.OnSessionReset()
	g.listener.OnPieceChanged(g.piece, g.next)
}

// Step advances the simulation by one tick: the crank timer counts down,
// due callbacks fire, and the current state handler runs once.
func (g *Game) Step() {
	g.tick++
	g.timer.tick()
	g.sched.run(g.tick)
	if err := g.dispatch(); err != nil {
		if errors.Is(err, ErrInvalidTransition) {
			g.log.Debug("action ignored", "err", err)
		} else {
			g.log.Warn("step failed", "state", g.state, "err", err)
		}
	}
}

// State returns the platform-level view of the game.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.stats.Score,
		GameOver: g.state == StateOver,
		Paused:   g.state == StatePause,
	}
}

// FlowState returns the current state machine state.
func (g *Game) FlowState() State { return g.state }

// Stats returns the live session counters.
func (g *Game) Stats() Stats { return g.stats }

// PauseStats returns the counters captured when the game was paused.
func (g *Game) PauseStats() Stats { return g.pauseStats }

// FinalStats returns the counters captured at game over.
func (g *Game) FinalStats() Stats { return g.finalStats }

// Grid exposes the board for read-only queries.
func (g *Game) Grid() *lcore.Grid { return g.grid }

// Piece returns the current piece.
func (g *Game) Piece() lcore.Piece { return g.piece }

// NextPiece returns the preview of the piece after the current one.
func (g *Game) NextPiece() lcore.Piece { return g.next }

// Bomb reports whether the current piece is a bomb.
func (g *Game) Bomb() bool { return g.bomb }

// Preview returns the lit cells, or nil when no preview is shown.
func (g *Game) Preview() []lcore.Point {
	if !g.hasPreview {
		return nil
	}
	out := make([]lcore.Point, lcore.CellsPerPiece)
	copy(out, g.preview[:])
	return out
}

// PanelVisible reports whether a panel is currently shown.
func (g *Game) PanelVisible(id AnimationID) bool {
	return int(id) < animCount && g.panels[id]
}

// TimerFraction returns the remaining share of the crank interval.
func (g *Game) TimerFraction() float64 { return g.timer.fraction() }

// TimerRunning reports whether the crank timer is counting down.
func (g *Game) TimerRunning() bool { return g.timer.running }

// Pending returns the number of queued actions.
func (g *Game) Pending() int { return g.queue.len() }

// PointerEnter reports the pointer moving over a cell.
func (g *Game) PointerEnter(cell lcore.Point) {
	if g.state != StateWait {
		return
	}
	g.queue.push(action{kind: actHover, cell: cell})
}

// PointerSelect reports a press on a cell; it activates the play area.
func (g *Game) PointerSelect(cell lcore.Point) {
	if g.state != StateWait {
		return
	}
	g.queue.push(action{kind: actSelect, cell: cell})
}

// PointerRelease reports the pointer being released. Releasing outside the
// grid deselects. Outside Wait a stale preview is hidden.
func (g *Game) PointerRelease(cell lcore.Point) {
	if g.state != StateWait {
		if g.hasPreview {
			g.hidePreview()
		}
		return
	}
	kind := actDrop
	if !g.grid.InBounds(cell) {
		kind = actDeselect
	}
	g.queue.push(action{kind: kind, cell: cell})
}

// RotateRequested asks for the current piece to rotate.
func (g *Game) RotateRequested() {
	if g.state != StateWait {
		return
	}
	g.listener.OnCue(CueTick)
	g.queue.push(action{kind: actRotate})
}

// PauseRequested asks to pause.
func (g *Game) PauseRequested() {
	if g.state != StateWait {
		return
	}
	g.listener.OnCue(CueTick)
	g.queue.push(action{kind: actPause})
}

// ResumeRequested asks to leave the pause.
func (g *Game) ResumeRequested() {
	if g.state != StatePause {
		return
	}
	g.listener.OnCue(CueTick)
	g.queue.push(action{kind: actResume})
}

// QuitRequested abandons the paused game.
func (g *Game) QuitRequested() {
	if g.state != StatePause {
		return
	}
	g.listener.OnCue(CueTick)
	g.queue.push(action{kind: actQuit})
}

// ReplayRequested starts a new game after game over.
func (g *Game) ReplayRequested() {
	if g.state != StateOver {
		return
	}
	g.listener.OnCue(CueTick)
	g.queue.push(action{kind: actReplay})
}

// TimerExpired forces the crank timer to run out. Only honoured while waiting.
func (g *Game) TimerExpired() {
	if g.state != StateWait {
		return
	}
	g.timer.expire()
}

// AnimationLastFrame reports a panel animation reaching its last frame.
func (g *Game) AnimationLastFrame(id AnimationID) {
	g.queue.push(action{kind: actLastFrame, anim: id})
}

// AnimationFirstFrame reports a panel animation reaching its first frame.
func (g *Game) AnimationFirstFrame(id AnimationID) {
	g.queue.push(action{kind: actFirstFrame, anim: id})
}
