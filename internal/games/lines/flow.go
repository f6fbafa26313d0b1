package lines

import (
	"fmt"

	lcore "github.com/vovakirdan/simplelines/internal/games/lines/core"
)

// State is a game flow state.
type State uint8

const (
	StateBegin   State = iota // intro or resuming from pause
	StateWait                 // waiting for the player
	StateDrop                 // piece placed
	StateExplode              // bomb detonated
	StateLine                 // rows being cleared
	StateCrank                // board moving up
	StatePause                // paused
	StateOver                 // game over or quitting to the intro
)

var stateNames = [...]string{
	StateBegin:   "begin",
	StateWait:    "wait",
	StateDrop:    "drop",
	StateExplode: "explode",
	StateLine:    "line",
	StateCrank:   "crank",
	StatePause:   "pause",
	StateOver:    "over",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

func (g *Game) dispatch() error {
	switch g.state {
	case StateBegin:
		return g.stateBegin()
	case StateWait:
		return g.stateWait()
	case StateDrop:
		return g.stateDrop()
	case StateExplode:
		return g.stateExplode()
	case StateLine:
		return g.stateLine()
	case StateCrank:
		return g.stateCrank()
	case StatePause:
		return g.statePause()
	case StateOver:
		return g.stateOver()
	}
	return fmt.Errorf("dispatch: unknown state %d", g.state)
}

// changeState moves to next. Pending actions and state-scoped callbacks
// are always discarded. Unless retain is set the play area is also
// deactivated and the preview hidden.
func (g *Game) changeState(next State, retain bool) {
	prev := g.state
	g.state = next
	g.queue.clear()
	if !retain {
		g.active = false
		g.hidePreview()
	}
	g.sched.stateChanged()
	g.listener.OnStateChanged(prev, next)
}

func (g *Game) invalid(a action) error {
	return fmt.Errorf("%w: %v in %v", ErrInvalidTransition, a, g.state)
}

func (g *Game) stateBegin() error {
	a, ok := g.queue.pop()
	if !ok {
		return nil
	}
	switch {
	case a.kind == actLastFrame && a.anim == AnimIntro:
		g.panels[AnimIntro] = false
		g.runTimer()
		g.changeState(StateWait, false)
	case a.kind == actFirstFrame && a.anim == AnimPause:
		g.timer.paused = false
		g.changeState(StateWait, false)
	default:
		return g.invalid(a)
	}
	return nil
}

func (g *Game) stateWait() error {
	if !g.timer.running {
		g.changeState(StateCrank, true)
		return nil
	}
	a, ok := g.queue.pop()
	if !ok {
		return nil
	}
	switch a.kind {
	case actSelect:
		g.active = true
		g.showPreview(a.cell)
	case actHover:
		if g.active {
			g.showPreview(a.cell)
		}
	case actDrop:
		if g.bomb {
			if g.explodePiece() {
				g.changeState(StateExplode, false)
			}
		} else if g.dropPiece() {
			g.changeState(StateDrop, false)
		}
	case actDeselect:
		g.hidePreview()
		g.active = false
	case actRotate:
		g.piece = g.piece.Rotated()
		g.listener.OnPieceChanged(g.piece, g.next)
		g.hidePreview()
		g.checkBomb()
	case actPause:
		g.changeState(StatePause, false)
		g.pauseStats = g.stats
		g.timer.paused = true
		g.showPanel(AnimPause, true)
	default:
		return g.invalid(a)
	}
	return nil
}

func (g *Game) stateDrop() error {
	g.listener.OnCue(CuePlace)
	g.spawn()
	if g.lines = g.grid.DetectFullRows(); len(g.lines) > 0 {
		g.changeState(StateLine, false)
		return nil
	}
	g.checkBomb()
	g.changeState(StateWait, false)
	return nil
}

func (g *Game) stateExplode() error {
	g.listener.OnCue(CueExplode)
	g.spawn()
	g.checkBomb()
	g.changeState(StateWait, false)
	return nil
}

func (g *Game) stateLine() error {
	g.removeLines()
	g.checkBomb()
	g.changeState(StateWait, false)
	g.runTimer()
	return nil
}

func (g *Game) stateCrank() error {
	g.listener.OnCue(CueCrank)
	ejected := g.grid.Crank(g.rng, g.cfg.Grid.MaxCrankHoles)
	if ejected > 0 {
		g.changeState(StateOver, false)
		g.finalStats = g.stats
		g.log.Debug("crank overflow", "ejected", ejected)
		g.listener.OnGameOver(g.finalStats)
		g.sched.after(g.tick, g.rt.Seconds(g.cfg.Delays.OverCue), scopeState, func() {
			g.listener.OnCue(CueOver)
		})
		g.sched.after(g.tick, g.rt.Seconds(g.cfg.Delays.GameOverPanel), scopeState, func() {
			g.showPanel(AnimGameOver, true)
		})
		return nil
	}
	g.checkBomb()
	if g.hasLastDrop {
		g.showPreview(g.lastDrop)
	}
	g.runTimer()
	g.changeState(StateWait, true)
	return nil
}

func (g *Game) statePause() error {
	a, ok := g.queue.pop()
	if !ok {
		return nil
	}
	switch a.kind {
	case actResume:
		g.changeState(StateBegin, false)
		g.showPanel(AnimPause, false)
	case actQuit:
		g.changeState(StateOver, false)
		g.showPanel(AnimIntro, true)
	default:
		return g.invalid(a)
	}
	return nil
}

func (g *Game) stateOver() error {
	a, ok := g.queue.pop()
	if !ok {
		return nil
	}
	switch {
	case a.kind == actReplay:
		g.showPanel(AnimIntro, true)
	case a.kind == actFirstFrame && a.anim == AnimIntro:
		g.reload()
	default:
		return g.invalid(a)
	}
	return nil
}

func (g *Game) runTimer() {
	g.timer.run(g.rt.Seconds(g.stats.SecondsPerCrank))
}

func (g *Game) showPanel(id AnimationID, enter bool) {
	g.panels[id] = enter
	g.listener.OnPanel(id, enter)
}

// spawn promotes the next piece and draws a new one.
func (g *Game) spawn() {
	g.piece = g.next
	g.next = lcore.RandomPiece(g.rng)
	g.listener.OnPieceChanged(g.piece, g.next)
}

func (g *Game) checkBomb() {
	bomb := g.grid.BombEligible(g.piece)
	if bomb != g.bomb {
		g.bomb = bomb
		g.listener.OnBombStateChanged(bomb)
	}
}

// showPreview resolves the piece at cell and lights the result. A failed
// resolve hides the preview.
func (g *Game) showPreview(cell lcore.Point) {
	pl, err := lcore.Resolve(g.grid, g.piece, cell, g.bomb)
	if err != nil {
		g.log.Debug("no placement", "cell", cell, "err", err)
		g.hidePreview()
		return
	}
	g.preview = pl.Cells
	g.hasPreview = true
	g.lastDrop = cell
	g.hasLastDrop = true
	g.listener.OnPreviewChanged(g.Preview())
}

func (g *Game) hidePreview() {
	g.hasLastDrop = false
	if !g.hasPreview {
		return
	}
	g.hasPreview = false
	g.listener.OnPreviewChanged(nil)
}

// dropPiece commits the lit cells. It fails without a full preview or
// when a lit cell was taken after the preview was shown.
func (g *Game) dropPiece() bool {
	if !g.hasPreview {
		return false
	}
	cells := g.preview
	g.hidePreview()
	if !g.grid.Fits(cells) {
		g.log.Warn("drop", "cells", cells, "err", "preview no longer fits")
		return false
	}
	placed := 0
	for _, c := range cells {
		if _, err := g.grid.Place(c, g.piece.Color()); err != nil {
			g.log.Warn("drop", "cell", c, "err", err)
			continue
		}
		placed++
	}
	return placed == lcore.CellsPerPiece
}

// explodePiece clears whatever occupies the lit cells.
func (g *Game) explodePiece() bool {
	if !g.hasPreview {
		return false
	}
	cells := g.preview
	g.hidePreview()
	for _, c := range cells {
		if err := g.grid.Destroy(c); err != nil {
			g.log.Warn("explode", "cell", c, "err", err)
		}
	}
	return true
}

// removeLines collapses the detected rows and updates score and level.
func (g *Game) removeLines() {
	n := len(g.lines)
	if n == 0 {
		return
	}
	g.grid.Collapse(g.lines)
	g.lines = nil

	g.stats.recordClear(n, g.cfg.Scoring.BaseScore)
	g.listener.OnLinesCleared(n)
	if level, up := g.difficulty.NextLevel(g.stats.Level, g.stats.TotalLines); up {
		g.stats.Level = level
		g.stats.SecondsPerCrank = g.difficulty.SecondsPerCrank(level)
		g.listener.OnLevelChanged(level)
	}
	g.listener.OnScoreChanged(g.stats.Score)

	g.sched.after(g.tick, g.rt.Seconds(g.cfg.Delays.LineCue), scopeSession, func() {
		g.listener.OnCue(CueLine)
	})
}
