package lines

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/simplelines/internal/core"
	lcore "github.com/vovakirdan/simplelines/internal/games/lines/core"
)

// Cue is a one-shot presentation cue, typically a sound.
type Cue uint8

const (
	CueTick    Cue = iota // accepted rotate/pause/resume/quit/replay input
	CuePlace              // piece placed
	CueExplode            // bomb detonated
	CueLine               // rows cleared (fires shortly after the clear)
	CueCrank              // board cranked
	CueOver               // game over (fires shortly after the final crank)
)

func (c Cue) String() string {
	switch c {
	case CueTick:
		return "tick"
	case CuePlace:
		return "place"
	case CueExplode:
		return "explode"
	case CueLine:
		return "line"
	case CueCrank:
		return "crank"
	case CueOver:
		return "over"
	default:
		return "unknown"
	}
}

// AnimationID identifies a presentation panel whose animation frames are
// reported back to the engine.
type AnimationID uint8

const (
	AnimIntro AnimationID = iota
	AnimPause
	AnimGameOver

	animCount = 3
)

func (a AnimationID) String() string {
	switch a {
	case AnimIntro:
		return "intro"
	case AnimPause:
		return "pause"
	case AnimGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Listener receives engine events. All methods are called synchronously
// from Step or from the presentation-to-core calls.
type Listener interface {
	OnBlockPlaced(cell lcore.Point, color core.Color)
	OnBlockMoved(from, to lcore.Point)
	OnBlockDestroyed(cell lcore.Point)
	OnBlockEjected(cell lcore.Point)
	OnLinesCleared(count int)
	OnLevelChanged(level int)
	OnScoreChanged(score int)
	OnBombStateChanged(bomb bool)
	OnGameOver(stats Stats)

	OnStateChanged(from, to State)
	// OnPreviewChanged reports the lit cells; nil means the preview is hidden.
	OnPreviewChanged(cells []lcore.Point)
	OnPieceChanged(current, next lcore.Piece)
	OnCue(cue Cue)
	// OnPanel asks the presentation to animate a panel in or out.
	OnPanel(id AnimationID, enter bool)
	OnSessionReset()
}

// NopListener ignores every event. Embed it to implement a subset.
type NopListener struct{}

func (NopListener) OnBlockPlaced(lcore.Point, core.Color) {}
func (NopListener) OnBlockMoved(lcore.Point, lcore.Point) {}
func (NopListener) OnBlockDestroyed(lcore.Point) {}
func (NopListener) OnBlockEjected(lcore.Point) {}
func (NopListener) OnLinesCleared(int) {}
func (NopListener) OnLevelChanged(int) {}
func (NopListener) OnScoreChanged(int) {}
func (NopListener) OnBombStateChanged(bool) {}
func (NopListener) OnGameOver(Stats) {}
func (NopListener) OnStateChanged(State, State) {}
func (NopListener) OnPreviewChanged([]lcore.Point) {}
func (NopListener) OnPieceChanged(lcore.Piece, lcore.Piece) {}
func (NopListener) OnCue(Cue) {}
func (NopListener) OnPanel(AnimationID, bool) {}
func (NopListener) OnSessionReset() {}

// Listeners fans every event out to each listener in order.
type Listeners []Listener

func (ls Listeners) OnBlockPlaced(cell lcore.Point, color core.Color) {
	for _, l := range ls {
		l.OnBlockPlaced(cell, color)
	}
}

func (ls Listeners) OnBlockMoved(from, to lcore.Point) {
	for _, l := range ls {
		l.OnBlockMoved(from, to)
	}
}

func (ls Listeners) OnBlockDestroyed(cell lcore.Point) {
	for _, l := range ls {
		l.OnBlockDestroyed(cell)
	}
}

func (ls Listeners) OnBlockEjected(cell lcore.Point) {
	for _, l := range ls {
		l.OnBlockEjected(cell)
	}
}

func (ls Listeners) OnLinesCleared(count int) {
	for _, l := range ls {
		l.OnLinesCleared(count)
	}
}

func (ls Listeners) OnLevelChanged(level int) {
	for _, l := range ls {
		l.OnLevelChanged(level)
	}
}

func (ls Listeners) OnScoreChanged(score int) {
	for _, l := range ls {
		l.OnScoreChanged(score)
	}
}

func (ls Listeners) OnBombStateChanged(bomb bool) {
	for _, l := range ls {
		l.OnBombStateChanged(bomb)
	}
}

func (ls Listeners) OnGameOver(stats Stats) {
	for _, l := range ls {
		l.OnGameOver(stats)
	}
}

func (ls Listeners) OnStateChanged(from, to State) {
	for _, l := range ls {
		l.OnStateChanged(from, to)
	}
}

func (ls Listeners) OnPreviewChanged(cells []lcore.Point) {
	for _, l := range ls {
		l.OnPreviewChanged(cells)
	}
}

func (ls Listeners) OnPieceChanged(current, next lcore.Piece) {
	for _, l := range ls {
		l.OnPieceChanged(current, next)
	}
}

func (ls Listeners) OnCue(cue Cue) {
	for _, l := range ls {
		l.OnCue(cue)
	}
}

func (ls Listeners) OnPanel(id AnimationID, enter bool) {
	for _, l := range ls {
		l.OnPanel(id, enter)
	}
}

func (ls Listeners) OnSessionReset() {
	for _, l := range ls {
		l.OnSessionReset()
	}
}

// LogListener writes every event to a logger at debug level. Block-level
// events are frequent, so they are only logged when Verbose is set.
type LogListener struct {
	Logger  *log.Logger
	Verbose bool
}

func (l LogListener) OnBlockPlaced(cell lcore.Point, color core.Color) {
	if l.Verbose {
		l.Logger.Debug("block placed", "cell", cell, "color", color)
	}
}

func (l LogListener) OnBlockMoved(from, to lcore.Point) {
	if l.Verbose {
		l.Logger.Debug("block moved", "from", from, "to", to)
	}
}

func (l LogListener) OnBlockDestroyed(cell lcore.Point) {
	if l.Verbose {
		l.Logger.Debug("block destroyed", "cell", cell)
	}
}

func (l LogListener) OnBlockEjected(cell lcore.Point) {
	l.Logger.Debug("block ejected", "cell", cell)
}

func (l LogListener) OnLinesCleared(count int) {
	l.Logger.Debug("lines cleared", "count", count)
}

func (l LogListener) OnLevelChanged(level int) {
	l.Logger.Debug("level changed", "level", level)
}

func (l LogListener) OnScoreChanged(score int) {
	l.Logger.Debug("score changed", "score", score)
}

func (l LogListener) OnBombStateChanged(bomb bool) {
	l.Logger.Debug("bomb state", "bomb", bomb)
}

func (l LogListener) OnGameOver(stats Stats) {
	l.Logger.Info("game over", "score", stats.Score, "lines", stats.TotalLines, "level", stats.Level)
}

func (l LogListener) OnStateChanged(from, to State) {
	l.Logger.Debug("state", "from", from, "to", to)
}

func (l LogListener) OnPreviewChanged(cells []lcore.Point) {
	if l.Verbose {
		l.Logger.Debug("preview", "cells", cells)
	}
}

func (l LogListener) OnPieceChanged(current, next lcore.Piece) {
	l.Logger.Debug("piece", "current", current, "next", next)
}

func (l LogListener) OnCue(cue Cue) {
	if l.Verbose {
		l.Logger.Debug("cue", "cue", cue)
	}
}

func (l LogListener) OnPanel(id AnimationID, enter bool) {
	l.Logger.Debug("panel", "id", id, "enter", enter)
}

func (l LogListener) OnSessionReset() {
	l.Logger.Debug("session reset")
}

// blockEvents adapts grid notifications to the game's listener.
type blockEvents struct{ g *Game }

func (b blockEvents) BlockPlaced(at lcore.Point, color core.Color) {
	b.g.listener.OnBlockPlaced(at, color)
}

func (b blockEvents) BlockMoved(from, to lcore.Point) {
	b.g.listener.OnBlockMoved(from, to)
}

func (b blockEvents) BlockDestroyed(at lcore.Point) {
	b.g.listener.OnBlockDestroyed(at)
}

func (b blockEvents) BlockEjected(at lcore.Point) {
	b.g.listener.OnBlockEjected(at)
}
