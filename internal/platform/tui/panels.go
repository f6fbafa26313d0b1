package tui

import (
	"github.com/vovakirdan/simplelines/internal/games/lines"
)

// animationSink receives the frame callbacks of panel animations.
type animationSink interface {
	AnimationFirstFrame(id lines.AnimationID)
	AnimationLastFrame(id lines.AnimationID)
}

// animation is one running panel transition.
type animation struct {
	id    lines.AnimationID
	enter bool
	frame int
}

// director plays the panel transitions the engine requests. An enter
// animation reports its first frame; an exit animation reports both its
// first and its last frame. The intro panel idles on screen after every
// session reset until it is dismissed.
type director struct {
	lines.NopListener

	frames  int
	running []animation
	shown   map[lines.AnimationID]bool
}

func newDirector(frames int) *director {
	d := &director{frames: max(frames, 1)}
	d.OnSessionReset()
	return d
}

// OnPanel starts the transition for id, replacing one already running.
func (d *director) OnPanel(id lines.AnimationID, enter bool) {
	d.start(id, enter)
}

// OnSessionReset drops running transitions and shows the intro.
func (d *director) OnSessionReset() {
	d.running = d.running[:0]
	d.shown = map[lines.AnimationID]bool{lines.AnimIntro: true}
}

// Dismiss starts the exit transition of a panel that is resting on screen.
// It reports false when the panel is hidden or already moving.
func (d *director) Dismiss(id lines.AnimationID) bool {
	if !d.shown[id] || d.Animating(id) {
		return false
	}
	d.start(id, false)
	return true
}

// Animating reports whether id has a transition in flight.
func (d *director) Animating(id lines.AnimationID) bool {
	for _, a := range d.running {
		if a.id == id {
			return true
		}
	}
	return false
}

// Shown reports whether id is on screen or entering.
func (d *director) Shown(id lines.AnimationID) bool {
	return d.shown[id]
}

// Advance moves every running transition one frame and reports the frame
// callbacks to sink.
func (d *director) Advance(sink animationSink) {
	kept := d.running[:0]
	for _, a := range d.running {
		if a.frame == 0 {
			sink.AnimationFirstFrame(a.id)
		}
		a.frame++
		if a.frame < d.frames {
			kept = append(kept, a)
			continue
		}
		if !a.enter {
			sink.AnimationLastFrame(a.id)
		}
	}
	d.running = kept
}

func (d *director) start(id lines.AnimationID, enter bool) {
	d.shown[id] = enter
	for i, a := range d.running {
		if a.id == id {
			d.running[i] = animation{id: id, enter: enter}
			return
		}
	}
	d.running = append(d.running, animation{id: id, enter: enter})
}
