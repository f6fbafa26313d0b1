package lines

import (
	"fmt"

	lcore "github.com/vovakirdan/simplelines/internal/games/lines/core"
)

type actionKind uint8

const (
	actHover      actionKind = iota // pointer entered a cell
	actSelect                       // pointer pressed on a cell
	actDrop                         // pointer released over the grid
	actDeselect                     // pointer released outside the grid
	actRotate                       // rotate the current piece
	actPause                        // pause from Wait
	actResume                       // resume from Pause
	actQuit                         // quit from Pause
	actReplay                       // replay from Over
	actFirstFrame                   // panel animation reached its first frame
	actLastFrame                    // panel animation reached its last frame
)

var actionNames = [...]string{
	actHover:      "hover",
	actSelect:     "select",
	actDrop:       "drop",
	actDeselect:   "deselect",
	actRotate:     "rotate",
	actPause:      "pause",
	actResume:     "resume",
	actQuit:       "quit",
	actReplay:     "replay",
	actFirstFrame: "first-frame",
	actLastFrame:  "last-frame",
}

func (k actionKind) String() string {
	if int(k) < len(actionNames) {
		return actionNames[k]
	}
	return "unknown"
}

// action is one pending input. cell is set for pointer actions and anim for
// animation frames.
type action struct {
	kind actionKind
	cell lcore.Point
	anim AnimationID
}

func (a action) String() string {
	switch a.kind {
	case actHover, actSelect, actDrop, actDeselect:
		return fmt.Sprintf("%v%v", a.kind, a.cell)
	case actFirstFrame, actLastFrame:
		return fmt.Sprintf("%v(%v)", a.kind, a.anim)
	default:
		return a.kind.String()
	}
}

// actionQueue is a FIFO of pending actions.
type actionQueue struct {
	items []action
	head  int
}

func (q *actionQueue) push(a action) {
	q.items = append(q.items, a)
}

func (q *actionQueue) pop() (action, bool) {
	if q.head >= len(q.items) {
		return action{}, false
	}
	a := q.items[q.head]
	q.head++
	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
	}
	return a, true
}

func (q *actionQueue) clear() {
	q.items = q.items[:0]
	q.head = 0
}

func (q *actionQueue) len() int {
	return len(q.items) - q.head
}
