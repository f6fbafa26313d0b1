package lines

import "container/heap"

// scope decides which resets cancel a deferred callback.
type scope uint8

const (
	scopeSession scope = iota // cancelled when the session reloads
	scopeState                // cancelled by any state change
)

type deferred struct {
	due     uint64
	seq     uint64
	scope   scope
	session uint64
	state   uint64
	fn      func()
}

type deferredHeap []*deferred

func (h deferredHeap) Len() int { return len(h) }
func (h deferredHeap) Less(i, j int) bool {
	if h[i].due != h[j].due {
		return h[i].due < h[j].due
	}
	return h[i].seq < h[j].seq
}
func (h deferredHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *deferredHeap) Push(x any) { *h = append(*h, x.(*deferred)) }
func (h *deferredHeap) Pop() any {
	old := *h
	n := len(old)
	d := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return d
}

// scheduler runs callbacks at a future tick. Callbacks carry the generation
// of their scope at scheduling time and become no-ops once it moves on.
type scheduler struct {
	h          deferredHeap
	seq        uint64
	sessionGen uint64
	stateGen   uint64
}

func (s *scheduler) after(now uint64, ticks int, sc scope, fn func()) {
	s.seq++
	heap.Push(&s.h, &deferred{
		due:     now + uint64(max(ticks, 0)),
		seq:     s.seq,
		scope:   sc,
		session: s.sessionGen,
		state:   s.stateGen,
		fn:      fn,
	})
}

// run fires every callback due at or before now, in due order.
func (s *scheduler) run(now uint64) {
	for s.h.Len() > 0 && s.h[0].due <= now {
		d := heap.Pop(&s.h).(*deferred)
		if s.live(d) {
			d.fn()
		}
	}
}

func (s *scheduler) live(d *deferred) bool {
	if d.session != s.sessionGen {
		return false
	}
	return d.scope != scopeState || d.state == s.stateGen
}

func (s *scheduler) stateChanged() {
	s.stateGen++
}

func (s *scheduler) sessionReset() {
	s.sessionGen++
	s.stateGen++
	s.h = s.h[:0]
}

// pending counts callbacks that would still fire.
func (s *scheduler) pending() int {
	n := 0
	for _, d := range s.h {
		if s.live(d) {
			n++
		}
	}
	return n
}
