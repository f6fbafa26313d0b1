package lines

// crankTimer counts down the ticks until the next crank.
type crankTimer struct {
	total     int
	remaining int
	running   bool
	paused    bool
}

// run restarts the countdown and clears any pause.
func (t *crankTimer) run(ticks int) {
	t.total = max(ticks, 1)
	t.remaining = t.total
	t.running = true
	t.paused = false
}

func (t *crankTimer) tick() {
	if !t.running || t.paused {
		return
	}
	t.remaining--
	if t.remaining <= 0 {
		t.expire()
	}
}

func (t *crankTimer) expire() {
	t.remaining = 0
	t.running = false
}

func (t *crankTimer) stop() {
	*t = crankTimer{}
}

// fraction returns the remaining share of the interval in [0,1].
func (t *crankTimer) fraction() float64 {
	if t.total == 0 {
		return 0
	}
	return float64(t.remaining) / float64(t.total)
}
