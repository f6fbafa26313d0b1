package lines

// Stats holds the per-session counters shown on the HUD and panels.
type Stats struct {
	TotalLines      int
	Singles         int
	Doubles         int
	Triples         int
	Quads           int
	Score           int
	Level           int
	SecondsPerCrank float64
}

// recordClear counts n simultaneous rows and returns the points gained
// (base^n).
func (s *Stats) recordClear(n, base int) int {
	switch n {
	case 0:
		return 0
	case 1:
		s.Singles++
	case 2:
		s.Doubles++
	case 3:
		s.Triples++
	default:
		s.Quads++
	}
	s.TotalLines += n

	gained := 1
	for range n {
		gained *= base
	}
	s.Score += gained
	return gained
}
