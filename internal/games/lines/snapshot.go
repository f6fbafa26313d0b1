package lines

import lcore "github.com/vovakirdan/simplelines/internal/games/lines/core"

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick           uint64
	State          State
	Stats          Stats
	Grid           []string // Top row first, '#' occupied
	Piece          string
	Next           string
	Bomb           bool
	Preview        []lcore.Point
	Pending        int
	TimerRemaining int
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:           g.tick,
		State:          g.state,
		Stats:          g.stats,
		Grid:           g.grid.Rows(),
		Piece:          g.piece.String(),
		Next:           g.next.String(),
		Bomb:           g.bomb,
		Preview:        g.Preview(),
		Pending:        g.queue.len(),
		TimerRemaining: g.timer.remaining,
	}
}
