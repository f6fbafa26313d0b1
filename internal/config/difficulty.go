package config

import "math"

// DifficultyManager derives level and crank interval from session progress.
type DifficultyManager struct {
	cfg   DifficultyConfig
	timer TimerConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig, timer TimerConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg, timer: timer}
}

// IsEnabled returns whether the crank interval shrinks with level.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// StartLevel returns the level a new session starts at.
func (d *DifficultyManager) StartLevel() int {
	return clampI(d.cfg.InitialLevel, 1, d.maxLevel())
}

// NextLevel returns the level after clearing lines. At most one level is
// gained per clear, and only once totalLines reaches level*lines_per_level.
func (d *DifficultyManager) NextLevel(level, totalLines int) (int, bool) {
	per := max(d.cfg.Progression.LinesPerLevel, 1)
	if level >= d.maxLevel() || totalLines < level*per {
		return level, false
	}
	return level + 1, true
}

// SecondsPerCrank returns the crank interval at the given level.
func (d *DifficultyManager) SecondsPerCrank(level int) float64 {
	if !d.IsEnabled() {
		level = d.StartLevel()
	}
	s := d.timer.MaxSeconds - d.timer.StepSeconds*float64(level-1)
	return math.Max(d.timer.MinSeconds, s)
}

func (d *DifficultyManager) maxLevel() int {
	return max(d.cfg.Progression.MaxLevel, 1)
}

// clampI restricts an int to [lo, hi].
func clampI(val, lo, hi int) int {
	return max(lo, min(hi, val))
}
