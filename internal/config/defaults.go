package config

import (
	_ "embed"
)

//go:embed defaults/lines.yaml
var defaultLinesYAML []byte

// DefaultLinesConfig returns the default SimpleLines configuration.
func DefaultLinesConfig() LinesConfig {
	return LinesConfig{
		Grid: GridConfig{
			Size:          8,
			MaxCrankHoles: 3,
		},
		Scoring: ScoringConfig{
			BaseScore: 8,
		},
		Timer: TimerConfig{
			MaxSeconds:  18,
			MinSeconds:  6,
			StepSeconds: 1,
		},
		Delays: DelayConfig{
			LineCue:       0.15,
			OverCue:       0.2,
			GameOverPanel: 1.5,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 1,
			Progression: ProgressionConfig{
				LinesPerLevel: 10,
				MaxLevel:      99,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultLinesYAML
}
