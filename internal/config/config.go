// Package config provides YAML-based game configuration loading,
// validation, and difficulty presets for SimpleLines.
package config

import (
	"errors"
	"fmt"
)

// LinesConfig contains all configuration for the SimpleLines game.
type LinesConfig struct {
	Grid       GridConfig       `yaml:"grid"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Timer      TimerConfig      `yaml:"timer"`
	Delays     DelayConfig      `yaml:"delays"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// GridConfig defines the board.
type GridConfig struct {
	Size          int `yaml:"size"`
	MaxCrankHoles int `yaml:"max_crank_holes"` // Upper bound of holes in a cranked row
}

// ScoringConfig defines points per line clear.
type ScoringConfig struct {
	BaseScore int `yaml:"base_score"` // Clearing n rows scores base_score^n
}

// TimerConfig defines the crank interval in seconds.
type TimerConfig struct {
	MaxSeconds  float64 `yaml:"max_seconds"`  // Interval at level 1
	MinSeconds  float64 `yaml:"min_seconds"`  // Floor
	StepSeconds float64 `yaml:"step_seconds"` // Reduction per level
}

// DelayConfig defines deferred presentation cues in seconds.
type DelayConfig struct {
	LineCue       float64 `yaml:"line_cue"`
	OverCue       float64 `yaml:"over_cue"`
	GameOverPanel float64 `yaml:"game_over_panel"`
}

// DifficultyConfig defines the level progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`       // false keeps the crank interval fixed
	InitialLevel int               `yaml:"initial_level"` // Level a new session starts at
	Progression  ProgressionConfig `yaml:"progression"`
}

// ProgressionConfig defines how levels advance.
type ProgressionConfig struct {
	LinesPerLevel int `yaml:"lines_per_level"`
	MaxLevel      int `yaml:"max_level"`
}

// Validate checks the configuration for values the engine cannot run with.
func (c LinesConfig) Validate() error {
	var errs []error
	if c.Grid.Size <= 0 {
		errs = append(errs, fmt.Errorf("grid.size must be positive, got %d", c.Grid.Size))
	} else if c.Grid.MaxCrankHoles < 1 || c.Grid.MaxCrankHoles > c.Grid.Size-1 {
		errs = append(errs, fmt.Errorf("grid.max_crank_holes must be in [1,%d], got %d", c.Grid.Size-1, c.Grid.MaxCrankHoles))
	}
	if c.Scoring.BaseScore <= 0 {
		errs = append(errs, fmt.Errorf("scoring.base_score must be positive, got %d", c.Scoring.BaseScore))
	}
	if c.Timer.MaxSeconds <= 0 || c.Timer.MinSeconds <= 0 {
		errs = append(errs, fmt.Errorf("timer seconds must be positive, got max=%v min=%v", c.Timer.MaxSeconds, c.Timer.MinSeconds))
	} else if c.Timer.MinSeconds > c.Timer.MaxSeconds {
		errs = append(errs, fmt.Errorf("timer.min_seconds %v exceeds max_seconds %v", c.Timer.MinSeconds, c.Timer.MaxSeconds))
	}
	if c.Timer.StepSeconds < 0 {
		errs = append(errs, fmt.Errorf("timer.step_seconds must not be negative, got %v", c.Timer.StepSeconds))
	}
	if c.Delays.LineCue < 0 || c.Delays.OverCue < 0 || c.Delays.GameOverPanel < 0 {
		errs = append(errs, errors.New("delays must not be negative"))
	}
	p := c.Difficulty.Progression
	if p.LinesPerLevel <= 0 {
		errs = append(errs, fmt.Errorf("difficulty.progression.lines_per_level must be positive, got %d", p.LinesPerLevel))
	}
	if p.MaxLevel < 1 {
		errs = append(errs, fmt.Errorf("difficulty.progression.max_level must be at least 1, got %d", p.MaxLevel))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid lines config: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the starting level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyHard:
		return 5
	default:
		return 1
	}
}

// IsFixedPreset returns true if the preset disables timer progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
