package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadLines loads SimpleLines configuration.
// Search order: customPath -> ~/.simplelines/configs/lines.yaml -> ./configs/lines.yaml -> embedded default
func LoadLines(customPath string) (LinesConfig, error) {
	cfg := DefaultLinesConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("lines.yaml"); userCfgPath != "" {
		if c, ok := tryLoad(userCfgPath); ok {
			return c, nil
		}
	}

	// Try local configs directory
	if c, ok := tryLoad(filepath.Join("configs", "lines.yaml")); ok {
		return c, nil
	}

	// Use embedded default YAML
	embedded := DefaultLinesConfig()
	if err := yaml.Unmarshal(defaultLinesYAML, &embedded); err != nil || embedded.Validate() != nil {
		return DefaultLinesConfig(), nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}

// tryLoad reads an optional config file; unreadable or invalid files are skipped.
func tryLoad(path string) (LinesConfig, bool) {
	cfg := DefaultLinesConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	return cfg, cfg.Validate() == nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".simplelines", "configs", filename)
}

// ApplyLinesPreset modifies the config based on a difficulty preset.
func ApplyLinesPreset(cfg *LinesConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Timer.MaxSeconds = 24
		cfg.Grid.MaxCrankHoles = min(4, max(cfg.Grid.Size-1, 1))
	case DifficultyHard:
		cfg.Timer.MinSeconds = 4
		cfg.Grid.MaxCrankHoles = min(2, max(cfg.Grid.Size-1, 1))
	}
}
