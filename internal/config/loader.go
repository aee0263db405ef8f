package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// LoadTetris loads gameplay tuning from the embedded default YAML.
// There is intentionally no config file search path: the game performs
// no file I/O, so the embedded document is the only source. On a parse
// or validation failure the built-in defaults are returned alongside
// the error so callers can keep playing on the fallback.
func LoadTetris() (TetrisConfig, error) {
	var cfg TetrisConfig
	if err := yaml.Unmarshal(defaultTetrisYAML, &cfg); err != nil {
		return DefaultTetrisConfig(), fmt.Errorf("config: cannot parse embedded tuning: %w", err)
	}
	if err := validate(cfg); err != nil {
		return DefaultTetrisConfig(), err
	}
	return cfg, nil
}

// validate rejects tuning values the game cannot run on.
func validate(cfg TetrisConfig) error {
	if cfg.Gravity.BaseInterval <= 0 || cfg.Gravity.MinInterval <= 0 {
		return fmt.Errorf("config: gravity intervals must be positive")
	}
	if cfg.Lock.Delay < 0 {
		return fmt.Errorf("config: lock delay must be non-negative")
	}
	if len(cfg.Scoring.LineClears) != 4 {
		return fmt.Errorf("config: line_clears must list exactly 4 values, got %d", len(cfg.Scoring.LineClears))
	}
	if cfg.Leveling.LinesPerLevel <= 0 {
		return fmt.Errorf("config: lines_per_level must be positive")
	}
	if cfg.Leveling.MinStartLevel < 1 || cfg.Leveling.MaxStartLevel < cfg.Leveling.MinStartLevel {
		return fmt.Errorf("config: invalid start level range [%d, %d]",
			cfg.Leveling.MinStartLevel, cfg.Leveling.MaxStartLevel)
	}
	return nil
}
