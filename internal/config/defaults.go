package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the built-in gameplay tuning.
// Used as a fallback if the embedded YAML fails to parse.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Gravity: TetrisGravity{
			BaseInterval: 0.8,
			IntervalStep: 0.007,
			MinInterval:  0.05,
		},
		Lock: TetrisLock{
			Delay: 0.5,
		},
		Scoring: TetrisScoring{
			SoftDrop:   1,
			HardDrop:   2,
			LineClears: []int{100, 300, 500, 800},
		},
		Leveling: TetrisLeveling{
			LinesPerLevel: 10,
			MinStartLevel: 1,
			MaxStartLevel: 10,
		},
	}
}

