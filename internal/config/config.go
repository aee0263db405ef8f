// Package config provides YAML-based gameplay tuning for the game.
// The tuning document is compiled into the binary; the game never reads
// configuration from the filesystem.
package config

// TetrisConfig contains all gameplay tuning for the falling-block game.
type TetrisConfig struct {
	Gravity  TetrisGravity  `yaml:"gravity"`
	Lock     TetrisLock     `yaml:"lock"`
	Scoring  TetrisScoring  `yaml:"scoring"`
	Leveling TetrisLeveling `yaml:"leveling"`
}

// TetrisGravity defines the level-dependent fall speed curve.
// The interval for a given level is base_interval minus
// (level-1) * interval_step, floored at min_interval.
type TetrisGravity struct {
	BaseInterval float64 `yaml:"base_interval"` // Seconds per row at level 1
	IntervalStep float64 `yaml:"interval_step"` // Speed-up per level
	MinInterval  float64 `yaml:"min_interval"`  // Fastest allowed interval
}

// TetrisLock defines the lock-delay behavior.
type TetrisLock struct {
	Delay float64 `yaml:"delay"` // Grace period in seconds once grounded
}

// TetrisScoring defines the point awards.
type TetrisScoring struct {
	SoftDrop   int   `yaml:"soft_drop"`   // Points per soft-drop row
	HardDrop   int   `yaml:"hard_drop"`   // Points per hard-drop row
	LineClears []int `yaml:"line_clears"` // Base points for 1..4 simultaneous rows
}

// TetrisLeveling defines level progression.
type TetrisLeveling struct {
	LinesPerLevel int `yaml:"lines_per_level"` // Cleared lines per level advance
	MinStartLevel int `yaml:"min_start_level"` // Lowest selectable start level
	MaxStartLevel int `yaml:"max_start_level"` // Highest selectable start level
}

// LineClearScore returns the base points for clearing n rows at once.
// Returns 0 for counts outside the configured table.
func (c TetrisConfig) LineClearScore(n int) int {
	if n < 1 || n > len(c.Scoring.LineClears) {
		return 0
	}
	return c.Scoring.LineClears[n-1]
}

// GravityInterval returns the seconds-per-row fall interval for a level.
func (c TetrisConfig) GravityInterval(level int) float64 {
	interval := c.Gravity.BaseInterval - float64(level-1)*c.Gravity.IntervalStep
	if interval < c.Gravity.MinInterval {
		interval = c.Gravity.MinInterval
	}
	return interval
}
