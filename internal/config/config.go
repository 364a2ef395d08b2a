// Package config provides YAML-based game configuration loading and
// difficulty presets for the crossing game.
package config

// CrossingConfig contains all tunable parameters of the crossing game.
// The grid itself is fixed and not part of the configuration.
type CrossingConfig struct {
	Gameplay  Gameplay  `yaml:"gameplay"`
	Physics   Physics   `yaml:"physics"`
	Collision Collision `yaml:"collision"`
}

// Gameplay defines entity counts and starting lives.
type Gameplay struct {
	Lives     int `yaml:"lives"`
	Obstacles int `yaml:"obstacles"`
	Bonuses   int `yaml:"bonuses"`
}

// Physics defines timing and speed parameters.
type Physics struct {
	MinSpeed       float64 `yaml:"min_speed"`        // Obstacle speed lower bound, columns/second
	MaxSpeed       float64 `yaml:"max_speed"`        // Obstacle speed upper bound, columns/second
	OvertakeBoost  float64 `yaml:"overtake_boost"`   // Speed factor for a faster obstacle already ahead
	MaxTickRate    int     `yaml:"max_tick_rate"`    // Soft ceiling on processed ticks per second
	BonusExtraLife float64 `yaml:"bonus_extra_life"` // Max extra seconds before a bonus respawns
}

// Give is a pair of hit-box shrink tolerances in pixels.
type Give struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Collision holds the tolerances for each interaction kind.
type Collision struct {
	Bonus    Give `yaml:"bonus"`    // Player vs bonus
	Obstacle Give `yaml:"obstacle"` // Obstacle vs obstacle
	Player   Give `yaml:"player"`   // Player vs obstacle
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset maps a CLI string to a preset. Empty or unknown values map to
// "" which leaves the loaded config untouched.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
