package config

import (
	_ "embed"
)

//go:embed defaults/crossing.yaml
var defaultCrossingYAML []byte

// DefaultCrossingConfig returns the default crossing configuration.
func DefaultCrossingConfig() CrossingConfig {
	return CrossingConfig{
		Gameplay: Gameplay{
			Lives:     3,
			Obstacles: 5,
			Bonuses:   1,
		},
		Physics: Physics{
			MinSpeed:       0.5,
			MaxSpeed:       2.0,
			OvertakeBoost:  1.0375,
			MaxTickRate:    90,
			BonusExtraLife: 4,
		},
		Collision: Collision{
			Bonus:    Give{X: 0, Y: 50},
			Obstacle: Give{X: 0, Y: 5},
			Player:   Give{X: 15, Y: 30},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultCrossingYAML
}
