package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// LoadCrossing loads the crossing configuration.
// Search order: customPath -> ~/.arcade/configs/crossing.yaml -> ./configs/crossing.yaml -> embedded default
func LoadCrossing(customPath string) (CrossingConfig, error) {
	// Missing keys keep their defaults
	cfg := DefaultCrossingConfig()

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

	if userCfgPath := userConfigPath("crossing.yaml"); userCfgPath != "" {
		if loaded, ok := tryLoad(userCfgPath); ok {
			return loaded, nil
		}
	}

	if loaded, ok := tryLoad(filepath.Join("configs", "crossing.yaml")); ok {
		return loaded, nil
	}

	embedded := DefaultCrossingConfig()
	if err := yaml.Unmarshal(defaultCrossingYAML, &embedded); err != nil {
		return DefaultCrossingConfig(), nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}

// tryLoad reads an optional config file; unreadable or invalid files are skipped.
func tryLoad(path string) (CrossingConfig, bool) {
	cfg := DefaultCrossingConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if cfg.Validate() != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// Validate rejects configurations the simulation cannot run with.
func (c CrossingConfig) Validate() error {
	switch {
	case c.Gameplay.Lives <= 0:
		return fmt.Errorf("%w: gameplay.lives must be positive, got %d", ErrInvalid, c.Gameplay.Lives)
	case c.Gameplay.Obstacles < 0:
		return fmt.Errorf("%w: gameplay.obstacles must not be negative, got %d", ErrInvalid, c.Gameplay.Obstacles)
	case c.Gameplay.Bonuses < 0:
		return fmt.Errorf("%w: gameplay.bonuses must not be negative, got %d", ErrInvalid, c.Gameplay.Bonuses)
	case c.Physics.MinSpeed <= 0 || c.Physics.MaxSpeed < c.Physics.MinSpeed:
		return fmt.Errorf("%w: physics speed range [%g, %g] is not usable", ErrInvalid, c.Physics.MinSpeed, c.Physics.MaxSpeed)
	case c.Physics.OvertakeBoost < 1:
		return fmt.Errorf("%w: physics.overtake_boost must be >= 1, got %g", ErrInvalid, c.Physics.OvertakeBoost)
	case c.Physics.MaxTickRate <= 0:
		return fmt.Errorf("%w: physics.max_tick_rate must be positive, got %d", ErrInvalid, c.Physics.MaxTickRate)
	case c.Physics.BonusExtraLife < 0:
		return fmt.Errorf("%w: physics.bonus_extra_life must not be negative, got %g", ErrInvalid, c.Physics.BonusExtraLife)
	}
	return nil
}

// ApplyCrossingPreset modifies the config based on a difficulty preset.
// Normal keeps the loaded values.
func ApplyCrossingPreset(cfg *CrossingConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Gameplay.Obstacles = 3
		cfg.Physics.MaxSpeed = 1.5
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Gameplay.Obstacles = 7
		cfg.Physics.MinSpeed = 0.75
		cfg.Physics.MaxSpeed = 2.5
	}
}
