// Package config provides YAML-based game configuration loading
// for the grow arcade game.
package config

import (
	"errors"
	"fmt"
)

// GrowConfig contains all tuning for the grow game.
type GrowConfig struct {
	Arena     ArenaConfig    `yaml:"arena"`
	Player    PlayerConfig   `yaml:"player"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Physics   PhysicsConfig  `yaml:"physics"`
	Sound     SoundConfig    `yaml:"sound"`
}

// ArenaConfig defines the playfield edges in world units (y-up).
type ArenaConfig struct {
	Upper         float64 `yaml:"upper"`
	Lower         float64 `yaml:"lower"`
	Left          float64 `yaml:"left"`
	Right         float64 `yaml:"right"`
	WallThickness float64 `yaml:"wall_thickness"`
}

// PlayerConfig defines the player's starting state and handling.
type PlayerConfig struct {
	StartingWeight int     `yaml:"starting_weight"`
	SizeFactor     float64 `yaml:"size_factor"` // size = weight * size_factor
	StartX         float64 `yaml:"start_x"`
	StartY         float64 `yaml:"start_y"`
	MoveSpeed      float64 `yaml:"move_speed"` // multiplied by tick delta
	Restitution    float64 `yaml:"restitution"`
}

// ObstacleConfig defines how obstacles are spawned.
type ObstacleConfig struct {
	SpawnInterval float64 `yaml:"spawn_interval"` // seconds
	MinWeight     int     `yaml:"min_weight"`     // inclusive
	MaxWeight     int     `yaml:"max_weight"`     // exclusive
	Speed         float64 `yaml:"speed"`
}

// PhysicsConfig defines world physics parameters.
type PhysicsConfig struct {
	Gravity         float64 `yaml:"gravity"` // magnitude, initially pointing down
	WallRestitution float64 `yaml:"wall_restitution"`
}

// SoundConfig defines when sound intents fire and whether audio is played.
type SoundConfig struct {
	Enabled              bool    `yaml:"enabled"`
	BounceSpeedThreshold float64 `yaml:"bounce_speed_threshold"`
	BounceDebounce       float64 `yaml:"bounce_debounce"` // seconds
	Volume               float64 `yaml:"volume"`          // 0.0 - 1.0
}

// Validate checks the configuration for values the simulation cannot run with.
func (c GrowConfig) Validate() error {
	var errs []error

	a := c.Arena
	if a.Upper <= a.Lower {
		errs = append(errs, fmt.Errorf("arena: upper (%g) must be above lower (%g)", a.Upper, a.Lower))
	}
	if a.Right <= a.Left {
		errs = append(errs, fmt.Errorf("arena: right (%g) must be right of left (%g)", a.Right, a.Left))
	}
	if a.WallThickness <= 0 {
		errs = append(errs, errors.New("arena: wall_thickness must be positive"))
	}

	p := c.Player
	if p.StartingWeight < 1 {
		errs = append(errs, errors.New("player: starting_weight must be at least 1"))
	}
	if p.SizeFactor <= 0 {
		errs = append(errs, errors.New("player: size_factor must be positive"))
	}
	if p.MoveSpeed < 0 {
		errs = append(errs, errors.New("player: move_speed must not be negative"))
	}
	if p.StartX <= a.Left || p.StartX >= a.Right || p.StartY <= a.Lower || p.StartY >= a.Upper {
		errs = append(errs, fmt.Errorf("player: start (%g, %g) must be inside the arena", p.StartX, p.StartY))
	}

	o := c.Obstacles
	if o.SpawnInterval <= 0 {
		errs = append(errs, errors.New("obstacles: spawn_interval must be positive"))
	}
	if o.MinWeight < 1 {
		errs = append(errs, errors.New("obstacles: min_weight must be at least 1"))
	}
	if o.MaxWeight <= o.MinWeight {
		errs = append(errs, fmt.Errorf("obstacles: weight range [%d, %d) is empty", o.MinWeight, o.MaxWeight))
	}
	if o.Speed <= 0 {
		errs = append(errs, errors.New("obstacles: speed must be positive"))
	}

	s := c.Sound
	if s.BounceDebounce < 0 {
		errs = append(errs, errors.New("sound: bounce_debounce must not be negative"))
	}
	if s.Volume < 0 || s.Volume > 1 {
		errs = append(errs, errors.New("sound: volume must be within [0, 1]"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid grow config: %w", errors.Join(errs...))
	}
	return nil
}
