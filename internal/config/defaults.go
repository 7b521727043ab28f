package config

import (
	_ "embed"
)

//go:embed defaults/grow.yaml
var defaultGrowYAML []byte

// DefaultGrowConfig returns the default grow configuration.
// It mirrors defaults/grow.yaml and is used when the embedded YAML cannot be parsed.
func DefaultGrowConfig() GrowConfig {
	return GrowConfig{
		Arena: ArenaConfig{
			Upper:         500,
			Lower:         -500,
			Left:          -940,
			Right:         940,
			WallThickness: 20,
		},
		Player: PlayerConfig{
			StartingWeight: 15,
			SizeFactor:     1.5,
			StartX:         200,
			StartY:         0,
			MoveSpeed:      10000,
			Restitution:    0.9,
		},
		Obstacles: ObstacleConfig{
			SpawnInterval: 0.5,
			MinWeight:     1,
			MaxWeight:     100,
			Speed:         100,
		},
		Physics: PhysicsConfig{
			Gravity:         1000,
			WallRestitution: 1.0,
		},
		Sound: SoundConfig{
			Enabled:              true,
			BounceSpeedThreshold: 30,
			BounceDebounce:       0.1,
			Volume:               0.5,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "grow":
		return defaultGrowYAML
	default:
		return nil
	}
}
