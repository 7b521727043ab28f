package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadGrow loads the grow configuration.
// Search order: customPath -> ~/.grow/configs/grow.yaml -> ./configs/grow.yaml -> embedded default.
// Files only need to name the values they change; everything else keeps its default.
func LoadGrow(customPath string) (GrowConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return GrowConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseGrow(data)
		if err != nil {
			return GrowConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("grow.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseGrow(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "grow.yaml")); err == nil {
		if cfg, err := parseGrow(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseGrow(defaultGrowYAML)
	if err != nil {
		return DefaultGrowConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseGrow overlays YAML data onto the hardcoded defaults and validates the result.
func parseGrow(data []byte) (GrowConfig, error) {
	cfg := DefaultGrowConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return GrowConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return GrowConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".grow", "configs", filename)
}
