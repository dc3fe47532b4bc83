package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-gorillas/internal/games/gorillas/sim"
)

// ConfigFile is the file name looked up in the config directories.
const ConfigFile = "gorillas.yaml"

// LoadGorillas loads the gorillas configuration. Keys missing from the
// file keep their default values.
// Search order: customPath -> ~/.gorillas/configs/gorillas.yaml -> ./configs/gorillas.yaml -> embedded default
func LoadGorillas(customPath string) (GorillasConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultGorillasConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return DefaultGorillasConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", ConfigFile)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultGorillasYAML)
	if err != nil {
		return DefaultGorillasConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parse(data []byte) (GorillasConfig, error) {
	cfg := DefaultGorillasConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, &sim.ConfigError{Field: "yaml", Reason: err.Error()}
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gorillas", "configs", filename)
}
