package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load loads the editor configuration.
// Search order: customPath -> ~/.sketch/config.yaml -> ./configs/sketch.yaml -> embedded default
//
// Files ending in .toml are parsed as TOML, everything else as YAML.
// Missing keys keep their default values. An explicit path must exist and
// be valid; files found by the search are skipped when they are not.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range searchPaths() {
		if cfg, err := loadFile(path); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := Default()
	if err := yaml.Unmarshal(defaultSketchYAML, &cfg); err != nil || cfg.Validate() != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// loadFile decodes path over the hardcoded defaults.
func loadFile(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(data, &cfg)
	} else {
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// searchPaths lists the implicit config locations in priority order.
func searchPaths() []string {
	var paths []string
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		paths = append(paths, userCfgPath, userConfigPath("config.toml"))
	}
	return append(paths, filepath.Join("configs", "sketch.yaml"))
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".sketch", filename)
}
