package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads the configuration.
// Search order: customPath -> ~/.t2048/config.yaml -> ./configs/t2048.yaml -> embedded default.
// Values missing from a file keep their defaults.
func Load(customPath string) (Config, error) {
	return load(customPath, searchPaths())
}

func load(customPath string, candidates []string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return Default(), err
		}
		return cfg, nil
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		cfg, err := loadFile(path)
		if err != nil {
			return Default(), err
		}
		return cfg, nil
	}

	// Use embedded default YAML
	cfg := Default()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func loadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the values that cannot be checked by the consumers.
func (c Config) Validate() error {
	var errs []error
	if c.Serve.Address == "" {
		errs = append(errs, errors.New("config: serve.address is empty"))
	}
	if c.Serve.IdleTimeoutMinutes < 0 {
		errs = append(errs, fmt.Errorf("config: serve.idle_timeout_minutes is negative (%d)", c.Serve.IdleTimeoutMinutes))
	}
	keys := []struct {
		name string
		list []string
	}{
		{"left", c.TUI.Keys.Left},
		{"right", c.TUI.Keys.Right},
		{"up", c.TUI.Keys.Up},
		{"down", c.TUI.Keys.Down},
		{"restart", c.TUI.Keys.Restart},
		{"quit", c.TUI.Keys.Quit},
	}
	for _, k := range keys {
		if len(k.list) == 0 {
			errs = append(errs, fmt.Errorf("config: tui.keys.%s is empty", k.name))
		}
	}
	return errors.Join(errs...)
}

// Marshal encodes the configuration as YAML.
func Marshal(c Config) ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// searchPaths returns the config files tried after the custom path.
func searchPaths() []string {
	var paths []string
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		paths = append(paths, userCfgPath)
	}
	return append(paths, filepath.Join("configs", "t2048.yaml"))
}

// userConfigPath returns the path in the user's config directory.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".t2048", filename)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
