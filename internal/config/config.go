// Package config provides YAML-based configuration loading for the 2048
// shells: input tokens, key bindings, tile colours and SSH server settings.
package config

import "time"

// Config is the complete application configuration.
type Config struct {
	Seed  int64       `yaml:"seed"` // 0 = time based
	Text  TextConfig  `yaml:"text"`
	TUI   TUIConfig   `yaml:"tui"`
	Serve ServeConfig `yaml:"serve"`
}

// TextConfig configures the line-based text shell.
type TextConfig struct {
	Clear  bool        `yaml:"clear"` // Clear the terminal before each redraw
	Tokens TokenConfig `yaml:"tokens"`
}

// TokenConfig lists the typed tokens for each command.
type TokenConfig struct {
	Left  []string `yaml:"left"`
	Right []string `yaml:"right"`
	Up    []string `yaml:"up"`
	Down  []string `yaml:"down"`
	Quit  []string `yaml:"quit"`
}

// TUIConfig configures the full-screen shell.
type TUIConfig struct {
	Keys  KeyConfig   `yaml:"keys"`
	Theme ThemeConfig `yaml:"theme"`
}

// KeyConfig lists Bubble Tea key names for each action.
type KeyConfig struct {
	Left    []string `yaml:"left"`
	Right   []string `yaml:"right"`
	Up      []string `yaml:"up"`
	Down    []string `yaml:"down"`
	Restart []string `yaml:"restart"`
	Quit    []string `yaml:"quit"`
}

// ThemeConfig holds lipgloss colours (ANSI numbers or hex strings).
type ThemeConfig struct {
	Border string            `yaml:"border"`
	Empty  TileColor         `yaml:"empty"`
	Tiles  map[int]TileColor `yaml:"tiles"`
	Large  TileColor         `yaml:"large"` // Tiles without their own entry
}

// TileColor is a foreground/background pair.
type TileColor struct {
	Foreground string `yaml:"fg"`
	Background string `yaml:"bg"`
}

// ServeConfig configures the SSH server.
type ServeConfig struct {
	Address            string `yaml:"address"`
	HostKeyPath        string `yaml:"host_key"` // Empty = ~/.t2048/host_key
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// IdleTimeout returns the idle timeout as a duration.
func (s ServeConfig) IdleTimeout() time.Duration {
	return time.Duration(s.IdleTimeoutMinutes) * time.Minute
}

// TileColor returns the colours for a tile value.
func (t ThemeConfig) TileColor(value int) TileColor {
	if value == 0 {
		return t.Empty
	}
	if c, ok := t.Tiles[value]; ok {
		return c
	}
	return t.Large
}
