package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
// It mirrors defaults/t2048.yaml and is used when the embedded file cannot be parsed.
func Default() Config {
	return Config{
		Seed: 0,
		Text: TextConfig{
			Clear: true,
			Tokens: TokenConfig{
				Left:  []string{"g"},
				Right: []string{"d"},
				Up:    []string{"h"},
				Down:  []string{"b"},
				Quit:  []string{"q"},
			},
		},
		TUI: TUIConfig{
			Keys: KeyConfig{
				Left:    []string{"left", "a"},
				Right:   []string{"right", "d"},
				Up:      []string{"up", "w"},
				Down:    []string{"down", "s"},
				Restart: []string{"r"},
				Quit:    []string{"q", "ctrl+c"},
			},
			Theme: ThemeConfig{
				Border: "240",
				Empty:  TileColor{Foreground: "240", Background: "236"},
				Large:  TileColor{Foreground: "255", Background: "0"},
				Tiles: map[int]TileColor{
					2:    {Foreground: "235", Background: "255"},
					4:    {Foreground: "235", Background: "230"},
					8:    {Foreground: "255", Background: "215"},
					16:   {Foreground: "255", Background: "209"},
					32:   {Foreground: "255", Background: "203"},
					64:   {Foreground: "255", Background: "196"},
					128:  {Foreground: "255", Background: "221"},
					256:  {Foreground: "255", Background: "220"},
					512:  {Foreground: "255", Background: "214"},
					1024: {Foreground: "255", Background: "178"},
					2048: {Foreground: "255", Background: "172"},
				},
			},
		},
		Serve: ServeConfig{
			Address:            ":23234",
			IdleTimeoutMinutes: 30,
		},
	}
}
