// t2048 plays the 2048 sliding-tile game in the terminal.
//
// Usage:
//
//	t2048 play               - Full-screen game
//	t2048 text               - Line-based game (g/d/h/b tokens)
//	t2048 serve              - Start SSH server for remote play
//	t2048 config             - Print the effective configuration
//
// Global flags:
//
//	--config <path> - Path to a config YAML
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--verbose       - Log debug messages to stderr
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
)

var (
	// Global flags
	flagConfig  string
	flagSeed    int64
	flagVerbose bool

	// cfg is loaded before any subcommand runs.
	cfg config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - Slide and merge tiles in your terminal",
	Long: `t2048 is the 2048 sliding-tile game for the terminal.

Tiles slide in one of four directions; equal tiles merge and score their sum.
A new 2 appears after every move that changes the board. The game ends when
no move is possible.

Available commands:
  play     - Full-screen game
  text     - Line-based game
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  t2048 play
  t2048 text --no-clear
  t2048 --seed 42 text
  t2048 serve --ssh :2222`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = config value, then time based)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug messages")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(textCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads the configuration and applies global flag overrides.
func loadConfig(cmd *cobra.Command, _ []string) error {
	if flagVerbose {
		log.SetLevel(log.DebugLevel)
	}

	loaded, err := config.Load(flagConfig)
	if err != nil {
		if flagConfig != "" {
			return err
		}
		log.Warn("could not load config, using defaults", "error", err)
	}
	cfg = loaded

	if cmd.Flags().Changed("seed") {
		cfg.Seed = flagSeed
	}
	log.Debug("config loaded", "path", flagConfig, "seed", cfg.Seed)
	return nil
}
