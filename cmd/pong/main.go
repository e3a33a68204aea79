// pong is a two-player hot-seat Pong for the terminal.
//
// Usage:
//
//	pong play                - Play in this terminal
//	pong serve               - Start SSH server for remote play
//	pong sim                 - Run a headless, scripted simulation
//
// Global flags:
//
//	--fps <rate>             - Set tick rate (default: 60)
//	--fixed-step <duration>  - Advance every tick by a fixed step
//	--config <path>          - Custom pong.yaml
//	--difficulty <preset>    - easy, normal, hard
//	--log-level <level>      - debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

var (
	// Global flags
	flagFPS        int
	flagFixedStep  time.Duration
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Pong - two players, one keyboard, one terminal",
	Long: `Pong is the classic two-player paddle game for your terminal.

Left player uses A/Z (or W/S), right player uses K/M (or the arrow keys).
The first side to score three goals wins the match.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  sim      - Run a headless simulation with scripted input

Examples:
  pong play
  pong play --difficulty hard
  pong serve --ssh :2222
  pong sim --ticks 600 --script "start@1,ldown@200-260"`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().DurationVar(&flagFixedStep, "fixed-step", 0, "Fixed simulation step per tick (0 = measured frame time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom pong config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
}

// newLogger builds the process logger writing to w at the --log-level level.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "pong",
	})
	logger.SetLevel(level)
	return logger, nil
}

// loadConfig loads the game config and applies the difficulty preset once.
func loadConfig() (config.PongConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.PongConfig{}, err
	}
	cfg, err := config.LoadPong(flagConfig)
	if err != nil {
		return cfg, err
	}
	config.ApplyPongPreset(&cfg, preset)
	return cfg, nil
}

// runtimeConfig returns the host settings from the global flags.
func runtimeConfig(width, height int) core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.ScreenW = width
	rc.ScreenH = height
	if flagFPS > 0 {
		rc.TickRate = flagFPS
	}
	rc.FixedStep = flagFixedStep
	return rc
}
