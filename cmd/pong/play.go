package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/platform/tui"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play pong in this terminal",
	Long: `Start a hot-seat match in this terminal.

Controls:
  A/W, Z/S      - Left paddle up, down
  K/Up, M/Down  - Right paddle up, down
  Space/Enter   - Start from the title screen
  Esc           - Quit from the title screen
  Ctrl+S        - Save a text screenshot to ~/.pong/screenshots
  ?             - Toggle full help
  Ctrl+C        - Quit at any time

Results of the matches played are kept for this run only.

Examples:
  pong play
  pong play --difficulty easy
  pong play --config ./my-pong.yaml --log-file pong.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (the terminal is owned by the game)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := playLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.OpenMemory()
	if err != nil {
		return err
	}
	defer store.Close()

	var shotDir string
	if home, homeErr := os.UserHomeDir(); homeErr == nil {
		shotDir = filepath.Join(home, ".pong", "screenshots")
	}

	if err := tui.Run(tui.Options{
		Config:        cfg,
		Runtime:       runtimeConfig(width, height),
		Ledger:        store,
		Logger:        logger,
		ScreenshotDir: shotDir,
	}); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}

// playLogger returns a file logger when --log-file is set, or nil otherwise.
func playLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return nil, func() {}, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger, err := newLogger(f)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, func() { f.Close() }, nil
}
