package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/crossing/internal/assets"
	"github.com/vovakirdan/crossing/internal/config"
	"github.com/vovakirdan/crossing/internal/core"
	"github.com/vovakirdan/crossing/internal/platform/tui"
)

var (
	flagSprites string
	flagLog     string
	flagWatch   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Arrows/WASD/hjkl  - Move one cell
  Space             - Restart (any time)
  ?                 - Bonus table
  Q/Ctrl+C          - Quit

Reach the water to score one point plus your pending bonus
(score x multiplier). Stepping back onto the grass drops the bonus.

Examples:
  crossing play
  crossing play --difficulty easy
  crossing play --seed 42 --log ./crossing.log
  crossing play --sprites ./my-sprites.yaml
  crossing play --config ./crossing.yaml --watch`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagSprites, "sprites", "", "Path to a custom sprite table YAML")
	playCmd.Flags().StringVar(&flagLog, "log", "", "Write game log to this file")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload --config when it changes (applies on restart)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	gameCfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger(flagLog)
	if err != nil {
		return err
	}
	defer closeLog()

	// Get terminal size
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	var reloads <-chan config.CrossingConfig
	if flagWatch {
		if flagConfig == "" {
			return errors.New("--watch needs --config")
		}
		watcher, watchErr := config.Watch(flagConfig, config.ParsePreset(flagDifficulty))
		if watchErr != nil {
			return watchErr
		}
		defer watcher.Close()
		go logWatchErrors(logger, watcher.Errors)
		reloads = watcher.Configs
	}

	logger.Info("starting", "screen", fmt.Sprintf("%dx%d", width, height), "difficulty", flagDifficulty)
	if err := tui.Run(assets.NewCatalog(flagSprites), gameCfg, runtime, logger, reloads); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}

// openLogger returns a file logger for path, or a discarding one when path
// is empty. The terminal belongs to the game, so nothing is logged there.
func openLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "crossing",
		Level:           log.DebugLevel,
	})
	return logger, func() { _ = f.Close() }, nil
}

func logWatchErrors(logger *log.Logger, errs <-chan error) {
	for err := range errs {
		logger.Warn("config reload failed", "err", err)
	}
}
