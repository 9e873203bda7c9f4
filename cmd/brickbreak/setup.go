package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/brickbreak/internal/audio"
	"github.com/vovakirdan/brickbreak/internal/config"
	"github.com/vovakirdan/brickbreak/internal/core"
	"github.com/vovakirdan/brickbreak/internal/leaderboard"
	"github.com/vovakirdan/brickbreak/internal/platform/tui"
	"github.com/vovakirdan/brickbreak/internal/storage"
)

// app bundles what every interactive command opens and must close.
type app struct {
	env     tui.Env
	store   *storage.Store
	logFile *os.File
}

// openApp loads config, opens the log file, the leaderboard and audio.
// The TUI owns the terminal, so logs go to ~/.brickbreak/brickbreak.log.
func openApp(withAudio bool) (*app, error) {
	gameCfg, err := config.LoadBreakout(flagConfig)
	if err != nil {
		return nil, err
	}

	a := &app{}
	logger := a.openLogger()

	board := leaderboard.New(leaderboard.NewMemoryKV(), logger)
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open leaderboard database: %v\n", err)
		logger.Warn("leaderboard not persisted", "err", err)
	} else {
		a.store = store
		board = leaderboard.New(store, logger)
	}

	var player *audio.Player
	if withAudio {
		player = audio.NewPlayer(flagVolume, logger)
		if err := player.Start(); err != nil {
			logger.Warn("audio unavailable", "err", err)
			player = nil
		} else {
			player.SetMuted(flagMute)
		}
	}

	a.env = tui.Env{
		Config:      gameCfg,
		Runtime:     runtimeConfig(),
		Board:       board,
		Audio:       player,
		Logger:      logger,
		DefaultName: os.Getenv("USER"),
	}
	return a, nil
}

func (a *app) openLogger() *log.Logger {
	var w io.Writer = io.Discard

	if home, err := os.UserHomeDir(); err == nil {
		dir := filepath.Join(home, ".brickbreak")
		if err := os.MkdirAll(dir, 0o755); err == nil {
			f, err := os.OpenFile(filepath.Join(dir, "brickbreak.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
			if err == nil {
				a.logFile = f
				w = f
			}
		}
	}

	return newLogger(w, "brickbreak")
}

// newLogger creates a logger at the --log-level level.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

func (a *app) Close() {
	if a.env.Audio != nil {
		//nolint:errcheck // Best-effort shutdown
		a.env.Audio.Close()
	}
	if a.store != nil {
		//nolint:errcheck // Best-effort shutdown
		a.store.Close()
	}
	if a.logFile != nil {
		//nolint:errcheck // Best-effort shutdown
		a.logFile.Close()
	}
}

// runtimeConfig reads the terminal size and global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
