package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/Emilinya/bounce/internal/collision"
	"github.com/Emilinya/bounce/internal/config"
	"github.com/Emilinya/bounce/internal/core"
	"github.com/Emilinya/bounce/internal/registry"
	"github.com/Emilinya/bounce/internal/storage"
)

// runtimeConfig builds the runtime config from the terminal size and global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the session database. Failures are logged and the
// caller continues without storage.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open session database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

// logToFile redirects the default logger to ~/.bounce/bounce.log so log
// lines do not tear the alt screen. The returned func closes the file.
func logToFile() (func(), error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".bounce")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}

	f, err := os.OpenFile(filepath.Join(dir, "bounce.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.GetLevel(),
		Prefix:          "bounce",
	})
	previous := log.Default()
	log.SetDefault(logger)

	return func() {
		log.SetDefault(previous)
		f.Close()
	}, nil
}

// demoOptions builds factory options from the play flags. Anomalies go to
// the default logger and, when available, the store.
func demoOptions(store *storage.Store) (registry.Options, error) {
	preset, err := config.ParsePreset(flagPreset)
	if err != nil {
		return registry.Options{}, err
	}

	checker := collision.NewChecker(
		collision.WithLogger(log.Default().WithPrefix("collision")),
		collision.WithRecorder(store),
	)

	return registry.Options{
		ConfigPath: flagConfig,
		Preset:     preset,
		Checker:    checker,
	}, nil
}

// createDemo instantiates a demo and surfaces config errors before the
// terminal is taken over.
func createDemo(id string, opts registry.Options) (registry.Demo, error) {
	demo, err := registry.Create(id, opts)
	if err != nil {
		return nil, err
	}
	if c, ok := demo.(registry.Configurable); ok {
		if err := c.Configure(); err != nil {
			return nil, err
		}
	}
	return demo, nil
}
