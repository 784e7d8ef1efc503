package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/bestscore"
	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// openStore opens the configured database.
func openStore() (*storage.Store, error) {
	store, err := storage.Open(appConfig.Storage.DBPath)
	if err != nil {
		return nil, err
	}
	appLogger.Debug("database opened", "path", appConfig.Storage.DBPath)
	return store, nil
}

// openTracker opens the database for the best score. When the database is
// unavailable the game still runs with an in-memory best score.
// The returned close function is never nil.
func openTracker(logger *log.Logger) (*bestscore.Tracker, *storage.Store, func()) {
	store, err := openStore()
	if err != nil {
		appLogger.Warn("could not open database, best score will not be saved", "error", err)
		return bestscore.New(bestscore.NewMemoryStore(), logger), nil, func() {}
	}

	return bestscore.New(store, logger), store, func() { store.Close() }
}

// gameLogger returns the logger used while a TUI owns the terminal: the
// configured log file, or nothing.
func gameLogger() (*log.Logger, func(), error) {
	opts := log.Options{
		ReportTimestamp: true,
		Prefix:          "t2048",
		Level:           appConfig.LogLevel(),
	}

	if appConfig.Log.File == "" {
		return log.NewWithOptions(io.Discard, opts), func() {}, nil
	}

	path := config.ExpandHome(appConfig.Log.File)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	return log.NewWithOptions(f, opts), func() { f.Close() }, nil
}
