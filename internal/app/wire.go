package app

import (
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"userstore/internal/domain"
	"userstore/internal/services/directory"
	"userstore/internal/store"
)

// Wire bundles the store, service and logger for the CLI.
type Wire struct {
	Users domain.Directory
	Store *store.UserFileStore
	Log   *zap.Logger
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	log, err := newLogger(cfg.Debug)
	if err != nil {
		return nil, err
	}

	users := store.NewUserFileStore(filepath.Join(cfg.Home, cfg.File), log)
	dir := directory.New(users, log)

	// Preference-update notifications surface through the same sink as
	// degraded-load diagnostics.
	domain.SetObserver(func(line string) { log.Info(line) })

	return &Wire{Users: dir, Store: users, Log: log}, nil
}

// newLogger builds a human-readable console logger.
func newLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}
