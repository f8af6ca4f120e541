package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/javiermolinar/rutina/internal/config"
	"github.com/javiermolinar/rutina/internal/db"
	"github.com/javiermolinar/rutina/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Storage.DBPath), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	store, err := db.New(cfg.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}

	app := ui.NewApp(store, cfg)
	defer func() { _ = app.Close() }()
	return app.Execute()
}
