// Package ui implements the rutina command line interface.
package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/rutina/internal/config"
	"github.com/javiermolinar/rutina/internal/dateutil"
	"github.com/javiermolinar/rutina/internal/session"
	"github.com/javiermolinar/rutina/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	store  session.Store
	config *config.Config
	root   *cobra.Command
	debug  bool // Enable debug logging
}

// NewApp creates a new CLI application with the given store and config.
func NewApp(store session.Store, cfg *config.Config) *App {
	a := &App{store: store, config: cfg}

	a.root = &cobra.Command{
		Use:   "rutina",
		Short: "A daily schedule planner",
		Long: `Rutina keeps a recurring daily template of habits, meals, and your
work block, renders today's schedule from it, tracks completion, and
resolves time conflicts when you add ad-hoc tasks.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			sess, err := a.loadSession(context.Background(), time.Now())
			if err != nil {
				return err
			}
			return tui.RunWithDebug(sess, a.store, a.debug)
		},
	}

	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to rutina-debug.log)")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.showCmd())
	a.root.AddCommand(a.addCmd())
	a.root.AddCommand(a.doneCmd())
	a.root.AddCommand(a.undoneCmd())
	a.root.AddCommand(a.holidayCmd())
	a.root.AddCommand(a.profileCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("rutina %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases the underlying store.
func (a *App) Close() error {
	if a.store == nil {
		return nil
	}
	return a.store.Close()
}

// loadSession restores today's session from the store. A missing store
// state yields a fresh, empty session.
func (a *App) loadSession(ctx context.Context, now time.Time) (*session.Session, error) {
	sess := session.New(a.config)
	if a.store == nil {
		return sess, nil
	}
	st, err := a.store.LoadState(ctx, dateutil.TruncateToDay(now))
	if err != nil {
		return nil, fmt.Errorf("loading session state: %w", err)
	}
	if err := sess.Restore(st, now); err != nil {
		return nil, fmt.Errorf("restoring session: %w", err)
	}
	return sess, nil
}

// saveSession snapshots the session back to the store.
func (a *App) saveSession(ctx context.Context, sess *session.Session, now time.Time) error {
	if a.store == nil {
		return nil
	}
	if err := a.store.SaveState(ctx, sess.Snapshot(dateutil.TruncateToDay(now))); err != nil {
		return fmt.Errorf("saving session state: %w", err)
	}
	return nil
}
