// Package app implements the application layer for bndl.
package app

import (
	"context"

	"go.trai.ch/bndl/internal/adapters/config"
	"go.trai.ch/bndl/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	config  *config.Config
	cache   ports.BundleCache
	scanner ports.Scanner
	editor  ports.EditorLauncher
	logger  ports.Logger
}

// Components bundles everything the CLI entry point needs.
type Components struct {
	App    *App
	Config *config.Config
	Logger ports.Logger
}

// New creates a new App instance.
func New(
	cfg *config.Config,
	cache ports.BundleCache,
	scanner ports.Scanner,
	editor ports.EditorLauncher,
	log ports.Logger,
) *App {
	return &App{
		config:  cfg,
		cache:   cache,
		scanner: scanner,
		editor:  editor,
		logger:  log,
	}
}

// Launch brings the bundle list up to date and starts the editor with the
// list's path exported and args forwarded verbatim. It blocks until the
// editor exits and returns the editor's exit code.
func (a *App) Launch(ctx context.Context, args []string) (int, error) {
	path, err := a.cache.EnsureFresh(ctx, a.config.Roots, false, a.scanner)
	if err != nil {
		return 0, zerr.Wrap(err, "failed to refresh the bundle list")
	}

	a.logger.Debug("launching editor", "bundles_config", path)

	return a.editor.Launch(ctx, path, args)
}

// Refresh brings the bundle list up to date and returns the path of the
// bundle list file. force bypasses the staleness check and always rescans.
func (a *App) Refresh(ctx context.Context, force bool) (string, error) {
	path, err := a.cache.EnsureFresh(ctx, a.config.Roots, force, a.scanner)
	if err != nil {
		return "", zerr.Wrap(err, "failed to refresh the bundle list")
	}

	return path, nil
}

// Bundles brings the bundle list up to date and returns the stored bundle
// paths in stored order.
func (a *App) Bundles(ctx context.Context) ([]string, error) {
	if _, err := a.cache.EnsureFresh(ctx, a.config.Roots, false, a.scanner); err != nil {
		return nil, zerr.Wrap(err, "failed to refresh the bundle list")
	}

	bundles, err := a.cache.Read()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read the bundle list")
	}

	return bundles, nil
}
