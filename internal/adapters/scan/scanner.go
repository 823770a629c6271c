// Package scan implements bundle discovery across the configured roots.
package scan

import (
	"context"
	"os"
	"path/filepath"

	"go.trai.ch/bndl/internal/core/domain"
	"go.trai.ch/bndl/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

var _ ports.Scanner = (*Scanner)(nil)

// Scanner discovers bundles by listing each root's immediate children and
// keeping the directories that contain the marker subdirectory. Roots are
// scanned concurrently; the combined result preserves root order, with
// each root's bundles in directory listing order.
type Scanner struct {
	logger ports.Logger
}

// NewScanner creates a new Scanner.
func NewScanner(logger ports.Logger) *Scanner {
	return &Scanner{logger: logger}
}

// Scan returns every bundle found under roots. Unreadable or missing roots
// are debug-logged and skipped.
func (s *Scanner) Scan(ctx context.Context, roots []string) ([]domain.Bundle, error) {
	perRoot := make([][]domain.Bundle, len(roots))

	g, ctx := errgroup.WithContext(ctx)
	for i, root := range roots {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			perRoot[i] = s.scanRoot(root)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var bundles []domain.Bundle
	for _, found := range perRoot {
		bundles = append(bundles, found...)
	}
	return bundles, nil
}

func (s *Scanner) scanRoot(root string) []domain.Bundle {
	entries, err := os.ReadDir(root)
	if err != nil {
		s.logger.Debug("could not list root", "path", root, "error", err)
		return nil
	}

	var bundles []domain.Bundle
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		candidate := filepath.Join(root, entry.Name())
		marker, err := os.Stat(filepath.Join(candidate, domain.MarkerDirName))
		if err != nil || !marker.IsDir() {
			continue
		}
		bundles = append(bundles, domain.Bundle{Root: candidate})
	}
	return bundles
}
