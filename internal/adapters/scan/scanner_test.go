package scan_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bndl/internal/adapters/scan"
	"go.trai.ch/bndl/internal/core/domain"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string)          {}
func (nopLogger) Warn(string)          {}
func (nopLogger) Error(error)          {}
func (nopLogger) SetOutput(io.Writer)  {}
func (nopLogger) SetVerbose(bool)      {}

// addBundle creates a bundle directory (child with marker subdir) under root.
func addBundle(t *testing.T, root, name string) string {
	t.Helper()
	dir := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, domain.MarkerDirName), 0o750))
	return dir
}

func TestScanner_Scan(t *testing.T) {
	scanner := scan.NewScanner(nopLogger{})

	t.Run("finds marked children only", func(t *testing.T) {
		root := t.TempDir()
		want := addBundle(t, root, "alpha")
		// Plain directory without marker.
		require.NoError(t, os.Mkdir(filepath.Join(root, "plain"), 0o750))
		// Marker present but as a file, not a directory.
		fake := filepath.Join(root, "fake")
		require.NoError(t, os.Mkdir(fake, 0o750))
		require.NoError(t, os.WriteFile(filepath.Join(fake, domain.MarkerDirName), []byte(""), 0o600))
		// Plain file under the root.
		require.NoError(t, os.WriteFile(filepath.Join(root, "stray.txt"), []byte(""), 0o600))

		bundles, err := scanner.Scan(context.Background(), []string{root})
		require.NoError(t, err)
		assert.Equal(t, []domain.Bundle{{Root: want}}, bundles)
	})

	t.Run("preserves root order across concurrent scans", func(t *testing.T) {
		rootA := t.TempDir()
		rootB := t.TempDir()
		a1 := addBundle(t, rootA, "a1")
		a2 := addBundle(t, rootA, "a2")
		b1 := addBundle(t, rootB, "b1")

		bundles, err := scanner.Scan(context.Background(), []string{rootA, rootB})
		require.NoError(t, err)
		assert.Equal(t, []domain.Bundle{{Root: a1}, {Root: a2}, {Root: b1}}, bundles)

		reversed, err := scanner.Scan(context.Background(), []string{rootB, rootA})
		require.NoError(t, err)
		assert.Equal(t, []domain.Bundle{{Root: b1}, {Root: a1}, {Root: a2}}, reversed)
	})

	t.Run("missing root is skipped", func(t *testing.T) {
		root := t.TempDir()
		want := addBundle(t, root, "alpha")
		missing := filepath.Join(root, "alpha", "nope")

		bundles, err := scanner.Scan(context.Background(), []string{missing, root})
		require.NoError(t, err)
		assert.Equal(t, []domain.Bundle{{Root: want}}, bundles)
	})

	t.Run("no roots yields no bundles", func(t *testing.T) {
		bundles, err := scanner.Scan(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, bundles)
	})

	t.Run("cancelled context aborts", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := scanner.Scan(ctx, []string{t.TempDir()})
		require.Error(t, err)
	})
}
