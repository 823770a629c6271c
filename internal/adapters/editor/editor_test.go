package editor_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bndl/internal/adapters/editor"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string)          {}
func (nopLogger) Warn(string)          {}
func (nopLogger) Error(error)          {}
func (nopLogger) SetOutput(io.Writer)  {}
func (nopLogger) SetVerbose(bool)      {}

// writeScript drops an executable shell script into dir.
func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o700)) //nolint:gosec // test script must be executable
	return path
}

func requireUnix(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("tests rely on shell scripts")
	}
}

func TestResolver_Resolve(t *testing.T) {
	requireUnix(t)

	t.Run("explicit override wins", func(t *testing.T) {
		script := writeScript(t, t.TempDir(), "my-editor", "exit 0")

		got, err := editor.NewResolver(script).Resolve()
		require.NoError(t, err)
		assert.Equal(t, script, got)
	})

	t.Run("nonexistent override falls back to PATH", func(t *testing.T) {
		dir := t.TempDir()
		onPath := writeScript(t, dir, "code", "exit 0")
		t.Setenv("PATH", dir)

		got, err := editor.NewResolver(filepath.Join(dir, "missing")).Resolve()
		require.NoError(t, err)
		assert.Equal(t, onPath, got)
	})

	t.Run("nothing found is an error", func(t *testing.T) {
		t.Setenv("PATH", t.TempDir())
		for _, installed := range []string{"/usr/bin/code", "/usr/local/bin/code", "/snap/bin/code"} {
			if _, err := os.Stat(installed); err == nil {
				t.Skipf("editor installed at %s", installed)
			}
		}

		_, err := editor.NewResolver("").Resolve()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot locate the editor executable")
	})
}

func TestLauncher_Launch(t *testing.T) {
	requireUnix(t)

	t.Run("exports bundles config and forwards args", func(t *testing.T) {
		dir := t.TempDir()
		script := writeScript(t, dir, "editor", `echo "$BNDL_BUNDLES_CONFIG $1"`)

		stdout := new(bytes.Buffer)
		launcher := editor.NewLauncher(editor.NewResolver(script), nopLogger{}).
			WithOutput(stdout, io.Discard)

		code, err := launcher.Launch(context.Background(), "/tmp/local_bundles.json", []string{"--new-window"})
		require.NoError(t, err)
		assert.Equal(t, 0, code)
		assert.Equal(t, "/tmp/local_bundles.json --new-window\n", stdout.String())
	})

	t.Run("propagates the exit code", func(t *testing.T) {
		script := writeScript(t, t.TempDir(), "editor", "exit 3")

		launcher := editor.NewLauncher(editor.NewResolver(script), nopLogger{}).
			WithOutput(io.Discard, io.Discard)

		code, err := launcher.Launch(context.Background(), "unused", nil)
		require.NoError(t, err)
		assert.Equal(t, 3, code)
	})

	t.Run("unresolvable editor is an error", func(t *testing.T) {
		t.Setenv("PATH", t.TempDir())

		launcher := editor.NewLauncher(editor.NewResolver(""), nopLogger{})
		_, err := launcher.Launch(context.Background(), "unused", nil)
		require.Error(t, err)
	})
}
