// Package editor resolves and spawns the companion editor process.
package editor

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"go.trai.ch/bndl/internal/core/domain"
	"go.trai.ch/zerr"
)

// editorBinary is the executable looked up on PATH when no explicit
// override is configured.
const editorBinary = "code"

// Resolver locates the editor executable.
type Resolver struct {
	explicit string
}

// NewResolver creates a Resolver. explicit, when non-empty, names an
// executable that short-circuits PATH lookup (set via BNDL_EDITOR or the
// config file).
func NewResolver(explicit string) *Resolver {
	return &Resolver{explicit: explicit}
}

// Resolve returns the path of the editor executable.
//
// Resolution order: the explicit override when it exists on disk, then
// PATH lookup, then the platform's standard install locations.
func (r *Resolver) Resolve() (string, error) {
	if explicit := strings.TrimSpace(r.explicit); explicit != "" {
		if _, err := os.Stat(explicit); err == nil {
			return explicit, nil
		}
	}

	if found, err := exec.LookPath(editorBinary); err == nil {
		return found, nil
	}

	fallbacks := fallbackPaths()
	for _, candidate := range fallbacks {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", zerr.With(domain.ErrEditorNotFound, "tried", strings.Join(fallbacks, ", "))
}

// fallbackPaths lists the standard install locations for the current
// platform.
func fallbackPaths() []string {
	switch runtime.GOOS {
	case "windows":
		return []string{
			filepath.Join(os.Getenv("LOCALAPPDATA"), "Programs", "Microsoft VS Code", "Code.exe"),
			filepath.Join("C:\\", "Program Files", "Microsoft VS Code", "Code.exe"),
		}
	case "darwin":
		return []string{
			"/Applications/Visual Studio Code.app/Contents/Resources/app/bin/code",
		}
	default:
		return []string{
			"/usr/bin/code",
			"/usr/local/bin/code",
			"/snap/bin/code",
		}
	}
}
