package editor

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"go.trai.ch/bndl/internal/core/domain"
	"go.trai.ch/bndl/internal/core/ports"
	"go.trai.ch/zerr"
)

// BundlesConfigEnvVar tells editor subprocesses where the cached bundle
// list lives, so commands run from its terminals skip the discovery scan.
const BundlesConfigEnvVar = "BNDL_BUNDLES_CONFIG"

var _ ports.EditorLauncher = (*Launcher)(nil)

// Launcher implements ports.EditorLauncher using os/exec.
type Launcher struct {
	resolver *Resolver
	logger   ports.Logger
	stdout   io.Writer
	stderr   io.Writer
}

// NewLauncher creates a Launcher that forwards the editor's output to this
// process's stdout and stderr.
func NewLauncher(resolver *Resolver, logger ports.Logger) *Launcher {
	return &Launcher{
		resolver: resolver,
		logger:   logger,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
	}
}

// WithOutput redirects the editor's output streams. Used for testing.
func (l *Launcher) WithOutput(stdout, stderr io.Writer) *Launcher {
	l.stdout = stdout
	l.stderr = stderr
	return l
}

// Launch spawns the editor with args forwarded verbatim and blocks until
// it exits. The child inherits the current environment plus the
// bundles-config variable, and returns the editor's exit code.
func (l *Launcher) Launch(ctx context.Context, bundlesConfig string, args []string) (int, error) {
	exe, err := l.resolver.Resolve()
	if err != nil {
		return -1, err
	}

	l.logger.Debug("spawning editor", "exe", exe, "args", strings.Join(args, " "))

	//nolint:gosec // The executable is resolved from trusted configuration
	cmd := exec.CommandContext(ctx, exe, args...)
	cmd.Env = append(os.Environ(), BundlesConfigEnvVar+"="+bundlesConfig)
	cmd.Stdin = os.Stdin
	cmd.Stdout = l.stdout
	cmd.Stderr = l.stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return -1, zerr.With(zerr.Wrap(err, domain.ErrEditorStartFailed.Error()), "exe", exe)
	}
	return 0, nil
}
