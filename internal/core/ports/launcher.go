package ports

import "context"

// EditorLauncher resolves and spawns the companion editor.
//
//go:generate go run go.uber.org/mock/mockgen -source=launcher.go -destination=mocks/mock_launcher.go -package=mocks
type EditorLauncher interface {
	// Launch spawns the editor with the bundles-config path exported in
	// its environment and args forwarded verbatim, then blocks until the
	// editor exits. It returns the editor's exit code.
	Launch(ctx context.Context, bundlesConfig string, args []string) (int, error)
}
