package ports

import "context"

// BundleCache owns the persisted bundle list and decides when the
// expensive scan has to be re-run.
//
//go:generate go run go.uber.org/mock/mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type BundleCache interface {
	// EnsureFresh returns the path of a bundle list file reflecting the
	// given raw roots value, invoking scanner only when the cached pair is
	// missing, corrupt, or stale. force bypasses the staleness check.
	EnsureFresh(ctx context.Context, roots string, force bool, scanner Scanner) (string, error)

	// Read returns the bundle paths currently stored in the bundle list
	// file, in stored order.
	Read() ([]string, error)
}
