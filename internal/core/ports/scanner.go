package ports

import (
	"context"

	"go.trai.ch/bndl/internal/core/domain"
)

// Scanner performs the expensive bundle discovery scan. The cache never
// scans by itself; it only decides when to invoke a Scanner and persists
// what it returns.
//
//go:generate go run go.uber.org/mock/mockgen -source=scanner.go -destination=mocks/mock_scanner.go -package=mocks
type Scanner interface {
	// Scan returns every bundle found under the given roots, in whatever
	// order the scan produces. The cache preserves that order verbatim.
	Scan(ctx context.Context, roots []string) ([]domain.Bundle, error)
}

// ScanFunc adapts a plain function to the Scanner interface.
type ScanFunc func(ctx context.Context, roots []string) ([]domain.Bundle, error)

// Scan calls f.
func (f ScanFunc) Scan(ctx context.Context, roots []string) ([]domain.Bundle, error) {
	return f(ctx, roots)
}
