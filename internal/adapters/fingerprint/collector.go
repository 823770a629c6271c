// Package fingerprint computes the structural fingerprint used for cache
// staleness detection.
package fingerprint

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/bndl/internal/core/domain"
	"go.trai.ch/bndl/internal/core/ports"
)

// Collector records last-modified times for each configured root directory
// and its immediate child directories. Two levels are sufficient to detect
// a bundle appearing under a root, a bundle removed, and the marker
// directory added to or removed from an existing bundle (each of those
// updates the mtime of a tracked directory).
type Collector struct {
	logger ports.Logger
}

// NewCollector creates a new Collector.
func NewCollector(logger ports.Logger) *Collector {
	return &Collector{logger: logger}
}

// Collect returns the fingerprint of the given roots. Roots that do not
// exist or are not directories contribute nothing; an unreadable root or
// child is debug-logged and skipped, never failing the whole computation.
func (c *Collector) Collect(roots []string) domain.Fingerprint {
	fp := make(domain.Fingerprint)
	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				c.logger.Debug("could not stat root", "path", root, "error", err)
			}
			continue
		}
		if !info.IsDir() {
			continue
		}
		fp[root] = info.ModTime().UnixNano()

		entries, err := os.ReadDir(root)
		if err != nil {
			c.logger.Debug("could not list root", "path", root, "error", err)
			continue
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			child := filepath.Join(root, entry.Name())
			childInfo, err := entry.Info()
			if err != nil {
				c.logger.Debug("could not stat child", "path", child, "error", err)
				continue
			}
			fp[child] = childInfo.ModTime().UnixNano()
		}
	}
	return fp
}
