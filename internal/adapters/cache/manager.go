// Package cache owns the persisted bundle list and its staleness metadata.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/bndl/internal/adapters/fingerprint"
	"go.trai.ch/bndl/internal/core/domain"
	"go.trai.ch/bndl/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// ResultFileName is the cached bundle list consumed by downstream
	// tools via the bundles-config environment variable.
	ResultFileName = "local_bundles.json"
	// MetadataFileName is the sidecar used for staleness detection.
	MetadataFileName = "local_bundles_meta.json"
)

// resultFile is the persisted shape of the bundle list.
type resultFile struct {
	Bundles []string `json:"bundles"`
}

// metadataFile is the persisted shape of the staleness sidecar. Mtimes is
// typed so JSON numbers decode back to the exact int64 values that were
// written.
type metadataFile struct {
	Roots  string             `json:"bndl_roots"`
	Mtimes domain.Fingerprint `json:"depth2_mtimes"`
}

// Manager implements ports.BundleCache backed by a pair of JSON files in
// one cache directory.
//
// The pair is written in sequence without locking, so concurrent
// invocations may observe a torn pair. The next staleness check treats a
// torn or half-written pair as stale and regenerates it, which is
// acceptable for one local user launching one editor at a time. Reuse in a
// multi-process context needs a file lock or rename-into-place around the
// two writes.
type Manager struct {
	dir       string
	collector *fingerprint.Collector
	logger    ports.Logger
}

// NewManager creates a Manager storing its file pair in dir.
func NewManager(dir string, collector *fingerprint.Collector, logger ports.Logger) *Manager {
	return &Manager{
		dir:       filepath.Clean(dir),
		collector: collector,
		logger:    logger,
	}
}

// ResultPath returns the path of the cached bundle list.
func (m *Manager) ResultPath() string {
	return filepath.Join(m.dir, ResultFileName)
}

// MetadataPath returns the path of the staleness sidecar.
func (m *Manager) MetadataPath() string {
	return filepath.Join(m.dir, MetadataFileName)
}

// EnsureFresh returns the path of a bundle list reflecting the raw roots
// value. The scan runs only when the cached pair is missing, corrupt, or
// stale; a fresh cache is returned untouched without invoking the scanner.
// force rescans unconditionally.
func (m *Manager) EnsureFresh(ctx context.Context, roots string, force bool, scanner ports.Scanner) (string, error) {
	if !force && !m.isStale(roots) {
		m.logger.Debug("bundle list is up to date", "path", m.ResultPath())
		return m.ResultPath(), nil
	}

	rootList := domain.SplitRoots(roots)

	m.logger.Debug("scanning for bundles", "roots", len(rootList))
	bundles, err := scanner.Scan(ctx, rootList)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrScanFailed.Error())
	}

	paths := make([]string, len(bundles))
	for i, b := range bundles {
		paths[i] = b.Root
	}

	if err := os.MkdirAll(m.dir, 0o750); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrCacheDirCreateFailed.Error()), "dir", m.dir)
	}

	if err := writeJSON(m.ResultPath(), resultFile{Bundles: paths}); err != nil {
		return "", err
	}

	meta := metadataFile{
		Roots:  roots,
		Mtimes: m.collector.Collect(rootList),
	}
	if err := writeJSON(m.MetadataPath(), meta); err != nil {
		return "", err
	}

	m.logger.Info(fmt.Sprintf("wrote %d bundle(s) to %s", len(paths), m.ResultPath()))
	return m.ResultPath(), nil
}

// Read returns the bundle paths currently stored in the bundle list file.
func (m *Manager) Read() ([]string, error) {
	//nolint:gosec // Path is derived from the configured cache directory
	data, err := os.ReadFile(m.ResultPath())
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrBundleListReadFailed.Error())
	}

	var res resultFile
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrBundleListParseFailed.Error()), "path", m.ResultPath())
	}
	return res.Bundles, nil
}

// isStale reports whether the cached pair can no longer be trusted for the
// given raw roots value. Read failures and corrupt metadata degrade to
// stale, never to an error.
func (m *Manager) isStale(roots string) bool {
	if _, err := os.Stat(m.ResultPath()); err != nil {
		return true
	}

	//nolint:gosec // Path is derived from the configured cache directory
	data, err := os.ReadFile(m.MetadataPath())
	if err != nil {
		return true
	}

	var meta metadataFile
	if err := json.Unmarshal(data, &meta); err != nil {
		m.logger.Debug("cache metadata is corrupt, regenerating", "error", err)
		return true
	}

	if meta.Roots != roots {
		m.logger.Debug("bundle roots changed, regenerating")
		return true
	}

	current := m.collector.Collect(domain.SplitRoots(roots))
	if !current.Equal(meta.Mtimes) {
		m.logger.Debug("bundle root layout changed, regenerating")
		return true
	}

	return false
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", path)
	}

	//nolint:gosec // Path is derived from the configured cache directory
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", path)
	}
	return nil
}
