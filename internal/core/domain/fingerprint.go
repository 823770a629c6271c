// Package domain contains the core types for bundle discovery caching.
package domain

import "maps"

// Fingerprint maps a tracked directory path to its last-modified time in
// nanoseconds since the Unix epoch. It covers every configured root that
// exists plus each root's immediate child directories, and serves as a
// cheap proxy for "did anything relevant change" since the last scan.
//
// Mtimes are compared bit-exact, at whatever resolution the filesystem
// reports. Filesystems with coarser timestamp resolution (e.g. some
// network mounts) therefore compare at that coarser resolution.
type Fingerprint map[string]int64

// Equal reports whether both fingerprints track the same paths with
// identical mtimes.
func (f Fingerprint) Equal(other Fingerprint) bool {
	return maps.Equal(f, other)
}
