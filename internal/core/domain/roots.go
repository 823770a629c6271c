package domain

import (
	"os"
	"strings"
)

// RootsEnvVar is the environment variable holding the separator-delimited
// list of bundle root directories.
const RootsEnvVar = "BNDL_ROOTS"

// SplitRoots splits a raw roots value on the platform path-list separator,
// trimming whitespace and dropping empty segments.
//
// The raw string itself is the cache identity: two root sets are the same
// only when their raw values are byte-identical. No canonicalization,
// de-duplication, or reordering is performed, so changing root order or
// whitespace counts as a change.
func SplitRoots(raw string) []string {
	segments := strings.Split(raw, string(os.PathListSeparator))
	roots := make([]string, 0, len(segments))
	for _, seg := range segments {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		roots = append(roots, seg)
	}
	return roots
}
