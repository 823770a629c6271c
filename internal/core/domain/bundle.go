package domain

// MarkerDirName is the subdirectory whose presence makes a directory under
// a root a bundle.
const MarkerDirName = "bndl_env"

// Bundle is a self-describing directory discovered under a configured root.
// Its internal structure is opaque to the cache; only the root path is
// tracked.
type Bundle struct {
	Root string
}
