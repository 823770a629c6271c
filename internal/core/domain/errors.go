package domain

import "go.trai.ch/zerr"

var (
	// ErrScanFailed is returned when the bundle discovery scan fails.
	ErrScanFailed = zerr.New("bundle scan failed")

	// ErrCacheDirCreateFailed is returned when the cache directory cannot be created.
	ErrCacheDirCreateFailed = zerr.New("failed to create cache directory")

	// ErrCacheWriteFailed is returned when a cache file cannot be written.
	ErrCacheWriteFailed = zerr.New("failed to write cache file")

	// ErrBundleListReadFailed is returned when the cached bundle list cannot be read back.
	ErrBundleListReadFailed = zerr.New("failed to read bundle list")

	// ErrBundleListParseFailed is returned when the cached bundle list is not valid JSON.
	ErrBundleListParseFailed = zerr.New("failed to parse bundle list")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrEditorNotFound is returned when the editor executable cannot be located.
	ErrEditorNotFound = zerr.New("cannot locate the editor executable")

	// ErrEditorStartFailed is returned when spawning the editor fails.
	ErrEditorStartFailed = zerr.New("failed to start the editor")
)
