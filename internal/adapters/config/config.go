// Package config assembles the launcher configuration from the environment
// and an optional per-user YAML file.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/bndl/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	// FileName is the optional override file, looked up in the cache
	// directory.
	FileName = "bndl.yaml"

	// EditorEnvVar overrides editor resolution with an explicit executable
	// path.
	EditorEnvVar = "BNDL_EDITOR"
)

// Config holds the resolved launcher configuration.
type Config struct {
	// Roots is the raw separator-delimited roots value. Its byte-identical
	// form is part of the cache identity, so it is carried verbatim.
	Roots string
	// CacheDir is the directory holding the bundle list pair.
	CacheDir string
	// Editor is an explicit editor executable path, overriding PATH lookup.
	Editor string
}

// fileConfig is the YAML shape of the optional override file.
type fileConfig struct {
	Roots    string `yaml:"roots"`
	CacheDir string `yaml:"cache_dir"`
	Editor   string `yaml:"editor"`
}

// DefaultCacheDir returns the per-user directory used when no override is
// configured.
func DefaultCacheDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", zerr.Wrap(err, "failed to locate the user config directory")
	}
	return filepath.Join(base, "bndl"), nil
}

// Load assembles the configuration. The YAML file is optional and applied
// first; environment variables win. A missing file is not an error, a
// malformed one is.
func Load() (*Config, error) {
	dir, err := DefaultCacheDir()
	if err != nil {
		return nil, err
	}

	cfg := &Config{CacheDir: dir}

	if err := applyFile(cfg, filepath.Join(dir, FileName)); err != nil {
		return nil, err
	}

	if v, ok := os.LookupEnv(domain.RootsEnvVar); ok {
		cfg.Roots = v
	}
	if v, ok := os.LookupEnv(EditorEnvVar); ok {
		cfg.Editor = v
	}

	return cfg, nil
}

func applyFile(cfg *Config, path string) error {
	//nolint:gosec // Path is derived from the user config directory
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file fileConfig
	if err := yaml.Unmarshal(data, &file); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	if file.Roots != "" {
		cfg.Roots = file.Roots
	}
	if file.CacheDir != "" {
		cfg.CacheDir = file.CacheDir
	}
	if file.Editor != "" {
		cfg.Editor = file.Editor
	}
	return nil
}
