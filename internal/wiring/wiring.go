// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/bndl/internal/adapters/cache"
	_ "go.trai.ch/bndl/internal/adapters/config"
	_ "go.trai.ch/bndl/internal/adapters/editor"
	_ "go.trai.ch/bndl/internal/adapters/fingerprint"
	_ "go.trai.ch/bndl/internal/adapters/logger"
	_ "go.trai.ch/bndl/internal/adapters/scan"
	// Register app nodes.
	_ "go.trai.ch/bndl/internal/app"
)
