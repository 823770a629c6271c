package ports_test

import (
	"go.trai.ch/bndl/internal/core/ports"
	"go.trai.ch/bndl/internal/core/ports/mocks"
)

// The generated mocks must keep implementing their source interfaces;
// regenerate with go generate ./internal/core/ports when one drifts.
var (
	_ ports.Logger         = (*mocks.MockLogger)(nil)
	_ ports.Scanner        = (*mocks.MockScanner)(nil)
	_ ports.BundleCache    = (*mocks.MockBundleCache)(nil)
	_ ports.EditorLauncher = (*mocks.MockEditorLauncher)(nil)
)
