// Package ports defines the interfaces between the application core and
// its adapters.
package ports

import "io"

// Logger defines the interface for logging.
//
//go:generate go run go.uber.org/mock/mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	// Debug logs a debug message with optional key-value attributes.
	// Debug output is suppressed unless verbose mode is enabled.
	Debug(msg string, args ...any)
	// Info logs an informational message.
	Info(msg string)
	// Warn logs a warning message.
	Warn(msg string)
	// Error logs an error with its cause chain.
	Error(err error)
	// SetOutput updates the logger's output destination.
	SetOutput(w io.Writer)
	// SetVerbose toggles debug-level output.
	SetVerbose(enable bool)
}
