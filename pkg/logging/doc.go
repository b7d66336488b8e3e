// Package logging provides structured logging configuration for idgen.
//
// This package wraps log/slog so the CLI and any embedding program share one
// setup path. It supports configurable log levels and output formats.
//
// # Usage
//
//	logger := logging.New(logging.Config{
//	    Level:  logging.LevelDebug,
//	    Format: logging.FormatJSON,
//	})
//
//	logger.Debug("generated", "method", "uuid", "count", 3)
//
// Logs go to stderr by default so generated identifiers on stdout stay
// machine readable.
//
// Components that accept a *slog.Logger should fall back to Nop() when none
// is provided.
package logging
