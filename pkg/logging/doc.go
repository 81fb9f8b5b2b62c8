// Package logging provides structured logging utilities for relkit.
//
// It wraps the standard library slog package with relkit defaults: JSON
// output to stderr, module/version context on every record, and source
// location tracking for debug logs.
//
// Setting the default logger (recommended):
//
//	logging.SetDefaultStructuredLoggerWithLevel("relkit", version, "info")
//	slog.Info("version bumped", "old", old, "new", next)
//
// The LOG_LEVEL environment variable controls verbosity when no explicit
// level is given (debug, info, warn, error; default info):
//
//	LOG_LEVEL=debug relkit bump patch
//
// Pure functions (pkg/version) never log; logging happens only at the
// orchestration boundary (pkg/bumper) and in the CLI.
package logging
