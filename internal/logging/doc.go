// Package logging assembles structured slog loggers and formatting helpers used
// across emisora.
//
// It owns the console/JSON handlers, centralizes level and output plumbing,
// and exposes context-aware helpers so a CLI invocation can tag every log line
// with its correlation ID. The package also provides a no-op logger for tests
// and wiring code that cannot fail.
//
// Logs go to stderr by default so command output on stdout stays parseable.
package logging
