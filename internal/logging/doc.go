// Package logging assembles structured slog loggers and formatting helpers used
// by the kord CLI, HTTP server and exporters.
//
// It owns the configurable console/JSON handlers, centralizes level, output and
// per-component override plumbing, and exposes context-aware helpers so request
// handlers can tag log lines with request IDs. The package also provides a
// no-op logger for tests and wiring code that cannot fail.
//
// The music theory packages never log; only the outer surfaces do.
package logging
