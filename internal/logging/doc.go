// Package logging constructs the application's slog loggers and provides
// typed attribute helpers so call sites never import log/slog directly.
//
// Two output formats are supported: a compact console format for interactive
// use and JSON for log files and machine consumption. Components derive
// scoped loggers with logger.With(logging.String("component", ...)).
package logging
