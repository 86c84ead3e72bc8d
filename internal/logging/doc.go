// Package logging assembles structured slog loggers and formatting helpers used
// across filesort.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so organize runs automatically
// tag log lines with their run ID and target directory. ActivityLog keeps the
// short timestamped lines the interactive shell shows in its log pane. The
// package also provides a no-op logger for tests and wiring code that cannot
// fail.
//
// Prefer these constructors over hand-rolled slog setup so new components emit
// data with the same shape as the rest of the program.
package logging
