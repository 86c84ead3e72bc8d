// Package main hosts the filesort CLI entrypoint and command graph.
//
// The Cobra-based command tree resolves configuration once, builds the
// organizer from the configured category table, and renders results as
// timestamped activity lines, tables, and a closing notice. The interactive
// shell lives in internal/tui; this package only wires it up.
package main
