// Package tui implements the interactive organize shell: a directory field, a
// checkbox grid of categories, an organize trigger, and a scrolling activity
// pane fed by the shared ActivityLog.
package tui
