// Package fileutil holds the filesystem primitives the organizer relies on:
// the rename-or-copy move, existence probing, and directory access checks.
package fileutil
