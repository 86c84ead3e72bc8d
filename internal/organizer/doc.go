// Package organizer sorts the immediate files of a directory into category
// sub-folders.
//
// An Organizer owns the category table and collision policy. Organize validates
// the target, takes the per-directory run lock, classifies every regular file
// by extension, and moves files whose category is selected into
// <dir>/<Category>/. Each move is logged and returned in the Result together
// with any files skipped because of a name collision. Filesystem failures stop
// the pass; moves already performed are reported and never rolled back.
package organizer
