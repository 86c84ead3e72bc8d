// Package category owns the extension table that routes files into folders.
//
// A Table is an ordered, immutable list of named categories, each holding a set
// of lowercase extensions with a leading dot. Classification walks the table in
// declaration order so the first matching category wins when extensions
// overlap. Selection captures the subset of category names a single organize
// run acts on.
//
// Build tables through NewTable (or Default) so names and extensions are
// normalized once; callers never mutate a table after construction.
package category
