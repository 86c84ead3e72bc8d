// Package config loads, normalizes, and validates filesort configuration data.
//
// It supplies repository defaults (including the built-in category table),
// expands user paths (including tilde shortcuts), and reads TOML files. The
// file is read-only input: nothing in the program writes selections or other
// state back to it.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
