// Package services defines shared utilities consumed by the organizer and the
// shells that drive it.
//
// Key responsibilities:
//   - Context helpers that stamp run identifiers and target directories for
//     logging.
//   - Structured error markers plus the Wrap helper that separate user-input
//     mistakes from filesystem failures, and SeverityOf which maps them to the
//     warning/error notices shown to the user.
//
// Use these helpers when adding new operations so error reporting stays
// uniform across the CLI and the interactive shell.
package services
