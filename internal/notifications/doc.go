// Package notifications turns the outcome of an organize run into a short
// user-facing notice and publishes it.
//
// Notices come in three kinds: warnings for input problems the user can fix,
// errors for filesystem failures, and success reports carrying the moved file
// count. The console publisher colours the notice when writing to a terminal;
// the TUI renders notices itself from the same Notice values.
package notifications
