package notifications

import (
	"errors"
	"fmt"
	"strings"

	"filesort/internal/organizer"
	"filesort/internal/services"
)

// Kind classifies a notice.
type Kind string

const (
	KindSuccess Kind = "success"
	KindWarning Kind = "warning"
	KindError   Kind = "error"
)

// Notice is a single message shown to the user after an organize run.
type Notice struct {
	Kind    Kind   `json:"kind"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// Outcome is what a shell knows once an organize run returns.
type Outcome struct {
	Moved   int
	Skipped int
	DryRun  bool
	Err     error
}

// FromOutcome builds the notice for a finished run.
func FromOutcome(o Outcome) Notice {
	if o.Err != nil {
		return FromError(o.Err)
	}
	var msg string
	switch {
	case o.DryRun:
		msg = fmt.Sprintf("Dry run: %s would be organized", pluralFiles(o.Moved))
	default:
		msg = fmt.Sprintf("Organized %s successfully", pluralFiles(o.Moved))
	}
	if o.Skipped > 0 {
		msg += fmt.Sprintf(" (%s skipped, destination exists)", pluralFiles(o.Skipped))
	}
	return Notice{Kind: KindSuccess, Title: "Success", Message: msg}
}

// FromError maps err to a warning or error notice.
func FromError(err error) Notice {
	if err == nil {
		return Notice{Kind: KindSuccess, Title: "Success"}
	}
	switch {
	case errors.Is(err, organizer.ErrNoDirectory):
		return Notice{Kind: KindWarning, Title: "Warning", Message: "Select a folder first"}
	case errors.Is(err, organizer.ErrNoCategories):
		return Notice{Kind: KindWarning, Title: "Warning", Message: "Select at least one category"}
	}
	if services.SeverityOf(err) == services.SeverityWarning {
		return Notice{Kind: KindWarning, Title: "Warning", Message: strings.TrimSpace(err.Error())}
	}
	return Notice{Kind: KindError, Title: "Error", Message: strings.TrimSpace(err.Error())}
}

// String renders the notice as a single line.
func (n Notice) String() string {
	label := strings.ToUpper(string(n.Kind))
	if n.Message == "" {
		return label
	}
	return label + ": " + n.Message
}

func pluralFiles(n int) string {
	if n == 1 {
		return "1 file"
	}
	return fmt.Sprintf("%d files", n)
}
