package organizer

import "time"

// Move records one file relocated (or, in a dry run, planned) by a pass.
type Move struct {
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Source      string    `json:"source"`
	Destination string    `json:"destination"`
	Renamed     bool      `json:"renamed,omitempty"`
	At          time.Time `json:"at"`
}

// Skip records a matching file left in place.
type Skip struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Reason   string `json:"reason"`
}

// Result summarizes one organize pass.
type Result struct {
	RunID     string `json:"run_id"`
	Directory string `json:"directory"`
	DryRun    bool   `json:"dry_run,omitempty"`
	// Scanned counts the regular files inspected, matched or not.
	Scanned int    `json:"scanned"`
	Moves   []Move `json:"moves"`
	Skipped []Skip `json:"skipped,omitempty"`
}

// Moved returns the number of files moved.
func (r Result) Moved() int {
	return len(r.Moves)
}
