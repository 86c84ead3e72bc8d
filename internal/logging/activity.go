package logging

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"
)

const activityTimestampLayout = "15:04:05"

// ActivityEntry is one line of the user-facing activity log.
type ActivityEntry struct {
	Sequence uint64
	Time     time.Time
	Level    slog.Level
	Text     string
}

// String renders the entry as "[HH:MM:SS] text".
func (e ActivityEntry) String() string {
	return "[" + e.Time.In(time.Local).Format(activityTimestampLayout) + "] " + e.Text
}

// ActivityLog stores recent human-readable log lines in a bounded buffer. It is
// safe for concurrent use.
type ActivityLog struct {
	mu       sync.Mutex
	capacity int
	buffer   []ActivityEntry
	nextSeq  uint64
	now      func() time.Time
}

// NewActivityLog constructs an activity log keeping at most capacity entries.
func NewActivityLog(capacity int) *ActivityLog {
	if capacity <= 0 {
		capacity = 512
	}
	return &ActivityLog{capacity: capacity, now: time.Now}
}

// Printf appends a formatted info line.
func (a *ActivityLog) Printf(format string, args ...any) {
	a.append(slog.LevelInfo, time.Time{}, fmt.Sprintf(format, args...))
}

func (a *ActivityLog) append(level slog.Level, ts time.Time, text string) {
	if a == nil {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if ts.IsZero() {
		ts = a.now()
	}
	a.nextSeq++
	if len(a.buffer) == a.capacity {
		copy(a.buffer, a.buffer[1:])
		a.buffer = a.buffer[:a.capacity-1]
	}
	a.buffer = append(a.buffer, ActivityEntry{Sequence: a.nextSeq, Time: ts, Level: level, Text: text})
}

// Since returns buffered entries with a sequence greater than since, plus the
// sequence to pass on the next call.
func (a *ActivityLog) Since(since uint64) ([]ActivityEntry, uint64) {
	if a == nil {
		return nil, since
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	var out []ActivityEntry
	for _, entry := range a.buffer {
		if entry.Sequence > since {
			out = append(out, entry)
		}
	}
	return out, a.nextSeq
}

// Lines returns every buffered entry rendered with its timestamp.
func (a *ActivityLog) Lines() []string {
	entries, _ := a.Since(0)
	lines := make([]string, len(entries))
	for i, entry := range entries {
		lines[i] = entry.String()
	}
	return lines
}

// Handler returns an slog handler that appends records at or above level to the
// activity log. Component and run correlation attributes are omitted since the
// log pane only ever shows one run at a time.
func (a *ActivityLog) Handler(level slog.Leveler) slog.Handler {
	if level == nil {
		level = slog.LevelInfo
	}
	return &activityHandler{log: a, level: level}
}

type activityHandler struct {
	log    *ActivityLog
	level  slog.Leveler
	attrs  []slog.Attr
	groups []string
}

var activityHiddenKeys = map[string]struct{}{
	FieldComponent:     {},
	FieldCorrelationID: {},
	FieldDirectory:     {},
	FieldEventType:     {},
}

func (h *activityHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *activityHandler) Handle(_ context.Context, record slog.Record) error {
	kvs := collectKVs(h.groups, h.attrs, record)
	visible := kvs[:0]
	for _, item := range kvs {
		if _, hidden := activityHiddenKeys[item.key]; hidden {
			continue
		}
		visible = append(visible, item)
	}

	var buf bytes.Buffer
	if record.Level >= slog.LevelWarn {
		buf.WriteString(levelLabel(record.Level))
		buf.WriteString(": ")
	}
	buf.WriteString(strings.TrimSpace(record.Message))
	writeKVs(&buf, visible)

	h.log.append(record.Level, record.Time, buf.String())
	return nil
}

func (h *activityHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &activityHandler{
		log:    h.log,
		level:  h.level,
		attrs:  append(append([]slog.Attr(nil), h.attrs...), qualifyAttrs(h.groups, attrs)...),
		groups: h.groups,
	}
}

func (h *activityHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return &activityHandler{
		log:    h.log,
		level:  h.level,
		attrs:  h.attrs,
		groups: append(append([]string(nil), h.groups...), name),
	}
}
