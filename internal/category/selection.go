package category

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCategory is returned when a selection names a category the table
// does not define.
var ErrUnknownCategory = errors.New("unknown category")

// Selection is the set of categories activated for one organize run. The zero
// value is an empty selection.
type Selection struct {
	keys  map[string]struct{}
	names []string
}

// NewSelection resolves names against the table (case-insensitive) and returns
// the canonical selection. Blank names are ignored; duplicates collapse.
func NewSelection(t *Table, names ...string) (Selection, error) {
	sel := Selection{keys: make(map[string]struct{}, len(names))}
	var unknown []string
	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		c, ok := t.Lookup(name)
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		sel.add(c.Name)
	}
	if len(unknown) > 0 {
		return Selection{}, fmt.Errorf("%w: %s (known: %s)", ErrUnknownCategory, strings.Join(unknown, ", "), strings.Join(t.Names(), ", "))
	}
	sel.sortBy(t)
	return sel, nil
}

// SelectAll returns a selection containing every category in the table.
func SelectAll(t *Table) Selection {
	names := t.Names()
	sel := Selection{keys: make(map[string]struct{}, len(names))}
	for _, name := range names {
		sel.add(name)
	}
	return sel
}

func (s *Selection) add(name string) {
	key := foldKey(name)
	if _, ok := s.keys[key]; ok {
		return
	}
	s.keys[key] = struct{}{}
	s.names = append(s.names, name)
}

// sortBy orders names by table declaration order.
func (s *Selection) sortBy(t *Table) {
	ordered := make([]string, 0, len(s.names))
	for _, name := range t.Names() {
		if s.Contains(name) {
			ordered = append(ordered, name)
		}
	}
	s.names = ordered
}

// Contains reports whether the category name is selected.
func (s Selection) Contains(name string) bool {
	if len(s.keys) == 0 {
		return false
	}
	_, ok := s.keys[foldKey(name)]
	return ok
}

// Empty reports whether no categories are selected.
func (s Selection) Empty() bool { return len(s.keys) == 0 }

// Len returns the number of selected categories.
func (s Selection) Len() int { return len(s.keys) }

// Names returns the selected category names in table order.
func (s Selection) Names() []string { return append([]string(nil), s.names...) }

func (s Selection) String() string {
	if s.Empty() {
		return "(none)"
	}
	return strings.Join(s.names, ", ")
}
