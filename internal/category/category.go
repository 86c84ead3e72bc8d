package category

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
)

// Category is a named bucket of file extensions.
type Category struct {
	Name       string
	Extensions []string
}

// Table is an ordered, read-only set of categories.
type Table struct {
	categories []Category
	byName     map[string]int
}

var (
	ErrEmptyTable        = errors.New("category table is empty")
	ErrInvalidName       = errors.New("invalid category name")
	ErrDuplicateName     = errors.New("duplicate category name")
	ErrMissingExtensions = errors.New("category has no extensions")
	ErrInvalidExtension  = errors.New("invalid extension")
)

// Default returns the built-in table.
func Default() *Table {
	table, err := NewTable(DefaultCategories())
	if err != nil {
		panic(fmt.Sprintf("category: default table invalid: %v", err))
	}
	return table
}

// DefaultCategories returns a fresh copy of the built-in category definitions.
func DefaultCategories() []Category {
	return []Category{
		{Name: "Images", Extensions: []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".svg", ".webp"}},
		{Name: "Documents", Extensions: []string{".pdf", ".docx", ".doc", ".txt", ".xlsx", ".pptx", ".csv"}},
		{Name: "Videos", Extensions: []string{".mp4", ".mkv", ".mov", ".avi"}},
		{Name: "Audio", Extensions: []string{".mp3", ".wav", ".aac"}},
		{Name: "Archives", Extensions: []string{".zip", ".rar", ".7z", ".tar"}},
		{Name: "Code", Extensions: []string{".py", ".js", ".html", ".css", ".java", ".cpp"}},
	}
}

// NewTable validates and normalizes the supplied categories. The input slice is
// copied; later changes to it do not affect the table.
func NewTable(categories []Category) (*Table, error) {
	if len(categories) == 0 {
		return nil, ErrEmptyTable
	}
	t := &Table{
		categories: make([]Category, 0, len(categories)),
		byName:     make(map[string]int, len(categories)),
	}
	for _, c := range categories {
		name := strings.TrimSpace(c.Name)
		if err := validateName(name); err != nil {
			return nil, err
		}
		key := foldKey(name)
		if _, ok := t.byName[key]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}
		exts, err := normalizeExtensions(c.Extensions)
		if err != nil {
			return nil, fmt.Errorf("category %q: %w", name, err)
		}
		if len(exts) == 0 {
			return nil, fmt.Errorf("%w: %q", ErrMissingExtensions, name)
		}
		t.byName[key] = len(t.categories)
		t.categories = append(t.categories, Category{Name: name, Extensions: exts})
	}
	return t, nil
}

// Categories returns a copy of the table in declaration order.
func (t *Table) Categories() []Category {
	if t == nil {
		return nil
	}
	out := make([]Category, len(t.categories))
	for i, c := range t.categories {
		out[i] = Category{Name: c.Name, Extensions: append([]string(nil), c.Extensions...)}
	}
	return out
}

// Names returns category names in declaration order.
func (t *Table) Names() []string {
	if t == nil {
		return nil
	}
	names := make([]string, len(t.categories))
	for i, c := range t.categories {
		names[i] = c.Name
	}
	return names
}

// Len reports the number of categories.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.categories)
}

// Lookup resolves a category name case-insensitively to its canonical entry.
func (t *Table) Lookup(name string) (Category, bool) {
	if t == nil {
		return Category{}, false
	}
	idx, ok := t.byName[foldKey(name)]
	if !ok {
		return Category{}, false
	}
	c := t.categories[idx]
	return Category{Name: c.Name, Extensions: append([]string(nil), c.Extensions...)}, true
}

func validateName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: name is empty", ErrInvalidName)
	case name == "." || name == "..":
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	case strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, filepath.Separator):
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidName, name)
	case strings.ContainsRune(name, 0):
		return fmt.Errorf("%w: %q contains a NUL byte", ErrInvalidName, name)
	}
	return nil
}

func normalizeExtensions(values []string) ([]string, error) {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, raw := range values {
		ext := NormalizeExtension(raw)
		if ext == "" {
			continue
		}
		if ext == "." || strings.ContainsAny(ext[1:], `./\`) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidExtension, raw)
		}
		if _, ok := seen[ext]; ok {
			continue
		}
		seen[ext] = struct{}{}
		out = append(out, ext)
	}
	return out, nil
}

// NormalizeExtension lowercases (Unicode case folding) and trims an extension,
// adding the leading dot when it is missing. Blank input yields "".
func NormalizeExtension(ext string) string {
	ext = strings.TrimSpace(ext)
	if ext == "" {
		return ""
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return foldKey(ext)
}

// foldKey returns the case-folded form used for comparisons. cases.Caser is
// stateful, so a fresh one is created per call.
func foldKey(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}
