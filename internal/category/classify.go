package category

import (
	"path/filepath"
	"strings"
)

// Classify returns the name of the first category whose extension set contains
// ext. Matching is case-insensitive. The second result is false when no
// category claims the extension.
func (t *Table) Classify(ext string) (string, bool) {
	if t == nil {
		return "", false
	}
	key := NormalizeExtension(ext)
	if key == "" {
		return "", false
	}
	for _, c := range t.categories {
		for _, candidate := range c.Extensions {
			if candidate == key {
				return c.Name, true
			}
		}
	}
	return "", false
}

// ClassifyName classifies a file by the extension of its base name.
func (t *Table) ClassifyName(name string) (string, bool) {
	return t.Classify(Extension(name))
}

// Extension returns the final dot-suffix of name's base. A leading dot does
// not start an extension, so hidden files such as ".jpg" or ".bashrc" have
// none, and a trailing dot yields "".
func Extension(name string) string {
	base := filepath.Base(name)
	i := strings.LastIndexByte(base, '.')
	if i <= 0 || i == len(base)-1 {
		return ""
	}
	return base[i:]
}
