package config

import "filesort/internal/category"

const (
	defaultLogFormat  = "console"
	defaultLogLevel   = "info"
	defaultOnConflict = ConflictRename
)

// Collision policies accepted by organize.on_conflict.
const (
	ConflictRename    = "rename"
	ConflictSkip      = "skip"
	ConflictOverwrite = "overwrite"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Organize: Organize{
			OnConflict: defaultOnConflict,
			LockDir:    defaultLockDir(),
		},
		Categories: defaultCategories(),
	}
}

func defaultCategories() []Category {
	builtin := category.DefaultCategories()
	out := make([]Category, 0, len(builtin))
	for _, c := range builtin {
		out = append(out, Category{Name: c.Name, Extensions: c.Extensions})
	}
	return out
}
