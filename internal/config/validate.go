package config

import (
	"fmt"

	"filesort/internal/services"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateOrganize(); err != nil {
		return err
	}
	if err := c.validateCategories(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return invalid("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return invalid("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}

func (c *Config) validateOrganize() error {
	switch c.Organize.OnConflict {
	case ConflictRename, ConflictSkip, ConflictOverwrite:
		return nil
	default:
		return invalid("organize.on_conflict must be rename, skip, or overwrite, got %q", c.Organize.OnConflict)
	}
}

func (c *Config) validateCategories() error {
	if _, err := c.CategoryTable(); err != nil {
		return services.Wrap(services.ErrConfiguration, "config", "categories", "", err)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return services.Wrap(services.ErrConfiguration, "config", "", fmt.Sprintf(format, args...), nil)
}
