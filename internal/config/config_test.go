package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"filesort/internal/category"
	"filesort/internal/config"
	"filesort/internal/services"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaultConfigWithoutFile(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("XDG_CACHE_HOME", "")

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if want := filepath.Join(tempHome, ".config", "filesort", "config.toml"); resolved != want {
		t.Fatalf("resolved = %q, want %q", resolved, want)
	}
	if cfg.Organize.OnConflict != config.ConflictRename {
		t.Fatalf("on_conflict = %q, want rename", cfg.Organize.OnConflict)
	}
	if want := filepath.Join(tempHome, ".cache", "filesort", "locks"); cfg.Organize.LockDir != want {
		t.Fatalf("lock dir = %q, want %q", cfg.Organize.LockDir, want)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	table, err := cfg.CategoryTable()
	if err != nil {
		t.Fatalf("CategoryTable: %v", err)
	}
	if table.Len() != category.Default().Len() {
		t.Fatalf("table has %d categories, want %d", table.Len(), category.Default().Len())
	}
}

func TestLoadCustomCategoriesReplaceDefaults(t *testing.T) {
	path := writeConfig(t, `
[organize]
on_conflict = " Skip "

[[categories]]
name = "Raw"
extensions = ["CR2", ".nef"]

[[categories]]
name = "Images"
extensions = [".jpg"]
`)
	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("resolved = %q exists = %v", resolved, exists)
	}
	if cfg.Organize.OnConflict != config.ConflictSkip {
		t.Fatalf("on_conflict = %q, want skip", cfg.Organize.OnConflict)
	}
	table, err := cfg.CategoryTable()
	if err != nil {
		t.Fatalf("CategoryTable: %v", err)
	}
	if got := strings.Join(table.Names(), ","); got != "Raw,Images" {
		t.Fatalf("names = %s", got)
	}
	if name, _ := table.Classify(".CR2"); name != "Raw" {
		t.Fatalf("Classify(.CR2) = %q", name)
	}
	if _, ok := table.Classify(".mp4"); ok {
		t.Fatal("defaults should be replaced, .mp4 must not classify")
	}
}

func TestLoadWithoutCategoriesKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "[logging]\nlevel = \"DEBUG\"\nformat = \"json\"\n")
	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Fatalf("logging = %+v", cfg.Logging)
	}
	if len(cfg.Categories) != len(category.DefaultCategories()) {
		t.Fatalf("categories = %d, want defaults", len(cfg.Categories))
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"conflict", "[organize]\non_conflict = \"merge\"\n", "organize.on_conflict"},
		{"format", "[logging]\nformat = \"xml\"\n", "logging.format"},
		{"level", "[logging]\nlevel = \"trace\"\n", "logging.level"},
		{"duplicate category", "[[categories]]\nname = \"A\"\nextensions = [\".a\"]\n[[categories]]\nname = \"a\"\nextensions = [\".b\"]\n", "duplicate category name"},
		{"bad name", "[[categories]]\nname = \"a/b\"\nextensions = [\".a\"]\n", "path separator"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := config.Load(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, services.ErrConfiguration) {
				t.Fatalf("expected configuration marker, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	_, _, _, err := config.Load(writeConfig(t, "[organize]\nrecursive = true\n"))
	if err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestLoadExplicitMissingPath(t *testing.T) {
	_, _, _, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
}

func TestCreateSampleLoadsCleanly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !exists {
		t.Fatal("expected sample to exist")
	}
	want := category.Default().Names()
	table, err := cfg.CategoryTable()
	if err != nil {
		t.Fatalf("CategoryTable: %v", err)
	}
	if strings.Join(table.Names(), ",") != strings.Join(want, ",") {
		t.Fatalf("sample categories %v differ from defaults %v", table.Names(), want)
	}
}

func TestExpandPathTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	got, err := config.ExpandPath("~/logs/filesort.log")
	if err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}
	if want := filepath.Join(home, "logs", "filesort.log"); got != want {
		t.Fatalf("ExpandPath = %q, want %q", got, want)
	}
}

func TestEnsureDirectories(t *testing.T) {
	base := t.TempDir()
	cfg := config.Default()
	cfg.Organize.LockDir = filepath.Join(base, "locks")
	cfg.Logging.File = filepath.Join(base, "logs", "filesort.log")
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}
	for _, dir := range []string{cfg.Organize.LockDir, filepath.Dir(cfg.Logging.File)} {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			t.Fatalf("expected directory %s: %v", dir, err)
		}
	}
}
