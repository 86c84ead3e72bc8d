package organizer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"filesort/internal/category"
	"filesort/internal/config"
	"filesort/internal/fileutil"
	"filesort/internal/logging"
	"filesort/internal/services"
)

var (
	// ErrNoDirectory is returned when Organize is called without a target.
	ErrNoDirectory = fmt.Errorf("%w: no directory selected", services.ErrValidation)
	// ErrNoCategories is returned when the selection is empty.
	ErrNoCategories = fmt.Errorf("%w: no categories selected", services.ErrValidation)
)

// Options tunes an Organizer.
type Options struct {
	// OnConflict is one of the config.Conflict* policies. Blank means rename.
	OnConflict string
	// LockDir holds per-directory run locks. Blank disables locking.
	LockDir string
	DryRun  bool
	Logger  *slog.Logger
}

// Organizer moves files into category folders.
type Organizer struct {
	table  *category.Table
	opts   Options
	logger *slog.Logger
	now    func() time.Time
	newID  func() string
}

// New constructs an organizer for the given category table. A nil table uses
// the built-in categories.
func New(table *category.Table, opts Options) (*Organizer, error) {
	if table == nil {
		table = category.Default()
	}
	switch opts.OnConflict {
	case "":
		opts.OnConflict = config.ConflictRename
	case config.ConflictRename, config.ConflictSkip, config.ConflictOverwrite:
	default:
		return nil, services.Wrap(services.ErrConfiguration, "organize", "collision policy", fmt.Sprintf("unsupported value %q", opts.OnConflict), nil)
	}
	return &Organizer{
		table:  table,
		opts:   opts,
		logger: logging.NewComponentLogger(opts.Logger, "organizer"),
		now:    time.Now,
		newID:  uuid.NewString,
	}, nil
}

// NewFromConfig builds an organizer from loaded configuration.
func NewFromConfig(cfg *config.Config, logger *slog.Logger, dryRun bool) (*Organizer, error) {
	if cfg == nil {
		return New(nil, Options{DryRun: dryRun, Logger: logger})
	}
	table, err := cfg.CategoryTable()
	if err != nil {
		return nil, err
	}
	return New(table, Options{
		OnConflict: cfg.Organize.OnConflict,
		LockDir:    cfg.Organize.LockDir,
		DryRun:     dryRun,
		Logger:     logger,
	})
}

// Table returns the category table used for classification.
func (o *Organizer) Table() *category.Table {
	return o.table
}

// Organize performs one pass over the immediate entries of dir, moving every
// regular file whose category is in sel into dir/<Category>. On a filesystem
// failure the moves completed so far are returned along with the error.
func (o *Organizer) Organize(ctx context.Context, dir string, sel category.Selection) (Result, error) {
	result := Result{DryRun: o.opts.DryRun}
	started := o.now()

	dir = strings.TrimSpace(dir)
	if dir == "" {
		return result, ErrNoDirectory
	}
	if sel.Empty() {
		return result, ErrNoCategories
	}

	target, err := filepath.Abs(dir)
	if err != nil {
		return result, services.Wrap(services.ErrFilesystem, "organize", "resolve directory", dir, err)
	}
	result.Directory = target
	if err := validateTarget(target); err != nil {
		return result, err
	}

	lock, err := acquireRunLock(o.opts.LockDir, target)
	if err != nil {
		return result, err
	}
	defer func() {
		if err := lock.release(); err != nil {
			o.logger.Warn("failed to release run lock", logging.Error(err))
		}
	}()

	result.RunID = o.newID()
	ctx = services.WithRunID(ctx, result.RunID)
	ctx = services.WithDirectory(ctx, target)
	logger := logging.WithContext(ctx, o.logger)

	logger.Debug("organize started",
		logging.Strings("categories", sel.Names()),
		logging.Bool("dry_run", o.opts.DryRun),
		logging.String("on_conflict", o.opts.OnConflict),
	)

	entries, err := os.ReadDir(target)
	if err != nil {
		return result, services.Wrap(services.ErrFilesystem, "organize", "read directory", target, err)
	}

	planner := newDestinationPlanner(o.opts.OnConflict)
	for _, entry := range entries {
		// Only regular files are candidates; Type() reports the entry itself,
		// so symlinks are never followed.
		if !entry.Type().IsRegular() {
			continue
		}
		result.Scanned++

		name := entry.Name()
		categoryName, ok := o.table.ClassifyName(name)
		if !ok || !sel.Contains(categoryName) {
			continue
		}

		move, skip, err := o.place(target, name, categoryName, planner)
		if err != nil {
			logger.Error("move failed",
				logging.String("file", name),
				logging.String("category", categoryName),
				logging.Error(err),
			)
			return result, err
		}
		if skip != nil {
			result.Skipped = append(result.Skipped, *skip)
			logging.WarnWithContext(logger, "destination exists; file skipped", "collision_skip",
				logging.String("file", name),
				logging.String("category", categoryName),
				logging.String(logging.FieldErrorHint, "set organize.on_conflict to rename or overwrite"),
				logging.String(logging.FieldImpact, "file left in place"),
			)
			continue
		}

		result.Moves = append(result.Moves, *move)
		msg := "moved file"
		if o.opts.DryRun {
			msg = "would move file"
		}
		attrs := []logging.Attr{
			logging.String("file", name),
			logging.String("category", categoryName),
		}
		if move.Renamed {
			attrs = append(attrs, logging.String("renamed_to", filepath.Base(move.Destination)))
		}
		logger.Info(msg, logging.Args(attrs...)...)
	}

	summary := "organize completed"
	if o.opts.DryRun {
		summary = "dry run completed"
	}
	logger.Info(summary,
		logging.Int("moved", result.Moved()),
		logging.Int("skipped", len(result.Skipped)),
		logging.Int("scanned", result.Scanned),
		logging.Duration("elapsed", o.now().Sub(started)),
	)
	return result, nil
}

func (o *Organizer) place(dir, name, categoryName string, planner *destinationPlanner) (*Move, *Skip, error) {
	folder := filepath.Join(dir, categoryName)
	if !o.opts.DryRun {
		if err := os.MkdirAll(folder, 0o755); err != nil {
			return nil, nil, services.Wrap(services.ErrFilesystem, "organize", "create category folder", folder, err)
		}
	}

	destination, renamed, ok, err := planner.resolve(folder, name)
	if err != nil {
		return nil, nil, services.Wrap(services.ErrFilesystem, "organize", "resolve destination", name, err)
	}
	if !ok {
		return nil, &Skip{Name: name, Category: categoryName, Reason: "destination exists"}, nil
	}

	source := filepath.Join(dir, name)
	if !o.opts.DryRun {
		if err := fileutil.Move(source, destination); err != nil {
			return nil, nil, services.Wrap(services.ErrFilesystem, "organize", "move file", name, err)
		}
	}
	return &Move{
		Name:        name,
		Category:    categoryName,
		Source:      source,
		Destination: destination,
		Renamed:     renamed,
		At:          o.now(),
	}, nil, nil
}

func validateTarget(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return services.Wrap(services.ErrFilesystem, "organize", "validate directory", fmt.Sprintf("%s does not exist", dir), err)
		}
		return services.Wrap(services.ErrFilesystem, "organize", "validate directory", dir, err)
	}
	if !info.IsDir() {
		return services.Wrap(services.ErrFilesystem, "organize", "validate directory", fmt.Sprintf("%s is not a directory", dir), nil)
	}
	if err := fileutil.CheckAccess(dir); err != nil {
		return services.Wrap(services.ErrFilesystem, "organize", "validate directory", fmt.Sprintf("%s is not readable and writable", dir), err)
	}
	return nil
}
