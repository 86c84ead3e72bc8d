package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"filesort/internal/category"
	"filesort/internal/logging"
	"filesort/internal/notifications"
	"filesort/internal/organizer"
	"filesort/internal/services"
)

type organizeOutput struct {
	Result organizer.Result     `json:"result"`
	Notice notifications.Notice `json:"notice"`
}

func newOrganizeCommand(ctx *commandContext) *cobra.Command {
	var (
		categories []string
		all        bool
		onConflict string
		dryRun     bool
		jsonOut    bool
	)

	cmd := &cobra.Command{
		Use:   "organize [DIR]",
		Short: "Move the folder's files into category sub-folders",
		Long: "Scan the immediate files of DIR and move every file whose extension belongs to a\n" +
			"selected category into DIR/<Category>/. Sub-folders and unmatched files are left alone.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if onConflict != "" {
				copied := *cfg
				copied.Organize.OnConflict = onConflict
				cfg = &copied
			}

			activity := logging.NewActivityLog(0)
			base, err := ctx.newLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			logger := logging.TeeLogger(base, activity.Handler(slog.LevelInfo))

			org, err := organizer.NewFromConfig(cfg, logger, dryRun)
			if err != nil {
				return err
			}

			var dir string
			if len(args) > 0 {
				dir = args[0]
			}

			var sel category.Selection
			if all {
				sel = category.SelectAll(org.Table())
			} else if sel, err = category.NewSelection(org.Table(), categories...); err != nil {
				err = services.Wrap(services.ErrValidation, "organize", "select categories", "", err)
				if jsonOut {
					_ = writeJSON(cmd, organizeOutput{Notice: notifications.FromError(err)})
					return &reportedError{err: err}
				}
				return report(cmd, err)
			}

			result, runErr := org.Organize(cmd.Context(), dir, sel)
			notice := notifications.FromOutcome(notifications.Outcome{
				Moved:   result.Moved(),
				Skipped: len(result.Skipped),
				DryRun:  result.DryRun,
				Err:     runErr,
			})

			if jsonOut {
				if err := writeJSON(cmd, organizeOutput{Result: result, Notice: notice}); err != nil {
					return err
				}
				if runErr != nil {
					return &reportedError{err: runErr}
				}
				return nil
			}

			out := cmd.OutOrStdout()
			for _, line := range activity.Lines() {
				fmt.Fprintln(out, line)
			}
			if len(result.Moves) > 0 || len(result.Skipped) > 0 {
				fmt.Fprintln(out, renderMoves(result))
			}
			if err := notifications.NewService(out).Publish(cmd.Context(), notice); err != nil {
				return err
			}
			if runErr != nil {
				return &reportedError{err: runErr}
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&categories, "category", "k", nil, "Category to organize (repeatable, comma-separated)")
	cmd.Flags().BoolVarP(&all, "all", "a", false, "Organize every category")
	cmd.Flags().StringVar(&onConflict, "on-conflict", "", "Override organize.on_conflict (rename, skip, overwrite)")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Report planned moves without touching the filesystem")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output the result as JSON")
	cmd.MarkFlagsMutuallyExclusive("category", "all")
	return cmd
}

func renderMoves(result organizer.Result) string {
	rows := make([][]string, 0, len(result.Moves)+len(result.Skipped))
	for i, move := range result.Moves {
		status := "moved"
		switch {
		case result.DryRun:
			status = "planned"
		case move.Renamed:
			status = "renamed"
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			move.Name,
			move.Category,
			relativeTo(result.Directory, move.Destination),
			status,
		})
	}
	for _, skip := range result.Skipped {
		rows = append(rows, []string{"-", skip.Name, skip.Category, "", "skipped: " + skip.Reason})
	}
	return renderTable(
		[]string{"#", "File", "Category", "Destination", "Status"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft},
	)
}

func relativeTo(base, path string) string {
	if base == "" {
		return path
	}
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return path
	}
	return rel
}
