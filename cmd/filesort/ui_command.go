package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"filesort/internal/config"
	"filesort/internal/logging"
	"filesort/internal/organizer"
	"filesort/internal/tui"
)

func newUICommand(ctx *commandContext) *cobra.Command {
	var (
		categories []string
		dryRun     bool
	)

	cmd := &cobra.Command{
		Use:   "ui [DIR]",
		Short: "Open the interactive organizer",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			// The terminal belongs to the shell; structured logs only reach
			// the configured log file.
			base, err := logging.NewFromConfig(cfg, io.Discard)
			if err != nil {
				return err
			}
			activity := logging.NewActivityLog(0)
			logger := logging.TeeLogger(base, activity.Handler(slog.LevelInfo))

			org, err := organizer.NewFromConfig(cfg, logger, dryRun)
			if err != nil {
				return err
			}

			var dir string
			if len(args) > 0 {
				if dir, err = config.ExpandPath(args[0]); err != nil {
					return err
				}
			}

			return tui.Run(cmd.Context(), tui.Options{
				Organizer: org,
				Activity:  activity,
				Directory: dir,
				Selected:  categories,
			})
		},
	}

	cmd.Flags().StringSliceVarP(&categories, "category", "k", nil, "Pre-select a category (repeatable)")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Report planned moves without touching the filesystem")
	return cmd
}
