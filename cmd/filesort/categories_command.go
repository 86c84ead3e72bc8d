package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

type categoryView struct {
	Name       string   `json:"name"`
	Extensions []string `json:"extensions"`
}

func newCategoriesCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List the active category table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			table, err := cfg.CategoryTable()
			if err != nil {
				return err
			}

			cats := table.Categories()
			if jsonOut {
				views := make([]categoryView, 0, len(cats))
				for _, c := range cats {
					views = append(views, categoryView{Name: c.Name, Extensions: c.Extensions})
				}
				return writeJSON(cmd, views)
			}

			rows := make([][]string, 0, len(cats))
			for _, c := range cats {
				rows = append(rows, []string{c.Name, strings.Join(c.Extensions, " ")})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Category", "Extensions"}, rows, nil))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}
