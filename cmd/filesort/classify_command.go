package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

type classification struct {
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

func newClassifyCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "classify NAME...",
		Short: "Show the category each file name would be sorted into",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			table, err := cfg.CategoryTable()
			if err != nil {
				return err
			}

			results := make([]classification, 0, len(args))
			for _, name := range args {
				cat, _ := table.ClassifyName(name)
				results = append(results, classification{Name: name, Category: cat})
			}
			if jsonOut {
				return writeJSON(cmd, results)
			}

			rows := make([][]string, 0, len(results))
			for _, r := range results {
				cat := r.Category
				if cat == "" {
					cat = "(none)"
				}
				rows = append(rows, []string{r.Name, cat})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"File", "Category"}, rows, nil))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}
