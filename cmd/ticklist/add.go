// Add command creates a new checklist.
package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/ticklist/pkg/checklist"
)

var addTasks []string

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Create a new checklist",
	Long: `Add creates a new checklist with the given title and, optionally, an
initial set of tasks.

Example:
  ticklist add "Groceries"
  ticklist add "Groceries" --task Milk --task Eggs
  ticklist add "Release 1.2" --json`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringArrayVar(&addTasks, "task", nil, "initial task (repeatable, order preserved)")
}

func runAdd(cmd *cobra.Command, args []string) error {
	return withLockedRepo(func(ctx context.Context, repo *checklist.Repository) error {
		rec, err := repo.Create(ctx, args[0], addTasks)
		if err != nil {
			return fmt.Errorf("create checklist: %w", err)
		}

		if flagJSON {
			return printJSON(rec)
		}
		fmt.Printf("Created checklist %d: %s (%d task(s))\n", rec.ID, rec.Title, len(rec.Tasks))
		return nil
	})
}
