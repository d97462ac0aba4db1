// Complete command marks an entire checklist done.
package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/ticklist/pkg/checklist"
	"github.com/mesh-intelligence/ticklist/pkg/types"
)

var completeCmd = &cobra.Command{
	Use:   "complete <id>",
	Short: "Mark a whole checklist complete",
	Long: `Complete marks every task done and sets the checklist's complete
flag, as one write. This is an explicit action; a checklist whose tasks
all happen to be checked stays open until completed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return withLockedRepo(func(ctx context.Context, repo *checklist.Repository) error {
			rec, err := repo.Update(ctx, id, func(rec *types.ChecklistRecord) error {
				rec.SetComplete()
				return nil
			})
			if err != nil {
				return fmt.Errorf("complete checklist %d: %w", id, err)
			}
			if flagJSON {
				return printJSON(rec)
			}
			fmt.Printf("Checklist %d (%s) marked complete\n", rec.ID, rec.Title)
			return nil
		})
	},
}
