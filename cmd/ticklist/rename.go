// Rename command changes a checklist title.
package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/ticklist/pkg/checklist"
	"github.com/mesh-intelligence/ticklist/pkg/types"
)

var renameCmd = &cobra.Command{
	Use:   "rename <id> <title>",
	Short: "Rename a checklist",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return withLockedRepo(func(ctx context.Context, repo *checklist.Repository) error {
			rec, err := repo.Update(ctx, id, func(rec *types.ChecklistRecord) error {
				return rec.Rename(args[1])
			})
			if err != nil {
				return fmt.Errorf("rename checklist %d: %w", id, err)
			}
			if flagJSON {
				return printJSON(rec)
			}
			fmt.Printf("Renamed checklist %d to %q\n", rec.ID, rec.Title)
			return nil
		})
	},
}
