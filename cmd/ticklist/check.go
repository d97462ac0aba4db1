// Check command toggles a task's done state.
package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/ticklist/pkg/checklist"
	"github.com/mesh-intelligence/ticklist/pkg/types"
)

var checkCmd = &cobra.Command{
	Use:   "check <id> <task>",
	Short: "Toggle a task between done and not done",
	Long: `Check toggles a task's membership in the checklist's done set:
a pending task becomes done, a done task becomes pending.

Example:
  ticklist check 3 "Buy milk"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return withLockedRepo(func(ctx context.Context, repo *checklist.Repository) error {
			rec, err := repo.Update(ctx, id, func(rec *types.ChecklistRecord) error {
				return rec.ToggleTask(args[1])
			})
			if err != nil {
				return fmt.Errorf("toggle task on checklist %d: %w", id, err)
			}
			if flagJSON {
				return printJSON(rec)
			}
			state := "pending"
			if rec.IsDone(args[1]) {
				state = "done"
			}
			fmt.Printf("%q is now %s (%d/%d done)\n",
				args[1], state, len(rec.Done), len(rec.Tasks))
			return nil
		})
	},
}
