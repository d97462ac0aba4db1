// Task subcommands add and remove tasks on a checklist.
package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/ticklist/pkg/checklist"
	"github.com/mesh-intelligence/ticklist/pkg/types"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage tasks on a checklist",
}

var taskAddCmd = &cobra.Command{
	Use:   "add <id> <task>...",
	Short: "Append tasks to a checklist",
	Long: `Task add appends one or more tasks to the end of a checklist.
Insertion order is preserved; tasks are never reordered.

Example:
  ticklist task add 3 "Buy milk"
  ticklist task add 3 "Buy milk" "Buy eggs"`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return withLockedRepo(func(ctx context.Context, repo *checklist.Repository) error {
			rec, err := repo.Update(ctx, id, func(rec *types.ChecklistRecord) error {
				for _, task := range args[1:] {
					if err := rec.AddTask(task); err != nil {
						return fmt.Errorf("add task %q: %w", task, err)
					}
				}
				return nil
			})
			if err != nil {
				return err
			}
			if flagJSON {
				return printJSON(rec)
			}
			fmt.Printf("Added %d task(s) to checklist %d (%d total)\n",
				len(args)-1, rec.ID, len(rec.Tasks))
			return nil
		})
	},
}

var taskRmCmd = &cobra.Command{
	Use:   "rm <id> <task>",
	Short: "Remove a task from a checklist",
	Long: `Task rm deletes a task from a checklist. A task that was marked done
is pruned from the done set in the same update.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return withLockedRepo(func(ctx context.Context, repo *checklist.Repository) error {
			rec, err := repo.Update(ctx, id, func(rec *types.ChecklistRecord) error {
				return rec.RemoveTask(args[1])
			})
			if err != nil {
				return fmt.Errorf("remove task from checklist %d: %w", id, err)
			}
			if flagJSON {
				return printJSON(rec)
			}
			fmt.Printf("Removed %q from checklist %d (%d task(s) left)\n",
				args[1], rec.ID, len(rec.Tasks))
			return nil
		})
	},
}

func init() {
	taskCmd.AddCommand(taskAddCmd)
	taskCmd.AddCommand(taskRmCmd)
}
