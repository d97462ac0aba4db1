// Show command displays one checklist with its tasks.
package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/ticklist/pkg/checklist"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a checklist and its tasks",
	Long: `Show displays one checklist: title, creation time, completion state,
and every task with a checkbox.

Example:
  ticklist show 3
  ticklist show 3 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	return withRepo(func(ctx context.Context, repo *checklist.Repository) error {
		rec, err := repo.Get(ctx, id)
		if err != nil {
			return fmt.Errorf("get checklist %d: %w", id, err)
		}

		if flagJSON {
			return printJSON(rec)
		}

		state := "open"
		if rec.Complete {
			state = "complete"
		}
		fmt.Printf("%s (id %d, %s)\n", rec.Title, rec.ID, state)
		fmt.Printf("created %s\n", time.UnixMilli(rec.Time).Format("2006-01-02 15:04"))
		if len(rec.Tasks) == 0 {
			fmt.Println("no tasks")
			return nil
		}
		for _, task := range rec.Tasks {
			box := "[ ]"
			if rec.IsDone(task) {
				box = "[x]"
			}
			fmt.Printf("  %s %s\n", box, task)
		}
		fmt.Printf("%d/%d done\n", len(rec.Done), len(rec.Tasks))
		return nil
	})
}
