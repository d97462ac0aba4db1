// List command shows all checklists.
package main

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/ticklist/pkg/checklist"
	"github.com/mesh-intelligence/ticklist/pkg/types"
)

var listAll bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all checklists",
	Long: `List shows every checklist with its progress. Completed checklists
are hidden when the hide_complete preference is set, unless --all is given.

Example:
  ticklist list
  ticklist list --all
  ticklist list --json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listAll, "all", false, "include completed checklists regardless of preferences")
}

func runList(cmd *cobra.Command, args []string) error {
	return withRepo(func(ctx context.Context, repo *checklist.Repository) error {
		recs, err := repo.List(ctx)
		if err != nil {
			return fmt.Errorf("list checklists: %w", err)
		}

		if !listAll {
			prefs, err := repo.Preferences(ctx)
			if err != nil {
				return fmt.Errorf("load preferences: %w", err)
			}
			if prefs.HideComplete {
				visible := recs[:0]
				for _, rec := range recs {
					if !rec.Complete {
						visible = append(visible, rec)
					}
				}
				recs = visible
			}
		}

		if flagJSON {
			return printJSON(recs)
		}
		printChecklistTable(recs)
		return nil
	})
}

// printChecklistTable prints checklists in a human-readable table format.
func printChecklistTable(recs []*types.ChecklistRecord) {
	if len(recs) == 0 {
		fmt.Println("No checklists found.")
		return
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "ID\tTITLE\tDONE\tSTATE\tCREATED")
	fmt.Fprintln(w, "--\t-----\t----\t-----\t-------")
	for _, rec := range recs {
		title := rec.Title
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		state := "open"
		if rec.Complete {
			state = "complete"
		}
		fmt.Fprintf(w, "%d\t%s\t%d/%d\t%s\t%s\n",
			rec.ID,
			title,
			len(rec.Done), len(rec.Tasks),
			state,
			time.UnixMilli(rec.Time).Format("2006-01-02"),
		)
	}
	w.Flush()

	output := strings.TrimRight(sb.String(), "\n")
	for _, line := range strings.Split(output, "\n") {
		fmt.Println(strings.TrimRight(line, " "))
	}
	fmt.Printf("Total: %d checklist(s)\n", len(recs))
}
