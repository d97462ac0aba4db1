// Delete command removes a checklist.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/ticklist/pkg/checklist"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a checklist",
	Long: `Delete removes a checklist permanently. When the confirm_delete
preference is set (the default), the command asks before deleting unless
--yes is given. Deleting an id that does not exist succeeds.`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func init() {
	deleteCmd.Flags().BoolVar(&deleteYes, "yes", false, "skip the confirmation prompt")
}

func runDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	return withLockedRepo(func(ctx context.Context, repo *checklist.Repository) error {
		if !deleteYes {
			prefs, err := repo.Preferences(ctx)
			if err != nil {
				return fmt.Errorf("load preferences: %w", err)
			}
			if prefs.ConfirmDelete && !confirm(fmt.Sprintf("Delete checklist %d?", id)) {
				fmt.Println("Aborted.")
				return nil
			}
		}
		if err := repo.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete checklist %d: %w", id, err)
		}
		fmt.Printf("Deleted checklist %d\n", id)
		return nil
	})
}

// confirm asks a yes/no question on stdin.
func confirm(prompt string) bool {
	fmt.Printf("%s [y/N] ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
