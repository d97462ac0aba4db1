// Unlock command breaks a stale session lock.
package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/ticklist/pkg/checklist"
)

var unlockCmd = &cobra.Command{
	Use:   "unlock",
	Short: "Break a stale session lock",
	Long: `Unlock removes the advisory session lock regardless of holder. Use it
when a previous ticklist session crashed without releasing the lock.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRepo(func(ctx context.Context, repo *checklist.Repository) error {
			if err := repo.BreakLock(ctx); err != nil {
				return fmt.Errorf("break lock: %w", err)
			}
			fmt.Println("Session lock removed")
			return nil
		})
	},
}
