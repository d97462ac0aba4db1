// Prefs subcommands read and write display preferences.
package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/ticklist/pkg/checklist"
)

var (
	prefsTheme         string
	prefsHideComplete  string
	prefsConfirmDelete string
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Manage display preferences",
}

var prefsGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show current preferences",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRepo(func(ctx context.Context, repo *checklist.Repository) error {
			prefs, err := repo.Preferences(ctx)
			if err != nil {
				return fmt.Errorf("load preferences: %w", err)
			}
			if flagJSON {
				return printJSON(prefs)
			}
			fmt.Println("theme:         ", prefs.Theme)
			fmt.Println("hide_complete: ", prefs.HideComplete)
			fmt.Println("confirm_delete:", prefs.ConfirmDelete)
			return nil
		})
	},
}

var prefsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change preferences",
	Long: `Prefs set updates one or more display preferences.

Example:
  ticklist prefs set --theme dark
  ticklist prefs set --hide-complete true --confirm-delete false`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLockedRepo(func(ctx context.Context, repo *checklist.Repository) error {
			prefs, err := repo.Preferences(ctx)
			if err != nil {
				return fmt.Errorf("load preferences: %w", err)
			}

			if prefsTheme != "" {
				if err := prefs.SetTheme(prefsTheme); err != nil {
					return err
				}
			}
			if prefsHideComplete != "" {
				v, err := parseBoolFlag("hide-complete", prefsHideComplete)
				if err != nil {
					return err
				}
				prefs.HideComplete = v
			}
			if prefsConfirmDelete != "" {
				v, err := parseBoolFlag("confirm-delete", prefsConfirmDelete)
				if err != nil {
					return err
				}
				prefs.ConfirmDelete = v
			}

			if err := repo.SavePreferences(ctx, prefs); err != nil {
				return fmt.Errorf("save preferences: %w", err)
			}
			if flagJSON {
				return printJSON(prefs)
			}
			fmt.Println("Preferences saved")
			return nil
		})
	},
}

func parseBoolFlag(name, value string) (bool, error) {
	switch value {
	case "true", "yes", "on", "1":
		return true, nil
	case "false", "no", "off", "0":
		return false, nil
	default:
		return false, fmt.Errorf("--%s must be true or false, got %q", name, value)
	}
}

func init() {
	prefsSetCmd.Flags().StringVar(&prefsTheme, "theme", "", "display theme: system, light, dark")
	prefsSetCmd.Flags().StringVar(&prefsHideComplete, "hide-complete", "", "hide completed checklists in list output (true/false)")
	prefsSetCmd.Flags().StringVar(&prefsConfirmDelete, "confirm-delete", "", "ask before deleting a checklist (true/false)")

	prefsCmd.AddCommand(prefsGetCmd)
	prefsCmd.AddCommand(prefsSetCmd)
}
