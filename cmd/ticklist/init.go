// Init command for the ticklist CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize ticklist storage",
	Long: `Init creates the configuration directory with a default config.yaml
and opens the storage backend once so the data directory exists.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return fmt.Errorf("resolve config dir: %w", err)
		}
		// PersistentPreRunE already wrote the default config.yaml; opening
		// the backend creates the data directory.
		_, hostStore, err := openRepo()
		if err != nil {
			return err
		}
		defer hostStore.Close()

		dataDir, err := resolveDataDir()
		if err != nil {
			return fmt.Errorf("resolve data dir: %w", err)
		}

		fmt.Println("Ticklist initialized successfully")
		fmt.Println("  config: ", configDir)
		fmt.Println("  data:   ", dataDir)
		fmt.Println("  backend:", resolveBackend())
		return nil
	},
}
