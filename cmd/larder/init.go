// Init command prepares the configuration directory and storage backend.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the larder configuration and storage",
	Long: `Init creates the configuration directory with a default config.yaml
and a starter variables.yaml, and creates the settings database when the
sqlite backend is selected.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	// setup already created the config dir, config.yaml and, for the
	// sqlite backend, the database. Only the starter manifest is left.
	configDir, err := resolveConfigDir()
	if err != nil {
		return err
	}
	if err := ensureDefaultManifest(configDir); err != nil {
		return err
	}
	fmt.Printf("Initialized larder in %s\n", configDir)

	if store != nil {
		dataDir, err := resolveDataDir()
		if err != nil {
			return err
		}
		fmt.Printf("Settings database ready in %s\n", dataDir)
	}
	return nil
}
