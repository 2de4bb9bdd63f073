// Root command for the larder CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/larder/internal/paths"
	"github.com/mesh-intelligence/larder/pkg/larder"
	"github.com/mesh-intelligence/larder/pkg/settings"
	"github.com/mesh-intelligence/larder/pkg/sqlite"
	"github.com/mesh-intelligence/larder/pkg/validation"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
)

// Shared state initialized by PersistentPreRunE.
var (
	registry *settings.Registry
	store    *sqlite.Store

	// configDataDir holds the data_dir value loaded from config.yaml.
	configDataDir string
)

var rootCmd = &cobra.Command{
	Use:               "larder",
	Short:             "Larder is a declarative settings registry",
	Version:           larder.Version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return teardown()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.larder-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(presentCmd)
}

// setup loads config.yaml, declares the manifest variables, and wires the
// selected backend into the registry. Skipped for the version command.
func setup(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	configDir, err := resolveConfigDir()
	if err != nil {
		return err
	}
	cfg, err := loadConfig(configDir)
	if err != nil {
		return err
	}
	configDataDir = cfg.GetString(cfgKeyDataDir)

	registry = settings.New(settings.WithRuleEngine(validation.NewEngine()))
	if err := loadManifest(registry, configDir); err != nil {
		return err
	}

	// The env backend needs no wiring: with no default reader the registry
	// falls back to the process environment, and with no writer every set
	// fails read-only.
	if cfg.GetString(cfgKeyBackend) == backendSQLite {
		dataDir, err := resolveDataDir()
		if err != nil {
			return err
		}
		s, err := sqlite.Open(dataDir)
		if err != nil {
			return err
		}
		store = s
		registry.SetDefaultReader(store.Reader())
		registry.SetDefaultWriter(store.Writer())
	}
	return nil
}

func teardown() error {
	if store != nil {
		return store.Close()
	}
	return nil
}

// resolveConfigDir returns the configuration directory following the
// precedence chain: --config-dir flag > LARDER_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// resolveDataDir returns the data directory following the precedence chain:
// --data-dir flag > config.yaml data_dir > LARDER_DATA_DIR env > $(CWD)/.larder-db.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}
