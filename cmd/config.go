package cmd

import (
	"errors"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/kedare/wordsmith/internal/config"
	"github.com/kedare/wordsmith/internal/logger"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create the configuration file",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print where the configuration file is read from",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		pterm.Println(resolveConfigPath())
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := toml.NewEncoder(os.Stdout).Encode(cfg); err != nil {
			logger.Log.Fatalf("Failed to print config: %v", err)
		}
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a configuration file holding the defaults",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		path := resolveConfigPath()

		if _, err := os.Stat(path); err == nil && !configForce {
			logger.Log.Fatalf("%s already exists (use --force to overwrite)", path)
		} else if err != nil && !errors.Is(err, os.ErrNotExist) {
			logger.Log.Fatalf("Failed to inspect %s: %v", path, err)
		}

		if err := config.Save(config.Default(), path); err != nil {
			logger.Log.Fatalf("%v", err)
		}

		pterm.Success.Printf("Wrote %s\n", path)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd, configShowCmd, configInitCmd)

	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing file")
}

func resolveConfigPath() string {
	if configPath != "" {
		return configPath
	}

	path, err := config.DefaultPath()
	if err != nil {
		logger.Log.Fatalf("%v", err)
	}

	return path
}
