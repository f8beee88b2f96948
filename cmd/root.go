// Package cmd provides the command-line interface for wordsmith.
package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kedare/wordsmith/internal/api"
	"github.com/kedare/wordsmith/internal/config"
	"github.com/kedare/wordsmith/internal/history"
	"github.com/kedare/wordsmith/internal/logger"
	"github.com/kedare/wordsmith/internal/solver"
	"github.com/kedare/wordsmith/internal/version"
)

var (
	logLevel   string
	configPath string
	serverURL  string

	// cfg is loaded once per invocation by the root PersistentPreRunE.
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "wordsmith",
	Short: "Find every word hidden in a handful of letters",
	Long: `wordsmith finds the dictionary words that can be spelled from a set of letters,
scores them, and shows them grouped (by length, first or last letter) or as a
flat ranked list. Use it interactively, one-shot from scripts, or run the
solver it talks to.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logger.SetLevel(logLevel); err != nil {
			return fmt.Errorf("invalid log level %q: %w", logLevel, err)
		}
		logger.Log.Debugf("Log level set to: %s", logLevel)

		loaded, path, err := config.Load(configPath)
		if err != nil {
			return err
		}

		if path != "" {
			logger.Log.Debugf("Using config %s", path)
		}

		if cmd.Flags().Changed("server") {
			loaded.Client.Server = strings.TrimSpace(serverURL)
		}

		cfg = loaded

		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext runs the root command with ctx, cancelled on interrupt by main.
func ExecuteContext(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Set the logging level (trace, debug, info, warn, error, fatal)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/wordsmith/config.toml)")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "Solver URL, overrides client.server and $"+config.EnvServer)
}

// newClient builds the HTTP client for the configured solver.
func newClient() (*api.Client, error) {
	return api.NewClient(cfg.Client.Server,
		api.WithCodec(cfg.Codec()),
		api.WithUserAgent(version.Get().UserAgent()),
	)
}

// newLocalSolver loads the dictionary at path, or the built-in one when path is empty.
func newLocalSolver(path string) (*solver.Solver, error) {
	if path == "" {
		path = cfg.Server.Dictionary
	}

	if path == "" {
		dict, err := solver.Builtin()
		if err != nil {
			return nil, fmt.Errorf("failed to load built-in dictionary: %w", err)
		}

		return solver.New(dict), nil
	}

	dict, err := solver.LoadFile(path)
	if err != nil {
		return nil, err
	}

	return solver.New(dict), nil
}

// openHistory opens the history store, or returns nil when history is disabled
// or unavailable. A nil *history.Store is safe to use.
func openHistory() *history.Store {
	if !cfg.History.Enabled {
		return nil
	}

	path, err := cfg.HistoryPath()
	if err != nil {
		logger.Log.Warnf("History disabled: %v", err)

		return nil
	}

	store, err := history.Open(path)
	if err != nil {
		logger.Log.Warnf("History disabled: %v", err)

		return nil
	}

	return store
}

func closeHistory(store *history.Store) {
	if store == nil {
		return
	}

	if err := store.Close(); err != nil {
		logger.Log.Debugf("Failed to close history: %v", err)
	}
}
