package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kedare/wordsmith/internal/logger"
	"github.com/kedare/wordsmith/internal/tui"
)

var (
	interactiveLocal   bool
	interactiveDict    string
	interactiveLogFile string
)

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"i", "ui"},
	Short:   "Launch the interactive word finder",
	Long: `Start the terminal UI: type letters, pick grouping and filters, and browse
the words the solver finds.

Results can be grouped or flat, groups collapse with Space, and 'c' copies the
selected word or a whole group to the clipboard. Press '?' at any time to see
keyboard shortcuts.`,
	Args: cobra.NoArgs,
	RunE: runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)

	interactiveCmd.Flags().BoolVar(&interactiveLocal, "local", false, "Solve in-process instead of calling the solver")
	interactiveCmd.Flags().StringVar(&interactiveDict, "dictionary", "", "Word list for --local (default: built-in)")
	interactiveCmd.Flags().StringVar(&interactiveLogFile, "log-file", filepath.Join(os.TempDir(), "wordsmith.log"),
		"Where diagnostics go while the UI owns the terminal")
}

func runInteractive(cmd *cobra.Command, args []string) error {
	defaults, err := cfg.FormDefaults()
	if err != nil {
		return err
	}

	config := &tui.Config{
		Defaults:     defaults,
		CopyAck:      cfg.CopyAck(),
		HistoryLimit: cfg.History.Limit,
	}

	if interactiveLocal {
		local, err := newLocalSolver(interactiveDict)
		if err != nil {
			return fmt.Errorf("failed to load dictionary: %w", err)
		}
		config.Solver = local
		config.Endpoint = "local dictionary"
	} else {
		client, err := newClient()
		if err != nil {
			return fmt.Errorf("failed to create solver client: %w", err)
		}
		config.Solver = client
		config.Options = client
		config.Endpoint = client.BaseURL()
	}

	if store := openHistory(); store != nil {
		defer closeHistory(store)
		config.History = store
	}

	restore, err := logger.OpenFile(interactiveLogFile)
	if err != nil {
		logger.Log.Warnf("Logging to %s failed, diagnostics are discarded: %v", interactiveLogFile, err)
		logger.RedirectTo(nil)
		restore = logger.InitPterm
	}
	defer restore()

	logger.Log.Infof("Starting interactive view against %s", config.Endpoint)

	if err := tui.NewApp(config).Run(); err != nil {
		return fmt.Errorf("interactive view failed: %w", err)
	}

	return nil
}
