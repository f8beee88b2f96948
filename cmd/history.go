package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/kedare/wordsmith/internal/history"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show or clear recently solved letter sets",
	Long:  "The history holds the letters you submitted, most recent first. It feeds Up/Down in the interactive letters field.",
}

var historyListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List recent letter sets",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := requireHistory()
		if err != nil {
			return err
		}
		defer closeHistory(store)

		entries, err := store.Recent(historyLimit)
		if err != nil {
			return fmt.Errorf("failed to read history: %w", err)
		}

		if len(entries) == 0 {
			pterm.Info.Println("History is empty")

			return nil
		}

		fmt.Fprintln(cmd.OutOrStdout(), renderHistory(entries, time.Now()))

		return nil
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Forget every letter set",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := requireHistory()
		if err != nil {
			return err
		}
		defer closeHistory(store)

		deleted, err := store.Clear()
		if err != nil {
			return fmt.Errorf("failed to clear history: %w", err)
		}

		pterm.Success.Printf("Removed %d entries from %s\n", deleted, store.Path())

		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyListCmd, historyClearCmd)

	historyListCmd.Flags().IntVarP(&historyLimit, "limit", "n", history.DefaultLimit, "How many entries to show")
}

var errHistoryDisabled = errors.New("history is disabled (history.enabled = false)")

func requireHistory() (*history.Store, error) {
	if !cfg.History.Enabled {
		return nil, errHistoryDisabled
	}

	path, err := cfg.HistoryPath()
	if err != nil {
		return nil, fmt.Errorf("failed to locate history: %w", err)
	}

	store, err := history.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history: %w", err)
	}

	return store, nil
}

func renderHistory(entries []history.Entry, now time.Time) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Letters", "Uses", "Last used"})
	tw.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight}})

	for _, e := range entries {
		tw.AppendRow(table.Row{e.Letters, e.Uses, ago(now.Sub(e.LastUsed))})
	}

	return tw.Render()
}

func ago(d time.Duration) string {
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d/time.Minute))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d/time.Hour))
	default:
		return fmt.Sprintf("%dd ago", int(d/(24*time.Hour)))
	}
}
