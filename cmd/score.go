package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kedare/wordsmith/internal/api"
	"github.com/kedare/wordsmith/internal/logger"
	"github.com/kedare/wordsmith/internal/output"
	"github.com/kedare/wordsmith/internal/solver"
	"github.com/kedare/wordsmith/internal/view"
)

var (
	scoreLocal  bool
	scoreFormat string
)

var scoreCmd = &cobra.Command{
	Use:   "score <word>",
	Short: "Show the letter score of one word",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		result, err := scoreWord(cmd.Context(), strings.ToLower(strings.TrimSpace(args[0])))
		if err != nil {
			logger.Log.Fatalf("Failed to score %q: %v", args[0], err)
		}

		err = output.DisplayValue(os.Stdout, result, scoreFormat)
		if err == nil {
			return
		}

		if !errors.Is(err, output.ErrUnsupportedFormat) {
			logger.Log.Fatalf("Failed to render score: %v", err)
		}

		fmt.Printf("%s  %s  %d pts\n", strings.ToUpper(result.Word), view.Plural(result.Length, "letter"), result.Score)
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)

	scoreCmd.Flags().BoolVar(&scoreLocal, "local", false, "Score in-process instead of calling the solver")
	scoreCmd.Flags().StringVarP(&scoreFormat, "output", "o", output.FormatText, "Output format: text, json, yaml")
}

func scoreWord(ctx context.Context, word string) (*api.WordResult, error) {
	if scoreLocal {
		result, err := solver.New(solver.NewDictionary()).WordScore(word)
		if err != nil {
			return nil, err
		}

		return &result, nil
	}

	client, err := newClient()
	if err != nil {
		return nil, err
	}

	return client.Score(ctx, word)
}
