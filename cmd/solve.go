package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kedare/wordsmith/internal/api"
	"github.com/kedare/wordsmith/internal/clipboard"
	"github.com/kedare/wordsmith/internal/form"
	"github.com/kedare/wordsmith/internal/logger"
	"github.com/kedare/wordsmith/internal/output"
	"github.com/kedare/wordsmith/internal/view"
)

type solveOptions struct {
	groupBy    string
	sortGroups string
	sortWithin string
	viewType   string
	minLength  string
	maxLength  string
	startsWith string
	endsWith   string
	format     string
	workbook   string
	copy       bool
	local      bool
	dictionary string
}

var solveOpts solveOptions

var solveCmd = &cobra.Command{
	Use:   "solve <letters>",
	Short: "Find the words in a set of letters",
	Long: `Send the letters to the solver and print the words it finds.

Results are grouped by length unless --group-by or --view says otherwise.
Use --local to solve in-process with the built-in (or --dictionary) word list
instead of calling a solver over HTTP.`,
	Example: `  wordsmith solve tacs
  wordsmith solve aerstl --view flat --min 4 -o table
  wordsmith solve quiz --group-by first_letter -o json
  wordsmith solve tacs --xlsx words.xlsx --copy`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSolve(cmd.Context(), cmd.OutOrStdout(), args[0], solveOpts)
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)

	flags := solveCmd.Flags()
	flags.StringVar(&solveOpts.groupBy, "group-by", "", "Group words by: length, first_letter, last_letter")
	flags.StringVar(&solveOpts.sortGroups, "sort-groups", "", "Group order: asc, desc")
	flags.StringVar(&solveOpts.sortWithin, "sort-within", "", "Word order inside groups: score, alphabetical")
	flags.StringVar(&solveOpts.viewType, "view", "", "Result shape: grouped, flat")
	flags.StringVar(&solveOpts.minLength, "min", "", "Minimum word length")
	flags.StringVar(&solveOpts.maxLength, "max", "", "Maximum word length")
	flags.StringVar(&solveOpts.startsWith, "starts-with", "", "Only words starting with this letter")
	flags.StringVar(&solveOpts.endsWith, "ends-with", "", "Only words ending with this letter")
	flags.StringVarP(&solveOpts.format, "output", "o",
		output.DefaultFormat(output.FormatText, output.Formats),
		"Output format: "+strings.Join(output.Formats, ", "))
	flags.StringVar(&solveOpts.workbook, "xlsx", "", "Also write the results to this Excel workbook")
	flags.BoolVar(&solveOpts.copy, "copy", false, "Copy the words to the clipboard")
	flags.BoolVar(&solveOpts.local, "local", false, "Solve in-process instead of calling the solver")
	flags.StringVar(&solveOpts.dictionary, "dictionary", "", "Word list for --local (default: built-in)")

	_ = solveCmd.RegisterFlagCompletionFunc("group-by", fixedCompletion("length", "first_letter", "last_letter"))
	_ = solveCmd.RegisterFlagCompletionFunc("sort-groups", fixedCompletion("asc", "desc"))
	_ = solveCmd.RegisterFlagCompletionFunc("sort-within", fixedCompletion("score", "alphabetical"))
	_ = solveCmd.RegisterFlagCompletionFunc("view", fixedCompletion("grouped", "flat"))
	_ = solveCmd.RegisterFlagCompletionFunc("output", fixedCompletion(output.Formats...))
}

func fixedCompletion(values ...string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return values, cobra.ShellCompDirectiveNoFileComp
	}
}

func runSolve(ctx context.Context, w io.Writer, letters string, opts solveOptions) error {
	if !output.IsSupported(opts.format) {
		return fmt.Errorf("unsupported output format %q (want one of %s)", opts.format, strings.Join(output.Formats, ", "))
	}
	output.SetFormat(opts.format)

	state, err := solveFormState(letters, opts)
	if err != nil {
		return err
	}

	var solver view.Solver
	if opts.local {
		local, err := newLocalSolver(opts.dictionary)
		if err != nil {
			return fmt.Errorf("failed to load dictionary: %w", err)
		}
		solver = local
	} else {
		client, err := newClient()
		if err != nil {
			return fmt.Errorf("failed to create solver client: %w", err)
		}
		solver = client
	}

	store := openHistory()
	defer closeHistory(store)

	spin := output.NewSpinner(fmt.Sprintf("Finding words in %q", strings.ToUpper(state.Letters)))
	spin.Start()

	result, err := solve(ctx, solver, store, state)
	if err != nil {
		spin.Fail("Solve failed")

		return err
	}

	spin.Success(view.Plural(result.Response.TotalWords, "word") + " found")

	if err := output.DisplayResponse(w, result, opts.format); err != nil {
		return fmt.Errorf("failed to render results: %w", err)
	}

	if opts.workbook != "" {
		if err := output.SaveWorkbook(opts.workbook, result.Response); err != nil {
			return fmt.Errorf("failed to write workbook: %w", err)
		}
		logger.Log.Infof("Saved workbook to %s", opts.workbook)
	}

	if opts.copy {
		copyWords(ctx, result.Response)
	}

	return nil
}

// solveFormState turns flags into the same form state the interactive view builds.
func solveFormState(letters string, opts solveOptions) (form.State, error) {
	defaults, err := cfg.FormDefaults()
	if err != nil {
		return form.State{}, err
	}

	s := form.NewState(defaults)
	s.Letters = form.NormalizeLetters(letters)
	s.MinLength = opts.minLength
	s.MaxLength = opts.maxLength
	s.StartsWith = form.NormalizeAffix(opts.startsWith)
	s.EndsWith = form.NormalizeAffix(opts.endsWith)

	if opts.groupBy != "" {
		if s.GroupBy, err = api.ParseGroupBy(opts.groupBy); err != nil {
			return s, err
		}
	}

	if opts.sortGroups != "" {
		if s.SortGroups, err = api.ParseGroupOrder(opts.sortGroups); err != nil {
			return s, err
		}
	}

	if opts.sortWithin != "" {
		if s.SortWithinGroups, err = api.ParseWordOrder(opts.sortWithin); err != nil {
			return s, err
		}
	}

	if opts.viewType != "" {
		if s.ViewType, err = api.ParseViewType(opts.viewType); err != nil {
			return s, err
		}
	}

	return s, nil
}

// solve drives one submission through the view controller and waits for it.
func solve(ctx context.Context, solver view.Solver, recorder view.Recorder, s form.State) (view.State, error) {
	var opts []view.ControllerOption
	if recorder != nil {
		opts = append(opts, view.WithRecorder(recorder))
	}
	opts = append(opts, view.WithMode(s.ViewType))

	ctrl := view.NewController(ctx, solver, nil, opts...)
	ctrl.Dispatch(view.Submit{Form: s})
	ctrl.Wait()

	result := ctrl.State()
	if result.Error != "" {
		return result, errors.New(result.Error)
	}

	if result.Response == nil {
		return result, errors.New(api.GenericFailure)
	}

	return result, nil
}

func copyWords(ctx context.Context, resp *api.SolveResponse) {
	words := make([]string, 0, resp.TotalWords)
	for _, w := range resp.AllWords() {
		words = append(words, w.Word)
	}

	if len(words) == 0 {
		logger.Log.Warnf("Nothing to copy")

		return
	}

	if err := clipboard.New(nil).Copy(ctx, strings.Join(words, view.GroupSeparator), "cli"); err != nil {
		logger.Log.Warnf("Failed to copy words: %v", err)

		return
	}

	logger.Log.Infof("Copied %s to the clipboard", view.Plural(len(words), "word"))
}
