package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kedare/wordsmith/internal/logger"
	"github.com/kedare/wordsmith/internal/server"
)

var (
	serveAddr       string
	serveDictionary string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the word solver over HTTP",
	Long: `Serve the solver the client talks to:

  POST /solve              solve a letter set (JSON or msgpack)
  GET  /api/groups         grouping options
  GET  /api/sorting        sorting options
  GET  /api/score/{word}   score one word

The server stops gracefully on Ctrl+C.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := cfg.Server.Addr
		if cmd.Flags().Changed("addr") {
			addr = serveAddr
		}

		s, err := newLocalSolver(serveDictionary)
		if err != nil {
			return fmt.Errorf("failed to load dictionary: %w", err)
		}

		logger.Log.Infof("Loaded %d dictionary words", s.Dictionary().Len())

		return server.ListenAndServe(cmd.Context(), addr, server.New(s).Routes())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from server.addr, 127.0.0.1:5001)")
	serveCmd.Flags().StringVar(&serveDictionary, "dictionary", "", "Word list, one word per line (default: built-in)")
}
