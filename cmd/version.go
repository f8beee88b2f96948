package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kedare/wordsmith/internal/logger"
	"github.com/kedare/wordsmith/internal/output"
	"github.com/kedare/wordsmith/internal/version"
)

var versionFormat string

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show build metadata for this binary",
	Long:  "Display build time, commit, builder information, and target architecture embedded in the binary.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		info := version.Get()

		err := output.DisplayValue(os.Stdout, info, versionFormat)
		if err == nil {
			return
		}

		if !errors.Is(err, output.ErrUnsupportedFormat) {
			logger.Log.Fatalf("Failed to render version: %v", err)
		}

		fmt.Printf("Version:      %s\n", info.Version)
		fmt.Printf("Commit:       %s\n", info.Commit)

		if rel := info.RelativeTime(); rel != "" {
			fmt.Printf("Built:        %s (%s)\n", info.BuildDate, rel)
		} else {
			fmt.Printf("Built:        %s\n", info.BuildDate)
		}

		fmt.Printf("Built By:     %s@%s\n", info.BuildUser, info.BuildHost)
		fmt.Printf("Architecture: %s\n", info.BuildArch)
		fmt.Printf("Go Version:   %s\n", info.GoVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().StringVarP(&versionFormat, "output", "o", output.FormatText, "Output format: text, json, yaml")
}
