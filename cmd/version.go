package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spigell/careerbuddy/internal/vocab"
)

// Actual version can be specified in build command.
var version = "unknown"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and the vocabulary version",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s version: %s (vocabulary %s)\n", app, version, vocab.Default().Version())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
