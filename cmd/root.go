package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pianoroll",
	Short: "Draw timed event patterns as piano-roll diagrams",
	Long: `Pianoroll lays out timed events as a horizontal piano-roll diagram.
Overlapping events are stacked into rows, fragments of longer events get dashed
edges, and an optional highlight window dims everything outside it.

Events come from a YAML/JSON document or from a step sequence like "a b c d".`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(rowsCmd)
}
