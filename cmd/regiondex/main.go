// Package main provides the entry point for the regiondex CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/regiondex/cmd/regiondex/commands"
	"github.com/Sumatoshi-tech/regiondex/pkg/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "regiondex",
		Short: "Regiondex - coordinate-range indexing and overlap queries",
		Long: `Regiondex indexes region records in an augmented interval tree and
answers range-overlap queries against them.

Commands:
  query     Run overlap queries against a region file
  stats     Summarize an indexed region file
  dump      List indexed nodes sorted by start position
  plot      Render per-reference region counts as an HTML chart
  compact   Rewrite a region file LZ4-compressed`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(commands.NewQueryCommand())
	rootCmd.AddCommand(commands.NewStatsCommand())
	rootCmd.AddCommand(commands.NewDumpCommand())
	rootCmd.AddCommand(commands.NewPlotCommand())
	rootCmd.AddCommand(commands.NewCompactCommand())
	rootCmd.AddCommand(versionCmd())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "regiondex %s (commit: %s, built: %s)\n", version.Version, version.Commit, version.Date)
		},
	}
}
