package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alexiusacademia/loadcomb/internal/version"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "loadcomb",
	Short: "Load Combination Generator",
	Long: `loadcomb - Load Combination Generator

A CLI tool that expands load cases defined per load type into the
numbered LOAD COMB records read by structural analysis programs.

Each load type has a combination strategy:
  Separate   - N loads of the type give N alternative combinations
  Aggregate  - all loads of the type act together in one combination
  Matrix     - every non-empty subset of the loads (2^N - 1 combinations)

Strength and service combinations are numbered as two sequences; the
service sequence always starts after the last strength combination.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintf(out, "  ║   loadcomb v%-46s║\n", version.Version)
		fmt.Fprintln(out, "  ║   Load Combination Generator                              ║")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintln(out, "  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Features:")
		fmt.Fprintln(out, "    • Separate, Aggregate and Matrix expansion per load type")
		fmt.Fprintln(out, "    • Strength and service sequences with continuous numbering")
		fmt.Fprintln(out, "    • NSCP 2015 load case presets")
		fmt.Fprintln(out, "    • Factor matrix and charts of the generated combinations")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Use 'loadcomb --help' to see available commands.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ─────────────────────────────────────────────────────────────")
		fmt.Fprintf(out, "  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Fprintln(out)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SilenceErrors = true
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug information to stderr")
}
