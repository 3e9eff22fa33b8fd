package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/loadcomb/internal/diagram"
	"github.com/spf13/cobra"
)

var (
	generateFlags  projectFlags
	generateOutput string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate numbered load combinations from a project file",
	Long: `Expand the strength and service load cases of a project file into
numbered LOAD COMB records, ready to paste into an analysis program.

The strength sequence starts at --strength-start (default 101 when the
file has none). The service sequence starts at --service-start but never
before the number following the last strength combination.

Examples:
  # Print combinations
  loadcomb generate -f building.yaml

  # Override start numbers and write to a file
  loadcomb generate -f building.yaml --strength-start 1 --service-start 200 -o combos.txt`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateFlags.register(generateCmd)
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Write combinations to file instead of stdout")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	p, err := generateFlags.load(cmd)
	if err != nil {
		return err
	}

	_, res := exportProject(p, generateFlags.renderOptions())

	if generateOutput == "" {
		fmt.Fprint(cmd.OutOrStdout(), res.Text)
		if res.Empty() {
			fmt.Fprintln(cmd.OutOrStdout())
		}
		return nil
	}

	if err := os.WriteFile(generateOutput, []byte(res.Text), 0o644); err != nil {
		return fmt.Errorf("write combinations: %w", err)
	}

	lines := []string{
		fmt.Sprintf("Strength: %d combinations", res.Strength.Count),
		fmt.Sprintf("Service:  %d combinations", res.Service.Count),
	}
	if res.Strength.Count > 0 {
		lines[0] += fmt.Sprintf(" (%d-%d)", res.Strength.Start, res.Strength.Next()-1)
	}
	if res.Service.Count > 0 {
		lines[1] += fmt.Sprintf(" (%d-%d)", res.Service.Start, res.Service.Next()-1)
	}
	lines = append(lines, "Written to "+generateOutput)
	fmt.Fprintln(cmd.OutOrStdout())
	fmt.Fprint(cmd.OutOrStdout(), diagram.DrawSummaryBox("LOAD COMBINATIONS", lines))
	return nil
}
