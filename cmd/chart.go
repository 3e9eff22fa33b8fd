package cmd

import (
	"fmt"

	"github.com/alexiusacademia/loadcomb/internal/diagram"
	"github.com/spf13/cobra"
)

var (
	chartFlags  projectFlags
	chartASCII  bool
	chartOutput string
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Chart the sum of factors per combination",
	Long: `Chart the sum of load factors of every generated combination, either
in the terminal or as an image file.

Examples:
  # Terminal chart
  loadcomb chart -f building.yaml --ascii

  # Export to an image (png, svg, pdf)
  loadcomb chart -f building.yaml -o out/combinations.png`,
	RunE: runChart,
}

func init() {
	rootCmd.AddCommand(chartCmd)

	chartFlags.register(chartCmd)
	chartCmd.Flags().BoolVar(&chartASCII, "ascii", false, "Draw the chart in the terminal")
	chartCmd.Flags().StringVarP(&chartOutput, "output", "o", "", "Export chart to file (png, svg, pdf)")
}

func runChart(cmd *cobra.Command, args []string) error {
	if !chartASCII && chartOutput == "" {
		return fmt.Errorf("nothing to do: pass --ascii and/or --output")
	}

	p, err := chartFlags.load(cmd)
	if err != nil {
		return err
	}
	data := matrixOf(exportProject(p, chartFlags.renderOptions()))

	out := cmd.OutOrStdout()
	if chartASCII {
		fmt.Fprintln(out)
		fmt.Fprint(out, diagram.DrawTotalsChart(data))
	}
	if chartOutput != "" {
		if err := diagram.ExportTotalsChart(data, chartOutput); err != nil {
			return fmt.Errorf("export chart: %w", err)
		}
		fmt.Fprintf(out, "Chart written to %s\n", chartOutput)
	}
	return nil
}
