package cmd

import (
	"fmt"

	"github.com/alexiusacademia/loadcomb/internal/diagram"
	"github.com/spf13/cobra"
)

var (
	matrixFlags  projectFlags
	matrixOutput string
)

var matrixCmd = &cobra.Command{
	Use:   "matrix",
	Short: "Show combinations as a factor matrix",
	Long: `Draw every generated combination as one row of a grid with one
column per primary load, headed by its load index.

Examples:
  loadcomb matrix -f building.yaml

  # Also write the matrix to a spreadsheet
  loadcomb matrix -f building.yaml -o combinations.xlsx`,
	RunE: runMatrix,
}

func init() {
	rootCmd.AddCommand(matrixCmd)
	matrixFlags.register(matrixCmd)
	matrixCmd.Flags().StringVarP(&matrixOutput, "output", "o", "", "Export the matrix to an xlsx workbook")
}

func runMatrix(cmd *cobra.Command, args []string) error {
	p, err := matrixFlags.load(cmd)
	if err != nil {
		return err
	}
	req, res := exportProject(p, matrixFlags.renderOptions())

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintln(out, "  LOAD COMBINATION FACTOR MATRIX")
	fmt.Fprintln(out, "  ──────────────────────────────")
	fmt.Fprintln(out)
	data := matrixOf(req, res)
	fmt.Fprint(out, diagram.DrawFactorMatrix(data))

	if matrixOutput != "" {
		if err := diagram.ExportMatrixSheet(data, matrixOutput); err != nil {
			return fmt.Errorf("export matrix: %w", err)
		}
		fmt.Fprintf(out, "\nMatrix written to %s\n", matrixOutput)
	}
	return nil
}
