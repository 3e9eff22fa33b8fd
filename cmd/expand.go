package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/alexiusacademia/loadcomb/internal/combo"
	"github.com/alexiusacademia/loadcomb/internal/export"
	"github.com/spf13/cobra"
)

var expandFlags projectFlags

var expandCmd = &cobra.Command{
	Use:   "expand",
	Short: "Show how each load case expands",
	Long: `Show, for every load case of a project file, how each load type
column expanded under its strategy and which combination numbers the
case produced.

Types with no primary loads are marked as absorbed: they take no part in
the case. Cases with no non-zero factor are skipped.

Examples:
  loadcomb expand -f building.yaml`,
	RunE: runExpand,
}

func init() {
	rootCmd.AddCommand(expandCmd)
	expandFlags.register(expandCmd)
}

func runExpand(cmd *cobra.Command, args []string) error {
	p, err := expandFlags.load(cmd)
	if err != nil {
		return err
	}
	req, res := exportProject(p, expandFlags.renderOptions())
	out := cmd.OutOrStdout()

	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "               LOAD CASE EXPANSION")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	fmt.Fprintln(out, "PRIMARY LOADS:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  #\tName\tType\tStrategy\n")
	fmt.Fprintf(w, "  ─\t────\t────\t────────\n")
	for i, l := range req.Input.Loads {
		fmt.Fprintf(w, "  %d\t%s\t%s\t%s\n", i+1, l.Name, l.Type, req.Input.Strategies.Of(l.Type))
	}
	w.Flush()
	fmt.Fprintln(out)

	printCaseExpansions(out, "STRENGTH CASES:", req.Input, req.Strength, res.Strength)
	printCaseExpansions(out, "SERVICE CASES:", req.Input, req.Service, res.Service)

	fmt.Fprintln(out, "NUMBERING:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Strength start:\t%d\n", res.Strength.Start)
	fmt.Fprintf(w, "  Strength combinations:\t%d\n", res.Strength.Count)
	fmt.Fprintf(w, "  Minimum service start:\t%d\n", export.MinServiceStart(req.Input, req.Strength, req.StrengthStart))
	fmt.Fprintf(w, "  Service start requested:\t%d\n", res.ServiceRequested)
	fmt.Fprintf(w, "  Service start used:\t%d\n", res.Service.Start)
	fmt.Fprintf(w, "  Service combinations:\t%d\n", res.Service.Count)
	w.Flush()
	fmt.Fprintln(out)
	return nil
}

func printCaseExpansions(out io.Writer, title string, in combo.Input, cases []combo.LoadCase, batch combo.Batch) {
	fmt.Fprintln(out, title)
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")

	// First combination number of every case that produced any
	first := make(map[string]int)
	for _, rec := range batch.Records {
		if _, ok := first[rec.CaseID]; !ok {
			first[rec.CaseID] = rec.Number
		}
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Case\tType\tFactor\tStrategy\tLoads\tSets\n")
	fmt.Fprintf(w, "  ────\t────\t──────\t────────\t─────\t────\n")
	for i, lc := range cases {
		if !lc.Valid() {
			fmt.Fprintf(w, "  %d\t(no non-zero factor, skipped)\t\t\t\t\n", i+1)
			continue
		}
		exp := combo.Expand(lc, in)
		for j, t := range exp.Types {
			label := ""
			if j == 0 {
				label = fmt.Sprint(i + 1)
			}
			sets := fmt.Sprint(t.Sets)
			if t.Absorbed() {
				sets = "absorbed"
			}
			fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%d\t%s\n", label, t.Type, combo.FormatFactor(t.Factor), t.Strategy, t.Loads, sets)
		}

		n := len(exp.Combinations)
		summary := "no combinations"
		if n > 0 {
			start := first[lc.ID]
			summary = fmt.Sprintf("%d combinations: %d-%d", n, start, start+n-1)
		}
		fmt.Fprintf(w, "  \t→ %s\t\t\t\t\n", summary)
	}
	w.Flush()
	fmt.Fprintln(out)
}
