package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/alexiusacademia/loadcomb/internal/codes"
	"github.com/spf13/cobra"
)

var (
	codesCountry string
	codesPreset  string
)

var codesCmd = &cobra.Command{
	Use:   "codes",
	Short: "List design codes and load case presets",
	Long: `List the design codes known per country and the load case presets
derived from them. Presets are referenced from a project file:

  strength:
    presets: [nscp-2015-strength]

Examples:
  loadcomb codes
  loadcomb codes --country PH
  loadcomb codes --preset nscp-2015-service`,
	RunE: runCodes,
}

func init() {
	rootCmd.AddCommand(codesCmd)

	codesCmd.Flags().StringVarP(&codesCountry, "country", "c", "", "Only list codes of this country (ISO code, e.g. PH)")
	codesCmd.Flags().StringVarP(&codesPreset, "preset", "p", "", "Show the load cases of one preset")
}

func runCodes(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if codesPreset != "" {
		preset, ok := codes.FindPreset(codesPreset)
		if !ok {
			return fmt.Errorf("unknown preset %q", codesPreset)
		}
		fmt.Fprintln(out)
		fmt.Fprintf(out, "%s (%s cases)\n", preset.Description, preset.Sequence)
		fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  #\tCombination\tFactors\n")
		fmt.Fprintf(w, "  ─\t───────────\t───────\n")
		for _, c := range preset.Cases {
			var factors string
			for i, f := range c.Factors {
				if i > 0 {
					factors += ", "
				}
				factors += f.Type + " " + f.Value
			}
			fmt.Fprintf(w, "  %s\t%s\t%s\n", c.ID, c.Description, factors)
		}
		w.Flush()
		fmt.Fprintln(out)
		return nil
	}

	countries := codes.Catalog
	if codesCountry != "" {
		c, ok := codes.FindCountry(codesCountry)
		if !ok {
			return fmt.Errorf("unknown country %q", codesCountry)
		}
		countries = []codes.Country{c}
	}

	fmt.Fprintln(out)
	for _, c := range countries {
		fmt.Fprintf(out, "%s (%s):\n", c.Name, c.Code)
		fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		for _, dc := range c.Codes {
			fmt.Fprintf(w, "  %s\t%s\n", dc.Name, dc.Description)
			for _, id := range dc.Presets {
				if p, ok := codes.FindPreset(id); ok {
					fmt.Fprintf(w, "    preset %s\t%s\n", p.ID, p.Description)
				}
			}
		}
		w.Flush()
		fmt.Fprintln(out)
	}
	return nil
}
