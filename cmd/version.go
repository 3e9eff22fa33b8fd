package cmd

import (
	"fmt"

	"github.com/alexiusacademia/loadcomb/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of loadcomb",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, version.String())
		fmt.Fprintln(out, version.Title)
		fmt.Fprintln(out, version.Build())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
