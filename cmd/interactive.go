package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alexiusacademia/loadcomb/internal/combo"
	"github.com/alexiusacademia/loadcomb/internal/project"
	"github.com/alexiusacademia/loadcomb/internal/session"
	"github.com/spf13/cobra"
)

var (
	interactiveFile    string
	interactiveCompact bool
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Build load combinations interactively",
	Long: `Define primary loads, load types, strategies and load cases through
terminal prompts, then print the numbered combinations.

Nothing is saved: the session lives in memory only. Start from an
existing project file with --file to edit it further.

Examples:
  loadcomb interactive
  loadcomb interactive -f building.yaml`,
	RunE: runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)

	interactiveCmd.Flags().StringVarP(&interactiveFile, "file", "f", "", "Project file to start from")
	interactiveCmd.Flags().BoolVar(&interactiveCompact, "compact", false, "Omit the blank line after each combination")
}

func runInteractive(cmd *cobra.Command, args []string) error {
	p := project.New(nil)
	if interactiveFile != "" {
		var err error
		if p, err = project.LoadFile(interactiveFile, nil); err != nil {
			return err
		}
		slog.Debug("session started from file", "file", interactiveFile)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	editor := &session.Editor{
		Project: p,
		Prompt:  session.SurveyPrompter{PageSize: 15},
		Out:     cmd.OutOrStdout(),
		Options: combo.RenderOptions{Compact: interactiveCompact},
	}
	if err := editor.Run(ctx); err != nil {
		if errors.Is(err, session.ErrAborted) || errors.Is(err, context.Canceled) {
			fmt.Fprintln(cmd.ErrOrStderr(), "Session discarded.")
			return nil
		}
		return err
	}
	return nil
}
