package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wortschatz/wortschatz/internal/progress"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset learner progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		out := cmd.OutOrStdout()
		if !yes {
			fmt.Fprintln(out, "This erases all XP, streak and word mastery.")
			fmt.Fprintln(out, "Run again with --yes to confirm.")
			return nil
		}

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		if err := progress.Reset(cmd.Context(), e.repo); err != nil {
			return fmt.Errorf("reset progress: %w", err)
		}
		fmt.Fprintln(out, "Progress reset. Viel Erfolg beim Neustart!")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm the reset")
}
