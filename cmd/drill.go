package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/wortschatz/wortschatz/internal/console"
)

var drillCmd = &cobra.Command{
	Use:   "drill",
	Short: "Practise in plain line-by-line console mode",
	Long:  "Runs the same menus and practice modes as the full-screen app, reading one answer per line. Ctrl+C says goodbye and exits.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		e.touchStreak(ctx)

		r := console.New(cmd.InOrStdin(), cmd.OutOrStdout(), console.Options{
			Catalog: e.catalog,
			Env:     e.sessionEnv(),
		})
		return r.Run(ctx)
	},
}
