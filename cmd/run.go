package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/wortschatz/wortschatz/internal/app"
	"github.com/wortschatz/wortschatz/internal/screen"
)

// timeNow is replaced in tests.
var timeNow = time.Now

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	e, err := openEnv(cmd)
	if err != nil {
		return err
	}
	defer e.close()

	e.touchStreak(ctx)

	deps := screen.Deps{
		Catalog: e.catalog,
		Env:     e.sessionEnv(),
		Coach:   e.coach(ctx),
		History: e.store.EventRepo(),
		Logger:  e.log,
	}
	if err := app.Run(deps); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), app.Farewell(e.doc))
	return nil
}
