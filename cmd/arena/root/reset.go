package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"focusarena/internal/ui"
)

func newResetCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Wipe all progress and start over",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes && !confirm(cmd, "This erases ALL progress. Continue?") {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Cancelled."))
				return nil
			}

			ctx := context.Background()
			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			app.Reducer.Reset()
			if err := app.Store.Reset(ctx); err != nil {
				return err
			}
			// The persisted slot is already cleared; a final save would
			// immediately repopulate it.
			app.skipFinalSave()

			fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render("🧹 Fresh start. Welcome back to level 1."))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation")
	return cmd
}
