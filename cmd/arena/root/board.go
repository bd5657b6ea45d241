package root

import (
	"context"

	"github.com/spf13/cobra"

	"focusarena/internal/tui"
)

func newBoardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Open the interactive task board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.RunBoard(app.Reducer, app.Store, app.Cfg.BackupDir, app.Cfg.BackupInterval, cmd.OutOrStdout())
		},
	}
}
