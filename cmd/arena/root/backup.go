package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"focusarena/internal/ui"
)

func newBackupCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export the current snapshot to a timestamped JSON file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			target := dir
			if target == "" {
				target = app.Cfg.BackupDir
			}

			path, err := app.Store.Export(ctx, target, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Good.Render(ui.IconSave+" Backed up"), path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "o", "", "Target directory (default from config)")
	return cmd
}
