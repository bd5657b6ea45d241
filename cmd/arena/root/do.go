package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"focusarena/internal/ui"
)

func newDoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "do <id>",
		Short: "Toggle a task between done and open",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
			}
			if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
				return errors.New("id must be an integer")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			id, _ := strconv.ParseInt(args[0], 10, 64)
			res, ok := app.Reducer.Toggle(id)
			if !ok {
				// A missing id is a reducer no-op; surface it here so the
				// user is not left guessing.
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render(fmt.Sprintf("No task #%d.", id)))
				return nil
			}

			out := cmd.OutOrStdout()
			if res.Completed {
				fmt.Fprintf(out, "%s %s %s\n",
					ui.Good.Render(ui.IconDone+" Done"), res.Task.Title,
					ui.Muted.Render(fmt.Sprintf("(+%d xp, +%d€)", res.XPDelta, res.MoneyDelta)))
			} else {
				fmt.Fprintf(out, "%s %s %s\n",
					ui.Warn.Render("↩ Reopened"), res.Task.Title,
					ui.Muted.Render(fmt.Sprintf("(%d xp, %d€)", res.XPDelta, res.MoneyDelta)))
			}

			st := app.Reducer.State()
			fmt.Fprintln(out, ui.LabelValue("Totals", fmt.Sprintf("%d xp · %d€", st.XP, st.Money)))
			return nil
		},
	}
	return cmd
}
