package root

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"focusarena/internal/game"
	"focusarena/internal/sheet"
	"focusarena/internal/ui"
)

func newImportCmd() *cobra.Command {
	var catFlag string

	cmd := &cobra.Command{
		Use:   "import <sheet-url>",
		Short: "Import tasks from a public Google Sheet",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("sheet url is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := game.ParseCategory(catFlag)
			if err != nil {
				return err
			}
			sheetID, err := sheet.ExtractSheetID(args[0])
			if err != nil {
				return err
			}

			ctx := context.Background()
			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Muted.Render("Fetching sheet..."))

			rows, err := sheet.NewImporter().Fetch(ctx, sheetID)
			if err != nil {
				return err
			}

			today := game.NewDate(time.Now())
			tasks := sheet.ParseTasks(rows, cat, today)
			if len(tasks) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No importable rows found."))
				return nil
			}

			added := app.Reducer.Add(tasks)
			fmt.Fprintf(out, "%s %d tasks imported as %s.\n",
				ui.Good.Render(ui.IconSparkle+" Imported"), len(added), ui.CategoryBadge(cat))
			return nil
		},
	}

	cmd.Flags().StringVarP(&catFlag, "cat", "c", "biz", "Category for the imported tasks")
	return cmd
}
