package root

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"focusarena/internal/game"
	"focusarena/internal/ui"
)

func newAddCmd() *cobra.Command {
	var catFlag string
	var xp int
	var value int
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task manually",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 || strings.TrimSpace(args[0]) == "" {
				return errors.New("title is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := game.ParseCategory(catFlag)
			if err != nil {
				return err
			}
			if xp < 0 || value < 0 {
				return errors.New("xp and value must be non-negative")
			}

			date := game.NewDate(time.Now())
			if dateFlag != "" {
				date, err = game.ParseDate(dateFlag)
				if err != nil {
					return err
				}
			}

			ctx := context.Background()
			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			added := app.Reducer.Add([]game.Task{{
				Title: strings.TrimSpace(args[0]),
				Date:  date,
				Cat:   cat,
				XP:    xp,
				Value: value,
			}})

			fmt.Fprintf(cmd.OutOrStdout(), "%s #%d %s %s\n",
				ui.Good.Render(ui.IconSparkle+" Added"), added[0].ID, ui.CategoryBadge(cat), added[0].Title)
			return nil
		},
	}

	cmd.Flags().StringVarP(&catFlag, "cat", "c", "biz", "Category (sale|social|admin|prod|biz)")
	cmd.Flags().IntVarP(&xp, "xp", "x", 30, "XP reward")
	cmd.Flags().IntVar(&value, "value", 0, "Monetary reward (fictional €)")
	cmd.Flags().StringVarP(&dateFlag, "date", "d", "", "Scheduled date (YYYY-MM-DD, default today)")

	return cmd
}
