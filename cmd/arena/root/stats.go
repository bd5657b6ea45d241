package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"focusarena/internal/game"
	"focusarena/internal/ui"
)

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Weekly XP history and category breakdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			st := app.Reducer.State()
			today := game.NewDate(time.Now())
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, ui.Heading(ui.IconChart, "Stats"))

			week := game.WeeklyXP(st.Tasks, today)
			days := game.WeeklyDays(today)
			max := 1
			for _, xp := range week {
				if xp > max {
					max = xp
				}
			}

			fmt.Fprintln(out, ui.H2.Render("Last 7 days"))
			for i, xp := range week {
				label := days[i].Weekday()
				fmt.Fprintf(out, "  %s %s %s\n",
					ui.Key.Render(label),
					ui.Bar(xp*100/max, 24),
					ui.Muted.Render(fmt.Sprintf("%d xp", xp)))
			}

			fmt.Fprintln(out, "")
			fmt.Fprintln(out, ui.H2.Render("Completed by category"))
			for _, row := range game.CategoryBreakdown(st.Tasks) {
				fmt.Fprintf(out, "  %s %s %s\n",
					ui.CategoryBadge(row.Cat),
					ui.Bar(row.Percent, 24),
					ui.Muted.Render(fmt.Sprintf("%d (%d%%)", row.Count, row.Percent)))
			}
			return nil
		},
	}
	return cmd
}
