package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"focusarena/internal/game"
	"focusarena/internal/ui"
)

func newTodayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show today's tasks and your current stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			st := app.Reducer.State()
			level := game.LevelForXP(st.XP)
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, ui.Heading(ui.IconBolt, "Focus Arena"))
			fmt.Fprintf(out, "%s %s  %s\n",
				ui.Key.Render(fmt.Sprintf("LVL %d %s", level.Rank, level.Title)),
				ui.Bar(level.ProgressPercent, 20),
				ui.Muted.Render(fmt.Sprintf("%d/%d xp", st.XP, level.Next)))
			fmt.Fprintf(out, "%s %s   %s %d day streak\n", ui.IconMoney, ui.Money(st.Money), ui.IconFire, st.Streak)
			fmt.Fprintln(out, "")

			today := game.NewDate(time.Now())
			tasks := game.TasksOn(st.Tasks, today)
			fmt.Fprintln(out, ui.H2.Render("Today — "+string(today)))
			if len(tasks) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("Nothing planned. Try `arena brief` or `arena tactics`."))
				return nil
			}
			for _, t := range tasks {
				fmt.Fprintln(out, ui.TaskLine(t))
			}
			return nil
		},
	}
	return cmd
}
