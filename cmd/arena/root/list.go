package root

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"focusarena/internal/game"
	"focusarena/internal/ui"
)

func newListCmd() *cobra.Command {
	var all bool
	var catFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List open tasks (use --all to include completed ones)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var filter game.Category
			if catFlag != "" {
				c, err := game.ParseCategory(catFlag)
				if err != nil {
					return err
				}
				filter = c
			}

			ctx := context.Background()
			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			st := app.Reducer.State()
			today := game.NewDate(time.Now())

			tasks := make([]game.Task, 0, len(st.Tasks))
			for _, t := range st.Tasks {
				if !all && t.Completed {
					continue
				}
				if filter != "" && t.Cat != filter {
					continue
				}
				tasks = append(tasks, t)
			}
			sort.SliceStable(tasks, func(i, j int) bool { return tasks[i].Date < tasks[j].Date })

			out := cmd.OutOrStdout()
			if len(tasks) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("Nothing here."))
				return nil
			}

			var day game.Date
			for _, t := range tasks {
				if t.Date != day {
					day = t.Date
					label := string(day)
					if day == today {
						label += " (today)"
					}
					fmt.Fprintln(out, ui.H2.Render(label))
				}
				fmt.Fprintln(out, "  "+ui.TaskLine(t))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include completed tasks")
	cmd.Flags().StringVarP(&catFlag, "cat", "c", "", "Only show one category")
	return cmd
}
