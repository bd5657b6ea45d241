package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"focusarena/internal/game"
	"focusarena/internal/ui"
)

func newProjectsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "List projects derived from grouped tasks",
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

			projects := game.Projects(st.Tasks, st.ProjectAdjustments)
			if len(projects) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No projects yet. Accept a mission brief to start one."))
				return nil
			}

			fmt.Fprintln(out, ui.Heading(ui.IconBrief, "Projects"))
			for _, p := range projects {
				status := ui.Muted.Render(fmt.Sprintf("%d/%d steps", p.DoneSteps, p.TotalSteps))
				if p.IsLate(today) {
					status = ui.Bad.Render("LATE") + " " + status
				}
				fmt.Fprintf(out, "%s #%d %s\n", ui.H2.Render(p.Title), p.ProjectID, status)
				fmt.Fprintf(out, "  %s %s  %s → %s  %s\n",
					ui.Bar(p.ProgressPercent, 20),
					ui.Key.Render(fmt.Sprintf("%d%%", p.ProgressPercent)),
					p.StartDate, p.Deadline,
					ui.Money(p.TotalValue))
			}
			return nil
		},
	}

	cmd.AddCommand(newProjectsAdjustCmd())
	return cmd
}

func newProjectsAdjustCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "adjust <project-id> <delta>",
		Short: "Manually nudge a project's progress percentage",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("project id and delta are required")
			}
			if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
				return errors.New("project id must be an integer")
			}
			if _, err := strconv.Atoi(args[1]); err != nil {
				return errors.New("delta must be an integer")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			id, _ := strconv.ParseInt(args[0], 10, 64)
			delta, _ := strconv.Atoi(args[1])

			ctx := context.Background()
			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			adj := app.Reducer.AdjustProject(id, delta)
			fmt.Fprintf(cmd.OutOrStdout(), "%s project #%d adjustment is now %+d%%\n",
				ui.Good.Render(ui.IconSparkle+" Adjusted"), id, adj)
			return nil
		},
	}
}
