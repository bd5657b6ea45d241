package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"focusarena/internal/ui"
)

func newSocialCmd() *cobra.Command {
	var achieved bool

	cmd := &cobra.Command{
		Use:   "social [delta]",
		Short: "Show or adjust the social growth goal",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errors.New("at most one delta argument")
			}
			if len(args) == 1 {
				if _, err := strconv.Atoi(args[0]); err != nil {
					return errors.New("delta must be an integer (e.g. +25 or -10)")
				}
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

			if len(args) == 1 {
				delta, _ := strconv.Atoi(args[0])
				app.Reducer.AdjustSocial(delta)
			}
			if cmd.Flags().Changed("achieved") {
				app.Reducer.SetSocialAchieved(achieved)
			}

			goal := app.Reducer.State().SocialGoal
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading("📣", "Social goal"))

			pct := 0
			if goal.Target > 0 {
				pct = goal.Current * 100 / goal.Target
			}
			fmt.Fprintf(out, "%s %s %s\n",
				ui.Key.Render(string(goal.Platform)),
				ui.Bar(pct, 24),
				ui.Muted.Render(fmt.Sprintf("%d/%d followers", goal.Current, goal.Target)))
			if goal.IsAchieved {
				fmt.Fprintln(out, ui.Good.Render(ui.IconTrophy+" Achieved! Run `arena tactics` for a new goal."))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&achieved, "achieved", false, "Mark the goal achieved (or --achieved=false to unset)")
	return cmd
}
