package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"focusarena/internal/game"
	"focusarena/internal/ui"
)

func newTacticsCmd() *cobra.Command {
	var accept bool

	cmd := &cobra.Command{
		Use:   "tactics",
		Short: "Generate AI growth tactics for the social goal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			provider, err := newProvider(ctx, app)
			if err != nil {
				return err
			}
			defer provider.Close()

			out := cmd.OutOrStdout()
			goal := app.Reducer.State().SocialGoal
			fmt.Fprintln(out, ui.Muted.Render("Analyzing your growth..."))

			g, err := provider.GrowthTactics(ctx, goal)
			if err != nil {
				return fmt.Errorf("generate tactics: %w", err)
			}

			fmt.Fprintln(out, ui.Heading("📣", "Growth tactics"))
			for _, t := range g.Tasks {
				fmt.Fprintf(out, "  %s %s %s\n",
					ui.CategoryBadge(t.Cat), t.Title,
					ui.Muted.Render(fmt.Sprintf("(%d xp) %s", t.XP, t.Description)))
			}
			if g.NewGoal != nil {
				fmt.Fprintf(out, "%s new goal: %d followers on %s — %s\n",
					ui.Gold.Render(ui.IconTrophy), g.NewGoal.Target, g.NewGoal.Platform,
					ui.Muted.Render(g.NewGoal.Message))
			}

			if !accept {
				fmt.Fprintln(out, ui.Muted.Render("Run again with --accept to schedule them for today."))
				return nil
			}

			today := game.NewDate(time.Now())
			added := app.Reducer.Add(g.TaskList(today))
			if g.NewGoal != nil {
				app.Reducer.ReplaceSocialGoal(g.NewGoal.Target, game.ParsePlatform(g.NewGoal.Platform), g.NewGoal.Message)
			}
			fmt.Fprintf(out, "%s %d tasks added for today.\n", ui.Good.Render(ui.IconSparkle+" Accepted!"), len(added))
			return nil
		},
	}

	cmd.Flags().BoolVar(&accept, "accept", false, "Accept the tactics and add the tasks")
	return cmd
}
