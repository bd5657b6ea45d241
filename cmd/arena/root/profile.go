package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"focusarena/internal/game"
	"focusarena/internal/ui"
)

func newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Level ladder, XP pools and the hall of fame",
		Args:  cobra.NoArgs,
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

			title := "Profile"
			if st.Prestige > 0 {
				title += " " + strings.Repeat(ui.IconCrown, st.Prestige)
			}
			fmt.Fprintln(out, ui.Heading(ui.IconTrophy, title))
			fmt.Fprintf(out, "%s %s %s\n",
				ui.Key.Render(fmt.Sprintf("LVL %d %s", level.Rank, level.Title)),
				ui.Bar(level.ProgressPercent, 24),
				ui.Muted.Render(fmt.Sprintf("%d/%d xp", st.XP, level.Next)))
			fmt.Fprintln(out, ui.LabelValue("Global level", game.GlobalLevel(st.XP)))
			fmt.Fprintln(out, ui.LabelValue("Money", ui.Money(st.Money)))
			fmt.Fprintf(out, "%s %d day streak\n", ui.IconFire, st.Streak)

			fmt.Fprintln(out, "")
			fmt.Fprintln(out, ui.H2.Render("XP pools"))
			fmt.Fprintf(out, "  %s lvl %d %s\n",
				ui.Key.Render("Freelance"), game.PoolLevel(st.XPFreelance),
				ui.Muted.Render(fmt.Sprintf("%d xp", st.XPFreelance)))
			fmt.Fprintf(out, "  %s lvl %d %s\n",
				ui.Key.Render("Ethics"), game.PoolLevel(st.XPReligion),
				ui.Muted.Render(fmt.Sprintf("%d xp", st.XPReligion)))

			if len(st.ArchivedProjects) > 0 {
				fmt.Fprintln(out, "")
				fmt.Fprintln(out, ui.H2.Render("Hall of fame"))
				for _, p := range st.ArchivedProjects {
					fmt.Fprintf(out, "  %s %s %s %s\n",
						ui.Gold.Render("["+string(p.Grade)+"]"), p.Title,
						ui.Money(p.TotalValue),
						ui.Muted.Render(string(p.CompletedDate)))
				}
			}
			return nil
		},
	}
	return cmd
}
