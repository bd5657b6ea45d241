package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"focusarena/internal/game"
	"focusarena/internal/ui"
)

func newBossCmd() *cobra.Command {
	var accept bool

	cmd := &cobra.Command{
		Use:   "boss",
		Short: "Summon an end-of-month boss battle",
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
			fmt.Fprintln(out, ui.Muted.Render("Something stirs in the dark..."))

			b, err := provider.BossBattle(ctx)
			if err != nil {
				return fmt.Errorf("generate boss battle: %w", err)
			}

			fmt.Fprintln(out, ui.Heading(ui.IconBoss, b.Title))
			fmt.Fprintln(out, ui.Muted.Render(b.Description))
			for _, t := range b.Tasks {
				fmt.Fprintf(out, "  %s %s %s\n", ui.IconBolt, t.Title, ui.Muted.Render(fmt.Sprintf("(%d xp)", t.XP)))
			}

			if !accept {
				fmt.Fprintln(out, ui.Muted.Render("Run again with --accept if you dare."))
				return nil
			}

			today := game.NewDate(time.Now())
			added := app.Reducer.Add(b.TaskList(today))
			fmt.Fprintf(out, "%s %d boss tasks added. Good luck.\n", ui.Warn.Render(ui.IconFire+" Engaged!"), len(added))
			return nil
		},
	}

	cmd.Flags().BoolVar(&accept, "accept", false, "Accept the battle and add its tasks")
	return cmd
}
