package root

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"focusarena/internal/brief"
	"focusarena/internal/game"
	"focusarena/internal/ui"
)

func newBriefCmd() *cobra.Command {
	var sector string
	var projectType string
	var style string
	var startFlag string
	var accept bool

	cmd := &cobra.Command{
		Use:   "brief",
		Short: "Generate an AI mission brief (use --accept to schedule it)",
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
			fmt.Fprintln(out, ui.Muted.Render("Contacting the client..."))

			b, err := provider.MissionBrief(ctx, sector, projectType, style)
			if err != nil {
				return fmt.Errorf("generate brief: %w", err)
			}

			printBrief(out, b)

			if !accept {
				fmt.Fprintln(out, ui.Muted.Render("Run again with --accept to schedule the mission."))
				return nil
			}

			start := game.NewDate(time.Now())
			if startFlag != "" {
				start, err = game.ParseDate(startFlag)
				if err != nil {
					return err
				}
			}

			projectID := nextProjectID(app.Reducer.State())
			added := app.Reducer.Add(b.Tasks(start, projectID))
			fmt.Fprintf(out, "%s %d tasks scheduled as project #%d, starting %s.\n",
				ui.Good.Render(ui.IconSparkle+" Accepted!"), len(added), projectID, start)
			return nil
		},
	}

	cmd.Flags().StringVar(&sector, "sector", "", "Client sector (default: random)")
	cmd.Flags().StringVar(&projectType, "type", "", "Project type (default: random)")
	cmd.Flags().StringVar(&style, "style", "", "Visual style (default: random)")
	cmd.Flags().StringVarP(&startFlag, "start", "s", "", "Start date (YYYY-MM-DD, default today)")
	cmd.Flags().BoolVar(&accept, "accept", false, "Accept the brief and schedule its tasks")
	return cmd
}

// newProvider builds the Gemini provider, translating a missing key into a
// friendly hint.
func newProvider(ctx context.Context, app *App) (*brief.Gemini, error) {
	p, err := brief.NewGemini(ctx, app.Cfg.GeminiAPIKey, app.Cfg.GeminiModel, app.Log)
	if errors.Is(err, brief.ErrMissingAPIKey) {
		return nil, errors.New("no Gemini API key configured; set GEMINI_API_KEY or gemini_api_key in the config file")
	}
	return p, err
}

// nextProjectID mints the id for a freshly accepted brief: one past the
// largest projectId ever used, archives included.
func nextProjectID(st *game.GameState) int64 {
	var max int64
	for _, t := range st.Tasks {
		if t.ProjectID > max {
			max = t.ProjectID
		}
	}
	for _, p := range st.ArchivedProjects {
		if p.ID > max {
			max = p.ID
		}
	}
	return max + 1
}

func printBrief(out io.Writer, b *brief.MissionBrief) {
	fmt.Fprintln(out, ui.Heading(ui.IconBrief, b.BrandName+" — "+b.ProductName))
	fmt.Fprintln(out, ui.LabelValue("Sector", b.Sector))
	fmt.Fprintln(out, ui.LabelValue("Type", b.ProjectType))
	fmt.Fprintln(out, ui.LabelValue("Art direction", b.ArtDirection))
	fmt.Fprintln(out, ui.Muted.Render(b.MoodDescription))
	fmt.Fprintln(out, ui.LabelValue("Challenge", b.TechnicalChallenge))
	if len(b.Deliverables) > 0 {
		fmt.Fprintln(out, ui.LabelValue("Deliverables", strings.Join(b.Deliverables, ", ")))
	}
	if len(b.ColorPalette) > 0 {
		fmt.Fprintln(out, ui.LabelValue("Palette", strings.Join(b.ColorPalette, " ")))
	}

	wf := b.SmartWorkflow
	fmt.Fprintln(out, "")
	fmt.Fprintf(out, "%s %s over %d days\n", ui.H2.Render("Workflow —"), ui.Money(wf.TotalBounty), wf.EstimatedDuration)
	if len(wf.RushDays) > 0 {
		fmt.Fprintf(out, "%s rush days %v: %s\n", ui.IconWarn, wf.RushDays, ui.Muted.Render(wf.RushReason))
	}
	for _, s := range wf.Steps {
		fmt.Fprintf(out, "  day %d  %s %s %s\n",
			s.Day, ui.CategoryBadge(s.Category), s.Title,
			ui.Muted.Render(fmt.Sprintf("(%d xp, %d€)", s.XP, s.Value)))
	}
	fmt.Fprintln(out, "")
}
