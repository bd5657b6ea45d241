package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"focusarena/internal/ui"
)

const Version = "0.1.0"

var verbose bool

var rootCmd = &cobra.Command{
	Use:           "arena",
	Short:         "Focus Arena — gamified task tracker for freelancers",
	Long:          "Focus Arena is a local-first CLI/TUI task tracker with XP, streaks, projects and AI-generated mission briefs.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")

	// Bare `arena` shows the today view.
	today := newTodayCmd()
	rootCmd.Args = cobra.NoArgs
	rootCmd.RunE = today.RunE

	rootCmd.AddCommand(
		today,
		newAddCmd(),
		newDoCmd(),
		newRmCmd(),
		newListCmd(),
		newStatsCmd(),
		newProfileCmd(),
		newProjectsCmd(),
		newSocialCmd(),
		newBriefCmd(),
		newTacticsCmd(),
		newBossCmd(),
		newImportCmd(),
		newBackupCmd(),
		newResetCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
