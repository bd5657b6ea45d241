package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"focusarena/internal/game"
	"focusarena/internal/store"
)

// RunBoard runs the interactive today view until the user quits.
func RunBoard(r *game.Reducer, s *store.Store, backupDir string, backupInterval time.Duration, out io.Writer) error {
	m := newBoardModel(r, s, backupDir, backupInterval)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
