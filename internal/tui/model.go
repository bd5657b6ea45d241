package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"focusarena/internal/game"
	"focusarena/internal/store"
	"focusarena/internal/ui"
)

// boardModel is the "today" dashboard. All transitions dispatch through the
// reducer inside Update, so they never interleave; persistence mirrors the
// state asynchronously after each one.
type boardModel struct {
	reducer *game.Reducer
	store   *store.Store

	backupDir      string
	backupInterval time.Duration

	width  int
	height int

	today     game.Date
	tasks     []game.Task
	selected  int
	confirmID int64 // pending delete confirmation, 0 when none

	lastLog string
}

type backupTickMsg time.Time

type backupDoneMsg struct {
	path string
	err  error
}

func newBoardModel(r *game.Reducer, s *store.Store, backupDir string, backupInterval time.Duration) boardModel {
	m := boardModel{
		reducer:        r,
		store:          s,
		backupDir:      backupDir,
		backupInterval: backupInterval,
		lastLog:        "Loaded.",
	}
	m.refresh()
	return m
}

func (m *boardModel) refresh() {
	st := m.reducer.State()
	m.today = game.NewDate(time.Now())
	m.tasks = game.TasksOn(st.Tasks, m.today)
	if m.selected >= len(m.tasks) {
		m.selected = len(m.tasks) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m boardModel) Init() tea.Cmd {
	if m.backupInterval <= 0 {
		return nil
	}
	return m.backupTick()
}

func (m boardModel) backupTick() tea.Cmd {
	return tea.Tick(m.backupInterval, func(t time.Time) tea.Msg { return backupTickMsg(t) })
}

func (m boardModel) backupCmd() tea.Cmd {
	return func() tea.Msg {
		path, err := m.store.Export(context.Background(), m.backupDir, time.Now())
		return backupDoneMsg{path: path, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case backupTickMsg:
		return m, tea.Batch(m.backupCmd(), m.backupTick())

	case backupDoneMsg:
		if msg.err != nil {
			m.lastLog = "Backup failed: " + msg.err.Error()
		} else {
			m.lastLog = ui.IconSave + " Backup written: " + msg.path
		}
		return m, nil

	case tea.KeyMsg:
		// A pending delete confirmation swallows the next key.
		if m.confirmID != 0 {
			if msg.String() == "y" {
				m.reducer.Delete(m.confirmID)
				m.store.SaveAsync(m.reducer.State())
				m.lastLog = fmt.Sprintf("Deleted #%d.", m.confirmID)
				m.confirmID = 0
				m.refresh()
				return m, nil
			}
			m.confirmID = 0
			m.lastLog = "Delete cancelled."
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.refresh()
			m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
			return m, nil
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.tasks)-1 {
				m.selected++
			}
			return m, nil
		case "c", " ", "enter":
			if m.selected < 0 || m.selected >= len(m.tasks) {
				return m, nil
			}
			res, ok := m.reducer.Toggle(m.tasks[m.selected].ID)
			if !ok {
				m.lastLog = "Task not found."
				return m, nil
			}
			m.store.SaveAsync(m.reducer.State())
			if res.Completed {
				m.lastLog = fmt.Sprintf("Completed %q: +%d XP, +%d€.", res.Task.Title, res.XPDelta, res.MoneyDelta)
			} else {
				m.lastLog = fmt.Sprintf("Reopened %q.", res.Task.Title)
			}
			m.refresh()
			return m, nil
		case "d":
			if m.selected < 0 || m.selected >= len(m.tasks) {
				return m, nil
			}
			m.confirmID = m.tasks[m.selected].ID
			m.lastLog = fmt.Sprintf("Delete #%d %q? (y/n)", m.confirmID, m.tasks[m.selected].Title)
			return m, nil
		}
	}
	return m, nil
}

func (m boardModel) View() string {
	st := m.reducer.State()
	level := game.LevelForXP(st.XP)

	header := fmt.Sprintf("%s  %s %s %s  %s %s  %s %d",
		ui.Heading(ui.IconBolt, "Focus Arena"),
		ui.Key.Render(fmt.Sprintf("LVL %d", level.Rank)),
		ui.Title.Render(level.Title),
		ui.Bar(level.ProgressPercent, 16),
		ui.IconMoney, ui.Money(st.Money),
		ui.IconFire, st.Streak,
	)

	social := fmt.Sprintf("%s %d/%d on %s", ui.Key.Render("Social:"), st.SocialGoal.Current, st.SocialGoal.Target, st.SocialGoal.Platform)
	if st.SocialGoal.IsAchieved {
		social += " " + ui.Good.Render("achieved")
	}

	body := ""
	if len(m.tasks) == 0 {
		body = ui.Muted.Render("Nothing planned today. Try `arena brief` or `arena tactics`.")
	} else {
		for i, t := range m.tasks {
			line := ui.TaskLine(t)
			if i == m.selected {
				line = ui.SelectedRow.Render("▶ ") + line
			} else {
				line = "  " + line
			}
			body += line + "\n"
		}
	}

	help := ui.Muted.Render("↑/↓ move · space toggle · d delete · r refresh · q quit")

	return header + "\n" + social + "\n\n" +
		ui.Panel.Render(ui.H2.Render("Today — "+string(m.today))+"\n"+body) + "\n" +
		m.lastLog + "\n" + help + "\n"
}
