package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"focusarena/internal/game"
)

// Focus Arena theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconBolt    = "⚡"
	IconSparkle = "✨"
	IconDone    = "✅"
	IconTodo    = "⬜"
	IconTrophy  = "🏆"
	IconFire    = "🔥"
	IconMoney   = "💰"
	IconBrief   = "📋"
	IconBoss    = "👹"
	IconChart   = "📊"
	IconCrown   = "👑"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconSave    = "💾"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold)
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// Bar renders a fixed-width progress bar for a 0-100 percentage.
func Bar(percent, width int) string {
	if width <= 0 {
		width = 20
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := percent * width / 100
	return Good.Render(strings.Repeat("█", filled)) + Muted.Render(strings.Repeat("░", width-filled))
}

// Money formats a fictional-euro amount.
func Money(v int) string {
	return Gold.Render(fmt.Sprintf("%d€", v))
}

// CategoryBadge renders a short colored tag for a category.
func CategoryBadge(c game.Category) string {
	label := strings.ToUpper(string(c))
	switch c {
	case game.CategoryProd:
		return H2.Render(label)
	case game.CategorySale:
		return Gold.Render(label)
	case game.CategorySocial:
		return Title.Render(label)
	case game.CategoryAdmin:
		return Muted.Render(label)
	case game.CategoryBiz:
		return Good.Render(label)
	default:
		return Muted.Render(label)
	}
}

// TaskLine renders one task row for CLI listings.
func TaskLine(t game.Task) string {
	check := IconTodo
	if t.Completed {
		check = IconDone
	}
	reward := fmt.Sprintf("(%d xp", t.XP)
	if t.Value > 0 {
		reward += fmt.Sprintf(", %d€", t.Value)
	}
	reward += ")"

	line := fmt.Sprintf("%s #%d %s %s %s", check, t.ID, CategoryBadge(t.Cat), t.Title, Muted.Render(reward))
	if t.IsBossTask {
		line += " " + IconBoss
	}
	return line
}
