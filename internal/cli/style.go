package cli

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/dpramesti/remind/internal/config"
	"github.com/dpramesti/remind/internal/task"
)

// Styles for urgency rendering.
var (
	styleOverdue   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	styleDueToday  = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)
	styleUpcoming  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	styleScheduled = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	styleCompleted = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	styleHeader    = lipgloss.NewStyle().Bold(true)
)

// colorEnabled decides whether to style output, honoring the config and
// falling back to a tty check.
func colorEnabled(cfg *config.Config) bool {
	switch cfg.Color {
	case "always":
		return true
	case "never":
		return false
	default:
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}
}

// urgencyLabel renders an urgency value, styled when color is on.
func urgencyLabel(u task.Urgency, color bool) string {
	label := map[task.Urgency]string{
		task.UrgencyOverdue:   "overdue",
		task.UrgencyDueToday:  "due today",
		task.UrgencyUpcoming:  "upcoming",
		task.UrgencyScheduled: "scheduled",
		task.UrgencyCompleted: "done",
	}[u]

	if !color {
		return label
	}
	switch u {
	case task.UrgencyOverdue:
		return styleOverdue.Render(label)
	case task.UrgencyDueToday:
		return styleDueToday.Render(label)
	case task.UrgencyUpcoming:
		return styleUpcoming.Render(label)
	case task.UrgencyCompleted:
		return styleCompleted.Render(label)
	default:
		return styleScheduled.Render(label)
	}
}

// truncate shortens s to max runes, appending an ellipsis.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

// shortID returns the first 8 characters of a task id for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
