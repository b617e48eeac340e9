// Package wizard provides a Bubbletea-based interactive form for
// creating a task without remembering flags.
package wizard

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dpramesti/remind/internal/manager"
	"github.com/dpramesti/remind/internal/task"
)

// Styles contains the visual styling for the wizard.
type Styles struct {
	Prompt   Style
	Error    Style
	Subtle   Style
	Selected Style
}

// Style aliases lipgloss.Style so callers don't need the import.
type Style = lipgloss.Style

// DefaultStyles returns the default wizard styling.
func DefaultStyles() Styles {
	return Styles{
		Prompt:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Subtle:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("170")),
	}
}

// ErrCanceled is returned when the user aborts the wizard.
var ErrCanceled = fmt.Errorf("wizard canceled")

// Run collects task fields interactively and returns the create request.
func Run(defaultCategory string) (manager.CreateRequest, error) {
	m := newModel(defaultCategory)
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return manager.CreateRequest{}, err
	}

	fm, ok := final.(*model)
	if !ok || fm.canceled {
		return manager.CreateRequest{}, ErrCanceled
	}
	return fm.buildRequest()
}

// step identifies one wizard field.
type step int

const (
	stepTitle step = iota
	stepDescription
	stepDate
	stepTime
	stepPriority
	stepCategory
	stepKind
	stepRecurrence
	stepEvery
	stepDone
)

type model struct {
	step     step
	input    textinput.Model
	cursor   int
	values   map[step]string
	errMsg   string
	canceled bool
	styles   Styles

	defaultCategory string
}

func newModel(defaultCategory string) *model {
	m := &model{
		step:            stepTitle,
		values:          make(map[step]string),
		styles:          DefaultStyles(),
		defaultCategory: defaultCategory,
	}
	m.input = m.inputFor(stepTitle)
	return m
}

// prompts and placeholders per text step.
var textSteps = map[step][2]string{
	stepTitle:       {"Title", "Submit thesis draft"},
	stepDescription: {"Description (optional)", ""},
	stepDate:        {"Deadline date", "YYYY-MM-DD"},
	stepTime:        {"Deadline time (optional)", "HH:MM"},
	stepCategory:    {"Category", ""},
	stepEvery:       {"Repeat every N intervals", "1"},
}

// options per select step.
var selectSteps = map[step][]string{
	stepPriority:   {"high", "medium", "low"},
	stepKind:       {"one-shot", "recurring"},
	stepRecurrence: {"daily", "weekly", "monthly"},
}

func (m *model) inputFor(s step) textinput.Model {
	ti := textinput.New()
	cfg := textSteps[s]
	ti.Placeholder = cfg[1]
	if s == stepCategory {
		ti.Placeholder = m.defaultCategory
	}
	ti.Focus()
	ti.CharLimit = 200
	return ti
}

func (m *model) isSelect() bool {
	_, ok := selectSteps[m.step]
	return ok
}

func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch key.String() {
	case "ctrl+c", "esc":
		m.canceled = true
		return m, tea.Quit
	case "enter":
		return m.advance()
	case "up", "k":
		if m.isSelect() && m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if m.isSelect() && m.cursor < len(selectSteps[m.step])-1 {
			m.cursor++
		}
		return m, nil
	}

	if !m.isSelect() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// advance validates the current field, records it and moves on.
func (m *model) advance() (tea.Model, tea.Cmd) {
	if m.isSelect() {
		m.values[m.step] = selectSteps[m.step][m.cursor]
	} else {
		value := strings.TrimSpace(m.input.Value())
		if err := m.validate(value); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.values[m.step] = value
	}
	m.errMsg = ""
	m.cursor = 0

	m.step = m.nextStep()
	if m.step == stepDone {
		return m, tea.Quit
	}
	if !m.isSelect() {
		m.input = m.inputFor(m.step)
		return m, textinput.Blink
	}
	return m, nil
}

// nextStep skips recurrence fields for one-shot tasks.
func (m *model) nextStep() step {
	next := m.step + 1
	if next == stepRecurrence && m.values[stepKind] != "recurring" {
		return stepDone
	}
	return next
}

func (m *model) validate(value string) error {
	switch m.step {
	case stepTitle:
		if value == "" {
			return fmt.Errorf("title must not be empty")
		}
	case stepDate:
		if _, err := task.ParseDeadline(value, ""); err != nil {
			return fmt.Errorf("use YYYY-MM-DD")
		}
	case stepTime:
		if value != "" {
			if _, err := task.ParseDeadline(m.values[stepDate], value); err != nil {
				return fmt.Errorf("use HH:MM")
			}
		}
	case stepEvery:
		if value != "" {
			n, err := strconv.Atoi(value)
			if err != nil || n < 1 {
				return fmt.Errorf("must be a number >= 1")
			}
		}
	}
	return nil
}

func (m *model) View() string {
	if m.step == stepDone || m.canceled {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Prompt.Render(m.prompt()) + "\n\n")

	if m.isSelect() {
		for i, opt := range selectSteps[m.step] {
			line := "  " + opt
			if i == m.cursor {
				line = m.styles.Selected.Render("> " + opt)
			}
			b.WriteString(line + "\n")
		}
	} else {
		b.WriteString(m.input.View() + "\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n" + m.styles.Error.Render(m.errMsg) + "\n")
	}
	b.WriteString("\n" + m.styles.Subtle.Render("enter to confirm · esc to cancel") + "\n")
	return b.String()
}

func (m *model) prompt() string {
	if cfg, ok := textSteps[m.step]; ok {
		return cfg[0]
	}
	switch m.step {
	case stepPriority:
		return "Priority"
	case stepKind:
		return "Task type"
	case stepRecurrence:
		return "Repeats"
	}
	return ""
}

// buildRequest assembles the create request from collected values.
func (m *model) buildRequest() (manager.CreateRequest, error) {
	deadline, err := task.ParseDeadline(m.values[stepDate], m.values[stepTime])
	if err != nil {
		return manager.CreateRequest{}, err
	}

	priority, err := task.ParsePriority(m.values[stepPriority])
	if err != nil {
		return manager.CreateRequest{}, err
	}

	category := m.values[stepCategory]
	if category == "" {
		category = m.defaultCategory
	}

	req := manager.CreateRequest{
		Title:       m.values[stepTitle],
		Description: m.values[stepDescription],
		Deadline:    deadline,
		Priority:    priority,
		Category:    category,
	}

	if m.values[stepKind] == "recurring" {
		req.Recurring = true
		req.Recurrence = task.Recurrence(m.values[stepRecurrence])
		req.Every = 1
		if v := m.values[stepEvery]; v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				req.Every = n
			}
		}
	}

	return req, nil
}
