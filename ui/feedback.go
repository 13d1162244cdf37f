package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/jnun/contactcmd-sub001/session"
)

var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// FeedbackModel is the accept/reject/edit prompt shown for one suggested
// command. The decision it collects goes to the CLI and the audit log; it
// never flows back into the AI session.
type FeedbackModel struct {
	command     string
	explanation string
	input       textinput.Model
	editing     bool
	done        bool
	action      session.FeedbackAction
	width       int
}

// NewFeedbackModel builds the prompt for one suggestion.
func NewFeedbackModel(command, explanation string) FeedbackModel {
	input := textinput.New()
	input.SetValue(command)
	input.CharLimit = 256
	input.Width = 60

	return FeedbackModel{
		command:     command,
		explanation: explanation,
		input:       input,
		action:      session.FeedbackReject,
		width:       defaultWidth,
	}
}

// Feedback returns the collected decision. Only meaningful after the
// program has finished.
func (m FeedbackModel) Feedback() session.CommandFeedback {
	fb := session.CommandFeedback{
		Command: m.command,
		Action:  m.action,
	}
	if m.action == session.FeedbackEdit {
		fb.Edited = m.input.Value()
	}
	return fb
}

// Init implements tea.Model.
func (m FeedbackModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m FeedbackModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg)
		}
		switch msg.String() {
		case "y", "Y", "enter":
			m.action = session.FeedbackAccept
			m.done = true
			return m, tea.Quit
		case "n", "N", "q", "esc", "ctrl+c":
			m.action = session.FeedbackReject
			m.done = true
			return m, tea.Quit
		case "e", "E":
			m.editing = true
			m.input.Focus()
			return m, textinput.Blink
		}
	}
	return m, nil
}

func (m FeedbackModel) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.action = session.FeedbackEdit
		m.editing = false
		m.done = true
		return m, tea.Quit
	case "esc":
		m.editing = false
		m.input.SetValue(m.command)
		return m, nil
	case "ctrl+c":
		m.action = session.FeedbackReject
		m.done = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m FeedbackModel) View() string {
	if m.done {
		return ""
	}

	maxCmd := m.width - 4
	if maxCmd < 10 {
		maxCmd = 10
	}
	command := runewidth.Truncate(m.command, maxCmd, "…")

	view := promptStyle.Render("Suggested command") + "\n\n"
	view += "  " + commandStyle.Render(command) + "\n"
	if m.explanation != "" {
		view += "  " + explanationStyle.Render(m.explanation) + "\n"
	}
	view += "\n"

	if m.editing {
		view += "  " + m.input.View() + "\n\n"
		view += dimStyle.Render("  enter: run edited   esc: discard edit")
		return view
	}

	view += fmt.Sprintf("  %s run   %s edit   %s skip",
		keyStyle.Render("[y]"),
		keyStyle.Render("[e]"),
		keyStyle.Render("[n]"))
	return view
}

// PromptFeedback runs the feedback prompt and returns the user's decision.
func PromptFeedback(command, explanation string) (session.CommandFeedback, error) {
	program := tea.NewProgram(NewFeedbackModel(command, explanation))
	final, err := program.Run()
	if err != nil {
		return session.CommandFeedback{}, fmt.Errorf("feedback prompt failed: %w", err)
	}
	model, ok := final.(FeedbackModel)
	if !ok {
		return session.CommandFeedback{}, fmt.Errorf("unexpected model type %T", final)
	}
	return model.Feedback(), nil
}
