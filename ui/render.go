// Package ui holds the terminal presentation layer: markdown rendering for
// assistant replies and the feedback prompt for suggested commands.
package ui

import (
	"strings"

	markdown "github.com/MichaelMure/go-term-markdown"
	"github.com/charmbracelet/lipgloss"
)

const defaultWidth = 100

var (
	replyStyle = lipgloss.NewStyle().
			PaddingLeft(1)

	commandStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true)

	explanationStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

// RenderReply renders the assistant's markdown reply for the terminal.
func RenderReply(content string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	rendered := markdown.Render(content, width, 2)
	return replyStyle.Render(strings.TrimRight(string(rendered), "\n"))
}

// RenderCommand renders one suggested command with its explanation.
func RenderCommand(command, explanation string) string {
	line := commandStyle.Render(command)
	if explanation != "" {
		line += "\n" + explanationStyle.Render("  "+explanation)
	}
	return line
}

// RenderError renders an error line.
func RenderError(err error) string {
	return errorStyle.Render("Error: " + err.Error())
}
