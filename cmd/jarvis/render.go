package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/lakshitavyas02/jarvis-voice-assistant/internal/model"
)

var (
	nameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	promptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	linkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Underline(true)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")).
			Italic(true)
)

// renderReply prints the assistant's answer and any navigation action
func renderReply(w io.Writer, reply *model.Reply) {
	fmt.Fprintf(w, "%s %s\n", nameStyle.Render("Jarvis:"), reply.Message)
	if reply.Action != nil && reply.Action.Type == model.ActionOpenWebsite {
		fmt.Fprintf(w, "  %s %s\n", hintStyle.Render("open"), linkStyle.Render(reply.Action.URL))
	}
}
