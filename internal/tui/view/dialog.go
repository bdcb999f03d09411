package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ConfirmChoices are the buttons of a yes/no dialog. The first is highlighted.
var ConfirmChoices = []string{"[y/Enter] Confirm", "[n/Esc] Cancel"}

// DialogStyles groups the styles of a dialog box.
type DialogStyles struct {
	Frame        lipgloss.Style
	Header       lipgloss.Style
	Title        lipgloss.Style
	Body         lipgloss.Style
	Detail       lipgloss.Style
	Footer       lipgloss.Style
	Button       lipgloss.Style
	ActiveButton lipgloss.Style
}

// Confirm is a question that needs a yes or no before the table changes.
type Confirm struct {
	Title   string
	Message string
	Detail  string // optional, rendered below the message
	Choices []string
}

// RenderConfirm draws the dialog box for c.
func RenderConfirm(c Confirm, s DialogStyles) string {
	var b strings.Builder
	b.WriteString(s.Header.Render(s.Title.Render(c.Title)))

	b.WriteString("\n\n")
	b.WriteString(s.Body.Render(c.Message))
	if c.Detail != "" {
		b.WriteString("\n\n")
		b.WriteString(s.Detail.Render(c.Detail))
	}

	choices := c.Choices
	if len(choices) == 0 {
		choices = ConfirmChoices
	}
	b.WriteString("\n\n")
	b.WriteString(s.Footer.Render(renderChoices(s, choices)))

	return s.Frame.Render(b.String())
}

func renderChoices(s DialogStyles, labels []string) string {
	parts := make([]string, len(labels))
	for i, label := range labels {
		style := s.Button
		if i == 0 {
			style = s.ActiveButton
		}
		parts[i] = style.Render(label)
	}
	// The gap takes the body background so the footer reads as one strip.
	return strings.Join(parts, s.Body.Render(" "))
}
