package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/capy/internal/ui/theme"
)

// Modal renders a centered card with a heading, body and an acknowledgement button.
func Modal(heading, body, button string, width int) string {
	inner := width
	if inner > 64 {
		inner = 64
	}
	if inner < 20 {
		inner = 20
	}

	parts := []string{
		lipgloss.PlaceHorizontal(inner, lipgloss.Center, heading),
		"",
		lipgloss.NewStyle().Width(inner).Foreground(theme.Text).Render(body),
		"",
		lipgloss.PlaceHorizontal(inner, lipgloss.Center, NewButton(button, true).View()),
	}
	return theme.Modal.Render(strings.Join(parts, "\n"))
}
