package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/weakspot/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for screen sections
// so stacked cards line up.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-6, 20), 72)
}

// Card wraps content in a rounded-border card at the given content width.
func Card(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw).
		Padding(0, 1).
		Render(content)
}

// TitledCard renders a card with a bold heading line.
func TitledCard(title, content string, cw int) string {
	return Card(theme.Title.Render(title)+"\n"+content, cw)
}

// Center places content in the middle of a width x height box.
func Center(content string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// Bullets renders items as an indented bullet list.
func Bullets(items []string) string {
	var s string
	for _, it := range items {
		s += theme.Body.Render("  • "+it) + "\n"
	}
	return s
}
