package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/weakspot/internal/ui/theme"
)

// RatingScale bounds a 1–5 self-rating.
const (
	RatingMin = 1
	RatingMax = 5
)

// Rating renders value as filled and empty dots, highlighted when focused.
func Rating(value int, focused bool) string {
	value = min(max(value, RatingMin), RatingMax)
	dots := strings.Repeat("●", value) + strings.Repeat("○", RatingMax-value)
	style := lipgloss.NewStyle().Foreground(theme.TextDim)
	if focused {
		style = theme.Selected
	}
	return style.Render(dots)
}
