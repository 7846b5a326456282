package components

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/weakspot/internal/ui/theme"
)

// MultiChoice renders a question with lettered options. Cursor is the
// highlighted option and Chosen the recorded selection, -1 when none.
type MultiChoice struct {
	Question string
	Options  []string
	Cursor   int
	Chosen   int
}

// NewMultiChoice creates a multiple-choice view with nothing chosen.
func NewMultiChoice(question string, options []string) MultiChoice {
	return MultiChoice{
		Question: question,
		Options:  options,
		Chosen:   -1,
	}
}

// Up moves the cursor up one option.
func (m MultiChoice) Up() MultiChoice {
	if m.Cursor > 0 {
		m.Cursor--
	}
	return m
}

// Down moves the cursor down one option.
func (m MultiChoice) Down() MultiChoice {
	if m.Cursor < len(m.Options)-1 {
		m.Cursor++
	}
	return m
}

// OptionLabel returns "A", "B", ... for index i.
func OptionLabel(i int) string {
	return string(rune('A' + i))
}

// View renders the question and its options.
func (m MultiChoice) View() string {
	s := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(m.Question) + "\n\n"

	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Cursor {
			prefix = "▸ "
		}
		mark := " "
		if i == m.Chosen {
			mark = "●"
		}
		line := fmt.Sprintf("%s%s %s)  %s", prefix, mark, OptionLabel(i), opt)

		switch {
		case i == m.Chosen:
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(line) + "\n"
		case i == m.Cursor:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}

	return s
}
