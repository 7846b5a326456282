package quiz

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/weakspot/internal/screen"
	"github.com/abhisek/weakspot/internal/session"
	"github.com/abhisek/weakspot/internal/ui/components"
	"github.com/abhisek/weakspot/internal/ui/layout"
	"github.com/abhisek/weakspot/internal/ui/theme"
)

// QuizScreen shows one question at a time. Space or a letter records a
// selection; Enter records the highlighted option and submits it.
type QuizScreen struct {
	model session.QuizScreen
	mc    components.MultiChoice
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.Syncer = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen for the current question.
func New(model session.QuizScreen) *QuizScreen {
	s := &QuizScreen{}
	s.Sync(model)
	return s
}

func (s *QuizScreen) Init() tea.Cmd { return nil }

func (s *QuizScreen) Title() string { return "Quiz" }

// Sync resets the cursor when the question changes and mirrors the
// recorded selection.
func (s *QuizScreen) Sync(m session.Screen) {
	qm, ok := m.(session.QuizScreen)
	if !ok {
		return
	}
	if qm.Number != s.model.Number || qm.Question.ID != s.model.Question.ID {
		s.mc = components.NewMultiChoice(qm.Question.Text, qm.Question.Options)
	}
	s.mc.Chosen = -1
	if qm.HasSelection {
		s.mc.Chosen = qm.Selection
		s.mc.Cursor = qm.Selection
	}
	s.model = qm
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Move"},
		{Key: "Space", Description: "Select"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Cancel quiz"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		s.mc = s.mc.Up()
	case "down", "j":
		s.mc = s.mc.Down()
	case "space", " ":
		return s, screen.Emit(session.OptionSelected{Index: s.mc.Cursor})
	case "enter":
		if s.mc.Chosen == s.mc.Cursor {
			return s, screen.Emit(session.AnswerSubmitted{})
		}
		return s, screen.Emit(session.OptionSelected{Index: s.mc.Cursor}, session.AnswerSubmitted{})
	case "esc":
		return s, screen.Emit(session.QuizCancelled{})
	default:
		if len(key) == 1 {
			if i := optionIndex(key[0]); i >= 0 && i < len(s.mc.Options) {
				s.mc.Cursor = i
				return s, screen.Emit(session.OptionSelected{Index: i})
			}
		}
	}
	return s, nil
}

// optionIndex maps 'a'..'z' and '1'..'9' to a zero-based option index.
func optionIndex(c byte) int {
	switch {
	case c >= 'a' && c <= 'z':
		return int(c - 'a')
	case c >= '1' && c <= '9':
		return int(c - '1')
	}
	return -1
}

func (s *QuizScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(theme.Title.Render(s.model.SubjectName))
	b.WriteString("\n")
	progress := float64(s.model.Number-1) / float64(max(s.model.Total, 1))
	b.WriteString(components.NewProgressBar(
		fmt.Sprintf("Question %d of %d", s.model.Number, s.model.Total),
		progress, false, cw-4,
	).View())
	b.WriteString("\n\n")
	b.WriteString(s.mc.View())
	if n := layout.RenderNotice(s.model.Notice); n != "" {
		b.WriteString("\n")
		b.WriteString(n)
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(components.Card(b.String(), cw))
}
