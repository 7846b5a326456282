package nofocus

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/weakspot/internal/screen"
	"github.com/abhisek/weakspot/internal/session"
	"github.com/abhisek/weakspot/internal/ui/components"
	"github.com/abhisek/weakspot/internal/ui/layout"
	"github.com/abhisek/weakspot/internal/ui/theme"
)

// NoFocusScreen guides the learner back to the diagnosis when the package
// or quiz view has no subject to work on.
type NoFocusScreen struct {
	model session.NoSubjectInFocus
	back  components.Button
}

var _ screen.Screen = (*NoFocusScreen)(nil)
var _ screen.Syncer = (*NoFocusScreen)(nil)
var _ screen.KeyHintProvider = (*NoFocusScreen)(nil)

func New(model session.NoSubjectInFocus) *NoFocusScreen {
	return &NoFocusScreen{
		model: model,
		back: components.NewButton("Back to diagnosis", true, func() tea.Cmd {
			return screen.Emit(session.ChangeSubject{})
		}),
	}
}

func (s *NoFocusScreen) Init() tea.Cmd { return nil }

func (s *NoFocusScreen) Title() string { return "Pick a Subject" }

func (s *NoFocusScreen) Sync(m session.Screen) {
	if nm, ok := m.(session.NoSubjectInFocus); ok {
		s.model = nm
	}
}

func (s *NoFocusScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Enter", Description: "Back to diagnosis"}}
}

func (s *NoFocusScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.String() == "esc" {
		return s, screen.Emit(session.ChangeSubject{})
	}
	var cmd tea.Cmd
	s.back, cmd = s.back.Update(msg)
	return s, cmd
}

func (s *NoFocusScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	body := lipgloss.JoinVertical(lipgloss.Left,
		theme.Subtitle.Render("Nothing in focus"),
		"",
		theme.Body.Width(cw-4).Render(s.model.Message),
		"",
		s.back.View(),
	)
	parts := []string{components.Card(body, cw)}
	if n := layout.RenderNotice(s.model.Notice); n != "" {
		parts = append(parts, n)
	}
	return components.Center(lipgloss.JoinVertical(lipgloss.Left, parts...), width, max(height-6, 0))
}
