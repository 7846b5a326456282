package login

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/weakspot/internal/screen"
	"github.com/abhisek/weakspot/internal/session"
	"github.com/abhisek/weakspot/internal/ui/components"
	"github.com/abhisek/weakspot/internal/ui/layout"
	"github.com/abhisek/weakspot/internal/ui/theme"
)

// LoginScreen asks the learner for their name.
type LoginScreen struct {
	model session.LoginScreen
	input components.TextInput
}

var _ screen.Screen = (*LoginScreen)(nil)
var _ screen.Syncer = (*LoginScreen)(nil)
var _ screen.KeyHintProvider = (*LoginScreen)(nil)

// New creates a LoginScreen.
func New(model session.LoginScreen) *LoginScreen {
	return &LoginScreen{
		model: model,
		input: components.NewTextInput("Your name", 40),
	}
}

func (s *LoginScreen) Init() tea.Cmd { return s.input.Init() }

func (s *LoginScreen) Title() string { return "Welcome" }

func (s *LoginScreen) Sync(m session.Screen) {
	if lm, ok := m.(session.LoginScreen); ok {
		s.model = lm
	}
}

func (s *LoginScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Enter", Description: "Continue"}}
}

func (s *LoginScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.String() == "enter" {
		return s, screen.Emit(session.LoggedIn{Name: s.input.Value()})
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *LoginScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(theme.Title.Render("Find your weak spots"))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render("Rate your subjects, take a short quiz and get a study plan."))
	b.WriteString("\n\n")
	b.WriteString(theme.Subtitle.Render("What should we call you?"))
	b.WriteString("\n")
	b.WriteString(s.input.View())
	if n := layout.RenderNotice(s.model.Notice); n != "" {
		b.WriteString("\n\n")
		b.WriteString(n)
	}

	page := lipgloss.JoinVertical(lipgloss.Center, renderBanner(cw), "", components.Card(b.String(), cw))
	return components.Center(page, width, height)
}
