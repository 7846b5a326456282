package pack

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/weakspot/internal/llm"
	"github.com/abhisek/weakspot/internal/screen"
	"github.com/abhisek/weakspot/internal/session"
	"github.com/abhisek/weakspot/internal/studypack"
	"github.com/abhisek/weakspot/internal/ui/components"
	"github.com/abhisek/weakspot/internal/ui/layout"
	"github.com/abhisek/weakspot/internal/ui/theme"
)

// NotesMsg delivers a finished AI notes request to the package screen.
type NotesMsg struct {
	Result studypack.NotesResult
}

// PackageScreen shows the study package for the subject in focus, plus AI
// notes when a provider is configured.
type PackageScreen struct {
	model        session.PackageScreen
	notesEnabled bool
	notes        *studypack.Notes
	notesErr     error
}

var _ screen.Screen = (*PackageScreen)(nil)
var _ screen.Syncer = (*PackageScreen)(nil)
var _ screen.KeyHintProvider = (*PackageScreen)(nil)

// New creates a PackageScreen. With notesEnabled the screen shows a
// pending notes section until a NotesMsg arrives.
func New(model session.PackageScreen, notesEnabled bool) *PackageScreen {
	return &PackageScreen{model: model, notesEnabled: notesEnabled}
}

func (s *PackageScreen) Init() tea.Cmd { return nil }

func (s *PackageScreen) Title() string { return "Study Package" }

func (s *PackageScreen) Sync(m session.Screen) {
	if pm, ok := m.(session.PackageScreen); ok {
		s.model = pm
	}
}

func (s *PackageScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Start quiz"},
		{Key: "C", Description: "Change subject"},
	}
}

func (s *PackageScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case NotesMsg:
		if msg.Result.Notes != nil && msg.Result.Notes.Subject != s.model.Subject.Name {
			return s, nil
		}
		s.notes = msg.Result.Notes
		s.notesErr = msg.Result.Err
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "enter", "q":
			return s, screen.Emit(session.QuizStarted{})
		case "c", "esc":
			return s, screen.Emit(session.ChangeSubject{})
		}
	}
	return s, nil
}

func (s *PackageScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	p := s.model.Package

	var head strings.Builder
	head.WriteString(theme.Title.Render(s.model.Subject.Name))
	if s.model.Subject.IsWeak {
		head.WriteString("  " + theme.Weak.Render("weak"))
	}
	head.WriteString("\n")
	head.WriteString(theme.Body.Render(p.Overview))
	if r := s.model.LastResult; r != nil {
		head.WriteString("\n\n")
		head.WriteString(theme.Subtitle.Render(fmt.Sprintf("Last quiz: %d/%d ", r.Score, r.TotalQuestions)))
		head.WriteString(theme.BandBadge(r.Band))
	}

	sections := []string{
		components.Card(head.String(), cw),
		components.TitledCard("Key topics", components.Bullets(p.Topics), cw),
		components.TitledCard("Resources", components.Bullets(p.Resources), cw),
	}
	if s.notesEnabled {
		sections = append(sections, components.TitledCard("AI study notes", s.notesView(), cw))
	}
	if n := layout.RenderNotice(s.model.Notice); n != "" {
		sections = append(sections, n)
	}

	return lipgloss.NewStyle().Padding(0, 2).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (s *PackageScreen) notesView() string {
	switch {
	case s.notesErr != nil:
		return theme.Hint.Render(fmt.Sprintf("Notes unavailable: %s. The package above has everything you need.", llm.Describe(s.notesErr)))
	case s.notes == nil:
		return theme.Hint.Render("Writing notes for you...")
	}
	var b strings.Builder
	b.WriteString(theme.Body.Render(s.notes.Summary))
	b.WriteString("\n\n")
	b.WriteString(components.Bullets(s.notes.KeyPoints))
	if len(s.notes.Practice) > 0 {
		b.WriteString("\n")
		b.WriteString(theme.Subtitle.Render("Try these:"))
		b.WriteString("\n")
		b.WriteString(components.Bullets(s.notes.Practice))
	}
	return b.String()
}
