package feedback

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

// FeedbackScreen shows the band for a finished quiz and the matching
// remediation plan.
type FeedbackScreen struct {
	model session.FeedbackScreen
	menu  components.Menu
}

var _ screen.Screen = (*FeedbackScreen)(nil)
var _ screen.Syncer = (*FeedbackScreen)(nil)
var _ screen.KeyHintProvider = (*FeedbackScreen)(nil)

func New(model session.FeedbackScreen) *FeedbackScreen {
	return &FeedbackScreen{
		model: model,
		menu: components.NewMenu([]components.MenuItem{
			{Label: "Retry this subject", Action: func() tea.Cmd { return screen.Emit(session.RetryRequested{}) }},
			{Label: "Pick another subject", Action: func() tea.Cmd { return screen.Emit(session.ChangeSubject{}) }},
			{Label: "Open dashboard", Action: func() tea.Cmd { return screen.Emit(session.DashboardOpened{}) }},
		}),
	}
}

func (s *FeedbackScreen) Init() tea.Cmd { return nil }

func (s *FeedbackScreen) Title() string { return "Results" }

func (s *FeedbackScreen) Sync(m session.Screen) {
	if fm, ok := m.(session.FeedbackScreen); ok {
		s.model = fm
	}
}

func (s *FeedbackScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "R", Description: "Retry"},
		{Key: "D", Description: "Dashboard"},
	}
}

func (s *FeedbackScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "r":
			return s, screen.Emit(session.RetryRequested{})
		case "c", "esc":
			return s, screen.Emit(session.ChangeSubject{})
		case "d":
			return s, screen.Emit(session.DashboardOpened{})
		}
	}
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *FeedbackScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	r := s.model.Result

	var head strings.Builder
	head.WriteString(theme.Title.Render(r.SubjectName))
	head.WriteString("\n\n")
	head.WriteString(theme.Body.Render(fmt.Sprintf("Score %d/%d  (pass mark %d)  ", r.Score, r.TotalQuestions, r.PassMark)))
	head.WriteString(theme.BandBadge(r.Band))
	head.WriteString("\n\n")
	percent := 0.0
	if r.TotalQuestions > 0 {
		percent = float64(r.Score) / float64(r.TotalQuestions)
	}
	head.WriteString(components.NewProgressBar("", percent, true, cw-6).View())
	head.WriteString("\n\n")
	if s.model.Passed {
		head.WriteString(theme.OK.Render("Passed"))
	} else {
		head.WriteString(theme.Weak.Render("Not passed yet"))
	}

	var plan strings.Builder
	plan.WriteString(theme.Body.Render(s.model.Plan.Description))
	plan.WriteString("\n\n")
	plan.WriteString(components.Bullets(s.model.Plan.Actions))

	sections := []string{
		components.Card(head.String(), cw),
		components.TitledCard(s.model.Plan.Title, plan.String(), cw),
		s.menu.View(),
	}
	if n := layout.RenderNotice(s.model.Notice); n != "" {
		sections = append(sections, n)
	}
	return lipgloss.NewStyle().Padding(0, 2).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}
