package dashboard

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/weakspot/internal/band"
	"github.com/abhisek/weakspot/internal/screen"
	"github.com/abhisek/weakspot/internal/session"
	"github.com/abhisek/weakspot/internal/ui/components"
	"github.com/abhisek/weakspot/internal/ui/layout"
	"github.com/abhisek/weakspot/internal/ui/theme"
)

// maxSubjects caps the reference subjects listed on the dashboard.
const maxSubjects = 6

// DashboardScreen shows this session's quiz history next to the
// historical reference dataset.
type DashboardScreen struct {
	model session.DashboardScreen
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.Syncer = (*DashboardScreen)(nil)
var _ screen.KeyHintProvider = (*DashboardScreen)(nil)

func New(model session.DashboardScreen) *DashboardScreen {
	return &DashboardScreen{model: model}
}

func (s *DashboardScreen) Init() tea.Cmd { return nil }

func (s *DashboardScreen) Title() string { return "Dashboard" }

func (s *DashboardScreen) Sync(m session.Screen) {
	if dm, ok := m.(session.DashboardScreen); ok {
		s.model = dm
	}
}

func (s *DashboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "C", Description: "Change subject"},
		{Key: "P", Description: "Study package"},
	}
}

func (s *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "c", "esc":
			return s, screen.Emit(session.ChangeSubject{})
		case "p":
			return s, screen.Emit(session.Navigate{To: session.ViewPackage})
		}
	}
	return s, nil
}

func (s *DashboardScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	sections := []string{
		components.TitledCard("This session", s.historyView(), cw),
		components.TitledCard("Weak subjects", s.weakView(), cw),
		components.TitledCard("Reference data", s.referenceView(cw), cw),
	}
	if n := layout.RenderNotice(s.model.Notice); n != "" {
		sections = append(sections, n)
	}
	return lipgloss.NewStyle().Padding(0, 2).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (s *DashboardScreen) historyView() string {
	if len(s.model.History) == 0 {
		return theme.Hint.Render("No quizzes taken yet.")
	}
	var b strings.Builder
	for _, r := range s.model.History {
		b.WriteString(theme.Body.Render(fmt.Sprintf("  %-32s %d/%d  ", truncate(r.SubjectName, 32), r.Score, r.TotalQuestions)))
		b.WriteString(theme.BandBadge(r.Band))
		b.WriteString("\n")
	}
	return b.String()
}

func (s *DashboardScreen) weakView() string {
	if len(s.model.Weak) == 0 {
		return theme.OK.Render("Nothing flagged as weak.")
	}
	var b strings.Builder
	for i, r := range s.model.Weak {
		line := fmt.Sprintf("  %d. %-32s score %5.1f", i+1, truncate(r.Performance.Name, 32), r.Score)
		b.WriteString(theme.Weak.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

func (s *DashboardScreen) referenceView(cw int) string {
	switch {
	case s.model.ReferenceErr != "":
		return theme.Hint.Render("Reference data unavailable: " + s.model.ReferenceErr)
	case s.model.ReferenceLoading || s.model.Reference == nil:
		return theme.Hint.Render("Loading reference data...")
	}
	sum := s.model.Reference

	var b strings.Builder
	b.WriteString(theme.Body.Render(fmt.Sprintf("%d records from %d students, %.0f%% passed",
		sum.TotalRecords, sum.Students, sum.PassRate*100)))
	b.WriteString("\n")
	for _, bd := range band.All() {
		b.WriteString(theme.BandBadge(bd))
		b.WriteString(theme.Body.Render(fmt.Sprintf(" %d  ", sum.Bands[bd])))
	}
	b.WriteString("\n\n")
	b.WriteString(theme.Subtitle.Render("Pass rate by subject, hardest first"))
	b.WriteString("\n")
	for i, st := range sum.Subjects {
		if i == maxSubjects {
			b.WriteString(theme.Hint.Render(fmt.Sprintf("  and %d more", len(sum.Subjects)-maxSubjects)))
			b.WriteString("\n")
			break
		}
		b.WriteString(components.NewProgressBar(fmt.Sprintf("%-24s", truncate(st.Subject, 24)), st.PassRate, true, cw-4).View())
		b.WriteString("\n")
	}
	return b.String()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
