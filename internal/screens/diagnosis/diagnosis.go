package diagnosis

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

// DiagnosisScreen lists rated subjects with weak ones ranked first and
// lets the learner pick one to focus on.
type DiagnosisScreen struct {
	model  session.DiagnosisScreen
	cursor int
}

var _ screen.Screen = (*DiagnosisScreen)(nil)
var _ screen.Syncer = (*DiagnosisScreen)(nil)
var _ screen.KeyHintProvider = (*DiagnosisScreen)(nil)

// New creates a DiagnosisScreen with the cursor on the suggested subject.
func New(model session.DiagnosisScreen) *DiagnosisScreen {
	s := &DiagnosisScreen{model: model}
	for i, r := range model.Rows {
		if r.Performance.ID == model.Suggested {
			s.cursor = i
			break
		}
	}
	return s
}

func (s *DiagnosisScreen) Init() tea.Cmd { return nil }

func (s *DiagnosisScreen) Title() string { return "Diagnosis" }

// Sync keeps the cursor on the same subject when rows are re-ranked.
func (s *DiagnosisScreen) Sync(m session.Screen) {
	dm, ok := m.(session.DiagnosisScreen)
	if !ok {
		return
	}
	id := s.selectedID()
	s.model = dm
	s.cursor = 0
	for i, r := range dm.Rows {
		if r.Performance.ID == id {
			s.cursor = i
			break
		}
	}
}

func (s *DiagnosisScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Study"},
		{Key: "D", Description: "Dashboard"},
		{Key: "E", Description: "Edit ratings"},
	}
}

func (s *DiagnosisScreen) selectedID() string {
	if s.cursor < 0 || s.cursor >= len(s.model.Rows) {
		return ""
	}
	return s.model.Rows[s.cursor].Performance.ID
}

func (s *DiagnosisScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.model.Rows)-1 {
			s.cursor++
		}
	case "enter":
		if id := s.selectedID(); id != "" {
			return s, screen.Emit(session.FocusSelected{SubjectID: id})
		}
	case "d":
		return s, screen.Emit(session.DashboardOpened{})
	case "e":
		return s, screen.Emit(session.RatingsReopened{})
	}
	return s, nil
}

func (s *DiagnosisScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var b strings.Builder
	switch s.model.WeakCount {
	case 0:
		b.WriteString(theme.Title.Render("No weak subjects this week"))
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("Pick any subject to keep it sharp."))
	default:
		b.WriteString(theme.Title.Render(fmt.Sprintf("%d weak subject(s) flagged", s.model.WeakCount)))
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("Ranked by priority. \"new\" means no class history for that subject."))
	}
	b.WriteString("\n\n")

	nameWidth := max(cw-48, 12)
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("    %-3s %-*s  %4s  %4s  %-6s  %s", "#", nameWidth, "Subject", "Diff", "Conf", "Status", "Priority")))
	b.WriteString("\n")

	for i, r := range s.model.Rows {
		prefix := "    "
		style := theme.Unselected
		if i == s.cursor {
			prefix = "  ▸ "
			style = theme.Selected
		}
		rank, status, score := "", theme.OK.Render("ok    "), ""
		if r.Performance.IsWeak {
			rank = fmt.Sprintf("%d", r.Rank)
			status = theme.Weak.Render("weak  ")
			score = fmt.Sprintf("%5.1f", r.Score)
			if !r.HasHistory {
				score += theme.Hint.Render(" new")
			}
		}
		name := r.Performance.Name
		if r.Performance.ID == s.model.Suggested {
			name += " ★"
		}
		b.WriteString(prefix)
		b.WriteString(style.Render(fmt.Sprintf("%-3s %-*s  %4d  %4d  ", rank, nameWidth, name, r.Performance.Difficulty, r.Performance.Confidence)))
		b.WriteString(status)
		b.WriteString("  ")
		b.WriteString(score)
		b.WriteString("\n")
	}

	if n := layout.RenderNotice(s.model.Notice); n != "" {
		b.WriteString("\n")
		b.WriteString(n)
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(components.Card(b.String(), cw))
}
