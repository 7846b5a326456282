package ratings

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/weakspot/internal/quiz"
	"github.com/abhisek/weakspot/internal/screen"
	"github.com/abhisek/weakspot/internal/session"
	"github.com/abhisek/weakspot/internal/ui/components"
	"github.com/abhisek/weakspot/internal/ui/layout"
	"github.com/abhisek/weakspot/internal/ui/theme"
	"github.com/abhisek/weakspot/internal/weakness"
)

const defaultRating = 3

type field int

const (
	fieldDifficulty field = iota
	fieldConfidence
)

type row struct {
	name       string
	difficulty int
	confidence int
}

// RatingsScreen collects weekly difficulty and confidence self-ratings.
type RatingsScreen struct {
	model  session.SubjectFormScreen
	rows   []row
	cursor int
	field  field
	adding bool
	input  components.TextInput
}

var _ screen.Screen = (*RatingsScreen)(nil)
var _ screen.Syncer = (*RatingsScreen)(nil)
var _ screen.KeyHintProvider = (*RatingsScreen)(nil)

// New creates a RatingsScreen pre-filled with the previous submission, or
// with the suggested subjects on first entry.
func New(model session.SubjectFormScreen) *RatingsScreen {
	s := &RatingsScreen{
		model: model,
		input: components.NewTextInput("Subject name", 60),
	}
	if len(model.Current) > 0 {
		for _, p := range model.Current {
			s.rows = append(s.rows, row{name: p.Name, difficulty: p.Difficulty, confidence: p.Confidence})
		}
	} else {
		for _, name := range model.Suggestions {
			s.rows = append(s.rows, row{name: name, difficulty: defaultRating, confidence: defaultRating})
		}
	}
	return s
}

func (s *RatingsScreen) Init() tea.Cmd { return nil }

func (s *RatingsScreen) Title() string { return "Weekly Check-in" }

func (s *RatingsScreen) Sync(m session.Screen) {
	if fm, ok := m.(session.SubjectFormScreen); ok {
		s.model = fm
	}
}

func (s *RatingsScreen) KeyHints() []layout.KeyHint {
	if s.adding {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Add"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Subject"},
		{Key: "Tab", Description: "Field"},
		{Key: "←→", Description: "Rate"},
		{Key: "A", Description: "Add"},
		{Key: "X", Description: "Remove"},
		{Key: "Enter", Description: "Submit"},
	}
}

func (s *RatingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if s.adding {
		if ok {
			switch kmsg.String() {
			case "enter":
				name := strings.TrimSpace(s.input.Value())
				if name == "" {
					s.adding = false
					s.input.Reset()
					return s, nil
				}
				if notice := s.checkName(name); notice != "" {
					s.model.Notice = notice
					return s, nil
				}
				s.model.Notice = ""
				s.rows = append(s.rows, row{name: name, difficulty: defaultRating, confidence: defaultRating})
				s.cursor = len(s.rows) - 1
				s.adding = false
				s.input.Reset()
				return s, nil
			case "esc":
				s.adding = false
				s.input.Reset()
				return s, nil
			}
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.rows)-1 {
			s.cursor++
		}
	case "tab":
		s.field = 1 - s.field
	case "left", "h":
		s.adjust(-1)
	case "right", "l":
		s.adjust(+1)
	case "1", "2", "3", "4", "5":
		s.set(int(kmsg.String()[0] - '0'))
	case "a":
		s.adding = true
		return s, s.input.Init()
	case "x", "delete":
		if len(s.rows) > 0 {
			s.rows = append(s.rows[:s.cursor], s.rows[s.cursor+1:]...)
			s.cursor = min(s.cursor, max(len(s.rows)-1, 0))
		}
	case "enter":
		return s, s.submit()
	}
	return s, nil
}

// checkName reports why name cannot be added, or "" when it can.
func (s *RatingsScreen) checkName(name string) string {
	key := quiz.SubjectKey(name)
	if key == "" {
		return fmt.Sprintf("%q is not a subject name.", name)
	}
	for _, r := range s.rows {
		if quiz.SubjectKey(r.name) == key {
			return fmt.Sprintf("%s is already listed.", r.name)
		}
	}
	return ""
}

func (s *RatingsScreen) adjust(delta int) {
	if len(s.rows) == 0 {
		return
	}
	r := &s.rows[s.cursor]
	if s.field == fieldDifficulty {
		r.difficulty = clamp(r.difficulty + delta)
	} else {
		r.confidence = clamp(r.confidence + delta)
	}
}

func (s *RatingsScreen) set(v int) {
	if len(s.rows) == 0 {
		return
	}
	r := &s.rows[s.cursor]
	if s.field == fieldDifficulty {
		r.difficulty = clamp(v)
	} else {
		r.confidence = clamp(v)
	}
}

func clamp(v int) int {
	return min(max(v, components.RatingMin), components.RatingMax)
}

// Performances converts the rows into rated subjects. Rows are clamped on
// entry so construction cannot fail on range.
func (s *RatingsScreen) Performances() ([]weakness.SubjectPerformance, error) {
	out := make([]weakness.SubjectPerformance, 0, len(s.rows))
	for _, r := range s.rows {
		p, err := weakness.NewSubjectPerformance(quiz.SubjectKey(r.name), r.name, r.difficulty, r.confidence)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *RatingsScreen) submit() tea.Cmd {
	perfs, err := s.Performances()
	if err != nil {
		s.model.Notice = err.Error()
		return nil
	}
	return screen.Emit(session.RatingsSubmitted{Performances: perfs})
}

func (s *RatingsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(theme.Title.Render(fmt.Sprintf("How did this week go, %s?", s.model.Learner)))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("Difficulty 1 (easy) – 5 (hard), confidence 1 (lost) – 5 (solid)."))
	b.WriteString("\n\n")

	nameWidth := max(cw-34, 12)
	header := fmt.Sprintf("    %-*s  %-11s  %-11s  %s", nameWidth, "Subject", "Difficulty", "Confidence", "")
	b.WriteString(theme.Subtitle.Render(header))
	b.WriteString("\n")

	if len(s.rows) == 0 {
		b.WriteString(theme.Hint.Render("    No subjects yet. Press A to add one."))
		b.WriteString("\n")
	}
	for i, r := range s.rows {
		focused := i == s.cursor
		prefix := "    "
		nameStyle := theme.Unselected
		if focused {
			prefix = "  ▸ "
			nameStyle = theme.Selected
		}
		weak, _ := weakness.IsWeak(r.difficulty, r.confidence)
		flag := theme.OK.Render("ok")
		if weak {
			flag = theme.Weak.Render("weak")
		}
		name := nameStyle.Render(fmt.Sprintf("%-*s", nameWidth, truncate(r.name, nameWidth)))
		line := prefix + name + "  " +
			components.Rating(r.difficulty, focused && s.field == fieldDifficulty) + "        " +
			components.Rating(r.confidence, focused && s.field == fieldConfidence) + "        " +
			flag
		b.WriteString(line)
		b.WriteString("\n")
	}

	if s.adding {
		b.WriteString("\n")
		b.WriteString(theme.Subtitle.Render("  New subject: "))
		b.WriteString(s.input.View())
		b.WriteString("\n")
	}
	if n := layout.RenderNotice(s.model.Notice); n != "" {
		b.WriteString("\n")
		b.WriteString(n)
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(components.Card(b.String(), cw))
}

func truncate(s string, n int) string {
	if lipgloss.Width(s) <= n {
		return s
	}
	r := []rune(s)
	if n <= 1 || len(r) <= n {
		return string(r[:min(len(r), n)])
	}
	return string(r[:n-1]) + "…"
}
