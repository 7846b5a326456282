package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/weakspot/internal/screen"
	"github.com/abhisek/weakspot/internal/session"
	"github.com/abhisek/weakspot/internal/weakness"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	model   session.Screen
	initRan bool
	synced  int
	got     []tea.Msg
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.got = append(s.got, msg)
	return s, nil
}
func (s *stubScreen) View(int, int) string { return s.model.ScreenView().String() }
func (s *stubScreen) Title() string        { return s.model.ScreenView().String() }
func (s *stubScreen) Sync(m session.Screen) {
	s.model = m
	s.synced++
}

func stubFactory(m session.Screen) screen.Screen { return &stubScreen{model: m} }

func mustPerf(t *testing.T, id, name string, d, c int) weakness.SubjectPerformance {
	t.Helper()
	p, err := weakness.NewSubjectPerformance(id, name, d, c)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestNewShowsInitialView(t *testing.T) {
	r := New(session.New("s1"), stubFactory, nil)
	if got := r.Active().Title(); got != session.ViewLogin.String() {
		t.Fatalf("active = %q, want login", got)
	}
	r.Init()
	if !r.Active().(*stubScreen).initRan {
		t.Error("expected Init() to run on initial screen")
	}
}

func TestEventMsgSwapsScreen(t *testing.T) {
	var transitions []session.Event
	r := New(session.New("s1"), stubFactory, func(prev, next session.State, e session.Event) tea.Cmd {
		transitions = append(transitions, e)
		return nil
	})
	first := r.Active()

	r.Update(screen.EventMsg{Events: []session.Event{session.LoggedIn{Name: "Ada"}}})

	if r.State().View != session.ViewSubjectForm {
		t.Fatalf("view = %v, want subjectForm", r.State().View)
	}
	if r.Active() == first {
		t.Error("expected a new screen for the new view")
	}
	if !r.Active().(*stubScreen).initRan {
		t.Error("expected Init() on the new screen")
	}
	if len(transitions) != 1 {
		t.Fatalf("expected 1 transition, got %d", len(transitions))
	}
}

func TestSameViewSyncsScreen(t *testing.T) {
	r := New(session.New("s1"), stubFactory, nil)
	r.Apply(session.LoggedIn{Name: "Ada"})
	r.Apply(session.RatingsSubmitted{Performances: []weakness.SubjectPerformance{
		mustPerf(t, "oop", "OOP", 4, 2),
	}})
	r.Apply(session.FocusSelected{SubjectID: "oop"})
	r.Apply(session.QuizStarted{})

	quizScreen := r.Active().(*stubScreen)
	r.Apply(session.OptionSelected{Index: 1})

	if r.Active() != quizScreen {
		t.Fatal("selecting an option must keep the quiz screen")
	}
	if quizScreen.synced != 1 {
		t.Fatalf("synced = %d, want 1", quizScreen.synced)
	}
	qs, ok := quizScreen.model.(session.QuizScreen)
	if !ok || !qs.HasSelection || qs.Selection != 1 {
		t.Fatalf("unexpected synced model %#v", quizScreen.model)
	}
}

func TestInvalidEventStaysPut(t *testing.T) {
	r := New(session.New("s1"), stubFactory, nil)
	r.Apply(session.QuizStarted{})
	if r.State().View != session.ViewLogin {
		t.Fatalf("view = %v, want login", r.State().View)
	}
	if r.State().Notice == "" {
		t.Error("expected a notice for an invalid event")
	}
}

func TestOtherMessagesForwarded(t *testing.T) {
	r := New(session.New("s1"), stubFactory, nil)
	msg := tea.KeyPressMsg{Code: 'a', Text: "a"}
	r.Update(msg)
	got := r.Active().(*stubScreen).got
	if len(got) != 1 || got[0] != tea.Msg(msg) {
		t.Fatalf("forwarded = %v", got)
	}
}

func TestView(t *testing.T) {
	r := New(session.New("s1"), stubFactory, nil)
	if r.View(80, 24) != "login" {
		t.Errorf("View = %q", r.View(80, 24))
	}
}

func TestEventMsgAppliesInOrder(t *testing.T) {
	r := New(session.New("s1"), stubFactory, nil)
	r.Update(screen.EventMsg{Events: []session.Event{
		session.LoggedIn{Name: "Ada"},
		session.RatingsSubmitted{Performances: []weakness.SubjectPerformance{mustPerf(t, "se", "SE", 3, 3)}},
	}})
	if r.State().View != session.ViewDiagnosis {
		t.Fatalf("view = %v, want diagnosis", r.State().View)
	}
}
