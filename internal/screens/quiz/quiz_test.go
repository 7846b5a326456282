package quiz

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/weakspot/internal/quiz"
	"github.com/abhisek/weakspot/internal/screen"
	"github.com/abhisek/weakspot/internal/session"
)

func model(number, sel int, has bool) session.QuizScreen {
	bank := quiz.SelectQuestionBank("OOP")
	return session.QuizScreen{
		SubjectName:  "Object-Oriented Programming",
		Number:       number,
		Total:        len(bank),
		Question:     bank[number-1],
		Selection:    sel,
		HasSelection: has,
	}
}

func events(t *testing.T, cmd tea.Cmd) []session.Event {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(screen.EventMsg)
	if !ok {
		t.Fatalf("expected EventMsg, got %T", cmd())
	}
	return msg.Events
}

func TestSpaceSelectsCursor(t *testing.T) {
	s := New(model(1, 0, false))
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeySpace, Text: " "})
	evs := events(t, cmd)
	if len(evs) != 1 {
		t.Fatalf("events = %v", evs)
	}
	if sel, ok := evs[0].(session.OptionSelected); !ok || sel.Index != 1 {
		t.Fatalf("unexpected event %#v", evs[0])
	}
}

func TestLetterSelects(t *testing.T) {
	s := New(model(1, 0, false))
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'c', Text: "c"})
	evs := events(t, cmd)
	if sel, ok := evs[0].(session.OptionSelected); !ok || sel.Index != 2 {
		t.Fatalf("unexpected event %#v", evs[0])
	}
	if s.mc.Cursor != 2 {
		t.Fatalf("cursor = %d, want 2", s.mc.Cursor)
	}

	// Out of range letters are ignored.
	if _, cmd := s.Update(tea.KeyPressMsg{Code: 'z', Text: "z"}); cmd != nil {
		t.Fatal("expected no command for an out-of-range option")
	}
}

func TestEnterWithRecordedSelectionSubmits(t *testing.T) {
	s := New(model(1, 1, true))
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	evs := events(t, cmd)
	if len(evs) != 1 {
		t.Fatalf("events = %v", evs)
	}
	if _, ok := evs[0].(session.AnswerSubmitted); !ok {
		t.Fatalf("unexpected event %#v", evs[0])
	}
}

func TestEnterSelectsAndSubmits(t *testing.T) {
	s := New(model(1, 0, false))
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	evs := events(t, cmd)
	if len(evs) != 2 {
		t.Fatalf("events = %v", evs)
	}
	if sel, ok := evs[0].(session.OptionSelected); !ok || sel.Index != 1 {
		t.Fatalf("first event %#v", evs[0])
	}
	if _, ok := evs[1].(session.AnswerSubmitted); !ok {
		t.Fatalf("second event %#v", evs[1])
	}
}

func TestEscCancels(t *testing.T) {
	s := New(model(1, 0, false))
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if _, ok := events(t, cmd)[0].(session.QuizCancelled); !ok {
		t.Fatal("esc should cancel the quiz")
	}
}

func TestSyncNewQuestionResetsCursor(t *testing.T) {
	s := New(model(1, 2, true))
	if s.mc.Cursor != 2 || s.mc.Chosen != 2 {
		t.Fatalf("cursor/chosen = %d/%d", s.mc.Cursor, s.mc.Chosen)
	}
	s.Sync(model(2, 0, false))
	if s.mc.Cursor != 0 || s.mc.Chosen != -1 {
		t.Fatalf("after advance cursor/chosen = %d/%d", s.mc.Cursor, s.mc.Chosen)
	}
}

func TestViewShowsProgress(t *testing.T) {
	out := New(model(2, 0, false)).View(100, 30)
	if !strings.Contains(out, "Question 2 of 3") {
		t.Error("missing progress label")
	}
}
