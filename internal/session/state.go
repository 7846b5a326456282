package session

import (
	"github.com/abhisek/weakspot/internal/quiz"
	"github.com/abhisek/weakspot/internal/reference"
	"github.com/abhisek/weakspot/internal/remediation"
	"github.com/abhisek/weakspot/internal/weakness"
)

// State is a snapshot of one learner's session. Transitions never mutate
// a State; slices are copied before they are changed.
type State struct {
	View      View
	SessionID string
	Learner   string

	// Performances is the latest rating submission.
	Performances []weakness.SubjectPerformance

	// Focus is the ID of the subject in focus, or "".
	Focus string

	// Run is the quiz in progress, nil outside the quiz view.
	Run *quiz.Run

	// Result and Plan are set once a run completes.
	Result *quiz.Result
	Plan   *remediation.Plan

	// History holds every result completed this session, oldest first.
	History []quiz.Result

	// Reference is the historical dataset summary, nil until loaded.
	Reference    *reference.Summary
	ReferenceErr string

	// Notice is a one-shot message for the learner, cleared by the next
	// accepted event.
	Notice string
}

// New returns the initial state: the login view.
func New(sessionID string) State {
	return State{View: ViewLogin, SessionID: sessionID}
}

// FocusedSubject returns the performance of the subject in focus.
func (s State) FocusedSubject() (weakness.SubjectPerformance, bool) {
	if s.Focus == "" {
		return weakness.SubjectPerformance{}, false
	}
	return findSubject(s.Performances, s.Focus)
}

// WeakSubjects returns the weak subjects in submission order.
func (s State) WeakSubjects() []weakness.SubjectPerformance {
	return weakness.WeakOnly(s.Performances)
}

// LastResult returns the most recent completed result for subjectID.
func (s State) LastResult(subjectID string) (quiz.Result, bool) {
	for i := len(s.History) - 1; i >= 0; i-- {
		if s.History[i].SubjectID == subjectID {
			return s.History[i], true
		}
	}
	return quiz.Result{}, false
}

func findSubject(perfs []weakness.SubjectPerformance, id string) (weakness.SubjectPerformance, bool) {
	for _, p := range perfs {
		if p.ID == id {
			return p, true
		}
	}
	return weakness.SubjectPerformance{}, false
}
