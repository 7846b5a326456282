package session

import (
	"github.com/abhisek/weakspot/internal/reference"
	"github.com/abhisek/weakspot/internal/weakness"
)

// Event is an input to Apply.
type Event interface {
	eventName() string
}

// LoggedIn identifies the learner.
type LoggedIn struct{ Name string }

// RatingsSubmitted replaces the rated subjects.
type RatingsSubmitted struct {
	Performances []weakness.SubjectPerformance
}

// FocusSelected puts a rated subject in focus and opens its package.
type FocusSelected struct{ SubjectID string }

// QuizStarted starts a fresh run on the subject in focus.
type QuizStarted struct{}

// OptionSelected records the pending answer for the current question.
type OptionSelected struct{ Index int }

// AnswerSubmitted submits the pending answer.
type AnswerSubmitted struct{}

// QuizCancelled discards the run and returns to the package.
type QuizCancelled struct{}

// RetryRequested returns from feedback to the package of the same subject.
type RetryRequested struct{}

// ChangeSubject clears the focus and returns to the diagnosis.
type ChangeSubject struct{}

// DashboardOpened shows the dashboard.
type DashboardOpened struct{}

// RatingsReopened returns from the diagnosis to the rating form.
type RatingsReopened struct{}

// Navigate jumps to the package or quiz view directly, as a navigation bar
// would. Entering either without a subject in focus is allowed and
// renders a guided message.
type Navigate struct{ To View }

// ReferenceLoaded delivers the asynchronously loaded reference dataset.
// It is accepted in every view.
type ReferenceLoaded struct {
	Summary *reference.Summary
	Err     error
}

func (LoggedIn) eventName() string         { return "login" }
func (RatingsSubmitted) eventName() string { return "submit ratings" }
func (FocusSelected) eventName() string    { return "select subject" }
func (QuizStarted) eventName() string      { return "start quiz" }
func (OptionSelected) eventName() string   { return "select option" }
func (AnswerSubmitted) eventName() string  { return "submit answer" }
func (QuizCancelled) eventName() string    { return "cancel quiz" }
func (RetryRequested) eventName() string   { return "retry" }
func (ChangeSubject) eventName() string    { return "change subject" }
func (DashboardOpened) eventName() string  { return "open dashboard" }
func (RatingsReopened) eventName() string  { return "edit ratings" }
func (Navigate) eventName() string         { return "navigate" }
func (ReferenceLoaded) eventName() string  { return "load reference data" }
