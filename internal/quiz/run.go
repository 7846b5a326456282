package quiz

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSelection is returned when an answer is submitted before an
	// option has been selected.
	ErrNoSelection = errors.New("no option selected")

	// ErrRunCompleted is returned for any answer event after completion.
	ErrRunCompleted = errors.New("quiz run already completed")

	// ErrNoQuestionsAvailable marks a question bank that yielded nothing.
	// The generic fallback bank makes this unreachable; seeing it is a bug.
	ErrNoQuestionsAvailable = errors.New("no questions available")
)

// Phase is the coarse state of a run.
type Phase int

const (
	PhaseAwaitingAnswer Phase = iota
	PhaseCompleted
)

func (p Phase) String() string {
	if p == PhaseCompleted {
		return "completed"
	}
	return "awaiting-answer"
}

// Run is an immutable snapshot of a quiz in progress. Every transition
// returns a new Run and leaves the receiver untouched.
type Run struct {
	subjectID   string
	subjectName string
	questions   []Question
	index       int
	score       int
	selection   int // -1 when nothing is selected
	result      *Result
}

// NewRun starts a run over the bank for subjectName at question 0.
func NewRun(subjectID, subjectName string) (Run, error) {
	return NewRunWithQuestions(subjectID, subjectName, SelectQuestionBank(subjectName))
}

// NewRunWithQuestions starts a run over an explicit question list.
func NewRunWithQuestions(subjectID, subjectName string, questions []Question) (Run, error) {
	if len(questions) == 0 {
		return Run{}, fmt.Errorf("subject %q: %w", subjectName, ErrNoQuestionsAvailable)
	}
	return Run{
		subjectID:   subjectID,
		subjectName: subjectName,
		questions:   questions,
		selection:   -1,
	}, nil
}

func (r Run) SubjectID() string   { return r.subjectID }
func (r Run) SubjectName() string { return r.subjectName }
func (r Run) Index() int          { return r.index }
func (r Run) Score() int          { return r.score }
func (r Run) Total() int          { return len(r.questions) }

// Phase reports whether the run is awaiting an answer or completed.
func (r Run) Phase() Phase {
	if r.result != nil {
		return PhaseCompleted
	}
	return PhaseAwaitingAnswer
}

// Completed reports whether the last question has been answered.
func (r Run) Completed() bool {
	return r.result != nil
}

// Current returns the question awaiting an answer.
func (r Run) Current() (Question, bool) {
	if r.result != nil || r.index >= len(r.questions) {
		return Question{}, false
	}
	return r.questions[r.index], true
}

// Selection returns the pending option index, if any.
func (r Run) Selection() (int, bool) {
	return r.selection, r.selection >= 0
}

// Result returns the terminal result once the run is completed.
func (r Run) Result() (Result, bool) {
	if r.result == nil {
		return Result{}, false
	}
	return *r.result, true
}

// Select records option as the pending answer for the current question.
func (r Run) Select(option int) (Run, error) {
	q, ok := r.Current()
	if !ok {
		if r.result != nil {
			return r, ErrRunCompleted
		}
		return r, ErrNoQuestionsAvailable
	}
	if option < 0 || option >= len(q.Options) {
		return r, fmt.Errorf("option %d out of range for question %s (%d options)", option, q.ID, len(q.Options))
	}
	r.selection = option
	return r, nil
}

// Submit answers the current question with the pending selection. The
// score increments iff the selection matches the correct option. Answering
// the last question completes the run and produces its Result.
func (r Run) Submit() (Run, error) {
	q, ok := r.Current()
	if !ok {
		if r.result != nil {
			return r, ErrRunCompleted
		}
		return r, ErrNoQuestionsAvailable
	}
	if r.selection < 0 {
		return r, ErrNoSelection
	}

	if q.IsCorrect(r.selection) {
		r.score++
	}
	r.selection = -1

	if r.index == len(r.questions)-1 {
		res := NewResult(r.subjectID, r.subjectName, r.score, len(r.questions))
		r.result = &res
		return r, nil
	}
	r.index++
	return r, nil
}

// Restart discards all progress and returns a fresh run over the same
// questions, positioned at question 0 with a zero score.
func (r Run) Restart() Run {
	return Run{
		subjectID:   r.subjectID,
		subjectName: r.subjectName,
		questions:   r.questions,
		selection:   -1,
	}
}
