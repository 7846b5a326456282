package quiz

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/weakspot/internal/band"
)

func answerAll(t *testing.T, r Run, correct func(i int, q Question) bool) Run {
	t.Helper()
	for !r.Completed() {
		q, ok := r.Current()
		require.True(t, ok)
		choice := q.CorrectIndex
		if !correct(r.Index(), q) {
			choice = (q.CorrectIndex + 1) % len(q.Options)
		}
		var err error
		r, err = r.Select(choice)
		require.NoError(t, err)
		r, err = r.Submit()
		require.NoError(t, err)
	}
	return r
}

func TestRun_OOPAllCorrect(t *testing.T) {
	r, err := NewRun("s1", "OOP")
	require.NoError(t, err)

	r = answerAll(t, r, func(int, Question) bool { return true })

	res, ok := r.Result()
	require.True(t, ok)
	assert.Equal(t, 3, res.Score)
	assert.Equal(t, 3, res.TotalQuestions)
	assert.Equal(t, 2, res.PassMark)
	// A needs passMark+3 = 5, so a perfect 3/3 lands in B.
	assert.Equal(t, band.B, res.Band)
	assert.Equal(t, "s1", res.SubjectID)
	assert.Equal(t, "OOP", res.SubjectName)
}

func TestRun_FallbackOneOfTwo(t *testing.T) {
	r, err := NewRun("s9", "Unknown Topic 101")
	require.NoError(t, err)
	require.Equal(t, 2, r.Total())

	r = answerAll(t, r, func(i int, _ Question) bool { return i == 0 })

	res, ok := r.Result()
	require.True(t, ok)
	assert.Equal(t, 1, res.Score)
	assert.Equal(t, 1, res.PassMark)
	assert.Equal(t, band.C, res.Band)
}

func TestRun_SubmitWithoutSelection(t *testing.T) {
	r, err := NewRun("s1", "OOP")
	require.NoError(t, err)

	next, err := r.Submit()
	assert.ErrorIs(t, err, ErrNoSelection)
	assert.Equal(t, 0, next.Index())
	assert.Equal(t, 0, next.Score())
	assert.Equal(t, PhaseAwaitingAnswer, next.Phase())
}

func TestRun_SelectionClearedAfterSubmit(t *testing.T) {
	r, _ := NewRun("s1", "OOP")
	r, _ = r.Select(1)
	r, err := r.Submit()
	require.NoError(t, err)

	_, has := r.Selection()
	assert.False(t, has, "selection should not carry over to the next question")

	_, err = r.Submit()
	assert.ErrorIs(t, err, ErrNoSelection)
}

func TestRun_SelectOutOfRange(t *testing.T) {
	r, _ := NewRun("s1", "OOP")
	_, err := r.Select(7)
	assert.Error(t, err)
	_, err = r.Select(-1)
	assert.Error(t, err)
}

func TestRun_Immutable(t *testing.T) {
	r0, _ := NewRun("s1", "OOP")
	r1, err := r0.Select(1)
	require.NoError(t, err)
	r2, err := r1.Submit()
	require.NoError(t, err)

	_, has := r0.Selection()
	assert.False(t, has, "Select must not mutate the receiver")
	assert.Equal(t, 0, r1.Index(), "Submit must not mutate the receiver")
	assert.Equal(t, 1, r2.Index())
	assert.Equal(t, 1, r2.Score())
}

func TestRun_NoAnswersAfterCompletion(t *testing.T) {
	r, _ := NewRun("s1", "Unknown")
	r = answerAll(t, r, func(int, Question) bool { return false })

	_, err := r.Select(0)
	assert.ErrorIs(t, err, ErrRunCompleted)
	_, err = r.Submit()
	assert.ErrorIs(t, err, ErrRunCompleted)

	res, _ := r.Result()
	assert.Equal(t, 0, res.Score)
	assert.Equal(t, band.Fail, res.Band)
}

func TestRun_RestartMidQuiz(t *testing.T) {
	r, _ := NewRun("s1", "OOP")
	r, _ = r.Select(1)
	r, _ = r.Submit()
	require.Equal(t, 1, r.Index())
	require.Equal(t, 1, r.Score())
	r, _ = r.Select(0)

	fresh := r.Restart()
	assert.Equal(t, 0, fresh.Index())
	assert.Equal(t, 0, fresh.Score())
	assert.Equal(t, 3, fresh.Total())
	_, has := fresh.Selection()
	assert.False(t, has)
	q, ok := fresh.Current()
	require.True(t, ok)
	assert.Equal(t, "oop-1", q.ID)
}

func TestNewRunWithQuestions_Empty(t *testing.T) {
	_, err := NewRunWithQuestions("x", "x", nil)
	assert.True(t, errors.Is(err, ErrNoQuestionsAvailable))

	var zero Run
	_, err = zero.Submit()
	assert.ErrorIs(t, err, ErrNoQuestionsAvailable)
}

func TestRun_ScoreBounds(t *testing.T) {
	for mask := 0; mask < 8; mask++ {
		r, _ := NewRun("s1", "Software Engineering")
		r = answerAll(t, r, func(i int, _ Question) bool { return mask&(1<<i) != 0 })
		res, _ := r.Result()
		if res.Score < 0 || res.Score > res.TotalQuestions {
			t.Errorf("mask %03b: score %d outside [0, %d]", mask, res.Score, res.TotalQuestions)
		}
		if res.PassMark != PassMark(res.TotalQuestions) {
			t.Errorf("mask %03b: pass mark %d", mask, res.PassMark)
		}
	}
}
