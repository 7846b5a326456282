// Package quiz selects subject question banks and runs a sequential
// multiple-choice quiz over them.
package quiz

import (
	"math"

	"github.com/abhisek/weakspot/internal/band"
)

// PassRatio is the fraction of questions needed to pass a quiz.
const PassRatio = 0.5

// Question is a single multiple-choice item.
type Question struct {
	ID           string
	Text         string
	Options      []string
	CorrectIndex int
}

// IsCorrect reports whether option is the correct choice.
func (q Question) IsCorrect(option int) bool {
	return option == q.CorrectIndex
}

// Result is the terminal outcome of a completed quiz run.
type Result struct {
	SubjectID      string
	SubjectName    string
	Score          int
	TotalQuestions int
	PassMark       int
	Band           band.Band
}

// PassMark returns ceil(total * PassRatio).
func PassMark(total int) int {
	return int(math.Ceil(float64(total) * PassRatio))
}

// NewResult builds a Result, deriving the pass mark and band.
func NewResult(subjectID, subjectName string, score, total int) Result {
	pm := PassMark(total)
	return Result{
		SubjectID:      subjectID,
		SubjectName:    subjectName,
		Score:          score,
		TotalQuestions: total,
		PassMark:       pm,
		Band:           band.Compute(score, pm),
	}
}
