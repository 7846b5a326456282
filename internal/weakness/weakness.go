// Package weakness flags subjects for remediation from a learner's
// self-reported difficulty and confidence ratings.
package weakness

import "fmt"

const (
	MinRating = 1
	MaxRating = 5

	// DifficultyThreshold and ConfidenceThreshold are the inclusive bounds
	// at which a subject counts as weak.
	DifficultyThreshold = 3
	ConfidenceThreshold = 2
)

// InvalidRatingError reports a rating outside the 1–5 scale.
type InvalidRatingError struct {
	Field string
	Value int
}

func (e *InvalidRatingError) Error() string {
	return fmt.Sprintf("invalid %s rating %d: must be between %d and %d", e.Field, e.Value, MinRating, MaxRating)
}

// SubjectPerformance is one self-rated subject. IsWeak is derived at
// construction and must not be set independently.
type SubjectPerformance struct {
	ID         string
	Name       string
	Difficulty int
	Confidence int
	IsWeak     bool
}

// IsWeak reports whether a subject rated at difficulty and confidence
// should be flagged for remediation.
func IsWeak(difficulty, confidence int) (bool, error) {
	if err := ValidateRating("difficulty", difficulty); err != nil {
		return false, err
	}
	if err := ValidateRating("confidence", confidence); err != nil {
		return false, err
	}
	return difficulty >= DifficultyThreshold || confidence <= ConfidenceThreshold, nil
}

// ValidateRating returns an *InvalidRatingError if v is off the 1–5 scale.
func ValidateRating(field string, v int) error {
	if v < MinRating || v > MaxRating {
		return &InvalidRatingError{Field: field, Value: v}
	}
	return nil
}

// NewSubjectPerformance builds a SubjectPerformance with IsWeak derived
// from the ratings.
func NewSubjectPerformance(id, name string, difficulty, confidence int) (SubjectPerformance, error) {
	weak, err := IsWeak(difficulty, confidence)
	if err != nil {
		return SubjectPerformance{}, fmt.Errorf("subject %q: %w", name, err)
	}
	return SubjectPerformance{
		ID:         id,
		Name:       name,
		Difficulty: difficulty,
		Confidence: confidence,
		IsWeak:     weak,
	}, nil
}

// Score is a descriptive weakness magnitude on a roughly 0–100 scale.
// avgQuizScore is the historical average quiz score for the subject as a
// percentage. It never gates IsWeak.
func Score(avgQuizScore float64, difficulty, confidence int) float64 {
	return 0.4*(100-avgQuizScore) +
		0.3*float64(difficulty*20) +
		0.3*float64((5-confidence)*20)
}
