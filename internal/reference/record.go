// Package reference loads the historical training dataset used for
// descriptive dashboard statistics. Nothing here feeds band computation.
package reference

import "github.com/abhisek/weakspot/internal/band"

// TrainingRecord is one historical quiz outcome.
type TrainingRecord struct {
	StudentID  string
	Subject    string
	Difficulty int
	Confidence int
	QuizScore  int
	PassMark   int
	Band       band.Band
}

// Dataset is an immutable, loaded set of training records.
type Dataset struct {
	Records []TrainingRecord
	// Skipped counts malformed rows dropped during load.
	Skipped int
	// UnknownBands counts kept rows whose band label was not A, B, C or
	// FAIL. Those rows are counted as FAIL.
	UnknownBands int
	Source  string
}
