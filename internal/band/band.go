// Package band maps a quiz score and pass mark to a qualitative outcome tier.
package band

import "strings"

// Band is a qualitative quiz-outcome tier.
type Band string

const (
	A    Band = "A"
	B    Band = "B"
	C    Band = "C"
	Fail Band = "FAIL"
)

// All returns every band from best to worst.
func All() []Band {
	return []Band{A, B, C, Fail}
}

// Compute classifies score relative to passMark. Thresholds are inclusive
// lower bounds checked from the highest band down.
func Compute(score, passMark int) Band {
	switch {
	case score >= passMark+3:
		return A
	case score >= passMark+1:
		return B
	case score >= passMark:
		return C
	default:
		return Fail
	}
}

// Passed reports whether the band clears the pass mark.
func (b Band) Passed() bool {
	switch b {
	case A, B, C:
		return true
	default:
		return false
	}
}

// Valid reports whether b is one of the four known bands.
func (b Band) Valid() bool {
	switch b {
	case A, B, C, Fail:
		return true
	}
	return false
}

// Parse reads a band label such as "a", "Fail" or "F".
// Unknown labels map to Fail.
func Parse(s string) Band {
	b, _ := Lookup(s)
	return b
}

// Lookup is Parse that also reports whether the label named a known band.
func Lookup(s string) (Band, bool) {
	label := Band(strings.ToUpper(strings.TrimSpace(s)))
	if label == "F" {
		label = Fail
	}
	if !label.Valid() {
		return Fail, false
	}
	return label, true
}

func (b Band) String() string {
	return string(b)
}
