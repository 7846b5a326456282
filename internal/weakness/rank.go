package weakness

import (
	"sort"
	"strings"
)

// Ranked pairs a weak subject with its descriptive weakness score.
type Ranked struct {
	Performance SubjectPerformance
	Score       float64
	// HasHistory is false when no historical average existed for the subject.
	HasHistory bool
}

// Rank orders the weak subjects in perfs by descending Score. averages maps
// lower-cased subject names to historical average quiz scores (percent).
// Subjects without history are scored against an average of 0.
func Rank(perfs []SubjectPerformance, averages map[string]float64) []Ranked {
	var out []Ranked
	for _, p := range perfs {
		if !p.IsWeak {
			continue
		}
		avg, ok := averages[strings.ToLower(strings.TrimSpace(p.Name))]
		out = append(out, Ranked{
			Performance: p,
			Score:       Score(avg, p.Difficulty, p.Confidence),
			HasHistory:  ok,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Performance.Name < out[j].Performance.Name
	})
	return out
}

// WeakOnly filters perfs down to weak subjects, preserving order.
func WeakOnly(perfs []SubjectPerformance) []SubjectPerformance {
	var out []SubjectPerformance
	for _, p := range perfs {
		if p.IsWeak {
			out = append(out, p)
		}
	}
	return out
}
