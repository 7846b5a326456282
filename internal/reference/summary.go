package reference

import (
	"sort"
	"strings"

	"github.com/abhisek/weakspot/internal/band"
)

// SubjectStats aggregates the records for one subject.
type SubjectStats struct {
	Subject       string
	Count         int
	AvgQuizScore  float64 // percent
	PassRate      float64 // 0.0–1.0
	AvgDifficulty float64
	AvgConfidence float64
	Bands         map[band.Band]int
}

// Summary is the dashboard view of a dataset.
type Summary struct {
	TotalRecords int
	Students     int
	PassRate     float64
	Bands        map[band.Band]int
	// Subjects is sorted by ascending average quiz score, hardest first.
	Subjects []SubjectStats
}

// Summarize aggregates records per subject. Subjects are matched
// case-insensitively; the first spelling seen is kept for display.
func Summarize(records []TrainingRecord) Summary {
	type acc struct {
		stats                      SubjectStats
		score, diff, conf, passed int
	}

	sum := Summary{Bands: make(map[band.Band]int)}
	bySubject := make(map[string]*acc)
	var order []string
	students := make(map[string]struct{})
	passed := 0

	for _, r := range records {
		key := strings.ToLower(strings.TrimSpace(r.Subject))
		a, ok := bySubject[key]
		if !ok {
			a = &acc{stats: SubjectStats{Subject: r.Subject, Bands: make(map[band.Band]int)}}
			bySubject[key] = a
			order = append(order, key)
		}
		a.stats.Count++
		a.score += r.QuizScore
		a.diff += r.Difficulty
		a.conf += r.Confidence
		a.stats.Bands[r.Band]++
		if r.Band.Passed() {
			a.passed++
			passed++
		}

		sum.Bands[r.Band]++
		if r.StudentID != "" {
			students[r.StudentID] = struct{}{}
		}
	}

	sum.TotalRecords = len(records)
	sum.Students = len(students)
	if len(records) > 0 {
		sum.PassRate = float64(passed) / float64(len(records))
	}

	for _, key := range order {
		a := bySubject[key]
		n := float64(a.stats.Count)
		a.stats.AvgQuizScore = float64(a.score) / n
		a.stats.AvgDifficulty = float64(a.diff) / n
		a.stats.AvgConfidence = float64(a.conf) / n
		a.stats.PassRate = float64(a.passed) / n
		sum.Subjects = append(sum.Subjects, a.stats)
	}
	sort.SliceStable(sum.Subjects, func(i, j int) bool {
		return sum.Subjects[i].AvgQuizScore < sum.Subjects[j].AvgQuizScore
	})
	return sum
}

// Averages maps lower-cased subject names to average quiz score (percent).
func (s Summary) Averages() map[string]float64 {
	out := make(map[string]float64, len(s.Subjects))
	for _, st := range s.Subjects {
		out[strings.ToLower(strings.TrimSpace(st.Subject))] = st.AvgQuizScore
	}
	return out
}

// Subject returns the stats for name, matched case-insensitively.
func (s Summary) Subject(name string) (SubjectStats, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, st := range s.Subjects {
		if strings.ToLower(strings.TrimSpace(st.Subject)) == key {
			return st, true
		}
	}
	return SubjectStats{}, false
}
