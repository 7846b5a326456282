package weakness

import (
	"errors"
	"math"
	"testing"
)

func TestIsWeak_AllRatings(t *testing.T) {
	for d := MinRating; d <= MaxRating; d++ {
		for c := MinRating; c <= MaxRating; c++ {
			got, err := IsWeak(d, c)
			if err != nil {
				t.Fatalf("IsWeak(%d, %d): unexpected error %v", d, c, err)
			}
			want := d >= 3 || c <= 2
			if got != want {
				t.Errorf("IsWeak(%d, %d) = %v, want %v", d, c, got, want)
			}
		}
	}
}

func TestIsWeak_HardButConfident(t *testing.T) {
	got, _ := IsWeak(4, 2)
	if !got {
		t.Error("difficulty=4 confidence=2 should be weak")
	}
}

func TestIsWeak_EasyAndConfident(t *testing.T) {
	got, _ := IsWeak(2, 4)
	if got {
		t.Error("difficulty=2 confidence=4 should not be weak")
	}
}

func TestIsWeak_OutOfRange(t *testing.T) {
	tests := []struct {
		name       string
		difficulty int
		confidence int
		field      string
		value      int
	}{
		{"difficulty zero", 0, 3, "difficulty", 0},
		{"difficulty six", 6, 3, "difficulty", 6},
		{"confidence zero", 3, 0, "confidence", 0},
		{"confidence negative", 3, -1, "confidence", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := IsWeak(tt.difficulty, tt.confidence)
			var rerr *InvalidRatingError
			if !errors.As(err, &rerr) {
				t.Fatalf("got %v, want *InvalidRatingError", err)
			}
			if rerr.Field != tt.field || rerr.Value != tt.value {
				t.Errorf("got %s=%d, want %s=%d", rerr.Field, rerr.Value, tt.field, tt.value)
			}
		})
	}
}

func TestNewSubjectPerformance(t *testing.T) {
	p, err := NewSubjectPerformance("s1", "OOP", 4, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.IsWeak {
		t.Error("expected IsWeak")
	}
	if p.ID != "s1" || p.Name != "OOP" || p.Difficulty != 4 || p.Confidence != 2 {
		t.Errorf("unexpected performance %+v", p)
	}

	_, err = NewSubjectPerformance("s2", "Networks", 9, 3)
	var rerr *InvalidRatingError
	if !errors.As(err, &rerr) {
		t.Fatalf("got %v, want wrapped *InvalidRatingError", err)
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		avg        float64
		difficulty int
		confidence int
		want       float64
	}{
		// 0.4*50 + 0.3*80 + 0.3*60
		{50, 4, 2, 62},
		// 0.4*0 + 0.3*20 + 0.3*80
		{100, 1, 1, 30},
		// 0.4*100 + 0.3*100 + 0.3*0
		{0, 5, 5, 70},
	}
	for _, tt := range tests {
		got := Score(tt.avg, tt.difficulty, tt.confidence)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Score(%v, %d, %d) = %v, want %v", tt.avg, tt.difficulty, tt.confidence, got, tt.want)
		}
	}
}

func TestRank(t *testing.T) {
	mk := func(name string, d, c int) SubjectPerformance {
		p, err := NewSubjectPerformance(name, name, d, c)
		if err != nil {
			t.Fatal(err)
		}
		return p
	}
	perfs := []SubjectPerformance{
		mk("Software Engineering", 3, 3),
		mk("Databases", 1, 5), // not weak
		mk("OOP", 5, 1),
		mk("Internet Programming", 3, 3),
	}
	averages := map[string]float64{
		"oop":                  40,
		"software engineering": 90,
	}

	ranked := Rank(perfs, averages)
	if len(ranked) != 3 {
		t.Fatalf("got %d ranked subjects, want 3", len(ranked))
	}
	if ranked[0].Performance.Name != "OOP" {
		t.Errorf("first = %q, want OOP", ranked[0].Performance.Name)
	}
	// Internet Programming has no history, so it scores against 0 and
	// outranks Software Engineering with the same ratings.
	if ranked[1].Performance.Name != "Internet Programming" || ranked[1].HasHistory {
		t.Errorf("second = %+v, want Internet Programming without history", ranked[1])
	}
	if ranked[2].Performance.Name != "Software Engineering" || !ranked[2].HasHistory {
		t.Errorf("third = %+v, want Software Engineering with history", ranked[2])
	}
}

func TestWeakOnly(t *testing.T) {
	perfs := []SubjectPerformance{
		{Name: "a", IsWeak: true},
		{Name: "b"},
		{Name: "c", IsWeak: true},
	}
	got := WeakOnly(perfs)
	if len(got) != 2 || got[0].Name != "a" || got[1].Name != "c" {
		t.Errorf("WeakOnly = %+v", got)
	}
}
