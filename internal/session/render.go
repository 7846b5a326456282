package session

import (
	"errors"
	"strings"

	"github.com/abhisek/weakspot/internal/quiz"
	"github.com/abhisek/weakspot/internal/reference"
	"github.com/abhisek/weakspot/internal/remediation"
	"github.com/abhisek/weakspot/internal/studypack"
	"github.com/abhisek/weakspot/internal/weakness"
)

// ErrNoSubjectInFocus is carried by the NoSubjectInFocus screen. It is
// never returned from Apply.
var ErrNoSubjectInFocus = errors.New("no subject in focus")

// Screen is a framework-free view model produced by Render.
type Screen interface {
	ScreenView() View
}

// LoginScreen asks for the learner's name.
type LoginScreen struct {
	Notice string
}

// SubjectFormScreen collects difficulty and confidence ratings.
type SubjectFormScreen struct {
	Learner     string
	Suggestions []string
	// Current holds the previous submission when ratings are reopened.
	Current []weakness.SubjectPerformance
	Notice  string
}

// DiagnosisRow is one rated subject in the diagnosis table.
type DiagnosisRow struct {
	Performance weakness.SubjectPerformance
	// Rank is the 1-based priority among weak subjects, 0 when not weak.
	Rank       int
	Score      float64
	HasHistory bool
}

// DiagnosisScreen lists the rated subjects, weak ones first by priority.
type DiagnosisScreen struct {
	Learner   string
	Rows      []DiagnosisRow
	WeakCount int
	// Suggested is the ID of the top-ranked weak subject, or "".
	Suggested string
	Notice    string
}

// PackageScreen shows the study package for the subject in focus.
type PackageScreen struct {
	Subject    weakness.SubjectPerformance
	Package    studypack.Package
	LastResult *quiz.Result
	Notice     string
}

// QuizScreen shows the current question of a run.
type QuizScreen struct {
	SubjectName  string
	Number       int // 1-based
	Total        int
	Question     quiz.Question
	Selection    int
	HasSelection bool
	Notice       string
}

// FeedbackScreen shows a completed result and its remediation plan.
type FeedbackScreen struct {
	Result quiz.Result
	Plan   remediation.Plan
	Passed bool
	Notice string
}

// DashboardScreen aggregates this session's results with the reference
// dataset.
type DashboardScreen struct {
	Learner          string
	History          []quiz.Result
	Weak             []weakness.Ranked
	Reference        *reference.Summary
	ReferenceLoading bool
	ReferenceErr     string
	Notice           string
}

// NoSubjectInFocus is shown when the package or quiz view is entered with
// nothing in focus. BackTo is the view that resolves it.
type NoSubjectInFocus struct {
	From    View
	Message string
	BackTo  View
	Err     error
	Notice  string
}

func (LoginScreen) ScreenView() View       { return ViewLogin }
func (SubjectFormScreen) ScreenView() View { return ViewSubjectForm }
func (DiagnosisScreen) ScreenView() View   { return ViewDiagnosis }
func (PackageScreen) ScreenView() View     { return ViewPackage }
func (QuizScreen) ScreenView() View        { return ViewQuiz }
func (FeedbackScreen) ScreenView() View    { return ViewFeedback }
func (DashboardScreen) ScreenView() View   { return ViewDashboard }
func (n NoSubjectInFocus) ScreenView() View {
	return n.From
}

// Render builds the view model for s. It has no side effects.
func Render(s State) Screen {
	switch s.View {
	case ViewLogin:
		return LoginScreen{Notice: s.Notice}
	case ViewSubjectForm:
		return SubjectFormScreen{
			Learner:     s.Learner,
			Suggestions: quiz.NamedSubjects(),
			Current:     append([]weakness.SubjectPerformance(nil), s.Performances...),
			Notice:      s.Notice,
		}
	case ViewDiagnosis:
		return renderDiagnosis(s)
	case ViewPackage:
		subject, ok := s.FocusedSubject()
		if !ok {
			return noFocus(s)
		}
		scr := PackageScreen{
			Subject: subject,
			Package: studypack.Build(subject.Name),
			Notice:  s.Notice,
		}
		if r, ok := s.LastResult(subject.ID); ok {
			scr.LastResult = &r
		}
		return scr
	case ViewQuiz:
		if _, ok := s.FocusedSubject(); !ok || s.Run == nil {
			return noFocus(s)
		}
		q, _ := s.Run.Current()
		sel, has := s.Run.Selection()
		return QuizScreen{
			SubjectName:  s.Run.SubjectName(),
			Number:       s.Run.Index() + 1,
			Total:        s.Run.Total(),
			Question:     q,
			Selection:    sel,
			HasSelection: has,
			Notice:       s.Notice,
		}
	case ViewFeedback:
		if s.Result == nil || s.Plan == nil {
			return noFocus(s)
		}
		return FeedbackScreen{
			Result: *s.Result,
			Plan:   *s.Plan,
			Passed: s.Result.Band.Passed(),
			Notice: s.Notice,
		}
	case ViewDashboard:
		return DashboardScreen{
			Learner:          s.Learner,
			History:          append([]quiz.Result(nil), s.History...),
			Weak:             weakness.Rank(s.Performances, HistoricalAverages(s.Performances, s.Reference)),
			Reference:        s.Reference,
			ReferenceLoading: s.Reference == nil && s.ReferenceErr == "",
			ReferenceErr:     s.ReferenceErr,
			Notice:           s.Notice,
		}
	default:
		return LoginScreen{Notice: s.Notice}
	}
}

func noFocus(s State) NoSubjectInFocus {
	return NoSubjectInFocus{
		From:    s.View,
		Message: "No subject selected. Go back to your diagnosis and pick a subject to study.",
		BackTo:  ViewDiagnosis,
		Err:     ErrNoSubjectInFocus,
		Notice:  s.Notice,
	}
}

func renderDiagnosis(s State) DiagnosisScreen {
	ranked := weakness.Rank(s.Performances, HistoricalAverages(s.Performances, s.Reference))
	scr := DiagnosisScreen{
		Learner:   s.Learner,
		WeakCount: len(ranked),
		Notice:    s.Notice,
	}
	for i, r := range ranked {
		scr.Rows = append(scr.Rows, DiagnosisRow{
			Performance: r.Performance,
			Rank:        i + 1,
			Score:       r.Score,
			HasHistory:  r.HasHistory,
		})
	}
	for _, p := range s.Performances {
		if !p.IsWeak {
			scr.Rows = append(scr.Rows, DiagnosisRow{Performance: p})
		}
	}
	if len(ranked) > 0 {
		scr.Suggested = ranked[0].Performance.ID
	}
	return scr
}

// HistoricalAverages keys the reference averages by each rated subject's
// own lower-cased name, resolving aliases through the quiz registry. It
// returns nil without a reference summary.
func HistoricalAverages(perfs []weakness.SubjectPerformance, ref *reference.Summary) map[string]float64 {
	if ref == nil {
		return nil
	}
	out := make(map[string]float64, len(perfs))
	for _, p := range perfs {
		st, ok := ref.Subject(p.Name)
		if !ok {
			if provider, named := quiz.Lookup(p.Name); named {
				st, ok = ref.Subject(provider.Name())
			}
		}
		if ok {
			out[strings.ToLower(strings.TrimSpace(p.Name))] = st.AvgQuizScore
		}
	}
	return out
}
