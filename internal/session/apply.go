package session

import (
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/weakspot/internal/quiz"
	"github.com/abhisek/weakspot/internal/remediation"
	"github.com/abhisek/weakspot/internal/weakness"
)

// Apply returns the state after event e. An event that is not valid in the
// current view returns s unchanged apart from a Notice.
func Apply(s State, e Event) State {
	switch ev := e.(type) {
	case LoggedIn:
		return applyLogin(s, ev)
	case RatingsSubmitted:
		return applyRatings(s, ev)
	case FocusSelected:
		return applyFocus(s, ev)
	case QuizStarted:
		if s.View != ViewPackage {
			return rejected(s, e)
		}
		return startQuiz(s)
	case OptionSelected:
		return applyOption(s, ev)
	case AnswerSubmitted:
		return applyAnswer(s)
	case QuizCancelled:
		if s.View != ViewQuiz {
			return rejected(s, e)
		}
		s = accepted(s)
		s.Run = nil
		s.View = ViewPackage
		return s
	case RetryRequested:
		if s.View != ViewFeedback {
			return rejected(s, e)
		}
		s = accepted(s)
		s.Result, s.Plan = nil, nil
		s.View = ViewPackage
		return s
	case ChangeSubject:
		return applyChangeSubject(s, e)
	case DashboardOpened:
		if s.View != ViewFeedback && s.View != ViewDiagnosis {
			return rejected(s, e)
		}
		s = accepted(s)
		s.View = ViewDashboard
		return s
	case RatingsReopened:
		if s.View != ViewDiagnosis {
			return rejected(s, e)
		}
		s = accepted(s)
		s.View = ViewSubjectForm
		return s
	case Navigate:
		return applyNavigate(s, ev)
	case ReferenceLoaded:
		if ev.Err != nil {
			s.ReferenceErr = ev.Err.Error()
			s.Reference = nil
			return s
		}
		s.Reference = ev.Summary
		s.ReferenceErr = ""
		return s
	default:
		s.Notice = fmt.Sprintf("Unknown event %T.", e)
		return s
	}
}

func accepted(s State) State {
	s.Notice = ""
	return s
}

func rejected(s State, e Event) State {
	s.Notice = fmt.Sprintf("Can't %s from the %s view.", e.eventName(), s.View)
	return s
}

func applyLogin(s State, ev LoggedIn) State {
	if s.View != ViewLogin {
		return rejected(s, ev)
	}
	name := strings.TrimSpace(ev.Name)
	if name == "" {
		s.Notice = "Enter your name to continue."
		return s
	}
	s = accepted(s)
	s.Learner = name
	s.View = ViewSubjectForm
	return s
}

func applyRatings(s State, ev RatingsSubmitted) State {
	if s.View != ViewSubjectForm {
		return rejected(s, ev)
	}
	if len(ev.Performances) == 0 {
		s.Notice = "Rate at least one subject."
		return s
	}

	perfs := make([]weakness.SubjectPerformance, 0, len(ev.Performances))
	seen := make(map[string]bool, len(ev.Performances))
	for _, p := range ev.Performances {
		if strings.TrimSpace(p.ID) == "" || strings.TrimSpace(p.Name) == "" {
			s.Notice = "Every subject needs a name."
			return s
		}
		if seen[p.ID] {
			s.Notice = fmt.Sprintf("%s was rated twice.", p.Name)
			return s
		}
		seen[p.ID] = true

		// IsWeak is always derived, whatever the caller set.
		fresh, err := weakness.NewSubjectPerformance(p.ID, p.Name, p.Difficulty, p.Confidence)
		if err != nil {
			s.Notice = err.Error()
			return s
		}
		perfs = append(perfs, fresh)
	}

	s = accepted(s)
	s.Performances = perfs
	if _, ok := findSubject(perfs, s.Focus); !ok {
		s.Focus = ""
	}
	s.View = ViewDiagnosis
	return s
}

func applyFocus(s State, ev FocusSelected) State {
	if s.View != ViewDiagnosis {
		return rejected(s, ev)
	}
	if _, ok := findSubject(s.Performances, ev.SubjectID); !ok {
		s.Notice = fmt.Sprintf("No rated subject with id %q.", ev.SubjectID)
		return s
	}
	s = accepted(s)
	s.Focus = ev.SubjectID
	s.Result, s.Plan = nil, nil
	s.View = ViewPackage
	return s
}

// startQuiz enters the quiz view. Without a subject in focus the view
// renders guidance instead of a run.
func startQuiz(s State) State {
	s = accepted(s)
	s.View = ViewQuiz
	s.Run = nil

	subject, ok := s.FocusedSubject()
	if !ok {
		return s
	}
	run, err := quiz.NewRun(subject.ID, subject.Name)
	if err != nil {
		// Unreachable while the generic bank exists.
		s.Notice = err.Error()
		s.View = ViewPackage
		return s
	}
	s.Run = &run
	return s
}

func applyOption(s State, ev OptionSelected) State {
	if s.View != ViewQuiz || s.Run == nil {
		return rejected(s, ev)
	}
	run, err := s.Run.Select(ev.Index)
	if err != nil {
		s.Notice = err.Error()
		return s
	}
	s = accepted(s)
	s.Run = &run
	return s
}

func applyAnswer(s State) State {
	if s.View != ViewQuiz || s.Run == nil {
		return rejected(s, AnswerSubmitted{})
	}
	run, err := s.Run.Submit()
	if err != nil {
		if errors.Is(err, quiz.ErrNoSelection) {
			s.Notice = "Pick an option before submitting."
		} else {
			s.Notice = err.Error()
		}
		return s
	}
	s = accepted(s)

	res, done := run.Result()
	if !done {
		s.Run = &run
		return s
	}

	plan := remediation.TrainingPlan(res.Band, res.SubjectName)
	history := make([]quiz.Result, len(s.History), len(s.History)+1)
	copy(history, s.History)

	s.Run = nil
	s.Result = &res
	s.Plan = &plan
	s.History = append(history, res)
	s.View = ViewFeedback
	return s
}

func applyChangeSubject(s State, e Event) State {
	switch s.View {
	case ViewPackage, ViewFeedback, ViewDashboard:
	case ViewQuiz:
		// Focus never changes mid-run.
		if s.Run != nil {
			return rejected(s, e)
		}
	default:
		return rejected(s, e)
	}
	s = accepted(s)
	s.Focus = ""
	s.Run = nil
	s.Result, s.Plan = nil, nil
	s.View = ViewDiagnosis
	return s
}

func applyNavigate(s State, ev Navigate) State {
	switch s.View {
	case ViewDiagnosis, ViewPackage, ViewFeedback, ViewDashboard:
	default:
		return rejected(s, ev)
	}
	switch ev.To {
	case ViewPackage:
		s = accepted(s)
		s.Result, s.Plan = nil, nil
		s.View = ViewPackage
		return s
	case ViewQuiz:
		s.Result, s.Plan = nil, nil
		return startQuiz(s)
	default:
		s.Notice = fmt.Sprintf("Can't navigate to the %s view directly.", ev.To)
		return s
	}
}
