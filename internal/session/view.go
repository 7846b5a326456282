// Package session is the learner's flow through weakspot: rate subjects,
// review the diagnosis, study, take a quiz and read the feedback. State is
// an immutable value and every transition is a pure function.
package session

// View is the screen the learner is on.
type View int

const (
	ViewLogin View = iota
	ViewSubjectForm
	ViewDiagnosis
	ViewPackage
	ViewQuiz
	ViewFeedback
	ViewDashboard
)

var viewNames = map[View]string{
	ViewLogin:       "login",
	ViewSubjectForm: "subjectForm",
	ViewDiagnosis:   "diagnosis",
	ViewPackage:     "package",
	ViewQuiz:        "quiz",
	ViewFeedback:    "feedback",
	ViewDashboard:   "dashboard",
}

func (v View) String() string {
	if s, ok := viewNames[v]; ok {
		return s
	}
	return "unknown"
}
