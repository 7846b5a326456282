// Package remediation maps a quiz band to a fixed follow-up plan.
package remediation

import (
	"fmt"
	"strings"

	"github.com/abhisek/weakspot/internal/band"
)

// Plan is a band-keyed list of recommended follow-up actions.
type Plan struct {
	Band        band.Band
	Title       string
	Description string
	Actions     []string
}

type template struct {
	title       string
	description string
	actions     []string
}

// templates use %[1]s for the subject name.
var templates = map[band.Band]template{
	band.A: {
		title:       "Excellent – Stretch Goals Unlocked",
		description: "You are well above the pass mark in %[1]s. Keep the momentum with harder material.",
		actions: []string{
			"Attempt an advanced project that applies %[1]s end to end",
			"Teach one %[1]s concept to a classmate to lock it in",
			"Move %[1]s to a monthly review slot",
		},
	},
	band.B: {
		title:       "Good – Consolidate and Extend",
		description: "You cleared the pass mark in %[1]s with room to spare. Tighten the gaps you noticed.",
		actions: []string{
			"Review the %[1]s questions you hesitated on",
			"Complete one timed practice set for %[1]s",
			"Summarize %[1]s key ideas on a single page",
			"Schedule a %[1]s review in two weeks",
		},
	},
	band.C: {
		title:       "Borderline Pass – Reinforce the Basics",
		description: "You reached the pass mark in %[1]s but only just. Strengthen the foundations before moving on.",
		actions: []string{
			"Re-read the core %[1]s notes in the study package",
			"Work through two worked examples for each weak %[1]s topic",
			"Retake the %[1]s quiz within a week",
			"Ask a tutor about the %[1]s topic you found least clear",
		},
	},
	band.Fail: {
		title:       "Below Pass Mark – Rescue Plan Needed",
		description: "Your %[1]s score is below the pass mark. Rebuild the fundamentals step by step.",
		actions: []string{
			"Book a one-to-one session with a %[1]s tutor this week",
			"Restart the %[1]s study package from the first topic",
			"Practice 15 minutes of %[1]s every day for a week",
			"Join a %[1]s study group or peer-help session",
			"Retake the %[1]s quiz after completing the package",
		},
	},
}

// TrainingPlan returns the plan for b with subjectName interpolated.
// Unknown bands get the FAIL plan. Each call returns freshly built slices.
func TrainingPlan(b band.Band, subjectName string) Plan {
	if !b.Valid() {
		b = band.Fail
	}
	tpl := templates[b]

	subject := strings.TrimSpace(subjectName)
	if subject == "" {
		subject = "this subject"
	}

	actions := make([]string, len(tpl.actions))
	for i, a := range tpl.actions {
		actions[i] = fmt.Sprintf(a, subject)
	}

	return Plan{
		Band:        b,
		Title:       tpl.title,
		Description: fmt.Sprintf(tpl.description, subject),
		Actions:     actions,
	}
}
