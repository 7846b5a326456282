package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/weakspot/internal/quiz"
	"github.com/abhisek/weakspot/internal/remediation"
)

var bandCmd = &cobra.Command{
	Use:   "band <score> <total> [subject]",
	Short: "Classify a quiz score and print the remediation plan",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		score, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid score %q: %w", args[0], err)
		}
		total, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid total %q: %w", args[1], err)
		}
		if total <= 0 || score < 0 || score > total {
			return fmt.Errorf("score must be between 0 and total, and total above 0")
		}
		subject := "this subject"
		if len(args) == 3 {
			subject = args[2]
		}

		r := quiz.NewResult(quiz.SubjectKey(subject), subject, score, total)
		renderBand(cmd.OutOrStdout(), r, remediation.TrainingPlan(r.Band, subject))
		return nil
	},
}

func renderBand(w io.Writer, r quiz.Result, plan remediation.Plan) {
	fmt.Fprintf(w, "Score:     %d/%d\n", r.Score, r.TotalQuestions)
	fmt.Fprintf(w, "Pass mark: %d\n", r.PassMark)
	fmt.Fprintf(w, "Band:      %s\n", r.Band)
	fmt.Fprintln(w)
	fmt.Fprintln(w, plan.Title)
	fmt.Fprintln(w, strings.Repeat("─", len([]rune(plan.Title))))
	fmt.Fprintln(w, plan.Description)
	fmt.Fprintln(w)
	for _, a := range plan.Actions {
		fmt.Fprintf(w, "  • %s\n", a)
	}
}
