package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/weakspot/internal/logging"
	"github.com/abhisek/weakspot/internal/quiz"
	"github.com/abhisek/weakspot/internal/reference"
	"github.com/abhisek/weakspot/internal/session"
	"github.com/abhisek/weakspot/internal/store"
	"github.com/abhisek/weakspot/internal/weakness"
)

var diagnoseCmd = &cobra.Command{
	Use:   "diagnose",
	Short: "Flag weak subjects from difficulty and confidence ratings",
	Example: `  weakspot diagnose -s "OOP:4:2" -s "Software Engineering:2:4"
  weakspot diagnose -s "ip:3:3" --save --learner Ada`,
	RunE: func(cmd *cobra.Command, args []string) error {
		specs, _ := cmd.Flags().GetStringArray("subject")
		if len(specs) == 0 {
			return fmt.Errorf("rate at least one subject with --subject NAME:DIFFICULTY:CONFIDENCE")
		}
		perfs, err := parseRatings(specs)
		if err != nil {
			return err
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		logger, err := logging.NewStderr(cfg.Log)
		if err != nil {
			return err
		}
		defer logger.Sync()

		ctx := cmd.Context()
		var summary *reference.Summary
		if ds, err := reference.Load(ctx, cfg.ReferencePath); err != nil {
			logger.Warn("ranking without reference data", zap.Error(err))
		} else {
			sum := reference.Summarize(ds.Records)
			summary = &sum
		}

		renderDiagnosis(cmd.OutOrStdout(), perfs, weakness.Rank(perfs, session.HistoricalAverages(perfs, summary)))

		if save, _ := cmd.Flags().GetBool("save"); save {
			learner, _ := cmd.Flags().GetString("learner")
			st, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			submission := uuid.NewString()
			for _, p := range perfs {
				err := st.EventRepo().AppendDiagnosis(ctx, store.DiagnosisEventData{
					SessionID:    "cli",
					SubmissionID: submission,
					Learner:      learner,
					SubjectID:    p.ID,
					SubjectName:  p.Name,
					Difficulty:   p.Difficulty,
					Confidence:   p.Confidence,
					IsWeak:       p.IsWeak,
				})
				if err != nil {
					return fmt.Errorf("save diagnosis: %w", err)
				}
			}
			logger.Info("diagnosis saved", zap.String("submission_id", submission), zap.Int("subjects", len(perfs)))
		}
		return nil
	},
}

// parseRatings parses every rating and rejects a subject rated twice.
func parseRatings(specs []string) ([]weakness.SubjectPerformance, error) {
	perfs := make([]weakness.SubjectPerformance, 0, len(specs))
	seen := make(map[string]string, len(specs))
	for _, spec := range specs {
		p, err := parseRating(spec)
		if err != nil {
			return nil, err
		}
		if prev, ok := seen[p.ID]; ok {
			return nil, fmt.Errorf("subject %q rated twice (also as %q)", p.Name, prev)
		}
		seen[p.ID] = p.Name
		perfs = append(perfs, p)
	}
	return perfs, nil
}

// parseRating parses NAME:DIFFICULTY:CONFIDENCE. The name may itself
// contain colons.
func parseRating(spec string) (weakness.SubjectPerformance, error) {
	parts := strings.Split(spec, ":")
	if len(parts) < 3 {
		return weakness.SubjectPerformance{}, fmt.Errorf("invalid rating %q: want NAME:DIFFICULTY:CONFIDENCE", spec)
	}
	name := strings.TrimSpace(strings.Join(parts[:len(parts)-2], ":"))
	if quiz.SubjectKey(name) == "" {
		return weakness.SubjectPerformance{}, fmt.Errorf("invalid rating %q: subject name is empty", spec)
	}
	difficulty, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-2]))
	if err != nil {
		return weakness.SubjectPerformance{}, fmt.Errorf("invalid difficulty in %q: %w", spec, err)
	}
	confidence, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1]))
	if err != nil {
		return weakness.SubjectPerformance{}, fmt.Errorf("invalid confidence in %q: %w", spec, err)
	}
	return weakness.NewSubjectPerformance(quiz.SubjectKey(name), name, difficulty, confidence)
}

func renderDiagnosis(w io.Writer, perfs []weakness.SubjectPerformance, ranked []weakness.Ranked) {
	fmt.Fprintf(w, "%-32s  %4s  %4s  %s\n", "Subject", "Diff", "Conf", "Weak")
	fmt.Fprintln(w, strings.Repeat("─", 52))
	for _, p := range perfs {
		weak := "no"
		if p.IsWeak {
			weak = "yes"
		}
		fmt.Fprintf(w, "%-32s  %4d  %4d  %s\n", truncate(p.Name, 32), p.Difficulty, p.Confidence, weak)
	}

	fmt.Fprintln(w)
	if len(ranked) == 0 {
		fmt.Fprintln(w, "No weak subjects. Keep it up.")
		return
	}
	fmt.Fprintln(w, "Focus order")
	fmt.Fprintln(w, strings.Repeat("─", 52))
	for i, r := range ranked {
		note := ""
		if !r.HasHistory {
			note = "  (no history)"
		}
		fmt.Fprintf(w, "%d. %-32s  %5.1f%s\n", i+1, truncate(r.Performance.Name, 32), r.Score, note)
	}
}

func init() {
	diagnoseCmd.Flags().StringArrayP("subject", "s", nil, "Subject rating as NAME:DIFFICULTY:CONFIDENCE (1-5, repeatable)")
	diagnoseCmd.Flags().Bool("save", false, "Record the ratings in the event store")
	diagnoseCmd.Flags().String("learner", "", "Learner name stored with --save")
}
