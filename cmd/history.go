package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/weakspot/internal/quiz"
	"github.com/abhisek/weakspot/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent quiz results",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		subject, _ := cmd.Flags().GetString("subject")

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		st, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		opts := store.QueryOpts{Limit: limit}
		if subject != "" {
			opts.SubjectID = quiz.SubjectKey(subject)
		}
		results, err := st.EventRepo().QueryQuizResults(cmd.Context(), opts)
		if err != nil {
			return fmt.Errorf("query results: %w", err)
		}
		renderHistory(cmd.OutOrStdout(), results)
		return nil
	},
}

func renderHistory(w io.Writer, results []store.QuizRecord) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No quiz results yet.")
		return
	}
	fmt.Fprintf(w, "%-19s  %-12s  %-28s  %5s  %4s\n", "Timestamp", "Learner", "Subject", "Score", "Band")
	fmt.Fprintln(w, strings.Repeat("─", 76))
	for _, r := range results {
		fmt.Fprintf(w, "%-19s  %-12s  %-28s  %5s  %4s\n",
			r.Timestamp.Local().Format("2006-01-02 15:04:05"),
			truncate(r.Learner, 12),
			truncate(r.SubjectName, 28),
			fmt.Sprintf("%d/%d", r.Score, r.TotalQuestions),
			r.Band,
		)
	}
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of results to show")
	historyCmd.Flags().StringP("subject", "s", "", "Only show results for this subject")
}
