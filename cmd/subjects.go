package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/weakspot/internal/quiz"
)

var subjectsCmd = &cobra.Command{
	Use:   "subjects",
	Short: "List subjects with a dedicated question bank",
	Run: func(cmd *cobra.Command, args []string) {
		renderSubjects(cmd.OutOrStdout())
	},
}

func renderSubjects(w io.Writer) {
	fmt.Fprintf(w, "%-32s  %9s  %s\n", "Subject", "Questions", "Also matches")
	fmt.Fprintln(w, strings.Repeat("─", 72))
	for _, name := range quiz.NamedSubjects() {
		fmt.Fprintf(w, "%-32s  %9d  %s\n", name, len(quiz.SelectQuestionBank(name)), strings.Join(quiz.Aliases(name), ", "))
	}
	fmt.Fprintf(w, "\nAny other subject uses the %d-question general bank.\n", len(quiz.SelectQuestionBank("")))
}
