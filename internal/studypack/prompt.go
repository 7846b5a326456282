package studypack

import (
	"fmt"
	"strings"
)

const notesSystemPrompt = `You are a supportive university study coach. A student has flagged a subject as difficult and wants short, practical revision notes before taking a quiz.`

func buildNotesUserMessage(input NotesInput) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Subject: %s\n", input.Subject))
	b.WriteString(fmt.Sprintf("Self-rated difficulty: %d/5\n", input.Difficulty))
	b.WriteString(fmt.Sprintf("Self-rated confidence: %d/5\n", input.Confidence))
	if input.IsWeak {
		b.WriteString("Flagged as a weak subject.\n")
	}

	if len(input.Topics) > 0 {
		b.WriteString("\nCourse topics:\n")
		for _, t := range input.Topics {
			b.WriteString(fmt.Sprintf("- %s\n", t))
		}
	}

	if r := input.LastResult; r != nil {
		b.WriteString(fmt.Sprintf("\nLast quiz: %d/%d (pass mark %d, band %s)\n",
			r.Score, r.TotalQuestions, r.PassMark, r.Band))
	}

	b.WriteString(`
Instructions:
1. Summarise in 2-4 sentences what the student should revise first.
2. List 3-6 key points, one line each, ordered from most to least important.
3. Give 2-4 short self-test prompts the student can answer without a computer.
4. Use plain text. No markdown headings.`)

	return b.String()
}
