package studypack

import "github.com/abhisek/weakspot/internal/llm"

// NotesSchema defines the JSON schema for study notes generation.
var NotesSchema = &llm.Schema{
	Name:        "study-notes",
	Description: "Short revision notes with key points and practice prompts for one subject",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "2-4 sentence overview of what to revise first",
			},
			"key_points": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Concepts to revise, one line each",
			},
			"practice": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Short self-test questions or exercises",
			},
		},
		"required":             []any{"summary", "key_points", "practice"},
		"additionalProperties": false,
	},
}
