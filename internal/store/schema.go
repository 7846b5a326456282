package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

// Every event table starts with id, sequence and timestamp. sequence is
// the global order shared by all event types.
func eventColumns(cols ...*schema.Column) []*schema.Column {
	base := []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
	}
	return append(base, cols...)
}

func column(cols []*schema.Column, name string) *schema.Column {
	for _, c := range cols {
		if c.Name == name {
			return c
		}
	}
	panic("store: unknown column " + name)
}

func eventTable(name string, cols []*schema.Column, indexed ...string) *schema.Table {
	t := &schema.Table{
		Name:       name,
		Columns:    cols,
		PrimaryKey: []*schema.Column{cols[0]},
	}
	for _, c := range append([]string{"timestamp"}, indexed...) {
		t.Indexes = append(t.Indexes, &schema.Index{
			Name:    name + "_" + c,
			Columns: []*schema.Column{column(cols, c)},
		})
	}
	return t
}

var (
	diagnosisEventColumns = eventColumns(
		&schema.Column{Name: "session_id", Type: field.TypeString},
		&schema.Column{Name: "submission_id", Type: field.TypeString},
		&schema.Column{Name: "learner", Type: field.TypeString, Default: ""},
		&schema.Column{Name: "subject_id", Type: field.TypeString},
		&schema.Column{Name: "subject_name", Type: field.TypeString},
		&schema.Column{Name: "difficulty", Type: field.TypeInt},
		&schema.Column{Name: "confidence", Type: field.TypeInt},
		&schema.Column{Name: "is_weak", Type: field.TypeBool},
	)
	// DiagnosisEventsTable holds one row per rated subject.
	DiagnosisEventsTable = eventTable("diagnosis_events", diagnosisEventColumns, "submission_id", "subject_id")

	quizEventColumns = eventColumns(
		&schema.Column{Name: "session_id", Type: field.TypeString},
		&schema.Column{Name: "learner", Type: field.TypeString, Default: ""},
		&schema.Column{Name: "subject_id", Type: field.TypeString},
		&schema.Column{Name: "subject_name", Type: field.TypeString},
		&schema.Column{Name: "score", Type: field.TypeInt},
		&schema.Column{Name: "total_questions", Type: field.TypeInt},
		&schema.Column{Name: "pass_mark", Type: field.TypeInt},
		&schema.Column{Name: "band", Type: field.TypeString},
	)
	// QuizEventsTable holds one row per completed quiz run.
	QuizEventsTable = eventTable("quiz_events", quizEventColumns, "session_id", "subject_id")

	llmRequestEventColumns = eventColumns(
		&schema.Column{Name: "provider", Type: field.TypeString},
		&schema.Column{Name: "model", Type: field.TypeString},
		&schema.Column{Name: "purpose", Type: field.TypeString},
		&schema.Column{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		&schema.Column{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		&schema.Column{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		&schema.Column{Name: "success", Type: field.TypeBool},
		&schema.Column{Name: "error_message", Type: field.TypeString, Size: 2147483647, Default: ""},
		&schema.Column{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		&schema.Column{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	)
	// LLMRequestEventsTable records every LLM API call.
	LLMRequestEventsTable = eventTable("llm_request_events", llmRequestEventColumns, "provider", "purpose", "success")

	// Tables lists every table the migrator creates.
	Tables = []*schema.Table{
		DiagnosisEventsTable,
		QuizEventsTable,
		LLMRequestEventsTable,
	}
)
