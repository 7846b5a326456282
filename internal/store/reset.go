package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) Reset(ctx context.Context, includeLLM bool) error {
	tables := []string{DiagnosisEventsTable.Name, QuizEventsTable.Name}
	if includeLLM {
		tables = append(tables, LLMRequestEventsTable.Name)
	}
	for _, t := range tables {
		if _, err := r.exec(ctx, builder().Delete(t)); err != nil {
			return fmt.Errorf("clear %s: %w", t, err)
		}
	}
	return nil
}
