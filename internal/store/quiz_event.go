package store

import (
	"context"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
)

func (r *eventRepo) AppendQuizResult(ctx context.Context, data QuizEventData) error {
	_, err := r.insertEvent(ctx, QuizEventsTable.Name,
		[]string{"session_id", "learner", "subject_id", "subject_name", "score", "total_questions", "pass_mark", "band"},
		[]any{data.SessionID, data.Learner, data.SubjectID, data.SubjectName, data.Score, data.TotalQuestions, data.PassMark, data.Band},
	)
	if err != nil {
		return fmt.Errorf("save quiz event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryQuizResults(ctx context.Context, opts QueryOpts) ([]QuizRecord, error) {
	sel := builder().Select(
		"sequence", "timestamp", "session_id", "learner", "subject_id",
		"subject_name", "score", "total_questions", "pass_mark", "band",
	).From(entsql.Table(QuizEventsTable.Name))
	if opts.SubjectID != "" {
		sel.Where(entsql.EQ("subject_id", opts.SubjectID))
	}

	var out []QuizRecord
	err := r.query(ctx, window(sel, opts), func(rows *entsql.Rows) error {
		var q QuizRecord
		if err := rows.Scan(&q.Sequence, &q.Timestamp, &q.SessionID, &q.Learner, &q.SubjectID,
			&q.SubjectName, &q.Score, &q.TotalQuestions, &q.PassMark, &q.Band); err != nil {
			return err
		}
		out = append(out, q)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("query quiz events: %w", err)
	}
	return out, nil
}
