package store

import (
	"context"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
)

var diagnosisSelectColumns = []string{
	"sequence", "timestamp", "session_id", "submission_id", "learner",
	"subject_id", "subject_name", "difficulty", "confidence", "is_weak",
}

func (r *eventRepo) AppendDiagnosis(ctx context.Context, data DiagnosisEventData) error {
	_, err := r.insertEvent(ctx, DiagnosisEventsTable.Name,
		[]string{"session_id", "submission_id", "learner", "subject_id", "subject_name", "difficulty", "confidence", "is_weak"},
		[]any{data.SessionID, data.SubmissionID, data.Learner, data.SubjectID, data.SubjectName, data.Difficulty, data.Confidence, data.IsWeak},
	)
	if err != nil {
		return fmt.Errorf("save diagnosis event: %w", err)
	}
	return nil
}

func (r *eventRepo) LatestDiagnosis(ctx context.Context) ([]DiagnosisRecord, error) {
	var submission string
	latest := builder().Select("submission_id").
		From(entsql.Table(DiagnosisEventsTable.Name)).
		OrderBy(entsql.Desc("sequence")).
		Limit(1)
	err := r.query(ctx, latest, func(rows *entsql.Rows) error {
		return rows.Scan(&submission)
	})
	if err != nil {
		return nil, fmt.Errorf("query latest submission: %w", err)
	}
	if submission == "" {
		return nil, nil
	}

	sel := builder().Select(diagnosisSelectColumns...).
		From(entsql.Table(DiagnosisEventsTable.Name)).
		Where(entsql.EQ("submission_id", submission)).
		OrderBy("sequence")

	var out []DiagnosisRecord
	err = r.query(ctx, sel, func(rows *entsql.Rows) error {
		var d DiagnosisRecord
		if err := rows.Scan(&d.Sequence, &d.Timestamp, &d.SessionID, &d.SubmissionID, &d.Learner,
			&d.SubjectID, &d.SubjectName, &d.Difficulty, &d.Confidence, &d.IsWeak); err != nil {
			return err
		}
		out = append(out, d)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("query diagnosis events: %w", err)
	}
	return out, nil
}
