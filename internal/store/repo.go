package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int   // max results (0 = unlimited)
	After  int64 // sequence > After
	Before int64 // sequence < Before

	// SubjectID filters quiz and diagnosis queries.
	SubjectID string
	// Purpose filters LLM event queries.
	Purpose string
}

// DiagnosisEventData is one rated subject from a submission.
type DiagnosisEventData struct {
	SessionID string
	// SubmissionID groups the subjects rated together.
	SubmissionID string
	Learner     string
	SubjectID   string
	SubjectName string
	Difficulty  int
	Confidence  int
	IsWeak      bool
}

// DiagnosisRecord is a stored DiagnosisEventData.
type DiagnosisRecord struct {
	Sequence  int64
	Timestamp time.Time
	DiagnosisEventData
}

// QuizEventData is one completed quiz run.
type QuizEventData struct {
	SessionID      string
	Learner        string
	SubjectID      string
	SubjectName    string
	Score          int
	TotalQuestions int
	PassMark       int
	Band           string
}

// QuizRecord is a stored QuizEventData.
type QuizRecord struct {
	Sequence  int64
	Timestamp time.Time
	QuizEventData
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLMRequestEventData.
type LLMEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsage aggregates LLM events by purpose or model. Only the grouping
// field is set.
type LLMUsage struct {
	Purpose      string
	Model        string
	Calls        int
	Failures     int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendDiagnosis records one rated subject.
	AppendDiagnosis(ctx context.Context, data DiagnosisEventData) error

	// AppendQuizResult records a completed quiz.
	AppendQuizResult(ctx context.Context, data QuizEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// LatestDiagnosis returns the most recent submission, in rating order.
	LatestDiagnosis(ctx context.Context) ([]DiagnosisRecord, error)

	// QueryQuizResults returns quiz results, newest first.
	QueryQuizResults(ctx context.Context, opts QueryOpts) ([]QuizRecord, error)

	// QueryLLMEvents returns LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns one LLM event, or nil if it does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates LLM usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)

	// LLMUsageByModel aggregates LLM usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMUsage, error)

	// Reset deletes all learner data: diagnoses and quiz results. LLM
	// request logs are kept unless includeLLM is set.
	Reset(ctx context.Context, includeLLM bool) error
}
