package store

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil database")
	}
	for _, table := range []string{"diagnosis_events", "quiz_events", "llm_request_events", "global_sequence"} {
		var n int
		err := s.DB().QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&n)
		if err != nil || n != 1 {
			t.Errorf("table %s missing (err=%v)", table, err)
		}
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is covered by the file-based test.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestOpen_FileReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weakspot.db")
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	var mode string
	require.NoError(t, s.DB().QueryRow("PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)
	require.NoError(t, s.EventRepo().AppendQuizResult(ctx, QuizEventData{SubjectID: "oop", Band: "B"}))
	require.NoError(t, s.Close())

	// Migration is idempotent and the sequence survives a reopen.
	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	require.NoError(t, s.EventRepo().AppendQuizResult(ctx, QuizEventData{SubjectID: "oop", Band: "A"}))

	results, err := s.EventRepo().QueryQuizResults(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, int64(2), results[0].Sequence)
	assert.Equal(t, int64(1), results[1].Sequence)
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	cur, err := s.seq.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), cur)

	for want := int64(1); want <= 3; want++ {
		got, err := s.seq.Next(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	cur, err = s.seq.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), cur)
}

func TestSequenceSharedAcrossTables(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendDiagnosis(ctx, DiagnosisEventData{SubmissionID: "a", SubjectID: "oop"}))
	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{Provider: "mock", Model: "mock", Purpose: "study-notes", Success: true}))
	require.NoError(t, repo.AppendQuizResult(ctx, QuizEventData{SubjectID: "oop", Band: "C"}))

	quiz, err := repo.QueryQuizResults(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, quiz, 1)
	assert.Equal(t, int64(3), quiz[0].Sequence)
}

func TestLatestDiagnosis(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	empty, err := repo.LatestDiagnosis(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	for _, d := range []DiagnosisEventData{
		{SessionID: "s1", SubmissionID: "first", SubjectID: "oop", SubjectName: "OOP", Difficulty: 4, Confidence: 2, IsWeak: true},
		{SessionID: "s1", SubmissionID: "second", SubjectID: "se", SubjectName: "SE", Difficulty: 2, Confidence: 4},
		{SessionID: "s1", SubmissionID: "second", SubjectID: "ip", SubjectName: "IP", Difficulty: 3, Confidence: 3, IsWeak: true},
	} {
		require.NoError(t, repo.AppendDiagnosis(ctx, d))
	}

	latest, err := repo.LatestDiagnosis(ctx)
	require.NoError(t, err)
	require.Len(t, latest, 2)
	assert.Equal(t, "se", latest[0].SubjectID)
	assert.False(t, latest[0].IsWeak)
	assert.Equal(t, "ip", latest[1].SubjectID)
	assert.True(t, latest[1].IsWeak)
	assert.Equal(t, 3, latest[1].Difficulty)
	assert.False(t, latest[1].Timestamp.IsZero())
}

func TestQueryQuizResults(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i, subj := range []string{"oop", "se", "oop", "oop"} {
		require.NoError(t, repo.AppendQuizResult(ctx, QuizEventData{
			SessionID: "s", Learner: "Sam", SubjectID: subj, SubjectName: strings.ToUpper(subj),
			Score: i % 4, TotalQuestions: 3, PassMark: 2, Band: "C",
		}))
	}

	all, err := repo.QueryQuizResults(ctx, QueryOpts{})
	require.NoError(t, err)
	assert.Len(t, all, 4)

	oop, err := repo.QueryQuizResults(ctx, QueryOpts{SubjectID: "oop", Limit: 2})
	require.NoError(t, err)
	require.Len(t, oop, 2)
	assert.Equal(t, 3, oop[0].Score, "newest first")
	assert.Equal(t, "Sam", oop[0].Learner)

	older, err := repo.QueryQuizResults(ctx, QueryOpts{Before: oop[1].Sequence})
	require.NoError(t, err)
	assert.Len(t, older, 2)

	newer, err := repo.QueryQuizResults(ctx, QueryOpts{After: oop[1].Sequence})
	require.NoError(t, err)
	assert.Len(t, newer, 1)
}

func TestLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "study-notes", InputTokens: 100, OutputTokens: 50, LatencyMs: 200, Success: true, RequestBody: "[user]\nhi", ResponseBody: "{}"},
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "study-notes", InputTokens: 120, OutputTokens: 0, LatencyMs: 400, Success: false, ErrorMessage: "boom"},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "other", InputTokens: 10, OutputTokens: 5, LatencyMs: 100, Success: true},
	}
	for _, e := range events {
		require.NoError(t, repo.AppendLLMRequest(ctx, e))
	}

	list, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "study-notes"})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "boom", list[0].ErrorMessage)
	assert.False(t, list[0].Success)

	got, err := repo.GetLLMEvent(ctx, list[1].ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "[user]\nhi", got.RequestBody)
	assert.True(t, got.Success)

	missing, err := repo.GetLLMEvent(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	require.NoError(t, err)
	require.Len(t, byPurpose, 2)
	assert.Equal(t, "study-notes", byPurpose[0].Purpose)
	assert.Equal(t, 2, byPurpose[0].Calls)
	assert.Equal(t, 1, byPurpose[0].Failures)
	assert.Equal(t, 220, byPurpose[0].InputTokens)
	assert.Equal(t, int64(300), byPurpose[0].AvgLatencyMs)

	byModel, err := repo.LLMUsageByModel(ctx)
	require.NoError(t, err)
	require.Len(t, byModel, 2)
	assert.Equal(t, "gemini-2.0-flash", byModel[0].Model)
	assert.Equal(t, "gpt-4o-mini", byModel[1].Model)
	assert.Equal(t, 5, byModel[1].OutputTokens)
}

func TestReset(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendDiagnosis(ctx, DiagnosisEventData{SubmissionID: "x", SubjectID: "oop"}))
	require.NoError(t, repo.AppendQuizResult(ctx, QuizEventData{SubjectID: "oop", Band: "A"}))
	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{Provider: "mock", Model: "mock", Purpose: "p", Success: true}))

	require.NoError(t, repo.Reset(ctx, false))

	quiz, err := repo.QueryQuizResults(ctx, QueryOpts{})
	require.NoError(t, err)
	assert.Empty(t, quiz)
	diag, err := repo.LatestDiagnosis(ctx)
	require.NoError(t, err)
	assert.Empty(t, diag)
	llmEvents, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	assert.Len(t, llmEvents, 1, "LLM log kept without includeLLM")

	require.NoError(t, repo.Reset(ctx, true))
	llmEvents, err = repo.QueryLLMEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	assert.Empty(t, llmEvents)
}

func TestWithForeignKeys(t *testing.T) {
	tests := []struct{ in, want string }{
		{"/tmp/a.db", "/tmp/a.db?_pragma=foreign_keys(1)"},
		{"file::memory:?cache=shared", "file::memory:?cache=shared&_pragma=foreign_keys(1)"},
		{"x.db?_pragma=foreign_keys(0)", "x.db?_pragma=foreign_keys(0)"},
	}
	for _, tt := range tests {
		if got := withForeignKeys(tt.in); got != tt.want {
			t.Errorf("withForeignKeys(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDefaultDBPath(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/data")
	p, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/data", "weakspot", "weakspot.db"), p)
}
