package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/weakspot/internal/store"
)

type recordingSink struct {
	events []store.LLMRequestEventData
	err    error
}

func (s *recordingSink) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	s.events = append(s.events, data)
	return s.err
}

func TestLoggingProvider_RecordsSuccess(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	sink := &recordingSink{}
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(validNotes),
		Usage:   Usage{InputTokens: 12, OutputTokens: 8},
	})
	p := WithLogging(mock, sink, zap.New(core))

	ctx := WithPurpose(context.Background(), PurposeStudyNotes)
	_, err := p.Generate(ctx, Request{
		System:   "coach",
		Messages: []Message{{Role: RoleUser, Content: "notes please"}},
		Schema:   notesSchema(),
	})
	require.NoError(t, err)

	require.Len(t, sink.events, 1)
	ev := sink.events[0]
	assert.Equal(t, ProviderMock, ev.Provider)
	assert.Equal(t, "mock", ev.Model)
	assert.Equal(t, "study-notes", ev.Purpose)
	assert.True(t, ev.Success)
	assert.Equal(t, 12, ev.InputTokens)
	assert.Equal(t, 8, ev.OutputTokens)
	assert.Contains(t, ev.RequestBody, "[system]\ncoach")
	assert.Contains(t, ev.RequestBody, "[user]\nnotes please")
	assert.Contains(t, ev.RequestBody, "[schema: study-notes]")
	assert.Equal(t, validNotes, ev.ResponseBody)

	entries := logs.FilterMessage("llm request").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "study-notes", entries[0].ContextMap()["purpose"])
	assert.Equal(t, ProviderMock, entries[0].ContextMap()["provider"])
}

func TestLoggingProvider_RecordsFailure(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	sink := &recordingSink{err: errors.New("disk full")}
	mock := NewMockProvider(MockResponse{Err: &ErrRateLimit{Err: errors.New("429")}})
	p := WithLogging(mock, sink, zap.New(core))

	_, err := p.Generate(context.Background(), Request{})
	var rl *ErrRateLimit
	require.ErrorAs(t, err, &rl)

	require.Len(t, sink.events, 1)
	assert.False(t, sink.events[0].Success)
	assert.Equal(t, "unknown", sink.events[0].Purpose)
	assert.Contains(t, sink.events[0].ErrorMessage, "rate limited")

	assert.Equal(t, 1, logs.FilterMessage("llm request failed").Len())
	assert.Equal(t, 1, logs.FilterMessage("failed to record llm request event").Len())
}

func TestLoggingProvider_NilSinkAndLogger(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	p := WithLogging(mock, nil, nil)

	_, err := p.Generate(context.Background(), Request{})
	require.NoError(t, err)
	assert.Equal(t, ProviderMock, p.Name())
	assert.Equal(t, "mock", p.ModelID())
}
