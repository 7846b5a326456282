package studypack

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/abhisek/weakspot/internal/llm"
	"github.com/abhisek/weakspot/internal/quiz"
)

// Notes are AI-generated study notes for one subject.
type Notes struct {
	Subject   string
	Summary   string
	KeyPoints []string
	Practice  []string
}

// NotesInput holds the context sent to the model.
type NotesInput struct {
	Subject    string
	Difficulty int
	Confidence int
	IsWeak     bool
	Topics     []string
	// LastResult is the most recent quiz result on this subject, if any.
	LastResult *quiz.Result
}

// NotesResult is a completed notes request.
type NotesResult struct {
	Notes *Notes
	Err   error
}

// Config holds notes generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
	// Timeout bounds one request including retries. Zero means no limit.
	Timeout time.Duration
}

// DefaultConfig returns sensible defaults for notes generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   768,
		Temperature: 0.5,
		Timeout:     30 * time.Second,
	}
}

// Service generates study notes asynchronously.
type Service struct {
	provider llm.Provider
	cfg      Config

	mu      sync.Mutex
	pending NotesResult
	ready   bool
	seq     int
}

// NewService creates a notes service. A nil provider is allowed; every
// request then completes with ErrNoProvider.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// ErrNoProvider is reported when notes are requested without an LLM.
var ErrNoProvider = fmt.Errorf("no LLM provider configured")

// Enabled reports whether a provider is configured.
func (s *Service) Enabled() bool {
	return s != nil && s.provider != nil
}

// RequestNotes starts async generation. Only the latest request is kept;
// a result from an older request is dropped.
func (s *Service) RequestNotes(ctx context.Context, input NotesInput) {
	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.ready = false
	s.pending = NotesResult{}
	s.mu.Unlock()

	go func() {
		if s.cfg.Timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
			defer cancel()
		}
		notes, err := s.generate(ctx, input)
		s.mu.Lock()
		defer s.mu.Unlock()
		if seq != s.seq {
			return
		}
		s.pending = NotesResult{Notes: notes, Err: err}
		s.ready = true
	}()
}

// ConsumeNotes returns the finished request, if any, and clears it.
func (s *Service) ConsumeNotes() (NotesResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return NotesResult{}, false
	}
	res := s.pending
	s.pending = NotesResult{}
	s.ready = false
	return res, true
}

type notesOutput struct {
	Summary   string   `json:"summary"`
	KeyPoints []string `json:"key_points"`
	Practice  []string `json:"practice"`
}

func (s *Service) generate(ctx context.Context, input NotesInput) (*Notes, error) {
	if s.provider == nil {
		return nil, ErrNoProvider
	}
	ctx = llm.WithPurpose(ctx, llm.PurposeStudyNotes)

	req := llm.Request{
		System: notesSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildNotesUserMessage(input)},
		},
		Schema:      NotesSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("notes generation: %w", err)
	}

	var out notesOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse notes response: %w", err)
	}

	return &Notes{
		Subject:   input.Subject,
		Summary:   out.Summary,
		KeyPoints: out.KeyPoints,
		Practice:  out.Practice,
	}, nil
}
