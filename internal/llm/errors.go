package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrRateLimit is a 429 from the provider.
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse is output that is not JSON or does not match the
// request schema. Content keeps the raw output for the request log.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid LLM response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrProviderUnavailable covers outages, network failures and any API
// error that is not a rate limit.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err == nil {
		return "LLM provider unavailable"
	}
	return fmt.Sprintf("LLM provider unavailable: %v", e.Err)
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded is a structured response cut off at MaxTokens.
type ErrMaxTokensExceeded struct {
	Content json.RawMessage
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "LLM response truncated: max tokens exceeded"
}

// Describe turns a generation failure into a short phrase a learner can
// read, e.g. in the study package when notes could not be written.
func Describe(err error) string {
	var (
		rateLimit *ErrRateLimit
		invalid   *ErrInvalidResponse
		truncated *ErrMaxTokensExceeded
		down      *ErrProviderUnavailable
	)
	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.DeadlineExceeded):
		return "the AI provider took too long to answer"
	case errors.As(err, &rateLimit):
		return "the AI provider is busy, try again in a minute"
	case errors.As(err, &truncated):
		return "the notes ran past the length limit"
	case errors.As(err, &invalid):
		return "the AI answered in an unexpected format"
	case errors.As(err, &down):
		return "the AI provider could not be reached"
	default:
		return "notes could not be generated"
	}
}
