package llm

import "context"

type contextKey struct{}

// Purpose labels recorded with every LLM request event.
const (
	PurposeStudyNotes = "study-notes"

	purposeUnlabelled = "unknown"
)

// WithPurpose tags ctx so the logging decorator can attribute the request.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, contextKey{}, purpose)
}

// PurposeFrom returns the label set by WithPurpose, or "unknown".
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(contextKey{}).(string); ok && v != "" {
		return v
	}
	return purposeUnlabelled
}
