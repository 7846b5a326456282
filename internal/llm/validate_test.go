package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

// notesSchema has the shape of the study-notes schema the study package
// sends with every notes request.
func notesSchema() *Schema {
	return &Schema{
		Name:        "study-notes",
		Description: "Revision notes for one subject",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"summary":    map[string]any{"type": "string"},
				"key_points": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				"practice":   map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			},
			"required":             []any{"summary", "key_points", "practice"},
			"additionalProperties": false,
		},
	}
}

const validNotes = `{"summary":"Revise inheritance first.","key_points":["Encapsulation","Polymorphism"],"practice":["Override a method"]}`

func TestValidateResponse_Notes(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"complete notes", validNotes, false},
		{"empty lists", `{"summary":"Nothing flagged.","key_points":[],"practice":[]}`, false},
		{"missing practice", `{"summary":"s","key_points":["a"]}`, true},
		{"key points not a list", `{"summary":"s","key_points":"a","practice":[]}`, true},
		{"non-string practice item", `{"summary":"s","key_points":[],"practice":[1]}`, true},
		{"extra field", `{"summary":"s","key_points":[],"practice":[],"band":"A"}`, true},
		{"top-level array", `[]`, true},
		{"malformed JSON", `{not json}`, true},
		{"empty output", ``, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(notesSchema(), json.RawMessage(tt.raw))
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("expected no error, got: %v", err)
				}
				return
			}
			var inv *ErrInvalidResponse
			if !errors.As(err, &inv) {
				t.Fatalf("expected ErrInvalidResponse, got: %T (%v)", err, err)
			}
			if string(inv.Content) != tt.raw {
				t.Errorf("error content = %q, want the raw output", inv.Content)
			}
		})
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`plain text`)); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateResponse_UnnamedSchemaNotCached(t *testing.T) {
	loose := &Schema{Definition: map[string]any{"type": "object"}}
	strict := &Schema{Definition: map[string]any{"type": "array"}}

	if err := validateResponse(loose, json.RawMessage(`{}`)); err != nil {
		t.Fatalf("loose: %v", err)
	}
	if err := validateResponse(strict, json.RawMessage(`{}`)); err == nil {
		t.Fatal("an unnamed schema must not reuse another unnamed schema's validator")
	}
}

func TestMockProvider_ValidatesAgainstSchema(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"summary":"s"}`)},
		MockResponse{Content: json.RawMessage(`{"summary":"s","key_p`), StopReason: stopMaxTokens},
		MockResponse{Content: json.RawMessage(validNotes)},
	)
	req := Request{Messages: []Message{{Role: RoleUser, Content: "notes"}}, Schema: notesSchema()}

	_, err := mock.Generate(t.Context(), req)
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %T", err)
	}

	_, err = mock.Generate(t.Context(), req)
	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) {
		t.Fatalf("expected ErrMaxTokensExceeded, got %T", err)
	}

	resp, err := mock.Generate(t.Context(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != validNotes {
		t.Errorf("content = %s", resp.Content)
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{&ErrRateLimit{}, "the AI provider is busy, try again in a minute"},
		{&ErrMaxTokensExceeded{}, "the notes ran past the length limit"},
		{&ErrInvalidResponse{Err: errors.New("x")}, "the AI answered in an unexpected format"},
		{&ErrProviderUnavailable{}, "the AI provider could not be reached"},
		{errors.New("boom"), "notes could not be generated"},
	}
	for _, tt := range tests {
		if got := Describe(tt.err); got != tt.want {
			t.Errorf("Describe(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
