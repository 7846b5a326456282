package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// compiled holds validators by Schema.Name. Unnamed schemas are compiled
// on every call.
var compiled sync.Map // map[string]*jsonschema.Schema

// validateResponse checks raw against schema. A nil schema accepts
// anything; every failure is an *ErrInvalidResponse carrying raw.
func validateResponse(schema *Schema, raw json.RawMessage) error {
	if schema == nil {
		return nil
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	v, err := validatorFor(schema)
	if err != nil {
		return &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("compile schema %q: %w", schema.Name, err)}
	}
	if err := v.Validate(doc); err != nil {
		return &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("schema %q: %w", schema.Name, err)}
	}
	return nil
}

func validatorFor(schema *Schema) (*jsonschema.Schema, error) {
	if schema.Name != "" {
		if v, ok := compiled.Load(schema.Name); ok {
			return v.(*jsonschema.Schema), nil
		}
	}

	// The compiler wants decoded JSON values, so []string and friends in
	// the Go definition are normalised through a JSON round trip.
	b, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal definition: %w", err)
	}
	def, err := jsonschema.UnmarshalJSON(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode definition: %w", err)
	}

	url := fmt.Sprintf("weakspot://schemas/%s.json", schemaSlug(schema.Name))
	c := jsonschema.NewCompiler()
	if err := c.AddResource(url, def); err != nil {
		return nil, err
	}
	v, err := c.Compile(url)
	if err != nil {
		return nil, err
	}

	if schema.Name != "" {
		compiled.Store(schema.Name, v)
	}
	return v, nil
}

func schemaSlug(name string) string {
	if name == "" {
		return "anonymous"
	}
	return name
}
