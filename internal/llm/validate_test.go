package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func questionSchema() *Schema {
	return &Schema{
		Name: "test-question",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"text": map[string]any{"type": "string"},
				"difficulty": map[string]any{
					"type": "string",
					"enum": []any{"easy", "medium", "hard"},
				},
			},
			"required":             []any{"text", "difficulty"},
			"additionalProperties": false,
		},
	}
}

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`{"text":"What is 2+2?","difficulty":"easy"}`)
	if err := validateResponse(questionSchema(), raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateResponse_NilSchemaPasses(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Fatalf("nil schema must pass, got %v", err)
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	err := validateResponse(questionSchema(), json.RawMessage(`{"text":`))
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestValidateResponse_MissingRequiredField(t *testing.T) {
	err := validateResponse(questionSchema(), json.RawMessage(`{"text":"hi"}`))
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
	if string(invalid.Content) != `{"text":"hi"}` {
		t.Errorf("offending content not attached: %s", invalid.Content)
	}
}

func TestValidateResponse_EnumViolation(t *testing.T) {
	err := validateResponse(questionSchema(), json.RawMessage(`{"text":"hi","difficulty":"brutal"}`))
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestValidateResponse_SchemaCompiledOnce(t *testing.T) {
	s := questionSchema()
	raw := json.RawMessage(`{"text":"q","difficulty":"hard"}`)
	for i := 0; i < 3; i++ {
		if err := validateResponse(s, raw); err != nil {
			t.Fatalf("pass %d: %v", i, err)
		}
	}
	schemas.mu.Lock()
	_, cached := schemas.compiled[s.Name]
	schemas.mu.Unlock()
	if !cached {
		t.Error("compiled schema not cached")
	}
}
