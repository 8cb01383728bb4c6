// Package llm abstracts the language-model backends used for question
// generation. Providers return structured JSON constrained by a schema;
// retry and event-logging behavior is layered on as decorators.
package llm

import (
	"context"
	"encoding/json"
)

// Provider generates structured output from a prompt.
type Provider interface {
	// Generate sends the request and returns structured JSON. When the
	// request carries a Schema the content is validated against it
	// before being returned.
	Generate(ctx context.Context, req Request) (*Response, error)

	// Name returns the provider kind ("anthropic", "openai", ...).
	Name() string

	// ModelID returns the configured model identifier.
	ModelID() string
}

// Request is a single-turn generation request. Drill question generation
// never needs conversation history, so the request is one system prompt
// plus one user message.
type Request struct {
	System string
	User   string

	// Schema, when set, constrains the response to conforming JSON via
	// the provider's native structured output mechanism.
	Schema *Schema

	MaxTokens int

	// Temperature in [0, 1]. Zero means deterministic.
	Temperature float64
}

// Schema names a JSON Schema the response must satisfy.
type Schema struct {
	// Name is a kebab-case identifier, e.g. "drill-question". Used as
	// the schema name for OpenAI and as the cache key.
	Name string

	Description string

	// Definition is the JSON Schema document as a map.
	Definition map[string]any
}

// Response is the provider's output.
type Response struct {
	// Content is validated JSON when the request had a Schema, raw text
	// bytes otherwise.
	Content json.RawMessage

	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage is the token consumption of one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Purpose labels what a request was for, carried on the context so the
// logging decorator can tag events without threading extra arguments.
type Purpose string

const (
	PurposeQuestionGen Purpose = "question_generation"
	PurposeExplanation Purpose = "explanation"
	PurposeUnknown     Purpose = "unknown"
)

type purposeKey struct{}

// WithPurpose tags the context with a request purpose.
func WithPurpose(ctx context.Context, p Purpose) context.Context {
	return context.WithValue(ctx, purposeKey{}, p)
}

// PurposeFrom reads the purpose tag, defaulting to PurposeUnknown.
func PurposeFrom(ctx context.Context) Purpose {
	if p, ok := ctx.Value(purposeKey{}).(Purpose); ok {
		return p
	}
	return PurposeUnknown
}
