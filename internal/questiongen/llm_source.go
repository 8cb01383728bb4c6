package questiongen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/schoolofai/drillcore/internal/llm"
)

// GenConfig tunes the LLM-backed source.
type GenConfig struct {
	// Validators run in order on every generated question; the first
	// failure rejects it.
	Validators []Validator

	MaxTokens   int
	Temperature float64

	// MaxPriorTexts caps how many prior questions the dedup section of
	// the prompt carries.
	MaxPriorTexts int
}

// DefaultGenConfig returns the standard validator chain and limits.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		Validators: []Validator{
			&StructuralValidator{},
			&AnswerFormatValidator{},
		},
		MaxTokens:     512,
		Temperature:   0.7,
		MaxPriorTexts: 8,
	}
}

// LLMSource generates fresh questions with a language model. Every
// question is new, so the source never runs out and the returned shown
// list simply grows.
type LLMSource struct {
	provider llm.Provider
	cfg      GenConfig
}

// NewLLMSource builds a source over the given provider.
func NewLLMSource(provider llm.Provider, cfg GenConfig) *LLMSource {
	return &LLMSource{provider: provider, cfg: cfg}
}

// questionOutput is the schema-shaped LLM response.
type questionOutput struct {
	QuestionText string   `json:"question_text"`
	Format       string   `json:"format"`
	Answer       string   `json:"answer"`
	AnswerType   string   `json:"answer_type"`
	Choices      []string `json:"choices"`
	Explanation  string   `json:"explanation"`
}

func (s *LLMSource) Next(ctx context.Context, req Request) (*Result, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeQuestionGen)

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      systemPrompt,
		User:        buildUserMessage(req, s.cfg.MaxPriorTexts),
		Schema:      QuestionSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("question generation failed: %w", err)
	}

	var raw questionOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse generated question: %w", err)
	}

	q := &Question{
		ID:          uuid.NewString(),
		BlockID:     req.BlockID,
		Topic:       req.Topic,
		Difficulty:  req.Difficulty,
		Text:        raw.QuestionText,
		Format:      AnswerFormat(raw.Format),
		Answer:      raw.Answer,
		AnswerType:  AnswerType(raw.AnswerType),
		Choices:     raw.Choices,
		Explanation: raw.Explanation,
	}

	for _, v := range s.cfg.Validators {
		if verr := v.Validate(q); verr != nil {
			return nil, verr
		}
	}

	return &Result{
		Question:   q,
		Difficulty: req.Difficulty,
		Shown:      append(append([]string(nil), req.ShownIDs...), q.ID),
	}, nil
}
