package questiongen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/schoolofai/drillcore/internal/difficulty"
	"github.com/schoolofai/drillcore/internal/llm"
)

func cannedQuestion() json.RawMessage {
	return json.RawMessage(`{
		"question_text": "What is 3/4 of 20?",
		"format": "numeric",
		"answer": "15",
		"answer_type": "integer",
		"choices": [],
		"explanation": "Divide 20 by 4 to get 5, then multiply by 3."
	}`)
}

func TestLLMSource_Next(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: cannedQuestion()})
	src := NewLLMSource(mock, DefaultGenConfig())

	res, err := src.Next(context.Background(), Request{
		BlockID:    "b1",
		Topic:      "Fractions",
		Difficulty: difficulty.Medium,
		ShownIDs:   []string{"old-1"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	q := res.Question
	if q == nil {
		t.Fatal("expected a question")
	}
	if q.ID == "" {
		t.Error("question needs a fresh id")
	}
	if q.BlockID != "b1" || q.Topic != "Fractions" || q.Difficulty != difficulty.Medium {
		t.Errorf("request context not carried: %+v", q)
	}
	if q.Answer != "15" {
		t.Errorf("Answer = %s, want 15", q.Answer)
	}
	if len(res.Shown) != 2 || res.Shown[1] != q.ID {
		t.Errorf("shown list not extended: %v", res.Shown)
	}
	if res.PoolReset {
		t.Error("generative source never resets a pool")
	}
}

func TestLLMSource_PromptCarriesPriorQuestions(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: cannedQuestion()})
	src := NewLLMSource(mock, DefaultGenConfig())

	_, err := src.Next(context.Background(), Request{
		Topic:      "Fractions",
		Difficulty: difficulty.Easy,
		PriorTexts: []string{"What is 1/2 + 1/4?", "What is 1/3 of 9?"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	user := mock.Calls[0].User
	if !strings.Contains(user, "What is 1/2 + 1/4?") {
		t.Errorf("prior question missing from prompt:\n%s", user)
	}
	if !strings.Contains(user, "Difficulty: easy") {
		t.Errorf("difficulty missing from prompt:\n%s", user)
	}
}

func TestLLMSource_RejectsInvalidQuestion(t *testing.T) {
	bad := json.RawMessage(`{
		"question_text": "",
		"format": "numeric",
		"answer": "15",
		"answer_type": "integer",
		"choices": [],
		"explanation": "x"
	}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: bad})
	src := NewLLMSource(mock, DefaultGenConfig())

	_, err := src.Next(context.Background(), Request{Topic: "T", Difficulty: difficulty.Easy})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestLLMSource_ProviderErrorPropagates(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	src := NewLLMSource(mock, DefaultGenConfig())

	_, err := src.Next(context.Background(), Request{Topic: "T", Difficulty: difficulty.Easy})
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected provider error, got %v", err)
	}
}
