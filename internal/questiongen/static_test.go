package questiongen

import (
	"context"
	"testing"

	"github.com/schoolofai/drillcore/internal/difficulty"
)

func TestStaticSource_ServesWithoutRepeats(t *testing.T) {
	src := NewStaticSource(DemoBanks())
	ctx := context.Background()

	var shown []string
	seen := make(map[string]bool)
	for i := 0; i < 3; i++ {
		res, err := src.Next(ctx, Request{
			BlockID:    "b1",
			Topic:      "Fractions",
			Difficulty: difficulty.Easy,
			ShownIDs:   shown,
		})
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if res.Question == nil {
			t.Fatal("expected a question")
		}
		if seen[res.Question.ID] {
			t.Fatalf("question %s repeated before exhaustion", res.Question.ID)
		}
		seen[res.Question.ID] = true
		shown = res.Shown
	}
}

func TestStaticSource_ResetsOnExhaustion(t *testing.T) {
	src := NewStaticSource(DemoBanks())
	ctx := context.Background()

	var shown []string
	var sawReset bool
	for i := 0; i < 4; i++ {
		res, err := src.Next(ctx, Request{
			Topic:      "Decimals",
			Difficulty: difficulty.Easy,
			ShownIDs:   shown,
		})
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if res.Question == nil {
			t.Fatal("bank-backed source went empty on a stocked tier")
		}
		shown = res.Shown
		if res.PoolReset {
			sawReset = true
			if len(shown) != 1 {
				t.Errorf("after reset shown = %v, want just the fresh pick", shown)
			}
		}
	}
	if !sawReset {
		t.Error("fourth draw from a three-question tier should reset")
	}
}

func TestStaticSource_ResetKeepsOtherTiers(t *testing.T) {
	src := NewStaticSource(DemoBanks())
	ctx := context.Background()

	// Exhaust the easy tier with a hard-tier id also on the shown list.
	shown := []string{"dec-h1", "dec-e1", "dec-e2", "dec-e3"}
	res, err := src.Next(ctx, Request{
		Topic:      "Decimals",
		Difficulty: difficulty.Easy,
		ShownIDs:   shown,
	})
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if !res.PoolReset {
		t.Fatal("expected a reset")
	}
	foundHard := false
	for _, id := range res.Shown {
		if id == "dec-h1" {
			foundHard = true
		}
	}
	if !foundHard {
		t.Errorf("reset dropped another tier's id: %v", res.Shown)
	}
}

func TestStaticSource_DowngradesThinTier(t *testing.T) {
	banks := map[string]Bank{
		"Thin": {
			difficulty.Easy: []Question{
				nq("t-e1", "1+1?", "2", AnswerTypeInteger),
				nq("t-e2", "2+2?", "4", AnswerTypeInteger),
			},
			difficulty.Medium: []Question{
				nq("t-m1", "3*3?", "9", AnswerTypeInteger),
				nq("t-m2", "4*4?", "16", AnswerTypeInteger),
			},
			difficulty.Hard: []Question{
				nq("t-h1", "only one", "1", AnswerTypeInteger),
			},
		},
	}
	src := NewStaticSource(banks)

	res, err := src.Next(context.Background(), Request{Topic: "Thin", Difficulty: difficulty.Hard})
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if res.Difficulty != difficulty.Medium {
		t.Errorf("served difficulty = %s, want medium downgrade", res.Difficulty)
	}
	if res.Question == nil || res.Question.Difficulty != difficulty.Medium {
		t.Error("question not tagged with the served difficulty")
	}
}

func TestStaticSource_UnknownTopic(t *testing.T) {
	src := NewStaticSource(DemoBanks())
	res, err := src.Next(context.Background(), Request{Topic: "Astrophysics", Difficulty: difficulty.Easy})
	if err != nil {
		t.Fatalf("unknown topic must not error: %v", err)
	}
	if res.Question != nil {
		t.Error("unknown topic should read as out of content")
	}
}
