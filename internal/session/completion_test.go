package session

import (
	"testing"

	"github.com/schoolofai/drillcore/internal/difficulty"
	"github.com/schoolofai/drillcore/internal/mastery"
)

func blockWith(masteryScore float64, hardAttempted int) *BlockProgress {
	b := &BlockProgress{
		BlockID:   "b1",
		Attempted: mastery.NewCounters(),
		Correct:   mastery.NewCounters(),
	}
	b.MasteryScore = masteryScore
	b.Attempted[difficulty.Hard] = hardAttempted
	return b
}

func TestCheckBlockCompletion_CriteriaMet(t *testing.T) {
	res := CheckBlockCompletion(blockWith(0.75, 2))
	if !res.Complete {
		t.Fatal("expected complete")
	}
	if res.Reason != ReasonCriteriaMet {
		t.Errorf("reason = %s, want %s", res.Reason, ReasonCriteriaMet)
	}
	if res.Remaining != nil {
		t.Error("expected no remaining work when complete")
	}
}

func TestCheckBlockCompletion_HardInsufficient(t *testing.T) {
	res := CheckBlockCompletion(blockWith(0.75, 1))
	if res.Complete {
		t.Fatal("expected incomplete")
	}
	if res.Reason != ReasonHardInsufficient {
		t.Errorf("reason = %s, want %s", res.Reason, ReasonHardInsufficient)
	}
	if res.Remaining == nil || res.Remaining.HardQuestionsNeeded != 1 {
		t.Errorf("remaining = %+v, want 1 hard question needed", res.Remaining)
	}
}

func TestCheckBlockCompletion_MasteryInsufficient(t *testing.T) {
	res := CheckBlockCompletion(blockWith(0.50, 3))
	if res.Complete {
		t.Fatal("expected incomplete")
	}
	if res.Reason != ReasonMasteryInsufficient {
		t.Errorf("reason = %s, want %s", res.Reason, ReasonMasteryInsufficient)
	}
	if res.Remaining == nil {
		t.Fatal("expected remaining work")
	}
	if diff := res.Remaining.MasteryNeeded - 0.20; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("MasteryNeeded = %v, want 0.20", res.Remaining.MasteryNeeded)
	}
	if res.Remaining.HardQuestionsNeeded != 0 {
		t.Errorf("HardQuestionsNeeded = %d, want 0", res.Remaining.HardQuestionsNeeded)
	}
}

func TestCheckBlockCompletion_BothInsufficient(t *testing.T) {
	res := CheckBlockCompletion(blockWith(0.40, 0))
	if res.Complete {
		t.Fatal("expected incomplete")
	}
	if res.Remaining == nil {
		t.Fatal("expected remaining work")
	}
	if res.Remaining.HardQuestionsNeeded != 2 {
		t.Errorf("HardQuestionsNeeded = %d, want 2", res.Remaining.HardQuestionsNeeded)
	}
	if res.Remaining.MasteryNeeded <= 0 {
		t.Errorf("MasteryNeeded = %v, want positive", res.Remaining.MasteryNeeded)
	}
}

func TestCheckBlockCompletion_ManualAdvanceBypassesCriteria(t *testing.T) {
	b := blockWith(0, 0)
	b.AdvanceRequested = true
	res := CheckBlockCompletion(b)
	if !res.Complete {
		t.Fatal("expected complete via manual advance")
	}
	if res.Reason != ReasonManualAdvance {
		t.Errorf("reason = %s, want %s", res.Reason, ReasonManualAdvance)
	}
	if !res.ManualAdvance {
		t.Error("expected ManualAdvance flag")
	}
}

func TestCheckBlockCompletion_ThresholdIsInclusive(t *testing.T) {
	res := CheckBlockCompletion(blockWith(0.70, 2))
	if !res.Complete {
		t.Error("mastery exactly at threshold should complete")
	}
}

func TestCompletionProgress(t *testing.T) {
	tests := []struct {
		name          string
		masteryScore  float64
		hardAttempted int
		want          int
	}{
		{"nothing done", 0, 0, 0},
		{"mastery only at threshold", 0.70, 0, 70},
		{"hard only", 0, 2, 30},
		{"both satisfied", 0.70, 2, 100},
		{"mastery beyond threshold capped", 1.0, 2, 100},
		{"halfway", 0.35, 1, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CompletionProgress(blockWith(tt.masteryScore, tt.hardAttempted))
			if got != tt.want {
				t.Errorf("CompletionProgress = %d, want %d", got, tt.want)
			}
		})
	}
}
