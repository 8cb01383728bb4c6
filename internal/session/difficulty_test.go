package session

import (
	"testing"

	"github.com/schoolofai/drillcore/internal/difficulty"
)

func TestRequestedDifficulty(t *testing.T) {
	tests := []struct {
		score float64
		want  difficulty.Level
	}{
		{0, difficulty.Easy},
		{0.34, difficulty.Easy},
		{0.35, difficulty.Medium},
		{0.5, difficulty.Medium},
		{0.69, difficulty.Medium},
		{0.70, difficulty.Hard},
		{1.0, difficulty.Hard},
	}
	for _, tt := range tests {
		got := RequestedDifficulty(blockWith(tt.score, 0))
		if got != tt.want {
			t.Errorf("RequestedDifficulty(%v) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestBuildSummary(t *testing.T) {
	s := threeBlockSession()
	RecordAnswer(s, difficulty.Easy, true)
	RecordAnswer(s, difficulty.Hard, false)
	RequestAdvance(s)
	ProcessQuestionCompletion(s)
	RecordAnswer(s, difficulty.Medium, true)

	sum := BuildSummary(s)
	if sum.TotalQuestions != 3 {
		t.Errorf("TotalQuestions = %d, want 3", sum.TotalQuestions)
	}
	if sum.TotalCorrect != 2 {
		t.Errorf("TotalCorrect = %d, want 2", sum.TotalCorrect)
	}
	if sum.BlocksCompleted != 1 {
		t.Errorf("BlocksCompleted = %d, want 1", sum.BlocksCompleted)
	}
	if len(sum.Blocks) != 3 {
		t.Fatalf("blocks = %d, want 3", len(sum.Blocks))
	}
	if !sum.Blocks[0].ManualAdvance {
		t.Error("first block should record the manual advance")
	}
	if sum.Duration < 0 {
		t.Errorf("negative duration %v", sum.Duration)
	}
}
