package mastery

import (
	"math"
	"testing"

	"github.com/schoolofai/drillcore/internal/difficulty"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCalculateBlockMastery_ZeroAttempted(t *testing.T) {
	rep := CalculateBlockMastery(NewCounters(), NewCounters())
	if rep.Mastery != 0 {
		t.Errorf("Mastery = %v, want exactly 0", rep.Mastery)
	}
	if len(rep.AccuracyByDifficulty) != 0 {
		t.Errorf("AccuracyByDifficulty has %d entries, want 0", len(rep.AccuracyByDifficulty))
	}
	if rep.TotalAttempted != 0 || rep.TotalCorrect != 0 {
		t.Errorf("totals = %d/%d, want 0/0", rep.TotalCorrect, rep.TotalAttempted)
	}
}

func TestCalculateBlockMastery_AllDifficulties(t *testing.T) {
	attempted := Counters{difficulty.Easy: 4, difficulty.Medium: 4, difficulty.Hard: 4}
	correct := Counters{difficulty.Easy: 4, difficulty.Medium: 2, difficulty.Hard: 1}

	rep := CalculateBlockMastery(attempted, correct)

	// 1.0*0.2 + 0.5*0.4 + 0.25*0.4 = 0.5, all weights present.
	if !almostEqual(rep.Mastery, 0.5) {
		t.Errorf("Mastery = %v, want 0.5", rep.Mastery)
	}
	if !almostEqual(rep.AccuracyByDifficulty[difficulty.Medium], 0.5) {
		t.Errorf("medium accuracy = %v, want 0.5", rep.AccuracyByDifficulty[difficulty.Medium])
	}
	if rep.TotalAttempted != 12 {
		t.Errorf("TotalAttempted = %d, want 12", rep.TotalAttempted)
	}
	if rep.TotalCorrect != 7 {
		t.Errorf("TotalCorrect = %d, want 7", rep.TotalCorrect)
	}
}

func TestCalculateBlockMastery_WeightRedistribution(t *testing.T) {
	// Only medium and hard attempted: easy's weight is redistributed so
	// the score is (0.5*0.4 + 1.0*0.4) / 0.8 = 0.75, not penalized for
	// the missing easy bucket.
	attempted := Counters{difficulty.Medium: 4, difficulty.Hard: 2}
	correct := Counters{difficulty.Medium: 2, difficulty.Hard: 2}

	rep := CalculateBlockMastery(attempted, correct)
	if !almostEqual(rep.Mastery, 0.75) {
		t.Errorf("Mastery = %v, want 0.75", rep.Mastery)
	}
	if _, ok := rep.AccuracyByDifficulty[difficulty.Easy]; ok {
		t.Error("easy should have no accuracy entry with zero attempts")
	}
}

func TestCalculateBlockMastery_SingleDifficulty(t *testing.T) {
	// Hard only: score is exactly hard accuracy.
	attempted := Counters{difficulty.Hard: 4}
	correct := Counters{difficulty.Hard: 3}

	rep := CalculateBlockMastery(attempted, correct)
	if !almostEqual(rep.Mastery, 0.75) {
		t.Errorf("Mastery = %v, want 0.75", rep.Mastery)
	}
}

func TestUpdateAfterAnswer_NoDrift(t *testing.T) {
	attempted := NewCounters()
	correct := NewCounters()

	answers := []struct {
		level   difficulty.Level
		correct bool
	}{
		{difficulty.Easy, true},
		{difficulty.Easy, false},
		{difficulty.Medium, true},
		{difficulty.Hard, false},
		{difficulty.Hard, true},
		{difficulty.Medium, false},
		{difficulty.Hard, true},
	}

	var last Report
	for _, a := range answers {
		last = UpdateAfterAnswer(attempted, correct, a.level, a.correct)

		// Recomputing from the counters must always reproduce the
		// returned score exactly.
		recomputed := CalculateBlockMastery(attempted, correct)
		if last.Mastery != recomputed.Mastery {
			t.Fatalf("drift after %+v: update=%v recompute=%v", a, last.Mastery, recomputed.Mastery)
		}
	}

	if last.TotalAttempted != len(answers) {
		t.Errorf("TotalAttempted = %d, want %d", last.TotalAttempted, len(answers))
	}
}

func TestUpdateAfterAnswer_IncrementsCounters(t *testing.T) {
	attempted := NewCounters()
	correct := NewCounters()

	UpdateAfterAnswer(attempted, correct, difficulty.Hard, true)
	UpdateAfterAnswer(attempted, correct, difficulty.Hard, false)

	if attempted[difficulty.Hard] != 2 {
		t.Errorf("hard attempted = %d, want 2", attempted[difficulty.Hard])
	}
	if correct[difficulty.Hard] != 1 {
		t.Errorf("hard correct = %d, want 1", correct[difficulty.Hard])
	}
}

func TestApplyDelta_Clamped(t *testing.T) {
	cases := []struct {
		prev, delta, want float64
	}{
		{0.5, 0.2, 0.7},
		{0.5, -0.2, 0.3},
		{0.9, 0.5, 1.0},
		{0.1, -5.0, 0.0},
		{0.0, 100.0, 1.0},
		{1.0, 0.0, 1.0},
	}

	for _, c := range cases {
		got := ApplyDelta(c.prev, c.delta)
		if !almostEqual(got, c.want) {
			t.Errorf("ApplyDelta(%v, %v) = %v, want %v", c.prev, c.delta, got, c.want)
		}
	}
}

func TestCounters_Total(t *testing.T) {
	c := Counters{difficulty.Easy: 1, difficulty.Medium: 2, difficulty.Hard: 3}
	if c.Total() != 6 {
		t.Errorf("Total = %d, want 6", c.Total())
	}
}

func TestCounters_Clone(t *testing.T) {
	c := Counters{difficulty.Easy: 1}
	clone := c.Clone()
	clone[difficulty.Easy] = 9
	if c[difficulty.Easy] != 1 {
		t.Error("Clone should not share storage with the original")
	}
}
