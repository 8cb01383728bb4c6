package pool

import (
	"testing"

	"github.com/schoolofai/drillcore/internal/difficulty"
)

func contains(ids []string, id string) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}

func TestSelect_PicksFromAvailable(t *testing.T) {
	all := []string{"q1", "q2", "q3", "q4"}
	shown := []string{"q1", "q3"}

	for i := 0; i < 50; i++ {
		sel := Select(all, shown)
		if sel.QuestionID != "q2" && sel.QuestionID != "q4" {
			t.Fatalf("selected %q, want q2 or q4", sel.QuestionID)
		}
		if sel.Reset {
			t.Fatal("unexpected reset with available questions")
		}
		if sel.Remaining != 1 {
			t.Fatalf("Remaining = %d, want 1", sel.Remaining)
		}
		if err := ValidateUnique(sel, shown); err != nil {
			t.Fatal(err)
		}
	}
}

func TestSelect_AppendsToShown(t *testing.T) {
	all := []string{"q1", "q2"}
	shown := []string{"q1"}

	sel := Select(all, shown)
	if len(sel.Shown) != 2 {
		t.Fatalf("Shown has %d entries, want 2", len(sel.Shown))
	}
	if sel.Shown[0] != "q1" || sel.Shown[1] != "q2" {
		t.Errorf("Shown = %v, want [q1 q2]", sel.Shown)
	}
	// Input slice must not be mutated.
	if len(shown) != 1 {
		t.Errorf("input shown mutated: %v", shown)
	}
}

func TestSelect_ExhaustionReset(t *testing.T) {
	all := []string{"q1", "q2", "q3"}
	shown := []string{"q1", "q2", "q3"}

	sel := Select(all, shown)
	if !sel.Reset {
		t.Fatal("expected a pool reset")
	}
	if !contains(all, sel.QuestionID) {
		t.Fatalf("selected %q not in pool", sel.QuestionID)
	}
	// After a reset the shown list holds exactly the new pick, so the next
	// distinct pick has maximal choice again.
	if len(sel.Shown) != 1 || sel.Shown[0] != sel.QuestionID {
		t.Errorf("Shown = %v, want exactly [%s]", sel.Shown, sel.QuestionID)
	}
	if sel.Remaining != 2 {
		t.Errorf("Remaining = %d, want 2", sel.Remaining)
	}
}

func TestSelect_EmptyPool(t *testing.T) {
	shown := []string{"stale"}
	sel := Select(nil, shown)
	if sel.QuestionID != "" {
		t.Errorf("QuestionID = %q, want empty", sel.QuestionID)
	}
	if sel.Reset {
		t.Error("empty pool must not report a reset")
	}
	if len(sel.Shown) != 1 || sel.Shown[0] != "stale" {
		t.Errorf("Shown = %v, want unchanged [stale]", sel.Shown)
	}
}

func TestSelect_NeverRepeatsUntilExhaustion(t *testing.T) {
	all := []string{"a", "b", "c", "d", "e"}
	var shown []string
	var served []string

	for i := 0; i < len(all); i++ {
		sel := Select(all, shown)
		if sel.Reset {
			t.Fatalf("reset on pick %d before exhaustion", i)
		}
		served = append(served, sel.QuestionID)
		shown = sel.Shown
	}

	if repeats := DetectRepeats(served); len(repeats) > 0 {
		t.Errorf("repeats before exhaustion: %v", repeats)
	}
	if !IsExhausted(all, shown) {
		t.Error("pool should be exhausted after serving every question")
	}
}

func TestIsExhausted(t *testing.T) {
	if IsExhausted([]string{"q1"}, nil) {
		t.Error("pool with available question reported exhausted")
	}
	if !IsExhausted([]string{"q1"}, []string{"q1"}) {
		t.Error("fully shown pool not reported exhausted")
	}
	if !IsExhausted(nil, nil) {
		t.Error("empty pool should count as exhausted")
	}
}

func TestPoolStatus(t *testing.T) {
	all := []string{"q1", "q2", "q3"}
	shown := []string{"q2", "other-pool-id"}

	st := PoolStatus(all, shown)
	if st.Total != 3 {
		t.Errorf("Total = %d, want 3", st.Total)
	}
	if st.Available != 2 {
		t.Errorf("Available = %d, want 2", st.Available)
	}
	if st.Shown != 1 {
		t.Errorf("Shown = %d, want 1", st.Shown)
	}
}

func TestEffectiveDifficulty_DowngradesToMedium(t *testing.T) {
	sizes := map[difficulty.Level]int{
		difficulty.Easy:   10,
		difficulty.Medium: 10,
		difficulty.Hard:   0,
	}
	got := EffectiveDifficulty(difficulty.Hard, sizes, 2)
	if got != difficulty.Medium {
		t.Errorf("EffectiveDifficulty = %s, want medium", got)
	}
}

func TestEffectiveDifficulty_AllStarved(t *testing.T) {
	sizes := map[difficulty.Level]int{}
	got := EffectiveDifficulty(difficulty.Hard, sizes, 2)
	if got != difficulty.Easy {
		t.Errorf("EffectiveDifficulty = %s, want easy fallback", got)
	}
}

func TestEffectiveDifficulty_KeepsRequested(t *testing.T) {
	sizes := map[difficulty.Level]int{
		difficulty.Easy:   1,
		difficulty.Medium: 1,
		difficulty.Hard:   5,
	}
	got := EffectiveDifficulty(difficulty.Hard, sizes, 2)
	if got != difficulty.Hard {
		t.Errorf("EffectiveDifficulty = %s, want hard", got)
	}
}

func TestEffectiveDifficulty_NeverUpgrades(t *testing.T) {
	// Easy requested with a rich hard pool must stay easy.
	sizes := map[difficulty.Level]int{
		difficulty.Easy: 0,
		difficulty.Hard: 50,
	}
	got := EffectiveDifficulty(difficulty.Easy, sizes, 2)
	if got != difficulty.Easy {
		t.Errorf("EffectiveDifficulty = %s, want easy", got)
	}
}

func TestEffectiveDifficulty_DefaultMinSize(t *testing.T) {
	sizes := map[difficulty.Level]int{
		difficulty.Medium: DefaultMinPoolSize,
		difficulty.Hard:   DefaultMinPoolSize - 1,
	}
	got := EffectiveDifficulty(difficulty.Hard, sizes, 0)
	if got != difficulty.Medium {
		t.Errorf("EffectiveDifficulty = %s, want medium", got)
	}
}

func TestValidateUnique_RepeatWithoutReset(t *testing.T) {
	sel := Selection{QuestionID: "q1"}
	if err := ValidateUnique(sel, []string{"q1"}); err == nil {
		t.Error("expected error for repeat without reset")
	}
}

func TestValidateUnique_RepeatWithReset(t *testing.T) {
	sel := Selection{QuestionID: "q1", Reset: true}
	if err := ValidateUnique(sel, []string{"q1"}); err != nil {
		t.Errorf("reset pick should be allowed: %v", err)
	}
}

func TestDetectRepeats(t *testing.T) {
	repeats := DetectRepeats([]string{"a", "b", "a", "c", "b", "a"})
	if len(repeats) != 2 || repeats[0] != "a" || repeats[1] != "b" {
		t.Errorf("DetectRepeats = %v, want [a b]", repeats)
	}
	if DetectRepeats([]string{"a", "b"}) != nil {
		t.Error("clean log should yield no repeats")
	}
}
