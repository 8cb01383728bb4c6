package session

import (
	"testing"
	"time"

	"github.com/schoolofai/drillcore/internal/difficulty"
	"github.com/schoolofai/drillcore/internal/store"
)

func TestRebuild_ResumesAtFirstIncompleteBlock(t *testing.T) {
	s := threeBlockSession()
	now := time.Now()
	s.Blocks[0].Complete = true
	s.Blocks[0].CompletedAt = &now
	s.Blocks[0].Attempted[difficulty.Easy] = 4
	s.Blocks[0].Correct[difficulty.Easy] = 4

	// A stale stored index must not be trusted.
	s.CurrentBlockIndex = 0
	s.Stage = StageLoading

	Rebuild(s)

	if s.CurrentBlockIndex != 1 {
		t.Errorf("index = %d, want 1", s.CurrentBlockIndex)
	}
	if s.Stage != StageQuestion {
		t.Errorf("stage = %s, want %s", s.Stage, StageQuestion)
	}
	if s.CompletedBlocks != 1 {
		t.Errorf("CompletedBlocks = %d, want 1", s.CompletedBlocks)
	}
	if s.SessionComplete {
		t.Error("two blocks remain, session must not be complete")
	}
}

func TestRebuild_RecomputesMasteryFromCounters(t *testing.T) {
	s := threeBlockSession()
	b := s.Blocks[0]
	b.Attempted[difficulty.Easy] = 2
	b.Correct[difficulty.Easy] = 1
	b.MasteryScore = 0.99 // stale stored value

	Rebuild(s)

	if b.MasteryScore != 0.5 {
		t.Errorf("rebuilt score = %v, want 0.5 from counters", b.MasteryScore)
	}
}

func TestRebuild_AllBlocksComplete(t *testing.T) {
	s := threeBlockSession()
	now := time.Now()
	for _, b := range s.Blocks {
		b.Complete = true
		b.CompletedAt = &now
	}

	Rebuild(s)

	if !s.SessionComplete {
		t.Error("expected SessionComplete")
	}
	if s.Stage != StageComplete {
		t.Errorf("stage = %s, want %s", s.Stage, StageComplete)
	}
}

func TestRebuild_Idempotent(t *testing.T) {
	s := threeBlockSession()
	s.Blocks[0].Attempted[difficulty.Medium] = 3
	s.Blocks[0].Correct[difficulty.Medium] = 2

	Rebuild(s)
	index, overall, stage := s.CurrentBlockIndex, s.OverallMastery, s.Stage
	Rebuild(s)

	if s.CurrentBlockIndex != index || s.OverallMastery != overall || s.Stage != stage {
		t.Error("second rebuild changed derived state")
	}
}

func TestSnapshotRestore_RoundTrip(t *testing.T) {
	s := threeBlockSession()
	RecordAnswer(s, difficulty.Easy, true)
	RecordAnswer(s, difficulty.Hard, true)
	RecordAnswer(s, difficulty.Hard, true)
	RecordAnswer(s, difficulty.Medium, true)
	ProcessQuestionCompletion(s)
	s.ShownQuestionIDs = []string{"q1", "q2", "q3", "q4"}

	rec := Record(s)
	if rec.SessionID != "sess-1" || rec.Complete {
		t.Fatalf("record = %+v", rec)
	}

	got := Restore(rec)

	if got.SessionID != s.SessionID || got.LessonID != s.LessonID {
		t.Errorf("identity mismatch: %s/%s", got.SessionID, got.LessonID)
	}
	if got.CurrentBlockIndex != s.CurrentBlockIndex {
		t.Errorf("index = %d, want %d", got.CurrentBlockIndex, s.CurrentBlockIndex)
	}
	if got.CompletedBlocks != s.CompletedBlocks {
		t.Errorf("CompletedBlocks = %d, want %d", got.CompletedBlocks, s.CompletedBlocks)
	}
	if got.Blocks[0].MasteryScore != s.Blocks[0].MasteryScore {
		t.Errorf("block score = %v, want %v", got.Blocks[0].MasteryScore, s.Blocks[0].MasteryScore)
	}
	if got.Blocks[0].Attempted[difficulty.Hard] != 2 {
		t.Errorf("hard attempted = %d, want 2", got.Blocks[0].Attempted[difficulty.Hard])
	}
	if len(got.ShownQuestionIDs) != 4 {
		t.Errorf("shown = %d, want 4", len(got.ShownQuestionIDs))
	}
	if got.Blocks[0].Topic != "Fractions" {
		t.Errorf("topic = %s, want Fractions", got.Blocks[0].Topic)
	}
	if got.Blocks[0].CompletedAt == nil {
		t.Error("completed timestamp lost in round trip")
	}
}

func TestRestore_ToleratesNilCounters(t *testing.T) {
	rec := &store.SessionRecord{
		SessionID: "sess-x",
		State: store.SessionStateData{
			SessionID: "sess-x",
			BlocksProgress: []store.BlockProgressData{
				{BlockID: "b1"},
			},
		},
	}
	got := Restore(rec)
	if got.Blocks[0].Attempted == nil || got.Blocks[0].Correct == nil {
		t.Fatal("counters must be initialized on restore")
	}
	if got.Blocks[0].MasteryScore != 0 {
		t.Errorf("score = %v, want 0 with no attempts", got.Blocks[0].MasteryScore)
	}
}
