package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestSessionSaveLoadRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	// Missing session loads as nil, not an error.
	rec, err := repo.Load(ctx, "nope")
	if err != nil {
		t.Fatalf("load missing: %v", err)
	}
	if rec != nil {
		t.Fatal("expected nil record for missing session")
	}

	in := &SessionRecord{
		SessionID: "sess-1",
		LessonID:  "fractions-1",
		State: SessionStateData{
			Version:   1,
			SessionID: "sess-1",
			LessonID:  "fractions-1",
			Stage:     "question",
			BlocksProgress: []BlockProgressData{
				{
					BlockID:            "b1",
					QuestionsAttempted: map[string]int{"easy": 2, "hard": 1},
					QuestionsCorrect:   map[string]int{"easy": 2},
					MasteryScore:       0.4,
				},
				{
					BlockID:            "b2",
					QuestionsAttempted: map[string]int{},
					QuestionsCorrect:   map[string]int{},
				},
			},
			TotalBlocks: 2,
		},
		ShownQuestionIDs: []string{"q1", "q2", "q3"},
	}
	if err := repo.Save(ctx, in); err != nil {
		t.Fatalf("save: %v", err)
	}

	rec, err = repo.Load(ctx, "sess-1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if rec == nil {
		t.Fatal("expected record")
	}
	if rec.LessonID != "fractions-1" {
		t.Errorf("LessonID = %s, want fractions-1", rec.LessonID)
	}
	if len(rec.State.BlocksProgress) != 2 {
		t.Fatalf("blocks = %d, want 2", len(rec.State.BlocksProgress))
	}
	if rec.State.BlocksProgress[0].QuestionsAttempted["hard"] != 1 {
		t.Errorf("hard attempted = %d, want 1", rec.State.BlocksProgress[0].QuestionsAttempted["hard"])
	}
	if len(rec.ShownQuestionIDs) != 3 {
		t.Errorf("shown = %d, want 3", len(rec.ShownQuestionIDs))
	}
}

func TestSessionSaveUpserts(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	rec := &SessionRecord{
		SessionID: "sess-2",
		LessonID:  "decimals-1",
		State:     SessionStateData{Version: 1, SessionID: "sess-2"},
	}
	if err := repo.Save(ctx, rec); err != nil {
		t.Fatalf("first save: %v", err)
	}

	rec.Complete = true
	rec.ShownQuestionIDs = []string{"q9"}
	if err := repo.Save(ctx, rec); err != nil {
		t.Fatalf("second save: %v", err)
	}

	got, err := repo.Load(ctx, "sess-2")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !got.Complete {
		t.Error("expected Complete after upsert")
	}

	all, err := repo.List(ctx, false)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("list returned %d records, want 1 (upsert, not insert)", len(all))
	}

	open, err := repo.List(ctx, true)
	if err != nil {
		t.Fatalf("list open: %v", err)
	}
	if len(open) != 0 {
		t.Errorf("open list returned %d, want 0", len(open))
	}
}

func TestEventSequenceIsMonotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var prev int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next sequence: %v", err)
		}
		if seq <= prev && i > 0 {
			t.Fatalf("sequence %d not greater than %d", seq, prev)
		}
		prev = seq
	}
}

func TestAnswerStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []AnswerEventData{
		{SessionID: "s1", BlockID: "b1", QuestionID: "q1", Difficulty: "easy", Correct: true},
		{SessionID: "s1", BlockID: "b1", QuestionID: "q2", Difficulty: "hard", Correct: false},
		{SessionID: "s2", BlockID: "b1", QuestionID: "q3", Difficulty: "hard", Correct: true},
	}
	for _, e := range events {
		if err := repo.AppendAnswerEvent(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	stats, err := repo.AnswerStats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalAnswered != 3 {
		t.Errorf("TotalAnswered = %d, want 3", stats.TotalAnswered)
	}
	if stats.TotalCorrect != 2 {
		t.Errorf("TotalCorrect = %d, want 2", stats.TotalCorrect)
	}
	if stats.Sessions != 2 {
		t.Errorf("Sessions = %d, want 2", stats.Sessions)
	}
	hard := stats.ByDifficulty["hard"]
	if hard.Attempted != 2 || hard.Correct != 1 {
		t.Errorf("hard tally = %+v, want 2 attempted / 1 correct", hard)
	}
}

func TestLLMEventRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:    "mock",
		Model:       "mock",
		Purpose:     "question_generation",
		InputTokens: 10,
		Success:     true,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].Purpose != "question_generation" {
		t.Errorf("Purpose = %s, want question_generation", events[0].Purpose)
	}

	got, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Provider != "mock" {
		t.Errorf("got = %+v, want provider mock", got)
	}
}
