package session

import (
	"time"

	"github.com/schoolofai/drillcore/internal/difficulty"
	"github.com/schoolofai/drillcore/internal/mastery"
	"github.com/schoolofai/drillcore/internal/store"
)

// snapshotVersion is bumped when the serialized layout changes shape.
const snapshotVersion = 1

// Snapshot converts the in-memory state into its persisted form.
func Snapshot(s *SessionState) store.SessionStateData {
	blocks := make([]store.BlockProgressData, len(s.Blocks))
	for i, b := range s.Blocks {
		data := store.BlockProgressData{
			BlockID:                 b.BlockID,
			Topic:                   b.Topic,
			QuestionsAttempted:      countersToMap(b.Attempted),
			QuestionsCorrect:        countersToMap(b.Correct),
			MasteryScore:            b.MasteryScore,
			IsComplete:              b.Complete,
			StudentRequestedAdvance: b.AdvanceRequested,
		}
		if b.CompletedAt != nil {
			ts := b.CompletedAt.UTC().Format(time.RFC3339)
			data.CompletedAt = &ts
		}
		blocks[i] = data
	}
	return store.SessionStateData{
		Version:           snapshotVersion,
		SessionID:         s.SessionID,
		LessonID:          s.LessonID,
		Stage:             string(s.Stage),
		CurrentBlockIndex: s.CurrentBlockIndex,
		TotalBlocks:       len(s.Blocks),
		BlocksProgress:    blocks,
		CompletedBlocks:   s.CompletedBlocks,
		OverallMastery:    s.OverallMastery,
		SessionComplete:   s.SessionComplete,
		StartedAt:         s.StartedAt.UTC().Format(time.RFC3339),
	}
}

// Record wraps a snapshot in a store record ready for SessionRepo.Save.
func Record(s *SessionState) *store.SessionRecord {
	return &store.SessionRecord{
		SessionID:        s.SessionID,
		LessonID:         s.LessonID,
		Complete:         s.SessionComplete,
		State:            Snapshot(s),
		ShownQuestionIDs: append([]string(nil), s.ShownQuestionIDs...),
	}
}

// Restore rebuilds a SessionState from a persisted record. Derived
// fields are recomputed from the block counters rather than trusted
// from the stored copy.
func Restore(rec *store.SessionRecord) *SessionState {
	data := rec.State
	blocks := make([]*BlockProgress, len(data.BlocksProgress))
	for i, bd := range data.BlocksProgress {
		b := &BlockProgress{
			BlockID:          bd.BlockID,
			Topic:            bd.Topic,
			Attempted:        mapToCounters(bd.QuestionsAttempted),
			Correct:          mapToCounters(bd.QuestionsCorrect),
			MasteryScore:     bd.MasteryScore,
			Complete:         bd.IsComplete,
			AdvanceRequested: bd.StudentRequestedAdvance,
		}
		if bd.CompletedAt != nil {
			if ts, err := time.Parse(time.RFC3339, *bd.CompletedAt); err == nil {
				b.CompletedAt = &ts
			}
		}
		blocks[i] = b
	}

	s := &SessionState{
		SessionID:         data.SessionID,
		LessonID:          data.LessonID,
		Stage:             Stage(data.Stage),
		CurrentBlockIndex: data.CurrentBlockIndex,
		Blocks:            blocks,
		ShownQuestionIDs:  append([]string(nil), rec.ShownQuestionIDs...),
	}
	if data.StartedAt != "" {
		if ts, err := time.Parse(time.RFC3339, data.StartedAt); err == nil {
			s.StartedAt = ts
		}
	}
	if s.StartedAt.IsZero() {
		s.StartedAt = rec.CreatedAt
	}

	Rebuild(s)
	return s
}

func countersToMap(c mastery.Counters) map[string]int {
	out := make(map[string]int, len(c))
	for level, n := range c {
		out[string(level)] = n
	}
	return out
}

func mapToCounters(m map[string]int) mastery.Counters {
	c := mastery.NewCounters()
	for name, n := range m {
		if level, err := difficulty.Parse(name); err == nil {
			c[level] = n
		}
	}
	return c
}
