package session

import "github.com/schoolofai/drillcore/internal/mastery"

// Rebuild recomputes every derived field of a session purely from its
// blocks: per-block mastery from the counters, the completed count, the
// overall mastery mean, session completion, the current block pointer and
// the stage. It is called immediately after deserialization so a resumed
// session never trusts separately stored copies of derived state; partial
// or stale writes of those fields cannot corrupt progression.
//
// Rebuild is idempotent: calling it on an already consistent session
// changes nothing.
func Rebuild(s *SessionState) {
	for _, b := range s.Blocks {
		if b.Attempted == nil {
			b.Attempted = mastery.NewCounters()
		}
		if b.Correct == nil {
			b.Correct = mastery.NewCounters()
		}
		// The stored score is discarded in favor of the counters. Blocks
		// scored through mastery.ApplyDelta bypass the counters entirely
		// and are not resumable through this path.
		rep := mastery.CalculateBlockMastery(b.Attempted, b.Correct)
		b.MasteryScore = rep.Mastery
	}

	s.CompletedBlocks = countCompleted(s)
	s.OverallMastery = meanMastery(s)
	s.SessionComplete = IsSessionComplete(s)

	if s.SessionComplete {
		s.Stage = StageComplete
		return
	}

	s.CurrentBlockIndex = NextIncompleteBlockIndex(s)
	if s.Stage == StageLoading || s.Stage == StageComplete || s.Stage == "" {
		s.Stage = StageQuestion
	}
}
