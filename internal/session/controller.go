package session

import (
	"time"

	"github.com/schoolofai/drillcore/internal/difficulty"
	"github.com/schoolofai/drillcore/internal/mastery"
)

// RecordAnswer applies one judged answer to the active block: increments
// the difficulty counters and recomputes the block's mastery score from
// scratch. Returns the recomputed mastery report, or nil if the session
// has no active block.
func RecordAnswer(s *SessionState, level difficulty.Level, correct bool) *mastery.Report {
	b := s.CurrentBlock()
	if b == nil {
		return nil
	}
	rep := mastery.UpdateAfterAnswer(b.Attempted, b.Correct, level, correct)
	b.MasteryScore = rep.Mastery
	return &rep
}

// RequestAdvance flags the active block for manual-override completion.
// The flag takes effect on the next ProcessQuestionCompletion call.
func RequestAdvance(s *SessionState) {
	if b := s.CurrentBlock(); b != nil {
		b.AdvanceRequested = true
	}
}

// ProgressionResult reports what ProcessQuestionCompletion did.
type ProgressionResult struct {
	// Completion is the evaluator's verdict on the block that was active
	// when the call was made.
	Completion CompletionResult

	// ShouldProgress is true when that block just completed.
	ShouldProgress bool

	// CompletedBlockIndex is the index of the block that completed, -1
	// when ShouldProgress is false.
	CompletedBlockIndex int

	// SessionComplete is true when the completed block was the last one.
	SessionComplete bool
}

// ProcessQuestionCompletion runs after an answer has updated the active
// block's counters. It evaluates block completion; if the block is done it
// stamps Complete and CompletedAt exactly once, then either advances the
// block pointer to the next incomplete block or completes the session.
//
// Blocks are always attempted in sequence order. The pointer never moves
// backwards and a later block never opens while an earlier one is
// incomplete.
func ProcessQuestionCompletion(s *SessionState) ProgressionResult {
	res := ProgressionResult{CompletedBlockIndex: -1}

	b := s.CurrentBlock()
	if b == nil {
		res.SessionComplete = s.SessionComplete
		return res
	}

	res.Completion = CheckBlockCompletion(b)
	if !res.Completion.Complete {
		return res
	}

	if !b.Complete {
		now := time.Now()
		b.Complete = true
		b.CompletedAt = &now
	}
	res.ShouldProgress = true
	res.CompletedBlockIndex = s.CurrentBlockIndex

	advanceBlock(s)
	res.SessionComplete = s.SessionComplete
	return res
}

// advanceBlock moves the pointer to the next incomplete block, or closes
// the session when none remain. Overall mastery is recomputed as the
// arithmetic mean of all block scores at this moment, never kept as a
// running average.
func advanceBlock(s *SessionState) {
	next := NextIncompleteBlockIndex(s)
	if next == -1 {
		s.SessionComplete = true
		s.Stage = StageComplete
	} else {
		s.CurrentBlockIndex = next
		s.Stage = StageQuestion
	}
	s.CompletedBlocks = countCompleted(s)
	s.OverallMastery = meanMastery(s)
}

// NextIncompleteBlockIndex returns the first index whose block is not
// complete, or -1 when every block is done. Callers treat -1 as the
// terminal sentinel, not an error.
func NextIncompleteBlockIndex(s *SessionState) int {
	for i, b := range s.Blocks {
		if !b.Complete {
			return i
		}
	}
	return -1
}

// IsSessionComplete is the single source of truth for session termination:
// true iff every block is complete. Counters are derived, never
// authoritative.
func IsSessionComplete(s *SessionState) bool {
	for _, b := range s.Blocks {
		if !b.Complete {
			return false
		}
	}
	return len(s.Blocks) > 0
}

func countCompleted(s *SessionState) int {
	n := 0
	for _, b := range s.Blocks {
		if b.Complete {
			n++
		}
	}
	return n
}

// meanMastery averages the mastery of all blocks, complete or not.
// Incomplete blocks count with their current (possibly zero) score; see
// DESIGN.md for the open question around averaging only completed blocks.
func meanMastery(s *SessionState) float64 {
	if len(s.Blocks) == 0 {
		return 0
	}
	var sum float64
	for _, b := range s.Blocks {
		sum += b.MasteryScore
	}
	return sum / float64(len(s.Blocks))
}
