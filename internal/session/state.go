// Package session implements the practice progression state machine: one
// ordered list of concept blocks per session, advanced strictly in order,
// each block closed by the completion evaluator and the whole session
// closed when every block is complete.
package session

import (
	"time"

	"github.com/schoolofai/drillcore/internal/difficulty"
	"github.com/schoolofai/drillcore/internal/mastery"
)

// Stage describes what the session is currently waiting on. It is a
// runtime UI-facing state, distinct from whether the session is persisted.
type Stage string

const (
	StageLoading  Stage = "loading"
	StageQuestion Stage = "question"
	StageFeedback Stage = "feedback"
	StageComplete Stage = "complete"
)

// BlockProgress is one concept block's state within a session.
//
// Complete is monotonic: once true it is never reset within a session, and
// CompletedAt is stamped exactly once when it flips. MasteryScore is
// derived from the counters and only ever set through recomputation.
type BlockProgress struct {
	BlockID string
	Topic   string

	Attempted mastery.Counters
	Correct   mastery.Counters

	MasteryScore float64
	Complete     bool
	CompletedAt  *time.Time

	// AdvanceRequested marks a manual-override completion requested by
	// the student. It is the single escape valve for stuck learners and
	// is always reported explicitly through the completion reason.
	AdvanceRequested bool
}

// HardAttempted returns the number of hard-tier attempts on this block.
func (b *BlockProgress) HardAttempted() int {
	return b.Attempted[difficulty.Hard]
}

// SessionState is the aggregate root for one practice session. It is owned
// by a single writer at a time; concurrent mutation of the same session
// must be serialized by the caller.
//
// CompletedBlocks, OverallMastery, SessionComplete and CurrentBlockIndex
// are projections of Blocks. They are recomputed on load (see Rebuild) and
// after every transition; persisted copies are never trusted.
type SessionState struct {
	SessionID string
	LessonID  string

	Stage             Stage
	CurrentBlockIndex int
	Blocks            []*BlockProgress

	CompletedBlocks int
	OverallMastery  float64
	SessionComplete bool

	// ShownQuestionIDs is the session-wide shown set consumed by the pool
	// manager. It survives difficulty and block changes; only a new
	// session starts empty.
	ShownQuestionIDs []string

	StartedAt time.Time
}

// BlockSpec names one block when creating a session.
type BlockSpec struct {
	BlockID string
	Topic   string
}

// New creates a session with every block at zero progress, positioned on
// the first block.
func New(sessionID, lessonID string, blocks []BlockSpec) *SessionState {
	bp := make([]*BlockProgress, len(blocks))
	for i, spec := range blocks {
		bp[i] = &BlockProgress{
			BlockID:   spec.BlockID,
			Topic:     spec.Topic,
			Attempted: mastery.NewCounters(),
			Correct:   mastery.NewCounters(),
		}
	}
	return &SessionState{
		SessionID: sessionID,
		LessonID:  lessonID,
		Stage:     StageQuestion,
		Blocks:    bp,
		StartedAt: time.Now(),
	}
}

// TotalBlocks returns the fixed block count for this session.
func (s *SessionState) TotalBlocks() int {
	return len(s.Blocks)
}

// CurrentBlock returns the active block, or nil once the session is
// complete or the index is out of range.
func (s *SessionState) CurrentBlock() *BlockProgress {
	if s.SessionComplete || s.CurrentBlockIndex < 0 || s.CurrentBlockIndex >= len(s.Blocks) {
		return nil
	}
	return s.Blocks[s.CurrentBlockIndex]
}
