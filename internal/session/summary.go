package session

import "time"

// BlockResult is one block's line on the end-of-session summary.
type BlockResult struct {
	BlockID       string
	Topic         string
	Mastery       float64
	Attempted     int
	Correct       int
	ManualAdvance bool
}

// Summary holds the data displayed when a session ends.
type Summary struct {
	SessionID      string
	Duration       time.Duration
	TotalQuestions  int
	TotalCorrect    int
	BlocksCompleted int
	OverallMastery  float64
	Blocks          []BlockResult
}

// BuildSummary derives the summary from the session's blocks.
func BuildSummary(s *SessionState) *Summary {
	sum := &Summary{
		SessionID:       s.SessionID,
		Duration:        time.Since(s.StartedAt),
		BlocksCompleted: s.CompletedBlocks,
		OverallMastery:  s.OverallMastery,
	}
	for _, b := range s.Blocks {
		sum.TotalQuestions += b.Attempted.Total()
		sum.TotalCorrect += b.Correct.Total()
		sum.Blocks = append(sum.Blocks, BlockResult{
			BlockID:       b.BlockID,
			Topic:         b.Topic,
			Mastery:       b.MasteryScore,
			Attempted:     b.Attempted.Total(),
			Correct:       b.Correct.Total(),
			ManualAdvance: b.AdvanceRequested,
		})
	}
	return sum
}
