package session

import "github.com/schoolofai/drillcore/internal/difficulty"

// RequestedDifficulty picks the difficulty to ask the question source for,
// as a function of the active block's current mastery: a rung up the
// ladder for each mastery band, with hard pinned once mastery is at the
// threshold so the remaining hard-exposure requirement can be met. Content
// availability is applied afterwards by the pool's downgrade policy.
func RequestedDifficulty(b *BlockProgress) difficulty.Level {
	switch {
	case b.MasteryScore < 0.35:
		return difficulty.Easy
	case b.MasteryScore < MasteryThreshold:
		return difficulty.Medium
	default:
		return difficulty.Hard
	}
}
