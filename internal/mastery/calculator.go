// Package mastery computes per-block mastery scores from difficulty-bucketed
// attempt counters. The score is a weighted accuracy: harder questions carry
// more weight, and weights for unattempted difficulties are redistributed so
// a learner is only scored on what they have actually been asked.
package mastery

import "github.com/schoolofai/drillcore/internal/difficulty"

// Weights assigned to each difficulty's accuracy. Medium and hard dominate
// so easy-only performance cannot reach the completion threshold quickly.
var weights = map[difficulty.Level]float64{
	difficulty.Easy:   0.2,
	difficulty.Medium: 0.4,
	difficulty.Hard:   0.4,
}

// Counters tracks a per-difficulty count of questions, used both for
// attempted and correct tallies within a block.
type Counters map[difficulty.Level]int

// NewCounters returns a zeroed counter for every difficulty level.
func NewCounters() Counters {
	c := make(Counters, 3)
	for _, l := range difficulty.Ascending() {
		c[l] = 0
	}
	return c
}

// Total sums the counts across all difficulties.
func (c Counters) Total() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}

// Clone returns an independent copy of the counters.
func (c Counters) Clone() Counters {
	out := make(Counters, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// Report is the full output of a block mastery calculation.
type Report struct {
	// Mastery is the weighted score in [0,1]. Exactly 0 when nothing
	// has been attempted.
	Mastery float64

	// AccuracyByDifficulty holds correct/attempted per level. Levels with
	// zero attempts are absent, not zero.
	AccuracyByDifficulty map[difficulty.Level]float64

	TotalAttempted int
	TotalCorrect   int
}

// CalculateBlockMastery computes the weighted mastery score for one block.
//
// Per-difficulty accuracy is correct/attempted. The score is the weighted
// mean over difficulties that have data; the weight of unattempted
// difficulties is redistributed proportionally, so a learner who has only
// seen medium and hard questions is scored purely on those.
func CalculateBlockMastery(attempted, correct Counters) Report {
	rep := Report{
		AccuracyByDifficulty: make(map[difficulty.Level]float64),
	}

	var weightedSum, weightTotal float64
	for _, l := range difficulty.Ascending() {
		a := attempted[l]
		rep.TotalAttempted += a
		rep.TotalCorrect += correct[l]
		if a == 0 {
			continue
		}
		acc := float64(correct[l]) / float64(a)
		rep.AccuracyByDifficulty[l] = acc
		weightedSum += acc * weights[l]
		weightTotal += weights[l]
	}

	if rep.TotalAttempted == 0 || weightTotal == 0 {
		rep.Mastery = 0
		return rep
	}

	rep.Mastery = weightedSum / weightTotal
	return rep
}

// UpdateAfterAnswer increments the counters for one answered question and
// recomputes the mastery score from scratch. There is no incremental
// formula: the stored score is always reproducible from the counters alone,
// which is what makes persisted sessions safe to resume.
func UpdateAfterAnswer(attempted, correct Counters, level difficulty.Level, wasCorrect bool) Report {
	attempted[level]++
	if wasCorrect {
		correct[level]++
	}
	return CalculateBlockMastery(attempted, correct)
}

// ApplyDelta adds a signed adjustment to a previous mastery value, clamped
// to [0,1]. This is the escape hatch for evaluators that report a direct
// mastery adjustment instead of raw correctness. It must not be mixed with
// UpdateAfterAnswer within one block's lifetime: a delta-adjusted score is
// no longer reproducible from the counters.
func ApplyDelta(prev, delta float64) float64 {
	next := prev + delta
	if next < 0 {
		return 0
	}
	if next > 1 {
		return 1
	}
	return next
}
