package session

import "math"

// Block completion criteria. The hard-question criterion is on attempts,
// not correct answers: two genuine tries at the hard tier count as enough
// exposure regardless of outcome, so a learner who keeps missing hard
// questions can never be trapped in a block. Wrong hard answers still drag
// the mastery score down through the weighted formula.
const (
	MasteryThreshold      = 0.70
	HardQuestionsRequired = 2
)

// CompletionReason tags why a completion check resolved the way it did.
// Manual advance is always reported explicitly so a block closed by
// override is auditable, never silently folded into the criteria path.
type CompletionReason string

const (
	ReasonCriteriaMet         CompletionReason = "criteria_met"
	ReasonMasteryInsufficient CompletionReason = "mastery_insufficient"
	ReasonHardInsufficient    CompletionReason = "hard_questions_insufficient"
	ReasonManualAdvance       CompletionReason = "manual_advance"
)

// Remaining quantifies the shortfall on an incomplete block, for UI
// guidance. Exact deltas, never guessed copy.
type Remaining struct {
	// MasteryNeeded is the mastery-score gap to the threshold, 0 if met.
	MasteryNeeded float64

	// HardQuestionsNeeded is the number of hard attempts still required,
	// 0 if met.
	HardQuestionsNeeded int
}

// CompletionResult is the full outcome of a block completion check.
type CompletionResult struct {
	Complete      bool
	Reason        CompletionReason
	MasteryScore  float64
	HardAttempted int
	ManualAdvance bool

	// Remaining is set only when the block is incomplete.
	Remaining *Remaining
}

// CheckBlockCompletion decides whether a block is finished.
//
// A student-requested advance unconditionally completes the block. Otherwise
// both criteria must hold: mastery at or above MasteryThreshold and at
// least HardQuestionsRequired hard-tier attempts. When both fail, the
// mastery shortfall is reported as the reason and Remaining carries both
// deltas.
func CheckBlockCompletion(b *BlockProgress) CompletionResult {
	res := CompletionResult{
		MasteryScore:  b.MasteryScore,
		HardAttempted: b.HardAttempted(),
		ManualAdvance: b.AdvanceRequested,
	}

	if b.AdvanceRequested {
		res.Complete = true
		res.Reason = ReasonManualAdvance
		return res
	}

	masteryMet := b.MasteryScore >= MasteryThreshold
	hardMet := res.HardAttempted >= HardQuestionsRequired

	if masteryMet && hardMet {
		res.Complete = true
		res.Reason = ReasonCriteriaMet
		return res
	}

	rem := &Remaining{}
	if !masteryMet {
		rem.MasteryNeeded = MasteryThreshold - b.MasteryScore
	}
	if !hardMet {
		rem.HardQuestionsNeeded = HardQuestionsRequired - res.HardAttempted
	}
	res.Remaining = rem

	if !masteryMet {
		res.Reason = ReasonMasteryInsufficient
	} else {
		res.Reason = ReasonHardInsufficient
	}
	return res
}

// CompletionProgress blends mastery progress (70%) and hard-question
// progress (30%) into a single 0-100 closeness percentage for progress
// bars. Display only: the completion decision never reads this.
func CompletionProgress(b *BlockProgress) int {
	masteryPart := b.MasteryScore / MasteryThreshold
	if masteryPart > 1 {
		masteryPart = 1
	}
	hardPart := float64(b.HardAttempted()) / float64(HardQuestionsRequired)
	if hardPart > 1 {
		hardPart = 1
	}
	return int(math.Round((masteryPart*0.7 + hardPart*0.3) * 100))
}
