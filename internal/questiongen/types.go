// Package questiongen produces practice questions for lesson blocks,
// either freshly generated by an LLM or drawn from a static bank with
// repeat avoidance.
package questiongen

import "github.com/schoolofai/drillcore/internal/difficulty"

// Question is one practice question ready for display.
type Question struct {
	// ID uniquely identifies this question within the session, used for
	// repeat tracking.
	ID string

	BlockID string
	Topic   string

	// Difficulty is the tier this question actually belongs to, which
	// may be lower than requested when the pool forced a downgrade.
	Difficulty difficulty.Level

	// Text is the prompt shown to the student, plain ASCII.
	Text string

	Format AnswerFormat

	// Answer is the canonical correct answer. The choice text for
	// multiple choice, the number as a string otherwise.
	Answer string

	AnswerType AnswerType

	// Choices holds exactly four options for multiple choice, empty
	// otherwise.
	Choices []string

	// Explanation is a short worked solution shown with feedback.
	Explanation string
}

// AnswerFormat is how the student supplies an answer.
type AnswerFormat string

const (
	FormatNumeric        AnswerFormat = "numeric"
	FormatMultipleChoice AnswerFormat = "multiple_choice"
)

// AnswerType is the numeric representation of a correct answer.
type AnswerType string

const (
	AnswerTypeInteger  AnswerType = "integer"
	AnswerTypeDecimal  AnswerType = "decimal"
	AnswerTypeFraction AnswerType = "fraction"
	AnswerTypeText     AnswerType = "text"
)

// Request asks a source for the next question of a block.
type Request struct {
	BlockID string
	Topic   string

	// Difficulty is the tier the progression controller wants. Sources
	// may serve a lower tier when content runs short.
	Difficulty difficulty.Level

	// PriorTexts are question texts already asked this session, for
	// dedup in generative sources.
	PriorTexts []string

	// ShownIDs are question ids already served, for repeat avoidance in
	// bank-backed sources.
	ShownIDs []string
}

// Result is what a source hands back.
type Result struct {
	// Question is nil when the source is out of content. That is an
	// end-of-material signal, not an error.
	Question *Question

	// Difficulty is the tier actually served.
	Difficulty difficulty.Level

	// Shown is the updated shown-id list the caller should persist.
	Shown []string

	// PoolReset reports that the bank was exhausted and recycled.
	PoolReset bool
}
