// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/schoolofai/drillcore/ent/answerevent"
	"github.com/schoolofai/drillcore/ent/llmrequestevent"
	"github.com/schoolofai/drillcore/ent/practicesession"
	"github.com/schoolofai/drillcore/ent/schema"
	"github.com/schoolofai/drillcore/ent/sessionevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[0].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescBlockID is the schema descriptor for block_id field.
	answereventDescBlockID := answereventFields[1].Descriptor()
	// answerevent.BlockIDValidator is a validator for the "block_id" field. It is called by the builders before save.
	answerevent.BlockIDValidator = answereventDescBlockID.Validators[0].(func(string) error)
	// answereventDescQuestionID is the schema descriptor for question_id field.
	answereventDescQuestionID := answereventFields[2].Descriptor()
	// answerevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	answerevent.QuestionIDValidator = answereventDescQuestionID.Validators[0].(func(string) error)
	// answereventDescDifficulty is the schema descriptor for difficulty field.
	answereventDescDifficulty := answereventFields[3].Descriptor()
	// answerevent.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	answerevent.DifficultyValidator = answereventDescDifficulty.Validators[0].(func(string) error)
	// answereventDescTimeMs is the schema descriptor for time_ms field.
	answereventDescTimeMs := answereventFields[5].Descriptor()
	// answerevent.DefaultTimeMs holds the default value on creation for the time_ms field.
	answerevent.DefaultTimeMs = answereventDescTimeMs.Default.(int)
	// answereventDescMasteryAfter is the schema descriptor for mastery_after field.
	answereventDescMasteryAfter := answereventFields[6].Descriptor()
	// answerevent.DefaultMasteryAfter holds the default value on creation for the mastery_after field.
	answerevent.DefaultMasteryAfter = answereventDescMasteryAfter.Default.(float64)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	practicesessionFields := schema.PracticeSession{}.Fields()
	_ = practicesessionFields
	// practicesessionDescSessionID is the schema descriptor for session_id field.
	practicesessionDescSessionID := practicesessionFields[0].Descriptor()
	// practicesession.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	practicesession.SessionIDValidator = practicesessionDescSessionID.Validators[0].(func(string) error)
	// practicesessionDescLessonID is the schema descriptor for lesson_id field.
	practicesessionDescLessonID := practicesessionFields[1].Descriptor()
	// practicesession.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	practicesession.LessonIDValidator = practicesessionDescLessonID.Validators[0].(func(string) error)
	// practicesessionDescComplete is the schema descriptor for complete field.
	practicesessionDescComplete := practicesessionFields[2].Descriptor()
	// practicesession.DefaultComplete holds the default value on creation for the complete field.
	practicesession.DefaultComplete = practicesessionDescComplete.Default.(bool)
	// practicesessionDescCreatedAt is the schema descriptor for created_at field.
	practicesessionDescCreatedAt := practicesessionFields[5].Descriptor()
	// practicesession.DefaultCreatedAt holds the default value on creation for the created_at field.
	practicesession.DefaultCreatedAt = practicesessionDescCreatedAt.Default.(func() time.Time)
	// practicesessionDescUpdatedAt is the schema descriptor for updated_at field.
	practicesessionDescUpdatedAt := practicesessionFields[6].Descriptor()
	// practicesession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	practicesession.DefaultUpdatedAt = practicesessionDescUpdatedAt.Default.(func() time.Time)
	// practicesession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	practicesession.UpdateDefaultUpdatedAt = practicesessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[1].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescQuestionsServed is the schema descriptor for questions_served field.
	sessioneventDescQuestionsServed := sessioneventFields[2].Descriptor()
	// sessionevent.DefaultQuestionsServed holds the default value on creation for the questions_served field.
	sessionevent.DefaultQuestionsServed = sessioneventDescQuestionsServed.Default.(int)
	// sessioneventDescCorrectAnswers is the schema descriptor for correct_answers field.
	sessioneventDescCorrectAnswers := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	sessionevent.DefaultCorrectAnswers = sessioneventDescCorrectAnswers.Default.(int)
	// sessioneventDescBlocksCompleted is the schema descriptor for blocks_completed field.
	sessioneventDescBlocksCompleted := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultBlocksCompleted holds the default value on creation for the blocks_completed field.
	sessionevent.DefaultBlocksCompleted = sessioneventDescBlocksCompleted.Default.(int)
	// sessioneventDescOverallMastery is the schema descriptor for overall_mastery field.
	sessioneventDescOverallMastery := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultOverallMastery holds the default value on creation for the overall_mastery field.
	sessionevent.DefaultOverallMastery = sessioneventDescOverallMastery.Default.(float64)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
}
