package app

import (
	"github.com/schoolofai/drillcore/internal/questiongen"
	"github.com/schoolofai/drillcore/internal/runner"
)

// questionReadyMsg carries the next fetched question. A nil question
// with nil error means the source ran out of content.
type questionReadyMsg struct {
	Question *questiongen.Question
	Err      error
}

// answerJudgedMsg carries the outcome of a submitted answer.
type answerJudgedMsg struct {
	Outcome *runner.Outcome
	Err     error
}

// advanceDoneMsg carries the result of a manual advance.
type advanceDoneMsg struct {
	Err error
}
