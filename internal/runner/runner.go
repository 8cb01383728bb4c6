// Package runner drives a drill session end to end: it asks the
// question source for content, judges answers, feeds the progression
// controller, and persists after every step so a session can always be
// resumed.
package runner

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/schoolofai/drillcore/internal/mastery"
	"github.com/schoolofai/drillcore/internal/questiongen"
	"github.com/schoolofai/drillcore/internal/session"
	"github.com/schoolofai/drillcore/internal/store"
)

// Runner owns one live drill session.
type Runner struct {
	state    *session.SessionState
	source   questiongen.Source
	sessions store.SessionRepo
	events   store.EventRepo

	current       *questiongen.Question
	questionStart time.Time

	// priorTexts feeds generative-source dedup. In-memory only; after a
	// resume the source starts with an empty list and relies on model
	// variety instead.
	priorTexts map[string][]string
}

// Options configures a new or resumed runner.
type Options struct {
	Source   questiongen.Source
	Sessions store.SessionRepo
	Events   store.EventRepo
}

// Start creates a fresh session over the given blocks and persists it.
func Start(ctx context.Context, lessonID string, blocks []session.BlockSpec, opts Options) (*Runner, error) {
	if len(blocks) == 0 {
		return nil, fmt.Errorf("a session needs at least one block")
	}

	state := session.New(uuid.NewString(), lessonID, blocks)
	r := newRunner(state, opts)

	if err := r.persist(ctx); err != nil {
		return nil, fmt.Errorf("save new session: %w", err)
	}
	r.logSessionEvent(ctx, "start")
	return r, nil
}

// Resume loads a stored session and rebuilds its derived state.
func Resume(ctx context.Context, sessionID string, opts Options) (*Runner, error) {
	rec, err := opts.Sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load session %s: %w", sessionID, err)
	}
	if rec == nil {
		return nil, fmt.Errorf("no session with id %s", sessionID)
	}

	r := newRunner(session.Restore(rec), opts)
	r.logSessionEvent(ctx, "resume")
	return r, nil
}

func newRunner(state *session.SessionState, opts Options) *Runner {
	return &Runner{
		state:      state,
		source:     opts.Source,
		sessions:   opts.Sessions,
		events:     opts.Events,
		priorTexts: make(map[string][]string),
	}
}

// State exposes the progression state for rendering.
func (r *Runner) State() *session.SessionState { return r.state }

// Current returns the question awaiting an answer, nil between
// questions.
func (r *Runner) Current() *questiongen.Question { return r.current }

// NextQuestion fetches the next question for the active block. A nil
// question with nil error means the source has no more content.
func (r *Runner) NextQuestion(ctx context.Context) (*questiongen.Question, error) {
	block := r.state.CurrentBlock()
	if block == nil {
		return nil, fmt.Errorf("session %s has no active block", r.state.SessionID)
	}

	res, err := r.source.Next(ctx, questiongen.Request{
		BlockID:    block.BlockID,
		Topic:      block.Topic,
		Difficulty: session.RequestedDifficulty(block),
		PriorTexts: r.priorTexts[block.BlockID],
		ShownIDs:   r.state.ShownQuestionIDs,
	})
	if err != nil {
		return nil, fmt.Errorf("fetch question: %w", err)
	}
	if res.Question == nil {
		return nil, nil
	}

	r.state.ShownQuestionIDs = res.Shown
	r.current = res.Question
	r.questionStart = time.Now()

	if err := r.persist(ctx); err != nil {
		return nil, fmt.Errorf("save shown questions: %w", err)
	}
	return res.Question, nil
}

// Outcome is the result of judging one answer.
type Outcome struct {
	Correct     bool
	Question    *questiongen.Question
	Report      *mastery.Report
	Progression session.ProgressionResult
}

// SubmitAnswer judges the student's input against the current question,
// updates mastery and progression, logs the answer event, and persists.
func (r *Runner) SubmitAnswer(ctx context.Context, input string) (*Outcome, error) {
	q := r.current
	if q == nil {
		return nil, fmt.Errorf("no question awaiting an answer")
	}
	r.current = nil

	correct := questiongen.CheckAnswer(input, q)
	report := session.RecordAnswer(r.state, q.Difficulty, correct)
	r.priorTexts[q.BlockID] = append(r.priorTexts[q.BlockID], q.Text)

	r.logAnswerEvent(ctx, q, correct, report.Mastery)

	prog := session.ProcessQuestionCompletion(r.state)
	if prog.SessionComplete {
		r.logSessionEvent(ctx, "end")
	}

	if err := r.persist(ctx); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	return &Outcome{
		Correct:     correct,
		Question:    q,
		Report:      report,
		Progression: prog,
	}, nil
}

// RequestAdvance records a manual advance on the active block and runs
// progression immediately.
func (r *Runner) RequestAdvance(ctx context.Context) (session.ProgressionResult, error) {
	session.RequestAdvance(r.state)
	r.current = nil

	prog := session.ProcessQuestionCompletion(r.state)
	if prog.SessionComplete {
		r.logSessionEvent(ctx, "end")
	}

	if err := r.persist(ctx); err != nil {
		return prog, fmt.Errorf("save session: %w", err)
	}
	return prog, nil
}

// Summary builds the end-of-session summary.
func (r *Runner) Summary() *session.Summary {
	return session.BuildSummary(r.state)
}

func (r *Runner) persist(ctx context.Context) error {
	return r.sessions.Save(ctx, session.Record(r.state))
}

func (r *Runner) logAnswerEvent(ctx context.Context, q *questiongen.Question, correct bool, masteryAfter float64) {
	err := r.events.AppendAnswerEvent(ctx, store.AnswerEventData{
		SessionID:    r.state.SessionID,
		BlockID:      q.BlockID,
		QuestionID:   q.ID,
		Difficulty:   string(q.Difficulty),
		Correct:      correct,
		TimeMs:       int(time.Since(r.questionStart).Milliseconds()),
		MasteryAfter: masteryAfter,
	})
	if err != nil {
		// The event log is an audit trail; losing one entry must not
		// stop the drill.
		fmt.Fprintf(os.Stderr, "warning: could not log answer event: %v\n", err)
	}
}

func (r *Runner) logSessionEvent(ctx context.Context, action string) {
	sum := session.BuildSummary(r.state)
	err := r.events.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID:       r.state.SessionID,
		Action:          action,
		QuestionsServed: sum.TotalQuestions,
		CorrectAnswers:  sum.TotalCorrect,
		BlocksCompleted: sum.BlocksCompleted,
		OverallMastery:  sum.OverallMastery,
		DurationSecs:    int(sum.Duration.Seconds()),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not log session event: %v\n", err)
	}
}
