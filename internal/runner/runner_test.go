package runner

import (
	"context"
	"testing"

	"github.com/schoolofai/drillcore/internal/difficulty"
	"github.com/schoolofai/drillcore/internal/questiongen"
	"github.com/schoolofai/drillcore/internal/session"
	"github.com/schoolofai/drillcore/internal/store"
)

type memSessionRepo struct {
	records map[string]*store.SessionRecord
	saves   int
}

func newMemSessionRepo() *memSessionRepo {
	return &memSessionRepo{records: make(map[string]*store.SessionRecord)}
}

func (m *memSessionRepo) Save(_ context.Context, rec *store.SessionRecord) error {
	cp := *rec
	m.records[rec.SessionID] = &cp
	m.saves++
	return nil
}

func (m *memSessionRepo) Load(_ context.Context, id string) (*store.SessionRecord, error) {
	rec, ok := m.records[id]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (m *memSessionRepo) List(_ context.Context, openOnly bool) ([]*store.SessionRecord, error) {
	var out []*store.SessionRecord
	for _, rec := range m.records {
		if openOnly && rec.Complete {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func (m *memSessionRepo) Delete(_ context.Context, id string) error {
	delete(m.records, id)
	return nil
}

type memEventRepo struct {
	answers  []store.AnswerEventData
	sessions []store.SessionEventData
}

func (m *memEventRepo) AppendAnswerEvent(_ context.Context, e store.AnswerEventData) error {
	m.answers = append(m.answers, e)
	return nil
}

func (m *memEventRepo) AppendSessionEvent(_ context.Context, e store.SessionEventData) error {
	m.sessions = append(m.sessions, e)
	return nil
}

func (m *memEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}

func (m *memEventRepo) AnswerStats(_ context.Context) (*store.AnswerStats, error) {
	return &store.AnswerStats{}, nil
}

func (m *memEventRepo) QueryLLMEvents(_ context.Context, _ store.QueryOpts) ([]*store.LLMRequestEvent, error) {
	return nil, nil
}

func (m *memEventRepo) GetLLMEvent(_ context.Context, _ int) (*store.LLMRequestEvent, error) {
	return nil, nil
}

func (m *memEventRepo) LLMUsage(_ context.Context) ([]store.LLMUsageRow, error) {
	return nil, nil
}

func testOptions() (Options, *memSessionRepo, *memEventRepo) {
	sessions := newMemSessionRepo()
	events := &memEventRepo{}
	opts := Options{
		Source:   questiongen.NewStaticSource(questiongen.DemoBanks()),
		Sessions: sessions,
		Events:   events,
	}
	return opts, sessions, events
}

func demoBlocks() []session.BlockSpec {
	return []session.BlockSpec{
		{BlockID: "b1", Topic: "Fractions"},
		{BlockID: "b2", Topic: "Decimals"},
	}
}

func TestStart_PersistsAndLogs(t *testing.T) {
	opts, sessions, events := testOptions()
	r, err := Start(context.Background(), "lesson-1", demoBlocks(), opts)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if len(sessions.records) != 1 {
		t.Errorf("records = %d, want 1", len(sessions.records))
	}
	if len(events.sessions) != 1 || events.sessions[0].Action != "start" {
		t.Errorf("session events = %+v, want one start", events.sessions)
	}
	if r.State().Stage != session.StageQuestion {
		t.Errorf("stage = %s, want question", r.State().Stage)
	}
}

func TestStart_NeedsBlocks(t *testing.T) {
	opts, _, _ := testOptions()
	if _, err := Start(context.Background(), "lesson-1", nil, opts); err == nil {
		t.Fatal("expected error with no blocks")
	}
}

func TestRunner_QuestionAnswerCycle(t *testing.T) {
	opts, _, events := testOptions()
	ctx := context.Background()
	r, err := Start(ctx, "lesson-1", demoBlocks(), opts)
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	q, err := r.NextQuestion(ctx)
	if err != nil {
		t.Fatalf("next question: %v", err)
	}
	if q == nil {
		t.Fatal("expected a question")
	}
	if q.BlockID != "b1" || q.Difficulty != difficulty.Easy {
		t.Errorf("first question = %s/%s, want b1/easy", q.BlockID, q.Difficulty)
	}
	if len(r.State().ShownQuestionIDs) != 1 {
		t.Errorf("shown = %v, want one id", r.State().ShownQuestionIDs)
	}

	out, err := r.SubmitAnswer(ctx, q.Answer)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !out.Correct {
		t.Error("canonical answer judged wrong")
	}
	if out.Report.Mastery != 1.0 {
		t.Errorf("mastery = %v, want 1.0 after one correct answer", out.Report.Mastery)
	}
	if len(events.answers) != 1 || !events.answers[0].Correct {
		t.Errorf("answer events = %+v", events.answers)
	}
	if r.Current() != nil {
		t.Error("current question should clear after an answer")
	}
}

func TestRunner_SubmitWithoutQuestion(t *testing.T) {
	opts, _, _ := testOptions()
	ctx := context.Background()
	r, _ := Start(ctx, "lesson-1", demoBlocks(), opts)

	if _, err := r.SubmitAnswer(ctx, "42"); err == nil {
		t.Fatal("expected error with no pending question")
	}
}

func TestRunner_ManualAdvanceMovesOn(t *testing.T) {
	opts, _, _ := testOptions()
	ctx := context.Background()
	r, _ := Start(ctx, "lesson-1", demoBlocks(), opts)

	prog, err := r.RequestAdvance(ctx)
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	if !prog.ShouldProgress {
		t.Fatal("manual advance must complete the block")
	}
	if prog.Completion.Reason != session.ReasonManualAdvance {
		t.Errorf("reason = %s", prog.Completion.Reason)
	}
	if r.State().CurrentBlockIndex != 1 {
		t.Errorf("index = %d, want 1", r.State().CurrentBlockIndex)
	}
}

func TestRunner_CompletesSessionAndResumes(t *testing.T) {
	opts, _, events := testOptions()
	ctx := context.Background()
	r, _ := Start(ctx, "lesson-1", demoBlocks(), opts)

	// Drive both blocks to completion with correct answers.
	for !r.State().SessionComplete {
		q, err := r.NextQuestion(ctx)
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if q == nil {
			t.Fatal("bank ran dry before completion")
		}
		if _, err := r.SubmitAnswer(ctx, q.Answer); err != nil {
			t.Fatalf("submit: %v", err)
		}
	}

	if r.State().Stage != session.StageComplete {
		t.Errorf("stage = %s, want complete", r.State().Stage)
	}
	var sawEnd bool
	for _, e := range events.sessions {
		if e.Action == "end" {
			sawEnd = true
		}
	}
	if !sawEnd {
		t.Error("no end event logged")
	}

	sum := r.Summary()
	if sum.BlocksCompleted != 2 {
		t.Errorf("BlocksCompleted = %d, want 2", sum.BlocksCompleted)
	}
}

func TestResume_RestoresProgress(t *testing.T) {
	opts, _, events := testOptions()
	ctx := context.Background()
	r, _ := Start(ctx, "lesson-1", demoBlocks(), opts)

	q, _ := r.NextQuestion(ctx)
	r.SubmitAnswer(ctx, q.Answer)
	id := r.State().SessionID

	r2, err := Resume(ctx, id, opts)
	if err != nil {
		t.Fatalf("resume: %v", err)
	}
	b := r2.State().Blocks[0]
	if b.Attempted.Total() != 1 || b.Correct.Total() != 1 {
		t.Errorf("restored counters = %d/%d, want 1/1", b.Attempted.Total(), b.Correct.Total())
	}
	if len(r2.State().ShownQuestionIDs) != 1 {
		t.Errorf("shown not restored: %v", r2.State().ShownQuestionIDs)
	}

	var sawResume bool
	for _, e := range events.sessions {
		if e.Action == "resume" {
			sawResume = true
		}
	}
	if !sawResume {
		t.Error("no resume event logged")
	}
}

func TestResume_UnknownSession(t *testing.T) {
	opts, _, _ := testOptions()
	if _, err := Resume(context.Background(), "missing", opts); err == nil {
		t.Fatal("expected error for unknown session")
	}
}
