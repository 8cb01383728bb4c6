package store

import (
	"context"
	"fmt"

	"github.com/schoolofai/drillcore/ent"
	"github.com/schoolofai/drillcore/ent/llmrequestevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence
// counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetBlockID(data.BlockID).
		SetQuestionID(data.QuestionID).
		SetDifficulty(data.Difficulty).
		SetCorrect(data.Correct).
		SetTimeMs(data.TimeMs).
		SetMasteryAfter(data.MasteryAfter).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAction(data.Action).
		SetQuestionsServed(data.QuestionsServed).
		SetCorrectAnswers(data.CorrectAnswers).
		SetBlocksCompleted(data.BlocksCompleted).
		SetOverallMastery(data.OverallMastery).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetRequestBody(data.RequestBody).
		SetResponseBody(data.ResponseBody).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

func (r *eventRepo) AnswerStats(ctx context.Context) (*AnswerStats, error) {
	events, err := r.client.AnswerEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query answer events: %w", err)
	}

	stats := &AnswerStats{
		ByDifficulty: make(map[string]DifficultyTally),
	}
	sessions := make(map[string]bool)
	for _, e := range events {
		stats.TotalAnswered++
		tally := stats.ByDifficulty[e.Difficulty]
		tally.Attempted++
		if e.Correct {
			stats.TotalCorrect++
			tally.Correct++
		}
		stats.ByDifficulty[e.Difficulty] = tally
		sessions[e.SessionID] = true
	}
	stats.Sessions = len(sessions)
	return stats, nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]*LLMRequestEvent, error) {
	q := r.client.LLMRequestEvent.Query().
		Order(ent.Desc(llmrequestevent.FieldTimestamp))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}

	out := make([]*LLMRequestEvent, 0, len(rows))
	for _, row := range rows {
		out = append(out, entToLLMEvent(row))
	}
	return out, nil
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error) {
	row, err := r.client.LLMRequestEvent.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get LLM event %d: %w", id, err)
	}
	return entToLLMEvent(row), nil
}

func (r *eventRepo) LLMUsage(ctx context.Context) ([]LLMUsageRow, error) {
	rows, err := r.client.LLMRequestEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}

	type key struct{ purpose, model string }
	agg := make(map[key]*LLMUsageRow)
	var order []key
	latencySum := make(map[key]int64)

	for _, row := range rows {
		k := key{row.Purpose, row.Model}
		u, ok := agg[k]
		if !ok {
			u = &LLMUsageRow{Purpose: row.Purpose, Model: row.Model}
			agg[k] = u
			order = append(order, k)
		}
		u.Calls++
		u.InputTokens += row.InputTokens
		u.OutputTokens += row.OutputTokens
		latencySum[k] += row.LatencyMs
	}

	out := make([]LLMUsageRow, 0, len(order))
	for _, k := range order {
		u := agg[k]
		if u.Calls > 0 {
			u.AvgLatencyMs = latencySum[k] / int64(u.Calls)
		}
		out = append(out, *u)
	}
	return out, nil
}

func entToLLMEvent(row *ent.LLMRequestEvent) *LLMRequestEvent {
	return &LLMRequestEvent{
		ID:           row.ID,
		Timestamp:    row.Timestamp,
		Provider:     row.Provider,
		Model:        row.Model,
		Purpose:      row.Purpose,
		InputTokens:  row.InputTokens,
		OutputTokens: row.OutputTokens,
		LatencyMs:    row.LatencyMs,
		Success:      row.Success,
		ErrorMessage: row.ErrorMessage,
		RequestBody:  row.RequestBody,
		ResponseBody: row.ResponseBody,
	}
}
