package questiongen

import (
	"context"

	"github.com/schoolofai/drillcore/internal/difficulty"
	"github.com/schoolofai/drillcore/internal/pool"
)

// Bank is fixed question content for one topic, bucketed by difficulty.
// Every question must carry a unique ID.
type Bank map[difficulty.Level][]Question

// StaticSource serves questions from fixed banks with repeat avoidance.
// Runs fully offline, used for tests and for `drill --source static`.
type StaticSource struct {
	banks map[string]Bank // keyed by topic
}

// NewStaticSource builds a source over per-topic banks.
func NewStaticSource(banks map[string]Bank) *StaticSource {
	return &StaticSource{banks: banks}
}

func (s *StaticSource) Next(_ context.Context, req Request) (*Result, error) {
	bank, ok := s.banks[req.Topic]
	if !ok {
		return &Result{Difficulty: req.Difficulty, Shown: req.ShownIDs}, nil
	}

	sizes := make(map[difficulty.Level]int, len(bank))
	for level, qs := range bank {
		sizes[level] = len(qs)
	}
	effective := pool.EffectiveDifficulty(req.Difficulty, sizes, pool.DefaultMinPoolSize)

	questions := bank[effective]
	ids := make([]string, len(questions))
	byID := make(map[string]*Question, len(questions))
	for i := range questions {
		ids[i] = questions[i].ID
		byID[questions[i].ID] = &questions[i]
	}

	sel := pool.Select(ids, req.ShownIDs)
	if sel.QuestionID == "" {
		return &Result{Difficulty: effective, Shown: req.ShownIDs}, nil
	}

	shown := sel.Shown
	if sel.Reset {
		// The session-wide shown list spans every tier; a reset clears
		// only this tier's entries.
		shown = resetShown(req.ShownIDs, byID, sel.QuestionID)
	}

	q := *byID[sel.QuestionID]
	q.BlockID = req.BlockID
	q.Topic = req.Topic
	q.Difficulty = effective

	return &Result{
		Question:   &q,
		Difficulty: effective,
		Shown:      shown,
		PoolReset:  sel.Reset,
	}, nil
}

// resetShown drops the exhausted tier's ids from the shown list and
// records the fresh pick.
func resetShown(shown []string, tier map[string]*Question, pick string) []string {
	out := make([]string, 0, len(shown))
	for _, id := range shown {
		if _, inTier := tier[id]; !inTier {
			out = append(out, id)
		}
	}
	return append(out, pick)
}
