package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/schoolofai/drillcore/ent"
	"github.com/schoolofai/drillcore/ent/practicesession"
)

// sessionRepo implements SessionRepo using the ent client.
type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) Save(ctx context.Context, rec *SessionRecord) error {
	stateMap, err := stateToMap(rec.State)
	if err != nil {
		return fmt.Errorf("marshal session state: %w", err)
	}

	existing, err := r.client.PracticeSession.Query().
		Where(practicesession.SessionID(rec.SessionID)).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query session %s: %w", rec.SessionID, err)
	}

	if existing != nil {
		_, err = existing.Update().
			SetComplete(rec.Complete).
			SetState(stateMap).
			SetShownQuestionIds(rec.ShownQuestionIDs).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("update session %s: %w", rec.SessionID, err)
		}
		return nil
	}

	_, err = r.client.PracticeSession.Create().
		SetSessionID(rec.SessionID).
		SetLessonID(rec.LessonID).
		SetComplete(rec.Complete).
		SetState(stateMap).
		SetShownQuestionIds(rec.ShownQuestionIDs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create session %s: %w", rec.SessionID, err)
	}
	return nil
}

func (r *sessionRepo) Load(ctx context.Context, sessionID string) (*SessionRecord, error) {
	ps, err := r.client.PracticeSession.Query().
		Where(practicesession.SessionID(sessionID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query session %s: %w", sessionID, err)
	}
	return entToRecord(ps)
}

func (r *sessionRepo) List(ctx context.Context, openOnly bool) ([]*SessionRecord, error) {
	q := r.client.PracticeSession.Query().
		Order(ent.Desc(practicesession.FieldUpdatedAt))
	if openOnly {
		q = q.Where(practicesession.Complete(false))
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	out := make([]*SessionRecord, 0, len(rows))
	for _, ps := range rows {
		rec, err := entToRecord(ps)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func (r *sessionRepo) Delete(ctx context.Context, sessionID string) error {
	_, err := r.client.PracticeSession.Delete().
		Where(practicesession.SessionID(sessionID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete session %s: %w", sessionID, err)
	}
	return nil
}

// stateToMap converts SessionStateData to map[string]any for ent JSON storage.
func stateToMap(data SessionStateData) (map[string]any, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// entToRecord converts an ent PracticeSession row to a SessionRecord.
func entToRecord(ps *ent.PracticeSession) (*SessionRecord, error) {
	b, err := json.Marshal(ps.State)
	if err != nil {
		return nil, fmt.Errorf("marshal ent state: %w", err)
	}
	var data SessionStateData
	if err := json.Unmarshal(b, &data); err != nil {
		return nil, fmt.Errorf("unmarshal session state: %w", err)
	}
	return &SessionRecord{
		SessionID:        ps.SessionID,
		LessonID:         ps.LessonID,
		Complete:         ps.Complete,
		State:            data,
		ShownQuestionIDs: ps.ShownQuestionIds,
		CreatedAt:        ps.CreatedAt,
		UpdatedAt:        ps.UpdatedAt,
	}, nil
}
