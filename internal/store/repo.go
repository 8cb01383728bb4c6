package store

import (
	"context"
	"time"
)

// BlockProgressData is the serialized form of one block's progress.
// Difficulty counters are stored as plain maps keyed by level name so the
// JSON stays readable and migration-friendly.
type BlockProgressData struct {
	BlockID                 string         `json:"block_id"`
	Topic                   string         `json:"topic,omitempty"`
	QuestionsAttempted      map[string]int `json:"questions_attempted"`
	QuestionsCorrect        map[string]int `json:"questions_correct"`
	MasteryScore            float64        `json:"mastery_score"`
	IsComplete              bool           `json:"is_complete"`
	CompletedAt             *string        `json:"completed_at,omitempty"`
	StudentRequestedAdvance bool           `json:"student_requested_advance"`
}

// SessionStateData is the serialized progression state of one session.
// CurrentBlockIndex, CompletedBlocks, OverallMastery and SessionComplete
// are stored for inspection but recomputed from BlocksProgress on load.
type SessionStateData struct {
	Version           int                 `json:"version"`
	SessionID         string              `json:"session_id"`
	LessonID          string              `json:"lesson_id"`
	Stage             string              `json:"stage"`
	CurrentBlockIndex int                 `json:"current_block_index"`
	TotalBlocks       int                 `json:"total_blocks"`
	BlocksProgress    []BlockProgressData `json:"blocks_progress"`
	CompletedBlocks   int                 `json:"completed_blocks"`
	OverallMastery    float64             `json:"overall_mastery"`
	SessionComplete   bool                `json:"session_complete"`
	StartedAt         string              `json:"started_at,omitempty"`
}

// SessionRecord is a persisted practice session: progression state plus
// the session-wide shown-question set.
type SessionRecord struct {
	SessionID        string
	LessonID         string
	Complete         bool
	State            SessionStateData
	ShownQuestionIDs []string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// SessionRepo persists practice sessions, partial or complete, keyed by
// session id.
type SessionRepo interface {
	// Save upserts a session record.
	Save(ctx context.Context, rec *SessionRecord) error

	// Load returns the session with the given id, or nil if none exists.
	Load(ctx context.Context, sessionID string) (*SessionRecord, error)

	// List returns sessions ordered by last update, newest first.
	// When openOnly is true, completed sessions are excluded.
	List(ctx context.Context, openOnly bool) ([]*SessionRecord, error)

	// Delete removes a session record.
	Delete(ctx context.Context, sessionID string) error
}

// AnswerEventData captures one judged answer for the event log.
type AnswerEventData struct {
	SessionID    string
	BlockID      string
	QuestionID   string
	Difficulty   string
	Correct      bool
	TimeMs       int
	MasteryAfter float64
}

// SessionEventData captures a session lifecycle event.
type SessionEventData struct {
	SessionID       string
	Action          string // "start", "resume", "end"
	QuestionsServed int
	CorrectAnswers  int
	BlocksCompleted int
	OverallMastery  float64
	DurationSecs    int
}

// LLMRequestEventData captures one LLM API call.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEvent is a stored LLM event, as read back for inspection.
type LLMRequestEvent struct {
	ID           int
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// DifficultyTally aggregates answers for one difficulty level.
type DifficultyTally struct {
	Attempted int
	Correct   int
}

// AnswerStats aggregates the answer event log for the stats command.
type AnswerStats struct {
	TotalAnswered int
	TotalCorrect  int
	ByDifficulty  map[string]DifficultyTally
	Sessions      int
}

// QueryOpts configures event queries.
type QueryOpts struct {
	Limit int // max results (0 = unlimited)
}

// EventRepo provides append and query access to the event log.
type EventRepo interface {
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error
	AppendSessionEvent(ctx context.Context, data SessionEventData) error
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// AnswerStats aggregates the whole answer log.
	AnswerStats(ctx context.Context) (*AnswerStats, error)

	// QueryLLMEvents returns recent LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]*LLMRequestEvent, error)

	// GetLLMEvent returns one LLM event by id, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error)

	// LLMUsage aggregates LLM events per purpose and model.
	LLMUsage(ctx context.Context) ([]LLMUsageRow, error)
}

// LLMUsageRow is aggregated token usage for one purpose/model pair.
type LLMUsageRow struct {
	Purpose      string
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}
