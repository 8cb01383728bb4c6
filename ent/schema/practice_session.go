package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PracticeSession stores one practice session: the full progression state
// as a JSON blob plus the session-wide shown-question set. Partial
// (mid-block) and completed sessions share this table; the complete flag
// exists for listing, derived state inside the blob is recomputed on load.
type PracticeSession struct {
	ent.Schema
}

func (PracticeSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Unique().
			NotEmpty().
			Comment("UUID identifying the session"),
		field.String("lesson_id").
			NotEmpty().
			Comment("Lesson this session practices"),
		field.Bool("complete").
			Default(false).
			Comment("True once every block is complete"),
		field.JSON("state", map[string]any{}).
			Comment("Serialized session progression state"),
		field.JSON("shown_question_ids", []string{}).
			Optional().
			Comment("Question ids already presented in this session"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (PracticeSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("lesson_id"),
		index.Fields("complete"),
		index.Fields("updated_at"),
	}
}
