package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records one judged answer within a practice session.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("block_id").
			NotEmpty().
			Comment("Concept block the question belonged to"),
		field.String("question_id").
			NotEmpty().
			Comment("Stable id of the served question"),
		field.String("difficulty").
			NotEmpty().
			Comment("easy, medium or hard"),
		field.Bool("correct"),
		field.Int("time_ms").
			Default(0).
			Comment("Response time in milliseconds"),
		field.Float("mastery_after").
			Default(0).
			Comment("Block mastery score after this answer"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("block_id"),
		index.Fields("difficulty"),
	}
}
