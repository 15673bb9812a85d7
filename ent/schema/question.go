package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// Question is one generated exam question. MCQ questions carry options
// and an answer index; open-ended questions carry a sample answer.
type Question struct {
	ent.Schema
}

func (Question) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.String("qtype").
			Comment("mcq or open_ended"),
		field.Text("question_text"),
		field.Strings("options").
			Optional(),
		field.Int("answer_index").
			Default(0),
		field.Text("explanation").
			Default(""),
		field.Text("sample_answer").
			Default(""),
		field.String("difficulty").
			Default(""),
		field.String("topic").
			Default(""),
		field.Float("confidence").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Question) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("questions").
			Unique().
			Required(),
		edge.To("refinements", Refinement.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}
