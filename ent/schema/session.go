package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Session is one generation run: a PDF upload or an image clone,
// together with the questions it produced.
type Session struct {
	ent.Schema
}

func (Session) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.String("kind").
			Comment("Generation flow: pdf or clone"),
		field.String("source_summary").
			Default("").
			Comment("Short description of the input, e.g. filename or extracted question"),
		field.String("target_language").
			Default(""),
		field.String("image_ref").
			Default("").
			Comment("Stored source image URL, clone sessions only"),
		field.String("model").
			Default("").
			Comment("Model ID that produced the questions"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Session) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("questions", Question.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (Session) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("kind"),
		index.Fields("created_at"),
	}
}
