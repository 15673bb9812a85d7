package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Refinement is one turn of a question's edit conversation. The turns
// are replayed in order when building the next refinement prompt.
type Refinement struct {
	ent.Schema
}

func (Refinement) Fields() []ent.Field {
	return []ent.Field{
		field.Text("instruction").
			Comment("What the user asked to change"),
		field.Text("changes_made").
			Default("").
			Comment("The model's summary of what it changed"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Refinement) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("question", Question.Type).
			Ref("refinements").
			Unique().
			Required(),
	}
}
