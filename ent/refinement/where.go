// Code generated by ent, DO NOT EDIT.

package refinement

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/ekocak/quizforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Refinement {
	return predicate.Refinement(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Refinement {
	return predicate.Refinement(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Refinement {
	return predicate.Refinement(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Refinement {
	return predicate.Refinement(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Refinement {
	return predicate.Refinement(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Refinement {
	return predicate.Refinement(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Refinement {
	return predicate.Refinement(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Refinement {
	return predicate.Refinement(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Refinement {
	return predicate.Refinement(sql.FieldLTE(FieldID, id))
}

// Instruction applies equality check predicate on the "instruction" field. It's identical to InstructionEQ.
func Instruction(v string) predicate.Refinement {
	return predicate.Refinement(sql.FieldEQ(FieldInstruction, v))
}

// ChangesMade applies equality check predicate on the "changes_made" field. It's identical to ChangesMadeEQ.
func ChangesMade(v string) predicate.Refinement {
	return predicate.Refinement(sql.FieldEQ(FieldChangesMade, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Refinement {
	return predicate.Refinement(sql.FieldEQ(FieldCreatedAt, v))
}

// InstructionEQ applies the EQ predicate on the "instruction" field.
func InstructionEQ(v string) predicate.Refinement {
	return predicate.Refinement(sql.FieldEQ(FieldInstruction, v))
}

// InstructionNEQ applies the NEQ predicate on the "instruction" field.
func InstructionNEQ(v string) predicate.Refinement {
	return predicate.Refinement(sql.FieldNEQ(FieldInstruction, v))
}

// InstructionIn applies the In predicate on the "instruction" field.
func InstructionIn(vs ...string) predicate.Refinement {
	return predicate.Refinement(sql.FieldIn(FieldInstruction, vs...))
}

// InstructionNotIn applies the NotIn predicate on the "instruction" field.
func InstructionNotIn(vs ...string) predicate.Refinement {
	return predicate.Refinement(sql.FieldNotIn(FieldInstruction, vs...))
}

// InstructionGT applies the GT predicate on the "instruction" field.
func InstructionGT(v string) predicate.Refinement {
	return predicate.Refinement(sql.FieldGT(FieldInstruction, v))
}

// InstructionGTE applies the GTE predicate on the "instruction" field.
func InstructionGTE(v string) predicate.Refinement {
	return predicate.Refinement(sql.FieldGTE(FieldInstruction, v))
}

// InstructionLT applies the LT predicate on the "instruction" field.
func InstructionLT(v string) predicate.Refinement {
	return predicate.Refinement(sql.FieldLT(FieldInstruction, v))
}

// InstructionLTE applies the LTE predicate on the "instruction" field.
func InstructionLTE(v string) predicate.Refinement {
	return predicate.Refinement(sql.FieldLTE(FieldInstruction, v))
}

// InstructionContains applies the Contains predicate on the "instruction" field.
func InstructionContains(v string) predicate.Refinement {
	return predicate.Refinement(sql.FieldContains(FieldInstruction, v))
}

// InstructionHasPrefix applies the HasPrefix predicate on the "instruction" field.
func InstructionHasPrefix(v string) predicate.Refinement {
	return predicate.Refinement(sql.FieldHasPrefix(FieldInstruction, v))
}

// InstructionHasSuffix applies the HasSuffix predicate on the "instruction" field.
func InstructionHasSuffix(v string) predicate.Refinement {
	return predicate.Refinement(sql.FieldHasSuffix(FieldInstruction, v))
}

// InstructionEqualFold applies the EqualFold predicate on the "instruction" field.
func InstructionEqualFold(v string) predicate.Refinement {
	return predicate.Refinement(sql.FieldEqualFold(FieldInstruction, v))
}

// InstructionContainsFold applies the ContainsFold predicate on the "instruction" field.
func InstructionContainsFold(v string) predicate.Refinement {
	return predicate.Refinement(sql.FieldContainsFold(FieldInstruction, v))
}

// ChangesMadeEQ applies the EQ predicate on the "changes_made" field.
func ChangesMadeEQ(v string) predicate.Refinement {
	return predicate.Refinement(sql.FieldEQ(FieldChangesMade, v))
}

// ChangesMadeNEQ applies the NEQ predicate on the "changes_made" field.
func ChangesMadeNEQ(v string) predicate.Refinement {
	return predicate.Refinement(sql.FieldNEQ(FieldChangesMade, v))
}

// ChangesMadeIn applies the In predicate on the "changes_made" field.
func ChangesMadeIn(vs ...string) predicate.Refinement {
	return predicate.Refinement(sql.FieldIn(FieldChangesMade, vs...))
}

// ChangesMadeNotIn applies the NotIn predicate on the "changes_made" field.
func ChangesMadeNotIn(vs ...string) predicate.Refinement {
	return predicate.Refinement(sql.FieldNotIn(FieldChangesMade, vs...))
}

// ChangesMadeGT applies the GT predicate on the "changes_made" field.
func ChangesMadeGT(v string) predicate.Refinement {
	return predicate.Refinement(sql.FieldGT(FieldChangesMade, v))
}

// ChangesMadeGTE applies the GTE predicate on the "changes_made" field.
func ChangesMadeGTE(v string) predicate.Refinement {
	return predicate.Refinement(sql.FieldGTE(FieldChangesMade, v))
}

// ChangesMadeLT applies the LT predicate on the "changes_made" field.
func ChangesMadeLT(v string) predicate.Refinement {
	return predicate.Refinement(sql.FieldLT(FieldChangesMade, v))
}

// ChangesMadeLTE applies the LTE predicate on the "changes_made" field.
func ChangesMadeLTE(v string) predicate.Refinement {
	return predicate.Refinement(sql.FieldLTE(FieldChangesMade, v))
}

// ChangesMadeContains applies the Contains predicate on the "changes_made" field.
func ChangesMadeContains(v string) predicate.Refinement {
	return predicate.Refinement(sql.FieldContains(FieldChangesMade, v))
}

// ChangesMadeHasPrefix applies the HasPrefix predicate on the "changes_made" field.
func ChangesMadeHasPrefix(v string) predicate.Refinement {
	return predicate.Refinement(sql.FieldHasPrefix(FieldChangesMade, v))
}

// ChangesMadeHasSuffix applies the HasSuffix predicate on the "changes_made" field.
func ChangesMadeHasSuffix(v string) predicate.Refinement {
	return predicate.Refinement(sql.FieldHasSuffix(FieldChangesMade, v))
}

// ChangesMadeEqualFold applies the EqualFold predicate on the "changes_made" field.
func ChangesMadeEqualFold(v string) predicate.Refinement {
	return predicate.Refinement(sql.FieldEqualFold(FieldChangesMade, v))
}

// ChangesMadeContainsFold applies the ContainsFold predicate on the "changes_made" field.
func ChangesMadeContainsFold(v string) predicate.Refinement {
	return predicate.Refinement(sql.FieldContainsFold(FieldChangesMade, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Refinement {
	return predicate.Refinement(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Refinement {
	return predicate.Refinement(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Refinement {
	return predicate.Refinement(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Refinement {
	return predicate.Refinement(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Refinement {
	return predicate.Refinement(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Refinement {
	return predicate.Refinement(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Refinement {
	return predicate.Refinement(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Refinement {
	return predicate.Refinement(sql.FieldLTE(FieldCreatedAt, v))
}

// HasQuestion applies the HasEdge predicate on the "question" edge.
func HasQuestion() predicate.Refinement {
	return predicate.Refinement(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, QuestionTable, QuestionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasQuestionWith applies the HasEdge predicate on the "question" edge with a given conditions (other predicates).
func HasQuestionWith(preds ...predicate.Question) predicate.Refinement {
	return predicate.Refinement(func(s *sql.Selector) {
		step := newQuestionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Refinement) predicate.Refinement {
	return predicate.Refinement(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Refinement) predicate.Refinement {
	return predicate.Refinement(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Refinement) predicate.Refinement {
	return predicate.Refinement(sql.NotPredicates(p))
}
