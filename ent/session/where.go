// Code generated by ent, DO NOT EDIT.

package session

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/ekocak/quizforge/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldID, id))
}

// Kind applies equality check predicate on the "kind" field. It's identical to KindEQ.
func Kind(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldKind, v))
}

// SourceSummary applies equality check predicate on the "source_summary" field. It's identical to SourceSummaryEQ.
func SourceSummary(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldSourceSummary, v))
}

// TargetLanguage applies equality check predicate on the "target_language" field. It's identical to TargetLanguageEQ.
func TargetLanguage(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTargetLanguage, v))
}

// ImageRef applies equality check predicate on the "image_ref" field. It's identical to ImageRefEQ.
func ImageRef(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldImageRef, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldModel, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCreatedAt, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldKind, vs...))
}

// KindGT applies the GT predicate on the "kind" field.
func KindGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldKind, v))
}

// KindGTE applies the GTE predicate on the "kind" field.
func KindGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldKind, v))
}

// KindLT applies the LT predicate on the "kind" field.
func KindLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldKind, v))
}

// KindLTE applies the LTE predicate on the "kind" field.
func KindLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldKind, v))
}

// KindContains applies the Contains predicate on the "kind" field.
func KindContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldKind, v))
}

// KindHasPrefix applies the HasPrefix predicate on the "kind" field.
func KindHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldKind, v))
}

// KindHasSuffix applies the HasSuffix predicate on the "kind" field.
func KindHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldKind, v))
}

// KindEqualFold applies the EqualFold predicate on the "kind" field.
func KindEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldKind, v))
}

// KindContainsFold applies the ContainsFold predicate on the "kind" field.
func KindContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldKind, v))
}

// SourceSummaryEQ applies the EQ predicate on the "source_summary" field.
func SourceSummaryEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldSourceSummary, v))
}

// SourceSummaryNEQ applies the NEQ predicate on the "source_summary" field.
func SourceSummaryNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldSourceSummary, v))
}

// SourceSummaryIn applies the In predicate on the "source_summary" field.
func SourceSummaryIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldSourceSummary, vs...))
}

// SourceSummaryNotIn applies the NotIn predicate on the "source_summary" field.
func SourceSummaryNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldSourceSummary, vs...))
}

// SourceSummaryGT applies the GT predicate on the "source_summary" field.
func SourceSummaryGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldSourceSummary, v))
}

// SourceSummaryGTE applies the GTE predicate on the "source_summary" field.
func SourceSummaryGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldSourceSummary, v))
}

// SourceSummaryLT applies the LT predicate on the "source_summary" field.
func SourceSummaryLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldSourceSummary, v))
}

// SourceSummaryLTE applies the LTE predicate on the "source_summary" field.
func SourceSummaryLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldSourceSummary, v))
}

// SourceSummaryContains applies the Contains predicate on the "source_summary" field.
func SourceSummaryContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldSourceSummary, v))
}

// SourceSummaryHasPrefix applies the HasPrefix predicate on the "source_summary" field.
func SourceSummaryHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldSourceSummary, v))
}

// SourceSummaryHasSuffix applies the HasSuffix predicate on the "source_summary" field.
func SourceSummaryHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldSourceSummary, v))
}

// SourceSummaryEqualFold applies the EqualFold predicate on the "source_summary" field.
func SourceSummaryEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldSourceSummary, v))
}

// SourceSummaryContainsFold applies the ContainsFold predicate on the "source_summary" field.
func SourceSummaryContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldSourceSummary, v))
}

// TargetLanguageEQ applies the EQ predicate on the "target_language" field.
func TargetLanguageEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTargetLanguage, v))
}

// TargetLanguageNEQ applies the NEQ predicate on the "target_language" field.
func TargetLanguageNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldTargetLanguage, v))
}

// TargetLanguageIn applies the In predicate on the "target_language" field.
func TargetLanguageIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldTargetLanguage, vs...))
}

// TargetLanguageNotIn applies the NotIn predicate on the "target_language" field.
func TargetLanguageNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldTargetLanguage, vs...))
}

// TargetLanguageGT applies the GT predicate on the "target_language" field.
func TargetLanguageGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldTargetLanguage, v))
}

// TargetLanguageGTE applies the GTE predicate on the "target_language" field.
func TargetLanguageGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldTargetLanguage, v))
}

// TargetLanguageLT applies the LT predicate on the "target_language" field.
func TargetLanguageLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldTargetLanguage, v))
}

// TargetLanguageLTE applies the LTE predicate on the "target_language" field.
func TargetLanguageLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldTargetLanguage, v))
}

// TargetLanguageContains applies the Contains predicate on the "target_language" field.
func TargetLanguageContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldTargetLanguage, v))
}

// TargetLanguageHasPrefix applies the HasPrefix predicate on the "target_language" field.
func TargetLanguageHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldTargetLanguage, v))
}

// TargetLanguageHasSuffix applies the HasSuffix predicate on the "target_language" field.
func TargetLanguageHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldTargetLanguage, v))
}

// TargetLanguageEqualFold applies the EqualFold predicate on the "target_language" field.
func TargetLanguageEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldTargetLanguage, v))
}

// TargetLanguageContainsFold applies the ContainsFold predicate on the "target_language" field.
func TargetLanguageContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldTargetLanguage, v))
}

// ImageRefEQ applies the EQ predicate on the "image_ref" field.
func ImageRefEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldImageRef, v))
}

// ImageRefNEQ applies the NEQ predicate on the "image_ref" field.
func ImageRefNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldImageRef, v))
}

// ImageRefIn applies the In predicate on the "image_ref" field.
func ImageRefIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldImageRef, vs...))
}

// ImageRefNotIn applies the NotIn predicate on the "image_ref" field.
func ImageRefNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldImageRef, vs...))
}

// ImageRefGT applies the GT predicate on the "image_ref" field.
func ImageRefGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldImageRef, v))
}

// ImageRefGTE applies the GTE predicate on the "image_ref" field.
func ImageRefGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldImageRef, v))
}

// ImageRefLT applies the LT predicate on the "image_ref" field.
func ImageRefLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldImageRef, v))
}

// ImageRefLTE applies the LTE predicate on the "image_ref" field.
func ImageRefLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldImageRef, v))
}

// ImageRefContains applies the Contains predicate on the "image_ref" field.
func ImageRefContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldImageRef, v))
}

// ImageRefHasPrefix applies the HasPrefix predicate on the "image_ref" field.
func ImageRefHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldImageRef, v))
}

// ImageRefHasSuffix applies the HasSuffix predicate on the "image_ref" field.
func ImageRefHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldImageRef, v))
}

// ImageRefEqualFold applies the EqualFold predicate on the "image_ref" field.
func ImageRefEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldImageRef, v))
}

// ImageRefContainsFold applies the ContainsFold predicate on the "image_ref" field.
func ImageRefContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldImageRef, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldModel, v))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldModel, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldCreatedAt, v))
}

// HasQuestions applies the HasEdge predicate on the "questions" edge.
func HasQuestions() predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, QuestionsTable, QuestionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasQuestionsWith applies the HasEdge predicate on the "questions" edge with a given conditions (other predicates).
func HasQuestionsWith(preds ...predicate.Question) predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := newQuestionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Session) predicate.Session {
	return predicate.Session(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Session) predicate.Session {
	return predicate.Session(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Session) predicate.Session {
	return predicate.Session(sql.NotPredicates(p))
}
