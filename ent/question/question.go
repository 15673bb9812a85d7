// Code generated by ent, DO NOT EDIT.

package question

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the question type in the database.
	Label = "question"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldQtype holds the string denoting the qtype field in the database.
	FieldQtype = "qtype"
	// FieldQuestionText holds the string denoting the question_text field in the database.
	FieldQuestionText = "question_text"
	// FieldOptions holds the string denoting the options field in the database.
	FieldOptions = "options"
	// FieldAnswerIndex holds the string denoting the answer_index field in the database.
	FieldAnswerIndex = "answer_index"
	// FieldExplanation holds the string denoting the explanation field in the database.
	FieldExplanation = "explanation"
	// FieldSampleAnswer holds the string denoting the sample_answer field in the database.
	FieldSampleAnswer = "sample_answer"
	// FieldDifficulty holds the string denoting the difficulty field in the database.
	FieldDifficulty = "difficulty"
	// FieldTopic holds the string denoting the topic field in the database.
	FieldTopic = "topic"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeSession holds the string denoting the session edge name in mutations.
	EdgeSession = "session"
	// EdgeRefinements holds the string denoting the refinements edge name in mutations.
	EdgeRefinements = "refinements"
	// Table holds the table name of the question in the database.
	Table = "questions"
	// SessionTable is the table that holds the session relation/edge.
	SessionTable = "questions"
	// SessionInverseTable is the table name for the Session entity.
	// It exists in this package in order to avoid circular dependency with the "session" package.
	SessionInverseTable = "sessions"
	// SessionColumn is the table column denoting the session relation/edge.
	SessionColumn = "session_questions"
	// RefinementsTable is the table that holds the refinements relation/edge.
	RefinementsTable = "refinements"
	// RefinementsInverseTable is the table name for the Refinement entity.
	// It exists in this package in order to avoid circular dependency with the "refinement" package.
	RefinementsInverseTable = "refinements"
	// RefinementsColumn is the table column denoting the refinements relation/edge.
	RefinementsColumn = "question_refinements"
)

// Columns holds all SQL columns for question fields.
var Columns = []string{
	FieldID,
	FieldQtype,
	FieldQuestionText,
	FieldOptions,
	FieldAnswerIndex,
	FieldExplanation,
	FieldSampleAnswer,
	FieldDifficulty,
	FieldTopic,
	FieldConfidence,
	FieldCreatedAt,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "questions"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"session_questions",
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	for i := range ForeignKeys {
		if column == ForeignKeys[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultAnswerIndex holds the default value on creation for the "answer_index" field.
	DefaultAnswerIndex int
	// DefaultExplanation holds the default value on creation for the "explanation" field.
	DefaultExplanation string
	// DefaultSampleAnswer holds the default value on creation for the "sample_answer" field.
	DefaultSampleAnswer string
	// DefaultDifficulty holds the default value on creation for the "difficulty" field.
	DefaultDifficulty string
	// DefaultTopic holds the default value on creation for the "topic" field.
	DefaultTopic string
	// DefaultConfidence holds the default value on creation for the "confidence" field.
	DefaultConfidence float64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Question queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByQtype orders the results by the qtype field.
func ByQtype(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQtype, opts...).ToFunc()
}

// ByQuestionText orders the results by the question_text field.
func ByQuestionText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionText, opts...).ToFunc()
}

// ByAnswerIndex orders the results by the answer_index field.
func ByAnswerIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnswerIndex, opts...).ToFunc()
}

// ByExplanation orders the results by the explanation field.
func ByExplanation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExplanation, opts...).ToFunc()
}

// BySampleAnswer orders the results by the sample_answer field.
func BySampleAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSampleAnswer, opts...).ToFunc()
}

// ByDifficulty orders the results by the difficulty field.
func ByDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficulty, opts...).ToFunc()
}

// ByTopic orders the results by the topic field.
func ByTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopic, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// BySessionField orders the results by session field.
func BySessionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSessionStep(), sql.OrderByField(field, opts...))
	}
}

// ByRefinementsCount orders the results by refinements count.
func ByRefinementsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newRefinementsStep(), opts...)
	}
}

// ByRefinements orders the results by refinements terms.
func ByRefinements(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRefinementsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newSessionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SessionInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
	)
}
func newRefinementsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RefinementsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, RefinementsTable, RefinementsColumn),
	)
}
