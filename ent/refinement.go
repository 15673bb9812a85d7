// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ekocak/quizforge/ent/question"
	"github.com/ekocak/quizforge/ent/refinement"
	"github.com/google/uuid"
)

// Refinement is the model entity for the Refinement schema.
type Refinement struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// What the user asked to change
	Instruction string `json:"instruction,omitempty"`
	// The model's summary of what it changed
	ChangesMade string `json:"changes_made,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RefinementQuery when eager-loading is set.
	Edges                RefinementEdges `json:"edges"`
	question_refinements *uuid.UUID
	selectValues         sql.SelectValues
}

// RefinementEdges holds the relations/edges for other nodes in the graph.
type RefinementEdges struct {
	// Question holds the value of the question edge.
	Question *Question `json:"question,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// QuestionOrErr returns the Question value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RefinementEdges) QuestionOrErr() (*Question, error) {
	if e.Question != nil {
		return e.Question, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: question.Label}
	}
	return nil, &NotLoadedError{edge: "question"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Refinement) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case refinement.FieldID:
			values[i] = new(sql.NullInt64)
		case refinement.FieldInstruction, refinement.FieldChangesMade:
			values[i] = new(sql.NullString)
		case refinement.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case refinement.ForeignKeys[0]: // question_refinements
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Refinement fields.
func (_m *Refinement) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case refinement.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case refinement.FieldInstruction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field instruction", values[i])
			} else if value.Valid {
				_m.Instruction = value.String
			}
		case refinement.FieldChangesMade:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field changes_made", values[i])
			} else if value.Valid {
				_m.ChangesMade = value.String
			}
		case refinement.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case refinement.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field question_refinements", values[i])
			} else if value.Valid {
				_m.question_refinements = new(uuid.UUID)
				*_m.question_refinements = *value.S.(*uuid.UUID)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Refinement.
// This includes values selected through modifiers, order, etc.
func (_m *Refinement) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryQuestion queries the "question" edge of the Refinement entity.
func (_m *Refinement) QueryQuestion() *QuestionQuery {
	return NewRefinementClient(_m.config).QueryQuestion(_m)
}

// Update returns a builder for updating this Refinement.
// Note that you need to call Refinement.Unwrap() before calling this method if this Refinement
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Refinement) Update() *RefinementUpdateOne {
	return NewRefinementClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Refinement entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Refinement) Unwrap() *Refinement {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Refinement is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Refinement) String() string {
	var builder strings.Builder
	builder.WriteString("Refinement(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("instruction=")
	builder.WriteString(_m.Instruction)
	builder.WriteString(", ")
	builder.WriteString("changes_made=")
	builder.WriteString(_m.ChangesMade)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Refinements is a parsable slice of Refinement.
type Refinements []*Refinement
