// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ekocak/quizforge/ent/predicate"
	"github.com/ekocak/quizforge/ent/question"
	"github.com/ekocak/quizforge/ent/refinement"
	"github.com/google/uuid"
)

// RefinementUpdate is the builder for updating Refinement entities.
type RefinementUpdate struct {
	config
	hooks    []Hook
	mutation *RefinementMutation
}

// Where appends a list predicates to the RefinementUpdate builder.
func (_u *RefinementUpdate) Where(ps ...predicate.Refinement) *RefinementUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetInstruction sets the "instruction" field.
func (_u *RefinementUpdate) SetInstruction(v string) *RefinementUpdate {
	_u.mutation.SetInstruction(v)
	return _u
}

// SetNillableInstruction sets the "instruction" field if the given value is not nil.
func (_u *RefinementUpdate) SetNillableInstruction(v *string) *RefinementUpdate {
	if v != nil {
		_u.SetInstruction(*v)
	}
	return _u
}

// SetChangesMade sets the "changes_made" field.
func (_u *RefinementUpdate) SetChangesMade(v string) *RefinementUpdate {
	_u.mutation.SetChangesMade(v)
	return _u
}

// SetNillableChangesMade sets the "changes_made" field if the given value is not nil.
func (_u *RefinementUpdate) SetNillableChangesMade(v *string) *RefinementUpdate {
	if v != nil {
		_u.SetChangesMade(*v)
	}
	return _u
}

// SetQuestionID sets the "question" edge to the Question entity by ID.
func (_u *RefinementUpdate) SetQuestionID(id uuid.UUID) *RefinementUpdate {
	_u.mutation.SetQuestionID(id)
	return _u
}

// SetQuestion sets the "question" edge to the Question entity.
func (_u *RefinementUpdate) SetQuestion(v *Question) *RefinementUpdate {
	return _u.SetQuestionID(v.ID)
}

// Mutation returns the RefinementMutation object of the builder.
func (_u *RefinementUpdate) Mutation() *RefinementMutation {
	return _u.mutation
}

// ClearQuestion clears the "question" edge to the Question entity.
func (_u *RefinementUpdate) ClearQuestion() *RefinementUpdate {
	_u.mutation.ClearQuestion()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RefinementUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RefinementUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RefinementUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RefinementUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RefinementUpdate) check() error {
	if _u.mutation.QuestionCleared() && len(_u.mutation.QuestionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Refinement.question"`)
	}
	return nil
}

func (_u *RefinementUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(refinement.Table, refinement.Columns, sqlgraph.NewFieldSpec(refinement.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Instruction(); ok {
		_spec.SetField(refinement.FieldInstruction, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChangesMade(); ok {
		_spec.SetField(refinement.FieldChangesMade, field.TypeString, value)
	}
	if _u.mutation.QuestionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   refinement.QuestionTable,
			Columns: []string{refinement.QuestionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuestionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   refinement.QuestionTable,
			Columns: []string{refinement.QuestionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{refinement.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RefinementUpdateOne is the builder for updating a single Refinement entity.
type RefinementUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RefinementMutation
}

// SetInstruction sets the "instruction" field.
func (_u *RefinementUpdateOne) SetInstruction(v string) *RefinementUpdateOne {
	_u.mutation.SetInstruction(v)
	return _u
}

// SetNillableInstruction sets the "instruction" field if the given value is not nil.
func (_u *RefinementUpdateOne) SetNillableInstruction(v *string) *RefinementUpdateOne {
	if v != nil {
		_u.SetInstruction(*v)
	}
	return _u
}

// SetChangesMade sets the "changes_made" field.
func (_u *RefinementUpdateOne) SetChangesMade(v string) *RefinementUpdateOne {
	_u.mutation.SetChangesMade(v)
	return _u
}

// SetNillableChangesMade sets the "changes_made" field if the given value is not nil.
func (_u *RefinementUpdateOne) SetNillableChangesMade(v *string) *RefinementUpdateOne {
	if v != nil {
		_u.SetChangesMade(*v)
	}
	return _u
}

// SetQuestionID sets the "question" edge to the Question entity by ID.
func (_u *RefinementUpdateOne) SetQuestionID(id uuid.UUID) *RefinementUpdateOne {
	_u.mutation.SetQuestionID(id)
	return _u
}

// SetQuestion sets the "question" edge to the Question entity.
func (_u *RefinementUpdateOne) SetQuestion(v *Question) *RefinementUpdateOne {
	return _u.SetQuestionID(v.ID)
}

// Mutation returns the RefinementMutation object of the builder.
func (_u *RefinementUpdateOne) Mutation() *RefinementMutation {
	return _u.mutation
}

// ClearQuestion clears the "question" edge to the Question entity.
func (_u *RefinementUpdateOne) ClearQuestion() *RefinementUpdateOne {
	_u.mutation.ClearQuestion()
	return _u
}

// Where appends a list predicates to the RefinementUpdate builder.
func (_u *RefinementUpdateOne) Where(ps ...predicate.Refinement) *RefinementUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RefinementUpdateOne) Select(field string, fields ...string) *RefinementUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Refinement entity.
func (_u *RefinementUpdateOne) Save(ctx context.Context) (*Refinement, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RefinementUpdateOne) SaveX(ctx context.Context) *Refinement {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RefinementUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RefinementUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RefinementUpdateOne) check() error {
	if _u.mutation.QuestionCleared() && len(_u.mutation.QuestionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Refinement.question"`)
	}
	return nil
}

func (_u *RefinementUpdateOne) sqlSave(ctx context.Context) (_node *Refinement, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(refinement.Table, refinement.Columns, sqlgraph.NewFieldSpec(refinement.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Refinement.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, refinement.FieldID)
		for _, f := range fields {
			if !refinement.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != refinement.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Instruction(); ok {
		_spec.SetField(refinement.FieldInstruction, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChangesMade(); ok {
		_spec.SetField(refinement.FieldChangesMade, field.TypeString, value)
	}
	if _u.mutation.QuestionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   refinement.QuestionTable,
			Columns: []string{refinement.QuestionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuestionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   refinement.QuestionTable,
			Columns: []string{refinement.QuestionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Refinement{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{refinement.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
