// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ekocak/quizforge/ent/question"
	"github.com/ekocak/quizforge/ent/refinement"
	"github.com/google/uuid"
)

// RefinementCreate is the builder for creating a Refinement entity.
type RefinementCreate struct {
	config
	mutation *RefinementMutation
	hooks    []Hook
}

// SetInstruction sets the "instruction" field.
func (_c *RefinementCreate) SetInstruction(v string) *RefinementCreate {
	_c.mutation.SetInstruction(v)
	return _c
}

// SetChangesMade sets the "changes_made" field.
func (_c *RefinementCreate) SetChangesMade(v string) *RefinementCreate {
	_c.mutation.SetChangesMade(v)
	return _c
}

// SetNillableChangesMade sets the "changes_made" field if the given value is not nil.
func (_c *RefinementCreate) SetNillableChangesMade(v *string) *RefinementCreate {
	if v != nil {
		_c.SetChangesMade(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RefinementCreate) SetCreatedAt(v time.Time) *RefinementCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RefinementCreate) SetNillableCreatedAt(v *time.Time) *RefinementCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetQuestionID sets the "question" edge to the Question entity by ID.
func (_c *RefinementCreate) SetQuestionID(id uuid.UUID) *RefinementCreate {
	_c.mutation.SetQuestionID(id)
	return _c
}

// SetQuestion sets the "question" edge to the Question entity.
func (_c *RefinementCreate) SetQuestion(v *Question) *RefinementCreate {
	return _c.SetQuestionID(v.ID)
}

// Mutation returns the RefinementMutation object of the builder.
func (_c *RefinementCreate) Mutation() *RefinementMutation {
	return _c.mutation
}

// Save creates the Refinement in the database.
func (_c *RefinementCreate) Save(ctx context.Context) (*Refinement, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RefinementCreate) SaveX(ctx context.Context) *Refinement {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RefinementCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RefinementCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RefinementCreate) defaults() {
	if _, ok := _c.mutation.ChangesMade(); !ok {
		v := refinement.DefaultChangesMade
		_c.mutation.SetChangesMade(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := refinement.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RefinementCreate) check() error {
	if _, ok := _c.mutation.Instruction(); !ok {
		return &ValidationError{Name: "instruction", err: errors.New(`ent: missing required field "Refinement.instruction"`)}
	}
	if _, ok := _c.mutation.ChangesMade(); !ok {
		return &ValidationError{Name: "changes_made", err: errors.New(`ent: missing required field "Refinement.changes_made"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Refinement.created_at"`)}
	}
	if len(_c.mutation.QuestionIDs()) == 0 {
		return &ValidationError{Name: "question", err: errors.New(`ent: missing required edge "Refinement.question"`)}
	}
	return nil
}

func (_c *RefinementCreate) sqlSave(ctx context.Context) (*Refinement, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RefinementCreate) createSpec() (*Refinement, *sqlgraph.CreateSpec) {
	var (
		_node = &Refinement{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(refinement.Table, sqlgraph.NewFieldSpec(refinement.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Instruction(); ok {
		_spec.SetField(refinement.FieldInstruction, field.TypeString, value)
		_node.Instruction = value
	}
	if value, ok := _c.mutation.ChangesMade(); ok {
		_spec.SetField(refinement.FieldChangesMade, field.TypeString, value)
		_node.ChangesMade = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(refinement.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.QuestionIDs(); len(nodes) > 0 {
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
		_node.question_refinements = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// RefinementCreateBulk is the builder for creating many Refinement entities in bulk.
type RefinementCreateBulk struct {
	config
	err      error
	builders []*RefinementCreate
}

// Save creates the Refinement entities in the database.
func (_c *RefinementCreateBulk) Save(ctx context.Context) ([]*Refinement, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Refinement, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RefinementMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *RefinementCreateBulk) SaveX(ctx context.Context) []*Refinement {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RefinementCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RefinementCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
