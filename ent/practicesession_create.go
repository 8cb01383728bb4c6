// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/schoolofai/drillcore/ent/practicesession"
)

// PracticeSessionCreate is the builder for creating a PracticeSession entity.
type PracticeSessionCreate struct {
	config
	mutation *PracticeSessionMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *PracticeSessionCreate) SetSessionID(v string) *PracticeSessionCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetLessonID sets the "lesson_id" field.
func (_c *PracticeSessionCreate) SetLessonID(v string) *PracticeSessionCreate {
	_c.mutation.SetLessonID(v)
	return _c
}

// SetComplete sets the "complete" field.
func (_c *PracticeSessionCreate) SetComplete(v bool) *PracticeSessionCreate {
	_c.mutation.SetComplete(v)
	return _c
}

// SetNillableComplete sets the "complete" field if the given value is not nil.
func (_c *PracticeSessionCreate) SetNillableComplete(v *bool) *PracticeSessionCreate {
	if v != nil {
		_c.SetComplete(*v)
	}
	return _c
}

// SetState sets the "state" field.
func (_c *PracticeSessionCreate) SetState(v map[string]interface{}) *PracticeSessionCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetShownQuestionIds sets the "shown_question_ids" field.
func (_c *PracticeSessionCreate) SetShownQuestionIds(v []string) *PracticeSessionCreate {
	_c.mutation.SetShownQuestionIds(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PracticeSessionCreate) SetCreatedAt(v time.Time) *PracticeSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PracticeSessionCreate) SetNillableCreatedAt(v *time.Time) *PracticeSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PracticeSessionCreate) SetUpdatedAt(v time.Time) *PracticeSessionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PracticeSessionCreate) SetNillableUpdatedAt(v *time.Time) *PracticeSessionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the PracticeSessionMutation object of the builder.
func (_c *PracticeSessionCreate) Mutation() *PracticeSessionMutation {
	return _c.mutation
}

// Save creates the PracticeSession in the database.
func (_c *PracticeSessionCreate) Save(ctx context.Context) (*PracticeSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PracticeSessionCreate) SaveX(ctx context.Context) *PracticeSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PracticeSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PracticeSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PracticeSessionCreate) defaults() {
	if _, ok := _c.mutation.Complete(); !ok {
		v := practicesession.DefaultComplete
		_c.mutation.SetComplete(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := practicesession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := practicesession.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PracticeSessionCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "PracticeSession.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := practicesession.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "PracticeSession.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LessonID(); !ok {
		return &ValidationError{Name: "lesson_id", err: errors.New(`ent: missing required field "PracticeSession.lesson_id"`)}
	}
	if v, ok := _c.mutation.LessonID(); ok {
		if err := practicesession.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "PracticeSession.lesson_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Complete(); !ok {
		return &ValidationError{Name: "complete", err: errors.New(`ent: missing required field "PracticeSession.complete"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "PracticeSession.state"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PracticeSession.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PracticeSession.updated_at"`)}
	}
	return nil
}

func (_c *PracticeSessionCreate) sqlSave(ctx context.Context) (*PracticeSession, error) {
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

func (_c *PracticeSessionCreate) createSpec() (*PracticeSession, *sqlgraph.CreateSpec) {
	var (
		_node = &PracticeSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(practicesession.Table, sqlgraph.NewFieldSpec(practicesession.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(practicesession.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.LessonID(); ok {
		_spec.SetField(practicesession.FieldLessonID, field.TypeString, value)
		_node.LessonID = value
	}
	if value, ok := _c.mutation.Complete(); ok {
		_spec.SetField(practicesession.FieldComplete, field.TypeBool, value)
		_node.Complete = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(practicesession.FieldState, field.TypeJSON, value)
		_node.State = value
	}
	if value, ok := _c.mutation.ShownQuestionIds(); ok {
		_spec.SetField(practicesession.FieldShownQuestionIds, field.TypeJSON, value)
		_node.ShownQuestionIds = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(practicesession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(practicesession.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// PracticeSessionCreateBulk is the builder for creating many PracticeSession entities in bulk.
type PracticeSessionCreateBulk struct {
	config
	err      error
	builders []*PracticeSessionCreate
}

// Save creates the PracticeSession entities in the database.
func (_c *PracticeSessionCreateBulk) Save(ctx context.Context) ([]*PracticeSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PracticeSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PracticeSessionMutation)
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
func (_c *PracticeSessionCreateBulk) SaveX(ctx context.Context) []*PracticeSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PracticeSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PracticeSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
