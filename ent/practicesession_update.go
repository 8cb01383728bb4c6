// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/schoolofai/drillcore/ent/practicesession"
	"github.com/schoolofai/drillcore/ent/predicate"
)

// PracticeSessionUpdate is the builder for updating PracticeSession entities.
type PracticeSessionUpdate struct {
	config
	hooks    []Hook
	mutation *PracticeSessionMutation
}

// Where appends a list predicates to the PracticeSessionUpdate builder.
func (_u *PracticeSessionUpdate) Where(ps ...predicate.PracticeSession) *PracticeSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *PracticeSessionUpdate) SetSessionID(v string) *PracticeSessionUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *PracticeSessionUpdate) SetNillableSessionID(v *string) *PracticeSessionUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *PracticeSessionUpdate) SetLessonID(v string) *PracticeSessionUpdate {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *PracticeSessionUpdate) SetNillableLessonID(v *string) *PracticeSessionUpdate {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetComplete sets the "complete" field.
func (_u *PracticeSessionUpdate) SetComplete(v bool) *PracticeSessionUpdate {
	_u.mutation.SetComplete(v)
	return _u
}

// SetNillableComplete sets the "complete" field if the given value is not nil.
func (_u *PracticeSessionUpdate) SetNillableComplete(v *bool) *PracticeSessionUpdate {
	if v != nil {
		_u.SetComplete(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *PracticeSessionUpdate) SetState(v map[string]interface{}) *PracticeSessionUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetShownQuestionIds sets the "shown_question_ids" field.
func (_u *PracticeSessionUpdate) SetShownQuestionIds(v []string) *PracticeSessionUpdate {
	_u.mutation.SetShownQuestionIds(v)
	return _u
}

// AppendShownQuestionIds appends value to the "shown_question_ids" field.
func (_u *PracticeSessionUpdate) AppendShownQuestionIds(v []string) *PracticeSessionUpdate {
	_u.mutation.AppendShownQuestionIds(v)
	return _u
}

// ClearShownQuestionIds clears the value of the "shown_question_ids" field.
func (_u *PracticeSessionUpdate) ClearShownQuestionIds() *PracticeSessionUpdate {
	_u.mutation.ClearShownQuestionIds()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PracticeSessionUpdate) SetUpdatedAt(v time.Time) *PracticeSessionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PracticeSessionMutation object of the builder.
func (_u *PracticeSessionUpdate) Mutation() *PracticeSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PracticeSessionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PracticeSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PracticeSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PracticeSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PracticeSessionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := practicesession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PracticeSessionUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := practicesession.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "PracticeSession.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonID(); ok {
		if err := practicesession.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "PracticeSession.lesson_id": %w`, err)}
		}
	}
	return nil
}

func (_u *PracticeSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(practicesession.Table, practicesession.Columns, sqlgraph.NewFieldSpec(practicesession.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(practicesession.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(practicesession.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Complete(); ok {
		_spec.SetField(practicesession.FieldComplete, field.TypeBool, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(practicesession.FieldState, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ShownQuestionIds(); ok {
		_spec.SetField(practicesession.FieldShownQuestionIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedShownQuestionIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, practicesession.FieldShownQuestionIds, value)
		})
	}
	if _u.mutation.ShownQuestionIdsCleared() {
		_spec.ClearField(practicesession.FieldShownQuestionIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(practicesession.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{practicesession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PracticeSessionUpdateOne is the builder for updating a single PracticeSession entity.
type PracticeSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PracticeSessionMutation
}

// SetSessionID sets the "session_id" field.
func (_u *PracticeSessionUpdateOne) SetSessionID(v string) *PracticeSessionUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *PracticeSessionUpdateOne) SetNillableSessionID(v *string) *PracticeSessionUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *PracticeSessionUpdateOne) SetLessonID(v string) *PracticeSessionUpdateOne {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *PracticeSessionUpdateOne) SetNillableLessonID(v *string) *PracticeSessionUpdateOne {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetComplete sets the "complete" field.
func (_u *PracticeSessionUpdateOne) SetComplete(v bool) *PracticeSessionUpdateOne {
	_u.mutation.SetComplete(v)
	return _u
}

// SetNillableComplete sets the "complete" field if the given value is not nil.
func (_u *PracticeSessionUpdateOne) SetNillableComplete(v *bool) *PracticeSessionUpdateOne {
	if v != nil {
		_u.SetComplete(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *PracticeSessionUpdateOne) SetState(v map[string]interface{}) *PracticeSessionUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetShownQuestionIds sets the "shown_question_ids" field.
func (_u *PracticeSessionUpdateOne) SetShownQuestionIds(v []string) *PracticeSessionUpdateOne {
	_u.mutation.SetShownQuestionIds(v)
	return _u
}

// AppendShownQuestionIds appends value to the "shown_question_ids" field.
func (_u *PracticeSessionUpdateOne) AppendShownQuestionIds(v []string) *PracticeSessionUpdateOne {
	_u.mutation.AppendShownQuestionIds(v)
	return _u
}

// ClearShownQuestionIds clears the value of the "shown_question_ids" field.
func (_u *PracticeSessionUpdateOne) ClearShownQuestionIds() *PracticeSessionUpdateOne {
	_u.mutation.ClearShownQuestionIds()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PracticeSessionUpdateOne) SetUpdatedAt(v time.Time) *PracticeSessionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PracticeSessionMutation object of the builder.
func (_u *PracticeSessionUpdateOne) Mutation() *PracticeSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the PracticeSessionUpdate builder.
func (_u *PracticeSessionUpdateOne) Where(ps ...predicate.PracticeSession) *PracticeSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PracticeSessionUpdateOne) Select(field string, fields ...string) *PracticeSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PracticeSession entity.
func (_u *PracticeSessionUpdateOne) Save(ctx context.Context) (*PracticeSession, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PracticeSessionUpdateOne) SaveX(ctx context.Context) *PracticeSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PracticeSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PracticeSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PracticeSessionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := practicesession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PracticeSessionUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := practicesession.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "PracticeSession.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonID(); ok {
		if err := practicesession.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "PracticeSession.lesson_id": %w`, err)}
		}
	}
	return nil
}

func (_u *PracticeSessionUpdateOne) sqlSave(ctx context.Context) (_node *PracticeSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(practicesession.Table, practicesession.Columns, sqlgraph.NewFieldSpec(practicesession.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PracticeSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, practicesession.FieldID)
		for _, f := range fields {
			if !practicesession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != practicesession.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(practicesession.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(practicesession.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Complete(); ok {
		_spec.SetField(practicesession.FieldComplete, field.TypeBool, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(practicesession.FieldState, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ShownQuestionIds(); ok {
		_spec.SetField(practicesession.FieldShownQuestionIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedShownQuestionIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, practicesession.FieldShownQuestionIds, value)
		})
	}
	if _u.mutation.ShownQuestionIdsCleared() {
		_spec.ClearField(practicesession.FieldShownQuestionIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(practicesession.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &PracticeSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{practicesession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
