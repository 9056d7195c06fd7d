// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/newsflow/hotaggr/ent/eventhistoryrelation"
	"github.com/newsflow/hotaggr/ent/predicate"
)

// EventHistoryRelationUpdate is the builder for updating EventHistoryRelation entities.
type EventHistoryRelationUpdate struct {
	config
	hooks    []Hook
	mutation *EventHistoryRelationMutation
}

// Where appends a list predicates to the EventHistoryRelationUpdate builder.
func (_u *EventHistoryRelationUpdate) Where(ps ...predicate.EventHistoryRelation) *EventHistoryRelationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetParentEventID sets the "parent_event_id" field.
func (_u *EventHistoryRelationUpdate) SetParentEventID(v int) *EventHistoryRelationUpdate {
	_u.mutation.ResetParentEventID()
	_u.mutation.SetParentEventID(v)
	return _u
}

// SetNillableParentEventID sets the "parent_event_id" field if the given value is not nil.
func (_u *EventHistoryRelationUpdate) SetNillableParentEventID(v *int) *EventHistoryRelationUpdate {
	if v != nil {
		_u.SetParentEventID(*v)
	}
	return _u
}

// AddParentEventID adds value to the "parent_event_id" field.
func (_u *EventHistoryRelationUpdate) AddParentEventID(v int) *EventHistoryRelationUpdate {
	_u.mutation.AddParentEventID(v)
	return _u
}

// SetChildEventID sets the "child_event_id" field.
func (_u *EventHistoryRelationUpdate) SetChildEventID(v int) *EventHistoryRelationUpdate {
	_u.mutation.ResetChildEventID()
	_u.mutation.SetChildEventID(v)
	return _u
}

// SetNillableChildEventID sets the "child_event_id" field if the given value is not nil.
func (_u *EventHistoryRelationUpdate) SetNillableChildEventID(v *int) *EventHistoryRelationUpdate {
	if v != nil {
		_u.SetChildEventID(*v)
	}
	return _u
}

// AddChildEventID adds value to the "child_event_id" field.
func (_u *EventHistoryRelationUpdate) AddChildEventID(v int) *EventHistoryRelationUpdate {
	_u.mutation.AddChildEventID(v)
	return _u
}

// SetRelationType sets the "relation_type" field.
func (_u *EventHistoryRelationUpdate) SetRelationType(v eventhistoryrelation.RelationType) *EventHistoryRelationUpdate {
	_u.mutation.SetRelationType(v)
	return _u
}

// SetNillableRelationType sets the "relation_type" field if the given value is not nil.
func (_u *EventHistoryRelationUpdate) SetNillableRelationType(v *eventhistoryrelation.RelationType) *EventHistoryRelationUpdate {
	if v != nil {
		_u.SetRelationType(*v)
	}
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *EventHistoryRelationUpdate) SetConfidenceScore(v float64) *EventHistoryRelationUpdate {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *EventHistoryRelationUpdate) SetNillableConfidenceScore(v *float64) *EventHistoryRelationUpdate {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *EventHistoryRelationUpdate) AddConfidenceScore(v float64) *EventHistoryRelationUpdate {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// SetDescription sets the "description" field.
func (_u *EventHistoryRelationUpdate) SetDescription(v string) *EventHistoryRelationUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *EventHistoryRelationUpdate) SetNillableDescription(v *string) *EventHistoryRelationUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// Mutation returns the EventHistoryRelationMutation object of the builder.
func (_u *EventHistoryRelationUpdate) Mutation() *EventHistoryRelationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EventHistoryRelationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EventHistoryRelationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EventHistoryRelationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EventHistoryRelationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EventHistoryRelationUpdate) check() error {
	if v, ok := _u.mutation.RelationType(); ok {
		if err := eventhistoryrelation.RelationTypeValidator(v); err != nil {
			return &ValidationError{Name: "relation_type", err: fmt.Errorf(`ent: validator failed for field "EventHistoryRelation.relation_type": %w`, err)}
		}
	}
	return nil
}

func (_u *EventHistoryRelationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(eventhistoryrelation.Table, eventhistoryrelation.Columns, sqlgraph.NewFieldSpec(eventhistoryrelation.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ParentEventID(); ok {
		_spec.SetField(eventhistoryrelation.FieldParentEventID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedParentEventID(); ok {
		_spec.AddField(eventhistoryrelation.FieldParentEventID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ChildEventID(); ok {
		_spec.SetField(eventhistoryrelation.FieldChildEventID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChildEventID(); ok {
		_spec.AddField(eventhistoryrelation.FieldChildEventID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RelationType(); ok {
		_spec.SetField(eventhistoryrelation.FieldRelationType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(eventhistoryrelation.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(eventhistoryrelation.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(eventhistoryrelation.FieldDescription, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{eventhistoryrelation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EventHistoryRelationUpdateOne is the builder for updating a single EventHistoryRelation entity.
type EventHistoryRelationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EventHistoryRelationMutation
}

// SetParentEventID sets the "parent_event_id" field.
func (_u *EventHistoryRelationUpdateOne) SetParentEventID(v int) *EventHistoryRelationUpdateOne {
	_u.mutation.ResetParentEventID()
	_u.mutation.SetParentEventID(v)
	return _u
}

// SetNillableParentEventID sets the "parent_event_id" field if the given value is not nil.
func (_u *EventHistoryRelationUpdateOne) SetNillableParentEventID(v *int) *EventHistoryRelationUpdateOne {
	if v != nil {
		_u.SetParentEventID(*v)
	}
	return _u
}

// AddParentEventID adds value to the "parent_event_id" field.
func (_u *EventHistoryRelationUpdateOne) AddParentEventID(v int) *EventHistoryRelationUpdateOne {
	_u.mutation.AddParentEventID(v)
	return _u
}

// SetChildEventID sets the "child_event_id" field.
func (_u *EventHistoryRelationUpdateOne) SetChildEventID(v int) *EventHistoryRelationUpdateOne {
	_u.mutation.ResetChildEventID()
	_u.mutation.SetChildEventID(v)
	return _u
}

// SetNillableChildEventID sets the "child_event_id" field if the given value is not nil.
func (_u *EventHistoryRelationUpdateOne) SetNillableChildEventID(v *int) *EventHistoryRelationUpdateOne {
	if v != nil {
		_u.SetChildEventID(*v)
	}
	return _u
}

// AddChildEventID adds value to the "child_event_id" field.
func (_u *EventHistoryRelationUpdateOne) AddChildEventID(v int) *EventHistoryRelationUpdateOne {
	_u.mutation.AddChildEventID(v)
	return _u
}

// SetRelationType sets the "relation_type" field.
func (_u *EventHistoryRelationUpdateOne) SetRelationType(v eventhistoryrelation.RelationType) *EventHistoryRelationUpdateOne {
	_u.mutation.SetRelationType(v)
	return _u
}

// SetNillableRelationType sets the "relation_type" field if the given value is not nil.
func (_u *EventHistoryRelationUpdateOne) SetNillableRelationType(v *eventhistoryrelation.RelationType) *EventHistoryRelationUpdateOne {
	if v != nil {
		_u.SetRelationType(*v)
	}
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *EventHistoryRelationUpdateOne) SetConfidenceScore(v float64) *EventHistoryRelationUpdateOne {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *EventHistoryRelationUpdateOne) SetNillableConfidenceScore(v *float64) *EventHistoryRelationUpdateOne {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *EventHistoryRelationUpdateOne) AddConfidenceScore(v float64) *EventHistoryRelationUpdateOne {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// SetDescription sets the "description" field.
func (_u *EventHistoryRelationUpdateOne) SetDescription(v string) *EventHistoryRelationUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *EventHistoryRelationUpdateOne) SetNillableDescription(v *string) *EventHistoryRelationUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// Mutation returns the EventHistoryRelationMutation object of the builder.
func (_u *EventHistoryRelationUpdateOne) Mutation() *EventHistoryRelationMutation {
	return _u.mutation
}

// Where appends a list predicates to the EventHistoryRelationUpdate builder.
func (_u *EventHistoryRelationUpdateOne) Where(ps ...predicate.EventHistoryRelation) *EventHistoryRelationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EventHistoryRelationUpdateOne) Select(field string, fields ...string) *EventHistoryRelationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EventHistoryRelation entity.
func (_u *EventHistoryRelationUpdateOne) Save(ctx context.Context) (*EventHistoryRelation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EventHistoryRelationUpdateOne) SaveX(ctx context.Context) *EventHistoryRelation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EventHistoryRelationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EventHistoryRelationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EventHistoryRelationUpdateOne) check() error {
	if v, ok := _u.mutation.RelationType(); ok {
		if err := eventhistoryrelation.RelationTypeValidator(v); err != nil {
			return &ValidationError{Name: "relation_type", err: fmt.Errorf(`ent: validator failed for field "EventHistoryRelation.relation_type": %w`, err)}
		}
	}
	return nil
}

func (_u *EventHistoryRelationUpdateOne) sqlSave(ctx context.Context) (_node *EventHistoryRelation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(eventhistoryrelation.Table, eventhistoryrelation.Columns, sqlgraph.NewFieldSpec(eventhistoryrelation.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EventHistoryRelation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, eventhistoryrelation.FieldID)
		for _, f := range fields {
			if !eventhistoryrelation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != eventhistoryrelation.FieldID {
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
	if value, ok := _u.mutation.ParentEventID(); ok {
		_spec.SetField(eventhistoryrelation.FieldParentEventID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedParentEventID(); ok {
		_spec.AddField(eventhistoryrelation.FieldParentEventID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ChildEventID(); ok {
		_spec.SetField(eventhistoryrelation.FieldChildEventID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChildEventID(); ok {
		_spec.AddField(eventhistoryrelation.FieldChildEventID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RelationType(); ok {
		_spec.SetField(eventhistoryrelation.FieldRelationType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(eventhistoryrelation.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(eventhistoryrelation.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(eventhistoryrelation.FieldDescription, field.TypeString, value)
	}
	_node = &EventHistoryRelation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{eventhistoryrelation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
