// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/newsflow/hotaggr/ent/newseventrelation"
	"github.com/newsflow/hotaggr/ent/predicate"
)

// NewsEventRelationUpdate is the builder for updating NewsEventRelation entities.
type NewsEventRelationUpdate struct {
	config
	hooks    []Hook
	mutation *NewsEventRelationMutation
}

// Where appends a list predicates to the NewsEventRelationUpdate builder.
func (_u *NewsEventRelationUpdate) Where(ps ...predicate.NewsEventRelation) *NewsEventRelationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetNewsID sets the "news_id" field.
func (_u *NewsEventRelationUpdate) SetNewsID(v int) *NewsEventRelationUpdate {
	_u.mutation.ResetNewsID()
	_u.mutation.SetNewsID(v)
	return _u
}

// SetNillableNewsID sets the "news_id" field if the given value is not nil.
func (_u *NewsEventRelationUpdate) SetNillableNewsID(v *int) *NewsEventRelationUpdate {
	if v != nil {
		_u.SetNewsID(*v)
	}
	return _u
}

// AddNewsID adds value to the "news_id" field.
func (_u *NewsEventRelationUpdate) AddNewsID(v int) *NewsEventRelationUpdate {
	_u.mutation.AddNewsID(v)
	return _u
}

// SetEventID sets the "event_id" field.
func (_u *NewsEventRelationUpdate) SetEventID(v int) *NewsEventRelationUpdate {
	_u.mutation.ResetEventID()
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *NewsEventRelationUpdate) SetNillableEventID(v *int) *NewsEventRelationUpdate {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// AddEventID adds value to the "event_id" field.
func (_u *NewsEventRelationUpdate) AddEventID(v int) *NewsEventRelationUpdate {
	_u.mutation.AddEventID(v)
	return _u
}

// SetRelationType sets the "relation_type" field.
func (_u *NewsEventRelationUpdate) SetRelationType(v newseventrelation.RelationType) *NewsEventRelationUpdate {
	_u.mutation.SetRelationType(v)
	return _u
}

// SetNillableRelationType sets the "relation_type" field if the given value is not nil.
func (_u *NewsEventRelationUpdate) SetNillableRelationType(v *newseventrelation.RelationType) *NewsEventRelationUpdate {
	if v != nil {
		_u.SetRelationType(*v)
	}
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *NewsEventRelationUpdate) SetConfidenceScore(v float64) *NewsEventRelationUpdate {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *NewsEventRelationUpdate) SetNillableConfidenceScore(v *float64) *NewsEventRelationUpdate {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *NewsEventRelationUpdate) AddConfidenceScore(v float64) *NewsEventRelationUpdate {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// Mutation returns the NewsEventRelationMutation object of the builder.
func (_u *NewsEventRelationUpdate) Mutation() *NewsEventRelationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *NewsEventRelationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NewsEventRelationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *NewsEventRelationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NewsEventRelationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NewsEventRelationUpdate) check() error {
	if v, ok := _u.mutation.RelationType(); ok {
		if err := newseventrelation.RelationTypeValidator(v); err != nil {
			return &ValidationError{Name: "relation_type", err: fmt.Errorf(`ent: validator failed for field "NewsEventRelation.relation_type": %w`, err)}
		}
	}
	return nil
}

func (_u *NewsEventRelationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(newseventrelation.Table, newseventrelation.Columns, sqlgraph.NewFieldSpec(newseventrelation.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.NewsID(); ok {
		_spec.SetField(newseventrelation.FieldNewsID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNewsID(); ok {
		_spec.AddField(newseventrelation.FieldNewsID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EventID(); ok {
		_spec.SetField(newseventrelation.FieldEventID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEventID(); ok {
		_spec.AddField(newseventrelation.FieldEventID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RelationType(); ok {
		_spec.SetField(newseventrelation.FieldRelationType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(newseventrelation.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(newseventrelation.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{newseventrelation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// NewsEventRelationUpdateOne is the builder for updating a single NewsEventRelation entity.
type NewsEventRelationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *NewsEventRelationMutation
}

// SetNewsID sets the "news_id" field.
func (_u *NewsEventRelationUpdateOne) SetNewsID(v int) *NewsEventRelationUpdateOne {
	_u.mutation.ResetNewsID()
	_u.mutation.SetNewsID(v)
	return _u
}

// SetNillableNewsID sets the "news_id" field if the given value is not nil.
func (_u *NewsEventRelationUpdateOne) SetNillableNewsID(v *int) *NewsEventRelationUpdateOne {
	if v != nil {
		_u.SetNewsID(*v)
	}
	return _u
}

// AddNewsID adds value to the "news_id" field.
func (_u *NewsEventRelationUpdateOne) AddNewsID(v int) *NewsEventRelationUpdateOne {
	_u.mutation.AddNewsID(v)
	return _u
}

// SetEventID sets the "event_id" field.
func (_u *NewsEventRelationUpdateOne) SetEventID(v int) *NewsEventRelationUpdateOne {
	_u.mutation.ResetEventID()
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *NewsEventRelationUpdateOne) SetNillableEventID(v *int) *NewsEventRelationUpdateOne {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// AddEventID adds value to the "event_id" field.
func (_u *NewsEventRelationUpdateOne) AddEventID(v int) *NewsEventRelationUpdateOne {
	_u.mutation.AddEventID(v)
	return _u
}

// SetRelationType sets the "relation_type" field.
func (_u *NewsEventRelationUpdateOne) SetRelationType(v newseventrelation.RelationType) *NewsEventRelationUpdateOne {
	_u.mutation.SetRelationType(v)
	return _u
}

// SetNillableRelationType sets the "relation_type" field if the given value is not nil.
func (_u *NewsEventRelationUpdateOne) SetNillableRelationType(v *newseventrelation.RelationType) *NewsEventRelationUpdateOne {
	if v != nil {
		_u.SetRelationType(*v)
	}
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *NewsEventRelationUpdateOne) SetConfidenceScore(v float64) *NewsEventRelationUpdateOne {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *NewsEventRelationUpdateOne) SetNillableConfidenceScore(v *float64) *NewsEventRelationUpdateOne {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *NewsEventRelationUpdateOne) AddConfidenceScore(v float64) *NewsEventRelationUpdateOne {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// Mutation returns the NewsEventRelationMutation object of the builder.
func (_u *NewsEventRelationUpdateOne) Mutation() *NewsEventRelationMutation {
	return _u.mutation
}

// Where appends a list predicates to the NewsEventRelationUpdate builder.
func (_u *NewsEventRelationUpdateOne) Where(ps ...predicate.NewsEventRelation) *NewsEventRelationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *NewsEventRelationUpdateOne) Select(field string, fields ...string) *NewsEventRelationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated NewsEventRelation entity.
func (_u *NewsEventRelationUpdateOne) Save(ctx context.Context) (*NewsEventRelation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NewsEventRelationUpdateOne) SaveX(ctx context.Context) *NewsEventRelation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *NewsEventRelationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NewsEventRelationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NewsEventRelationUpdateOne) check() error {
	if v, ok := _u.mutation.RelationType(); ok {
		if err := newseventrelation.RelationTypeValidator(v); err != nil {
			return &ValidationError{Name: "relation_type", err: fmt.Errorf(`ent: validator failed for field "NewsEventRelation.relation_type": %w`, err)}
		}
	}
	return nil
}

func (_u *NewsEventRelationUpdateOne) sqlSave(ctx context.Context) (_node *NewsEventRelation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(newseventrelation.Table, newseventrelation.Columns, sqlgraph.NewFieldSpec(newseventrelation.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "NewsEventRelation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, newseventrelation.FieldID)
		for _, f := range fields {
			if !newseventrelation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != newseventrelation.FieldID {
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
	if value, ok := _u.mutation.NewsID(); ok {
		_spec.SetField(newseventrelation.FieldNewsID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNewsID(); ok {
		_spec.AddField(newseventrelation.FieldNewsID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EventID(); ok {
		_spec.SetField(newseventrelation.FieldEventID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEventID(); ok {
		_spec.AddField(newseventrelation.FieldEventID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RelationType(); ok {
		_spec.SetField(newseventrelation.FieldRelationType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(newseventrelation.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(newseventrelation.FieldConfidenceScore, field.TypeFloat64, value)
	}
	_node = &NewsEventRelation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{newseventrelation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
