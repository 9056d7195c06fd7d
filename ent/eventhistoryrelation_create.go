// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/newsflow/hotaggr/ent/eventhistoryrelation"
)

// EventHistoryRelationCreate is the builder for creating a EventHistoryRelation entity.
type EventHistoryRelationCreate struct {
	config
	mutation *EventHistoryRelationMutation
	hooks    []Hook
}

// SetParentEventID sets the "parent_event_id" field.
func (_c *EventHistoryRelationCreate) SetParentEventID(v int) *EventHistoryRelationCreate {
	_c.mutation.SetParentEventID(v)
	return _c
}

// SetChildEventID sets the "child_event_id" field.
func (_c *EventHistoryRelationCreate) SetChildEventID(v int) *EventHistoryRelationCreate {
	_c.mutation.SetChildEventID(v)
	return _c
}

// SetRelationType sets the "relation_type" field.
func (_c *EventHistoryRelationCreate) SetRelationType(v eventhistoryrelation.RelationType) *EventHistoryRelationCreate {
	_c.mutation.SetRelationType(v)
	return _c
}

// SetConfidenceScore sets the "confidence_score" field.
func (_c *EventHistoryRelationCreate) SetConfidenceScore(v float64) *EventHistoryRelationCreate {
	_c.mutation.SetConfidenceScore(v)
	return _c
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_c *EventHistoryRelationCreate) SetNillableConfidenceScore(v *float64) *EventHistoryRelationCreate {
	if v != nil {
		_c.SetConfidenceScore(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *EventHistoryRelationCreate) SetDescription(v string) *EventHistoryRelationCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *EventHistoryRelationCreate) SetNillableDescription(v *string) *EventHistoryRelationCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EventHistoryRelationCreate) SetCreatedAt(v time.Time) *EventHistoryRelationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EventHistoryRelationCreate) SetNillableCreatedAt(v *time.Time) *EventHistoryRelationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the EventHistoryRelationMutation object of the builder.
func (_c *EventHistoryRelationCreate) Mutation() *EventHistoryRelationMutation {
	return _c.mutation
}

// Save creates the EventHistoryRelation in the database.
func (_c *EventHistoryRelationCreate) Save(ctx context.Context) (*EventHistoryRelation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EventHistoryRelationCreate) SaveX(ctx context.Context) *EventHistoryRelation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EventHistoryRelationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EventHistoryRelationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EventHistoryRelationCreate) defaults() {
	if _, ok := _c.mutation.ConfidenceScore(); !ok {
		v := eventhistoryrelation.DefaultConfidenceScore
		_c.mutation.SetConfidenceScore(v)
	}
	if _, ok := _c.mutation.Description(); !ok {
		v := eventhistoryrelation.DefaultDescription
		_c.mutation.SetDescription(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := eventhistoryrelation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EventHistoryRelationCreate) check() error {
	if _, ok := _c.mutation.ParentEventID(); !ok {
		return &ValidationError{Name: "parent_event_id", err: errors.New(`ent: missing required field "EventHistoryRelation.parent_event_id"`)}
	}
	if _, ok := _c.mutation.ChildEventID(); !ok {
		return &ValidationError{Name: "child_event_id", err: errors.New(`ent: missing required field "EventHistoryRelation.child_event_id"`)}
	}
	if _, ok := _c.mutation.RelationType(); !ok {
		return &ValidationError{Name: "relation_type", err: errors.New(`ent: missing required field "EventHistoryRelation.relation_type"`)}
	}
	if v, ok := _c.mutation.RelationType(); ok {
		if err := eventhistoryrelation.RelationTypeValidator(v); err != nil {
			return &ValidationError{Name: "relation_type", err: fmt.Errorf(`ent: validator failed for field "EventHistoryRelation.relation_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConfidenceScore(); !ok {
		return &ValidationError{Name: "confidence_score", err: errors.New(`ent: missing required field "EventHistoryRelation.confidence_score"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "EventHistoryRelation.description"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "EventHistoryRelation.created_at"`)}
	}
	return nil
}

func (_c *EventHistoryRelationCreate) sqlSave(ctx context.Context) (*EventHistoryRelation, error) {
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

func (_c *EventHistoryRelationCreate) createSpec() (*EventHistoryRelation, *sqlgraph.CreateSpec) {
	var (
		_node = &EventHistoryRelation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(eventhistoryrelation.Table, sqlgraph.NewFieldSpec(eventhistoryrelation.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ParentEventID(); ok {
		_spec.SetField(eventhistoryrelation.FieldParentEventID, field.TypeInt, value)
		_node.ParentEventID = value
	}
	if value, ok := _c.mutation.ChildEventID(); ok {
		_spec.SetField(eventhistoryrelation.FieldChildEventID, field.TypeInt, value)
		_node.ChildEventID = value
	}
	if value, ok := _c.mutation.RelationType(); ok {
		_spec.SetField(eventhistoryrelation.FieldRelationType, field.TypeEnum, value)
		_node.RelationType = value
	}
	if value, ok := _c.mutation.ConfidenceScore(); ok {
		_spec.SetField(eventhistoryrelation.FieldConfidenceScore, field.TypeFloat64, value)
		_node.ConfidenceScore = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(eventhistoryrelation.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(eventhistoryrelation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// EventHistoryRelationCreateBulk is the builder for creating many EventHistoryRelation entities in bulk.
type EventHistoryRelationCreateBulk struct {
	config
	err      error
	builders []*EventHistoryRelationCreate
}

// Save creates the EventHistoryRelation entities in the database.
func (_c *EventHistoryRelationCreateBulk) Save(ctx context.Context) ([]*EventHistoryRelation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EventHistoryRelation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EventHistoryRelationMutation)
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
func (_c *EventHistoryRelationCreateBulk) SaveX(ctx context.Context) []*EventHistoryRelation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EventHistoryRelationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EventHistoryRelationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
