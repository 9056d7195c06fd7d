// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/newsflow/hotaggr/ent/newseventrelation"
)

// NewsEventRelationCreate is the builder for creating a NewsEventRelation entity.
type NewsEventRelationCreate struct {
	config
	mutation *NewsEventRelationMutation
	hooks    []Hook
}

// SetNewsID sets the "news_id" field.
func (_c *NewsEventRelationCreate) SetNewsID(v int) *NewsEventRelationCreate {
	_c.mutation.SetNewsID(v)
	return _c
}

// SetEventID sets the "event_id" field.
func (_c *NewsEventRelationCreate) SetEventID(v int) *NewsEventRelationCreate {
	_c.mutation.SetEventID(v)
	return _c
}

// SetRelationType sets the "relation_type" field.
func (_c *NewsEventRelationCreate) SetRelationType(v newseventrelation.RelationType) *NewsEventRelationCreate {
	_c.mutation.SetRelationType(v)
	return _c
}

// SetConfidenceScore sets the "confidence_score" field.
func (_c *NewsEventRelationCreate) SetConfidenceScore(v float64) *NewsEventRelationCreate {
	_c.mutation.SetConfidenceScore(v)
	return _c
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_c *NewsEventRelationCreate) SetNillableConfidenceScore(v *float64) *NewsEventRelationCreate {
	if v != nil {
		_c.SetConfidenceScore(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *NewsEventRelationCreate) SetCreatedAt(v time.Time) *NewsEventRelationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *NewsEventRelationCreate) SetNillableCreatedAt(v *time.Time) *NewsEventRelationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the NewsEventRelationMutation object of the builder.
func (_c *NewsEventRelationCreate) Mutation() *NewsEventRelationMutation {
	return _c.mutation
}

// Save creates the NewsEventRelation in the database.
func (_c *NewsEventRelationCreate) Save(ctx context.Context) (*NewsEventRelation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *NewsEventRelationCreate) SaveX(ctx context.Context) *NewsEventRelation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NewsEventRelationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NewsEventRelationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *NewsEventRelationCreate) defaults() {
	if _, ok := _c.mutation.ConfidenceScore(); !ok {
		v := newseventrelation.DefaultConfidenceScore
		_c.mutation.SetConfidenceScore(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := newseventrelation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *NewsEventRelationCreate) check() error {
	if _, ok := _c.mutation.NewsID(); !ok {
		return &ValidationError{Name: "news_id", err: errors.New(`ent: missing required field "NewsEventRelation.news_id"`)}
	}
	if _, ok := _c.mutation.EventID(); !ok {
		return &ValidationError{Name: "event_id", err: errors.New(`ent: missing required field "NewsEventRelation.event_id"`)}
	}
	if _, ok := _c.mutation.RelationType(); !ok {
		return &ValidationError{Name: "relation_type", err: errors.New(`ent: missing required field "NewsEventRelation.relation_type"`)}
	}
	if v, ok := _c.mutation.RelationType(); ok {
		if err := newseventrelation.RelationTypeValidator(v); err != nil {
			return &ValidationError{Name: "relation_type", err: fmt.Errorf(`ent: validator failed for field "NewsEventRelation.relation_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConfidenceScore(); !ok {
		return &ValidationError{Name: "confidence_score", err: errors.New(`ent: missing required field "NewsEventRelation.confidence_score"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "NewsEventRelation.created_at"`)}
	}
	return nil
}

func (_c *NewsEventRelationCreate) sqlSave(ctx context.Context) (*NewsEventRelation, error) {
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

func (_c *NewsEventRelationCreate) createSpec() (*NewsEventRelation, *sqlgraph.CreateSpec) {
	var (
		_node = &NewsEventRelation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(newseventrelation.Table, sqlgraph.NewFieldSpec(newseventrelation.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.NewsID(); ok {
		_spec.SetField(newseventrelation.FieldNewsID, field.TypeInt, value)
		_node.NewsID = value
	}
	if value, ok := _c.mutation.EventID(); ok {
		_spec.SetField(newseventrelation.FieldEventID, field.TypeInt, value)
		_node.EventID = value
	}
	if value, ok := _c.mutation.RelationType(); ok {
		_spec.SetField(newseventrelation.FieldRelationType, field.TypeEnum, value)
		_node.RelationType = value
	}
	if value, ok := _c.mutation.ConfidenceScore(); ok {
		_spec.SetField(newseventrelation.FieldConfidenceScore, field.TypeFloat64, value)
		_node.ConfidenceScore = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(newseventrelation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// NewsEventRelationCreateBulk is the builder for creating many NewsEventRelation entities in bulk.
type NewsEventRelationCreateBulk struct {
	config
	err      error
	builders []*NewsEventRelationCreate
}

// Save creates the NewsEventRelation entities in the database.
func (_c *NewsEventRelationCreateBulk) Save(ctx context.Context) ([]*NewsEventRelation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*NewsEventRelation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*NewsEventRelationMutation)
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
func (_c *NewsEventRelationCreateBulk) SaveX(ctx context.Context) []*NewsEventRelation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NewsEventRelationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NewsEventRelationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
