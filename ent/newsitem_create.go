// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/newsflow/hotaggr/ent/newsitem"
)

// NewsItemCreate is the builder for creating a NewsItem entity.
type NewsItemCreate struct {
	config
	mutation *NewsItemMutation
	hooks    []Hook
}

// SetSourceType sets the "source_type" field.
func (_c *NewsItemCreate) SetSourceType(v string) *NewsItemCreate {
	_c.mutation.SetSourceType(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *NewsItemCreate) SetTitle(v string) *NewsItemCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetBody sets the "body" field.
func (_c *NewsItemCreate) SetBody(v string) *NewsItemCreate {
	_c.mutation.SetBody(v)
	return _c
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_c *NewsItemCreate) SetNillableBody(v *string) *NewsItemCreate {
	if v != nil {
		_c.SetBody(*v)
	}
	return _c
}

// SetCityName sets the "city_name" field.
func (_c *NewsItemCreate) SetCityName(v string) *NewsItemCreate {
	_c.mutation.SetCityName(v)
	return _c
}

// SetNillableCityName sets the "city_name" field if the given value is not nil.
func (_c *NewsItemCreate) SetNillableCityName(v *string) *NewsItemCreate {
	if v != nil {
		_c.SetCityName(*v)
	}
	return _c
}

// SetFirstSeenAt sets the "first_seen_at" field.
func (_c *NewsItemCreate) SetFirstSeenAt(v time.Time) *NewsItemCreate {
	_c.mutation.SetFirstSeenAt(v)
	return _c
}

// SetNillableFirstSeenAt sets the "first_seen_at" field if the given value is not nil.
func (_c *NewsItemCreate) SetNillableFirstSeenAt(v *time.Time) *NewsItemCreate {
	if v != nil {
		_c.SetFirstSeenAt(*v)
	}
	return _c
}

// SetURL sets the "url" field.
func (_c *NewsItemCreate) SetURL(v string) *NewsItemCreate {
	_c.mutation.SetURL(v)
	return _c
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_c *NewsItemCreate) SetNillableURL(v *string) *NewsItemCreate {
	if v != nil {
		_c.SetURL(*v)
	}
	return _c
}

// Mutation returns the NewsItemMutation object of the builder.
func (_c *NewsItemCreate) Mutation() *NewsItemMutation {
	return _c.mutation
}

// Save creates the NewsItem in the database.
func (_c *NewsItemCreate) Save(ctx context.Context) (*NewsItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *NewsItemCreate) SaveX(ctx context.Context) *NewsItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NewsItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NewsItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *NewsItemCreate) defaults() {
	if _, ok := _c.mutation.Body(); !ok {
		v := newsitem.DefaultBody
		_c.mutation.SetBody(v)
	}
	if _, ok := _c.mutation.CityName(); !ok {
		v := newsitem.DefaultCityName
		_c.mutation.SetCityName(v)
	}
	if _, ok := _c.mutation.FirstSeenAt(); !ok {
		v := newsitem.DefaultFirstSeenAt()
		_c.mutation.SetFirstSeenAt(v)
	}
	if _, ok := _c.mutation.URL(); !ok {
		v := newsitem.DefaultURL
		_c.mutation.SetURL(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *NewsItemCreate) check() error {
	if _, ok := _c.mutation.SourceType(); !ok {
		return &ValidationError{Name: "source_type", err: errors.New(`ent: missing required field "NewsItem.source_type"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "NewsItem.title"`)}
	}
	if _, ok := _c.mutation.Body(); !ok {
		return &ValidationError{Name: "body", err: errors.New(`ent: missing required field "NewsItem.body"`)}
	}
	if _, ok := _c.mutation.CityName(); !ok {
		return &ValidationError{Name: "city_name", err: errors.New(`ent: missing required field "NewsItem.city_name"`)}
	}
	if _, ok := _c.mutation.FirstSeenAt(); !ok {
		return &ValidationError{Name: "first_seen_at", err: errors.New(`ent: missing required field "NewsItem.first_seen_at"`)}
	}
	if _, ok := _c.mutation.URL(); !ok {
		return &ValidationError{Name: "url", err: errors.New(`ent: missing required field "NewsItem.url"`)}
	}
	return nil
}

func (_c *NewsItemCreate) sqlSave(ctx context.Context) (*NewsItem, error) {
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

func (_c *NewsItemCreate) createSpec() (*NewsItem, *sqlgraph.CreateSpec) {
	var (
		_node = &NewsItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(newsitem.Table, sqlgraph.NewFieldSpec(newsitem.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SourceType(); ok {
		_spec.SetField(newsitem.FieldSourceType, field.TypeString, value)
		_node.SourceType = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(newsitem.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Body(); ok {
		_spec.SetField(newsitem.FieldBody, field.TypeString, value)
		_node.Body = value
	}
	if value, ok := _c.mutation.CityName(); ok {
		_spec.SetField(newsitem.FieldCityName, field.TypeString, value)
		_node.CityName = value
	}
	if value, ok := _c.mutation.FirstSeenAt(); ok {
		_spec.SetField(newsitem.FieldFirstSeenAt, field.TypeTime, value)
		_node.FirstSeenAt = value
	}
	if value, ok := _c.mutation.URL(); ok {
		_spec.SetField(newsitem.FieldURL, field.TypeString, value)
		_node.URL = value
	}
	return _node, _spec
}

// NewsItemCreateBulk is the builder for creating many NewsItem entities in bulk.
type NewsItemCreateBulk struct {
	config
	err      error
	builders []*NewsItemCreate
}

// Save creates the NewsItem entities in the database.
func (_c *NewsItemCreateBulk) Save(ctx context.Context) ([]*NewsItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*NewsItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*NewsItemMutation)
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
func (_c *NewsItemCreateBulk) SaveX(ctx context.Context) []*NewsItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NewsItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NewsItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
