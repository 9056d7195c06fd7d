// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/newsflow/hotaggr/ent/event"
)

// EventCreate is the builder for creating a Event entity.
type EventCreate struct {
	config
	mutation *EventMutation
	hooks    []Hook
}

// SetTitle sets the "title" field.
func (_c *EventCreate) SetTitle(v string) *EventCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *EventCreate) SetDescription(v string) *EventCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *EventCreate) SetNillableDescription(v *string) *EventCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetEventType sets the "event_type" field.
func (_c *EventCreate) SetEventType(v string) *EventCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_c *EventCreate) SetNillableEventType(v *string) *EventCreate {
	if v != nil {
		_c.SetEventType(*v)
	}
	return _c
}

// SetSentiment sets the "sentiment" field.
func (_c *EventCreate) SetSentiment(v event.Sentiment) *EventCreate {
	_c.mutation.SetSentiment(v)
	return _c
}

// SetNillableSentiment sets the "sentiment" field if the given value is not nil.
func (_c *EventCreate) SetNillableSentiment(v *event.Sentiment) *EventCreate {
	if v != nil {
		_c.SetSentiment(*v)
	}
	return _c
}

// SetEntities sets the "entities" field.
func (_c *EventCreate) SetEntities(v string) *EventCreate {
	_c.mutation.SetEntities(v)
	return _c
}

// SetNillableEntities sets the "entities" field if the given value is not nil.
func (_c *EventCreate) SetNillableEntities(v *string) *EventCreate {
	if v != nil {
		_c.SetEntities(*v)
	}
	return _c
}

// SetRegions sets the "regions" field.
func (_c *EventCreate) SetRegions(v string) *EventCreate {
	_c.mutation.SetRegions(v)
	return _c
}

// SetNillableRegions sets the "regions" field if the given value is not nil.
func (_c *EventCreate) SetNillableRegions(v *string) *EventCreate {
	if v != nil {
		_c.SetRegions(*v)
	}
	return _c
}

// SetKeywords sets the "keywords" field.
func (_c *EventCreate) SetKeywords(v string) *EventCreate {
	_c.mutation.SetKeywords(v)
	return _c
}

// SetNillableKeywords sets the "keywords" field if the given value is not nil.
func (_c *EventCreate) SetNillableKeywords(v *string) *EventCreate {
	if v != nil {
		_c.SetKeywords(*v)
	}
	return _c
}

// SetConfidenceScore sets the "confidence_score" field.
func (_c *EventCreate) SetConfidenceScore(v float64) *EventCreate {
	_c.mutation.SetConfidenceScore(v)
	return _c
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_c *EventCreate) SetNillableConfidenceScore(v *float64) *EventCreate {
	if v != nil {
		_c.SetConfidenceScore(*v)
	}
	return _c
}

// SetNewsCount sets the "news_count" field.
func (_c *EventCreate) SetNewsCount(v int) *EventCreate {
	_c.mutation.SetNewsCount(v)
	return _c
}

// SetNillableNewsCount sets the "news_count" field if the given value is not nil.
func (_c *EventCreate) SetNillableNewsCount(v *int) *EventCreate {
	if v != nil {
		_c.SetNewsCount(*v)
	}
	return _c
}

// SetFirstNewsTime sets the "first_news_time" field.
func (_c *EventCreate) SetFirstNewsTime(v time.Time) *EventCreate {
	_c.mutation.SetFirstNewsTime(v)
	return _c
}

// SetNillableFirstNewsTime sets the "first_news_time" field if the given value is not nil.
func (_c *EventCreate) SetNillableFirstNewsTime(v *time.Time) *EventCreate {
	if v != nil {
		_c.SetFirstNewsTime(*v)
	}
	return _c
}

// SetLastNewsTime sets the "last_news_time" field.
func (_c *EventCreate) SetLastNewsTime(v time.Time) *EventCreate {
	_c.mutation.SetLastNewsTime(v)
	return _c
}

// SetNillableLastNewsTime sets the "last_news_time" field if the given value is not nil.
func (_c *EventCreate) SetNillableLastNewsTime(v *time.Time) *EventCreate {
	if v != nil {
		_c.SetLastNewsTime(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *EventCreate) SetStatus(v int8) *EventCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *EventCreate) SetNillableStatus(v *int8) *EventCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EventCreate) SetCreatedAt(v time.Time) *EventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EventCreate) SetNillableCreatedAt(v *time.Time) *EventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *EventCreate) SetUpdatedAt(v time.Time) *EventCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *EventCreate) SetNillableUpdatedAt(v *time.Time) *EventCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the EventMutation object of the builder.
func (_c *EventCreate) Mutation() *EventMutation {
	return _c.mutation
}

// Save creates the Event in the database.
func (_c *EventCreate) Save(ctx context.Context) (*Event, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EventCreate) SaveX(ctx context.Context) *Event {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EventCreate) defaults() {
	if _, ok := _c.mutation.Description(); !ok {
		v := event.DefaultDescription
		_c.mutation.SetDescription(v)
	}
	if _, ok := _c.mutation.EventType(); !ok {
		v := event.DefaultEventType
		_c.mutation.SetEventType(v)
	}
	if _, ok := _c.mutation.Sentiment(); !ok {
		v := event.DefaultSentiment
		_c.mutation.SetSentiment(v)
	}
	if _, ok := _c.mutation.Entities(); !ok {
		v := event.DefaultEntities
		_c.mutation.SetEntities(v)
	}
	if _, ok := _c.mutation.Regions(); !ok {
		v := event.DefaultRegions
		_c.mutation.SetRegions(v)
	}
	if _, ok := _c.mutation.Keywords(); !ok {
		v := event.DefaultKeywords
		_c.mutation.SetKeywords(v)
	}
	if _, ok := _c.mutation.ConfidenceScore(); !ok {
		v := event.DefaultConfidenceScore
		_c.mutation.SetConfidenceScore(v)
	}
	if _, ok := _c.mutation.NewsCount(); !ok {
		v := event.DefaultNewsCount
		_c.mutation.SetNewsCount(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := event.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := event.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := event.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EventCreate) check() error {
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Event.title"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Event.description"`)}
	}
	if _, ok := _c.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`ent: missing required field "Event.event_type"`)}
	}
	if _, ok := _c.mutation.Sentiment(); !ok {
		return &ValidationError{Name: "sentiment", err: errors.New(`ent: missing required field "Event.sentiment"`)}
	}
	if v, ok := _c.mutation.Sentiment(); ok {
		if err := event.SentimentValidator(v); err != nil {
			return &ValidationError{Name: "sentiment", err: fmt.Errorf(`ent: validator failed for field "Event.sentiment": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Entities(); !ok {
		return &ValidationError{Name: "entities", err: errors.New(`ent: missing required field "Event.entities"`)}
	}
	if _, ok := _c.mutation.Regions(); !ok {
		return &ValidationError{Name: "regions", err: errors.New(`ent: missing required field "Event.regions"`)}
	}
	if _, ok := _c.mutation.Keywords(); !ok {
		return &ValidationError{Name: "keywords", err: errors.New(`ent: missing required field "Event.keywords"`)}
	}
	if _, ok := _c.mutation.ConfidenceScore(); !ok {
		return &ValidationError{Name: "confidence_score", err: errors.New(`ent: missing required field "Event.confidence_score"`)}
	}
	if _, ok := _c.mutation.NewsCount(); !ok {
		return &ValidationError{Name: "news_count", err: errors.New(`ent: missing required field "Event.news_count"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Event.status"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Event.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Event.updated_at"`)}
	}
	return nil
}

func (_c *EventCreate) sqlSave(ctx context.Context) (*Event, error) {
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

func (_c *EventCreate) createSpec() (*Event, *sqlgraph.CreateSpec) {
	var (
		_node = &Event{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(event.Table, sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(event.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(event.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(event.FieldEventType, field.TypeString, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.Sentiment(); ok {
		_spec.SetField(event.FieldSentiment, field.TypeEnum, value)
		_node.Sentiment = value
	}
	if value, ok := _c.mutation.Entities(); ok {
		_spec.SetField(event.FieldEntities, field.TypeString, value)
		_node.Entities = value
	}
	if value, ok := _c.mutation.Regions(); ok {
		_spec.SetField(event.FieldRegions, field.TypeString, value)
		_node.Regions = value
	}
	if value, ok := _c.mutation.Keywords(); ok {
		_spec.SetField(event.FieldKeywords, field.TypeString, value)
		_node.Keywords = value
	}
	if value, ok := _c.mutation.ConfidenceScore(); ok {
		_spec.SetField(event.FieldConfidenceScore, field.TypeFloat64, value)
		_node.ConfidenceScore = value
	}
	if value, ok := _c.mutation.NewsCount(); ok {
		_spec.SetField(event.FieldNewsCount, field.TypeInt, value)
		_node.NewsCount = value
	}
	if value, ok := _c.mutation.FirstNewsTime(); ok {
		_spec.SetField(event.FieldFirstNewsTime, field.TypeTime, value)
		_node.FirstNewsTime = &value
	}
	if value, ok := _c.mutation.LastNewsTime(); ok {
		_spec.SetField(event.FieldLastNewsTime, field.TypeTime, value)
		_node.LastNewsTime = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(event.FieldStatus, field.TypeInt8, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(event.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(event.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// EventCreateBulk is the builder for creating many Event entities in bulk.
type EventCreateBulk struct {
	config
	err      error
	builders []*EventCreate
}

// Save creates the Event entities in the database.
func (_c *EventCreateBulk) Save(ctx context.Context) ([]*Event, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Event, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EventMutation)
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
func (_c *EventCreateBulk) SaveX(ctx context.Context) []*Event {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
