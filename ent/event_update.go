// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/newsflow/hotaggr/ent/event"
	"github.com/newsflow/hotaggr/ent/predicate"
)

// EventUpdate is the builder for updating Event entities.
type EventUpdate struct {
	config
	hooks    []Hook
	mutation *EventMutation
}

// Where appends a list predicates to the EventUpdate builder.
func (_u *EventUpdate) Where(ps ...predicate.Event) *EventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *EventUpdate) SetTitle(v string) *EventUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *EventUpdate) SetNillableTitle(v *string) *EventUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *EventUpdate) SetDescription(v string) *EventUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *EventUpdate) SetNillableDescription(v *string) *EventUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *EventUpdate) SetEventType(v string) *EventUpdate {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *EventUpdate) SetNillableEventType(v *string) *EventUpdate {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetSentiment sets the "sentiment" field.
func (_u *EventUpdate) SetSentiment(v event.Sentiment) *EventUpdate {
	_u.mutation.SetSentiment(v)
	return _u
}

// SetNillableSentiment sets the "sentiment" field if the given value is not nil.
func (_u *EventUpdate) SetNillableSentiment(v *event.Sentiment) *EventUpdate {
	if v != nil {
		_u.SetSentiment(*v)
	}
	return _u
}

// SetEntities sets the "entities" field.
func (_u *EventUpdate) SetEntities(v string) *EventUpdate {
	_u.mutation.SetEntities(v)
	return _u
}

// SetNillableEntities sets the "entities" field if the given value is not nil.
func (_u *EventUpdate) SetNillableEntities(v *string) *EventUpdate {
	if v != nil {
		_u.SetEntities(*v)
	}
	return _u
}

// SetRegions sets the "regions" field.
func (_u *EventUpdate) SetRegions(v string) *EventUpdate {
	_u.mutation.SetRegions(v)
	return _u
}

// SetNillableRegions sets the "regions" field if the given value is not nil.
func (_u *EventUpdate) SetNillableRegions(v *string) *EventUpdate {
	if v != nil {
		_u.SetRegions(*v)
	}
	return _u
}

// SetKeywords sets the "keywords" field.
func (_u *EventUpdate) SetKeywords(v string) *EventUpdate {
	_u.mutation.SetKeywords(v)
	return _u
}

// SetNillableKeywords sets the "keywords" field if the given value is not nil.
func (_u *EventUpdate) SetNillableKeywords(v *string) *EventUpdate {
	if v != nil {
		_u.SetKeywords(*v)
	}
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *EventUpdate) SetConfidenceScore(v float64) *EventUpdate {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *EventUpdate) SetNillableConfidenceScore(v *float64) *EventUpdate {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *EventUpdate) AddConfidenceScore(v float64) *EventUpdate {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// SetNewsCount sets the "news_count" field.
func (_u *EventUpdate) SetNewsCount(v int) *EventUpdate {
	_u.mutation.ResetNewsCount()
	_u.mutation.SetNewsCount(v)
	return _u
}

// SetNillableNewsCount sets the "news_count" field if the given value is not nil.
func (_u *EventUpdate) SetNillableNewsCount(v *int) *EventUpdate {
	if v != nil {
		_u.SetNewsCount(*v)
	}
	return _u
}

// AddNewsCount adds value to the "news_count" field.
func (_u *EventUpdate) AddNewsCount(v int) *EventUpdate {
	_u.mutation.AddNewsCount(v)
	return _u
}

// SetFirstNewsTime sets the "first_news_time" field.
func (_u *EventUpdate) SetFirstNewsTime(v time.Time) *EventUpdate {
	_u.mutation.SetFirstNewsTime(v)
	return _u
}

// SetNillableFirstNewsTime sets the "first_news_time" field if the given value is not nil.
func (_u *EventUpdate) SetNillableFirstNewsTime(v *time.Time) *EventUpdate {
	if v != nil {
		_u.SetFirstNewsTime(*v)
	}
	return _u
}

// ClearFirstNewsTime clears the value of the "first_news_time" field.
func (_u *EventUpdate) ClearFirstNewsTime() *EventUpdate {
	_u.mutation.ClearFirstNewsTime()
	return _u
}

// SetLastNewsTime sets the "last_news_time" field.
func (_u *EventUpdate) SetLastNewsTime(v time.Time) *EventUpdate {
	_u.mutation.SetLastNewsTime(v)
	return _u
}

// SetNillableLastNewsTime sets the "last_news_time" field if the given value is not nil.
func (_u *EventUpdate) SetNillableLastNewsTime(v *time.Time) *EventUpdate {
	if v != nil {
		_u.SetLastNewsTime(*v)
	}
	return _u
}

// ClearLastNewsTime clears the value of the "last_news_time" field.
func (_u *EventUpdate) ClearLastNewsTime() *EventUpdate {
	_u.mutation.ClearLastNewsTime()
	return _u
}

// SetStatus sets the "status" field.
func (_u *EventUpdate) SetStatus(v int8) *EventUpdate {
	_u.mutation.ResetStatus()
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EventUpdate) SetNillableStatus(v *int8) *EventUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// AddStatus adds value to the "status" field.
func (_u *EventUpdate) AddStatus(v int8) *EventUpdate {
	_u.mutation.AddStatus(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EventUpdate) SetUpdatedAt(v time.Time) *EventUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the EventMutation object of the builder.
func (_u *EventUpdate) Mutation() *EventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EventUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EventUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := event.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EventUpdate) check() error {
	if v, ok := _u.mutation.Sentiment(); ok {
		if err := event.SentimentValidator(v); err != nil {
			return &ValidationError{Name: "sentiment", err: fmt.Errorf(`ent: validator failed for field "Event.sentiment": %w`, err)}
		}
	}
	return nil
}

func (_u *EventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(event.Table, event.Columns, sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(event.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(event.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(event.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Sentiment(); ok {
		_spec.SetField(event.FieldSentiment, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Entities(); ok {
		_spec.SetField(event.FieldEntities, field.TypeString, value)
	}
	if value, ok := _u.mutation.Regions(); ok {
		_spec.SetField(event.FieldRegions, field.TypeString, value)
	}
	if value, ok := _u.mutation.Keywords(); ok {
		_spec.SetField(event.FieldKeywords, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(event.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(event.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.NewsCount(); ok {
		_spec.SetField(event.FieldNewsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNewsCount(); ok {
		_spec.AddField(event.FieldNewsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FirstNewsTime(); ok {
		_spec.SetField(event.FieldFirstNewsTime, field.TypeTime, value)
	}
	if _u.mutation.FirstNewsTimeCleared() {
		_spec.ClearField(event.FieldFirstNewsTime, field.TypeTime)
	}
	if value, ok := _u.mutation.LastNewsTime(); ok {
		_spec.SetField(event.FieldLastNewsTime, field.TypeTime, value)
	}
	if _u.mutation.LastNewsTimeCleared() {
		_spec.ClearField(event.FieldLastNewsTime, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(event.FieldStatus, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.AddedStatus(); ok {
		_spec.AddField(event.FieldStatus, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(event.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{event.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EventUpdateOne is the builder for updating a single Event entity.
type EventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EventMutation
}

// SetTitle sets the "title" field.
func (_u *EventUpdateOne) SetTitle(v string) *EventUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableTitle(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *EventUpdateOne) SetDescription(v string) *EventUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableDescription(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *EventUpdateOne) SetEventType(v string) *EventUpdateOne {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableEventType(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetSentiment sets the "sentiment" field.
func (_u *EventUpdateOne) SetSentiment(v event.Sentiment) *EventUpdateOne {
	_u.mutation.SetSentiment(v)
	return _u
}

// SetNillableSentiment sets the "sentiment" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableSentiment(v *event.Sentiment) *EventUpdateOne {
	if v != nil {
		_u.SetSentiment(*v)
	}
	return _u
}

// SetEntities sets the "entities" field.
func (_u *EventUpdateOne) SetEntities(v string) *EventUpdateOne {
	_u.mutation.SetEntities(v)
	return _u
}

// SetNillableEntities sets the "entities" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableEntities(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetEntities(*v)
	}
	return _u
}

// SetRegions sets the "regions" field.
func (_u *EventUpdateOne) SetRegions(v string) *EventUpdateOne {
	_u.mutation.SetRegions(v)
	return _u
}

// SetNillableRegions sets the "regions" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableRegions(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetRegions(*v)
	}
	return _u
}

// SetKeywords sets the "keywords" field.
func (_u *EventUpdateOne) SetKeywords(v string) *EventUpdateOne {
	_u.mutation.SetKeywords(v)
	return _u
}

// SetNillableKeywords sets the "keywords" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableKeywords(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetKeywords(*v)
	}
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *EventUpdateOne) SetConfidenceScore(v float64) *EventUpdateOne {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableConfidenceScore(v *float64) *EventUpdateOne {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *EventUpdateOne) AddConfidenceScore(v float64) *EventUpdateOne {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// SetNewsCount sets the "news_count" field.
func (_u *EventUpdateOne) SetNewsCount(v int) *EventUpdateOne {
	_u.mutation.ResetNewsCount()
	_u.mutation.SetNewsCount(v)
	return _u
}

// SetNillableNewsCount sets the "news_count" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableNewsCount(v *int) *EventUpdateOne {
	if v != nil {
		_u.SetNewsCount(*v)
	}
	return _u
}

// AddNewsCount adds value to the "news_count" field.
func (_u *EventUpdateOne) AddNewsCount(v int) *EventUpdateOne {
	_u.mutation.AddNewsCount(v)
	return _u
}

// SetFirstNewsTime sets the "first_news_time" field.
func (_u *EventUpdateOne) SetFirstNewsTime(v time.Time) *EventUpdateOne {
	_u.mutation.SetFirstNewsTime(v)
	return _u
}

// SetNillableFirstNewsTime sets the "first_news_time" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableFirstNewsTime(v *time.Time) *EventUpdateOne {
	if v != nil {
		_u.SetFirstNewsTime(*v)
	}
	return _u
}

// ClearFirstNewsTime clears the value of the "first_news_time" field.
func (_u *EventUpdateOne) ClearFirstNewsTime() *EventUpdateOne {
	_u.mutation.ClearFirstNewsTime()
	return _u
}

// SetLastNewsTime sets the "last_news_time" field.
func (_u *EventUpdateOne) SetLastNewsTime(v time.Time) *EventUpdateOne {
	_u.mutation.SetLastNewsTime(v)
	return _u
}

// SetNillableLastNewsTime sets the "last_news_time" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableLastNewsTime(v *time.Time) *EventUpdateOne {
	if v != nil {
		_u.SetLastNewsTime(*v)
	}
	return _u
}

// ClearLastNewsTime clears the value of the "last_news_time" field.
func (_u *EventUpdateOne) ClearLastNewsTime() *EventUpdateOne {
	_u.mutation.ClearLastNewsTime()
	return _u
}

// SetStatus sets the "status" field.
func (_u *EventUpdateOne) SetStatus(v int8) *EventUpdateOne {
	_u.mutation.ResetStatus()
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableStatus(v *int8) *EventUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// AddStatus adds value to the "status" field.
func (_u *EventUpdateOne) AddStatus(v int8) *EventUpdateOne {
	_u.mutation.AddStatus(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EventUpdateOne) SetUpdatedAt(v time.Time) *EventUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the EventMutation object of the builder.
func (_u *EventUpdateOne) Mutation() *EventMutation {
	return _u.mutation
}

// Where appends a list predicates to the EventUpdate builder.
func (_u *EventUpdateOne) Where(ps ...predicate.Event) *EventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EventUpdateOne) Select(field string, fields ...string) *EventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Event entity.
func (_u *EventUpdateOne) Save(ctx context.Context) (*Event, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EventUpdateOne) SaveX(ctx context.Context) *Event {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EventUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := event.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EventUpdateOne) check() error {
	if v, ok := _u.mutation.Sentiment(); ok {
		if err := event.SentimentValidator(v); err != nil {
			return &ValidationError{Name: "sentiment", err: fmt.Errorf(`ent: validator failed for field "Event.sentiment": %w`, err)}
		}
	}
	return nil
}

func (_u *EventUpdateOne) sqlSave(ctx context.Context) (_node *Event, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(event.Table, event.Columns, sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Event.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, event.FieldID)
		for _, f := range fields {
			if !event.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != event.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(event.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(event.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(event.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Sentiment(); ok {
		_spec.SetField(event.FieldSentiment, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Entities(); ok {
		_spec.SetField(event.FieldEntities, field.TypeString, value)
	}
	if value, ok := _u.mutation.Regions(); ok {
		_spec.SetField(event.FieldRegions, field.TypeString, value)
	}
	if value, ok := _u.mutation.Keywords(); ok {
		_spec.SetField(event.FieldKeywords, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(event.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(event.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.NewsCount(); ok {
		_spec.SetField(event.FieldNewsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNewsCount(); ok {
		_spec.AddField(event.FieldNewsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FirstNewsTime(); ok {
		_spec.SetField(event.FieldFirstNewsTime, field.TypeTime, value)
	}
	if _u.mutation.FirstNewsTimeCleared() {
		_spec.ClearField(event.FieldFirstNewsTime, field.TypeTime)
	}
	if value, ok := _u.mutation.LastNewsTime(); ok {
		_spec.SetField(event.FieldLastNewsTime, field.TypeTime, value)
	}
	if _u.mutation.LastNewsTimeCleared() {
		_spec.ClearField(event.FieldLastNewsTime, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(event.FieldStatus, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.AddedStatus(); ok {
		_spec.AddField(event.FieldStatus, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(event.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Event{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{event.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
