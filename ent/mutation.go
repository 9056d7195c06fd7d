// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/newsflow/hotaggr/ent/event"
	"github.com/newsflow/hotaggr/ent/eventhistoryrelation"
	"github.com/newsflow/hotaggr/ent/newseventrelation"
	"github.com/newsflow/hotaggr/ent/newsitem"
	"github.com/newsflow/hotaggr/ent/predicate"
	"github.com/newsflow/hotaggr/ent/processinglog"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeEvent                = "Event"
	TypeEventHistoryRelation = "EventHistoryRelation"
	TypeNewsEventRelation    = "NewsEventRelation"
	TypeNewsItem             = "NewsItem"
	TypeProcessingLog        = "ProcessingLog"
)

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	title               *string
	description         *string
	event_type          *string
	sentiment           *event.Sentiment
	entities            *string
	regions             *string
	keywords            *string
	confidence_score    *float64
	addconfidence_score *float64
	news_count          *int
	addnews_count       *int
	first_news_time     *time.Time
	last_news_time      *time.Time
	status              *int8
	addstatus           *int8
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*Event, error)
	predicates          []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *EventMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *EventMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *EventMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *EventMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *EventMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *EventMutation) ResetDescription() {
	m.description = nil
}

// SetEventType sets the "event_type" field.
func (m *EventMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *EventMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *EventMutation) ResetEventType() {
	m.event_type = nil
}

// SetSentiment sets the "sentiment" field.
func (m *EventMutation) SetSentiment(e event.Sentiment) {
	m.sentiment = &e
}

// Sentiment returns the value of the "sentiment" field in the mutation.
func (m *EventMutation) Sentiment() (r event.Sentiment, exists bool) {
	v := m.sentiment
	if v == nil {
		return
	}
	return *v, true
}

// OldSentiment returns the old "sentiment" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldSentiment(ctx context.Context) (v event.Sentiment, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSentiment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSentiment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSentiment: %w", err)
	}
	return oldValue.Sentiment, nil
}

// ResetSentiment resets all changes to the "sentiment" field.
func (m *EventMutation) ResetSentiment() {
	m.sentiment = nil
}

// SetEntities sets the "entities" field.
func (m *EventMutation) SetEntities(s string) {
	m.entities = &s
}

// Entities returns the value of the "entities" field in the mutation.
func (m *EventMutation) Entities() (r string, exists bool) {
	v := m.entities
	if v == nil {
		return
	}
	return *v, true
}

// OldEntities returns the old "entities" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldEntities(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntities is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntities requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntities: %w", err)
	}
	return oldValue.Entities, nil
}

// ResetEntities resets all changes to the "entities" field.
func (m *EventMutation) ResetEntities() {
	m.entities = nil
}

// SetRegions sets the "regions" field.
func (m *EventMutation) SetRegions(s string) {
	m.regions = &s
}

// Regions returns the value of the "regions" field in the mutation.
func (m *EventMutation) Regions() (r string, exists bool) {
	v := m.regions
	if v == nil {
		return
	}
	return *v, true
}

// OldRegions returns the old "regions" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldRegions(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRegions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRegions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRegions: %w", err)
	}
	return oldValue.Regions, nil
}

// ResetRegions resets all changes to the "regions" field.
func (m *EventMutation) ResetRegions() {
	m.regions = nil
}

// SetKeywords sets the "keywords" field.
func (m *EventMutation) SetKeywords(s string) {
	m.keywords = &s
}

// Keywords returns the value of the "keywords" field in the mutation.
func (m *EventMutation) Keywords() (r string, exists bool) {
	v := m.keywords
	if v == nil {
		return
	}
	return *v, true
}

// OldKeywords returns the old "keywords" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldKeywords(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeywords is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeywords requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeywords: %w", err)
	}
	return oldValue.Keywords, nil
}

// ResetKeywords resets all changes to the "keywords" field.
func (m *EventMutation) ResetKeywords() {
	m.keywords = nil
}

// SetConfidenceScore sets the "confidence_score" field.
func (m *EventMutation) SetConfidenceScore(f float64) {
	m.confidence_score = &f
	m.addconfidence_score = nil
}

// ConfidenceScore returns the value of the "confidence_score" field in the mutation.
func (m *EventMutation) ConfidenceScore() (r float64, exists bool) {
	v := m.confidence_score
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidenceScore returns the old "confidence_score" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldConfidenceScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidenceScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidenceScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidenceScore: %w", err)
	}
	return oldValue.ConfidenceScore, nil
}

// AddConfidenceScore adds f to the "confidence_score" field.
func (m *EventMutation) AddConfidenceScore(f float64) {
	if m.addconfidence_score != nil {
		*m.addconfidence_score += f
	} else {
		m.addconfidence_score = &f
	}
}

// AddedConfidenceScore returns the value that was added to the "confidence_score" field in this mutation.
func (m *EventMutation) AddedConfidenceScore() (r float64, exists bool) {
	v := m.addconfidence_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidenceScore resets all changes to the "confidence_score" field.
func (m *EventMutation) ResetConfidenceScore() {
	m.confidence_score = nil
	m.addconfidence_score = nil
}

// SetNewsCount sets the "news_count" field.
func (m *EventMutation) SetNewsCount(i int) {
	m.news_count = &i
	m.addnews_count = nil
}

// NewsCount returns the value of the "news_count" field in the mutation.
func (m *EventMutation) NewsCount() (r int, exists bool) {
	v := m.news_count
	if v == nil {
		return
	}
	return *v, true
}

// OldNewsCount returns the old "news_count" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldNewsCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNewsCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNewsCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNewsCount: %w", err)
	}
	return oldValue.NewsCount, nil
}

// AddNewsCount adds i to the "news_count" field.
func (m *EventMutation) AddNewsCount(i int) {
	if m.addnews_count != nil {
		*m.addnews_count += i
	} else {
		m.addnews_count = &i
	}
}

// AddedNewsCount returns the value that was added to the "news_count" field in this mutation.
func (m *EventMutation) AddedNewsCount() (r int, exists bool) {
	v := m.addnews_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetNewsCount resets all changes to the "news_count" field.
func (m *EventMutation) ResetNewsCount() {
	m.news_count = nil
	m.addnews_count = nil
}

// SetFirstNewsTime sets the "first_news_time" field.
func (m *EventMutation) SetFirstNewsTime(t time.Time) {
	m.first_news_time = &t
}

// FirstNewsTime returns the value of the "first_news_time" field in the mutation.
func (m *EventMutation) FirstNewsTime() (r time.Time, exists bool) {
	v := m.first_news_time
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstNewsTime returns the old "first_news_time" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldFirstNewsTime(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstNewsTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstNewsTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstNewsTime: %w", err)
	}
	return oldValue.FirstNewsTime, nil
}

// ClearFirstNewsTime clears the value of the "first_news_time" field.
func (m *EventMutation) ClearFirstNewsTime() {
	m.first_news_time = nil
	m.clearedFields[event.FieldFirstNewsTime] = struct{}{}
}

// FirstNewsTimeCleared returns if the "first_news_time" field was cleared in this mutation.
func (m *EventMutation) FirstNewsTimeCleared() bool {
	_, ok := m.clearedFields[event.FieldFirstNewsTime]
	return ok
}

// ResetFirstNewsTime resets all changes to the "first_news_time" field.
func (m *EventMutation) ResetFirstNewsTime() {
	m.first_news_time = nil
	delete(m.clearedFields, event.FieldFirstNewsTime)
}

// SetLastNewsTime sets the "last_news_time" field.
func (m *EventMutation) SetLastNewsTime(t time.Time) {
	m.last_news_time = &t
}

// LastNewsTime returns the value of the "last_news_time" field in the mutation.
func (m *EventMutation) LastNewsTime() (r time.Time, exists bool) {
	v := m.last_news_time
	if v == nil {
		return
	}
	return *v, true
}

// OldLastNewsTime returns the old "last_news_time" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldLastNewsTime(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastNewsTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastNewsTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastNewsTime: %w", err)
	}
	return oldValue.LastNewsTime, nil
}

// ClearLastNewsTime clears the value of the "last_news_time" field.
func (m *EventMutation) ClearLastNewsTime() {
	m.last_news_time = nil
	m.clearedFields[event.FieldLastNewsTime] = struct{}{}
}

// LastNewsTimeCleared returns if the "last_news_time" field was cleared in this mutation.
func (m *EventMutation) LastNewsTimeCleared() bool {
	_, ok := m.clearedFields[event.FieldLastNewsTime]
	return ok
}

// ResetLastNewsTime resets all changes to the "last_news_time" field.
func (m *EventMutation) ResetLastNewsTime() {
	m.last_news_time = nil
	delete(m.clearedFields, event.FieldLastNewsTime)
}

// SetStatus sets the "status" field.
func (m *EventMutation) SetStatus(i int8) {
	m.status = &i
	m.addstatus = nil
}

// Status returns the value of the "status" field in the mutation.
func (m *EventMutation) Status() (r int8, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldStatus(ctx context.Context) (v int8, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// AddStatus adds i to the "status" field.
func (m *EventMutation) AddStatus(i int8) {
	if m.addstatus != nil {
		*m.addstatus += i
	} else {
		m.addstatus = &i
	}
}

// AddedStatus returns the value that was added to the "status" field in this mutation.
func (m *EventMutation) AddedStatus() (r int8, exists bool) {
	v := m.addstatus
	if v == nil {
		return
	}
	return *v, true
}

// ResetStatus resets all changes to the "status" field.
func (m *EventMutation) ResetStatus() {
	m.status = nil
	m.addstatus = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *EventMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *EventMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *EventMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.title != nil {
		fields = append(fields, event.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, event.FieldDescription)
	}
	if m.event_type != nil {
		fields = append(fields, event.FieldEventType)
	}
	if m.sentiment != nil {
		fields = append(fields, event.FieldSentiment)
	}
	if m.entities != nil {
		fields = append(fields, event.FieldEntities)
	}
	if m.regions != nil {
		fields = append(fields, event.FieldRegions)
	}
	if m.keywords != nil {
		fields = append(fields, event.FieldKeywords)
	}
	if m.confidence_score != nil {
		fields = append(fields, event.FieldConfidenceScore)
	}
	if m.news_count != nil {
		fields = append(fields, event.FieldNewsCount)
	}
	if m.first_news_time != nil {
		fields = append(fields, event.FieldFirstNewsTime)
	}
	if m.last_news_time != nil {
		fields = append(fields, event.FieldLastNewsTime)
	}
	if m.status != nil {
		fields = append(fields, event.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, event.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldTitle:
		return m.Title()
	case event.FieldDescription:
		return m.Description()
	case event.FieldEventType:
		return m.EventType()
	case event.FieldSentiment:
		return m.Sentiment()
	case event.FieldEntities:
		return m.Entities()
	case event.FieldRegions:
		return m.Regions()
	case event.FieldKeywords:
		return m.Keywords()
	case event.FieldConfidenceScore:
		return m.ConfidenceScore()
	case event.FieldNewsCount:
		return m.NewsCount()
	case event.FieldFirstNewsTime:
		return m.FirstNewsTime()
	case event.FieldLastNewsTime:
		return m.LastNewsTime()
	case event.FieldStatus:
		return m.Status()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	case event.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldTitle:
		return m.OldTitle(ctx)
	case event.FieldDescription:
		return m.OldDescription(ctx)
	case event.FieldEventType:
		return m.OldEventType(ctx)
	case event.FieldSentiment:
		return m.OldSentiment(ctx)
	case event.FieldEntities:
		return m.OldEntities(ctx)
	case event.FieldRegions:
		return m.OldRegions(ctx)
	case event.FieldKeywords:
		return m.OldKeywords(ctx)
	case event.FieldConfidenceScore:
		return m.OldConfidenceScore(ctx)
	case event.FieldNewsCount:
		return m.OldNewsCount(ctx)
	case event.FieldFirstNewsTime:
		return m.OldFirstNewsTime(ctx)
	case event.FieldLastNewsTime:
		return m.OldLastNewsTime(ctx)
	case event.FieldStatus:
		return m.OldStatus(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case event.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case event.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case event.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case event.FieldSentiment:
		v, ok := value.(event.Sentiment)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSentiment(v)
		return nil
	case event.FieldEntities:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntities(v)
		return nil
	case event.FieldRegions:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRegions(v)
		return nil
	case event.FieldKeywords:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeywords(v)
		return nil
	case event.FieldConfidenceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidenceScore(v)
		return nil
	case event.FieldNewsCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNewsCount(v)
		return nil
	case event.FieldFirstNewsTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstNewsTime(v)
		return nil
	case event.FieldLastNewsTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastNewsTime(v)
		return nil
	case event.FieldStatus:
		v, ok := value.(int8)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case event.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence_score != nil {
		fields = append(fields, event.FieldConfidenceScore)
	}
	if m.addnews_count != nil {
		fields = append(fields, event.FieldNewsCount)
	}
	if m.addstatus != nil {
		fields = append(fields, event.FieldStatus)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case event.FieldConfidenceScore:
		return m.AddedConfidenceScore()
	case event.FieldNewsCount:
		return m.AddedNewsCount()
	case event.FieldStatus:
		return m.AddedStatus()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case event.FieldConfidenceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidenceScore(v)
		return nil
	case event.FieldNewsCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNewsCount(v)
		return nil
	case event.FieldStatus:
		v, ok := value.(int8)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStatus(v)
		return nil
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(event.FieldFirstNewsTime) {
		fields = append(fields, event.FieldFirstNewsTime)
	}
	if m.FieldCleared(event.FieldLastNewsTime) {
		fields = append(fields, event.FieldLastNewsTime)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	switch name {
	case event.FieldFirstNewsTime:
		m.ClearFirstNewsTime()
		return nil
	case event.FieldLastNewsTime:
		m.ClearLastNewsTime()
		return nil
	}
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldTitle:
		m.ResetTitle()
		return nil
	case event.FieldDescription:
		m.ResetDescription()
		return nil
	case event.FieldEventType:
		m.ResetEventType()
		return nil
	case event.FieldSentiment:
		m.ResetSentiment()
		return nil
	case event.FieldEntities:
		m.ResetEntities()
		return nil
	case event.FieldRegions:
		m.ResetRegions()
		return nil
	case event.FieldKeywords:
		m.ResetKeywords()
		return nil
	case event.FieldConfidenceScore:
		m.ResetConfidenceScore()
		return nil
	case event.FieldNewsCount:
		m.ResetNewsCount()
		return nil
	case event.FieldFirstNewsTime:
		m.ResetFirstNewsTime()
		return nil
	case event.FieldLastNewsTime:
		m.ResetLastNewsTime()
		return nil
	case event.FieldStatus:
		m.ResetStatus()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case event.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Event edge %s", name)
}

// EventHistoryRelationMutation represents an operation that mutates the EventHistoryRelation nodes in the graph.
type EventHistoryRelationMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	parent_event_id     *int
	addparent_event_id  *int
	child_event_id      *int
	addchild_event_id   *int
	relation_type       *eventhistoryrelation.RelationType
	confidence_score    *float64
	addconfidence_score *float64
	description         *string
	created_at          *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*EventHistoryRelation, error)
	predicates          []predicate.EventHistoryRelation
}

var _ ent.Mutation = (*EventHistoryRelationMutation)(nil)

// eventhistoryrelationOption allows management of the mutation configuration using functional options.
type eventhistoryrelationOption func(*EventHistoryRelationMutation)

// newEventHistoryRelationMutation creates new mutation for the EventHistoryRelation entity.
func newEventHistoryRelationMutation(c config, op Op, opts ...eventhistoryrelationOption) *EventHistoryRelationMutation {
	m := &EventHistoryRelationMutation{
		config:        c,
		op:            op,
		typ:           TypeEventHistoryRelation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventHistoryRelationID sets the ID field of the mutation.
func withEventHistoryRelationID(id int) eventhistoryrelationOption {
	return func(m *EventHistoryRelationMutation) {
		var (
			err   error
			once  sync.Once
			value *EventHistoryRelation
		)
		m.oldValue = func(ctx context.Context) (*EventHistoryRelation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EventHistoryRelation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEventHistoryRelation sets the old EventHistoryRelation of the mutation.
func withEventHistoryRelation(node *EventHistoryRelation) eventhistoryrelationOption {
	return func(m *EventHistoryRelationMutation) {
		m.oldValue = func(context.Context) (*EventHistoryRelation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventHistoryRelationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventHistoryRelationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventHistoryRelationMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventHistoryRelationMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EventHistoryRelation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetParentEventID sets the "parent_event_id" field.
func (m *EventHistoryRelationMutation) SetParentEventID(i int) {
	m.parent_event_id = &i
	m.addparent_event_id = nil
}

// ParentEventID returns the value of the "parent_event_id" field in the mutation.
func (m *EventHistoryRelationMutation) ParentEventID() (r int, exists bool) {
	v := m.parent_event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentEventID returns the old "parent_event_id" field's value of the EventHistoryRelation entity.
// If the EventHistoryRelation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventHistoryRelationMutation) OldParentEventID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentEventID: %w", err)
	}
	return oldValue.ParentEventID, nil
}

// AddParentEventID adds i to the "parent_event_id" field.
func (m *EventHistoryRelationMutation) AddParentEventID(i int) {
	if m.addparent_event_id != nil {
		*m.addparent_event_id += i
	} else {
		m.addparent_event_id = &i
	}
}

// AddedParentEventID returns the value that was added to the "parent_event_id" field in this mutation.
func (m *EventHistoryRelationMutation) AddedParentEventID() (r int, exists bool) {
	v := m.addparent_event_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetParentEventID resets all changes to the "parent_event_id" field.
func (m *EventHistoryRelationMutation) ResetParentEventID() {
	m.parent_event_id = nil
	m.addparent_event_id = nil
}

// SetChildEventID sets the "child_event_id" field.
func (m *EventHistoryRelationMutation) SetChildEventID(i int) {
	m.child_event_id = &i
	m.addchild_event_id = nil
}

// ChildEventID returns the value of the "child_event_id" field in the mutation.
func (m *EventHistoryRelationMutation) ChildEventID() (r int, exists bool) {
	v := m.child_event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChildEventID returns the old "child_event_id" field's value of the EventHistoryRelation entity.
// If the EventHistoryRelation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventHistoryRelationMutation) OldChildEventID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChildEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChildEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChildEventID: %w", err)
	}
	return oldValue.ChildEventID, nil
}

// AddChildEventID adds i to the "child_event_id" field.
func (m *EventHistoryRelationMutation) AddChildEventID(i int) {
	if m.addchild_event_id != nil {
		*m.addchild_event_id += i
	} else {
		m.addchild_event_id = &i
	}
}

// AddedChildEventID returns the value that was added to the "child_event_id" field in this mutation.
func (m *EventHistoryRelationMutation) AddedChildEventID() (r int, exists bool) {
	v := m.addchild_event_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetChildEventID resets all changes to the "child_event_id" field.
func (m *EventHistoryRelationMutation) ResetChildEventID() {
	m.child_event_id = nil
	m.addchild_event_id = nil
}

// SetRelationType sets the "relation_type" field.
func (m *EventHistoryRelationMutation) SetRelationType(et eventhistoryrelation.RelationType) {
	m.relation_type = &et
}

// RelationType returns the value of the "relation_type" field in the mutation.
func (m *EventHistoryRelationMutation) RelationType() (r eventhistoryrelation.RelationType, exists bool) {
	v := m.relation_type
	if v == nil {
		return
	}
	return *v, true
}

// OldRelationType returns the old "relation_type" field's value of the EventHistoryRelation entity.
// If the EventHistoryRelation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventHistoryRelationMutation) OldRelationType(ctx context.Context) (v eventhistoryrelation.RelationType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelationType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelationType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelationType: %w", err)
	}
	return oldValue.RelationType, nil
}

// ResetRelationType resets all changes to the "relation_type" field.
func (m *EventHistoryRelationMutation) ResetRelationType() {
	m.relation_type = nil
}

// SetConfidenceScore sets the "confidence_score" field.
func (m *EventHistoryRelationMutation) SetConfidenceScore(f float64) {
	m.confidence_score = &f
	m.addconfidence_score = nil
}

// ConfidenceScore returns the value of the "confidence_score" field in the mutation.
func (m *EventHistoryRelationMutation) ConfidenceScore() (r float64, exists bool) {
	v := m.confidence_score
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidenceScore returns the old "confidence_score" field's value of the EventHistoryRelation entity.
// If the EventHistoryRelation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventHistoryRelationMutation) OldConfidenceScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidenceScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidenceScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidenceScore: %w", err)
	}
	return oldValue.ConfidenceScore, nil
}

// AddConfidenceScore adds f to the "confidence_score" field.
func (m *EventHistoryRelationMutation) AddConfidenceScore(f float64) {
	if m.addconfidence_score != nil {
		*m.addconfidence_score += f
	} else {
		m.addconfidence_score = &f
	}
}

// AddedConfidenceScore returns the value that was added to the "confidence_score" field in this mutation.
func (m *EventHistoryRelationMutation) AddedConfidenceScore() (r float64, exists bool) {
	v := m.addconfidence_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidenceScore resets all changes to the "confidence_score" field.
func (m *EventHistoryRelationMutation) ResetConfidenceScore() {
	m.confidence_score = nil
	m.addconfidence_score = nil
}

// SetDescription sets the "description" field.
func (m *EventHistoryRelationMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *EventHistoryRelationMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the EventHistoryRelation entity.
// If the EventHistoryRelation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventHistoryRelationMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *EventHistoryRelationMutation) ResetDescription() {
	m.description = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EventHistoryRelationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventHistoryRelationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the EventHistoryRelation entity.
// If the EventHistoryRelation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventHistoryRelationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventHistoryRelationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the EventHistoryRelationMutation builder.
func (m *EventHistoryRelationMutation) Where(ps ...predicate.EventHistoryRelation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventHistoryRelationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventHistoryRelationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EventHistoryRelation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventHistoryRelationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventHistoryRelationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EventHistoryRelation).
func (m *EventHistoryRelationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventHistoryRelationMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.parent_event_id != nil {
		fields = append(fields, eventhistoryrelation.FieldParentEventID)
	}
	if m.child_event_id != nil {
		fields = append(fields, eventhistoryrelation.FieldChildEventID)
	}
	if m.relation_type != nil {
		fields = append(fields, eventhistoryrelation.FieldRelationType)
	}
	if m.confidence_score != nil {
		fields = append(fields, eventhistoryrelation.FieldConfidenceScore)
	}
	if m.description != nil {
		fields = append(fields, eventhistoryrelation.FieldDescription)
	}
	if m.created_at != nil {
		fields = append(fields, eventhistoryrelation.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventHistoryRelationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case eventhistoryrelation.FieldParentEventID:
		return m.ParentEventID()
	case eventhistoryrelation.FieldChildEventID:
		return m.ChildEventID()
	case eventhistoryrelation.FieldRelationType:
		return m.RelationType()
	case eventhistoryrelation.FieldConfidenceScore:
		return m.ConfidenceScore()
	case eventhistoryrelation.FieldDescription:
		return m.Description()
	case eventhistoryrelation.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventHistoryRelationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case eventhistoryrelation.FieldParentEventID:
		return m.OldParentEventID(ctx)
	case eventhistoryrelation.FieldChildEventID:
		return m.OldChildEventID(ctx)
	case eventhistoryrelation.FieldRelationType:
		return m.OldRelationType(ctx)
	case eventhistoryrelation.FieldConfidenceScore:
		return m.OldConfidenceScore(ctx)
	case eventhistoryrelation.FieldDescription:
		return m.OldDescription(ctx)
	case eventhistoryrelation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown EventHistoryRelation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventHistoryRelationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case eventhistoryrelation.FieldParentEventID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentEventID(v)
		return nil
	case eventhistoryrelation.FieldChildEventID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChildEventID(v)
		return nil
	case eventhistoryrelation.FieldRelationType:
		v, ok := value.(eventhistoryrelation.RelationType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelationType(v)
		return nil
	case eventhistoryrelation.FieldConfidenceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidenceScore(v)
		return nil
	case eventhistoryrelation.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case eventhistoryrelation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown EventHistoryRelation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventHistoryRelationMutation) AddedFields() []string {
	var fields []string
	if m.addparent_event_id != nil {
		fields = append(fields, eventhistoryrelation.FieldParentEventID)
	}
	if m.addchild_event_id != nil {
		fields = append(fields, eventhistoryrelation.FieldChildEventID)
	}
	if m.addconfidence_score != nil {
		fields = append(fields, eventhistoryrelation.FieldConfidenceScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventHistoryRelationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case eventhistoryrelation.FieldParentEventID:
		return m.AddedParentEventID()
	case eventhistoryrelation.FieldChildEventID:
		return m.AddedChildEventID()
	case eventhistoryrelation.FieldConfidenceScore:
		return m.AddedConfidenceScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventHistoryRelationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case eventhistoryrelation.FieldParentEventID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddParentEventID(v)
		return nil
	case eventhistoryrelation.FieldChildEventID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddChildEventID(v)
		return nil
	case eventhistoryrelation.FieldConfidenceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidenceScore(v)
		return nil
	}
	return fmt.Errorf("unknown EventHistoryRelation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventHistoryRelationMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventHistoryRelationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventHistoryRelationMutation) ClearField(name string) error {
	return fmt.Errorf("unknown EventHistoryRelation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventHistoryRelationMutation) ResetField(name string) error {
	switch name {
	case eventhistoryrelation.FieldParentEventID:
		m.ResetParentEventID()
		return nil
	case eventhistoryrelation.FieldChildEventID:
		m.ResetChildEventID()
		return nil
	case eventhistoryrelation.FieldRelationType:
		m.ResetRelationType()
		return nil
	case eventhistoryrelation.FieldConfidenceScore:
		m.ResetConfidenceScore()
		return nil
	case eventhistoryrelation.FieldDescription:
		m.ResetDescription()
		return nil
	case eventhistoryrelation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown EventHistoryRelation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventHistoryRelationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventHistoryRelationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventHistoryRelationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventHistoryRelationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventHistoryRelationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventHistoryRelationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventHistoryRelationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown EventHistoryRelation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventHistoryRelationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown EventHistoryRelation edge %s", name)
}

// NewsEventRelationMutation represents an operation that mutates the NewsEventRelation nodes in the graph.
type NewsEventRelationMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	news_id             *int
	addnews_id          *int
	event_id            *int
	addevent_id         *int
	relation_type       *newseventrelation.RelationType
	confidence_score    *float64
	addconfidence_score *float64
	created_at          *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*NewsEventRelation, error)
	predicates          []predicate.NewsEventRelation
}

var _ ent.Mutation = (*NewsEventRelationMutation)(nil)

// newseventrelationOption allows management of the mutation configuration using functional options.
type newseventrelationOption func(*NewsEventRelationMutation)

// newNewsEventRelationMutation creates new mutation for the NewsEventRelation entity.
func newNewsEventRelationMutation(c config, op Op, opts ...newseventrelationOption) *NewsEventRelationMutation {
	m := &NewsEventRelationMutation{
		config:        c,
		op:            op,
		typ:           TypeNewsEventRelation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withNewsEventRelationID sets the ID field of the mutation.
func withNewsEventRelationID(id int) newseventrelationOption {
	return func(m *NewsEventRelationMutation) {
		var (
			err   error
			once  sync.Once
			value *NewsEventRelation
		)
		m.oldValue = func(ctx context.Context) (*NewsEventRelation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().NewsEventRelation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withNewsEventRelation sets the old NewsEventRelation of the mutation.
func withNewsEventRelation(node *NewsEventRelation) newseventrelationOption {
	return func(m *NewsEventRelationMutation) {
		m.oldValue = func(context.Context) (*NewsEventRelation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m NewsEventRelationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m NewsEventRelationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *NewsEventRelationMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *NewsEventRelationMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().NewsEventRelation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetNewsID sets the "news_id" field.
func (m *NewsEventRelationMutation) SetNewsID(i int) {
	m.news_id = &i
	m.addnews_id = nil
}

// NewsID returns the value of the "news_id" field in the mutation.
func (m *NewsEventRelationMutation) NewsID() (r int, exists bool) {
	v := m.news_id
	if v == nil {
		return
	}
	return *v, true
}

// OldNewsID returns the old "news_id" field's value of the NewsEventRelation entity.
// If the NewsEventRelation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NewsEventRelationMutation) OldNewsID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNewsID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNewsID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNewsID: %w", err)
	}
	return oldValue.NewsID, nil
}

// AddNewsID adds i to the "news_id" field.
func (m *NewsEventRelationMutation) AddNewsID(i int) {
	if m.addnews_id != nil {
		*m.addnews_id += i
	} else {
		m.addnews_id = &i
	}
}

// AddedNewsID returns the value that was added to the "news_id" field in this mutation.
func (m *NewsEventRelationMutation) AddedNewsID() (r int, exists bool) {
	v := m.addnews_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetNewsID resets all changes to the "news_id" field.
func (m *NewsEventRelationMutation) ResetNewsID() {
	m.news_id = nil
	m.addnews_id = nil
}

// SetEventID sets the "event_id" field.
func (m *NewsEventRelationMutation) SetEventID(i int) {
	m.event_id = &i
	m.addevent_id = nil
}

// EventID returns the value of the "event_id" field in the mutation.
func (m *NewsEventRelationMutation) EventID() (r int, exists bool) {
	v := m.event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEventID returns the old "event_id" field's value of the NewsEventRelation entity.
// If the NewsEventRelation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NewsEventRelationMutation) OldEventID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventID: %w", err)
	}
	return oldValue.EventID, nil
}

// AddEventID adds i to the "event_id" field.
func (m *NewsEventRelationMutation) AddEventID(i int) {
	if m.addevent_id != nil {
		*m.addevent_id += i
	} else {
		m.addevent_id = &i
	}
}

// AddedEventID returns the value that was added to the "event_id" field in this mutation.
func (m *NewsEventRelationMutation) AddedEventID() (r int, exists bool) {
	v := m.addevent_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetEventID resets all changes to the "event_id" field.
func (m *NewsEventRelationMutation) ResetEventID() {
	m.event_id = nil
	m.addevent_id = nil
}

// SetRelationType sets the "relation_type" field.
func (m *NewsEventRelationMutation) SetRelationType(nt newseventrelation.RelationType) {
	m.relation_type = &nt
}

// RelationType returns the value of the "relation_type" field in the mutation.
func (m *NewsEventRelationMutation) RelationType() (r newseventrelation.RelationType, exists bool) {
	v := m.relation_type
	if v == nil {
		return
	}
	return *v, true
}

// OldRelationType returns the old "relation_type" field's value of the NewsEventRelation entity.
// If the NewsEventRelation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NewsEventRelationMutation) OldRelationType(ctx context.Context) (v newseventrelation.RelationType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelationType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelationType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelationType: %w", err)
	}
	return oldValue.RelationType, nil
}

// ResetRelationType resets all changes to the "relation_type" field.
func (m *NewsEventRelationMutation) ResetRelationType() {
	m.relation_type = nil
}

// SetConfidenceScore sets the "confidence_score" field.
func (m *NewsEventRelationMutation) SetConfidenceScore(f float64) {
	m.confidence_score = &f
	m.addconfidence_score = nil
}

// ConfidenceScore returns the value of the "confidence_score" field in the mutation.
func (m *NewsEventRelationMutation) ConfidenceScore() (r float64, exists bool) {
	v := m.confidence_score
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidenceScore returns the old "confidence_score" field's value of the NewsEventRelation entity.
// If the NewsEventRelation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NewsEventRelationMutation) OldConfidenceScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidenceScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidenceScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidenceScore: %w", err)
	}
	return oldValue.ConfidenceScore, nil
}

// AddConfidenceScore adds f to the "confidence_score" field.
func (m *NewsEventRelationMutation) AddConfidenceScore(f float64) {
	if m.addconfidence_score != nil {
		*m.addconfidence_score += f
	} else {
		m.addconfidence_score = &f
	}
}

// AddedConfidenceScore returns the value that was added to the "confidence_score" field in this mutation.
func (m *NewsEventRelationMutation) AddedConfidenceScore() (r float64, exists bool) {
	v := m.addconfidence_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidenceScore resets all changes to the "confidence_score" field.
func (m *NewsEventRelationMutation) ResetConfidenceScore() {
	m.confidence_score = nil
	m.addconfidence_score = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *NewsEventRelationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *NewsEventRelationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the NewsEventRelation entity.
// If the NewsEventRelation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NewsEventRelationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *NewsEventRelationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the NewsEventRelationMutation builder.
func (m *NewsEventRelationMutation) Where(ps ...predicate.NewsEventRelation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the NewsEventRelationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *NewsEventRelationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.NewsEventRelation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *NewsEventRelationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *NewsEventRelationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (NewsEventRelation).
func (m *NewsEventRelationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *NewsEventRelationMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.news_id != nil {
		fields = append(fields, newseventrelation.FieldNewsID)
	}
	if m.event_id != nil {
		fields = append(fields, newseventrelation.FieldEventID)
	}
	if m.relation_type != nil {
		fields = append(fields, newseventrelation.FieldRelationType)
	}
	if m.confidence_score != nil {
		fields = append(fields, newseventrelation.FieldConfidenceScore)
	}
	if m.created_at != nil {
		fields = append(fields, newseventrelation.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *NewsEventRelationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case newseventrelation.FieldNewsID:
		return m.NewsID()
	case newseventrelation.FieldEventID:
		return m.EventID()
	case newseventrelation.FieldRelationType:
		return m.RelationType()
	case newseventrelation.FieldConfidenceScore:
		return m.ConfidenceScore()
	case newseventrelation.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *NewsEventRelationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case newseventrelation.FieldNewsID:
		return m.OldNewsID(ctx)
	case newseventrelation.FieldEventID:
		return m.OldEventID(ctx)
	case newseventrelation.FieldRelationType:
		return m.OldRelationType(ctx)
	case newseventrelation.FieldConfidenceScore:
		return m.OldConfidenceScore(ctx)
	case newseventrelation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown NewsEventRelation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NewsEventRelationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case newseventrelation.FieldNewsID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNewsID(v)
		return nil
	case newseventrelation.FieldEventID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventID(v)
		return nil
	case newseventrelation.FieldRelationType:
		v, ok := value.(newseventrelation.RelationType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelationType(v)
		return nil
	case newseventrelation.FieldConfidenceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidenceScore(v)
		return nil
	case newseventrelation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown NewsEventRelation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *NewsEventRelationMutation) AddedFields() []string {
	var fields []string
	if m.addnews_id != nil {
		fields = append(fields, newseventrelation.FieldNewsID)
	}
	if m.addevent_id != nil {
		fields = append(fields, newseventrelation.FieldEventID)
	}
	if m.addconfidence_score != nil {
		fields = append(fields, newseventrelation.FieldConfidenceScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *NewsEventRelationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case newseventrelation.FieldNewsID:
		return m.AddedNewsID()
	case newseventrelation.FieldEventID:
		return m.AddedEventID()
	case newseventrelation.FieldConfidenceScore:
		return m.AddedConfidenceScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NewsEventRelationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case newseventrelation.FieldNewsID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNewsID(v)
		return nil
	case newseventrelation.FieldEventID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEventID(v)
		return nil
	case newseventrelation.FieldConfidenceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidenceScore(v)
		return nil
	}
	return fmt.Errorf("unknown NewsEventRelation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *NewsEventRelationMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *NewsEventRelationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *NewsEventRelationMutation) ClearField(name string) error {
	return fmt.Errorf("unknown NewsEventRelation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *NewsEventRelationMutation) ResetField(name string) error {
	switch name {
	case newseventrelation.FieldNewsID:
		m.ResetNewsID()
		return nil
	case newseventrelation.FieldEventID:
		m.ResetEventID()
		return nil
	case newseventrelation.FieldRelationType:
		m.ResetRelationType()
		return nil
	case newseventrelation.FieldConfidenceScore:
		m.ResetConfidenceScore()
		return nil
	case newseventrelation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown NewsEventRelation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *NewsEventRelationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *NewsEventRelationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *NewsEventRelationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *NewsEventRelationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *NewsEventRelationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *NewsEventRelationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *NewsEventRelationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown NewsEventRelation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *NewsEventRelationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown NewsEventRelation edge %s", name)
}

// NewsItemMutation represents an operation that mutates the NewsItem nodes in the graph.
type NewsItemMutation struct {
	config
	op            Op
	typ           string
	id            *int
	source_type   *string
	title         *string
	body          *string
	city_name     *string
	first_seen_at *time.Time
	url           *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*NewsItem, error)
	predicates    []predicate.NewsItem
}

var _ ent.Mutation = (*NewsItemMutation)(nil)

// newsitemOption allows management of the mutation configuration using functional options.
type newsitemOption func(*NewsItemMutation)

// newNewsItemMutation creates new mutation for the NewsItem entity.
func newNewsItemMutation(c config, op Op, opts ...newsitemOption) *NewsItemMutation {
	m := &NewsItemMutation{
		config:        c,
		op:            op,
		typ:           TypeNewsItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withNewsItemID sets the ID field of the mutation.
func withNewsItemID(id int) newsitemOption {
	return func(m *NewsItemMutation) {
		var (
			err   error
			once  sync.Once
			value *NewsItem
		)
		m.oldValue = func(ctx context.Context) (*NewsItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().NewsItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withNewsItem sets the old NewsItem of the mutation.
func withNewsItem(node *NewsItem) newsitemOption {
	return func(m *NewsItemMutation) {
		m.oldValue = func(context.Context) (*NewsItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m NewsItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m NewsItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *NewsItemMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *NewsItemMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().NewsItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSourceType sets the "source_type" field.
func (m *NewsItemMutation) SetSourceType(s string) {
	m.source_type = &s
}

// SourceType returns the value of the "source_type" field in the mutation.
func (m *NewsItemMutation) SourceType() (r string, exists bool) {
	v := m.source_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceType returns the old "source_type" field's value of the NewsItem entity.
// If the NewsItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NewsItemMutation) OldSourceType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceType: %w", err)
	}
	return oldValue.SourceType, nil
}

// ResetSourceType resets all changes to the "source_type" field.
func (m *NewsItemMutation) ResetSourceType() {
	m.source_type = nil
}

// SetTitle sets the "title" field.
func (m *NewsItemMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *NewsItemMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the NewsItem entity.
// If the NewsItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NewsItemMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *NewsItemMutation) ResetTitle() {
	m.title = nil
}

// SetBody sets the "body" field.
func (m *NewsItemMutation) SetBody(s string) {
	m.body = &s
}

// Body returns the value of the "body" field in the mutation.
func (m *NewsItemMutation) Body() (r string, exists bool) {
	v := m.body
	if v == nil {
		return
	}
	return *v, true
}

// OldBody returns the old "body" field's value of the NewsItem entity.
// If the NewsItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NewsItemMutation) OldBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBody: %w", err)
	}
	return oldValue.Body, nil
}

// ResetBody resets all changes to the "body" field.
func (m *NewsItemMutation) ResetBody() {
	m.body = nil
}

// SetCityName sets the "city_name" field.
func (m *NewsItemMutation) SetCityName(s string) {
	m.city_name = &s
}

// CityName returns the value of the "city_name" field in the mutation.
func (m *NewsItemMutation) CityName() (r string, exists bool) {
	v := m.city_name
	if v == nil {
		return
	}
	return *v, true
}

// OldCityName returns the old "city_name" field's value of the NewsItem entity.
// If the NewsItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NewsItemMutation) OldCityName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCityName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCityName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCityName: %w", err)
	}
	return oldValue.CityName, nil
}

// ResetCityName resets all changes to the "city_name" field.
func (m *NewsItemMutation) ResetCityName() {
	m.city_name = nil
}

// SetFirstSeenAt sets the "first_seen_at" field.
func (m *NewsItemMutation) SetFirstSeenAt(t time.Time) {
	m.first_seen_at = &t
}

// FirstSeenAt returns the value of the "first_seen_at" field in the mutation.
func (m *NewsItemMutation) FirstSeenAt() (r time.Time, exists bool) {
	v := m.first_seen_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstSeenAt returns the old "first_seen_at" field's value of the NewsItem entity.
// If the NewsItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NewsItemMutation) OldFirstSeenAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstSeenAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstSeenAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstSeenAt: %w", err)
	}
	return oldValue.FirstSeenAt, nil
}

// ResetFirstSeenAt resets all changes to the "first_seen_at" field.
func (m *NewsItemMutation) ResetFirstSeenAt() {
	m.first_seen_at = nil
}

// SetURL sets the "url" field.
func (m *NewsItemMutation) SetURL(s string) {
	m.url = &s
}

// URL returns the value of the "url" field in the mutation.
func (m *NewsItemMutation) URL() (r string, exists bool) {
	v := m.url
	if v == nil {
		return
	}
	return *v, true
}

// OldURL returns the old "url" field's value of the NewsItem entity.
// If the NewsItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NewsItemMutation) OldURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURL: %w", err)
	}
	return oldValue.URL, nil
}

// ResetURL resets all changes to the "url" field.
func (m *NewsItemMutation) ResetURL() {
	m.url = nil
}

// Where appends a list predicates to the NewsItemMutation builder.
func (m *NewsItemMutation) Where(ps ...predicate.NewsItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the NewsItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *NewsItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.NewsItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *NewsItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *NewsItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (NewsItem).
func (m *NewsItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *NewsItemMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.source_type != nil {
		fields = append(fields, newsitem.FieldSourceType)
	}
	if m.title != nil {
		fields = append(fields, newsitem.FieldTitle)
	}
	if m.body != nil {
		fields = append(fields, newsitem.FieldBody)
	}
	if m.city_name != nil {
		fields = append(fields, newsitem.FieldCityName)
	}
	if m.first_seen_at != nil {
		fields = append(fields, newsitem.FieldFirstSeenAt)
	}
	if m.url != nil {
		fields = append(fields, newsitem.FieldURL)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *NewsItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case newsitem.FieldSourceType:
		return m.SourceType()
	case newsitem.FieldTitle:
		return m.Title()
	case newsitem.FieldBody:
		return m.Body()
	case newsitem.FieldCityName:
		return m.CityName()
	case newsitem.FieldFirstSeenAt:
		return m.FirstSeenAt()
	case newsitem.FieldURL:
		return m.URL()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *NewsItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case newsitem.FieldSourceType:
		return m.OldSourceType(ctx)
	case newsitem.FieldTitle:
		return m.OldTitle(ctx)
	case newsitem.FieldBody:
		return m.OldBody(ctx)
	case newsitem.FieldCityName:
		return m.OldCityName(ctx)
	case newsitem.FieldFirstSeenAt:
		return m.OldFirstSeenAt(ctx)
	case newsitem.FieldURL:
		return m.OldURL(ctx)
	}
	return nil, fmt.Errorf("unknown NewsItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NewsItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case newsitem.FieldSourceType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceType(v)
		return nil
	case newsitem.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case newsitem.FieldBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBody(v)
		return nil
	case newsitem.FieldCityName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCityName(v)
		return nil
	case newsitem.FieldFirstSeenAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstSeenAt(v)
		return nil
	case newsitem.FieldURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURL(v)
		return nil
	}
	return fmt.Errorf("unknown NewsItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *NewsItemMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *NewsItemMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NewsItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown NewsItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *NewsItemMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *NewsItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *NewsItemMutation) ClearField(name string) error {
	return fmt.Errorf("unknown NewsItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *NewsItemMutation) ResetField(name string) error {
	switch name {
	case newsitem.FieldSourceType:
		m.ResetSourceType()
		return nil
	case newsitem.FieldTitle:
		m.ResetTitle()
		return nil
	case newsitem.FieldBody:
		m.ResetBody()
		return nil
	case newsitem.FieldCityName:
		m.ResetCityName()
		return nil
	case newsitem.FieldFirstSeenAt:
		m.ResetFirstSeenAt()
		return nil
	case newsitem.FieldURL:
		m.ResetURL()
		return nil
	}
	return fmt.Errorf("unknown NewsItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *NewsItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *NewsItemMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *NewsItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *NewsItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *NewsItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *NewsItemMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *NewsItemMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown NewsItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *NewsItemMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown NewsItem edge %s", name)
}

// ProcessingLogMutation represents an operation that mutates the ProcessingLog nodes in the graph.
type ProcessingLogMutation struct {
	config
	op              Op
	typ             string
	id              *int
	task_type       *string
	task_id         *string
	start_time      *time.Time
	end_time        *time.Time
	status          *string
	total           *int
	addtotal        *int
	success         *int
	addsuccess      *int
	failed          *int
	addfailed       *int
	error_message   *string
	config_snapshot *map[string]interface{}
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*ProcessingLog, error)
	predicates      []predicate.ProcessingLog
}

var _ ent.Mutation = (*ProcessingLogMutation)(nil)

// processinglogOption allows management of the mutation configuration using functional options.
type processinglogOption func(*ProcessingLogMutation)

// newProcessingLogMutation creates new mutation for the ProcessingLog entity.
func newProcessingLogMutation(c config, op Op, opts ...processinglogOption) *ProcessingLogMutation {
	m := &ProcessingLogMutation{
		config:        c,
		op:            op,
		typ:           TypeProcessingLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProcessingLogID sets the ID field of the mutation.
func withProcessingLogID(id int) processinglogOption {
	return func(m *ProcessingLogMutation) {
		var (
			err   error
			once  sync.Once
			value *ProcessingLog
		)
		m.oldValue = func(ctx context.Context) (*ProcessingLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProcessingLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProcessingLog sets the old ProcessingLog of the mutation.
func withProcessingLog(node *ProcessingLog) processinglogOption {
	return func(m *ProcessingLogMutation) {
		m.oldValue = func(context.Context) (*ProcessingLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProcessingLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProcessingLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProcessingLogMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProcessingLogMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProcessingLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskType sets the "task_type" field.
func (m *ProcessingLogMutation) SetTaskType(s string) {
	m.task_type = &s
}

// TaskType returns the value of the "task_type" field in the mutation.
func (m *ProcessingLogMutation) TaskType() (r string, exists bool) {
	v := m.task_type
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskType returns the old "task_type" field's value of the ProcessingLog entity.
// If the ProcessingLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingLogMutation) OldTaskType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskType: %w", err)
	}
	return oldValue.TaskType, nil
}

// ResetTaskType resets all changes to the "task_type" field.
func (m *ProcessingLogMutation) ResetTaskType() {
	m.task_type = nil
}

// SetTaskID sets the "task_id" field.
func (m *ProcessingLogMutation) SetTaskID(s string) {
	m.task_id = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *ProcessingLogMutation) TaskID() (r string, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the ProcessingLog entity.
// If the ProcessingLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingLogMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *ProcessingLogMutation) ResetTaskID() {
	m.task_id = nil
}

// SetStartTime sets the "start_time" field.
func (m *ProcessingLogMutation) SetStartTime(t time.Time) {
	m.start_time = &t
}

// StartTime returns the value of the "start_time" field in the mutation.
func (m *ProcessingLogMutation) StartTime() (r time.Time, exists bool) {
	v := m.start_time
	if v == nil {
		return
	}
	return *v, true
}

// OldStartTime returns the old "start_time" field's value of the ProcessingLog entity.
// If the ProcessingLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingLogMutation) OldStartTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartTime: %w", err)
	}
	return oldValue.StartTime, nil
}

// ResetStartTime resets all changes to the "start_time" field.
func (m *ProcessingLogMutation) ResetStartTime() {
	m.start_time = nil
}

// SetEndTime sets the "end_time" field.
func (m *ProcessingLogMutation) SetEndTime(t time.Time) {
	m.end_time = &t
}

// EndTime returns the value of the "end_time" field in the mutation.
func (m *ProcessingLogMutation) EndTime() (r time.Time, exists bool) {
	v := m.end_time
	if v == nil {
		return
	}
	return *v, true
}

// OldEndTime returns the old "end_time" field's value of the ProcessingLog entity.
// If the ProcessingLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingLogMutation) OldEndTime(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndTime: %w", err)
	}
	return oldValue.EndTime, nil
}

// ClearEndTime clears the value of the "end_time" field.
func (m *ProcessingLogMutation) ClearEndTime() {
	m.end_time = nil
	m.clearedFields[processinglog.FieldEndTime] = struct{}{}
}

// EndTimeCleared returns if the "end_time" field was cleared in this mutation.
func (m *ProcessingLogMutation) EndTimeCleared() bool {
	_, ok := m.clearedFields[processinglog.FieldEndTime]
	return ok
}

// ResetEndTime resets all changes to the "end_time" field.
func (m *ProcessingLogMutation) ResetEndTime() {
	m.end_time = nil
	delete(m.clearedFields, processinglog.FieldEndTime)
}

// SetStatus sets the "status" field.
func (m *ProcessingLogMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ProcessingLogMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ProcessingLog entity.
// If the ProcessingLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingLogMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ProcessingLogMutation) ResetStatus() {
	m.status = nil
}

// SetTotal sets the "total" field.
func (m *ProcessingLogMutation) SetTotal(i int) {
	m.total = &i
	m.addtotal = nil
}

// Total returns the value of the "total" field in the mutation.
func (m *ProcessingLogMutation) Total() (r int, exists bool) {
	v := m.total
	if v == nil {
		return
	}
	return *v, true
}

// OldTotal returns the old "total" field's value of the ProcessingLog entity.
// If the ProcessingLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingLogMutation) OldTotal(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotal: %w", err)
	}
	return oldValue.Total, nil
}

// AddTotal adds i to the "total" field.
func (m *ProcessingLogMutation) AddTotal(i int) {
	if m.addtotal != nil {
		*m.addtotal += i
	} else {
		m.addtotal = &i
	}
}

// AddedTotal returns the value that was added to the "total" field in this mutation.
func (m *ProcessingLogMutation) AddedTotal() (r int, exists bool) {
	v := m.addtotal
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotal resets all changes to the "total" field.
func (m *ProcessingLogMutation) ResetTotal() {
	m.total = nil
	m.addtotal = nil
}

// SetSuccess sets the "success" field.
func (m *ProcessingLogMutation) SetSuccess(i int) {
	m.success = &i
	m.addsuccess = nil
}

// Success returns the value of the "success" field in the mutation.
func (m *ProcessingLogMutation) Success() (r int, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the ProcessingLog entity.
// If the ProcessingLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingLogMutation) OldSuccess(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// AddSuccess adds i to the "success" field.
func (m *ProcessingLogMutation) AddSuccess(i int) {
	if m.addsuccess != nil {
		*m.addsuccess += i
	} else {
		m.addsuccess = &i
	}
}

// AddedSuccess returns the value that was added to the "success" field in this mutation.
func (m *ProcessingLogMutation) AddedSuccess() (r int, exists bool) {
	v := m.addsuccess
	if v == nil {
		return
	}
	return *v, true
}

// ResetSuccess resets all changes to the "success" field.
func (m *ProcessingLogMutation) ResetSuccess() {
	m.success = nil
	m.addsuccess = nil
}

// SetFailed sets the "failed" field.
func (m *ProcessingLogMutation) SetFailed(i int) {
	m.failed = &i
	m.addfailed = nil
}

// Failed returns the value of the "failed" field in the mutation.
func (m *ProcessingLogMutation) Failed() (r int, exists bool) {
	v := m.failed
	if v == nil {
		return
	}
	return *v, true
}

// OldFailed returns the old "failed" field's value of the ProcessingLog entity.
// If the ProcessingLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingLogMutation) OldFailed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailed: %w", err)
	}
	return oldValue.Failed, nil
}

// AddFailed adds i to the "failed" field.
func (m *ProcessingLogMutation) AddFailed(i int) {
	if m.addfailed != nil {
		*m.addfailed += i
	} else {
		m.addfailed = &i
	}
}

// AddedFailed returns the value that was added to the "failed" field in this mutation.
func (m *ProcessingLogMutation) AddedFailed() (r int, exists bool) {
	v := m.addfailed
	if v == nil {
		return
	}
	return *v, true
}

// ResetFailed resets all changes to the "failed" field.
func (m *ProcessingLogMutation) ResetFailed() {
	m.failed = nil
	m.addfailed = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *ProcessingLogMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ProcessingLogMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ProcessingLog entity.
// If the ProcessingLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingLogMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ProcessingLogMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[processinglog.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ProcessingLogMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[processinglog.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ProcessingLogMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, processinglog.FieldErrorMessage)
}

// SetConfigSnapshot sets the "config_snapshot" field.
func (m *ProcessingLogMutation) SetConfigSnapshot(value map[string]interface{}) {
	m.config_snapshot = &value
}

// ConfigSnapshot returns the value of the "config_snapshot" field in the mutation.
func (m *ProcessingLogMutation) ConfigSnapshot() (r map[string]interface{}, exists bool) {
	v := m.config_snapshot
	if v == nil {
		return
	}
	return *v, true
}

// OldConfigSnapshot returns the old "config_snapshot" field's value of the ProcessingLog entity.
// If the ProcessingLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingLogMutation) OldConfigSnapshot(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfigSnapshot is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfigSnapshot requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfigSnapshot: %w", err)
	}
	return oldValue.ConfigSnapshot, nil
}

// ClearConfigSnapshot clears the value of the "config_snapshot" field.
func (m *ProcessingLogMutation) ClearConfigSnapshot() {
	m.config_snapshot = nil
	m.clearedFields[processinglog.FieldConfigSnapshot] = struct{}{}
}

// ConfigSnapshotCleared returns if the "config_snapshot" field was cleared in this mutation.
func (m *ProcessingLogMutation) ConfigSnapshotCleared() bool {
	_, ok := m.clearedFields[processinglog.FieldConfigSnapshot]
	return ok
}

// ResetConfigSnapshot resets all changes to the "config_snapshot" field.
func (m *ProcessingLogMutation) ResetConfigSnapshot() {
	m.config_snapshot = nil
	delete(m.clearedFields, processinglog.FieldConfigSnapshot)
}

// Where appends a list predicates to the ProcessingLogMutation builder.
func (m *ProcessingLogMutation) Where(ps ...predicate.ProcessingLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProcessingLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProcessingLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProcessingLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProcessingLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProcessingLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProcessingLog).
func (m *ProcessingLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProcessingLogMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.task_type != nil {
		fields = append(fields, processinglog.FieldTaskType)
	}
	if m.task_id != nil {
		fields = append(fields, processinglog.FieldTaskID)
	}
	if m.start_time != nil {
		fields = append(fields, processinglog.FieldStartTime)
	}
	if m.end_time != nil {
		fields = append(fields, processinglog.FieldEndTime)
	}
	if m.status != nil {
		fields = append(fields, processinglog.FieldStatus)
	}
	if m.total != nil {
		fields = append(fields, processinglog.FieldTotal)
	}
	if m.success != nil {
		fields = append(fields, processinglog.FieldSuccess)
	}
	if m.failed != nil {
		fields = append(fields, processinglog.FieldFailed)
	}
	if m.error_message != nil {
		fields = append(fields, processinglog.FieldErrorMessage)
	}
	if m.config_snapshot != nil {
		fields = append(fields, processinglog.FieldConfigSnapshot)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProcessingLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case processinglog.FieldTaskType:
		return m.TaskType()
	case processinglog.FieldTaskID:
		return m.TaskID()
	case processinglog.FieldStartTime:
		return m.StartTime()
	case processinglog.FieldEndTime:
		return m.EndTime()
	case processinglog.FieldStatus:
		return m.Status()
	case processinglog.FieldTotal:
		return m.Total()
	case processinglog.FieldSuccess:
		return m.Success()
	case processinglog.FieldFailed:
		return m.Failed()
	case processinglog.FieldErrorMessage:
		return m.ErrorMessage()
	case processinglog.FieldConfigSnapshot:
		return m.ConfigSnapshot()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProcessingLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case processinglog.FieldTaskType:
		return m.OldTaskType(ctx)
	case processinglog.FieldTaskID:
		return m.OldTaskID(ctx)
	case processinglog.FieldStartTime:
		return m.OldStartTime(ctx)
	case processinglog.FieldEndTime:
		return m.OldEndTime(ctx)
	case processinglog.FieldStatus:
		return m.OldStatus(ctx)
	case processinglog.FieldTotal:
		return m.OldTotal(ctx)
	case processinglog.FieldSuccess:
		return m.OldSuccess(ctx)
	case processinglog.FieldFailed:
		return m.OldFailed(ctx)
	case processinglog.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case processinglog.FieldConfigSnapshot:
		return m.OldConfigSnapshot(ctx)
	}
	return nil, fmt.Errorf("unknown ProcessingLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProcessingLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case processinglog.FieldTaskType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskType(v)
		return nil
	case processinglog.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case processinglog.FieldStartTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartTime(v)
		return nil
	case processinglog.FieldEndTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndTime(v)
		return nil
	case processinglog.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case processinglog.FieldTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotal(v)
		return nil
	case processinglog.FieldSuccess:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case processinglog.FieldFailed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailed(v)
		return nil
	case processinglog.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case processinglog.FieldConfigSnapshot:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfigSnapshot(v)
		return nil
	}
	return fmt.Errorf("unknown ProcessingLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProcessingLogMutation) AddedFields() []string {
	var fields []string
	if m.addtotal != nil {
		fields = append(fields, processinglog.FieldTotal)
	}
	if m.addsuccess != nil {
		fields = append(fields, processinglog.FieldSuccess)
	}
	if m.addfailed != nil {
		fields = append(fields, processinglog.FieldFailed)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProcessingLogMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case processinglog.FieldTotal:
		return m.AddedTotal()
	case processinglog.FieldSuccess:
		return m.AddedSuccess()
	case processinglog.FieldFailed:
		return m.AddedFailed()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProcessingLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	case processinglog.FieldTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotal(v)
		return nil
	case processinglog.FieldSuccess:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSuccess(v)
		return nil
	case processinglog.FieldFailed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFailed(v)
		return nil
	}
	return fmt.Errorf("unknown ProcessingLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProcessingLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(processinglog.FieldEndTime) {
		fields = append(fields, processinglog.FieldEndTime)
	}
	if m.FieldCleared(processinglog.FieldErrorMessage) {
		fields = append(fields, processinglog.FieldErrorMessage)
	}
	if m.FieldCleared(processinglog.FieldConfigSnapshot) {
		fields = append(fields, processinglog.FieldConfigSnapshot)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProcessingLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProcessingLogMutation) ClearField(name string) error {
	switch name {
	case processinglog.FieldEndTime:
		m.ClearEndTime()
		return nil
	case processinglog.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case processinglog.FieldConfigSnapshot:
		m.ClearConfigSnapshot()
		return nil
	}
	return fmt.Errorf("unknown ProcessingLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProcessingLogMutation) ResetField(name string) error {
	switch name {
	case processinglog.FieldTaskType:
		m.ResetTaskType()
		return nil
	case processinglog.FieldTaskID:
		m.ResetTaskID()
		return nil
	case processinglog.FieldStartTime:
		m.ResetStartTime()
		return nil
	case processinglog.FieldEndTime:
		m.ResetEndTime()
		return nil
	case processinglog.FieldStatus:
		m.ResetStatus()
		return nil
	case processinglog.FieldTotal:
		m.ResetTotal()
		return nil
	case processinglog.FieldSuccess:
		m.ResetSuccess()
		return nil
	case processinglog.FieldFailed:
		m.ResetFailed()
		return nil
	case processinglog.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case processinglog.FieldConfigSnapshot:
		m.ResetConfigSnapshot()
		return nil
	}
	return fmt.Errorf("unknown ProcessingLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProcessingLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProcessingLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProcessingLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProcessingLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProcessingLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProcessingLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProcessingLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ProcessingLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProcessingLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ProcessingLog edge %s", name)
}
