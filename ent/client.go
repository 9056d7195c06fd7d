// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/newsflow/hotaggr/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/newsflow/hotaggr/ent/event"
	"github.com/newsflow/hotaggr/ent/eventhistoryrelation"
	"github.com/newsflow/hotaggr/ent/newseventrelation"
	"github.com/newsflow/hotaggr/ent/newsitem"
	"github.com/newsflow/hotaggr/ent/processinglog"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Event is the client for interacting with the Event builders.
	Event *EventClient
	// EventHistoryRelation is the client for interacting with the EventHistoryRelation builders.
	EventHistoryRelation *EventHistoryRelationClient
	// NewsEventRelation is the client for interacting with the NewsEventRelation builders.
	NewsEventRelation *NewsEventRelationClient
	// NewsItem is the client for interacting with the NewsItem builders.
	NewsItem *NewsItemClient
	// ProcessingLog is the client for interacting with the ProcessingLog builders.
	ProcessingLog *ProcessingLogClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Event = NewEventClient(c.config)
	c.EventHistoryRelation = NewEventHistoryRelationClient(c.config)
	c.NewsEventRelation = NewNewsEventRelationClient(c.config)
	c.NewsItem = NewNewsItemClient(c.config)
	c.ProcessingLog = NewProcessingLogClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                  ctx,
		config:               cfg,
		Event:                NewEventClient(cfg),
		EventHistoryRelation: NewEventHistoryRelationClient(cfg),
		NewsEventRelation:    NewNewsEventRelationClient(cfg),
		NewsItem:             NewNewsItemClient(cfg),
		ProcessingLog:        NewProcessingLogClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:                  ctx,
		config:               cfg,
		Event:                NewEventClient(cfg),
		EventHistoryRelation: NewEventHistoryRelationClient(cfg),
		NewsEventRelation:    NewNewsEventRelationClient(cfg),
		NewsItem:             NewNewsItemClient(cfg),
		ProcessingLog:        NewProcessingLogClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Event.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.Event.Use(hooks...)
	c.EventHistoryRelation.Use(hooks...)
	c.NewsEventRelation.Use(hooks...)
	c.NewsItem.Use(hooks...)
	c.ProcessingLog.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Event.Intercept(interceptors...)
	c.EventHistoryRelation.Intercept(interceptors...)
	c.NewsEventRelation.Intercept(interceptors...)
	c.NewsItem.Intercept(interceptors...)
	c.ProcessingLog.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *EventMutation:
		return c.Event.mutate(ctx, m)
	case *EventHistoryRelationMutation:
		return c.EventHistoryRelation.mutate(ctx, m)
	case *NewsEventRelationMutation:
		return c.NewsEventRelation.mutate(ctx, m)
	case *NewsItemMutation:
		return c.NewsItem.mutate(ctx, m)
	case *ProcessingLogMutation:
		return c.ProcessingLog.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// EventClient is a client for the Event schema.
type EventClient struct {
	config
}

// NewEventClient returns a client for the Event from the given config.
func NewEventClient(c config) *EventClient {
	return &EventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `event.Hooks(f(g(h())))`.
func (c *EventClient) Use(hooks ...Hook) {
	c.hooks.Event = append(c.hooks.Event, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `event.Intercept(f(g(h())))`.
func (c *EventClient) Intercept(interceptors ...Interceptor) {
	c.inters.Event = append(c.inters.Event, interceptors...)
}

// Create returns a builder for creating a Event entity.
func (c *EventClient) Create() *EventCreate {
	mutation := newEventMutation(c.config, OpCreate)
	return &EventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Event entities.
func (c *EventClient) CreateBulk(builders ...*EventCreate) *EventCreateBulk {
	return &EventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EventClient) MapCreateBulk(slice any, setFunc func(*EventCreate, int)) *EventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EventCreateBulk{err: fmt.Errorf("calling to EventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Event.
func (c *EventClient) Update() *EventUpdate {
	mutation := newEventMutation(c.config, OpUpdate)
	return &EventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EventClient) UpdateOne(_m *Event) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEvent(_m))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EventClient) UpdateOneID(id int) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEventID(id))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Event.
func (c *EventClient) Delete() *EventDelete {
	mutation := newEventMutation(c.config, OpDelete)
	return &EventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EventClient) DeleteOne(_m *Event) *EventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EventClient) DeleteOneID(id int) *EventDeleteOne {
	builder := c.Delete().Where(event.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EventDeleteOne{builder}
}

// Query returns a query builder for Event.
func (c *EventClient) Query() *EventQuery {
	return &EventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a Event entity by its id.
func (c *EventClient) Get(ctx context.Context, id int) (*Event, error) {
	return c.Query().Where(event.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EventClient) GetX(ctx context.Context, id int) *Event {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EventClient) Hooks() []Hook {
	return c.hooks.Event
}

// Interceptors returns the client interceptors.
func (c *EventClient) Interceptors() []Interceptor {
	return c.inters.Event
}

func (c *EventClient) mutate(ctx context.Context, m *EventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Event mutation op: %q", m.Op())
	}
}

// EventHistoryRelationClient is a client for the EventHistoryRelation schema.
type EventHistoryRelationClient struct {
	config
}

// NewEventHistoryRelationClient returns a client for the EventHistoryRelation from the given config.
func NewEventHistoryRelationClient(c config) *EventHistoryRelationClient {
	return &EventHistoryRelationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `eventhistoryrelation.Hooks(f(g(h())))`.
func (c *EventHistoryRelationClient) Use(hooks ...Hook) {
	c.hooks.EventHistoryRelation = append(c.hooks.EventHistoryRelation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `eventhistoryrelation.Intercept(f(g(h())))`.
func (c *EventHistoryRelationClient) Intercept(interceptors ...Interceptor) {
	c.inters.EventHistoryRelation = append(c.inters.EventHistoryRelation, interceptors...)
}

// Create returns a builder for creating a EventHistoryRelation entity.
func (c *EventHistoryRelationClient) Create() *EventHistoryRelationCreate {
	mutation := newEventHistoryRelationMutation(c.config, OpCreate)
	return &EventHistoryRelationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EventHistoryRelation entities.
func (c *EventHistoryRelationClient) CreateBulk(builders ...*EventHistoryRelationCreate) *EventHistoryRelationCreateBulk {
	return &EventHistoryRelationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EventHistoryRelationClient) MapCreateBulk(slice any, setFunc func(*EventHistoryRelationCreate, int)) *EventHistoryRelationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EventHistoryRelationCreateBulk{err: fmt.Errorf("calling to EventHistoryRelationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EventHistoryRelationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EventHistoryRelationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EventHistoryRelation.
func (c *EventHistoryRelationClient) Update() *EventHistoryRelationUpdate {
	mutation := newEventHistoryRelationMutation(c.config, OpUpdate)
	return &EventHistoryRelationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EventHistoryRelationClient) UpdateOne(_m *EventHistoryRelation) *EventHistoryRelationUpdateOne {
	mutation := newEventHistoryRelationMutation(c.config, OpUpdateOne, withEventHistoryRelation(_m))
	return &EventHistoryRelationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EventHistoryRelationClient) UpdateOneID(id int) *EventHistoryRelationUpdateOne {
	mutation := newEventHistoryRelationMutation(c.config, OpUpdateOne, withEventHistoryRelationID(id))
	return &EventHistoryRelationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EventHistoryRelation.
func (c *EventHistoryRelationClient) Delete() *EventHistoryRelationDelete {
	mutation := newEventHistoryRelationMutation(c.config, OpDelete)
	return &EventHistoryRelationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EventHistoryRelationClient) DeleteOne(_m *EventHistoryRelation) *EventHistoryRelationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EventHistoryRelationClient) DeleteOneID(id int) *EventHistoryRelationDeleteOne {
	builder := c.Delete().Where(eventhistoryrelation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EventHistoryRelationDeleteOne{builder}
}

// Query returns a query builder for EventHistoryRelation.
func (c *EventHistoryRelationClient) Query() *EventHistoryRelationQuery {
	return &EventHistoryRelationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEventHistoryRelation},
		inters: c.Interceptors(),
	}
}

// Get returns a EventHistoryRelation entity by its id.
func (c *EventHistoryRelationClient) Get(ctx context.Context, id int) (*EventHistoryRelation, error) {
	return c.Query().Where(eventhistoryrelation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EventHistoryRelationClient) GetX(ctx context.Context, id int) *EventHistoryRelation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EventHistoryRelationClient) Hooks() []Hook {
	return c.hooks.EventHistoryRelation
}

// Interceptors returns the client interceptors.
func (c *EventHistoryRelationClient) Interceptors() []Interceptor {
	return c.inters.EventHistoryRelation
}

func (c *EventHistoryRelationClient) mutate(ctx context.Context, m *EventHistoryRelationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EventHistoryRelationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EventHistoryRelationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EventHistoryRelationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EventHistoryRelationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EventHistoryRelation mutation op: %q", m.Op())
	}
}

// NewsEventRelationClient is a client for the NewsEventRelation schema.
type NewsEventRelationClient struct {
	config
}

// NewNewsEventRelationClient returns a client for the NewsEventRelation from the given config.
func NewNewsEventRelationClient(c config) *NewsEventRelationClient {
	return &NewsEventRelationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `newseventrelation.Hooks(f(g(h())))`.
func (c *NewsEventRelationClient) Use(hooks ...Hook) {
	c.hooks.NewsEventRelation = append(c.hooks.NewsEventRelation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `newseventrelation.Intercept(f(g(h())))`.
func (c *NewsEventRelationClient) Intercept(interceptors ...Interceptor) {
	c.inters.NewsEventRelation = append(c.inters.NewsEventRelation, interceptors...)
}

// Create returns a builder for creating a NewsEventRelation entity.
func (c *NewsEventRelationClient) Create() *NewsEventRelationCreate {
	mutation := newNewsEventRelationMutation(c.config, OpCreate)
	return &NewsEventRelationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of NewsEventRelation entities.
func (c *NewsEventRelationClient) CreateBulk(builders ...*NewsEventRelationCreate) *NewsEventRelationCreateBulk {
	return &NewsEventRelationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *NewsEventRelationClient) MapCreateBulk(slice any, setFunc func(*NewsEventRelationCreate, int)) *NewsEventRelationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &NewsEventRelationCreateBulk{err: fmt.Errorf("calling to NewsEventRelationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*NewsEventRelationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &NewsEventRelationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for NewsEventRelation.
func (c *NewsEventRelationClient) Update() *NewsEventRelationUpdate {
	mutation := newNewsEventRelationMutation(c.config, OpUpdate)
	return &NewsEventRelationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *NewsEventRelationClient) UpdateOne(_m *NewsEventRelation) *NewsEventRelationUpdateOne {
	mutation := newNewsEventRelationMutation(c.config, OpUpdateOne, withNewsEventRelation(_m))
	return &NewsEventRelationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *NewsEventRelationClient) UpdateOneID(id int) *NewsEventRelationUpdateOne {
	mutation := newNewsEventRelationMutation(c.config, OpUpdateOne, withNewsEventRelationID(id))
	return &NewsEventRelationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for NewsEventRelation.
func (c *NewsEventRelationClient) Delete() *NewsEventRelationDelete {
	mutation := newNewsEventRelationMutation(c.config, OpDelete)
	return &NewsEventRelationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *NewsEventRelationClient) DeleteOne(_m *NewsEventRelation) *NewsEventRelationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *NewsEventRelationClient) DeleteOneID(id int) *NewsEventRelationDeleteOne {
	builder := c.Delete().Where(newseventrelation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &NewsEventRelationDeleteOne{builder}
}

// Query returns a query builder for NewsEventRelation.
func (c *NewsEventRelationClient) Query() *NewsEventRelationQuery {
	return &NewsEventRelationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeNewsEventRelation},
		inters: c.Interceptors(),
	}
}

// Get returns a NewsEventRelation entity by its id.
func (c *NewsEventRelationClient) Get(ctx context.Context, id int) (*NewsEventRelation, error) {
	return c.Query().Where(newseventrelation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *NewsEventRelationClient) GetX(ctx context.Context, id int) *NewsEventRelation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *NewsEventRelationClient) Hooks() []Hook {
	return c.hooks.NewsEventRelation
}

// Interceptors returns the client interceptors.
func (c *NewsEventRelationClient) Interceptors() []Interceptor {
	return c.inters.NewsEventRelation
}

func (c *NewsEventRelationClient) mutate(ctx context.Context, m *NewsEventRelationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&NewsEventRelationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&NewsEventRelationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&NewsEventRelationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&NewsEventRelationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown NewsEventRelation mutation op: %q", m.Op())
	}
}

// NewsItemClient is a client for the NewsItem schema.
type NewsItemClient struct {
	config
}

// NewNewsItemClient returns a client for the NewsItem from the given config.
func NewNewsItemClient(c config) *NewsItemClient {
	return &NewsItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `newsitem.Hooks(f(g(h())))`.
func (c *NewsItemClient) Use(hooks ...Hook) {
	c.hooks.NewsItem = append(c.hooks.NewsItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `newsitem.Intercept(f(g(h())))`.
func (c *NewsItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.NewsItem = append(c.inters.NewsItem, interceptors...)
}

// Create returns a builder for creating a NewsItem entity.
func (c *NewsItemClient) Create() *NewsItemCreate {
	mutation := newNewsItemMutation(c.config, OpCreate)
	return &NewsItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of NewsItem entities.
func (c *NewsItemClient) CreateBulk(builders ...*NewsItemCreate) *NewsItemCreateBulk {
	return &NewsItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *NewsItemClient) MapCreateBulk(slice any, setFunc func(*NewsItemCreate, int)) *NewsItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &NewsItemCreateBulk{err: fmt.Errorf("calling to NewsItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*NewsItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &NewsItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for NewsItem.
func (c *NewsItemClient) Update() *NewsItemUpdate {
	mutation := newNewsItemMutation(c.config, OpUpdate)
	return &NewsItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *NewsItemClient) UpdateOne(_m *NewsItem) *NewsItemUpdateOne {
	mutation := newNewsItemMutation(c.config, OpUpdateOne, withNewsItem(_m))
	return &NewsItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *NewsItemClient) UpdateOneID(id int) *NewsItemUpdateOne {
	mutation := newNewsItemMutation(c.config, OpUpdateOne, withNewsItemID(id))
	return &NewsItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for NewsItem.
func (c *NewsItemClient) Delete() *NewsItemDelete {
	mutation := newNewsItemMutation(c.config, OpDelete)
	return &NewsItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *NewsItemClient) DeleteOne(_m *NewsItem) *NewsItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *NewsItemClient) DeleteOneID(id int) *NewsItemDeleteOne {
	builder := c.Delete().Where(newsitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &NewsItemDeleteOne{builder}
}

// Query returns a query builder for NewsItem.
func (c *NewsItemClient) Query() *NewsItemQuery {
	return &NewsItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeNewsItem},
		inters: c.Interceptors(),
	}
}

// Get returns a NewsItem entity by its id.
func (c *NewsItemClient) Get(ctx context.Context, id int) (*NewsItem, error) {
	return c.Query().Where(newsitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *NewsItemClient) GetX(ctx context.Context, id int) *NewsItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *NewsItemClient) Hooks() []Hook {
	return c.hooks.NewsItem
}

// Interceptors returns the client interceptors.
func (c *NewsItemClient) Interceptors() []Interceptor {
	return c.inters.NewsItem
}

func (c *NewsItemClient) mutate(ctx context.Context, m *NewsItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&NewsItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&NewsItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&NewsItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&NewsItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown NewsItem mutation op: %q", m.Op())
	}
}

// ProcessingLogClient is a client for the ProcessingLog schema.
type ProcessingLogClient struct {
	config
}

// NewProcessingLogClient returns a client for the ProcessingLog from the given config.
func NewProcessingLogClient(c config) *ProcessingLogClient {
	return &ProcessingLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `processinglog.Hooks(f(g(h())))`.
func (c *ProcessingLogClient) Use(hooks ...Hook) {
	c.hooks.ProcessingLog = append(c.hooks.ProcessingLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `processinglog.Intercept(f(g(h())))`.
func (c *ProcessingLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProcessingLog = append(c.inters.ProcessingLog, interceptors...)
}

// Create returns a builder for creating a ProcessingLog entity.
func (c *ProcessingLogClient) Create() *ProcessingLogCreate {
	mutation := newProcessingLogMutation(c.config, OpCreate)
	return &ProcessingLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProcessingLog entities.
func (c *ProcessingLogClient) CreateBulk(builders ...*ProcessingLogCreate) *ProcessingLogCreateBulk {
	return &ProcessingLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProcessingLogClient) MapCreateBulk(slice any, setFunc func(*ProcessingLogCreate, int)) *ProcessingLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProcessingLogCreateBulk{err: fmt.Errorf("calling to ProcessingLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProcessingLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProcessingLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProcessingLog.
func (c *ProcessingLogClient) Update() *ProcessingLogUpdate {
	mutation := newProcessingLogMutation(c.config, OpUpdate)
	return &ProcessingLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProcessingLogClient) UpdateOne(_m *ProcessingLog) *ProcessingLogUpdateOne {
	mutation := newProcessingLogMutation(c.config, OpUpdateOne, withProcessingLog(_m))
	return &ProcessingLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProcessingLogClient) UpdateOneID(id int) *ProcessingLogUpdateOne {
	mutation := newProcessingLogMutation(c.config, OpUpdateOne, withProcessingLogID(id))
	return &ProcessingLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProcessingLog.
func (c *ProcessingLogClient) Delete() *ProcessingLogDelete {
	mutation := newProcessingLogMutation(c.config, OpDelete)
	return &ProcessingLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProcessingLogClient) DeleteOne(_m *ProcessingLog) *ProcessingLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProcessingLogClient) DeleteOneID(id int) *ProcessingLogDeleteOne {
	builder := c.Delete().Where(processinglog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProcessingLogDeleteOne{builder}
}

// Query returns a query builder for ProcessingLog.
func (c *ProcessingLogClient) Query() *ProcessingLogQuery {
	return &ProcessingLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProcessingLog},
		inters: c.Interceptors(),
	}
}

// Get returns a ProcessingLog entity by its id.
func (c *ProcessingLogClient) Get(ctx context.Context, id int) (*ProcessingLog, error) {
	return c.Query().Where(processinglog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProcessingLogClient) GetX(ctx context.Context, id int) *ProcessingLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProcessingLogClient) Hooks() []Hook {
	return c.hooks.ProcessingLog
}

// Interceptors returns the client interceptors.
func (c *ProcessingLogClient) Interceptors() []Interceptor {
	return c.inters.ProcessingLog
}

func (c *ProcessingLogClient) mutate(ctx context.Context, m *ProcessingLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProcessingLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProcessingLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProcessingLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProcessingLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProcessingLog mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Event, EventHistoryRelation, NewsEventRelation, NewsItem,
		ProcessingLog []ent.Hook
	}
	inters struct {
		Event, EventHistoryRelation, NewsEventRelation, NewsItem,
		ProcessingLog []ent.Interceptor
	}
)
