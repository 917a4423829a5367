// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"po-tracker/gen/ent/migrate"

	"po-tracker/gen/ent/extractjob"
	"po-tracker/gen/ent/poheader"
	"po-tracker/gen/ent/polineitem"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ExtractJob is the client for interacting with the ExtractJob builders.
	ExtractJob *ExtractJobClient
	// POHeader is the client for interacting with the POHeader builders.
	POHeader *POHeaderClient
	// POLineItem is the client for interacting with the POLineItem builders.
	POLineItem *POLineItemClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ExtractJob = NewExtractJobClient(c.config)
	c.POHeader = NewPOHeaderClient(c.config)
	c.POLineItem = NewPOLineItemClient(c.config)
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
		ctx:        ctx,
		config:     cfg,
		ExtractJob: NewExtractJobClient(cfg),
		POHeader:   NewPOHeaderClient(cfg),
		POLineItem: NewPOLineItemClient(cfg),
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
		ctx:        ctx,
		config:     cfg,
		ExtractJob: NewExtractJobClient(cfg),
		POHeader:   NewPOHeaderClient(cfg),
		POLineItem: NewPOLineItemClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ExtractJob.
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
	c.ExtractJob.Use(hooks...)
	c.POHeader.Use(hooks...)
	c.POLineItem.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.ExtractJob.Intercept(interceptors...)
	c.POHeader.Intercept(interceptors...)
	c.POLineItem.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ExtractJobMutation:
		return c.ExtractJob.mutate(ctx, m)
	case *POHeaderMutation:
		return c.POHeader.mutate(ctx, m)
	case *POLineItemMutation:
		return c.POLineItem.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ExtractJobClient is a client for the ExtractJob schema.
type ExtractJobClient struct {
	config
}

// NewExtractJobClient returns a client for the ExtractJob from the given config.
func NewExtractJobClient(c config) *ExtractJobClient {
	return &ExtractJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `extractjob.Hooks(f(g(h())))`.
func (c *ExtractJobClient) Use(hooks ...Hook) {
	c.hooks.ExtractJob = append(c.hooks.ExtractJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `extractjob.Intercept(f(g(h())))`.
func (c *ExtractJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExtractJob = append(c.inters.ExtractJob, interceptors...)
}

// Create returns a builder for creating a ExtractJob entity.
func (c *ExtractJobClient) Create() *ExtractJobCreate {
	mutation := newExtractJobMutation(c.config, OpCreate)
	return &ExtractJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExtractJob entities.
func (c *ExtractJobClient) CreateBulk(builders ...*ExtractJobCreate) *ExtractJobCreateBulk {
	return &ExtractJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExtractJobClient) MapCreateBulk(slice any, setFunc func(*ExtractJobCreate, int)) *ExtractJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExtractJobCreateBulk{err: fmt.Errorf("calling to ExtractJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExtractJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExtractJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExtractJob.
func (c *ExtractJobClient) Update() *ExtractJobUpdate {
	mutation := newExtractJobMutation(c.config, OpUpdate)
	return &ExtractJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExtractJobClient) UpdateOne(_m *ExtractJob) *ExtractJobUpdateOne {
	mutation := newExtractJobMutation(c.config, OpUpdateOne, withExtractJob(_m))
	return &ExtractJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExtractJobClient) UpdateOneID(id uuid.UUID) *ExtractJobUpdateOne {
	mutation := newExtractJobMutation(c.config, OpUpdateOne, withExtractJobID(id))
	return &ExtractJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExtractJob.
func (c *ExtractJobClient) Delete() *ExtractJobDelete {
	mutation := newExtractJobMutation(c.config, OpDelete)
	return &ExtractJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExtractJobClient) DeleteOne(_m *ExtractJob) *ExtractJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExtractJobClient) DeleteOneID(id uuid.UUID) *ExtractJobDeleteOne {
	builder := c.Delete().Where(extractjob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExtractJobDeleteOne{builder}
}

// Query returns a query builder for ExtractJob.
func (c *ExtractJobClient) Query() *ExtractJobQuery {
	return &ExtractJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExtractJob},
		inters: c.Interceptors(),
	}
}

// Get returns a ExtractJob entity by its id.
func (c *ExtractJobClient) Get(ctx context.Context, id uuid.UUID) (*ExtractJob, error) {
	return c.Query().Where(extractjob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExtractJobClient) GetX(ctx context.Context, id uuid.UUID) *ExtractJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryHeader queries the header edge of a ExtractJob.
func (c *ExtractJobClient) QueryHeader(_m *ExtractJob) *POHeaderQuery {
	query := (&POHeaderClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extractjob.Table, extractjob.FieldID, id),
			sqlgraph.To(poheader.Table, poheader.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extractjob.HeaderTable, extractjob.HeaderColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExtractJobClient) Hooks() []Hook {
	return c.hooks.ExtractJob
}

// Interceptors returns the client interceptors.
func (c *ExtractJobClient) Interceptors() []Interceptor {
	return c.inters.ExtractJob
}

func (c *ExtractJobClient) mutate(ctx context.Context, m *ExtractJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExtractJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExtractJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExtractJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExtractJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExtractJob mutation op: %q", m.Op())
	}
}

// POHeaderClient is a client for the POHeader schema.
type POHeaderClient struct {
	config
}

// NewPOHeaderClient returns a client for the POHeader from the given config.
func NewPOHeaderClient(c config) *POHeaderClient {
	return &POHeaderClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `poheader.Hooks(f(g(h())))`.
func (c *POHeaderClient) Use(hooks ...Hook) {
	c.hooks.POHeader = append(c.hooks.POHeader, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `poheader.Intercept(f(g(h())))`.
func (c *POHeaderClient) Intercept(interceptors ...Interceptor) {
	c.inters.POHeader = append(c.inters.POHeader, interceptors...)
}

// Create returns a builder for creating a POHeader entity.
func (c *POHeaderClient) Create() *POHeaderCreate {
	mutation := newPOHeaderMutation(c.config, OpCreate)
	return &POHeaderCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of POHeader entities.
func (c *POHeaderClient) CreateBulk(builders ...*POHeaderCreate) *POHeaderCreateBulk {
	return &POHeaderCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *POHeaderClient) MapCreateBulk(slice any, setFunc func(*POHeaderCreate, int)) *POHeaderCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &POHeaderCreateBulk{err: fmt.Errorf("calling to POHeaderClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*POHeaderCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &POHeaderCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for POHeader.
func (c *POHeaderClient) Update() *POHeaderUpdate {
	mutation := newPOHeaderMutation(c.config, OpUpdate)
	return &POHeaderUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *POHeaderClient) UpdateOne(_m *POHeader) *POHeaderUpdateOne {
	mutation := newPOHeaderMutation(c.config, OpUpdateOne, withPOHeader(_m))
	return &POHeaderUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *POHeaderClient) UpdateOneID(id uuid.UUID) *POHeaderUpdateOne {
	mutation := newPOHeaderMutation(c.config, OpUpdateOne, withPOHeaderID(id))
	return &POHeaderUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for POHeader.
func (c *POHeaderClient) Delete() *POHeaderDelete {
	mutation := newPOHeaderMutation(c.config, OpDelete)
	return &POHeaderDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *POHeaderClient) DeleteOne(_m *POHeader) *POHeaderDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *POHeaderClient) DeleteOneID(id uuid.UUID) *POHeaderDeleteOne {
	builder := c.Delete().Where(poheader.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &POHeaderDeleteOne{builder}
}

// Query returns a query builder for POHeader.
func (c *POHeaderClient) Query() *POHeaderQuery {
	return &POHeaderQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePOHeader},
		inters: c.Interceptors(),
	}
}

// Get returns a POHeader entity by its id.
func (c *POHeaderClient) Get(ctx context.Context, id uuid.UUID) (*POHeader, error) {
	return c.Query().Where(poheader.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *POHeaderClient) GetX(ctx context.Context, id uuid.UUID) *POHeader {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryLineItems queries the line_items edge of a POHeader.
func (c *POHeaderClient) QueryLineItems(_m *POHeader) *POLineItemQuery {
	query := (&POLineItemClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(poheader.Table, poheader.FieldID, id),
			sqlgraph.To(polineitem.Table, polineitem.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, poheader.LineItemsTable, poheader.LineItemsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryJobs queries the jobs edge of a POHeader.
func (c *POHeaderClient) QueryJobs(_m *POHeader) *ExtractJobQuery {
	query := (&ExtractJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(poheader.Table, poheader.FieldID, id),
			sqlgraph.To(extractjob.Table, extractjob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, poheader.JobsTable, poheader.JobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *POHeaderClient) Hooks() []Hook {
	return c.hooks.POHeader
}

// Interceptors returns the client interceptors.
func (c *POHeaderClient) Interceptors() []Interceptor {
	return c.inters.POHeader
}

func (c *POHeaderClient) mutate(ctx context.Context, m *POHeaderMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&POHeaderCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&POHeaderUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&POHeaderUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&POHeaderDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown POHeader mutation op: %q", m.Op())
	}
}

// POLineItemClient is a client for the POLineItem schema.
type POLineItemClient struct {
	config
}

// NewPOLineItemClient returns a client for the POLineItem from the given config.
func NewPOLineItemClient(c config) *POLineItemClient {
	return &POLineItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `polineitem.Hooks(f(g(h())))`.
func (c *POLineItemClient) Use(hooks ...Hook) {
	c.hooks.POLineItem = append(c.hooks.POLineItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `polineitem.Intercept(f(g(h())))`.
func (c *POLineItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.POLineItem = append(c.inters.POLineItem, interceptors...)
}

// Create returns a builder for creating a POLineItem entity.
func (c *POLineItemClient) Create() *POLineItemCreate {
	mutation := newPOLineItemMutation(c.config, OpCreate)
	return &POLineItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of POLineItem entities.
func (c *POLineItemClient) CreateBulk(builders ...*POLineItemCreate) *POLineItemCreateBulk {
	return &POLineItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *POLineItemClient) MapCreateBulk(slice any, setFunc func(*POLineItemCreate, int)) *POLineItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &POLineItemCreateBulk{err: fmt.Errorf("calling to POLineItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*POLineItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &POLineItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for POLineItem.
func (c *POLineItemClient) Update() *POLineItemUpdate {
	mutation := newPOLineItemMutation(c.config, OpUpdate)
	return &POLineItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *POLineItemClient) UpdateOne(_m *POLineItem) *POLineItemUpdateOne {
	mutation := newPOLineItemMutation(c.config, OpUpdateOne, withPOLineItem(_m))
	return &POLineItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *POLineItemClient) UpdateOneID(id uuid.UUID) *POLineItemUpdateOne {
	mutation := newPOLineItemMutation(c.config, OpUpdateOne, withPOLineItemID(id))
	return &POLineItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for POLineItem.
func (c *POLineItemClient) Delete() *POLineItemDelete {
	mutation := newPOLineItemMutation(c.config, OpDelete)
	return &POLineItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *POLineItemClient) DeleteOne(_m *POLineItem) *POLineItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *POLineItemClient) DeleteOneID(id uuid.UUID) *POLineItemDeleteOne {
	builder := c.Delete().Where(polineitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &POLineItemDeleteOne{builder}
}

// Query returns a query builder for POLineItem.
func (c *POLineItemClient) Query() *POLineItemQuery {
	return &POLineItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePOLineItem},
		inters: c.Interceptors(),
	}
}

// Get returns a POLineItem entity by its id.
func (c *POLineItemClient) Get(ctx context.Context, id uuid.UUID) (*POLineItem, error) {
	return c.Query().Where(polineitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *POLineItemClient) GetX(ctx context.Context, id uuid.UUID) *POLineItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryHeader queries the header edge of a POLineItem.
func (c *POLineItemClient) QueryHeader(_m *POLineItem) *POHeaderQuery {
	query := (&POHeaderClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(polineitem.Table, polineitem.FieldID, id),
			sqlgraph.To(poheader.Table, poheader.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, polineitem.HeaderTable, polineitem.HeaderColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *POLineItemClient) Hooks() []Hook {
	return c.hooks.POLineItem
}

// Interceptors returns the client interceptors.
func (c *POLineItemClient) Interceptors() []Interceptor {
	return c.inters.POLineItem
}

func (c *POLineItemClient) mutate(ctx context.Context, m *POLineItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&POLineItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&POLineItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&POLineItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&POLineItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown POLineItem mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ExtractJob, POHeader, POLineItem []ent.Hook
	}
	inters struct {
		ExtractJob, POHeader, POLineItem []ent.Interceptor
	}
)
