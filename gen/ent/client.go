// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/lgasparetto/geoverify/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/lgasparetto/geoverify/gen/ent/scanfile"
	"github.com/lgasparetto/geoverify/gen/ent/verifyjob"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ScanFile is the client for interacting with the ScanFile builders.
	ScanFile *ScanFileClient
	// VerifyJob is the client for interacting with the VerifyJob builders.
	VerifyJob *VerifyJobClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ScanFile = NewScanFileClient(c.config)
	c.VerifyJob = NewVerifyJobClient(c.config)
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
		ctx:       ctx,
		config:    cfg,
		ScanFile:  NewScanFileClient(cfg),
		VerifyJob: NewVerifyJobClient(cfg),
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
		ctx:       ctx,
		config:    cfg,
		ScanFile:  NewScanFileClient(cfg),
		VerifyJob: NewVerifyJobClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ScanFile.
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
	c.ScanFile.Use(hooks...)
	c.VerifyJob.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.ScanFile.Intercept(interceptors...)
	c.VerifyJob.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ScanFileMutation:
		return c.ScanFile.mutate(ctx, m)
	case *VerifyJobMutation:
		return c.VerifyJob.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ScanFileClient is a client for the ScanFile schema.
type ScanFileClient struct {
	config
}

// NewScanFileClient returns a client for the ScanFile from the given config.
func NewScanFileClient(c config) *ScanFileClient {
	return &ScanFileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `scanfile.Hooks(f(g(h())))`.
func (c *ScanFileClient) Use(hooks ...Hook) {
	c.hooks.ScanFile = append(c.hooks.ScanFile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `scanfile.Intercept(f(g(h())))`.
func (c *ScanFileClient) Intercept(interceptors ...Interceptor) {
	c.inters.ScanFile = append(c.inters.ScanFile, interceptors...)
}

// Create returns a builder for creating a ScanFile entity.
func (c *ScanFileClient) Create() *ScanFileCreate {
	mutation := newScanFileMutation(c.config, OpCreate)
	return &ScanFileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ScanFile entities.
func (c *ScanFileClient) CreateBulk(builders ...*ScanFileCreate) *ScanFileCreateBulk {
	return &ScanFileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ScanFileClient) MapCreateBulk(slice any, setFunc func(*ScanFileCreate, int)) *ScanFileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ScanFileCreateBulk{err: fmt.Errorf("calling to ScanFileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ScanFileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ScanFileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ScanFile.
func (c *ScanFileClient) Update() *ScanFileUpdate {
	mutation := newScanFileMutation(c.config, OpUpdate)
	return &ScanFileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ScanFileClient) UpdateOne(_m *ScanFile) *ScanFileUpdateOne {
	mutation := newScanFileMutation(c.config, OpUpdateOne, withScanFile(_m))
	return &ScanFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ScanFileClient) UpdateOneID(id uuid.UUID) *ScanFileUpdateOne {
	mutation := newScanFileMutation(c.config, OpUpdateOne, withScanFileID(id))
	return &ScanFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ScanFile.
func (c *ScanFileClient) Delete() *ScanFileDelete {
	mutation := newScanFileMutation(c.config, OpDelete)
	return &ScanFileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ScanFileClient) DeleteOne(_m *ScanFile) *ScanFileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ScanFileClient) DeleteOneID(id uuid.UUID) *ScanFileDeleteOne {
	builder := c.Delete().Where(scanfile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ScanFileDeleteOne{builder}
}

// Query returns a query builder for ScanFile.
func (c *ScanFileClient) Query() *ScanFileQuery {
	return &ScanFileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeScanFile},
		inters: c.Interceptors(),
	}
}

// Get returns a ScanFile entity by its id.
func (c *ScanFileClient) Get(ctx context.Context, id uuid.UUID) (*ScanFile, error) {
	return c.Query().Where(scanfile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ScanFileClient) GetX(ctx context.Context, id uuid.UUID) *ScanFile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJobs queries the jobs edge of a ScanFile.
func (c *ScanFileClient) QueryJobs(_m *ScanFile) *VerifyJobQuery {
	query := (&VerifyJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(scanfile.Table, scanfile.FieldID, id),
			sqlgraph.To(verifyjob.Table, verifyjob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, scanfile.JobsTable, scanfile.JobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ScanFileClient) Hooks() []Hook {
	return c.hooks.ScanFile
}

// Interceptors returns the client interceptors.
func (c *ScanFileClient) Interceptors() []Interceptor {
	return c.inters.ScanFile
}

func (c *ScanFileClient) mutate(ctx context.Context, m *ScanFileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ScanFileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ScanFileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ScanFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ScanFileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ScanFile mutation op: %q", m.Op())
	}
}

// VerifyJobClient is a client for the VerifyJob schema.
type VerifyJobClient struct {
	config
}

// NewVerifyJobClient returns a client for the VerifyJob from the given config.
func NewVerifyJobClient(c config) *VerifyJobClient {
	return &VerifyJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `verifyjob.Hooks(f(g(h())))`.
func (c *VerifyJobClient) Use(hooks ...Hook) {
	c.hooks.VerifyJob = append(c.hooks.VerifyJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `verifyjob.Intercept(f(g(h())))`.
func (c *VerifyJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.VerifyJob = append(c.inters.VerifyJob, interceptors...)
}

// Create returns a builder for creating a VerifyJob entity.
func (c *VerifyJobClient) Create() *VerifyJobCreate {
	mutation := newVerifyJobMutation(c.config, OpCreate)
	return &VerifyJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of VerifyJob entities.
func (c *VerifyJobClient) CreateBulk(builders ...*VerifyJobCreate) *VerifyJobCreateBulk {
	return &VerifyJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *VerifyJobClient) MapCreateBulk(slice any, setFunc func(*VerifyJobCreate, int)) *VerifyJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &VerifyJobCreateBulk{err: fmt.Errorf("calling to VerifyJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*VerifyJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &VerifyJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for VerifyJob.
func (c *VerifyJobClient) Update() *VerifyJobUpdate {
	mutation := newVerifyJobMutation(c.config, OpUpdate)
	return &VerifyJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *VerifyJobClient) UpdateOne(_m *VerifyJob) *VerifyJobUpdateOne {
	mutation := newVerifyJobMutation(c.config, OpUpdateOne, withVerifyJob(_m))
	return &VerifyJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *VerifyJobClient) UpdateOneID(id uuid.UUID) *VerifyJobUpdateOne {
	mutation := newVerifyJobMutation(c.config, OpUpdateOne, withVerifyJobID(id))
	return &VerifyJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for VerifyJob.
func (c *VerifyJobClient) Delete() *VerifyJobDelete {
	mutation := newVerifyJobMutation(c.config, OpDelete)
	return &VerifyJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *VerifyJobClient) DeleteOne(_m *VerifyJob) *VerifyJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *VerifyJobClient) DeleteOneID(id uuid.UUID) *VerifyJobDeleteOne {
	builder := c.Delete().Where(verifyjob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &VerifyJobDeleteOne{builder}
}

// Query returns a query builder for VerifyJob.
func (c *VerifyJobClient) Query() *VerifyJobQuery {
	return &VerifyJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeVerifyJob},
		inters: c.Interceptors(),
	}
}

// Get returns a VerifyJob entity by its id.
func (c *VerifyJobClient) Get(ctx context.Context, id uuid.UUID) (*VerifyJob, error) {
	return c.Query().Where(verifyjob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *VerifyJobClient) GetX(ctx context.Context, id uuid.UUID) *VerifyJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFile queries the file edge of a VerifyJob.
func (c *VerifyJobClient) QueryFile(_m *VerifyJob) *ScanFileQuery {
	query := (&ScanFileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(verifyjob.Table, verifyjob.FieldID, id),
			sqlgraph.To(scanfile.Table, scanfile.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, verifyjob.FileTable, verifyjob.FileColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *VerifyJobClient) Hooks() []Hook {
	return c.hooks.VerifyJob
}

// Interceptors returns the client interceptors.
func (c *VerifyJobClient) Interceptors() []Interceptor {
	return c.inters.VerifyJob
}

func (c *VerifyJobClient) mutate(ctx context.Context, m *VerifyJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&VerifyJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&VerifyJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&VerifyJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&VerifyJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown VerifyJob mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ScanFile, VerifyJob []ent.Hook
	}
	inters struct {
		ScanFile, VerifyJob []ent.Interceptor
	}
)
