// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"truepedia.io/truepedia/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"truepedia.io/truepedia/ent/articlesnapshot"
	"truepedia.io/truepedia/ent/highlight"
	"truepedia.io/truepedia/ent/translationcache"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ArticleSnapshot is the client for interacting with the ArticleSnapshot builders.
	ArticleSnapshot *ArticleSnapshotClient
	// Highlight is the client for interacting with the Highlight builders.
	Highlight *HighlightClient
	// TranslationCache is the client for interacting with the TranslationCache builders.
	TranslationCache *TranslationCacheClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ArticleSnapshot = NewArticleSnapshotClient(c.config)
	c.Highlight = NewHighlightClient(c.config)
	c.TranslationCache = NewTranslationCacheClient(c.config)
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
		ctx:              ctx,
		config:           cfg,
		ArticleSnapshot:  NewArticleSnapshotClient(cfg),
		Highlight:        NewHighlightClient(cfg),
		TranslationCache: NewTranslationCacheClient(cfg),
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
		ctx:              ctx,
		config:           cfg,
		ArticleSnapshot:  NewArticleSnapshotClient(cfg),
		Highlight:        NewHighlightClient(cfg),
		TranslationCache: NewTranslationCacheClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ArticleSnapshot.
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
	c.ArticleSnapshot.Use(hooks...)
	c.Highlight.Use(hooks...)
	c.TranslationCache.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.ArticleSnapshot.Intercept(interceptors...)
	c.Highlight.Intercept(interceptors...)
	c.TranslationCache.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ArticleSnapshotMutation:
		return c.ArticleSnapshot.mutate(ctx, m)
	case *HighlightMutation:
		return c.Highlight.mutate(ctx, m)
	case *TranslationCacheMutation:
		return c.TranslationCache.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ArticleSnapshotClient is a client for the ArticleSnapshot schema.
type ArticleSnapshotClient struct {
	config
}

// NewArticleSnapshotClient returns a client for the ArticleSnapshot from the given config.
func NewArticleSnapshotClient(c config) *ArticleSnapshotClient {
	return &ArticleSnapshotClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `articlesnapshot.Hooks(f(g(h())))`.
func (c *ArticleSnapshotClient) Use(hooks ...Hook) {
	c.hooks.ArticleSnapshot = append(c.hooks.ArticleSnapshot, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `articlesnapshot.Intercept(f(g(h())))`.
func (c *ArticleSnapshotClient) Intercept(interceptors ...Interceptor) {
	c.inters.ArticleSnapshot = append(c.inters.ArticleSnapshot, interceptors...)
}

// Create returns a builder for creating a ArticleSnapshot entity.
func (c *ArticleSnapshotClient) Create() *ArticleSnapshotCreate {
	mutation := newArticleSnapshotMutation(c.config, OpCreate)
	return &ArticleSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ArticleSnapshot entities.
func (c *ArticleSnapshotClient) CreateBulk(builders ...*ArticleSnapshotCreate) *ArticleSnapshotCreateBulk {
	return &ArticleSnapshotCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ArticleSnapshotClient) MapCreateBulk(slice any, setFunc func(*ArticleSnapshotCreate, int)) *ArticleSnapshotCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ArticleSnapshotCreateBulk{err: fmt.Errorf("calling to ArticleSnapshotClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ArticleSnapshotCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ArticleSnapshotCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ArticleSnapshot.
func (c *ArticleSnapshotClient) Update() *ArticleSnapshotUpdate {
	mutation := newArticleSnapshotMutation(c.config, OpUpdate)
	return &ArticleSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ArticleSnapshotClient) UpdateOne(_m *ArticleSnapshot) *ArticleSnapshotUpdateOne {
	mutation := newArticleSnapshotMutation(c.config, OpUpdateOne, withArticleSnapshot(_m))
	return &ArticleSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ArticleSnapshotClient) UpdateOneID(id string) *ArticleSnapshotUpdateOne {
	mutation := newArticleSnapshotMutation(c.config, OpUpdateOne, withArticleSnapshotID(id))
	return &ArticleSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ArticleSnapshot.
func (c *ArticleSnapshotClient) Delete() *ArticleSnapshotDelete {
	mutation := newArticleSnapshotMutation(c.config, OpDelete)
	return &ArticleSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ArticleSnapshotClient) DeleteOne(_m *ArticleSnapshot) *ArticleSnapshotDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ArticleSnapshotClient) DeleteOneID(id string) *ArticleSnapshotDeleteOne {
	builder := c.Delete().Where(articlesnapshot.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ArticleSnapshotDeleteOne{builder}
}

// Query returns a query builder for ArticleSnapshot.
func (c *ArticleSnapshotClient) Query() *ArticleSnapshotQuery {
	return &ArticleSnapshotQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeArticleSnapshot},
		inters: c.Interceptors(),
	}
}

// Get returns a ArticleSnapshot entity by its id.
func (c *ArticleSnapshotClient) Get(ctx context.Context, id string) (*ArticleSnapshot, error) {
	return c.Query().Where(articlesnapshot.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ArticleSnapshotClient) GetX(ctx context.Context, id string) *ArticleSnapshot {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ArticleSnapshotClient) Hooks() []Hook {
	return c.hooks.ArticleSnapshot
}

// Interceptors returns the client interceptors.
func (c *ArticleSnapshotClient) Interceptors() []Interceptor {
	return c.inters.ArticleSnapshot
}

func (c *ArticleSnapshotClient) mutate(ctx context.Context, m *ArticleSnapshotMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ArticleSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ArticleSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ArticleSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ArticleSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ArticleSnapshot mutation op: %q", m.Op())
	}
}

// HighlightClient is a client for the Highlight schema.
type HighlightClient struct {
	config
}

// NewHighlightClient returns a client for the Highlight from the given config.
func NewHighlightClient(c config) *HighlightClient {
	return &HighlightClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `highlight.Hooks(f(g(h())))`.
func (c *HighlightClient) Use(hooks ...Hook) {
	c.hooks.Highlight = append(c.hooks.Highlight, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `highlight.Intercept(f(g(h())))`.
func (c *HighlightClient) Intercept(interceptors ...Interceptor) {
	c.inters.Highlight = append(c.inters.Highlight, interceptors...)
}

// Create returns a builder for creating a Highlight entity.
func (c *HighlightClient) Create() *HighlightCreate {
	mutation := newHighlightMutation(c.config, OpCreate)
	return &HighlightCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Highlight entities.
func (c *HighlightClient) CreateBulk(builders ...*HighlightCreate) *HighlightCreateBulk {
	return &HighlightCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *HighlightClient) MapCreateBulk(slice any, setFunc func(*HighlightCreate, int)) *HighlightCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &HighlightCreateBulk{err: fmt.Errorf("calling to HighlightClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*HighlightCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &HighlightCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Highlight.
func (c *HighlightClient) Update() *HighlightUpdate {
	mutation := newHighlightMutation(c.config, OpUpdate)
	return &HighlightUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *HighlightClient) UpdateOne(_m *Highlight) *HighlightUpdateOne {
	mutation := newHighlightMutation(c.config, OpUpdateOne, withHighlight(_m))
	return &HighlightUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *HighlightClient) UpdateOneID(id string) *HighlightUpdateOne {
	mutation := newHighlightMutation(c.config, OpUpdateOne, withHighlightID(id))
	return &HighlightUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Highlight.
func (c *HighlightClient) Delete() *HighlightDelete {
	mutation := newHighlightMutation(c.config, OpDelete)
	return &HighlightDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *HighlightClient) DeleteOne(_m *Highlight) *HighlightDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *HighlightClient) DeleteOneID(id string) *HighlightDeleteOne {
	builder := c.Delete().Where(highlight.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &HighlightDeleteOne{builder}
}

// Query returns a query builder for Highlight.
func (c *HighlightClient) Query() *HighlightQuery {
	return &HighlightQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeHighlight},
		inters: c.Interceptors(),
	}
}

// Get returns a Highlight entity by its id.
func (c *HighlightClient) Get(ctx context.Context, id string) (*Highlight, error) {
	return c.Query().Where(highlight.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *HighlightClient) GetX(ctx context.Context, id string) *Highlight {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *HighlightClient) Hooks() []Hook {
	return c.hooks.Highlight
}

// Interceptors returns the client interceptors.
func (c *HighlightClient) Interceptors() []Interceptor {
	return c.inters.Highlight
}

func (c *HighlightClient) mutate(ctx context.Context, m *HighlightMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&HighlightCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&HighlightUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&HighlightUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&HighlightDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Highlight mutation op: %q", m.Op())
	}
}

// TranslationCacheClient is a client for the TranslationCache schema.
type TranslationCacheClient struct {
	config
}

// NewTranslationCacheClient returns a client for the TranslationCache from the given config.
func NewTranslationCacheClient(c config) *TranslationCacheClient {
	return &TranslationCacheClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `translationcache.Hooks(f(g(h())))`.
func (c *TranslationCacheClient) Use(hooks ...Hook) {
	c.hooks.TranslationCache = append(c.hooks.TranslationCache, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `translationcache.Intercept(f(g(h())))`.
func (c *TranslationCacheClient) Intercept(interceptors ...Interceptor) {
	c.inters.TranslationCache = append(c.inters.TranslationCache, interceptors...)
}

// Create returns a builder for creating a TranslationCache entity.
func (c *TranslationCacheClient) Create() *TranslationCacheCreate {
	mutation := newTranslationCacheMutation(c.config, OpCreate)
	return &TranslationCacheCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TranslationCache entities.
func (c *TranslationCacheClient) CreateBulk(builders ...*TranslationCacheCreate) *TranslationCacheCreateBulk {
	return &TranslationCacheCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TranslationCacheClient) MapCreateBulk(slice any, setFunc func(*TranslationCacheCreate, int)) *TranslationCacheCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TranslationCacheCreateBulk{err: fmt.Errorf("calling to TranslationCacheClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TranslationCacheCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TranslationCacheCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TranslationCache.
func (c *TranslationCacheClient) Update() *TranslationCacheUpdate {
	mutation := newTranslationCacheMutation(c.config, OpUpdate)
	return &TranslationCacheUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TranslationCacheClient) UpdateOne(_m *TranslationCache) *TranslationCacheUpdateOne {
	mutation := newTranslationCacheMutation(c.config, OpUpdateOne, withTranslationCache(_m))
	return &TranslationCacheUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TranslationCacheClient) UpdateOneID(id string) *TranslationCacheUpdateOne {
	mutation := newTranslationCacheMutation(c.config, OpUpdateOne, withTranslationCacheID(id))
	return &TranslationCacheUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TranslationCache.
func (c *TranslationCacheClient) Delete() *TranslationCacheDelete {
	mutation := newTranslationCacheMutation(c.config, OpDelete)
	return &TranslationCacheDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TranslationCacheClient) DeleteOne(_m *TranslationCache) *TranslationCacheDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TranslationCacheClient) DeleteOneID(id string) *TranslationCacheDeleteOne {
	builder := c.Delete().Where(translationcache.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TranslationCacheDeleteOne{builder}
}

// Query returns a query builder for TranslationCache.
func (c *TranslationCacheClient) Query() *TranslationCacheQuery {
	return &TranslationCacheQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTranslationCache},
		inters: c.Interceptors(),
	}
}

// Get returns a TranslationCache entity by its id.
func (c *TranslationCacheClient) Get(ctx context.Context, id string) (*TranslationCache, error) {
	return c.Query().Where(translationcache.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TranslationCacheClient) GetX(ctx context.Context, id string) *TranslationCache {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TranslationCacheClient) Hooks() []Hook {
	return c.hooks.TranslationCache
}

// Interceptors returns the client interceptors.
func (c *TranslationCacheClient) Interceptors() []Interceptor {
	return c.inters.TranslationCache
}

func (c *TranslationCacheClient) mutate(ctx context.Context, m *TranslationCacheMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TranslationCacheCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TranslationCacheUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TranslationCacheUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TranslationCacheDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TranslationCache mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ArticleSnapshot, Highlight, TranslationCache []ent.Hook
	}
	inters struct {
		ArticleSnapshot, Highlight, TranslationCache []ent.Interceptor
	}
)
