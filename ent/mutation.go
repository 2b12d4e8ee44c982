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
	"truepedia.io/truepedia/ent/articlesnapshot"
	"truepedia.io/truepedia/ent/highlight"
	"truepedia.io/truepedia/ent/predicate"
	"truepedia.io/truepedia/ent/translationcache"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeArticleSnapshot  = "ArticleSnapshot"
	TypeHighlight        = "Highlight"
	TypeTranslationCache = "TranslationCache"
)

// ArticleSnapshotMutation represents an operation that mutates the ArticleSnapshot nodes in the graph.
type ArticleSnapshotMutation struct {
	config
	op            Op
	typ           string
	id            *string
	created_at    *time.Time
	updated_at    *time.Time
	article_key   *string
	title         *string
	language      *string
	url           *string
	summary       *string
	content       *string
	fetched_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ArticleSnapshot, error)
	predicates    []predicate.ArticleSnapshot
}

var _ ent.Mutation = (*ArticleSnapshotMutation)(nil)

// articlesnapshotOption allows management of the mutation configuration using functional options.
type articlesnapshotOption func(*ArticleSnapshotMutation)

// newArticleSnapshotMutation creates new mutation for the ArticleSnapshot entity.
func newArticleSnapshotMutation(c config, op Op, opts ...articlesnapshotOption) *ArticleSnapshotMutation {
	m := &ArticleSnapshotMutation{
		config:        c,
		op:            op,
		typ:           TypeArticleSnapshot,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withArticleSnapshotID sets the ID field of the mutation.
func withArticleSnapshotID(id string) articlesnapshotOption {
	return func(m *ArticleSnapshotMutation) {
		var (
			err   error
			once  sync.Once
			value *ArticleSnapshot
		)
		m.oldValue = func(ctx context.Context) (*ArticleSnapshot, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ArticleSnapshot.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withArticleSnapshot sets the old ArticleSnapshot of the mutation.
func withArticleSnapshot(node *ArticleSnapshot) articlesnapshotOption {
	return func(m *ArticleSnapshotMutation) {
		m.oldValue = func(context.Context) (*ArticleSnapshot, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ArticleSnapshotMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ArticleSnapshotMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ArticleSnapshot entities.
func (m *ArticleSnapshotMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ArticleSnapshotMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ArticleSnapshotMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ArticleSnapshot.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ArticleSnapshotMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ArticleSnapshotMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ArticleSnapshot entity.
// If the ArticleSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleSnapshotMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ArticleSnapshotMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ArticleSnapshotMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ArticleSnapshotMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ArticleSnapshot entity.
// If the ArticleSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleSnapshotMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ArticleSnapshotMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetArticleKey sets the "article_key" field.
func (m *ArticleSnapshotMutation) SetArticleKey(s string) {
	m.article_key = &s
}

// ArticleKey returns the value of the "article_key" field in the mutation.
func (m *ArticleSnapshotMutation) ArticleKey() (r string, exists bool) {
	v := m.article_key
	if v == nil {
		return
	}
	return *v, true
}

// OldArticleKey returns the old "article_key" field's value of the ArticleSnapshot entity.
// If the ArticleSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleSnapshotMutation) OldArticleKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArticleKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArticleKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArticleKey: %w", err)
	}
	return oldValue.ArticleKey, nil
}

// ResetArticleKey resets all changes to the "article_key" field.
func (m *ArticleSnapshotMutation) ResetArticleKey() {
	m.article_key = nil
}

// SetTitle sets the "title" field.
func (m *ArticleSnapshotMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ArticleSnapshotMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the ArticleSnapshot entity.
// If the ArticleSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleSnapshotMutation) OldTitle(ctx context.Context) (v string, err error) {
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
func (m *ArticleSnapshotMutation) ResetTitle() {
	m.title = nil
}

// SetLanguage sets the "language" field.
func (m *ArticleSnapshotMutation) SetLanguage(s string) {
	m.language = &s
}

// Language returns the value of the "language" field in the mutation.
func (m *ArticleSnapshotMutation) Language() (r string, exists bool) {
	v := m.language
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguage returns the old "language" field's value of the ArticleSnapshot entity.
// If the ArticleSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleSnapshotMutation) OldLanguage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguage: %w", err)
	}
	return oldValue.Language, nil
}

// ResetLanguage resets all changes to the "language" field.
func (m *ArticleSnapshotMutation) ResetLanguage() {
	m.language = nil
}

// SetURL sets the "url" field.
func (m *ArticleSnapshotMutation) SetURL(s string) {
	m.url = &s
}

// URL returns the value of the "url" field in the mutation.
func (m *ArticleSnapshotMutation) URL() (r string, exists bool) {
	v := m.url
	if v == nil {
		return
	}
	return *v, true
}

// OldURL returns the old "url" field's value of the ArticleSnapshot entity.
// If the ArticleSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleSnapshotMutation) OldURL(ctx context.Context) (v string, err error) {
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
func (m *ArticleSnapshotMutation) ResetURL() {
	m.url = nil
}

// SetSummary sets the "summary" field.
func (m *ArticleSnapshotMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *ArticleSnapshotMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the ArticleSnapshot entity.
// If the ArticleSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleSnapshotMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ResetSummary resets all changes to the "summary" field.
func (m *ArticleSnapshotMutation) ResetSummary() {
	m.summary = nil
}

// SetContent sets the "content" field.
func (m *ArticleSnapshotMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *ArticleSnapshotMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the ArticleSnapshot entity.
// If the ArticleSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleSnapshotMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *ArticleSnapshotMutation) ResetContent() {
	m.content = nil
}

// SetFetchedAt sets the "fetched_at" field.
func (m *ArticleSnapshotMutation) SetFetchedAt(t time.Time) {
	m.fetched_at = &t
}

// FetchedAt returns the value of the "fetched_at" field in the mutation.
func (m *ArticleSnapshotMutation) FetchedAt() (r time.Time, exists bool) {
	v := m.fetched_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFetchedAt returns the old "fetched_at" field's value of the ArticleSnapshot entity.
// If the ArticleSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleSnapshotMutation) OldFetchedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFetchedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFetchedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFetchedAt: %w", err)
	}
	return oldValue.FetchedAt, nil
}

// ResetFetchedAt resets all changes to the "fetched_at" field.
func (m *ArticleSnapshotMutation) ResetFetchedAt() {
	m.fetched_at = nil
}

// Where appends a list predicates to the ArticleSnapshotMutation builder.
func (m *ArticleSnapshotMutation) Where(ps ...predicate.ArticleSnapshot) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ArticleSnapshotMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ArticleSnapshotMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ArticleSnapshot, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ArticleSnapshotMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ArticleSnapshotMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ArticleSnapshot).
func (m *ArticleSnapshotMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ArticleSnapshotMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.created_at != nil {
		fields = append(fields, articlesnapshot.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, articlesnapshot.FieldUpdatedAt)
	}
	if m.article_key != nil {
		fields = append(fields, articlesnapshot.FieldArticleKey)
	}
	if m.title != nil {
		fields = append(fields, articlesnapshot.FieldTitle)
	}
	if m.language != nil {
		fields = append(fields, articlesnapshot.FieldLanguage)
	}
	if m.url != nil {
		fields = append(fields, articlesnapshot.FieldURL)
	}
	if m.summary != nil {
		fields = append(fields, articlesnapshot.FieldSummary)
	}
	if m.content != nil {
		fields = append(fields, articlesnapshot.FieldContent)
	}
	if m.fetched_at != nil {
		fields = append(fields, articlesnapshot.FieldFetchedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ArticleSnapshotMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case articlesnapshot.FieldCreatedAt:
		return m.CreatedAt()
	case articlesnapshot.FieldUpdatedAt:
		return m.UpdatedAt()
	case articlesnapshot.FieldArticleKey:
		return m.ArticleKey()
	case articlesnapshot.FieldTitle:
		return m.Title()
	case articlesnapshot.FieldLanguage:
		return m.Language()
	case articlesnapshot.FieldURL:
		return m.URL()
	case articlesnapshot.FieldSummary:
		return m.Summary()
	case articlesnapshot.FieldContent:
		return m.Content()
	case articlesnapshot.FieldFetchedAt:
		return m.FetchedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ArticleSnapshotMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case articlesnapshot.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case articlesnapshot.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case articlesnapshot.FieldArticleKey:
		return m.OldArticleKey(ctx)
	case articlesnapshot.FieldTitle:
		return m.OldTitle(ctx)
	case articlesnapshot.FieldLanguage:
		return m.OldLanguage(ctx)
	case articlesnapshot.FieldURL:
		return m.OldURL(ctx)
	case articlesnapshot.FieldSummary:
		return m.OldSummary(ctx)
	case articlesnapshot.FieldContent:
		return m.OldContent(ctx)
	case articlesnapshot.FieldFetchedAt:
		return m.OldFetchedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ArticleSnapshot field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ArticleSnapshotMutation) SetField(name string, value ent.Value) error {
	switch name {
	case articlesnapshot.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case articlesnapshot.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case articlesnapshot.FieldArticleKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArticleKey(v)
		return nil
	case articlesnapshot.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case articlesnapshot.FieldLanguage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguage(v)
		return nil
	case articlesnapshot.FieldURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURL(v)
		return nil
	case articlesnapshot.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case articlesnapshot.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case articlesnapshot.FieldFetchedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFetchedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ArticleSnapshot field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ArticleSnapshotMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ArticleSnapshotMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ArticleSnapshotMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ArticleSnapshot numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ArticleSnapshotMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ArticleSnapshotMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ArticleSnapshotMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ArticleSnapshot nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ArticleSnapshotMutation) ResetField(name string) error {
	switch name {
	case articlesnapshot.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case articlesnapshot.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case articlesnapshot.FieldArticleKey:
		m.ResetArticleKey()
		return nil
	case articlesnapshot.FieldTitle:
		m.ResetTitle()
		return nil
	case articlesnapshot.FieldLanguage:
		m.ResetLanguage()
		return nil
	case articlesnapshot.FieldURL:
		m.ResetURL()
		return nil
	case articlesnapshot.FieldSummary:
		m.ResetSummary()
		return nil
	case articlesnapshot.FieldContent:
		m.ResetContent()
		return nil
	case articlesnapshot.FieldFetchedAt:
		m.ResetFetchedAt()
		return nil
	}
	return fmt.Errorf("unknown ArticleSnapshot field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ArticleSnapshotMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ArticleSnapshotMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ArticleSnapshotMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ArticleSnapshotMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ArticleSnapshotMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ArticleSnapshotMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ArticleSnapshotMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ArticleSnapshot unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ArticleSnapshotMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ArticleSnapshot edge %s", name)
}

// HighlightMutation represents an operation that mutates the Highlight nodes in the graph.
type HighlightMutation struct {
	config
	op            Op
	typ           string
	id            *string
	created_at    *time.Time
	article_key   *string
	title         *string
	language      *string
	fragment      *string
	section       *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Highlight, error)
	predicates    []predicate.Highlight
}

var _ ent.Mutation = (*HighlightMutation)(nil)

// highlightOption allows management of the mutation configuration using functional options.
type highlightOption func(*HighlightMutation)

// newHighlightMutation creates new mutation for the Highlight entity.
func newHighlightMutation(c config, op Op, opts ...highlightOption) *HighlightMutation {
	m := &HighlightMutation{
		config:        c,
		op:            op,
		typ:           TypeHighlight,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withHighlightID sets the ID field of the mutation.
func withHighlightID(id string) highlightOption {
	return func(m *HighlightMutation) {
		var (
			err   error
			once  sync.Once
			value *Highlight
		)
		m.oldValue = func(ctx context.Context) (*Highlight, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Highlight.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withHighlight sets the old Highlight of the mutation.
func withHighlight(node *Highlight) highlightOption {
	return func(m *HighlightMutation) {
		m.oldValue = func(context.Context) (*Highlight, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m HighlightMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m HighlightMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Highlight entities.
func (m *HighlightMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *HighlightMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *HighlightMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Highlight.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *HighlightMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *HighlightMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Highlight entity.
// If the Highlight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HighlightMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *HighlightMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetArticleKey sets the "article_key" field.
func (m *HighlightMutation) SetArticleKey(s string) {
	m.article_key = &s
}

// ArticleKey returns the value of the "article_key" field in the mutation.
func (m *HighlightMutation) ArticleKey() (r string, exists bool) {
	v := m.article_key
	if v == nil {
		return
	}
	return *v, true
}

// OldArticleKey returns the old "article_key" field's value of the Highlight entity.
// If the Highlight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HighlightMutation) OldArticleKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArticleKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArticleKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArticleKey: %w", err)
	}
	return oldValue.ArticleKey, nil
}

// ResetArticleKey resets all changes to the "article_key" field.
func (m *HighlightMutation) ResetArticleKey() {
	m.article_key = nil
}

// SetTitle sets the "title" field.
func (m *HighlightMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *HighlightMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Highlight entity.
// If the Highlight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HighlightMutation) OldTitle(ctx context.Context) (v string, err error) {
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
func (m *HighlightMutation) ResetTitle() {
	m.title = nil
}

// SetLanguage sets the "language" field.
func (m *HighlightMutation) SetLanguage(s string) {
	m.language = &s
}

// Language returns the value of the "language" field in the mutation.
func (m *HighlightMutation) Language() (r string, exists bool) {
	v := m.language
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguage returns the old "language" field's value of the Highlight entity.
// If the Highlight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HighlightMutation) OldLanguage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguage: %w", err)
	}
	return oldValue.Language, nil
}

// ResetLanguage resets all changes to the "language" field.
func (m *HighlightMutation) ResetLanguage() {
	m.language = nil
}

// SetFragment sets the "fragment" field.
func (m *HighlightMutation) SetFragment(s string) {
	m.fragment = &s
}

// Fragment returns the value of the "fragment" field in the mutation.
func (m *HighlightMutation) Fragment() (r string, exists bool) {
	v := m.fragment
	if v == nil {
		return
	}
	return *v, true
}

// OldFragment returns the old "fragment" field's value of the Highlight entity.
// If the Highlight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HighlightMutation) OldFragment(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFragment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFragment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFragment: %w", err)
	}
	return oldValue.Fragment, nil
}

// ResetFragment resets all changes to the "fragment" field.
func (m *HighlightMutation) ResetFragment() {
	m.fragment = nil
}

// SetSection sets the "section" field.
func (m *HighlightMutation) SetSection(s string) {
	m.section = &s
}

// Section returns the value of the "section" field in the mutation.
func (m *HighlightMutation) Section() (r string, exists bool) {
	v := m.section
	if v == nil {
		return
	}
	return *v, true
}

// OldSection returns the old "section" field's value of the Highlight entity.
// If the Highlight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HighlightMutation) OldSection(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSection is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSection requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSection: %w", err)
	}
	return oldValue.Section, nil
}

// ClearSection clears the value of the "section" field.
func (m *HighlightMutation) ClearSection() {
	m.section = nil
	m.clearedFields[highlight.FieldSection] = struct{}{}
}

// SectionCleared returns if the "section" field was cleared in this mutation.
func (m *HighlightMutation) SectionCleared() bool {
	_, ok := m.clearedFields[highlight.FieldSection]
	return ok
}

// ResetSection resets all changes to the "section" field.
func (m *HighlightMutation) ResetSection() {
	m.section = nil
	delete(m.clearedFields, highlight.FieldSection)
}

// Where appends a list predicates to the HighlightMutation builder.
func (m *HighlightMutation) Where(ps ...predicate.Highlight) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the HighlightMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *HighlightMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Highlight, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *HighlightMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *HighlightMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Highlight).
func (m *HighlightMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *HighlightMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.created_at != nil {
		fields = append(fields, highlight.FieldCreatedAt)
	}
	if m.article_key != nil {
		fields = append(fields, highlight.FieldArticleKey)
	}
	if m.title != nil {
		fields = append(fields, highlight.FieldTitle)
	}
	if m.language != nil {
		fields = append(fields, highlight.FieldLanguage)
	}
	if m.fragment != nil {
		fields = append(fields, highlight.FieldFragment)
	}
	if m.section != nil {
		fields = append(fields, highlight.FieldSection)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *HighlightMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case highlight.FieldCreatedAt:
		return m.CreatedAt()
	case highlight.FieldArticleKey:
		return m.ArticleKey()
	case highlight.FieldTitle:
		return m.Title()
	case highlight.FieldLanguage:
		return m.Language()
	case highlight.FieldFragment:
		return m.Fragment()
	case highlight.FieldSection:
		return m.Section()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *HighlightMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case highlight.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case highlight.FieldArticleKey:
		return m.OldArticleKey(ctx)
	case highlight.FieldTitle:
		return m.OldTitle(ctx)
	case highlight.FieldLanguage:
		return m.OldLanguage(ctx)
	case highlight.FieldFragment:
		return m.OldFragment(ctx)
	case highlight.FieldSection:
		return m.OldSection(ctx)
	}
	return nil, fmt.Errorf("unknown Highlight field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HighlightMutation) SetField(name string, value ent.Value) error {
	switch name {
	case highlight.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case highlight.FieldArticleKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArticleKey(v)
		return nil
	case highlight.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case highlight.FieldLanguage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguage(v)
		return nil
	case highlight.FieldFragment:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFragment(v)
		return nil
	case highlight.FieldSection:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSection(v)
		return nil
	}
	return fmt.Errorf("unknown Highlight field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *HighlightMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *HighlightMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HighlightMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Highlight numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *HighlightMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(highlight.FieldSection) {
		fields = append(fields, highlight.FieldSection)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *HighlightMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *HighlightMutation) ClearField(name string) error {
	switch name {
	case highlight.FieldSection:
		m.ClearSection()
		return nil
	}
	return fmt.Errorf("unknown Highlight nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *HighlightMutation) ResetField(name string) error {
	switch name {
	case highlight.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case highlight.FieldArticleKey:
		m.ResetArticleKey()
		return nil
	case highlight.FieldTitle:
		m.ResetTitle()
		return nil
	case highlight.FieldLanguage:
		m.ResetLanguage()
		return nil
	case highlight.FieldFragment:
		m.ResetFragment()
		return nil
	case highlight.FieldSection:
		m.ResetSection()
		return nil
	}
	return fmt.Errorf("unknown Highlight field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *HighlightMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *HighlightMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *HighlightMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *HighlightMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *HighlightMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *HighlightMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *HighlightMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Highlight unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *HighlightMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Highlight edge %s", name)
}

// TranslationCacheMutation represents an operation that mutates the TranslationCache nodes in the graph.
type TranslationCacheMutation struct {
	config
	op              Op
	typ             string
	id              *string
	created_at      *time.Time
	source_lang     *string
	target_lang     *string
	text_digest     *string
	translated_text *string
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*TranslationCache, error)
	predicates      []predicate.TranslationCache
}

var _ ent.Mutation = (*TranslationCacheMutation)(nil)

// translationcacheOption allows management of the mutation configuration using functional options.
type translationcacheOption func(*TranslationCacheMutation)

// newTranslationCacheMutation creates new mutation for the TranslationCache entity.
func newTranslationCacheMutation(c config, op Op, opts ...translationcacheOption) *TranslationCacheMutation {
	m := &TranslationCacheMutation{
		config:        c,
		op:            op,
		typ:           TypeTranslationCache,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTranslationCacheID sets the ID field of the mutation.
func withTranslationCacheID(id string) translationcacheOption {
	return func(m *TranslationCacheMutation) {
		var (
			err   error
			once  sync.Once
			value *TranslationCache
		)
		m.oldValue = func(ctx context.Context) (*TranslationCache, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TranslationCache.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTranslationCache sets the old TranslationCache of the mutation.
func withTranslationCache(node *TranslationCache) translationcacheOption {
	return func(m *TranslationCacheMutation) {
		m.oldValue = func(context.Context) (*TranslationCache, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TranslationCacheMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TranslationCacheMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TranslationCache entities.
func (m *TranslationCacheMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TranslationCacheMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TranslationCacheMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TranslationCache.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *TranslationCacheMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TranslationCacheMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TranslationCache entity.
// If the TranslationCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranslationCacheMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *TranslationCacheMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetSourceLang sets the "source_lang" field.
func (m *TranslationCacheMutation) SetSourceLang(s string) {
	m.source_lang = &s
}

// SourceLang returns the value of the "source_lang" field in the mutation.
func (m *TranslationCacheMutation) SourceLang() (r string, exists bool) {
	v := m.source_lang
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceLang returns the old "source_lang" field's value of the TranslationCache entity.
// If the TranslationCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranslationCacheMutation) OldSourceLang(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceLang is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceLang requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceLang: %w", err)
	}
	return oldValue.SourceLang, nil
}

// ResetSourceLang resets all changes to the "source_lang" field.
func (m *TranslationCacheMutation) ResetSourceLang() {
	m.source_lang = nil
}

// SetTargetLang sets the "target_lang" field.
func (m *TranslationCacheMutation) SetTargetLang(s string) {
	m.target_lang = &s
}

// TargetLang returns the value of the "target_lang" field in the mutation.
func (m *TranslationCacheMutation) TargetLang() (r string, exists bool) {
	v := m.target_lang
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetLang returns the old "target_lang" field's value of the TranslationCache entity.
// If the TranslationCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranslationCacheMutation) OldTargetLang(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetLang is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetLang requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetLang: %w", err)
	}
	return oldValue.TargetLang, nil
}

// ResetTargetLang resets all changes to the "target_lang" field.
func (m *TranslationCacheMutation) ResetTargetLang() {
	m.target_lang = nil
}

// SetTextDigest sets the "text_digest" field.
func (m *TranslationCacheMutation) SetTextDigest(s string) {
	m.text_digest = &s
}

// TextDigest returns the value of the "text_digest" field in the mutation.
func (m *TranslationCacheMutation) TextDigest() (r string, exists bool) {
	v := m.text_digest
	if v == nil {
		return
	}
	return *v, true
}

// OldTextDigest returns the old "text_digest" field's value of the TranslationCache entity.
// If the TranslationCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranslationCacheMutation) OldTextDigest(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTextDigest is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTextDigest requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTextDigest: %w", err)
	}
	return oldValue.TextDigest, nil
}

// ResetTextDigest resets all changes to the "text_digest" field.
func (m *TranslationCacheMutation) ResetTextDigest() {
	m.text_digest = nil
}

// SetTranslatedText sets the "translated_text" field.
func (m *TranslationCacheMutation) SetTranslatedText(s string) {
	m.translated_text = &s
}

// TranslatedText returns the value of the "translated_text" field in the mutation.
func (m *TranslationCacheMutation) TranslatedText() (r string, exists bool) {
	v := m.translated_text
	if v == nil {
		return
	}
	return *v, true
}

// OldTranslatedText returns the old "translated_text" field's value of the TranslationCache entity.
// If the TranslationCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranslationCacheMutation) OldTranslatedText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTranslatedText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTranslatedText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTranslatedText: %w", err)
	}
	return oldValue.TranslatedText, nil
}

// ResetTranslatedText resets all changes to the "translated_text" field.
func (m *TranslationCacheMutation) ResetTranslatedText() {
	m.translated_text = nil
}

// Where appends a list predicates to the TranslationCacheMutation builder.
func (m *TranslationCacheMutation) Where(ps ...predicate.TranslationCache) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TranslationCacheMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TranslationCacheMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TranslationCache, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TranslationCacheMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TranslationCacheMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TranslationCache).
func (m *TranslationCacheMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TranslationCacheMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.created_at != nil {
		fields = append(fields, translationcache.FieldCreatedAt)
	}
	if m.source_lang != nil {
		fields = append(fields, translationcache.FieldSourceLang)
	}
	if m.target_lang != nil {
		fields = append(fields, translationcache.FieldTargetLang)
	}
	if m.text_digest != nil {
		fields = append(fields, translationcache.FieldTextDigest)
	}
	if m.translated_text != nil {
		fields = append(fields, translationcache.FieldTranslatedText)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TranslationCacheMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case translationcache.FieldCreatedAt:
		return m.CreatedAt()
	case translationcache.FieldSourceLang:
		return m.SourceLang()
	case translationcache.FieldTargetLang:
		return m.TargetLang()
	case translationcache.FieldTextDigest:
		return m.TextDigest()
	case translationcache.FieldTranslatedText:
		return m.TranslatedText()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TranslationCacheMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case translationcache.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case translationcache.FieldSourceLang:
		return m.OldSourceLang(ctx)
	case translationcache.FieldTargetLang:
		return m.OldTargetLang(ctx)
	case translationcache.FieldTextDigest:
		return m.OldTextDigest(ctx)
	case translationcache.FieldTranslatedText:
		return m.OldTranslatedText(ctx)
	}
	return nil, fmt.Errorf("unknown TranslationCache field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TranslationCacheMutation) SetField(name string, value ent.Value) error {
	switch name {
	case translationcache.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case translationcache.FieldSourceLang:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceLang(v)
		return nil
	case translationcache.FieldTargetLang:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetLang(v)
		return nil
	case translationcache.FieldTextDigest:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTextDigest(v)
		return nil
	case translationcache.FieldTranslatedText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTranslatedText(v)
		return nil
	}
	return fmt.Errorf("unknown TranslationCache field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TranslationCacheMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TranslationCacheMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TranslationCacheMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown TranslationCache numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TranslationCacheMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TranslationCacheMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TranslationCacheMutation) ClearField(name string) error {
	return fmt.Errorf("unknown TranslationCache nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TranslationCacheMutation) ResetField(name string) error {
	switch name {
	case translationcache.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case translationcache.FieldSourceLang:
		m.ResetSourceLang()
		return nil
	case translationcache.FieldTargetLang:
		m.ResetTargetLang()
		return nil
	case translationcache.FieldTextDigest:
		m.ResetTextDigest()
		return nil
	case translationcache.FieldTranslatedText:
		m.ResetTranslatedText()
		return nil
	}
	return fmt.Errorf("unknown TranslationCache field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TranslationCacheMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TranslationCacheMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TranslationCacheMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TranslationCacheMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TranslationCacheMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TranslationCacheMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TranslationCacheMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TranslationCache unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TranslationCacheMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TranslationCache edge %s", name)
}
