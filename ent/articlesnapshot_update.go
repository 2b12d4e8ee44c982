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
	"truepedia.io/truepedia/ent/articlesnapshot"
	"truepedia.io/truepedia/ent/predicate"
)

// ArticleSnapshotUpdate is the builder for updating ArticleSnapshot entities.
type ArticleSnapshotUpdate struct {
	config
	hooks    []Hook
	mutation *ArticleSnapshotMutation
}

// Where appends a list predicates to the ArticleSnapshotUpdate builder.
func (_u *ArticleSnapshotUpdate) Where(ps ...predicate.ArticleSnapshot) *ArticleSnapshotUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ArticleSnapshotUpdate) SetUpdatedAt(v time.Time) *ArticleSnapshotUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetArticleKey sets the "article_key" field.
func (_u *ArticleSnapshotUpdate) SetArticleKey(v string) *ArticleSnapshotUpdate {
	_u.mutation.SetArticleKey(v)
	return _u
}

// SetNillableArticleKey sets the "article_key" field if the given value is not nil.
func (_u *ArticleSnapshotUpdate) SetNillableArticleKey(v *string) *ArticleSnapshotUpdate {
	if v != nil {
		_u.SetArticleKey(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ArticleSnapshotUpdate) SetTitle(v string) *ArticleSnapshotUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ArticleSnapshotUpdate) SetNillableTitle(v *string) *ArticleSnapshotUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *ArticleSnapshotUpdate) SetLanguage(v string) *ArticleSnapshotUpdate {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *ArticleSnapshotUpdate) SetNillableLanguage(v *string) *ArticleSnapshotUpdate {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *ArticleSnapshotUpdate) SetURL(v string) *ArticleSnapshotUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *ArticleSnapshotUpdate) SetNillableURL(v *string) *ArticleSnapshotUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *ArticleSnapshotUpdate) SetSummary(v string) *ArticleSnapshotUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *ArticleSnapshotUpdate) SetNillableSummary(v *string) *ArticleSnapshotUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *ArticleSnapshotUpdate) SetContent(v string) *ArticleSnapshotUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ArticleSnapshotUpdate) SetNillableContent(v *string) *ArticleSnapshotUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetFetchedAt sets the "fetched_at" field.
func (_u *ArticleSnapshotUpdate) SetFetchedAt(v time.Time) *ArticleSnapshotUpdate {
	_u.mutation.SetFetchedAt(v)
	return _u
}

// SetNillableFetchedAt sets the "fetched_at" field if the given value is not nil.
func (_u *ArticleSnapshotUpdate) SetNillableFetchedAt(v *time.Time) *ArticleSnapshotUpdate {
	if v != nil {
		_u.SetFetchedAt(*v)
	}
	return _u
}

// Mutation returns the ArticleSnapshotMutation object of the builder.
func (_u *ArticleSnapshotUpdate) Mutation() *ArticleSnapshotMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ArticleSnapshotUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ArticleSnapshotUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ArticleSnapshotUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ArticleSnapshotUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ArticleSnapshotUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := articlesnapshot.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ArticleSnapshotUpdate) check() error {
	if v, ok := _u.mutation.ArticleKey(); ok {
		if err := articlesnapshot.ArticleKeyValidator(v); err != nil {
			return &ValidationError{Name: "article_key", err: fmt.Errorf(`ent: validator failed for field "ArticleSnapshot.article_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := articlesnapshot.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "ArticleSnapshot.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Language(); ok {
		if err := articlesnapshot.LanguageValidator(v); err != nil {
			return &ValidationError{Name: "language", err: fmt.Errorf(`ent: validator failed for field "ArticleSnapshot.language": %w`, err)}
		}
	}
	if v, ok := _u.mutation.URL(); ok {
		if err := articlesnapshot.URLValidator(v); err != nil {
			return &ValidationError{Name: "url", err: fmt.Errorf(`ent: validator failed for field "ArticleSnapshot.url": %w`, err)}
		}
	}
	return nil
}

func (_u *ArticleSnapshotUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(articlesnapshot.Table, articlesnapshot.Columns, sqlgraph.NewFieldSpec(articlesnapshot.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(articlesnapshot.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ArticleKey(); ok {
		_spec.SetField(articlesnapshot.FieldArticleKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(articlesnapshot.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(articlesnapshot.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(articlesnapshot.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(articlesnapshot.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(articlesnapshot.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.FetchedAt(); ok {
		_spec.SetField(articlesnapshot.FieldFetchedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{articlesnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ArticleSnapshotUpdateOne is the builder for updating a single ArticleSnapshot entity.
type ArticleSnapshotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ArticleSnapshotMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ArticleSnapshotUpdateOne) SetUpdatedAt(v time.Time) *ArticleSnapshotUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetArticleKey sets the "article_key" field.
func (_u *ArticleSnapshotUpdateOne) SetArticleKey(v string) *ArticleSnapshotUpdateOne {
	_u.mutation.SetArticleKey(v)
	return _u
}

// SetNillableArticleKey sets the "article_key" field if the given value is not nil.
func (_u *ArticleSnapshotUpdateOne) SetNillableArticleKey(v *string) *ArticleSnapshotUpdateOne {
	if v != nil {
		_u.SetArticleKey(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ArticleSnapshotUpdateOne) SetTitle(v string) *ArticleSnapshotUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ArticleSnapshotUpdateOne) SetNillableTitle(v *string) *ArticleSnapshotUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *ArticleSnapshotUpdateOne) SetLanguage(v string) *ArticleSnapshotUpdateOne {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *ArticleSnapshotUpdateOne) SetNillableLanguage(v *string) *ArticleSnapshotUpdateOne {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *ArticleSnapshotUpdateOne) SetURL(v string) *ArticleSnapshotUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *ArticleSnapshotUpdateOne) SetNillableURL(v *string) *ArticleSnapshotUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *ArticleSnapshotUpdateOne) SetSummary(v string) *ArticleSnapshotUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *ArticleSnapshotUpdateOne) SetNillableSummary(v *string) *ArticleSnapshotUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *ArticleSnapshotUpdateOne) SetContent(v string) *ArticleSnapshotUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ArticleSnapshotUpdateOne) SetNillableContent(v *string) *ArticleSnapshotUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetFetchedAt sets the "fetched_at" field.
func (_u *ArticleSnapshotUpdateOne) SetFetchedAt(v time.Time) *ArticleSnapshotUpdateOne {
	_u.mutation.SetFetchedAt(v)
	return _u
}

// SetNillableFetchedAt sets the "fetched_at" field if the given value is not nil.
func (_u *ArticleSnapshotUpdateOne) SetNillableFetchedAt(v *time.Time) *ArticleSnapshotUpdateOne {
	if v != nil {
		_u.SetFetchedAt(*v)
	}
	return _u
}

// Mutation returns the ArticleSnapshotMutation object of the builder.
func (_u *ArticleSnapshotUpdateOne) Mutation() *ArticleSnapshotMutation {
	return _u.mutation
}

// Where appends a list predicates to the ArticleSnapshotUpdate builder.
func (_u *ArticleSnapshotUpdateOne) Where(ps ...predicate.ArticleSnapshot) *ArticleSnapshotUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ArticleSnapshotUpdateOne) Select(field string, fields ...string) *ArticleSnapshotUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ArticleSnapshot entity.
func (_u *ArticleSnapshotUpdateOne) Save(ctx context.Context) (*ArticleSnapshot, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ArticleSnapshotUpdateOne) SaveX(ctx context.Context) *ArticleSnapshot {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ArticleSnapshotUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ArticleSnapshotUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ArticleSnapshotUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := articlesnapshot.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ArticleSnapshotUpdateOne) check() error {
	if v, ok := _u.mutation.ArticleKey(); ok {
		if err := articlesnapshot.ArticleKeyValidator(v); err != nil {
			return &ValidationError{Name: "article_key", err: fmt.Errorf(`ent: validator failed for field "ArticleSnapshot.article_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := articlesnapshot.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "ArticleSnapshot.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Language(); ok {
		if err := articlesnapshot.LanguageValidator(v); err != nil {
			return &ValidationError{Name: "language", err: fmt.Errorf(`ent: validator failed for field "ArticleSnapshot.language": %w`, err)}
		}
	}
	if v, ok := _u.mutation.URL(); ok {
		if err := articlesnapshot.URLValidator(v); err != nil {
			return &ValidationError{Name: "url", err: fmt.Errorf(`ent: validator failed for field "ArticleSnapshot.url": %w`, err)}
		}
	}
	return nil
}

func (_u *ArticleSnapshotUpdateOne) sqlSave(ctx context.Context) (_node *ArticleSnapshot, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(articlesnapshot.Table, articlesnapshot.Columns, sqlgraph.NewFieldSpec(articlesnapshot.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ArticleSnapshot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, articlesnapshot.FieldID)
		for _, f := range fields {
			if !articlesnapshot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != articlesnapshot.FieldID {
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
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(articlesnapshot.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ArticleKey(); ok {
		_spec.SetField(articlesnapshot.FieldArticleKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(articlesnapshot.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(articlesnapshot.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(articlesnapshot.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(articlesnapshot.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(articlesnapshot.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.FetchedAt(); ok {
		_spec.SetField(articlesnapshot.FieldFetchedAt, field.TypeTime, value)
	}
	_node = &ArticleSnapshot{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{articlesnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
