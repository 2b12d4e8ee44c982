// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"truepedia.io/truepedia/ent/articlesnapshot"
)

// ArticleSnapshotCreate is the builder for creating a ArticleSnapshot entity.
type ArticleSnapshotCreate struct {
	config
	mutation *ArticleSnapshotMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *ArticleSnapshotCreate) SetCreatedAt(v time.Time) *ArticleSnapshotCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ArticleSnapshotCreate) SetNillableCreatedAt(v *time.Time) *ArticleSnapshotCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ArticleSnapshotCreate) SetUpdatedAt(v time.Time) *ArticleSnapshotCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ArticleSnapshotCreate) SetNillableUpdatedAt(v *time.Time) *ArticleSnapshotCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetArticleKey sets the "article_key" field.
func (_c *ArticleSnapshotCreate) SetArticleKey(v string) *ArticleSnapshotCreate {
	_c.mutation.SetArticleKey(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *ArticleSnapshotCreate) SetTitle(v string) *ArticleSnapshotCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetLanguage sets the "language" field.
func (_c *ArticleSnapshotCreate) SetLanguage(v string) *ArticleSnapshotCreate {
	_c.mutation.SetLanguage(v)
	return _c
}

// SetURL sets the "url" field.
func (_c *ArticleSnapshotCreate) SetURL(v string) *ArticleSnapshotCreate {
	_c.mutation.SetURL(v)
	return _c
}

// SetSummary sets the "summary" field.
func (_c *ArticleSnapshotCreate) SetSummary(v string) *ArticleSnapshotCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *ArticleSnapshotCreate) SetContent(v string) *ArticleSnapshotCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetFetchedAt sets the "fetched_at" field.
func (_c *ArticleSnapshotCreate) SetFetchedAt(v time.Time) *ArticleSnapshotCreate {
	_c.mutation.SetFetchedAt(v)
	return _c
}

// SetID sets the "id" field.
func (_c *ArticleSnapshotCreate) SetID(v string) *ArticleSnapshotCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ArticleSnapshotMutation object of the builder.
func (_c *ArticleSnapshotCreate) Mutation() *ArticleSnapshotMutation {
	return _c.mutation
}

// Save creates the ArticleSnapshot in the database.
func (_c *ArticleSnapshotCreate) Save(ctx context.Context) (*ArticleSnapshot, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ArticleSnapshotCreate) SaveX(ctx context.Context) *ArticleSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ArticleSnapshotCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ArticleSnapshotCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ArticleSnapshotCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := articlesnapshot.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := articlesnapshot.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ArticleSnapshotCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ArticleSnapshot.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ArticleSnapshot.updated_at"`)}
	}
	if _, ok := _c.mutation.ArticleKey(); !ok {
		return &ValidationError{Name: "article_key", err: errors.New(`ent: missing required field "ArticleSnapshot.article_key"`)}
	}
	if v, ok := _c.mutation.ArticleKey(); ok {
		if err := articlesnapshot.ArticleKeyValidator(v); err != nil {
			return &ValidationError{Name: "article_key", err: fmt.Errorf(`ent: validator failed for field "ArticleSnapshot.article_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "ArticleSnapshot.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := articlesnapshot.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "ArticleSnapshot.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Language(); !ok {
		return &ValidationError{Name: "language", err: errors.New(`ent: missing required field "ArticleSnapshot.language"`)}
	}
	if v, ok := _c.mutation.Language(); ok {
		if err := articlesnapshot.LanguageValidator(v); err != nil {
			return &ValidationError{Name: "language", err: fmt.Errorf(`ent: validator failed for field "ArticleSnapshot.language": %w`, err)}
		}
	}
	if _, ok := _c.mutation.URL(); !ok {
		return &ValidationError{Name: "url", err: errors.New(`ent: missing required field "ArticleSnapshot.url"`)}
	}
	if v, ok := _c.mutation.URL(); ok {
		if err := articlesnapshot.URLValidator(v); err != nil {
			return &ValidationError{Name: "url", err: fmt.Errorf(`ent: validator failed for field "ArticleSnapshot.url": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Summary(); !ok {
		return &ValidationError{Name: "summary", err: errors.New(`ent: missing required field "ArticleSnapshot.summary"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "ArticleSnapshot.content"`)}
	}
	if _, ok := _c.mutation.FetchedAt(); !ok {
		return &ValidationError{Name: "fetched_at", err: errors.New(`ent: missing required field "ArticleSnapshot.fetched_at"`)}
	}
	return nil
}

func (_c *ArticleSnapshotCreate) sqlSave(ctx context.Context) (*ArticleSnapshot, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected ArticleSnapshot.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ArticleSnapshotCreate) createSpec() (*ArticleSnapshot, *sqlgraph.CreateSpec) {
	var (
		_node = &ArticleSnapshot{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(articlesnapshot.Table, sqlgraph.NewFieldSpec(articlesnapshot.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(articlesnapshot.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(articlesnapshot.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ArticleKey(); ok {
		_spec.SetField(articlesnapshot.FieldArticleKey, field.TypeString, value)
		_node.ArticleKey = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(articlesnapshot.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Language(); ok {
		_spec.SetField(articlesnapshot.FieldLanguage, field.TypeString, value)
		_node.Language = value
	}
	if value, ok := _c.mutation.URL(); ok {
		_spec.SetField(articlesnapshot.FieldURL, field.TypeString, value)
		_node.URL = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(articlesnapshot.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(articlesnapshot.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.FetchedAt(); ok {
		_spec.SetField(articlesnapshot.FieldFetchedAt, field.TypeTime, value)
		_node.FetchedAt = value
	}
	return _node, _spec
}

// ArticleSnapshotCreateBulk is the builder for creating many ArticleSnapshot entities in bulk.
type ArticleSnapshotCreateBulk struct {
	config
	err      error
	builders []*ArticleSnapshotCreate
}

// Save creates the ArticleSnapshot entities in the database.
func (_c *ArticleSnapshotCreateBulk) Save(ctx context.Context) ([]*ArticleSnapshot, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ArticleSnapshot, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ArticleSnapshotMutation)
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
func (_c *ArticleSnapshotCreateBulk) SaveX(ctx context.Context) []*ArticleSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ArticleSnapshotCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ArticleSnapshotCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
