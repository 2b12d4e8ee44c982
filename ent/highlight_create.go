// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"truepedia.io/truepedia/ent/highlight"
)

// HighlightCreate is the builder for creating a Highlight entity.
type HighlightCreate struct {
	config
	mutation *HighlightMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *HighlightCreate) SetCreatedAt(v time.Time) *HighlightCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *HighlightCreate) SetNillableCreatedAt(v *time.Time) *HighlightCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetArticleKey sets the "article_key" field.
func (_c *HighlightCreate) SetArticleKey(v string) *HighlightCreate {
	_c.mutation.SetArticleKey(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *HighlightCreate) SetTitle(v string) *HighlightCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetLanguage sets the "language" field.
func (_c *HighlightCreate) SetLanguage(v string) *HighlightCreate {
	_c.mutation.SetLanguage(v)
	return _c
}

// SetFragment sets the "fragment" field.
func (_c *HighlightCreate) SetFragment(v string) *HighlightCreate {
	_c.mutation.SetFragment(v)
	return _c
}

// SetSection sets the "section" field.
func (_c *HighlightCreate) SetSection(v string) *HighlightCreate {
	_c.mutation.SetSection(v)
	return _c
}

// SetNillableSection sets the "section" field if the given value is not nil.
func (_c *HighlightCreate) SetNillableSection(v *string) *HighlightCreate {
	if v != nil {
		_c.SetSection(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *HighlightCreate) SetID(v string) *HighlightCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the HighlightMutation object of the builder.
func (_c *HighlightCreate) Mutation() *HighlightMutation {
	return _c.mutation
}

// Save creates the Highlight in the database.
func (_c *HighlightCreate) Save(ctx context.Context) (*Highlight, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *HighlightCreate) SaveX(ctx context.Context) *Highlight {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HighlightCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HighlightCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *HighlightCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := highlight.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *HighlightCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Highlight.created_at"`)}
	}
	if _, ok := _c.mutation.ArticleKey(); !ok {
		return &ValidationError{Name: "article_key", err: errors.New(`ent: missing required field "Highlight.article_key"`)}
	}
	if v, ok := _c.mutation.ArticleKey(); ok {
		if err := highlight.ArticleKeyValidator(v); err != nil {
			return &ValidationError{Name: "article_key", err: fmt.Errorf(`ent: validator failed for field "Highlight.article_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Highlight.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := highlight.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Highlight.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Language(); !ok {
		return &ValidationError{Name: "language", err: errors.New(`ent: missing required field "Highlight.language"`)}
	}
	if v, ok := _c.mutation.Language(); ok {
		if err := highlight.LanguageValidator(v); err != nil {
			return &ValidationError{Name: "language", err: fmt.Errorf(`ent: validator failed for field "Highlight.language": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Fragment(); !ok {
		return &ValidationError{Name: "fragment", err: errors.New(`ent: missing required field "Highlight.fragment"`)}
	}
	if v, ok := _c.mutation.Fragment(); ok {
		if err := highlight.FragmentValidator(v); err != nil {
			return &ValidationError{Name: "fragment", err: fmt.Errorf(`ent: validator failed for field "Highlight.fragment": %w`, err)}
		}
	}
	return nil
}

func (_c *HighlightCreate) sqlSave(ctx context.Context) (*Highlight, error) {
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
			return nil, fmt.Errorf("unexpected Highlight.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *HighlightCreate) createSpec() (*Highlight, *sqlgraph.CreateSpec) {
	var (
		_node = &Highlight{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(highlight.Table, sqlgraph.NewFieldSpec(highlight.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(highlight.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ArticleKey(); ok {
		_spec.SetField(highlight.FieldArticleKey, field.TypeString, value)
		_node.ArticleKey = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(highlight.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Language(); ok {
		_spec.SetField(highlight.FieldLanguage, field.TypeString, value)
		_node.Language = value
	}
	if value, ok := _c.mutation.Fragment(); ok {
		_spec.SetField(highlight.FieldFragment, field.TypeString, value)
		_node.Fragment = value
	}
	if value, ok := _c.mutation.Section(); ok {
		_spec.SetField(highlight.FieldSection, field.TypeString, value)
		_node.Section = value
	}
	return _node, _spec
}

// HighlightCreateBulk is the builder for creating many Highlight entities in bulk.
type HighlightCreateBulk struct {
	config
	err      error
	builders []*HighlightCreate
}

// Save creates the Highlight entities in the database.
func (_c *HighlightCreateBulk) Save(ctx context.Context) ([]*Highlight, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Highlight, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*HighlightMutation)
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
func (_c *HighlightCreateBulk) SaveX(ctx context.Context) []*Highlight {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HighlightCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HighlightCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
