// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"truepedia.io/truepedia/ent/translationcache"
)

// TranslationCacheCreate is the builder for creating a TranslationCache entity.
type TranslationCacheCreate struct {
	config
	mutation *TranslationCacheMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *TranslationCacheCreate) SetCreatedAt(v time.Time) *TranslationCacheCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TranslationCacheCreate) SetNillableCreatedAt(v *time.Time) *TranslationCacheCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetSourceLang sets the "source_lang" field.
func (_c *TranslationCacheCreate) SetSourceLang(v string) *TranslationCacheCreate {
	_c.mutation.SetSourceLang(v)
	return _c
}

// SetTargetLang sets the "target_lang" field.
func (_c *TranslationCacheCreate) SetTargetLang(v string) *TranslationCacheCreate {
	_c.mutation.SetTargetLang(v)
	return _c
}

// SetTextDigest sets the "text_digest" field.
func (_c *TranslationCacheCreate) SetTextDigest(v string) *TranslationCacheCreate {
	_c.mutation.SetTextDigest(v)
	return _c
}

// SetTranslatedText sets the "translated_text" field.
func (_c *TranslationCacheCreate) SetTranslatedText(v string) *TranslationCacheCreate {
	_c.mutation.SetTranslatedText(v)
	return _c
}

// SetID sets the "id" field.
func (_c *TranslationCacheCreate) SetID(v string) *TranslationCacheCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the TranslationCacheMutation object of the builder.
func (_c *TranslationCacheCreate) Mutation() *TranslationCacheMutation {
	return _c.mutation
}

// Save creates the TranslationCache in the database.
func (_c *TranslationCacheCreate) Save(ctx context.Context) (*TranslationCache, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TranslationCacheCreate) SaveX(ctx context.Context) *TranslationCache {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TranslationCacheCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TranslationCacheCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TranslationCacheCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := translationcache.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TranslationCacheCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TranslationCache.created_at"`)}
	}
	if _, ok := _c.mutation.SourceLang(); !ok {
		return &ValidationError{Name: "source_lang", err: errors.New(`ent: missing required field "TranslationCache.source_lang"`)}
	}
	if v, ok := _c.mutation.SourceLang(); ok {
		if err := translationcache.SourceLangValidator(v); err != nil {
			return &ValidationError{Name: "source_lang", err: fmt.Errorf(`ent: validator failed for field "TranslationCache.source_lang": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TargetLang(); !ok {
		return &ValidationError{Name: "target_lang", err: errors.New(`ent: missing required field "TranslationCache.target_lang"`)}
	}
	if v, ok := _c.mutation.TargetLang(); ok {
		if err := translationcache.TargetLangValidator(v); err != nil {
			return &ValidationError{Name: "target_lang", err: fmt.Errorf(`ent: validator failed for field "TranslationCache.target_lang": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TextDigest(); !ok {
		return &ValidationError{Name: "text_digest", err: errors.New(`ent: missing required field "TranslationCache.text_digest"`)}
	}
	if v, ok := _c.mutation.TextDigest(); ok {
		if err := translationcache.TextDigestValidator(v); err != nil {
			return &ValidationError{Name: "text_digest", err: fmt.Errorf(`ent: validator failed for field "TranslationCache.text_digest": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TranslatedText(); !ok {
		return &ValidationError{Name: "translated_text", err: errors.New(`ent: missing required field "TranslationCache.translated_text"`)}
	}
	return nil
}

func (_c *TranslationCacheCreate) sqlSave(ctx context.Context) (*TranslationCache, error) {
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
			return nil, fmt.Errorf("unexpected TranslationCache.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TranslationCacheCreate) createSpec() (*TranslationCache, *sqlgraph.CreateSpec) {
	var (
		_node = &TranslationCache{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(translationcache.Table, sqlgraph.NewFieldSpec(translationcache.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(translationcache.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.SourceLang(); ok {
		_spec.SetField(translationcache.FieldSourceLang, field.TypeString, value)
		_node.SourceLang = value
	}
	if value, ok := _c.mutation.TargetLang(); ok {
		_spec.SetField(translationcache.FieldTargetLang, field.TypeString, value)
		_node.TargetLang = value
	}
	if value, ok := _c.mutation.TextDigest(); ok {
		_spec.SetField(translationcache.FieldTextDigest, field.TypeString, value)
		_node.TextDigest = value
	}
	if value, ok := _c.mutation.TranslatedText(); ok {
		_spec.SetField(translationcache.FieldTranslatedText, field.TypeString, value)
		_node.TranslatedText = value
	}
	return _node, _spec
}

// TranslationCacheCreateBulk is the builder for creating many TranslationCache entities in bulk.
type TranslationCacheCreateBulk struct {
	config
	err      error
	builders []*TranslationCacheCreate
}

// Save creates the TranslationCache entities in the database.
func (_c *TranslationCacheCreateBulk) Save(ctx context.Context) ([]*TranslationCache, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TranslationCache, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TranslationCacheMutation)
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
func (_c *TranslationCacheCreateBulk) SaveX(ctx context.Context) []*TranslationCache {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TranslationCacheCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TranslationCacheCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
