// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"truepedia.io/truepedia/ent/articlesnapshot"
	"truepedia.io/truepedia/ent/predicate"
)

// ArticleSnapshotDelete is the builder for deleting a ArticleSnapshot entity.
type ArticleSnapshotDelete struct {
	config
	hooks    []Hook
	mutation *ArticleSnapshotMutation
}

// Where appends a list predicates to the ArticleSnapshotDelete builder.
func (_d *ArticleSnapshotDelete) Where(ps ...predicate.ArticleSnapshot) *ArticleSnapshotDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ArticleSnapshotDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ArticleSnapshotDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ArticleSnapshotDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(articlesnapshot.Table, sqlgraph.NewFieldSpec(articlesnapshot.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ArticleSnapshotDeleteOne is the builder for deleting a single ArticleSnapshot entity.
type ArticleSnapshotDeleteOne struct {
	_d *ArticleSnapshotDelete
}

// Where appends a list predicates to the ArticleSnapshotDelete builder.
func (_d *ArticleSnapshotDeleteOne) Where(ps ...predicate.ArticleSnapshot) *ArticleSnapshotDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ArticleSnapshotDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{articlesnapshot.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ArticleSnapshotDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
