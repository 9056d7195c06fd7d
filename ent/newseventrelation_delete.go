// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/newsflow/hotaggr/ent/newseventrelation"
	"github.com/newsflow/hotaggr/ent/predicate"
)

// NewsEventRelationDelete is the builder for deleting a NewsEventRelation entity.
type NewsEventRelationDelete struct {
	config
	hooks    []Hook
	mutation *NewsEventRelationMutation
}

// Where appends a list predicates to the NewsEventRelationDelete builder.
func (_d *NewsEventRelationDelete) Where(ps ...predicate.NewsEventRelation) *NewsEventRelationDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *NewsEventRelationDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *NewsEventRelationDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *NewsEventRelationDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(newseventrelation.Table, sqlgraph.NewFieldSpec(newseventrelation.FieldID, field.TypeInt))
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

// NewsEventRelationDeleteOne is the builder for deleting a single NewsEventRelation entity.
type NewsEventRelationDeleteOne struct {
	_d *NewsEventRelationDelete
}

// Where appends a list predicates to the NewsEventRelationDelete builder.
func (_d *NewsEventRelationDeleteOne) Where(ps ...predicate.NewsEventRelation) *NewsEventRelationDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *NewsEventRelationDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{newseventrelation.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *NewsEventRelationDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
