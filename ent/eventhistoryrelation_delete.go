// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/newsflow/hotaggr/ent/eventhistoryrelation"
	"github.com/newsflow/hotaggr/ent/predicate"
)

// EventHistoryRelationDelete is the builder for deleting a EventHistoryRelation entity.
type EventHistoryRelationDelete struct {
	config
	hooks    []Hook
	mutation *EventHistoryRelationMutation
}

// Where appends a list predicates to the EventHistoryRelationDelete builder.
func (_d *EventHistoryRelationDelete) Where(ps ...predicate.EventHistoryRelation) *EventHistoryRelationDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *EventHistoryRelationDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *EventHistoryRelationDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *EventHistoryRelationDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(eventhistoryrelation.Table, sqlgraph.NewFieldSpec(eventhistoryrelation.FieldID, field.TypeInt))
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

// EventHistoryRelationDeleteOne is the builder for deleting a single EventHistoryRelation entity.
type EventHistoryRelationDeleteOne struct {
	_d *EventHistoryRelationDelete
}

// Where appends a list predicates to the EventHistoryRelationDelete builder.
func (_d *EventHistoryRelationDeleteOne) Where(ps ...predicate.EventHistoryRelation) *EventHistoryRelationDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *EventHistoryRelationDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{eventhistoryrelation.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *EventHistoryRelationDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
