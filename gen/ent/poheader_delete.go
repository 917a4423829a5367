// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"po-tracker/gen/ent/poheader"
	"po-tracker/gen/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// POHeaderDelete is the builder for deleting a POHeader entity.
type POHeaderDelete struct {
	config
	hooks    []Hook
	mutation *POHeaderMutation
}

// Where appends a list predicates to the POHeaderDelete builder.
func (_d *POHeaderDelete) Where(ps ...predicate.POHeader) *POHeaderDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *POHeaderDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *POHeaderDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *POHeaderDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(poheader.Table, sqlgraph.NewFieldSpec(poheader.FieldID, field.TypeUUID))
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

// POHeaderDeleteOne is the builder for deleting a single POHeader entity.
type POHeaderDeleteOne struct {
	_d *POHeaderDelete
}

// Where appends a list predicates to the POHeaderDelete builder.
func (_d *POHeaderDeleteOne) Where(ps ...predicate.POHeader) *POHeaderDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *POHeaderDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{poheader.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *POHeaderDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
