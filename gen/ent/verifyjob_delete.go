// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lgasparetto/geoverify/gen/ent/predicate"
	"github.com/lgasparetto/geoverify/gen/ent/verifyjob"
)

// VerifyJobDelete is the builder for deleting a VerifyJob entity.
type VerifyJobDelete struct {
	config
	hooks    []Hook
	mutation *VerifyJobMutation
}

// Where appends a list predicates to the VerifyJobDelete builder.
func (_d *VerifyJobDelete) Where(ps ...predicate.VerifyJob) *VerifyJobDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *VerifyJobDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *VerifyJobDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *VerifyJobDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(verifyjob.Table, sqlgraph.NewFieldSpec(verifyjob.FieldID, field.TypeUUID))
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

// VerifyJobDeleteOne is the builder for deleting a single VerifyJob entity.
type VerifyJobDeleteOne struct {
	_d *VerifyJobDelete
}

// Where appends a list predicates to the VerifyJobDelete builder.
func (_d *VerifyJobDeleteOne) Where(ps ...predicate.VerifyJob) *VerifyJobDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *VerifyJobDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{verifyjob.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *VerifyJobDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
