// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/lgasparetto/geoverify/gen/ent/scanfile"
	"github.com/lgasparetto/geoverify/gen/ent/verifyjob"
)

// VerifyJobCreate is the builder for creating a VerifyJob entity.
type VerifyJobCreate struct {
	config
	mutation *VerifyJobMutation
	hooks    []Hook
}

// SetFileID sets the "file_id" field.
func (_c *VerifyJobCreate) SetFileID(v uuid.UUID) *VerifyJobCreate {
	_c.mutation.SetFileID(v)
	return _c
}

// SetProtocol sets the "protocol" field.
func (_c *VerifyJobCreate) SetProtocol(v int) *VerifyJobCreate {
	_c.mutation.SetProtocol(v)
	return _c
}

// SetNillableProtocol sets the "protocol" field if the given value is not nil.
func (_c *VerifyJobCreate) SetNillableProtocol(v *int) *VerifyJobCreate {
	if v != nil {
		_c.SetProtocol(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *VerifyJobCreate) SetStatus(v string) *VerifyJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *VerifyJobCreate) SetStartedAt(v time.Time) *VerifyJobCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *VerifyJobCreate) SetNillableStartedAt(v *time.Time) *VerifyJobCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *VerifyJobCreate) SetFinishedAt(v time.Time) *VerifyJobCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *VerifyJobCreate) SetNillableFinishedAt(v *time.Time) *VerifyJobCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *VerifyJobCreate) SetErrorMessage(v string) *VerifyJobCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *VerifyJobCreate) SetNillableErrorMessage(v *string) *VerifyJobCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetMemorialPages sets the "memorial_pages" field.
func (_c *VerifyJobCreate) SetMemorialPages(v int) *VerifyJobCreate {
	_c.mutation.SetMemorialPages(v)
	return _c
}

// SetNillableMemorialPages sets the "memorial_pages" field if the given value is not nil.
func (_c *VerifyJobCreate) SetNillableMemorialPages(v *int) *VerifyJobCreate {
	if v != nil {
		_c.SetMemorialPages(*v)
	}
	return _c
}

// SetProjectPages sets the "project_pages" field.
func (_c *VerifyJobCreate) SetProjectPages(v int) *VerifyJobCreate {
	_c.mutation.SetProjectPages(v)
	return _c
}

// SetNillableProjectPages sets the "project_pages" field if the given value is not nil.
func (_c *VerifyJobCreate) SetNillableProjectPages(v *int) *VerifyJobCreate {
	if v != nil {
		_c.SetProjectPages(*v)
	}
	return _c
}

// SetMemorialRaw sets the "memorial_raw" field.
func (_c *VerifyJobCreate) SetMemorialRaw(v string) *VerifyJobCreate {
	_c.mutation.SetMemorialRaw(v)
	return _c
}

// SetNillableMemorialRaw sets the "memorial_raw" field if the given value is not nil.
func (_c *VerifyJobCreate) SetNillableMemorialRaw(v *string) *VerifyJobCreate {
	if v != nil {
		_c.SetMemorialRaw(*v)
	}
	return _c
}

// SetProjectRaw sets the "project_raw" field.
func (_c *VerifyJobCreate) SetProjectRaw(v string) *VerifyJobCreate {
	_c.mutation.SetProjectRaw(v)
	return _c
}

// SetNillableProjectRaw sets the "project_raw" field if the given value is not nil.
func (_c *VerifyJobCreate) SetNillableProjectRaw(v *string) *VerifyJobCreate {
	if v != nil {
		_c.SetProjectRaw(*v)
	}
	return _c
}

// SetMemorialJSON sets the "memorial_json" field.
func (_c *VerifyJobCreate) SetMemorialJSON(v json.RawMessage) *VerifyJobCreate {
	_c.mutation.SetMemorialJSON(v)
	return _c
}

// SetProjectJSON sets the "project_json" field.
func (_c *VerifyJobCreate) SetProjectJSON(v json.RawMessage) *VerifyJobCreate {
	_c.mutation.SetProjectJSON(v)
	return _c
}

// SetComparisonJSON sets the "comparison_json" field.
func (_c *VerifyJobCreate) SetComparisonJSON(v json.RawMessage) *VerifyJobCreate {
	_c.mutation.SetComparisonJSON(v)
	return _c
}

// SetDivergences sets the "divergences" field.
func (_c *VerifyJobCreate) SetDivergences(v int) *VerifyJobCreate {
	_c.mutation.SetDivergences(v)
	return _c
}

// SetNillableDivergences sets the "divergences" field if the given value is not nil.
func (_c *VerifyJobCreate) SetNillableDivergences(v *int) *VerifyJobCreate {
	if v != nil {
		_c.SetDivergences(*v)
	}
	return _c
}

// SetDocumentsMatch sets the "documents_match" field.
func (_c *VerifyJobCreate) SetDocumentsMatch(v bool) *VerifyJobCreate {
	_c.mutation.SetDocumentsMatch(v)
	return _c
}

// SetNillableDocumentsMatch sets the "documents_match" field if the given value is not nil.
func (_c *VerifyJobCreate) SetNillableDocumentsMatch(v *bool) *VerifyJobCreate {
	if v != nil {
		_c.SetDocumentsMatch(*v)
	}
	return _c
}

// SetModelName sets the "model_name" field.
func (_c *VerifyJobCreate) SetModelName(v string) *VerifyJobCreate {
	_c.mutation.SetModelName(v)
	return _c
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_c *VerifyJobCreate) SetNillableModelName(v *string) *VerifyJobCreate {
	if v != nil {
		_c.SetModelName(*v)
	}
	return _c
}

// SetModelParams sets the "model_params" field.
func (_c *VerifyJobCreate) SetModelParams(v json.RawMessage) *VerifyJobCreate {
	_c.mutation.SetModelParams(v)
	return _c
}

// SetID sets the "id" field.
func (_c *VerifyJobCreate) SetID(v uuid.UUID) *VerifyJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *VerifyJobCreate) SetNillableID(v *uuid.UUID) *VerifyJobCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetFile sets the "file" edge to the ScanFile entity.
func (_c *VerifyJobCreate) SetFile(v *ScanFile) *VerifyJobCreate {
	return _c.SetFileID(v.ID)
}

// Mutation returns the VerifyJobMutation object of the builder.
func (_c *VerifyJobCreate) Mutation() *VerifyJobMutation {
	return _c.mutation
}

// Save creates the VerifyJob in the database.
func (_c *VerifyJobCreate) Save(ctx context.Context) (*VerifyJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VerifyJobCreate) SaveX(ctx context.Context) *VerifyJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VerifyJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VerifyJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VerifyJobCreate) defaults() {
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := verifyjob.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.MemorialPages(); !ok {
		v := verifyjob.DefaultMemorialPages
		_c.mutation.SetMemorialPages(v)
	}
	if _, ok := _c.mutation.ProjectPages(); !ok {
		v := verifyjob.DefaultProjectPages
		_c.mutation.SetProjectPages(v)
	}
	if _, ok := _c.mutation.Divergences(); !ok {
		v := verifyjob.DefaultDivergences
		_c.mutation.SetDivergences(v)
	}
	if _, ok := _c.mutation.DocumentsMatch(); !ok {
		v := verifyjob.DefaultDocumentsMatch
		_c.mutation.SetDocumentsMatch(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := verifyjob.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VerifyJobCreate) check() error {
	if _, ok := _c.mutation.FileID(); !ok {
		return &ValidationError{Name: "file_id", err: errors.New(`ent: missing required field "VerifyJob.file_id"`)}
	}
	if v, ok := _c.mutation.Protocol(); ok {
		if err := verifyjob.ProtocolValidator(v); err != nil {
			return &ValidationError{Name: "protocol", err: fmt.Errorf(`ent: validator failed for field "VerifyJob.protocol": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "VerifyJob.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := verifyjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "VerifyJob.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "VerifyJob.started_at"`)}
	}
	if _, ok := _c.mutation.MemorialPages(); !ok {
		return &ValidationError{Name: "memorial_pages", err: errors.New(`ent: missing required field "VerifyJob.memorial_pages"`)}
	}
	if v, ok := _c.mutation.MemorialPages(); ok {
		if err := verifyjob.MemorialPagesValidator(v); err != nil {
			return &ValidationError{Name: "memorial_pages", err: fmt.Errorf(`ent: validator failed for field "VerifyJob.memorial_pages": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProjectPages(); !ok {
		return &ValidationError{Name: "project_pages", err: errors.New(`ent: missing required field "VerifyJob.project_pages"`)}
	}
	if v, ok := _c.mutation.ProjectPages(); ok {
		if err := verifyjob.ProjectPagesValidator(v); err != nil {
			return &ValidationError{Name: "project_pages", err: fmt.Errorf(`ent: validator failed for field "VerifyJob.project_pages": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Divergences(); !ok {
		return &ValidationError{Name: "divergences", err: errors.New(`ent: missing required field "VerifyJob.divergences"`)}
	}
	if v, ok := _c.mutation.Divergences(); ok {
		if err := verifyjob.DivergencesValidator(v); err != nil {
			return &ValidationError{Name: "divergences", err: fmt.Errorf(`ent: validator failed for field "VerifyJob.divergences": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DocumentsMatch(); !ok {
		return &ValidationError{Name: "documents_match", err: errors.New(`ent: missing required field "VerifyJob.documents_match"`)}
	}
	if len(_c.mutation.FileIDs()) == 0 {
		return &ValidationError{Name: "file", err: errors.New(`ent: missing required edge "VerifyJob.file"`)}
	}
	return nil
}

func (_c *VerifyJobCreate) sqlSave(ctx context.Context) (*VerifyJob, error) {
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
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *VerifyJobCreate) createSpec() (*VerifyJob, *sqlgraph.CreateSpec) {
	var (
		_node = &VerifyJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(verifyjob.Table, sqlgraph.NewFieldSpec(verifyjob.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Protocol(); ok {
		_spec.SetField(verifyjob.FieldProtocol, field.TypeInt, value)
		_node.Protocol = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(verifyjob.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(verifyjob.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(verifyjob.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(verifyjob.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.MemorialPages(); ok {
		_spec.SetField(verifyjob.FieldMemorialPages, field.TypeInt, value)
		_node.MemorialPages = value
	}
	if value, ok := _c.mutation.ProjectPages(); ok {
		_spec.SetField(verifyjob.FieldProjectPages, field.TypeInt, value)
		_node.ProjectPages = value
	}
	if value, ok := _c.mutation.MemorialRaw(); ok {
		_spec.SetField(verifyjob.FieldMemorialRaw, field.TypeString, value)
		_node.MemorialRaw = &value
	}
	if value, ok := _c.mutation.ProjectRaw(); ok {
		_spec.SetField(verifyjob.FieldProjectRaw, field.TypeString, value)
		_node.ProjectRaw = &value
	}
	if value, ok := _c.mutation.MemorialJSON(); ok {
		_spec.SetField(verifyjob.FieldMemorialJSON, field.TypeJSON, value)
		_node.MemorialJSON = value
	}
	if value, ok := _c.mutation.ProjectJSON(); ok {
		_spec.SetField(verifyjob.FieldProjectJSON, field.TypeJSON, value)
		_node.ProjectJSON = value
	}
	if value, ok := _c.mutation.ComparisonJSON(); ok {
		_spec.SetField(verifyjob.FieldComparisonJSON, field.TypeJSON, value)
		_node.ComparisonJSON = value
	}
	if value, ok := _c.mutation.Divergences(); ok {
		_spec.SetField(verifyjob.FieldDivergences, field.TypeInt, value)
		_node.Divergences = value
	}
	if value, ok := _c.mutation.DocumentsMatch(); ok {
		_spec.SetField(verifyjob.FieldDocumentsMatch, field.TypeBool, value)
		_node.DocumentsMatch = value
	}
	if value, ok := _c.mutation.ModelName(); ok {
		_spec.SetField(verifyjob.FieldModelName, field.TypeString, value)
		_node.ModelName = &value
	}
	if value, ok := _c.mutation.ModelParams(); ok {
		_spec.SetField(verifyjob.FieldModelParams, field.TypeJSON, value)
		_node.ModelParams = value
	}
	if nodes := _c.mutation.FileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   verifyjob.FileTable,
			Columns: []string{verifyjob.FileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scanfile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.FileID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// VerifyJobCreateBulk is the builder for creating many VerifyJob entities in bulk.
type VerifyJobCreateBulk struct {
	config
	err      error
	builders []*VerifyJobCreate
}

// Save creates the VerifyJob entities in the database.
func (_c *VerifyJobCreateBulk) Save(ctx context.Context) ([]*VerifyJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*VerifyJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VerifyJobMutation)
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
func (_c *VerifyJobCreateBulk) SaveX(ctx context.Context) []*VerifyJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VerifyJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VerifyJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
