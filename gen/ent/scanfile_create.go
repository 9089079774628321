// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/lgasparetto/geoverify/gen/ent/scanfile"
	"github.com/lgasparetto/geoverify/gen/ent/verifyjob"
)

// ScanFileCreate is the builder for creating a ScanFile entity.
type ScanFileCreate struct {
	config
	mutation *ScanFileMutation
	hooks    []Hook
}

// SetProtocol sets the "protocol" field.
func (_c *ScanFileCreate) SetProtocol(v int) *ScanFileCreate {
	_c.mutation.SetProtocol(v)
	return _c
}

// SetNillableProtocol sets the "protocol" field if the given value is not nil.
func (_c *ScanFileCreate) SetNillableProtocol(v *int) *ScanFileCreate {
	if v != nil {
		_c.SetProtocol(*v)
	}
	return _c
}

// SetSourcePath sets the "source_path" field.
func (_c *ScanFileCreate) SetSourcePath(v string) *ScanFileCreate {
	_c.mutation.SetSourcePath(v)
	return _c
}

// SetContentHash sets the "content_hash" field.
func (_c *ScanFileCreate) SetContentHash(v []byte) *ScanFileCreate {
	_c.mutation.SetContentHash(v)
	return _c
}

// SetFilename sets the "filename" field.
func (_c *ScanFileCreate) SetFilename(v string) *ScanFileCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetFileExt sets the "file_ext" field.
func (_c *ScanFileCreate) SetFileExt(v string) *ScanFileCreate {
	_c.mutation.SetFileExt(v)
	return _c
}

// SetFormat sets the "format" field.
func (_c *ScanFileCreate) SetFormat(v string) *ScanFileCreate {
	_c.mutation.SetFormat(v)
	return _c
}

// SetFileSize sets the "file_size" field.
func (_c *ScanFileCreate) SetFileSize(v int) *ScanFileCreate {
	_c.mutation.SetFileSize(v)
	return _c
}

// SetPageCount sets the "page_count" field.
func (_c *ScanFileCreate) SetPageCount(v int) *ScanFileCreate {
	_c.mutation.SetPageCount(v)
	return _c
}

// SetNillablePageCount sets the "page_count" field if the given value is not nil.
func (_c *ScanFileCreate) SetNillablePageCount(v *int) *ScanFileCreate {
	if v != nil {
		_c.SetPageCount(*v)
	}
	return _c
}

// SetUploadedAt sets the "uploaded_at" field.
func (_c *ScanFileCreate) SetUploadedAt(v time.Time) *ScanFileCreate {
	_c.mutation.SetUploadedAt(v)
	return _c
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_c *ScanFileCreate) SetNillableUploadedAt(v *time.Time) *ScanFileCreate {
	if v != nil {
		_c.SetUploadedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ScanFileCreate) SetID(v uuid.UUID) *ScanFileCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ScanFileCreate) SetNillableID(v *uuid.UUID) *ScanFileCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddJobIDs adds the "jobs" edge to the VerifyJob entity by IDs.
func (_c *ScanFileCreate) AddJobIDs(ids ...uuid.UUID) *ScanFileCreate {
	_c.mutation.AddJobIDs(ids...)
	return _c
}

// AddJobs adds the "jobs" edges to the VerifyJob entity.
func (_c *ScanFileCreate) AddJobs(v ...*VerifyJob) *ScanFileCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddJobIDs(ids...)
}

// Mutation returns the ScanFileMutation object of the builder.
func (_c *ScanFileCreate) Mutation() *ScanFileMutation {
	return _c.mutation
}

// Save creates the ScanFile in the database.
func (_c *ScanFileCreate) Save(ctx context.Context) (*ScanFile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScanFileCreate) SaveX(ctx context.Context) *ScanFile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScanFileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScanFileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ScanFileCreate) defaults() {
	if _, ok := _c.mutation.PageCount(); !ok {
		v := scanfile.DefaultPageCount
		_c.mutation.SetPageCount(v)
	}
	if _, ok := _c.mutation.UploadedAt(); !ok {
		v := scanfile.DefaultUploadedAt()
		_c.mutation.SetUploadedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := scanfile.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScanFileCreate) check() error {
	if v, ok := _c.mutation.Protocol(); ok {
		if err := scanfile.ProtocolValidator(v); err != nil {
			return &ValidationError{Name: "protocol", err: fmt.Errorf(`ent: validator failed for field "ScanFile.protocol": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SourcePath(); !ok {
		return &ValidationError{Name: "source_path", err: errors.New(`ent: missing required field "ScanFile.source_path"`)}
	}
	if v, ok := _c.mutation.SourcePath(); ok {
		if err := scanfile.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "ScanFile.source_path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ContentHash(); !ok {
		return &ValidationError{Name: "content_hash", err: errors.New(`ent: missing required field "ScanFile.content_hash"`)}
	}
	if v, ok := _c.mutation.ContentHash(); ok {
		if err := scanfile.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "ScanFile.content_hash": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Filename(); !ok {
		return &ValidationError{Name: "filename", err: errors.New(`ent: missing required field "ScanFile.filename"`)}
	}
	if v, ok := _c.mutation.Filename(); ok {
		if err := scanfile.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "ScanFile.filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileExt(); !ok {
		return &ValidationError{Name: "file_ext", err: errors.New(`ent: missing required field "ScanFile.file_ext"`)}
	}
	if v, ok := _c.mutation.FileExt(); ok {
		if err := scanfile.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "ScanFile.file_ext": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Format(); !ok {
		return &ValidationError{Name: "format", err: errors.New(`ent: missing required field "ScanFile.format"`)}
	}
	if v, ok := _c.mutation.Format(); ok {
		if err := scanfile.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "ScanFile.format": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileSize(); !ok {
		return &ValidationError{Name: "file_size", err: errors.New(`ent: missing required field "ScanFile.file_size"`)}
	}
	if v, ok := _c.mutation.FileSize(); ok {
		if err := scanfile.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "ScanFile.file_size": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PageCount(); !ok {
		return &ValidationError{Name: "page_count", err: errors.New(`ent: missing required field "ScanFile.page_count"`)}
	}
	if v, ok := _c.mutation.PageCount(); ok {
		if err := scanfile.PageCountValidator(v); err != nil {
			return &ValidationError{Name: "page_count", err: fmt.Errorf(`ent: validator failed for field "ScanFile.page_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UploadedAt(); !ok {
		return &ValidationError{Name: "uploaded_at", err: errors.New(`ent: missing required field "ScanFile.uploaded_at"`)}
	}
	return nil
}

func (_c *ScanFileCreate) sqlSave(ctx context.Context) (*ScanFile, error) {
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

func (_c *ScanFileCreate) createSpec() (*ScanFile, *sqlgraph.CreateSpec) {
	var (
		_node = &ScanFile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(scanfile.Table, sqlgraph.NewFieldSpec(scanfile.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Protocol(); ok {
		_spec.SetField(scanfile.FieldProtocol, field.TypeInt, value)
		_node.Protocol = &value
	}
	if value, ok := _c.mutation.SourcePath(); ok {
		_spec.SetField(scanfile.FieldSourcePath, field.TypeString, value)
		_node.SourcePath = value
	}
	if value, ok := _c.mutation.ContentHash(); ok {
		_spec.SetField(scanfile.FieldContentHash, field.TypeBytes, value)
		_node.ContentHash = value
	}
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(scanfile.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := _c.mutation.FileExt(); ok {
		_spec.SetField(scanfile.FieldFileExt, field.TypeString, value)
		_node.FileExt = value
	}
	if value, ok := _c.mutation.Format(); ok {
		_spec.SetField(scanfile.FieldFormat, field.TypeString, value)
		_node.Format = value
	}
	if value, ok := _c.mutation.FileSize(); ok {
		_spec.SetField(scanfile.FieldFileSize, field.TypeInt, value)
		_node.FileSize = value
	}
	if value, ok := _c.mutation.PageCount(); ok {
		_spec.SetField(scanfile.FieldPageCount, field.TypeInt, value)
		_node.PageCount = value
	}
	if value, ok := _c.mutation.UploadedAt(); ok {
		_spec.SetField(scanfile.FieldUploadedAt, field.TypeTime, value)
		_node.UploadedAt = value
	}
	if nodes := _c.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   scanfile.JobsTable,
			Columns: []string{scanfile.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(verifyjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ScanFileCreateBulk is the builder for creating many ScanFile entities in bulk.
type ScanFileCreateBulk struct {
	config
	err      error
	builders []*ScanFileCreate
}

// Save creates the ScanFile entities in the database.
func (_c *ScanFileCreateBulk) Save(ctx context.Context) ([]*ScanFile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ScanFile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScanFileMutation)
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
func (_c *ScanFileCreateBulk) SaveX(ctx context.Context) []*ScanFile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScanFileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScanFileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
