// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/lgasparetto/geoverify/gen/ent/predicate"
	"github.com/lgasparetto/geoverify/gen/ent/scanfile"
	"github.com/lgasparetto/geoverify/gen/ent/verifyjob"
)

// ScanFileUpdate is the builder for updating ScanFile entities.
type ScanFileUpdate struct {
	config
	hooks    []Hook
	mutation *ScanFileMutation
}

// Where appends a list predicates to the ScanFileUpdate builder.
func (_u *ScanFileUpdate) Where(ps ...predicate.ScanFile) *ScanFileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProtocol sets the "protocol" field.
func (_u *ScanFileUpdate) SetProtocol(v int) *ScanFileUpdate {
	_u.mutation.ResetProtocol()
	_u.mutation.SetProtocol(v)
	return _u
}

// SetNillableProtocol sets the "protocol" field if the given value is not nil.
func (_u *ScanFileUpdate) SetNillableProtocol(v *int) *ScanFileUpdate {
	if v != nil {
		_u.SetProtocol(*v)
	}
	return _u
}

// AddProtocol adds value to the "protocol" field.
func (_u *ScanFileUpdate) AddProtocol(v int) *ScanFileUpdate {
	_u.mutation.AddProtocol(v)
	return _u
}

// ClearProtocol clears the value of the "protocol" field.
func (_u *ScanFileUpdate) ClearProtocol() *ScanFileUpdate {
	_u.mutation.ClearProtocol()
	return _u
}

// SetSourcePath sets the "source_path" field.
func (_u *ScanFileUpdate) SetSourcePath(v string) *ScanFileUpdate {
	_u.mutation.SetSourcePath(v)
	return _u
}

// SetNillableSourcePath sets the "source_path" field if the given value is not nil.
func (_u *ScanFileUpdate) SetNillableSourcePath(v *string) *ScanFileUpdate {
	if v != nil {
		_u.SetSourcePath(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *ScanFileUpdate) SetContentHash(v []byte) *ScanFileUpdate {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetFilename sets the "filename" field.
func (_u *ScanFileUpdate) SetFilename(v string) *ScanFileUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *ScanFileUpdate) SetNillableFilename(v *string) *ScanFileUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetFileExt sets the "file_ext" field.
func (_u *ScanFileUpdate) SetFileExt(v string) *ScanFileUpdate {
	_u.mutation.SetFileExt(v)
	return _u
}

// SetNillableFileExt sets the "file_ext" field if the given value is not nil.
func (_u *ScanFileUpdate) SetNillableFileExt(v *string) *ScanFileUpdate {
	if v != nil {
		_u.SetFileExt(*v)
	}
	return _u
}

// SetFormat sets the "format" field.
func (_u *ScanFileUpdate) SetFormat(v string) *ScanFileUpdate {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *ScanFileUpdate) SetNillableFormat(v *string) *ScanFileUpdate {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *ScanFileUpdate) SetFileSize(v int) *ScanFileUpdate {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *ScanFileUpdate) SetNillableFileSize(v *int) *ScanFileUpdate {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *ScanFileUpdate) AddFileSize(v int) *ScanFileUpdate {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetPageCount sets the "page_count" field.
func (_u *ScanFileUpdate) SetPageCount(v int) *ScanFileUpdate {
	_u.mutation.ResetPageCount()
	_u.mutation.SetPageCount(v)
	return _u
}

// SetNillablePageCount sets the "page_count" field if the given value is not nil.
func (_u *ScanFileUpdate) SetNillablePageCount(v *int) *ScanFileUpdate {
	if v != nil {
		_u.SetPageCount(*v)
	}
	return _u
}

// AddPageCount adds value to the "page_count" field.
func (_u *ScanFileUpdate) AddPageCount(v int) *ScanFileUpdate {
	_u.mutation.AddPageCount(v)
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *ScanFileUpdate) SetUploadedAt(v time.Time) *ScanFileUpdate {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *ScanFileUpdate) SetNillableUploadedAt(v *time.Time) *ScanFileUpdate {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// AddJobIDs adds the "jobs" edge to the VerifyJob entity by IDs.
func (_u *ScanFileUpdate) AddJobIDs(ids ...uuid.UUID) *ScanFileUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the VerifyJob entity.
func (_u *ScanFileUpdate) AddJobs(v ...*VerifyJob) *ScanFileUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the ScanFileMutation object of the builder.
func (_u *ScanFileUpdate) Mutation() *ScanFileMutation {
	return _u.mutation
}

// ClearJobs clears all "jobs" edges to the VerifyJob entity.
func (_u *ScanFileUpdate) ClearJobs() *ScanFileUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to VerifyJob entities by IDs.
func (_u *ScanFileUpdate) RemoveJobIDs(ids ...uuid.UUID) *ScanFileUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to VerifyJob entities.
func (_u *ScanFileUpdate) RemoveJobs(v ...*VerifyJob) *ScanFileUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScanFileUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScanFileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScanFileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScanFileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScanFileUpdate) check() error {
	if v, ok := _u.mutation.Protocol(); ok {
		if err := scanfile.ProtocolValidator(v); err != nil {
			return &ValidationError{Name: "protocol", err: fmt.Errorf(`ent: validator failed for field "ScanFile.protocol": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourcePath(); ok {
		if err := scanfile.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "ScanFile.source_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := scanfile.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "ScanFile.content_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Filename(); ok {
		if err := scanfile.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "ScanFile.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileExt(); ok {
		if err := scanfile.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "ScanFile.file_ext": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Format(); ok {
		if err := scanfile.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "ScanFile.format": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := scanfile.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "ScanFile.file_size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PageCount(); ok {
		if err := scanfile.PageCountValidator(v); err != nil {
			return &ValidationError{Name: "page_count", err: fmt.Errorf(`ent: validator failed for field "ScanFile.page_count": %w`, err)}
		}
	}
	return nil
}

func (_u *ScanFileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scanfile.Table, scanfile.Columns, sqlgraph.NewFieldSpec(scanfile.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Protocol(); ok {
		_spec.SetField(scanfile.FieldProtocol, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProtocol(); ok {
		_spec.AddField(scanfile.FieldProtocol, field.TypeInt, value)
	}
	if _u.mutation.ProtocolCleared() {
		_spec.ClearField(scanfile.FieldProtocol, field.TypeInt)
	}
	if value, ok := _u.mutation.SourcePath(); ok {
		_spec.SetField(scanfile.FieldSourcePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(scanfile.FieldContentHash, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(scanfile.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileExt(); ok {
		_spec.SetField(scanfile.FieldFileExt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(scanfile.FieldFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(scanfile.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(scanfile.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PageCount(); ok {
		_spec.SetField(scanfile.FieldPageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageCount(); ok {
		_spec.AddField(scanfile.FieldPageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(scanfile.FieldUploadedAt, field.TypeTime, value)
	}
	if _u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scanfile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScanFileUpdateOne is the builder for updating a single ScanFile entity.
type ScanFileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScanFileMutation
}

// SetProtocol sets the "protocol" field.
func (_u *ScanFileUpdateOne) SetProtocol(v int) *ScanFileUpdateOne {
	_u.mutation.ResetProtocol()
	_u.mutation.SetProtocol(v)
	return _u
}

// SetNillableProtocol sets the "protocol" field if the given value is not nil.
func (_u *ScanFileUpdateOne) SetNillableProtocol(v *int) *ScanFileUpdateOne {
	if v != nil {
		_u.SetProtocol(*v)
	}
	return _u
}

// AddProtocol adds value to the "protocol" field.
func (_u *ScanFileUpdateOne) AddProtocol(v int) *ScanFileUpdateOne {
	_u.mutation.AddProtocol(v)
	return _u
}

// ClearProtocol clears the value of the "protocol" field.
func (_u *ScanFileUpdateOne) ClearProtocol() *ScanFileUpdateOne {
	_u.mutation.ClearProtocol()
	return _u
}

// SetSourcePath sets the "source_path" field.
func (_u *ScanFileUpdateOne) SetSourcePath(v string) *ScanFileUpdateOne {
	_u.mutation.SetSourcePath(v)
	return _u
}

// SetNillableSourcePath sets the "source_path" field if the given value is not nil.
func (_u *ScanFileUpdateOne) SetNillableSourcePath(v *string) *ScanFileUpdateOne {
	if v != nil {
		_u.SetSourcePath(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *ScanFileUpdateOne) SetContentHash(v []byte) *ScanFileUpdateOne {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetFilename sets the "filename" field.
func (_u *ScanFileUpdateOne) SetFilename(v string) *ScanFileUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *ScanFileUpdateOne) SetNillableFilename(v *string) *ScanFileUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetFileExt sets the "file_ext" field.
func (_u *ScanFileUpdateOne) SetFileExt(v string) *ScanFileUpdateOne {
	_u.mutation.SetFileExt(v)
	return _u
}

// SetNillableFileExt sets the "file_ext" field if the given value is not nil.
func (_u *ScanFileUpdateOne) SetNillableFileExt(v *string) *ScanFileUpdateOne {
	if v != nil {
		_u.SetFileExt(*v)
	}
	return _u
}

// SetFormat sets the "format" field.
func (_u *ScanFileUpdateOne) SetFormat(v string) *ScanFileUpdateOne {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *ScanFileUpdateOne) SetNillableFormat(v *string) *ScanFileUpdateOne {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *ScanFileUpdateOne) SetFileSize(v int) *ScanFileUpdateOne {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *ScanFileUpdateOne) SetNillableFileSize(v *int) *ScanFileUpdateOne {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *ScanFileUpdateOne) AddFileSize(v int) *ScanFileUpdateOne {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetPageCount sets the "page_count" field.
func (_u *ScanFileUpdateOne) SetPageCount(v int) *ScanFileUpdateOne {
	_u.mutation.ResetPageCount()
	_u.mutation.SetPageCount(v)
	return _u
}

// SetNillablePageCount sets the "page_count" field if the given value is not nil.
func (_u *ScanFileUpdateOne) SetNillablePageCount(v *int) *ScanFileUpdateOne {
	if v != nil {
		_u.SetPageCount(*v)
	}
	return _u
}

// AddPageCount adds value to the "page_count" field.
func (_u *ScanFileUpdateOne) AddPageCount(v int) *ScanFileUpdateOne {
	_u.mutation.AddPageCount(v)
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *ScanFileUpdateOne) SetUploadedAt(v time.Time) *ScanFileUpdateOne {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *ScanFileUpdateOne) SetNillableUploadedAt(v *time.Time) *ScanFileUpdateOne {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// AddJobIDs adds the "jobs" edge to the VerifyJob entity by IDs.
func (_u *ScanFileUpdateOne) AddJobIDs(ids ...uuid.UUID) *ScanFileUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the VerifyJob entity.
func (_u *ScanFileUpdateOne) AddJobs(v ...*VerifyJob) *ScanFileUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the ScanFileMutation object of the builder.
func (_u *ScanFileUpdateOne) Mutation() *ScanFileMutation {
	return _u.mutation
}

// ClearJobs clears all "jobs" edges to the VerifyJob entity.
func (_u *ScanFileUpdateOne) ClearJobs() *ScanFileUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to VerifyJob entities by IDs.
func (_u *ScanFileUpdateOne) RemoveJobIDs(ids ...uuid.UUID) *ScanFileUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to VerifyJob entities.
func (_u *ScanFileUpdateOne) RemoveJobs(v ...*VerifyJob) *ScanFileUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Where appends a list predicates to the ScanFileUpdate builder.
func (_u *ScanFileUpdateOne) Where(ps ...predicate.ScanFile) *ScanFileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScanFileUpdateOne) Select(field string, fields ...string) *ScanFileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ScanFile entity.
func (_u *ScanFileUpdateOne) Save(ctx context.Context) (*ScanFile, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScanFileUpdateOne) SaveX(ctx context.Context) *ScanFile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScanFileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScanFileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScanFileUpdateOne) check() error {
	if v, ok := _u.mutation.Protocol(); ok {
		if err := scanfile.ProtocolValidator(v); err != nil {
			return &ValidationError{Name: "protocol", err: fmt.Errorf(`ent: validator failed for field "ScanFile.protocol": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourcePath(); ok {
		if err := scanfile.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "ScanFile.source_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := scanfile.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "ScanFile.content_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Filename(); ok {
		if err := scanfile.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "ScanFile.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileExt(); ok {
		if err := scanfile.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "ScanFile.file_ext": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Format(); ok {
		if err := scanfile.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "ScanFile.format": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := scanfile.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "ScanFile.file_size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PageCount(); ok {
		if err := scanfile.PageCountValidator(v); err != nil {
			return &ValidationError{Name: "page_count", err: fmt.Errorf(`ent: validator failed for field "ScanFile.page_count": %w`, err)}
		}
	}
	return nil
}

func (_u *ScanFileUpdateOne) sqlSave(ctx context.Context) (_node *ScanFile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scanfile.Table, scanfile.Columns, sqlgraph.NewFieldSpec(scanfile.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ScanFile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scanfile.FieldID)
		for _, f := range fields {
			if !scanfile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != scanfile.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Protocol(); ok {
		_spec.SetField(scanfile.FieldProtocol, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProtocol(); ok {
		_spec.AddField(scanfile.FieldProtocol, field.TypeInt, value)
	}
	if _u.mutation.ProtocolCleared() {
		_spec.ClearField(scanfile.FieldProtocol, field.TypeInt)
	}
	if value, ok := _u.mutation.SourcePath(); ok {
		_spec.SetField(scanfile.FieldSourcePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(scanfile.FieldContentHash, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(scanfile.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileExt(); ok {
		_spec.SetField(scanfile.FieldFileExt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(scanfile.FieldFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(scanfile.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(scanfile.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PageCount(); ok {
		_spec.SetField(scanfile.FieldPageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageCount(); ok {
		_spec.AddField(scanfile.FieldPageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(scanfile.FieldUploadedAt, field.TypeTime, value)
	}
	if _u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ScanFile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scanfile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
