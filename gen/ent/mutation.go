// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/lgasparetto/geoverify/gen/ent/predicate"
	"github.com/lgasparetto/geoverify/gen/ent/scanfile"
	"github.com/lgasparetto/geoverify/gen/ent/verifyjob"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeScanFile  = "ScanFile"
	TypeVerifyJob = "VerifyJob"
)

// ScanFileMutation represents an operation that mutates the ScanFile nodes in the graph.
type ScanFileMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	protocol      *int
	addprotocol   *int
	source_path   *string
	content_hash  *[]byte
	filename      *string
	file_ext      *string
	format        *string
	file_size     *int
	addfile_size  *int
	page_count    *int
	addpage_count *int
	uploaded_at   *time.Time
	clearedFields map[string]struct{}
	jobs          map[uuid.UUID]struct{}
	removedjobs   map[uuid.UUID]struct{}
	clearedjobs   bool
	done          bool
	oldValue      func(context.Context) (*ScanFile, error)
	predicates    []predicate.ScanFile
}

var _ ent.Mutation = (*ScanFileMutation)(nil)

// scanfileOption allows management of the mutation configuration using functional options.
type scanfileOption func(*ScanFileMutation)

// newScanFileMutation creates new mutation for the ScanFile entity.
func newScanFileMutation(c config, op Op, opts ...scanfileOption) *ScanFileMutation {
	m := &ScanFileMutation{
		config:        c,
		op:            op,
		typ:           TypeScanFile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withScanFileID sets the ID field of the mutation.
func withScanFileID(id uuid.UUID) scanfileOption {
	return func(m *ScanFileMutation) {
		var (
			err   error
			once  sync.Once
			value *ScanFile
		)
		m.oldValue = func(ctx context.Context) (*ScanFile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ScanFile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withScanFile sets the old ScanFile of the mutation.
func withScanFile(node *ScanFile) scanfileOption {
	return func(m *ScanFileMutation) {
		m.oldValue = func(context.Context) (*ScanFile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ScanFileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ScanFileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ScanFile entities.
func (m *ScanFileMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ScanFileMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ScanFileMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ScanFile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProtocol sets the "protocol" field.
func (m *ScanFileMutation) SetProtocol(i int) {
	m.protocol = &i
	m.addprotocol = nil
}

// Protocol returns the value of the "protocol" field in the mutation.
func (m *ScanFileMutation) Protocol() (r int, exists bool) {
	v := m.protocol
	if v == nil {
		return
	}
	return *v, true
}

// OldProtocol returns the old "protocol" field's value of the ScanFile entity.
// If the ScanFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanFileMutation) OldProtocol(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProtocol is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProtocol requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProtocol: %w", err)
	}
	return oldValue.Protocol, nil
}

// AddProtocol adds i to the "protocol" field.
func (m *ScanFileMutation) AddProtocol(i int) {
	if m.addprotocol != nil {
		*m.addprotocol += i
	} else {
		m.addprotocol = &i
	}
}

// AddedProtocol returns the value that was added to the "protocol" field in this mutation.
func (m *ScanFileMutation) AddedProtocol() (r int, exists bool) {
	v := m.addprotocol
	if v == nil {
		return
	}
	return *v, true
}

// ClearProtocol clears the value of the "protocol" field.
func (m *ScanFileMutation) ClearProtocol() {
	m.protocol = nil
	m.addprotocol = nil
	m.clearedFields[scanfile.FieldProtocol] = struct{}{}
}

// ProtocolCleared returns if the "protocol" field was cleared in this mutation.
func (m *ScanFileMutation) ProtocolCleared() bool {
	_, ok := m.clearedFields[scanfile.FieldProtocol]
	return ok
}

// ResetProtocol resets all changes to the "protocol" field.
func (m *ScanFileMutation) ResetProtocol() {
	m.protocol = nil
	m.addprotocol = nil
	delete(m.clearedFields, scanfile.FieldProtocol)
}

// SetSourcePath sets the "source_path" field.
func (m *ScanFileMutation) SetSourcePath(s string) {
	m.source_path = &s
}

// SourcePath returns the value of the "source_path" field in the mutation.
func (m *ScanFileMutation) SourcePath() (r string, exists bool) {
	v := m.source_path
	if v == nil {
		return
	}
	return *v, true
}

// OldSourcePath returns the old "source_path" field's value of the ScanFile entity.
// If the ScanFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanFileMutation) OldSourcePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourcePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourcePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourcePath: %w", err)
	}
	return oldValue.SourcePath, nil
}

// ResetSourcePath resets all changes to the "source_path" field.
func (m *ScanFileMutation) ResetSourcePath() {
	m.source_path = nil
}

// SetContentHash sets the "content_hash" field.
func (m *ScanFileMutation) SetContentHash(b []byte) {
	m.content_hash = &b
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *ScanFileMutation) ContentHash() (r []byte, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the ScanFile entity.
// If the ScanFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanFileMutation) OldContentHash(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *ScanFileMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetFilename sets the "filename" field.
func (m *ScanFileMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *ScanFileMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the ScanFile entity.
// If the ScanFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanFileMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *ScanFileMutation) ResetFilename() {
	m.filename = nil
}

// SetFileExt sets the "file_ext" field.
func (m *ScanFileMutation) SetFileExt(s string) {
	m.file_ext = &s
}

// FileExt returns the value of the "file_ext" field in the mutation.
func (m *ScanFileMutation) FileExt() (r string, exists bool) {
	v := m.file_ext
	if v == nil {
		return
	}
	return *v, true
}

// OldFileExt returns the old "file_ext" field's value of the ScanFile entity.
// If the ScanFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanFileMutation) OldFileExt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileExt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileExt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileExt: %w", err)
	}
	return oldValue.FileExt, nil
}

// ResetFileExt resets all changes to the "file_ext" field.
func (m *ScanFileMutation) ResetFileExt() {
	m.file_ext = nil
}

// SetFormat sets the "format" field.
func (m *ScanFileMutation) SetFormat(s string) {
	m.format = &s
}

// Format returns the value of the "format" field in the mutation.
func (m *ScanFileMutation) Format() (r string, exists bool) {
	v := m.format
	if v == nil {
		return
	}
	return *v, true
}

// OldFormat returns the old "format" field's value of the ScanFile entity.
// If the ScanFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanFileMutation) OldFormat(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFormat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFormat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFormat: %w", err)
	}
	return oldValue.Format, nil
}

// ResetFormat resets all changes to the "format" field.
func (m *ScanFileMutation) ResetFormat() {
	m.format = nil
}

// SetFileSize sets the "file_size" field.
func (m *ScanFileMutation) SetFileSize(i int) {
	m.file_size = &i
	m.addfile_size = nil
}

// FileSize returns the value of the "file_size" field in the mutation.
func (m *ScanFileMutation) FileSize() (r int, exists bool) {
	v := m.file_size
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSize returns the old "file_size" field's value of the ScanFile entity.
// If the ScanFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanFileMutation) OldFileSize(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSize: %w", err)
	}
	return oldValue.FileSize, nil
}

// AddFileSize adds i to the "file_size" field.
func (m *ScanFileMutation) AddFileSize(i int) {
	if m.addfile_size != nil {
		*m.addfile_size += i
	} else {
		m.addfile_size = &i
	}
}

// AddedFileSize returns the value that was added to the "file_size" field in this mutation.
func (m *ScanFileMutation) AddedFileSize() (r int, exists bool) {
	v := m.addfile_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetFileSize resets all changes to the "file_size" field.
func (m *ScanFileMutation) ResetFileSize() {
	m.file_size = nil
	m.addfile_size = nil
}

// SetPageCount sets the "page_count" field.
func (m *ScanFileMutation) SetPageCount(i int) {
	m.page_count = &i
	m.addpage_count = nil
}

// PageCount returns the value of the "page_count" field in the mutation.
func (m *ScanFileMutation) PageCount() (r int, exists bool) {
	v := m.page_count
	if v == nil {
		return
	}
	return *v, true
}

// OldPageCount returns the old "page_count" field's value of the ScanFile entity.
// If the ScanFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanFileMutation) OldPageCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPageCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPageCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPageCount: %w", err)
	}
	return oldValue.PageCount, nil
}

// AddPageCount adds i to the "page_count" field.
func (m *ScanFileMutation) AddPageCount(i int) {
	if m.addpage_count != nil {
		*m.addpage_count += i
	} else {
		m.addpage_count = &i
	}
}

// AddedPageCount returns the value that was added to the "page_count" field in this mutation.
func (m *ScanFileMutation) AddedPageCount() (r int, exists bool) {
	v := m.addpage_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetPageCount resets all changes to the "page_count" field.
func (m *ScanFileMutation) ResetPageCount() {
	m.page_count = nil
	m.addpage_count = nil
}

// SetUploadedAt sets the "uploaded_at" field.
func (m *ScanFileMutation) SetUploadedAt(t time.Time) {
	m.uploaded_at = &t
}

// UploadedAt returns the value of the "uploaded_at" field in the mutation.
func (m *ScanFileMutation) UploadedAt() (r time.Time, exists bool) {
	v := m.uploaded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedAt returns the old "uploaded_at" field's value of the ScanFile entity.
// If the ScanFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanFileMutation) OldUploadedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedAt: %w", err)
	}
	return oldValue.UploadedAt, nil
}

// ResetUploadedAt resets all changes to the "uploaded_at" field.
func (m *ScanFileMutation) ResetUploadedAt() {
	m.uploaded_at = nil
}

// AddJobIDs adds the "jobs" edge to the VerifyJob entity by ids.
func (m *ScanFileMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the VerifyJob entity.
func (m *ScanFileMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the VerifyJob entity was cleared.
func (m *ScanFileMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the VerifyJob entity by IDs.
func (m *ScanFileMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the VerifyJob entity.
func (m *ScanFileMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *ScanFileMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *ScanFileMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the ScanFileMutation builder.
func (m *ScanFileMutation) Where(ps ...predicate.ScanFile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ScanFileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ScanFileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ScanFile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ScanFileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ScanFileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ScanFile).
func (m *ScanFileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ScanFileMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.protocol != nil {
		fields = append(fields, scanfile.FieldProtocol)
	}
	if m.source_path != nil {
		fields = append(fields, scanfile.FieldSourcePath)
	}
	if m.content_hash != nil {
		fields = append(fields, scanfile.FieldContentHash)
	}
	if m.filename != nil {
		fields = append(fields, scanfile.FieldFilename)
	}
	if m.file_ext != nil {
		fields = append(fields, scanfile.FieldFileExt)
	}
	if m.format != nil {
		fields = append(fields, scanfile.FieldFormat)
	}
	if m.file_size != nil {
		fields = append(fields, scanfile.FieldFileSize)
	}
	if m.page_count != nil {
		fields = append(fields, scanfile.FieldPageCount)
	}
	if m.uploaded_at != nil {
		fields = append(fields, scanfile.FieldUploadedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ScanFileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case scanfile.FieldProtocol:
		return m.Protocol()
	case scanfile.FieldSourcePath:
		return m.SourcePath()
	case scanfile.FieldContentHash:
		return m.ContentHash()
	case scanfile.FieldFilename:
		return m.Filename()
	case scanfile.FieldFileExt:
		return m.FileExt()
	case scanfile.FieldFormat:
		return m.Format()
	case scanfile.FieldFileSize:
		return m.FileSize()
	case scanfile.FieldPageCount:
		return m.PageCount()
	case scanfile.FieldUploadedAt:
		return m.UploadedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ScanFileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case scanfile.FieldProtocol:
		return m.OldProtocol(ctx)
	case scanfile.FieldSourcePath:
		return m.OldSourcePath(ctx)
	case scanfile.FieldContentHash:
		return m.OldContentHash(ctx)
	case scanfile.FieldFilename:
		return m.OldFilename(ctx)
	case scanfile.FieldFileExt:
		return m.OldFileExt(ctx)
	case scanfile.FieldFormat:
		return m.OldFormat(ctx)
	case scanfile.FieldFileSize:
		return m.OldFileSize(ctx)
	case scanfile.FieldPageCount:
		return m.OldPageCount(ctx)
	case scanfile.FieldUploadedAt:
		return m.OldUploadedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ScanFile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScanFileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case scanfile.FieldProtocol:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProtocol(v)
		return nil
	case scanfile.FieldSourcePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourcePath(v)
		return nil
	case scanfile.FieldContentHash:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case scanfile.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case scanfile.FieldFileExt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileExt(v)
		return nil
	case scanfile.FieldFormat:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFormat(v)
		return nil
	case scanfile.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSize(v)
		return nil
	case scanfile.FieldPageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPageCount(v)
		return nil
	case scanfile.FieldUploadedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ScanFile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ScanFileMutation) AddedFields() []string {
	var fields []string
	if m.addprotocol != nil {
		fields = append(fields, scanfile.FieldProtocol)
	}
	if m.addfile_size != nil {
		fields = append(fields, scanfile.FieldFileSize)
	}
	if m.addpage_count != nil {
		fields = append(fields, scanfile.FieldPageCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ScanFileMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case scanfile.FieldProtocol:
		return m.AddedProtocol()
	case scanfile.FieldFileSize:
		return m.AddedFileSize()
	case scanfile.FieldPageCount:
		return m.AddedPageCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScanFileMutation) AddField(name string, value ent.Value) error {
	switch name {
	case scanfile.FieldProtocol:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProtocol(v)
		return nil
	case scanfile.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSize(v)
		return nil
	case scanfile.FieldPageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPageCount(v)
		return nil
	}
	return fmt.Errorf("unknown ScanFile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ScanFileMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(scanfile.FieldProtocol) {
		fields = append(fields, scanfile.FieldProtocol)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ScanFileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ScanFileMutation) ClearField(name string) error {
	switch name {
	case scanfile.FieldProtocol:
		m.ClearProtocol()
		return nil
	}
	return fmt.Errorf("unknown ScanFile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ScanFileMutation) ResetField(name string) error {
	switch name {
	case scanfile.FieldProtocol:
		m.ResetProtocol()
		return nil
	case scanfile.FieldSourcePath:
		m.ResetSourcePath()
		return nil
	case scanfile.FieldContentHash:
		m.ResetContentHash()
		return nil
	case scanfile.FieldFilename:
		m.ResetFilename()
		return nil
	case scanfile.FieldFileExt:
		m.ResetFileExt()
		return nil
	case scanfile.FieldFormat:
		m.ResetFormat()
		return nil
	case scanfile.FieldFileSize:
		m.ResetFileSize()
		return nil
	case scanfile.FieldPageCount:
		m.ResetPageCount()
		return nil
	case scanfile.FieldUploadedAt:
		m.ResetUploadedAt()
		return nil
	}
	return fmt.Errorf("unknown ScanFile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ScanFileMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.jobs != nil {
		edges = append(edges, scanfile.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ScanFileMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case scanfile.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ScanFileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedjobs != nil {
		edges = append(edges, scanfile.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ScanFileMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case scanfile.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ScanFileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjobs {
		edges = append(edges, scanfile.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ScanFileMutation) EdgeCleared(name string) bool {
	switch name {
	case scanfile.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ScanFileMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown ScanFile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ScanFileMutation) ResetEdge(name string) error {
	switch name {
	case scanfile.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown ScanFile edge %s", name)
}

// VerifyJobMutation represents an operation that mutates the VerifyJob nodes in the graph.
type VerifyJobMutation struct {
	config
	op                    Op
	typ                   string
	id                    *uuid.UUID
	protocol              *int
	addprotocol           *int
	status                *string
	started_at            *time.Time
	finished_at           *time.Time
	error_message         *string
	memorial_pages        *int
	addmemorial_pages     *int
	project_pages         *int
	addproject_pages      *int
	memorial_raw          *string
	project_raw           *string
	memorial_json         *json.RawMessage
	appendmemorial_json   json.RawMessage
	project_json          *json.RawMessage
	appendproject_json    json.RawMessage
	comparison_json       *json.RawMessage
	appendcomparison_json json.RawMessage
	divergences           *int
	adddivergences        *int
	documents_match       *bool
	model_name            *string
	model_params          *json.RawMessage
	appendmodel_params    json.RawMessage
	clearedFields         map[string]struct{}
	file                  *uuid.UUID
	clearedfile           bool
	done                  bool
	oldValue              func(context.Context) (*VerifyJob, error)
	predicates            []predicate.VerifyJob
}

var _ ent.Mutation = (*VerifyJobMutation)(nil)

// verifyjobOption allows management of the mutation configuration using functional options.
type verifyjobOption func(*VerifyJobMutation)

// newVerifyJobMutation creates new mutation for the VerifyJob entity.
func newVerifyJobMutation(c config, op Op, opts ...verifyjobOption) *VerifyJobMutation {
	m := &VerifyJobMutation{
		config:        c,
		op:            op,
		typ:           TypeVerifyJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVerifyJobID sets the ID field of the mutation.
func withVerifyJobID(id uuid.UUID) verifyjobOption {
	return func(m *VerifyJobMutation) {
		var (
			err   error
			once  sync.Once
			value *VerifyJob
		)
		m.oldValue = func(ctx context.Context) (*VerifyJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().VerifyJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVerifyJob sets the old VerifyJob of the mutation.
func withVerifyJob(node *VerifyJob) verifyjobOption {
	return func(m *VerifyJobMutation) {
		m.oldValue = func(context.Context) (*VerifyJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VerifyJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VerifyJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of VerifyJob entities.
func (m *VerifyJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VerifyJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VerifyJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().VerifyJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFileID sets the "file_id" field.
func (m *VerifyJobMutation) SetFileID(u uuid.UUID) {
	m.file = &u
}

// FileID returns the value of the "file_id" field in the mutation.
func (m *VerifyJobMutation) FileID() (r uuid.UUID, exists bool) {
	v := m.file
	if v == nil {
		return
	}
	return *v, true
}

// OldFileID returns the old "file_id" field's value of the VerifyJob entity.
// If the VerifyJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerifyJobMutation) OldFileID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileID: %w", err)
	}
	return oldValue.FileID, nil
}

// ResetFileID resets all changes to the "file_id" field.
func (m *VerifyJobMutation) ResetFileID() {
	m.file = nil
}

// SetProtocol sets the "protocol" field.
func (m *VerifyJobMutation) SetProtocol(i int) {
	m.protocol = &i
	m.addprotocol = nil
}

// Protocol returns the value of the "protocol" field in the mutation.
func (m *VerifyJobMutation) Protocol() (r int, exists bool) {
	v := m.protocol
	if v == nil {
		return
	}
	return *v, true
}

// OldProtocol returns the old "protocol" field's value of the VerifyJob entity.
// If the VerifyJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerifyJobMutation) OldProtocol(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProtocol is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProtocol requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProtocol: %w", err)
	}
	return oldValue.Protocol, nil
}

// AddProtocol adds i to the "protocol" field.
func (m *VerifyJobMutation) AddProtocol(i int) {
	if m.addprotocol != nil {
		*m.addprotocol += i
	} else {
		m.addprotocol = &i
	}
}

// AddedProtocol returns the value that was added to the "protocol" field in this mutation.
func (m *VerifyJobMutation) AddedProtocol() (r int, exists bool) {
	v := m.addprotocol
	if v == nil {
		return
	}
	return *v, true
}

// ClearProtocol clears the value of the "protocol" field.
func (m *VerifyJobMutation) ClearProtocol() {
	m.protocol = nil
	m.addprotocol = nil
	m.clearedFields[verifyjob.FieldProtocol] = struct{}{}
}

// ProtocolCleared returns if the "protocol" field was cleared in this mutation.
func (m *VerifyJobMutation) ProtocolCleared() bool {
	_, ok := m.clearedFields[verifyjob.FieldProtocol]
	return ok
}

// ResetProtocol resets all changes to the "protocol" field.
func (m *VerifyJobMutation) ResetProtocol() {
	m.protocol = nil
	m.addprotocol = nil
	delete(m.clearedFields, verifyjob.FieldProtocol)
}

// SetStatus sets the "status" field.
func (m *VerifyJobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *VerifyJobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the VerifyJob entity.
// If the VerifyJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerifyJobMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *VerifyJobMutation) ResetStatus() {
	m.status = nil
}

// SetStartedAt sets the "started_at" field.
func (m *VerifyJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *VerifyJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the VerifyJob entity.
// If the VerifyJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerifyJobMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *VerifyJobMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *VerifyJobMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *VerifyJobMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the VerifyJob entity.
// If the VerifyJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerifyJobMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *VerifyJobMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[verifyjob.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *VerifyJobMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[verifyjob.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *VerifyJobMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, verifyjob.FieldFinishedAt)
}

// SetErrorMessage sets the "error_message" field.
func (m *VerifyJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *VerifyJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the VerifyJob entity.
// If the VerifyJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerifyJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *VerifyJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[verifyjob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *VerifyJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[verifyjob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *VerifyJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, verifyjob.FieldErrorMessage)
}

// SetMemorialPages sets the "memorial_pages" field.
func (m *VerifyJobMutation) SetMemorialPages(i int) {
	m.memorial_pages = &i
	m.addmemorial_pages = nil
}

// MemorialPages returns the value of the "memorial_pages" field in the mutation.
func (m *VerifyJobMutation) MemorialPages() (r int, exists bool) {
	v := m.memorial_pages
	if v == nil {
		return
	}
	return *v, true
}

// OldMemorialPages returns the old "memorial_pages" field's value of the VerifyJob entity.
// If the VerifyJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerifyJobMutation) OldMemorialPages(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMemorialPages is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMemorialPages requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMemorialPages: %w", err)
	}
	return oldValue.MemorialPages, nil
}

// AddMemorialPages adds i to the "memorial_pages" field.
func (m *VerifyJobMutation) AddMemorialPages(i int) {
	if m.addmemorial_pages != nil {
		*m.addmemorial_pages += i
	} else {
		m.addmemorial_pages = &i
	}
}

// AddedMemorialPages returns the value that was added to the "memorial_pages" field in this mutation.
func (m *VerifyJobMutation) AddedMemorialPages() (r int, exists bool) {
	v := m.addmemorial_pages
	if v == nil {
		return
	}
	return *v, true
}

// ResetMemorialPages resets all changes to the "memorial_pages" field.
func (m *VerifyJobMutation) ResetMemorialPages() {
	m.memorial_pages = nil
	m.addmemorial_pages = nil
}

// SetProjectPages sets the "project_pages" field.
func (m *VerifyJobMutation) SetProjectPages(i int) {
	m.project_pages = &i
	m.addproject_pages = nil
}

// ProjectPages returns the value of the "project_pages" field in the mutation.
func (m *VerifyJobMutation) ProjectPages() (r int, exists bool) {
	v := m.project_pages
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectPages returns the old "project_pages" field's value of the VerifyJob entity.
// If the VerifyJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerifyJobMutation) OldProjectPages(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectPages is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectPages requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectPages: %w", err)
	}
	return oldValue.ProjectPages, nil
}

// AddProjectPages adds i to the "project_pages" field.
func (m *VerifyJobMutation) AddProjectPages(i int) {
	if m.addproject_pages != nil {
		*m.addproject_pages += i
	} else {
		m.addproject_pages = &i
	}
}

// AddedProjectPages returns the value that was added to the "project_pages" field in this mutation.
func (m *VerifyJobMutation) AddedProjectPages() (r int, exists bool) {
	v := m.addproject_pages
	if v == nil {
		return
	}
	return *v, true
}

// ResetProjectPages resets all changes to the "project_pages" field.
func (m *VerifyJobMutation) ResetProjectPages() {
	m.project_pages = nil
	m.addproject_pages = nil
}

// SetMemorialRaw sets the "memorial_raw" field.
func (m *VerifyJobMutation) SetMemorialRaw(s string) {
	m.memorial_raw = &s
}

// MemorialRaw returns the value of the "memorial_raw" field in the mutation.
func (m *VerifyJobMutation) MemorialRaw() (r string, exists bool) {
	v := m.memorial_raw
	if v == nil {
		return
	}
	return *v, true
}

// OldMemorialRaw returns the old "memorial_raw" field's value of the VerifyJob entity.
// If the VerifyJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerifyJobMutation) OldMemorialRaw(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMemorialRaw is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMemorialRaw requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMemorialRaw: %w", err)
	}
	return oldValue.MemorialRaw, nil
}

// ClearMemorialRaw clears the value of the "memorial_raw" field.
func (m *VerifyJobMutation) ClearMemorialRaw() {
	m.memorial_raw = nil
	m.clearedFields[verifyjob.FieldMemorialRaw] = struct{}{}
}

// MemorialRawCleared returns if the "memorial_raw" field was cleared in this mutation.
func (m *VerifyJobMutation) MemorialRawCleared() bool {
	_, ok := m.clearedFields[verifyjob.FieldMemorialRaw]
	return ok
}

// ResetMemorialRaw resets all changes to the "memorial_raw" field.
func (m *VerifyJobMutation) ResetMemorialRaw() {
	m.memorial_raw = nil
	delete(m.clearedFields, verifyjob.FieldMemorialRaw)
}

// SetProjectRaw sets the "project_raw" field.
func (m *VerifyJobMutation) SetProjectRaw(s string) {
	m.project_raw = &s
}

// ProjectRaw returns the value of the "project_raw" field in the mutation.
func (m *VerifyJobMutation) ProjectRaw() (r string, exists bool) {
	v := m.project_raw
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectRaw returns the old "project_raw" field's value of the VerifyJob entity.
// If the VerifyJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerifyJobMutation) OldProjectRaw(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectRaw is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectRaw requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectRaw: %w", err)
	}
	return oldValue.ProjectRaw, nil
}

// ClearProjectRaw clears the value of the "project_raw" field.
func (m *VerifyJobMutation) ClearProjectRaw() {
	m.project_raw = nil
	m.clearedFields[verifyjob.FieldProjectRaw] = struct{}{}
}

// ProjectRawCleared returns if the "project_raw" field was cleared in this mutation.
func (m *VerifyJobMutation) ProjectRawCleared() bool {
	_, ok := m.clearedFields[verifyjob.FieldProjectRaw]
	return ok
}

// ResetProjectRaw resets all changes to the "project_raw" field.
func (m *VerifyJobMutation) ResetProjectRaw() {
	m.project_raw = nil
	delete(m.clearedFields, verifyjob.FieldProjectRaw)
}

// SetMemorialJSON sets the "memorial_json" field.
func (m *VerifyJobMutation) SetMemorialJSON(jm json.RawMessage) {
	m.memorial_json = &jm
	m.appendmemorial_json = nil
}

// MemorialJSON returns the value of the "memorial_json" field in the mutation.
func (m *VerifyJobMutation) MemorialJSON() (r json.RawMessage, exists bool) {
	v := m.memorial_json
	if v == nil {
		return
	}
	return *v, true
}

// OldMemorialJSON returns the old "memorial_json" field's value of the VerifyJob entity.
// If the VerifyJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerifyJobMutation) OldMemorialJSON(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMemorialJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMemorialJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMemorialJSON: %w", err)
	}
	return oldValue.MemorialJSON, nil
}

// AppendMemorialJSON adds jm to the "memorial_json" field.
func (m *VerifyJobMutation) AppendMemorialJSON(jm json.RawMessage) {
	m.appendmemorial_json = append(m.appendmemorial_json, jm...)
}

// AppendedMemorialJSON returns the list of values that were appended to the "memorial_json" field in this mutation.
func (m *VerifyJobMutation) AppendedMemorialJSON() (json.RawMessage, bool) {
	if len(m.appendmemorial_json) == 0 {
		return nil, false
	}
	return m.appendmemorial_json, true
}

// ClearMemorialJSON clears the value of the "memorial_json" field.
func (m *VerifyJobMutation) ClearMemorialJSON() {
	m.memorial_json = nil
	m.appendmemorial_json = nil
	m.clearedFields[verifyjob.FieldMemorialJSON] = struct{}{}
}

// MemorialJSONCleared returns if the "memorial_json" field was cleared in this mutation.
func (m *VerifyJobMutation) MemorialJSONCleared() bool {
	_, ok := m.clearedFields[verifyjob.FieldMemorialJSON]
	return ok
}

// ResetMemorialJSON resets all changes to the "memorial_json" field.
func (m *VerifyJobMutation) ResetMemorialJSON() {
	m.memorial_json = nil
	m.appendmemorial_json = nil
	delete(m.clearedFields, verifyjob.FieldMemorialJSON)
}

// SetProjectJSON sets the "project_json" field.
func (m *VerifyJobMutation) SetProjectJSON(jm json.RawMessage) {
	m.project_json = &jm
	m.appendproject_json = nil
}

// ProjectJSON returns the value of the "project_json" field in the mutation.
func (m *VerifyJobMutation) ProjectJSON() (r json.RawMessage, exists bool) {
	v := m.project_json
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectJSON returns the old "project_json" field's value of the VerifyJob entity.
// If the VerifyJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerifyJobMutation) OldProjectJSON(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectJSON: %w", err)
	}
	return oldValue.ProjectJSON, nil
}

// AppendProjectJSON adds jm to the "project_json" field.
func (m *VerifyJobMutation) AppendProjectJSON(jm json.RawMessage) {
	m.appendproject_json = append(m.appendproject_json, jm...)
}

// AppendedProjectJSON returns the list of values that were appended to the "project_json" field in this mutation.
func (m *VerifyJobMutation) AppendedProjectJSON() (json.RawMessage, bool) {
	if len(m.appendproject_json) == 0 {
		return nil, false
	}
	return m.appendproject_json, true
}

// ClearProjectJSON clears the value of the "project_json" field.
func (m *VerifyJobMutation) ClearProjectJSON() {
	m.project_json = nil
	m.appendproject_json = nil
	m.clearedFields[verifyjob.FieldProjectJSON] = struct{}{}
}

// ProjectJSONCleared returns if the "project_json" field was cleared in this mutation.
func (m *VerifyJobMutation) ProjectJSONCleared() bool {
	_, ok := m.clearedFields[verifyjob.FieldProjectJSON]
	return ok
}

// ResetProjectJSON resets all changes to the "project_json" field.
func (m *VerifyJobMutation) ResetProjectJSON() {
	m.project_json = nil
	m.appendproject_json = nil
	delete(m.clearedFields, verifyjob.FieldProjectJSON)
}

// SetComparisonJSON sets the "comparison_json" field.
func (m *VerifyJobMutation) SetComparisonJSON(jm json.RawMessage) {
	m.comparison_json = &jm
	m.appendcomparison_json = nil
}

// ComparisonJSON returns the value of the "comparison_json" field in the mutation.
func (m *VerifyJobMutation) ComparisonJSON() (r json.RawMessage, exists bool) {
	v := m.comparison_json
	if v == nil {
		return
	}
	return *v, true
}

// OldComparisonJSON returns the old "comparison_json" field's value of the VerifyJob entity.
// If the VerifyJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerifyJobMutation) OldComparisonJSON(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComparisonJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComparisonJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComparisonJSON: %w", err)
	}
	return oldValue.ComparisonJSON, nil
}

// AppendComparisonJSON adds jm to the "comparison_json" field.
func (m *VerifyJobMutation) AppendComparisonJSON(jm json.RawMessage) {
	m.appendcomparison_json = append(m.appendcomparison_json, jm...)
}

// AppendedComparisonJSON returns the list of values that were appended to the "comparison_json" field in this mutation.
func (m *VerifyJobMutation) AppendedComparisonJSON() (json.RawMessage, bool) {
	if len(m.appendcomparison_json) == 0 {
		return nil, false
	}
	return m.appendcomparison_json, true
}

// ClearComparisonJSON clears the value of the "comparison_json" field.
func (m *VerifyJobMutation) ClearComparisonJSON() {
	m.comparison_json = nil
	m.appendcomparison_json = nil
	m.clearedFields[verifyjob.FieldComparisonJSON] = struct{}{}
}

// ComparisonJSONCleared returns if the "comparison_json" field was cleared in this mutation.
func (m *VerifyJobMutation) ComparisonJSONCleared() bool {
	_, ok := m.clearedFields[verifyjob.FieldComparisonJSON]
	return ok
}

// ResetComparisonJSON resets all changes to the "comparison_json" field.
func (m *VerifyJobMutation) ResetComparisonJSON() {
	m.comparison_json = nil
	m.appendcomparison_json = nil
	delete(m.clearedFields, verifyjob.FieldComparisonJSON)
}

// SetDivergences sets the "divergences" field.
func (m *VerifyJobMutation) SetDivergences(i int) {
	m.divergences = &i
	m.adddivergences = nil
}

// Divergences returns the value of the "divergences" field in the mutation.
func (m *VerifyJobMutation) Divergences() (r int, exists bool) {
	v := m.divergences
	if v == nil {
		return
	}
	return *v, true
}

// OldDivergences returns the old "divergences" field's value of the VerifyJob entity.
// If the VerifyJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerifyJobMutation) OldDivergences(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDivergences is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDivergences requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDivergences: %w", err)
	}
	return oldValue.Divergences, nil
}

// AddDivergences adds i to the "divergences" field.
func (m *VerifyJobMutation) AddDivergences(i int) {
	if m.adddivergences != nil {
		*m.adddivergences += i
	} else {
		m.adddivergences = &i
	}
}

// AddedDivergences returns the value that was added to the "divergences" field in this mutation.
func (m *VerifyJobMutation) AddedDivergences() (r int, exists bool) {
	v := m.adddivergences
	if v == nil {
		return
	}
	return *v, true
}

// ResetDivergences resets all changes to the "divergences" field.
func (m *VerifyJobMutation) ResetDivergences() {
	m.divergences = nil
	m.adddivergences = nil
}

// SetDocumentsMatch sets the "documents_match" field.
func (m *VerifyJobMutation) SetDocumentsMatch(b bool) {
	m.documents_match = &b
}

// DocumentsMatch returns the value of the "documents_match" field in the mutation.
func (m *VerifyJobMutation) DocumentsMatch() (r bool, exists bool) {
	v := m.documents_match
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentsMatch returns the old "documents_match" field's value of the VerifyJob entity.
// If the VerifyJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerifyJobMutation) OldDocumentsMatch(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentsMatch is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentsMatch requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentsMatch: %w", err)
	}
	return oldValue.DocumentsMatch, nil
}

// ResetDocumentsMatch resets all changes to the "documents_match" field.
func (m *VerifyJobMutation) ResetDocumentsMatch() {
	m.documents_match = nil
}

// SetModelName sets the "model_name" field.
func (m *VerifyJobMutation) SetModelName(s string) {
	m.model_name = &s
}

// ModelName returns the value of the "model_name" field in the mutation.
func (m *VerifyJobMutation) ModelName() (r string, exists bool) {
	v := m.model_name
	if v == nil {
		return
	}
	return *v, true
}

// OldModelName returns the old "model_name" field's value of the VerifyJob entity.
// If the VerifyJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerifyJobMutation) OldModelName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelName: %w", err)
	}
	return oldValue.ModelName, nil
}

// ClearModelName clears the value of the "model_name" field.
func (m *VerifyJobMutation) ClearModelName() {
	m.model_name = nil
	m.clearedFields[verifyjob.FieldModelName] = struct{}{}
}

// ModelNameCleared returns if the "model_name" field was cleared in this mutation.
func (m *VerifyJobMutation) ModelNameCleared() bool {
	_, ok := m.clearedFields[verifyjob.FieldModelName]
	return ok
}

// ResetModelName resets all changes to the "model_name" field.
func (m *VerifyJobMutation) ResetModelName() {
	m.model_name = nil
	delete(m.clearedFields, verifyjob.FieldModelName)
}

// SetModelParams sets the "model_params" field.
func (m *VerifyJobMutation) SetModelParams(jm json.RawMessage) {
	m.model_params = &jm
	m.appendmodel_params = nil
}

// ModelParams returns the value of the "model_params" field in the mutation.
func (m *VerifyJobMutation) ModelParams() (r json.RawMessage, exists bool) {
	v := m.model_params
	if v == nil {
		return
	}
	return *v, true
}

// OldModelParams returns the old "model_params" field's value of the VerifyJob entity.
// If the VerifyJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerifyJobMutation) OldModelParams(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelParams is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelParams requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelParams: %w", err)
	}
	return oldValue.ModelParams, nil
}

// AppendModelParams adds jm to the "model_params" field.
func (m *VerifyJobMutation) AppendModelParams(jm json.RawMessage) {
	m.appendmodel_params = append(m.appendmodel_params, jm...)
}

// AppendedModelParams returns the list of values that were appended to the "model_params" field in this mutation.
func (m *VerifyJobMutation) AppendedModelParams() (json.RawMessage, bool) {
	if len(m.appendmodel_params) == 0 {
		return nil, false
	}
	return m.appendmodel_params, true
}

// ClearModelParams clears the value of the "model_params" field.
func (m *VerifyJobMutation) ClearModelParams() {
	m.model_params = nil
	m.appendmodel_params = nil
	m.clearedFields[verifyjob.FieldModelParams] = struct{}{}
}

// ModelParamsCleared returns if the "model_params" field was cleared in this mutation.
func (m *VerifyJobMutation) ModelParamsCleared() bool {
	_, ok := m.clearedFields[verifyjob.FieldModelParams]
	return ok
}

// ResetModelParams resets all changes to the "model_params" field.
func (m *VerifyJobMutation) ResetModelParams() {
	m.model_params = nil
	m.appendmodel_params = nil
	delete(m.clearedFields, verifyjob.FieldModelParams)
}

// ClearFile clears the "file" edge to the ScanFile entity.
func (m *VerifyJobMutation) ClearFile() {
	m.clearedfile = true
	m.clearedFields[verifyjob.FieldFileID] = struct{}{}
}

// FileCleared reports if the "file" edge to the ScanFile entity was cleared.
func (m *VerifyJobMutation) FileCleared() bool {
	return m.clearedfile
}

// FileIDs returns the "file" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FileID instead. It exists only for internal usage by the builders.
func (m *VerifyJobMutation) FileIDs() (ids []uuid.UUID) {
	if id := m.file; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFile resets all changes to the "file" edge.
func (m *VerifyJobMutation) ResetFile() {
	m.file = nil
	m.clearedfile = false
}

// Where appends a list predicates to the VerifyJobMutation builder.
func (m *VerifyJobMutation) Where(ps ...predicate.VerifyJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VerifyJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VerifyJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.VerifyJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VerifyJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VerifyJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (VerifyJob).
func (m *VerifyJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VerifyJobMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.file != nil {
		fields = append(fields, verifyjob.FieldFileID)
	}
	if m.protocol != nil {
		fields = append(fields, verifyjob.FieldProtocol)
	}
	if m.status != nil {
		fields = append(fields, verifyjob.FieldStatus)
	}
	if m.started_at != nil {
		fields = append(fields, verifyjob.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, verifyjob.FieldFinishedAt)
	}
	if m.error_message != nil {
		fields = append(fields, verifyjob.FieldErrorMessage)
	}
	if m.memorial_pages != nil {
		fields = append(fields, verifyjob.FieldMemorialPages)
	}
	if m.project_pages != nil {
		fields = append(fields, verifyjob.FieldProjectPages)
	}
	if m.memorial_raw != nil {
		fields = append(fields, verifyjob.FieldMemorialRaw)
	}
	if m.project_raw != nil {
		fields = append(fields, verifyjob.FieldProjectRaw)
	}
	if m.memorial_json != nil {
		fields = append(fields, verifyjob.FieldMemorialJSON)
	}
	if m.project_json != nil {
		fields = append(fields, verifyjob.FieldProjectJSON)
	}
	if m.comparison_json != nil {
		fields = append(fields, verifyjob.FieldComparisonJSON)
	}
	if m.divergences != nil {
		fields = append(fields, verifyjob.FieldDivergences)
	}
	if m.documents_match != nil {
		fields = append(fields, verifyjob.FieldDocumentsMatch)
	}
	if m.model_name != nil {
		fields = append(fields, verifyjob.FieldModelName)
	}
	if m.model_params != nil {
		fields = append(fields, verifyjob.FieldModelParams)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VerifyJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case verifyjob.FieldFileID:
		return m.FileID()
	case verifyjob.FieldProtocol:
		return m.Protocol()
	case verifyjob.FieldStatus:
		return m.Status()
	case verifyjob.FieldStartedAt:
		return m.StartedAt()
	case verifyjob.FieldFinishedAt:
		return m.FinishedAt()
	case verifyjob.FieldErrorMessage:
		return m.ErrorMessage()
	case verifyjob.FieldMemorialPages:
		return m.MemorialPages()
	case verifyjob.FieldProjectPages:
		return m.ProjectPages()
	case verifyjob.FieldMemorialRaw:
		return m.MemorialRaw()
	case verifyjob.FieldProjectRaw:
		return m.ProjectRaw()
	case verifyjob.FieldMemorialJSON:
		return m.MemorialJSON()
	case verifyjob.FieldProjectJSON:
		return m.ProjectJSON()
	case verifyjob.FieldComparisonJSON:
		return m.ComparisonJSON()
	case verifyjob.FieldDivergences:
		return m.Divergences()
	case verifyjob.FieldDocumentsMatch:
		return m.DocumentsMatch()
	case verifyjob.FieldModelName:
		return m.ModelName()
	case verifyjob.FieldModelParams:
		return m.ModelParams()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VerifyJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case verifyjob.FieldFileID:
		return m.OldFileID(ctx)
	case verifyjob.FieldProtocol:
		return m.OldProtocol(ctx)
	case verifyjob.FieldStatus:
		return m.OldStatus(ctx)
	case verifyjob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case verifyjob.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case verifyjob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case verifyjob.FieldMemorialPages:
		return m.OldMemorialPages(ctx)
	case verifyjob.FieldProjectPages:
		return m.OldProjectPages(ctx)
	case verifyjob.FieldMemorialRaw:
		return m.OldMemorialRaw(ctx)
	case verifyjob.FieldProjectRaw:
		return m.OldProjectRaw(ctx)
	case verifyjob.FieldMemorialJSON:
		return m.OldMemorialJSON(ctx)
	case verifyjob.FieldProjectJSON:
		return m.OldProjectJSON(ctx)
	case verifyjob.FieldComparisonJSON:
		return m.OldComparisonJSON(ctx)
	case verifyjob.FieldDivergences:
		return m.OldDivergences(ctx)
	case verifyjob.FieldDocumentsMatch:
		return m.OldDocumentsMatch(ctx)
	case verifyjob.FieldModelName:
		return m.OldModelName(ctx)
	case verifyjob.FieldModelParams:
		return m.OldModelParams(ctx)
	}
	return nil, fmt.Errorf("unknown VerifyJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VerifyJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case verifyjob.FieldFileID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileID(v)
		return nil
	case verifyjob.FieldProtocol:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProtocol(v)
		return nil
	case verifyjob.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case verifyjob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case verifyjob.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case verifyjob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case verifyjob.FieldMemorialPages:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMemorialPages(v)
		return nil
	case verifyjob.FieldProjectPages:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectPages(v)
		return nil
	case verifyjob.FieldMemorialRaw:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMemorialRaw(v)
		return nil
	case verifyjob.FieldProjectRaw:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectRaw(v)
		return nil
	case verifyjob.FieldMemorialJSON:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMemorialJSON(v)
		return nil
	case verifyjob.FieldProjectJSON:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectJSON(v)
		return nil
	case verifyjob.FieldComparisonJSON:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComparisonJSON(v)
		return nil
	case verifyjob.FieldDivergences:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDivergences(v)
		return nil
	case verifyjob.FieldDocumentsMatch:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentsMatch(v)
		return nil
	case verifyjob.FieldModelName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelName(v)
		return nil
	case verifyjob.FieldModelParams:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelParams(v)
		return nil
	}
	return fmt.Errorf("unknown VerifyJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VerifyJobMutation) AddedFields() []string {
	var fields []string
	if m.addprotocol != nil {
		fields = append(fields, verifyjob.FieldProtocol)
	}
	if m.addmemorial_pages != nil {
		fields = append(fields, verifyjob.FieldMemorialPages)
	}
	if m.addproject_pages != nil {
		fields = append(fields, verifyjob.FieldProjectPages)
	}
	if m.adddivergences != nil {
		fields = append(fields, verifyjob.FieldDivergences)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VerifyJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case verifyjob.FieldProtocol:
		return m.AddedProtocol()
	case verifyjob.FieldMemorialPages:
		return m.AddedMemorialPages()
	case verifyjob.FieldProjectPages:
		return m.AddedProjectPages()
	case verifyjob.FieldDivergences:
		return m.AddedDivergences()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VerifyJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case verifyjob.FieldProtocol:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProtocol(v)
		return nil
	case verifyjob.FieldMemorialPages:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMemorialPages(v)
		return nil
	case verifyjob.FieldProjectPages:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProjectPages(v)
		return nil
	case verifyjob.FieldDivergences:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDivergences(v)
		return nil
	}
	return fmt.Errorf("unknown VerifyJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VerifyJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(verifyjob.FieldProtocol) {
		fields = append(fields, verifyjob.FieldProtocol)
	}
	if m.FieldCleared(verifyjob.FieldFinishedAt) {
		fields = append(fields, verifyjob.FieldFinishedAt)
	}
	if m.FieldCleared(verifyjob.FieldErrorMessage) {
		fields = append(fields, verifyjob.FieldErrorMessage)
	}
	if m.FieldCleared(verifyjob.FieldMemorialRaw) {
		fields = append(fields, verifyjob.FieldMemorialRaw)
	}
	if m.FieldCleared(verifyjob.FieldProjectRaw) {
		fields = append(fields, verifyjob.FieldProjectRaw)
	}
	if m.FieldCleared(verifyjob.FieldMemorialJSON) {
		fields = append(fields, verifyjob.FieldMemorialJSON)
	}
	if m.FieldCleared(verifyjob.FieldProjectJSON) {
		fields = append(fields, verifyjob.FieldProjectJSON)
	}
	if m.FieldCleared(verifyjob.FieldComparisonJSON) {
		fields = append(fields, verifyjob.FieldComparisonJSON)
	}
	if m.FieldCleared(verifyjob.FieldModelName) {
		fields = append(fields, verifyjob.FieldModelName)
	}
	if m.FieldCleared(verifyjob.FieldModelParams) {
		fields = append(fields, verifyjob.FieldModelParams)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VerifyJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VerifyJobMutation) ClearField(name string) error {
	switch name {
	case verifyjob.FieldProtocol:
		m.ClearProtocol()
		return nil
	case verifyjob.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	case verifyjob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case verifyjob.FieldMemorialRaw:
		m.ClearMemorialRaw()
		return nil
	case verifyjob.FieldProjectRaw:
		m.ClearProjectRaw()
		return nil
	case verifyjob.FieldMemorialJSON:
		m.ClearMemorialJSON()
		return nil
	case verifyjob.FieldProjectJSON:
		m.ClearProjectJSON()
		return nil
	case verifyjob.FieldComparisonJSON:
		m.ClearComparisonJSON()
		return nil
	case verifyjob.FieldModelName:
		m.ClearModelName()
		return nil
	case verifyjob.FieldModelParams:
		m.ClearModelParams()
		return nil
	}
	return fmt.Errorf("unknown VerifyJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VerifyJobMutation) ResetField(name string) error {
	switch name {
	case verifyjob.FieldFileID:
		m.ResetFileID()
		return nil
	case verifyjob.FieldProtocol:
		m.ResetProtocol()
		return nil
	case verifyjob.FieldStatus:
		m.ResetStatus()
		return nil
	case verifyjob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case verifyjob.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case verifyjob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case verifyjob.FieldMemorialPages:
		m.ResetMemorialPages()
		return nil
	case verifyjob.FieldProjectPages:
		m.ResetProjectPages()
		return nil
	case verifyjob.FieldMemorialRaw:
		m.ResetMemorialRaw()
		return nil
	case verifyjob.FieldProjectRaw:
		m.ResetProjectRaw()
		return nil
	case verifyjob.FieldMemorialJSON:
		m.ResetMemorialJSON()
		return nil
	case verifyjob.FieldProjectJSON:
		m.ResetProjectJSON()
		return nil
	case verifyjob.FieldComparisonJSON:
		m.ResetComparisonJSON()
		return nil
	case verifyjob.FieldDivergences:
		m.ResetDivergences()
		return nil
	case verifyjob.FieldDocumentsMatch:
		m.ResetDocumentsMatch()
		return nil
	case verifyjob.FieldModelName:
		m.ResetModelName()
		return nil
	case verifyjob.FieldModelParams:
		m.ResetModelParams()
		return nil
	}
	return fmt.Errorf("unknown VerifyJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VerifyJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.file != nil {
		edges = append(edges, verifyjob.EdgeFile)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VerifyJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case verifyjob.EdgeFile:
		if id := m.file; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VerifyJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VerifyJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VerifyJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedfile {
		edges = append(edges, verifyjob.EdgeFile)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VerifyJobMutation) EdgeCleared(name string) bool {
	switch name {
	case verifyjob.EdgeFile:
		return m.clearedfile
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VerifyJobMutation) ClearEdge(name string) error {
	switch name {
	case verifyjob.EdgeFile:
		m.ClearFile()
		return nil
	}
	return fmt.Errorf("unknown VerifyJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VerifyJobMutation) ResetEdge(name string) error {
	switch name {
	case verifyjob.EdgeFile:
		m.ResetFile()
		return nil
	}
	return fmt.Errorf("unknown VerifyJob edge %s", name)
}
