// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/lgasparetto/geoverify/gen/ent/predicate"
	"github.com/lgasparetto/geoverify/gen/ent/scanfile"
	"github.com/lgasparetto/geoverify/gen/ent/verifyjob"
)

// VerifyJobUpdate is the builder for updating VerifyJob entities.
type VerifyJobUpdate struct {
	config
	hooks    []Hook
	mutation *VerifyJobMutation
}

// Where appends a list predicates to the VerifyJobUpdate builder.
func (_u *VerifyJobUpdate) Where(ps ...predicate.VerifyJob) *VerifyJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFileID sets the "file_id" field.
func (_u *VerifyJobUpdate) SetFileID(v uuid.UUID) *VerifyJobUpdate {
	_u.mutation.SetFileID(v)
	return _u
}

// SetNillableFileID sets the "file_id" field if the given value is not nil.
func (_u *VerifyJobUpdate) SetNillableFileID(v *uuid.UUID) *VerifyJobUpdate {
	if v != nil {
		_u.SetFileID(*v)
	}
	return _u
}

// SetProtocol sets the "protocol" field.
func (_u *VerifyJobUpdate) SetProtocol(v int) *VerifyJobUpdate {
	_u.mutation.ResetProtocol()
	_u.mutation.SetProtocol(v)
	return _u
}

// SetNillableProtocol sets the "protocol" field if the given value is not nil.
func (_u *VerifyJobUpdate) SetNillableProtocol(v *int) *VerifyJobUpdate {
	if v != nil {
		_u.SetProtocol(*v)
	}
	return _u
}

// AddProtocol adds value to the "protocol" field.
func (_u *VerifyJobUpdate) AddProtocol(v int) *VerifyJobUpdate {
	_u.mutation.AddProtocol(v)
	return _u
}

// ClearProtocol clears the value of the "protocol" field.
func (_u *VerifyJobUpdate) ClearProtocol() *VerifyJobUpdate {
	_u.mutation.ClearProtocol()
	return _u
}

// SetStatus sets the "status" field.
func (_u *VerifyJobUpdate) SetStatus(v string) *VerifyJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *VerifyJobUpdate) SetNillableStatus(v *string) *VerifyJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *VerifyJobUpdate) SetStartedAt(v time.Time) *VerifyJobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *VerifyJobUpdate) SetNillableStartedAt(v *time.Time) *VerifyJobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *VerifyJobUpdate) SetFinishedAt(v time.Time) *VerifyJobUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *VerifyJobUpdate) SetNillableFinishedAt(v *time.Time) *VerifyJobUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *VerifyJobUpdate) ClearFinishedAt() *VerifyJobUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *VerifyJobUpdate) SetErrorMessage(v string) *VerifyJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *VerifyJobUpdate) SetNillableErrorMessage(v *string) *VerifyJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *VerifyJobUpdate) ClearErrorMessage() *VerifyJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetMemorialPages sets the "memorial_pages" field.
func (_u *VerifyJobUpdate) SetMemorialPages(v int) *VerifyJobUpdate {
	_u.mutation.ResetMemorialPages()
	_u.mutation.SetMemorialPages(v)
	return _u
}

// SetNillableMemorialPages sets the "memorial_pages" field if the given value is not nil.
func (_u *VerifyJobUpdate) SetNillableMemorialPages(v *int) *VerifyJobUpdate {
	if v != nil {
		_u.SetMemorialPages(*v)
	}
	return _u
}

// AddMemorialPages adds value to the "memorial_pages" field.
func (_u *VerifyJobUpdate) AddMemorialPages(v int) *VerifyJobUpdate {
	_u.mutation.AddMemorialPages(v)
	return _u
}

// SetProjectPages sets the "project_pages" field.
func (_u *VerifyJobUpdate) SetProjectPages(v int) *VerifyJobUpdate {
	_u.mutation.ResetProjectPages()
	_u.mutation.SetProjectPages(v)
	return _u
}

// SetNillableProjectPages sets the "project_pages" field if the given value is not nil.
func (_u *VerifyJobUpdate) SetNillableProjectPages(v *int) *VerifyJobUpdate {
	if v != nil {
		_u.SetProjectPages(*v)
	}
	return _u
}

// AddProjectPages adds value to the "project_pages" field.
func (_u *VerifyJobUpdate) AddProjectPages(v int) *VerifyJobUpdate {
	_u.mutation.AddProjectPages(v)
	return _u
}

// SetMemorialRaw sets the "memorial_raw" field.
func (_u *VerifyJobUpdate) SetMemorialRaw(v string) *VerifyJobUpdate {
	_u.mutation.SetMemorialRaw(v)
	return _u
}

// SetNillableMemorialRaw sets the "memorial_raw" field if the given value is not nil.
func (_u *VerifyJobUpdate) SetNillableMemorialRaw(v *string) *VerifyJobUpdate {
	if v != nil {
		_u.SetMemorialRaw(*v)
	}
	return _u
}

// ClearMemorialRaw clears the value of the "memorial_raw" field.
func (_u *VerifyJobUpdate) ClearMemorialRaw() *VerifyJobUpdate {
	_u.mutation.ClearMemorialRaw()
	return _u
}

// SetProjectRaw sets the "project_raw" field.
func (_u *VerifyJobUpdate) SetProjectRaw(v string) *VerifyJobUpdate {
	_u.mutation.SetProjectRaw(v)
	return _u
}

// SetNillableProjectRaw sets the "project_raw" field if the given value is not nil.
func (_u *VerifyJobUpdate) SetNillableProjectRaw(v *string) *VerifyJobUpdate {
	if v != nil {
		_u.SetProjectRaw(*v)
	}
	return _u
}

// ClearProjectRaw clears the value of the "project_raw" field.
func (_u *VerifyJobUpdate) ClearProjectRaw() *VerifyJobUpdate {
	_u.mutation.ClearProjectRaw()
	return _u
}

// SetMemorialJSON sets the "memorial_json" field.
func (_u *VerifyJobUpdate) SetMemorialJSON(v json.RawMessage) *VerifyJobUpdate {
	_u.mutation.SetMemorialJSON(v)
	return _u
}

// AppendMemorialJSON appends value to the "memorial_json" field.
func (_u *VerifyJobUpdate) AppendMemorialJSON(v json.RawMessage) *VerifyJobUpdate {
	_u.mutation.AppendMemorialJSON(v)
	return _u
}

// ClearMemorialJSON clears the value of the "memorial_json" field.
func (_u *VerifyJobUpdate) ClearMemorialJSON() *VerifyJobUpdate {
	_u.mutation.ClearMemorialJSON()
	return _u
}

// SetProjectJSON sets the "project_json" field.
func (_u *VerifyJobUpdate) SetProjectJSON(v json.RawMessage) *VerifyJobUpdate {
	_u.mutation.SetProjectJSON(v)
	return _u
}

// AppendProjectJSON appends value to the "project_json" field.
func (_u *VerifyJobUpdate) AppendProjectJSON(v json.RawMessage) *VerifyJobUpdate {
	_u.mutation.AppendProjectJSON(v)
	return _u
}

// ClearProjectJSON clears the value of the "project_json" field.
func (_u *VerifyJobUpdate) ClearProjectJSON() *VerifyJobUpdate {
	_u.mutation.ClearProjectJSON()
	return _u
}

// SetComparisonJSON sets the "comparison_json" field.
func (_u *VerifyJobUpdate) SetComparisonJSON(v json.RawMessage) *VerifyJobUpdate {
	_u.mutation.SetComparisonJSON(v)
	return _u
}

// AppendComparisonJSON appends value to the "comparison_json" field.
func (_u *VerifyJobUpdate) AppendComparisonJSON(v json.RawMessage) *VerifyJobUpdate {
	_u.mutation.AppendComparisonJSON(v)
	return _u
}

// ClearComparisonJSON clears the value of the "comparison_json" field.
func (_u *VerifyJobUpdate) ClearComparisonJSON() *VerifyJobUpdate {
	_u.mutation.ClearComparisonJSON()
	return _u
}

// SetDivergences sets the "divergences" field.
func (_u *VerifyJobUpdate) SetDivergences(v int) *VerifyJobUpdate {
	_u.mutation.ResetDivergences()
	_u.mutation.SetDivergences(v)
	return _u
}

// SetNillableDivergences sets the "divergences" field if the given value is not nil.
func (_u *VerifyJobUpdate) SetNillableDivergences(v *int) *VerifyJobUpdate {
	if v != nil {
		_u.SetDivergences(*v)
	}
	return _u
}

// AddDivergences adds value to the "divergences" field.
func (_u *VerifyJobUpdate) AddDivergences(v int) *VerifyJobUpdate {
	_u.mutation.AddDivergences(v)
	return _u
}

// SetDocumentsMatch sets the "documents_match" field.
func (_u *VerifyJobUpdate) SetDocumentsMatch(v bool) *VerifyJobUpdate {
	_u.mutation.SetDocumentsMatch(v)
	return _u
}

// SetNillableDocumentsMatch sets the "documents_match" field if the given value is not nil.
func (_u *VerifyJobUpdate) SetNillableDocumentsMatch(v *bool) *VerifyJobUpdate {
	if v != nil {
		_u.SetDocumentsMatch(*v)
	}
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *VerifyJobUpdate) SetModelName(v string) *VerifyJobUpdate {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *VerifyJobUpdate) SetNillableModelName(v *string) *VerifyJobUpdate {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// ClearModelName clears the value of the "model_name" field.
func (_u *VerifyJobUpdate) ClearModelName() *VerifyJobUpdate {
	_u.mutation.ClearModelName()
	return _u
}

// SetModelParams sets the "model_params" field.
func (_u *VerifyJobUpdate) SetModelParams(v json.RawMessage) *VerifyJobUpdate {
	_u.mutation.SetModelParams(v)
	return _u
}

// AppendModelParams appends value to the "model_params" field.
func (_u *VerifyJobUpdate) AppendModelParams(v json.RawMessage) *VerifyJobUpdate {
	_u.mutation.AppendModelParams(v)
	return _u
}

// ClearModelParams clears the value of the "model_params" field.
func (_u *VerifyJobUpdate) ClearModelParams() *VerifyJobUpdate {
	_u.mutation.ClearModelParams()
	return _u
}

// SetFile sets the "file" edge to the ScanFile entity.
func (_u *VerifyJobUpdate) SetFile(v *ScanFile) *VerifyJobUpdate {
	return _u.SetFileID(v.ID)
}

// Mutation returns the VerifyJobMutation object of the builder.
func (_u *VerifyJobUpdate) Mutation() *VerifyJobMutation {
	return _u.mutation
}

// ClearFile clears the "file" edge to the ScanFile entity.
func (_u *VerifyJobUpdate) ClearFile() *VerifyJobUpdate {
	_u.mutation.ClearFile()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VerifyJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VerifyJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VerifyJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VerifyJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VerifyJobUpdate) check() error {
	if v, ok := _u.mutation.Protocol(); ok {
		if err := verifyjob.ProtocolValidator(v); err != nil {
			return &ValidationError{Name: "protocol", err: fmt.Errorf(`ent: validator failed for field "VerifyJob.protocol": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := verifyjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "VerifyJob.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MemorialPages(); ok {
		if err := verifyjob.MemorialPagesValidator(v); err != nil {
			return &ValidationError{Name: "memorial_pages", err: fmt.Errorf(`ent: validator failed for field "VerifyJob.memorial_pages": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProjectPages(); ok {
		if err := verifyjob.ProjectPagesValidator(v); err != nil {
			return &ValidationError{Name: "project_pages", err: fmt.Errorf(`ent: validator failed for field "VerifyJob.project_pages": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Divergences(); ok {
		if err := verifyjob.DivergencesValidator(v); err != nil {
			return &ValidationError{Name: "divergences", err: fmt.Errorf(`ent: validator failed for field "VerifyJob.divergences": %w`, err)}
		}
	}
	if _u.mutation.FileCleared() && len(_u.mutation.FileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "VerifyJob.file"`)
	}
	return nil
}

func (_u *VerifyJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(verifyjob.Table, verifyjob.Columns, sqlgraph.NewFieldSpec(verifyjob.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Protocol(); ok {
		_spec.SetField(verifyjob.FieldProtocol, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProtocol(); ok {
		_spec.AddField(verifyjob.FieldProtocol, field.TypeInt, value)
	}
	if _u.mutation.ProtocolCleared() {
		_spec.ClearField(verifyjob.FieldProtocol, field.TypeInt)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(verifyjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(verifyjob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(verifyjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(verifyjob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(verifyjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(verifyjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.MemorialPages(); ok {
		_spec.SetField(verifyjob.FieldMemorialPages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMemorialPages(); ok {
		_spec.AddField(verifyjob.FieldMemorialPages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProjectPages(); ok {
		_spec.SetField(verifyjob.FieldProjectPages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProjectPages(); ok {
		_spec.AddField(verifyjob.FieldProjectPages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MemorialRaw(); ok {
		_spec.SetField(verifyjob.FieldMemorialRaw, field.TypeString, value)
	}
	if _u.mutation.MemorialRawCleared() {
		_spec.ClearField(verifyjob.FieldMemorialRaw, field.TypeString)
	}
	if value, ok := _u.mutation.ProjectRaw(); ok {
		_spec.SetField(verifyjob.FieldProjectRaw, field.TypeString, value)
	}
	if _u.mutation.ProjectRawCleared() {
		_spec.ClearField(verifyjob.FieldProjectRaw, field.TypeString)
	}
	if value, ok := _u.mutation.MemorialJSON(); ok {
		_spec.SetField(verifyjob.FieldMemorialJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMemorialJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, verifyjob.FieldMemorialJSON, value)
		})
	}
	if _u.mutation.MemorialJSONCleared() {
		_spec.ClearField(verifyjob.FieldMemorialJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.ProjectJSON(); ok {
		_spec.SetField(verifyjob.FieldProjectJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedProjectJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, verifyjob.FieldProjectJSON, value)
		})
	}
	if _u.mutation.ProjectJSONCleared() {
		_spec.ClearField(verifyjob.FieldProjectJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.ComparisonJSON(); ok {
		_spec.SetField(verifyjob.FieldComparisonJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedComparisonJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, verifyjob.FieldComparisonJSON, value)
		})
	}
	if _u.mutation.ComparisonJSONCleared() {
		_spec.ClearField(verifyjob.FieldComparisonJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.Divergences(); ok {
		_spec.SetField(verifyjob.FieldDivergences, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDivergences(); ok {
		_spec.AddField(verifyjob.FieldDivergences, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DocumentsMatch(); ok {
		_spec.SetField(verifyjob.FieldDocumentsMatch, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(verifyjob.FieldModelName, field.TypeString, value)
	}
	if _u.mutation.ModelNameCleared() {
		_spec.ClearField(verifyjob.FieldModelName, field.TypeString)
	}
	if value, ok := _u.mutation.ModelParams(); ok {
		_spec.SetField(verifyjob.FieldModelParams, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedModelParams(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, verifyjob.FieldModelParams, value)
		})
	}
	if _u.mutation.ModelParamsCleared() {
		_spec.ClearField(verifyjob.FieldModelParams, field.TypeJSON)
	}
	if _u.mutation.FileCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FileIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{verifyjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VerifyJobUpdateOne is the builder for updating a single VerifyJob entity.
type VerifyJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VerifyJobMutation
}

// SetFileID sets the "file_id" field.
func (_u *VerifyJobUpdateOne) SetFileID(v uuid.UUID) *VerifyJobUpdateOne {
	_u.mutation.SetFileID(v)
	return _u
}

// SetNillableFileID sets the "file_id" field if the given value is not nil.
func (_u *VerifyJobUpdateOne) SetNillableFileID(v *uuid.UUID) *VerifyJobUpdateOne {
	if v != nil {
		_u.SetFileID(*v)
	}
	return _u
}

// SetProtocol sets the "protocol" field.
func (_u *VerifyJobUpdateOne) SetProtocol(v int) *VerifyJobUpdateOne {
	_u.mutation.ResetProtocol()
	_u.mutation.SetProtocol(v)
	return _u
}

// SetNillableProtocol sets the "protocol" field if the given value is not nil.
func (_u *VerifyJobUpdateOne) SetNillableProtocol(v *int) *VerifyJobUpdateOne {
	if v != nil {
		_u.SetProtocol(*v)
	}
	return _u
}

// AddProtocol adds value to the "protocol" field.
func (_u *VerifyJobUpdateOne) AddProtocol(v int) *VerifyJobUpdateOne {
	_u.mutation.AddProtocol(v)
	return _u
}

// ClearProtocol clears the value of the "protocol" field.
func (_u *VerifyJobUpdateOne) ClearProtocol() *VerifyJobUpdateOne {
	_u.mutation.ClearProtocol()
	return _u
}

// SetStatus sets the "status" field.
func (_u *VerifyJobUpdateOne) SetStatus(v string) *VerifyJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *VerifyJobUpdateOne) SetNillableStatus(v *string) *VerifyJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *VerifyJobUpdateOne) SetStartedAt(v time.Time) *VerifyJobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *VerifyJobUpdateOne) SetNillableStartedAt(v *time.Time) *VerifyJobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *VerifyJobUpdateOne) SetFinishedAt(v time.Time) *VerifyJobUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *VerifyJobUpdateOne) SetNillableFinishedAt(v *time.Time) *VerifyJobUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *VerifyJobUpdateOne) ClearFinishedAt() *VerifyJobUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *VerifyJobUpdateOne) SetErrorMessage(v string) *VerifyJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *VerifyJobUpdateOne) SetNillableErrorMessage(v *string) *VerifyJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *VerifyJobUpdateOne) ClearErrorMessage() *VerifyJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetMemorialPages sets the "memorial_pages" field.
func (_u *VerifyJobUpdateOne) SetMemorialPages(v int) *VerifyJobUpdateOne {
	_u.mutation.ResetMemorialPages()
	_u.mutation.SetMemorialPages(v)
	return _u
}

// SetNillableMemorialPages sets the "memorial_pages" field if the given value is not nil.
func (_u *VerifyJobUpdateOne) SetNillableMemorialPages(v *int) *VerifyJobUpdateOne {
	if v != nil {
		_u.SetMemorialPages(*v)
	}
	return _u
}

// AddMemorialPages adds value to the "memorial_pages" field.
func (_u *VerifyJobUpdateOne) AddMemorialPages(v int) *VerifyJobUpdateOne {
	_u.mutation.AddMemorialPages(v)
	return _u
}

// SetProjectPages sets the "project_pages" field.
func (_u *VerifyJobUpdateOne) SetProjectPages(v int) *VerifyJobUpdateOne {
	_u.mutation.ResetProjectPages()
	_u.mutation.SetProjectPages(v)
	return _u
}

// SetNillableProjectPages sets the "project_pages" field if the given value is not nil.
func (_u *VerifyJobUpdateOne) SetNillableProjectPages(v *int) *VerifyJobUpdateOne {
	if v != nil {
		_u.SetProjectPages(*v)
	}
	return _u
}

// AddProjectPages adds value to the "project_pages" field.
func (_u *VerifyJobUpdateOne) AddProjectPages(v int) *VerifyJobUpdateOne {
	_u.mutation.AddProjectPages(v)
	return _u
}

// SetMemorialRaw sets the "memorial_raw" field.
func (_u *VerifyJobUpdateOne) SetMemorialRaw(v string) *VerifyJobUpdateOne {
	_u.mutation.SetMemorialRaw(v)
	return _u
}

// SetNillableMemorialRaw sets the "memorial_raw" field if the given value is not nil.
func (_u *VerifyJobUpdateOne) SetNillableMemorialRaw(v *string) *VerifyJobUpdateOne {
	if v != nil {
		_u.SetMemorialRaw(*v)
	}
	return _u
}

// ClearMemorialRaw clears the value of the "memorial_raw" field.
func (_u *VerifyJobUpdateOne) ClearMemorialRaw() *VerifyJobUpdateOne {
	_u.mutation.ClearMemorialRaw()
	return _u
}

// SetProjectRaw sets the "project_raw" field.
func (_u *VerifyJobUpdateOne) SetProjectRaw(v string) *VerifyJobUpdateOne {
	_u.mutation.SetProjectRaw(v)
	return _u
}

// SetNillableProjectRaw sets the "project_raw" field if the given value is not nil.
func (_u *VerifyJobUpdateOne) SetNillableProjectRaw(v *string) *VerifyJobUpdateOne {
	if v != nil {
		_u.SetProjectRaw(*v)
	}
	return _u
}

// ClearProjectRaw clears the value of the "project_raw" field.
func (_u *VerifyJobUpdateOne) ClearProjectRaw() *VerifyJobUpdateOne {
	_u.mutation.ClearProjectRaw()
	return _u
}

// SetMemorialJSON sets the "memorial_json" field.
func (_u *VerifyJobUpdateOne) SetMemorialJSON(v json.RawMessage) *VerifyJobUpdateOne {
	_u.mutation.SetMemorialJSON(v)
	return _u
}

// AppendMemorialJSON appends value to the "memorial_json" field.
func (_u *VerifyJobUpdateOne) AppendMemorialJSON(v json.RawMessage) *VerifyJobUpdateOne {
	_u.mutation.AppendMemorialJSON(v)
	return _u
}

// ClearMemorialJSON clears the value of the "memorial_json" field.
func (_u *VerifyJobUpdateOne) ClearMemorialJSON() *VerifyJobUpdateOne {
	_u.mutation.ClearMemorialJSON()
	return _u
}

// SetProjectJSON sets the "project_json" field.
func (_u *VerifyJobUpdateOne) SetProjectJSON(v json.RawMessage) *VerifyJobUpdateOne {
	_u.mutation.SetProjectJSON(v)
	return _u
}

// AppendProjectJSON appends value to the "project_json" field.
func (_u *VerifyJobUpdateOne) AppendProjectJSON(v json.RawMessage) *VerifyJobUpdateOne {
	_u.mutation.AppendProjectJSON(v)
	return _u
}

// ClearProjectJSON clears the value of the "project_json" field.
func (_u *VerifyJobUpdateOne) ClearProjectJSON() *VerifyJobUpdateOne {
	_u.mutation.ClearProjectJSON()
	return _u
}

// SetComparisonJSON sets the "comparison_json" field.
func (_u *VerifyJobUpdateOne) SetComparisonJSON(v json.RawMessage) *VerifyJobUpdateOne {
	_u.mutation.SetComparisonJSON(v)
	return _u
}

// AppendComparisonJSON appends value to the "comparison_json" field.
func (_u *VerifyJobUpdateOne) AppendComparisonJSON(v json.RawMessage) *VerifyJobUpdateOne {
	_u.mutation.AppendComparisonJSON(v)
	return _u
}

// ClearComparisonJSON clears the value of the "comparison_json" field.
func (_u *VerifyJobUpdateOne) ClearComparisonJSON() *VerifyJobUpdateOne {
	_u.mutation.ClearComparisonJSON()
	return _u
}

// SetDivergences sets the "divergences" field.
func (_u *VerifyJobUpdateOne) SetDivergences(v int) *VerifyJobUpdateOne {
	_u.mutation.ResetDivergences()
	_u.mutation.SetDivergences(v)
	return _u
}

// SetNillableDivergences sets the "divergences" field if the given value is not nil.
func (_u *VerifyJobUpdateOne) SetNillableDivergences(v *int) *VerifyJobUpdateOne {
	if v != nil {
		_u.SetDivergences(*v)
	}
	return _u
}

// AddDivergences adds value to the "divergences" field.
func (_u *VerifyJobUpdateOne) AddDivergences(v int) *VerifyJobUpdateOne {
	_u.mutation.AddDivergences(v)
	return _u
}

// SetDocumentsMatch sets the "documents_match" field.
func (_u *VerifyJobUpdateOne) SetDocumentsMatch(v bool) *VerifyJobUpdateOne {
	_u.mutation.SetDocumentsMatch(v)
	return _u
}

// SetNillableDocumentsMatch sets the "documents_match" field if the given value is not nil.
func (_u *VerifyJobUpdateOne) SetNillableDocumentsMatch(v *bool) *VerifyJobUpdateOne {
	if v != nil {
		_u.SetDocumentsMatch(*v)
	}
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *VerifyJobUpdateOne) SetModelName(v string) *VerifyJobUpdateOne {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *VerifyJobUpdateOne) SetNillableModelName(v *string) *VerifyJobUpdateOne {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// ClearModelName clears the value of the "model_name" field.
func (_u *VerifyJobUpdateOne) ClearModelName() *VerifyJobUpdateOne {
	_u.mutation.ClearModelName()
	return _u
}

// SetModelParams sets the "model_params" field.
func (_u *VerifyJobUpdateOne) SetModelParams(v json.RawMessage) *VerifyJobUpdateOne {
	_u.mutation.SetModelParams(v)
	return _u
}

// AppendModelParams appends value to the "model_params" field.
func (_u *VerifyJobUpdateOne) AppendModelParams(v json.RawMessage) *VerifyJobUpdateOne {
	_u.mutation.AppendModelParams(v)
	return _u
}

// ClearModelParams clears the value of the "model_params" field.
func (_u *VerifyJobUpdateOne) ClearModelParams() *VerifyJobUpdateOne {
	_u.mutation.ClearModelParams()
	return _u
}

// SetFile sets the "file" edge to the ScanFile entity.
func (_u *VerifyJobUpdateOne) SetFile(v *ScanFile) *VerifyJobUpdateOne {
	return _u.SetFileID(v.ID)
}

// Mutation returns the VerifyJobMutation object of the builder.
func (_u *VerifyJobUpdateOne) Mutation() *VerifyJobMutation {
	return _u.mutation
}

// ClearFile clears the "file" edge to the ScanFile entity.
func (_u *VerifyJobUpdateOne) ClearFile() *VerifyJobUpdateOne {
	_u.mutation.ClearFile()
	return _u
}

// Where appends a list predicates to the VerifyJobUpdate builder.
func (_u *VerifyJobUpdateOne) Where(ps ...predicate.VerifyJob) *VerifyJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VerifyJobUpdateOne) Select(field string, fields ...string) *VerifyJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated VerifyJob entity.
func (_u *VerifyJobUpdateOne) Save(ctx context.Context) (*VerifyJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VerifyJobUpdateOne) SaveX(ctx context.Context) *VerifyJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VerifyJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VerifyJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VerifyJobUpdateOne) check() error {
	if v, ok := _u.mutation.Protocol(); ok {
		if err := verifyjob.ProtocolValidator(v); err != nil {
			return &ValidationError{Name: "protocol", err: fmt.Errorf(`ent: validator failed for field "VerifyJob.protocol": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := verifyjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "VerifyJob.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MemorialPages(); ok {
		if err := verifyjob.MemorialPagesValidator(v); err != nil {
			return &ValidationError{Name: "memorial_pages", err: fmt.Errorf(`ent: validator failed for field "VerifyJob.memorial_pages": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProjectPages(); ok {
		if err := verifyjob.ProjectPagesValidator(v); err != nil {
			return &ValidationError{Name: "project_pages", err: fmt.Errorf(`ent: validator failed for field "VerifyJob.project_pages": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Divergences(); ok {
		if err := verifyjob.DivergencesValidator(v); err != nil {
			return &ValidationError{Name: "divergences", err: fmt.Errorf(`ent: validator failed for field "VerifyJob.divergences": %w`, err)}
		}
	}
	if _u.mutation.FileCleared() && len(_u.mutation.FileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "VerifyJob.file"`)
	}
	return nil
}

func (_u *VerifyJobUpdateOne) sqlSave(ctx context.Context) (_node *VerifyJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(verifyjob.Table, verifyjob.Columns, sqlgraph.NewFieldSpec(verifyjob.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "VerifyJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, verifyjob.FieldID)
		for _, f := range fields {
			if !verifyjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != verifyjob.FieldID {
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
		_spec.SetField(verifyjob.FieldProtocol, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProtocol(); ok {
		_spec.AddField(verifyjob.FieldProtocol, field.TypeInt, value)
	}
	if _u.mutation.ProtocolCleared() {
		_spec.ClearField(verifyjob.FieldProtocol, field.TypeInt)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(verifyjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(verifyjob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(verifyjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(verifyjob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(verifyjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(verifyjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.MemorialPages(); ok {
		_spec.SetField(verifyjob.FieldMemorialPages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMemorialPages(); ok {
		_spec.AddField(verifyjob.FieldMemorialPages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProjectPages(); ok {
		_spec.SetField(verifyjob.FieldProjectPages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProjectPages(); ok {
		_spec.AddField(verifyjob.FieldProjectPages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MemorialRaw(); ok {
		_spec.SetField(verifyjob.FieldMemorialRaw, field.TypeString, value)
	}
	if _u.mutation.MemorialRawCleared() {
		_spec.ClearField(verifyjob.FieldMemorialRaw, field.TypeString)
	}
	if value, ok := _u.mutation.ProjectRaw(); ok {
		_spec.SetField(verifyjob.FieldProjectRaw, field.TypeString, value)
	}
	if _u.mutation.ProjectRawCleared() {
		_spec.ClearField(verifyjob.FieldProjectRaw, field.TypeString)
	}
	if value, ok := _u.mutation.MemorialJSON(); ok {
		_spec.SetField(verifyjob.FieldMemorialJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMemorialJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, verifyjob.FieldMemorialJSON, value)
		})
	}
	if _u.mutation.MemorialJSONCleared() {
		_spec.ClearField(verifyjob.FieldMemorialJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.ProjectJSON(); ok {
		_spec.SetField(verifyjob.FieldProjectJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedProjectJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, verifyjob.FieldProjectJSON, value)
		})
	}
	if _u.mutation.ProjectJSONCleared() {
		_spec.ClearField(verifyjob.FieldProjectJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.ComparisonJSON(); ok {
		_spec.SetField(verifyjob.FieldComparisonJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedComparisonJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, verifyjob.FieldComparisonJSON, value)
		})
	}
	if _u.mutation.ComparisonJSONCleared() {
		_spec.ClearField(verifyjob.FieldComparisonJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.Divergences(); ok {
		_spec.SetField(verifyjob.FieldDivergences, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDivergences(); ok {
		_spec.AddField(verifyjob.FieldDivergences, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DocumentsMatch(); ok {
		_spec.SetField(verifyjob.FieldDocumentsMatch, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(verifyjob.FieldModelName, field.TypeString, value)
	}
	if _u.mutation.ModelNameCleared() {
		_spec.ClearField(verifyjob.FieldModelName, field.TypeString)
	}
	if value, ok := _u.mutation.ModelParams(); ok {
		_spec.SetField(verifyjob.FieldModelParams, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedModelParams(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, verifyjob.FieldModelParams, value)
		})
	}
	if _u.mutation.ModelParamsCleared() {
		_spec.ClearField(verifyjob.FieldModelParams, field.TypeJSON)
	}
	if _u.mutation.FileCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FileIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &VerifyJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{verifyjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
