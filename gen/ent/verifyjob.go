// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/lgasparetto/geoverify/gen/ent/scanfile"
	"github.com/lgasparetto/geoverify/gen/ent/verifyjob"
)

// VerifyJob is the model entity for the VerifyJob schema.
type VerifyJob struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// FileID holds the value of the "file_id" field.
	FileID uuid.UUID `json:"file_id,omitempty"`
	// Protocol holds the value of the "protocol" field.
	Protocol *int `json:"protocol,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// FinishedAt holds the value of the "finished_at" field.
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// MemorialPages holds the value of the "memorial_pages" field.
	MemorialPages int `json:"memorial_pages,omitempty"`
	// ProjectPages holds the value of the "project_pages" field.
	ProjectPages int `json:"project_pages,omitempty"`
	// MemorialRaw holds the value of the "memorial_raw" field.
	MemorialRaw *string `json:"memorial_raw,omitempty"`
	// ProjectRaw holds the value of the "project_raw" field.
	ProjectRaw *string `json:"project_raw,omitempty"`
	// MemorialJSON holds the value of the "memorial_json" field.
	MemorialJSON json.RawMessage `json:"memorial_json,omitempty"`
	// ProjectJSON holds the value of the "project_json" field.
	ProjectJSON json.RawMessage `json:"project_json,omitempty"`
	// ComparisonJSON holds the value of the "comparison_json" field.
	ComparisonJSON json.RawMessage `json:"comparison_json,omitempty"`
	// Divergences holds the value of the "divergences" field.
	Divergences int `json:"divergences,omitempty"`
	// DocumentsMatch holds the value of the "documents_match" field.
	DocumentsMatch bool `json:"documents_match,omitempty"`
	// ModelName holds the value of the "model_name" field.
	ModelName *string `json:"model_name,omitempty"`
	// ModelParams holds the value of the "model_params" field.
	ModelParams json.RawMessage `json:"model_params,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the VerifyJobQuery when eager-loading is set.
	Edges        VerifyJobEdges `json:"edges"`
	selectValues sql.SelectValues
}

// VerifyJobEdges holds the relations/edges for other nodes in the graph.
type VerifyJobEdges struct {
	// File holds the value of the file edge.
	File *ScanFile `json:"file,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// FileOrErr returns the File value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e VerifyJobEdges) FileOrErr() (*ScanFile, error) {
	if e.File != nil {
		return e.File, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: scanfile.Label}
	}
	return nil, &NotLoadedError{edge: "file"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*VerifyJob) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case verifyjob.FieldMemorialJSON, verifyjob.FieldProjectJSON, verifyjob.FieldComparisonJSON, verifyjob.FieldModelParams:
			values[i] = new([]byte)
		case verifyjob.FieldDocumentsMatch:
			values[i] = new(sql.NullBool)
		case verifyjob.FieldProtocol, verifyjob.FieldMemorialPages, verifyjob.FieldProjectPages, verifyjob.FieldDivergences:
			values[i] = new(sql.NullInt64)
		case verifyjob.FieldStatus, verifyjob.FieldErrorMessage, verifyjob.FieldMemorialRaw, verifyjob.FieldProjectRaw, verifyjob.FieldModelName:
			values[i] = new(sql.NullString)
		case verifyjob.FieldStartedAt, verifyjob.FieldFinishedAt:
			values[i] = new(sql.NullTime)
		case verifyjob.FieldID, verifyjob.FieldFileID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the VerifyJob fields.
func (_m *VerifyJob) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case verifyjob.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case verifyjob.FieldFileID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field file_id", values[i])
			} else if value != nil {
				_m.FileID = *value
			}
		case verifyjob.FieldProtocol:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field protocol", values[i])
			} else if value.Valid {
				_m.Protocol = new(int)
				*_m.Protocol = int(value.Int64)
			}
		case verifyjob.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case verifyjob.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case verifyjob.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				_m.FinishedAt = new(time.Time)
				*_m.FinishedAt = value.Time
			}
		case verifyjob.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case verifyjob.FieldMemorialPages:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field memorial_pages", values[i])
			} else if value.Valid {
				_m.MemorialPages = int(value.Int64)
			}
		case verifyjob.FieldProjectPages:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field project_pages", values[i])
			} else if value.Valid {
				_m.ProjectPages = int(value.Int64)
			}
		case verifyjob.FieldMemorialRaw:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field memorial_raw", values[i])
			} else if value.Valid {
				_m.MemorialRaw = new(string)
				*_m.MemorialRaw = value.String
			}
		case verifyjob.FieldProjectRaw:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_raw", values[i])
			} else if value.Valid {
				_m.ProjectRaw = new(string)
				*_m.ProjectRaw = value.String
			}
		case verifyjob.FieldMemorialJSON:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field memorial_json", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.MemorialJSON); err != nil {
					return fmt.Errorf("unmarshal field memorial_json: %w", err)
				}
			}
		case verifyjob.FieldProjectJSON:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field project_json", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ProjectJSON); err != nil {
					return fmt.Errorf("unmarshal field project_json: %w", err)
				}
			}
		case verifyjob.FieldComparisonJSON:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field comparison_json", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ComparisonJSON); err != nil {
					return fmt.Errorf("unmarshal field comparison_json: %w", err)
				}
			}
		case verifyjob.FieldDivergences:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field divergences", values[i])
			} else if value.Valid {
				_m.Divergences = int(value.Int64)
			}
		case verifyjob.FieldDocumentsMatch:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field documents_match", values[i])
			} else if value.Valid {
				_m.DocumentsMatch = value.Bool
			}
		case verifyjob.FieldModelName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_name", values[i])
			} else if value.Valid {
				_m.ModelName = new(string)
				*_m.ModelName = value.String
			}
		case verifyjob.FieldModelParams:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field model_params", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ModelParams); err != nil {
					return fmt.Errorf("unmarshal field model_params: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the VerifyJob.
// This includes values selected through modifiers, order, etc.
func (_m *VerifyJob) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryFile queries the "file" edge of the VerifyJob entity.
func (_m *VerifyJob) QueryFile() *ScanFileQuery {
	return NewVerifyJobClient(_m.config).QueryFile(_m)
}

// Update returns a builder for updating this VerifyJob.
// Note that you need to call VerifyJob.Unwrap() before calling this method if this VerifyJob
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *VerifyJob) Update() *VerifyJobUpdateOne {
	return NewVerifyJobClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the VerifyJob entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *VerifyJob) Unwrap() *VerifyJob {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: VerifyJob is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *VerifyJob) String() string {
	var builder strings.Builder
	builder.WriteString("VerifyJob(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("file_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.FileID))
	builder.WriteString(", ")
	if v := _m.Protocol; v != nil {
		builder.WriteString("protocol=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.FinishedAt; v != nil {
		builder.WriteString("finished_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("memorial_pages=")
	builder.WriteString(fmt.Sprintf("%v", _m.MemorialPages))
	builder.WriteString(", ")
	builder.WriteString("project_pages=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProjectPages))
	builder.WriteString(", ")
	if v := _m.MemorialRaw; v != nil {
		builder.WriteString("memorial_raw=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ProjectRaw; v != nil {
		builder.WriteString("project_raw=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("memorial_json=")
	builder.WriteString(fmt.Sprintf("%v", _m.MemorialJSON))
	builder.WriteString(", ")
	builder.WriteString("project_json=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProjectJSON))
	builder.WriteString(", ")
	builder.WriteString("comparison_json=")
	builder.WriteString(fmt.Sprintf("%v", _m.ComparisonJSON))
	builder.WriteString(", ")
	builder.WriteString("divergences=")
	builder.WriteString(fmt.Sprintf("%v", _m.Divergences))
	builder.WriteString(", ")
	builder.WriteString("documents_match=")
	builder.WriteString(fmt.Sprintf("%v", _m.DocumentsMatch))
	builder.WriteString(", ")
	if v := _m.ModelName; v != nil {
		builder.WriteString("model_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("model_params=")
	builder.WriteString(fmt.Sprintf("%v", _m.ModelParams))
	builder.WriteByte(')')
	return builder.String()
}

// VerifyJobs is a parsable slice of VerifyJob.
type VerifyJobs []*VerifyJob
