// Code generated by ent, DO NOT EDIT.

package verifyjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the verifyjob type in the database.
	Label = "verify_job"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldFileID holds the string denoting the file_id field in the database.
	FieldFileID = "file_id"
	// FieldProtocol holds the string denoting the protocol field in the database.
	FieldProtocol = "protocol"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldFinishedAt holds the string denoting the finished_at field in the database.
	FieldFinishedAt = "finished_at"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldMemorialPages holds the string denoting the memorial_pages field in the database.
	FieldMemorialPages = "memorial_pages"
	// FieldProjectPages holds the string denoting the project_pages field in the database.
	FieldProjectPages = "project_pages"
	// FieldMemorialRaw holds the string denoting the memorial_raw field in the database.
	FieldMemorialRaw = "memorial_raw"
	// FieldProjectRaw holds the string denoting the project_raw field in the database.
	FieldProjectRaw = "project_raw"
	// FieldMemorialJSON holds the string denoting the memorial_json field in the database.
	FieldMemorialJSON = "memorial_json"
	// FieldProjectJSON holds the string denoting the project_json field in the database.
	FieldProjectJSON = "project_json"
	// FieldComparisonJSON holds the string denoting the comparison_json field in the database.
	FieldComparisonJSON = "comparison_json"
	// FieldDivergences holds the string denoting the divergences field in the database.
	FieldDivergences = "divergences"
	// FieldDocumentsMatch holds the string denoting the documents_match field in the database.
	FieldDocumentsMatch = "documents_match"
	// FieldModelName holds the string denoting the model_name field in the database.
	FieldModelName = "model_name"
	// FieldModelParams holds the string denoting the model_params field in the database.
	FieldModelParams = "model_params"
	// EdgeFile holds the string denoting the file edge name in mutations.
	EdgeFile = "file"
	// Table holds the table name of the verifyjob in the database.
	Table = "verify_jobs"
	// FileTable is the table that holds the file relation/edge.
	FileTable = "verify_jobs"
	// FileInverseTable is the table name for the ScanFile entity.
	// It exists in this package in order to avoid circular dependency with the "scanfile" package.
	FileInverseTable = "scan_files"
	// FileColumn is the table column denoting the file relation/edge.
	FileColumn = "file_id"
)

// Columns holds all SQL columns for verifyjob fields.
var Columns = []string{
	FieldID,
	FieldFileID,
	FieldProtocol,
	FieldStatus,
	FieldStartedAt,
	FieldFinishedAt,
	FieldErrorMessage,
	FieldMemorialPages,
	FieldProjectPages,
	FieldMemorialRaw,
	FieldProjectRaw,
	FieldMemorialJSON,
	FieldProjectJSON,
	FieldComparisonJSON,
	FieldDivergences,
	FieldDocumentsMatch,
	FieldModelName,
	FieldModelParams,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// ProtocolValidator is a validator for the "protocol" field. It is called by the builders before save.
	ProtocolValidator func(int) error
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
	// DefaultMemorialPages holds the default value on creation for the "memorial_pages" field.
	DefaultMemorialPages int
	// MemorialPagesValidator is a validator for the "memorial_pages" field. It is called by the builders before save.
	MemorialPagesValidator func(int) error
	// DefaultProjectPages holds the default value on creation for the "project_pages" field.
	DefaultProjectPages int
	// ProjectPagesValidator is a validator for the "project_pages" field. It is called by the builders before save.
	ProjectPagesValidator func(int) error
	// DefaultDivergences holds the default value on creation for the "divergences" field.
	DefaultDivergences int
	// DivergencesValidator is a validator for the "divergences" field. It is called by the builders before save.
	DivergencesValidator func(int) error
	// DefaultDocumentsMatch holds the default value on creation for the "documents_match" field.
	DefaultDocumentsMatch bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the VerifyJob queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByFileID orders the results by the file_id field.
func ByFileID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileID, opts...).ToFunc()
}

// ByProtocol orders the results by the protocol field.
func ByProtocol(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProtocol, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByFinishedAt orders the results by the finished_at field.
func ByFinishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinishedAt, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByMemorialPages orders the results by the memorial_pages field.
func ByMemorialPages(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMemorialPages, opts...).ToFunc()
}

// ByProjectPages orders the results by the project_pages field.
func ByProjectPages(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectPages, opts...).ToFunc()
}

// ByMemorialRaw orders the results by the memorial_raw field.
func ByMemorialRaw(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMemorialRaw, opts...).ToFunc()
}

// ByProjectRaw orders the results by the project_raw field.
func ByProjectRaw(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectRaw, opts...).ToFunc()
}

// ByDivergences orders the results by the divergences field.
func ByDivergences(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDivergences, opts...).ToFunc()
}

// ByDocumentsMatch orders the results by the documents_match field.
func ByDocumentsMatch(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentsMatch, opts...).ToFunc()
}

// ByModelName orders the results by the model_name field.
func ByModelName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelName, opts...).ToFunc()
}

// ByFileField orders the results by file field.
func ByFileField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFileStep(), sql.OrderByField(field, opts...))
	}
}
func newFileStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FileInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, FileTable, FileColumn),
	)
}
