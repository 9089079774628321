// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ScanFilesColumns holds the columns for the "scan_files" table.
	ScanFilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "protocol", Type: field.TypeInt, Nullable: true},
		{Name: "source_path", Type: field.TypeString},
		{Name: "content_hash", Type: field.TypeBytes, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "filename", Type: field.TypeString},
		{Name: "file_ext", Type: field.TypeString},
		{Name: "format", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt},
		{Name: "page_count", Type: field.TypeInt, Default: 0},
		{Name: "uploaded_at", Type: field.TypeTime},
	}
	// ScanFilesTable holds the schema information for the "scan_files" table.
	ScanFilesTable = &schema.Table{
		Name:       "scan_files",
		Columns:    ScanFilesColumns,
		PrimaryKey: []*schema.Column{ScanFilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "scanfile_content_hash",
				Unique:  true,
				Columns: []*schema.Column{ScanFilesColumns[3]},
			},
			{
				Name:    "scanfile_protocol",
				Unique:  false,
				Columns: []*schema.Column{ScanFilesColumns[1]},
			},
			{
				Name:    "scanfile_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{ScanFilesColumns[9]},
			},
		},
	}
	// VerifyJobsColumns holds the columns for the "verify_jobs" table.
	VerifyJobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "protocol", Type: field.TypeInt, Nullable: true},
		{Name: "status", Type: field.TypeString},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "memorial_pages", Type: field.TypeInt, Default: 0},
		{Name: "project_pages", Type: field.TypeInt, Default: 0},
		{Name: "memorial_raw", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "project_raw", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "memorial_json", Type: field.TypeJSON, Nullable: true},
		{Name: "project_json", Type: field.TypeJSON, Nullable: true},
		{Name: "comparison_json", Type: field.TypeJSON, Nullable: true},
		{Name: "divergences", Type: field.TypeInt, Default: 0},
		{Name: "documents_match", Type: field.TypeBool, Default: false},
		{Name: "model_name", Type: field.TypeString, Nullable: true},
		{Name: "model_params", Type: field.TypeJSON, Nullable: true},
		{Name: "file_id", Type: field.TypeUUID},
	}
	// VerifyJobsTable holds the schema information for the "verify_jobs" table.
	VerifyJobsTable = &schema.Table{
		Name:       "verify_jobs",
		Columns:    VerifyJobsColumns,
		PrimaryKey: []*schema.Column{VerifyJobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "verify_jobs_scan_files_jobs",
				Columns:    []*schema.Column{VerifyJobsColumns[17]},
				RefColumns: []*schema.Column{ScanFilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "verifyjob_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{VerifyJobsColumns[2], VerifyJobsColumns[3]},
			},
			{
				Name:    "verifyjob_file_id",
				Unique:  false,
				Columns: []*schema.Column{VerifyJobsColumns[17]},
			},
			{
				Name:    "verifyjob_protocol",
				Unique:  false,
				Columns: []*schema.Column{VerifyJobsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ScanFilesTable,
		VerifyJobsTable,
	}
)

func init() {
	ScanFilesTable.Annotation = &entsql.Annotation{
		Table: "scan_files",
	}
	VerifyJobsTable.ForeignKeys[0].RefTable = ScanFilesTable
	VerifyJobsTable.Annotation = &entsql.Annotation{
		Table: "verify_jobs",
	}
}
