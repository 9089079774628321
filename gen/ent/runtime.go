// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/lgasparetto/geoverify/db/ent/schema"
	"github.com/lgasparetto/geoverify/gen/ent/scanfile"
	"github.com/lgasparetto/geoverify/gen/ent/verifyjob"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	scanfileFields := schema.ScanFile{}.Fields()
	_ = scanfileFields
	// scanfileDescProtocol is the schema descriptor for protocol field.
	scanfileDescProtocol := scanfileFields[1].Descriptor()
	// scanfile.ProtocolValidator is a validator for the "protocol" field. It is called by the builders before save.
	scanfile.ProtocolValidator = scanfileDescProtocol.Validators[0].(func(int) error)
	// scanfileDescSourcePath is the schema descriptor for source_path field.
	scanfileDescSourcePath := scanfileFields[2].Descriptor()
	// scanfile.SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	scanfile.SourcePathValidator = scanfileDescSourcePath.Validators[0].(func(string) error)
	// scanfileDescContentHash is the schema descriptor for content_hash field.
	scanfileDescContentHash := scanfileFields[3].Descriptor()
	// scanfile.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	scanfile.ContentHashValidator = scanfileDescContentHash.Validators[0].(func([]byte) error)
	// scanfileDescFilename is the schema descriptor for filename field.
	scanfileDescFilename := scanfileFields[4].Descriptor()
	// scanfile.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	scanfile.FilenameValidator = scanfileDescFilename.Validators[0].(func(string) error)
	// scanfileDescFileExt is the schema descriptor for file_ext field.
	scanfileDescFileExt := scanfileFields[5].Descriptor()
	// scanfile.FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	scanfile.FileExtValidator = scanfileDescFileExt.Validators[0].(func(string) error)
	// scanfileDescFormat is the schema descriptor for format field.
	scanfileDescFormat := scanfileFields[6].Descriptor()
	// scanfile.FormatValidator is a validator for the "format" field. It is called by the builders before save.
	scanfile.FormatValidator = func() func(string) error {
		validators := scanfileDescFormat.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(format string) error {
			for _, fn := range fns {
				if err := fn(format); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// scanfileDescFileSize is the schema descriptor for file_size field.
	scanfileDescFileSize := scanfileFields[7].Descriptor()
	// scanfile.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	scanfile.FileSizeValidator = scanfileDescFileSize.Validators[0].(func(int) error)
	// scanfileDescPageCount is the schema descriptor for page_count field.
	scanfileDescPageCount := scanfileFields[8].Descriptor()
	// scanfile.DefaultPageCount holds the default value on creation for the page_count field.
	scanfile.DefaultPageCount = scanfileDescPageCount.Default.(int)
	// scanfile.PageCountValidator is a validator for the "page_count" field. It is called by the builders before save.
	scanfile.PageCountValidator = scanfileDescPageCount.Validators[0].(func(int) error)
	// scanfileDescUploadedAt is the schema descriptor for uploaded_at field.
	scanfileDescUploadedAt := scanfileFields[9].Descriptor()
	// scanfile.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	scanfile.DefaultUploadedAt = scanfileDescUploadedAt.Default.(func() time.Time)
	// scanfileDescID is the schema descriptor for id field.
	scanfileDescID := scanfileFields[0].Descriptor()
	// scanfile.DefaultID holds the default value on creation for the id field.
	scanfile.DefaultID = scanfileDescID.Default.(func() uuid.UUID)
	verifyjobFields := schema.VerifyJob{}.Fields()
	_ = verifyjobFields
	// verifyjobDescProtocol is the schema descriptor for protocol field.
	verifyjobDescProtocol := verifyjobFields[2].Descriptor()
	// verifyjob.ProtocolValidator is a validator for the "protocol" field. It is called by the builders before save.
	verifyjob.ProtocolValidator = verifyjobDescProtocol.Validators[0].(func(int) error)
	// verifyjobDescStatus is the schema descriptor for status field.
	verifyjobDescStatus := verifyjobFields[3].Descriptor()
	// verifyjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	verifyjob.StatusValidator = func() func(string) error {
		validators := verifyjobDescStatus.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(status string) error {
			for _, fn := range fns {
				if err := fn(status); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// verifyjobDescStartedAt is the schema descriptor for started_at field.
	verifyjobDescStartedAt := verifyjobFields[4].Descriptor()
	// verifyjob.DefaultStartedAt holds the default value on creation for the started_at field.
	verifyjob.DefaultStartedAt = verifyjobDescStartedAt.Default.(func() time.Time)
	// verifyjobDescMemorialPages is the schema descriptor for memorial_pages field.
	verifyjobDescMemorialPages := verifyjobFields[7].Descriptor()
	// verifyjob.DefaultMemorialPages holds the default value on creation for the memorial_pages field.
	verifyjob.DefaultMemorialPages = verifyjobDescMemorialPages.Default.(int)
	// verifyjob.MemorialPagesValidator is a validator for the "memorial_pages" field. It is called by the builders before save.
	verifyjob.MemorialPagesValidator = verifyjobDescMemorialPages.Validators[0].(func(int) error)
	// verifyjobDescProjectPages is the schema descriptor for project_pages field.
	verifyjobDescProjectPages := verifyjobFields[8].Descriptor()
	// verifyjob.DefaultProjectPages holds the default value on creation for the project_pages field.
	verifyjob.DefaultProjectPages = verifyjobDescProjectPages.Default.(int)
	// verifyjob.ProjectPagesValidator is a validator for the "project_pages" field. It is called by the builders before save.
	verifyjob.ProjectPagesValidator = verifyjobDescProjectPages.Validators[0].(func(int) error)
	// verifyjobDescDivergences is the schema descriptor for divergences field.
	verifyjobDescDivergences := verifyjobFields[14].Descriptor()
	// verifyjob.DefaultDivergences holds the default value on creation for the divergences field.
	verifyjob.DefaultDivergences = verifyjobDescDivergences.Default.(int)
	// verifyjob.DivergencesValidator is a validator for the "divergences" field. It is called by the builders before save.
	verifyjob.DivergencesValidator = verifyjobDescDivergences.Validators[0].(func(int) error)
	// verifyjobDescDocumentsMatch is the schema descriptor for documents_match field.
	verifyjobDescDocumentsMatch := verifyjobFields[15].Descriptor()
	// verifyjob.DefaultDocumentsMatch holds the default value on creation for the documents_match field.
	verifyjob.DefaultDocumentsMatch = verifyjobDescDocumentsMatch.Default.(bool)
	// verifyjobDescID is the schema descriptor for id field.
	verifyjobDescID := verifyjobFields[0].Descriptor()
	// verifyjob.DefaultID holds the default value on creation for the id field.
	verifyjob.DefaultID = verifyjobDescID.Default.(func() uuid.UUID)
}
