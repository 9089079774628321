// Code generated by ent, DO NOT EDIT.

package verifyjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/lgasparetto/geoverify/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldLTE(FieldID, id))
}

// FileID applies equality check predicate on the "file_id" field. It's identical to FileIDEQ.
func FileID(v uuid.UUID) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldEQ(FieldFileID, v))
}

// Protocol applies equality check predicate on the "protocol" field. It's identical to ProtocolEQ.
func Protocol(v int) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldEQ(FieldProtocol, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldEQ(FieldStatus, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldEQ(FieldStartedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldEQ(FieldFinishedAt, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldEQ(FieldErrorMessage, v))
}

// MemorialPages applies equality check predicate on the "memorial_pages" field. It's identical to MemorialPagesEQ.
func MemorialPages(v int) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldEQ(FieldMemorialPages, v))
}

// ProjectPages applies equality check predicate on the "project_pages" field. It's identical to ProjectPagesEQ.
func ProjectPages(v int) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldEQ(FieldProjectPages, v))
}

// MemorialRaw applies equality check predicate on the "memorial_raw" field. It's identical to MemorialRawEQ.
func MemorialRaw(v string) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldEQ(FieldMemorialRaw, v))
}

// ProjectRaw applies equality check predicate on the "project_raw" field. It's identical to ProjectRawEQ.
func ProjectRaw(v string) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldEQ(FieldProjectRaw, v))
}

// Divergences applies equality check predicate on the "divergences" field. It's identical to DivergencesEQ.
func Divergences(v int) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldEQ(FieldDivergences, v))
}

// DocumentsMatch applies equality check predicate on the "documents_match" field. It's identical to DocumentsMatchEQ.
func DocumentsMatch(v bool) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldEQ(FieldDocumentsMatch, v))
}

// ModelName applies equality check predicate on the "model_name" field. It's identical to ModelNameEQ.
func ModelName(v string) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldEQ(FieldModelName, v))
}

// FileIDEQ applies the EQ predicate on the "file_id" field.
func FileIDEQ(v uuid.UUID) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldEQ(FieldFileID, v))
}

// FileIDNEQ applies the NEQ predicate on the "file_id" field.
func FileIDNEQ(v uuid.UUID) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldNEQ(FieldFileID, v))
}

// FileIDIn applies the In predicate on the "file_id" field.
func FileIDIn(vs ...uuid.UUID) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldIn(FieldFileID, vs...))
}

// FileIDNotIn applies the NotIn predicate on the "file_id" field.
func FileIDNotIn(vs ...uuid.UUID) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldNotIn(FieldFileID, vs...))
}

// ProtocolEQ applies the EQ predicate on the "protocol" field.
func ProtocolEQ(v int) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldEQ(FieldProtocol, v))
}

// ProtocolNEQ applies the NEQ predicate on the "protocol" field.
func ProtocolNEQ(v int) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldNEQ(FieldProtocol, v))
}

// ProtocolIn applies the In predicate on the "protocol" field.
func ProtocolIn(vs ...int) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldIn(FieldProtocol, vs...))
}

// ProtocolNotIn applies the NotIn predicate on the "protocol" field.
func ProtocolNotIn(vs ...int) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldNotIn(FieldProtocol, vs...))
}

// ProtocolGT applies the GT predicate on the "protocol" field.
func ProtocolGT(v int) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldGT(FieldProtocol, v))
}

// ProtocolGTE applies the GTE predicate on the "protocol" field.
func ProtocolGTE(v int) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldGTE(FieldProtocol, v))
}

// ProtocolLT applies the LT predicate on the "protocol" field.
func ProtocolLT(v int) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldLT(FieldProtocol, v))
}

// ProtocolLTE applies the LTE predicate on the "protocol" field.
func ProtocolLTE(v int) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldLTE(FieldProtocol, v))
}

// ProtocolIsNil applies the IsNil predicate on the "protocol" field.
func ProtocolIsNil() predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldIsNull(FieldProtocol))
}

// ProtocolNotNil applies the NotNil predicate on the "protocol" field.
func ProtocolNotNil() predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldNotNull(FieldProtocol))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldContainsFold(FieldStatus, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldLTE(FieldStartedAt, v))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldLTE(FieldFinishedAt, v))
}

// FinishedAtIsNil applies the IsNil predicate on the "finished_at" field.
func FinishedAtIsNil() predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldIsNull(FieldFinishedAt))
}

// FinishedAtNotNil applies the NotNil predicate on the "finished_at" field.
func FinishedAtNotNil() predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldNotNull(FieldFinishedAt))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldContainsFold(FieldErrorMessage, v))
}

// MemorialPagesEQ applies the EQ predicate on the "memorial_pages" field.
func MemorialPagesEQ(v int) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldEQ(FieldMemorialPages, v))
}

// MemorialPagesNEQ applies the NEQ predicate on the "memorial_pages" field.
func MemorialPagesNEQ(v int) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldNEQ(FieldMemorialPages, v))
}

// MemorialPagesIn applies the In predicate on the "memorial_pages" field.
func MemorialPagesIn(vs ...int) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldIn(FieldMemorialPages, vs...))
}

// MemorialPagesNotIn applies the NotIn predicate on the "memorial_pages" field.
func MemorialPagesNotIn(vs ...int) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldNotIn(FieldMemorialPages, vs...))
}

// MemorialPagesGT applies the GT predicate on the "memorial_pages" field.
func MemorialPagesGT(v int) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldGT(FieldMemorialPages, v))
}

// MemorialPagesGTE applies the GTE predicate on the "memorial_pages" field.
func MemorialPagesGTE(v int) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldGTE(FieldMemorialPages, v))
}

// MemorialPagesLT applies the LT predicate on the "memorial_pages" field.
func MemorialPagesLT(v int) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldLT(FieldMemorialPages, v))
}

// MemorialPagesLTE applies the LTE predicate on the "memorial_pages" field.
func MemorialPagesLTE(v int) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldLTE(FieldMemorialPages, v))
}

// ProjectPagesEQ applies the EQ predicate on the "project_pages" field.
func ProjectPagesEQ(v int) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldEQ(FieldProjectPages, v))
}

// ProjectPagesNEQ applies the NEQ predicate on the "project_pages" field.
func ProjectPagesNEQ(v int) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldNEQ(FieldProjectPages, v))
}

// ProjectPagesIn applies the In predicate on the "project_pages" field.
func ProjectPagesIn(vs ...int) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldIn(FieldProjectPages, vs...))
}

// ProjectPagesNotIn applies the NotIn predicate on the "project_pages" field.
func ProjectPagesNotIn(vs ...int) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldNotIn(FieldProjectPages, vs...))
}

// ProjectPagesGT applies the GT predicate on the "project_pages" field.
func ProjectPagesGT(v int) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldGT(FieldProjectPages, v))
}

// ProjectPagesGTE applies the GTE predicate on the "project_pages" field.
func ProjectPagesGTE(v int) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldGTE(FieldProjectPages, v))
}

// ProjectPagesLT applies the LT predicate on the "project_pages" field.
func ProjectPagesLT(v int) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldLT(FieldProjectPages, v))
}

// ProjectPagesLTE applies the LTE predicate on the "project_pages" field.
func ProjectPagesLTE(v int) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldLTE(FieldProjectPages, v))
}

// MemorialRawEQ applies the EQ predicate on the "memorial_raw" field.
func MemorialRawEQ(v string) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldEQ(FieldMemorialRaw, v))
}

// MemorialRawNEQ applies the NEQ predicate on the "memorial_raw" field.
func MemorialRawNEQ(v string) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldNEQ(FieldMemorialRaw, v))
}

// MemorialRawIn applies the In predicate on the "memorial_raw" field.
func MemorialRawIn(vs ...string) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldIn(FieldMemorialRaw, vs...))
}

// MemorialRawNotIn applies the NotIn predicate on the "memorial_raw" field.
func MemorialRawNotIn(vs ...string) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldNotIn(FieldMemorialRaw, vs...))
}

// MemorialRawGT applies the GT predicate on the "memorial_raw" field.
func MemorialRawGT(v string) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldGT(FieldMemorialRaw, v))
}

// MemorialRawGTE applies the GTE predicate on the "memorial_raw" field.
func MemorialRawGTE(v string) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldGTE(FieldMemorialRaw, v))
}

// MemorialRawLT applies the LT predicate on the "memorial_raw" field.
func MemorialRawLT(v string) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldLT(FieldMemorialRaw, v))
}

// MemorialRawLTE applies the LTE predicate on the "memorial_raw" field.
func MemorialRawLTE(v string) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldLTE(FieldMemorialRaw, v))
}

// MemorialRawContains applies the Contains predicate on the "memorial_raw" field.
func MemorialRawContains(v string) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldContains(FieldMemorialRaw, v))
}

// MemorialRawHasPrefix applies the HasPrefix predicate on the "memorial_raw" field.
func MemorialRawHasPrefix(v string) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldHasPrefix(FieldMemorialRaw, v))
}

// MemorialRawHasSuffix applies the HasSuffix predicate on the "memorial_raw" field.
func MemorialRawHasSuffix(v string) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldHasSuffix(FieldMemorialRaw, v))
}

// MemorialRawIsNil applies the IsNil predicate on the "memorial_raw" field.
func MemorialRawIsNil() predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldIsNull(FieldMemorialRaw))
}

// MemorialRawNotNil applies the NotNil predicate on the "memorial_raw" field.
func MemorialRawNotNil() predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldNotNull(FieldMemorialRaw))
}

// MemorialRawEqualFold applies the EqualFold predicate on the "memorial_raw" field.
func MemorialRawEqualFold(v string) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldEqualFold(FieldMemorialRaw, v))
}

// MemorialRawContainsFold applies the ContainsFold predicate on the "memorial_raw" field.
func MemorialRawContainsFold(v string) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldContainsFold(FieldMemorialRaw, v))
}

// ProjectRawEQ applies the EQ predicate on the "project_raw" field.
func ProjectRawEQ(v string) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldEQ(FieldProjectRaw, v))
}

// ProjectRawNEQ applies the NEQ predicate on the "project_raw" field.
func ProjectRawNEQ(v string) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldNEQ(FieldProjectRaw, v))
}

// ProjectRawIn applies the In predicate on the "project_raw" field.
func ProjectRawIn(vs ...string) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldIn(FieldProjectRaw, vs...))
}

// ProjectRawNotIn applies the NotIn predicate on the "project_raw" field.
func ProjectRawNotIn(vs ...string) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldNotIn(FieldProjectRaw, vs...))
}

// ProjectRawGT applies the GT predicate on the "project_raw" field.
func ProjectRawGT(v string) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldGT(FieldProjectRaw, v))
}

// ProjectRawGTE applies the GTE predicate on the "project_raw" field.
func ProjectRawGTE(v string) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldGTE(FieldProjectRaw, v))
}

// ProjectRawLT applies the LT predicate on the "project_raw" field.
func ProjectRawLT(v string) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldLT(FieldProjectRaw, v))
}

// ProjectRawLTE applies the LTE predicate on the "project_raw" field.
func ProjectRawLTE(v string) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldLTE(FieldProjectRaw, v))
}

// ProjectRawContains applies the Contains predicate on the "project_raw" field.
func ProjectRawContains(v string) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldContains(FieldProjectRaw, v))
}

// ProjectRawHasPrefix applies the HasPrefix predicate on the "project_raw" field.
func ProjectRawHasPrefix(v string) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldHasPrefix(FieldProjectRaw, v))
}

// ProjectRawHasSuffix applies the HasSuffix predicate on the "project_raw" field.
func ProjectRawHasSuffix(v string) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldHasSuffix(FieldProjectRaw, v))
}

// ProjectRawIsNil applies the IsNil predicate on the "project_raw" field.
func ProjectRawIsNil() predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldIsNull(FieldProjectRaw))
}

// ProjectRawNotNil applies the NotNil predicate on the "project_raw" field.
func ProjectRawNotNil() predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldNotNull(FieldProjectRaw))
}

// ProjectRawEqualFold applies the EqualFold predicate on the "project_raw" field.
func ProjectRawEqualFold(v string) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldEqualFold(FieldProjectRaw, v))
}

// ProjectRawContainsFold applies the ContainsFold predicate on the "project_raw" field.
func ProjectRawContainsFold(v string) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldContainsFold(FieldProjectRaw, v))
}

// MemorialJSONIsNil applies the IsNil predicate on the "memorial_json" field.
func MemorialJSONIsNil() predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldIsNull(FieldMemorialJSON))
}

// MemorialJSONNotNil applies the NotNil predicate on the "memorial_json" field.
func MemorialJSONNotNil() predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldNotNull(FieldMemorialJSON))
}

// ProjectJSONIsNil applies the IsNil predicate on the "project_json" field.
func ProjectJSONIsNil() predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldIsNull(FieldProjectJSON))
}

// ProjectJSONNotNil applies the NotNil predicate on the "project_json" field.
func ProjectJSONNotNil() predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldNotNull(FieldProjectJSON))
}

// ComparisonJSONIsNil applies the IsNil predicate on the "comparison_json" field.
func ComparisonJSONIsNil() predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldIsNull(FieldComparisonJSON))
}

// ComparisonJSONNotNil applies the NotNil predicate on the "comparison_json" field.
func ComparisonJSONNotNil() predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldNotNull(FieldComparisonJSON))
}

// DivergencesEQ applies the EQ predicate on the "divergences" field.
func DivergencesEQ(v int) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldEQ(FieldDivergences, v))
}

// DivergencesNEQ applies the NEQ predicate on the "divergences" field.
func DivergencesNEQ(v int) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldNEQ(FieldDivergences, v))
}

// DivergencesIn applies the In predicate on the "divergences" field.
func DivergencesIn(vs ...int) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldIn(FieldDivergences, vs...))
}

// DivergencesNotIn applies the NotIn predicate on the "divergences" field.
func DivergencesNotIn(vs ...int) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldNotIn(FieldDivergences, vs...))
}

// DivergencesGT applies the GT predicate on the "divergences" field.
func DivergencesGT(v int) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldGT(FieldDivergences, v))
}

// DivergencesGTE applies the GTE predicate on the "divergences" field.
func DivergencesGTE(v int) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldGTE(FieldDivergences, v))
}

// DivergencesLT applies the LT predicate on the "divergences" field.
func DivergencesLT(v int) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldLT(FieldDivergences, v))
}

// DivergencesLTE applies the LTE predicate on the "divergences" field.
func DivergencesLTE(v int) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldLTE(FieldDivergences, v))
}

// DocumentsMatchEQ applies the EQ predicate on the "documents_match" field.
func DocumentsMatchEQ(v bool) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldEQ(FieldDocumentsMatch, v))
}

// DocumentsMatchNEQ applies the NEQ predicate on the "documents_match" field.
func DocumentsMatchNEQ(v bool) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldNEQ(FieldDocumentsMatch, v))
}

// ModelNameEQ applies the EQ predicate on the "model_name" field.
func ModelNameEQ(v string) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldEQ(FieldModelName, v))
}

// ModelNameNEQ applies the NEQ predicate on the "model_name" field.
func ModelNameNEQ(v string) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldNEQ(FieldModelName, v))
}

// ModelNameIn applies the In predicate on the "model_name" field.
func ModelNameIn(vs ...string) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldIn(FieldModelName, vs...))
}

// ModelNameNotIn applies the NotIn predicate on the "model_name" field.
func ModelNameNotIn(vs ...string) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldNotIn(FieldModelName, vs...))
}

// ModelNameGT applies the GT predicate on the "model_name" field.
func ModelNameGT(v string) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldGT(FieldModelName, v))
}

// ModelNameGTE applies the GTE predicate on the "model_name" field.
func ModelNameGTE(v string) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldGTE(FieldModelName, v))
}

// ModelNameLT applies the LT predicate on the "model_name" field.
func ModelNameLT(v string) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldLT(FieldModelName, v))
}

// ModelNameLTE applies the LTE predicate on the "model_name" field.
func ModelNameLTE(v string) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldLTE(FieldModelName, v))
}

// ModelNameContains applies the Contains predicate on the "model_name" field.
func ModelNameContains(v string) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldContains(FieldModelName, v))
}

// ModelNameHasPrefix applies the HasPrefix predicate on the "model_name" field.
func ModelNameHasPrefix(v string) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldHasPrefix(FieldModelName, v))
}

// ModelNameHasSuffix applies the HasSuffix predicate on the "model_name" field.
func ModelNameHasSuffix(v string) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldHasSuffix(FieldModelName, v))
}

// ModelNameIsNil applies the IsNil predicate on the "model_name" field.
func ModelNameIsNil() predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldIsNull(FieldModelName))
}

// ModelNameNotNil applies the NotNil predicate on the "model_name" field.
func ModelNameNotNil() predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldNotNull(FieldModelName))
}

// ModelNameEqualFold applies the EqualFold predicate on the "model_name" field.
func ModelNameEqualFold(v string) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldEqualFold(FieldModelName, v))
}

// ModelNameContainsFold applies the ContainsFold predicate on the "model_name" field.
func ModelNameContainsFold(v string) predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldContainsFold(FieldModelName, v))
}

// ModelParamsIsNil applies the IsNil predicate on the "model_params" field.
func ModelParamsIsNil() predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldIsNull(FieldModelParams))
}

// ModelParamsNotNil applies the NotNil predicate on the "model_params" field.
func ModelParamsNotNil() predicate.VerifyJob {
	return predicate.VerifyJob(sql.FieldNotNull(FieldModelParams))
}

// HasFile applies the HasEdge predicate on the "file" edge.
func HasFile() predicate.VerifyJob {
	return predicate.VerifyJob(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, FileTable, FileColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFileWith applies the HasEdge predicate on the "file" edge with a given conditions (other predicates).
func HasFileWith(preds ...predicate.ScanFile) predicate.VerifyJob {
	return predicate.VerifyJob(func(s *sql.Selector) {
		step := newFileStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.VerifyJob) predicate.VerifyJob {
	return predicate.VerifyJob(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.VerifyJob) predicate.VerifyJob {
	return predicate.VerifyJob(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.VerifyJob) predicate.VerifyJob {
	return predicate.VerifyJob(sql.NotPredicates(p))
}
