// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: geoverify/v1/geoverify.proto

package geoverifyv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type StartVerificationRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// protocol (prenotação) number; the scan is located under the deposit tree.
	Protocol int32 `protobuf:"varint,1,opt,name=protocol,proto3" json:"protocol,omitempty"`
	// path overrides protocol-based lookup when set.
	Path          string `protobuf:"bytes,2,opt,name=path,proto3" json:"path,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StartVerificationRequest) Reset() {
	*x = StartVerificationRequest{}
	mi := &file_geoverify_v1_geoverify_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StartVerificationRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StartVerificationRequest) ProtoMessage() {}

func (x *StartVerificationRequest) ProtoReflect() protoreflect.Message {
	mi := &file_geoverify_v1_geoverify_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StartVerificationRequest.ProtoReflect.Descriptor instead.
func (*StartVerificationRequest) Descriptor() ([]byte, []int) {
	return file_geoverify_v1_geoverify_proto_rawDescGZIP(), []int{0}
}

func (x *StartVerificationRequest) GetProtocol() int32 {
	if x != nil {
		return x.Protocol
	}
	return 0
}

func (x *StartVerificationRequest) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

type StartVerificationResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	JobId          string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Status         string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	Divergences    int32                  `protobuf:"varint,3,opt,name=divergences,proto3" json:"divergences,omitempty"`
	DocumentsMatch bool                   `protobuf:"varint,4,opt,name=documents_match,json=documentsMatch,proto3" json:"documents_match,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *StartVerificationResponse) Reset() {
	*x = StartVerificationResponse{}
	mi := &file_geoverify_v1_geoverify_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StartVerificationResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StartVerificationResponse) ProtoMessage() {}

func (x *StartVerificationResponse) ProtoReflect() protoreflect.Message {
	mi := &file_geoverify_v1_geoverify_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StartVerificationResponse.ProtoReflect.Descriptor instead.
func (*StartVerificationResponse) Descriptor() ([]byte, []int) {
	return file_geoverify_v1_geoverify_proto_rawDescGZIP(), []int{1}
}

func (x *StartVerificationResponse) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *StartVerificationResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *StartVerificationResponse) GetDivergences() int32 {
	if x != nil {
		return x.Divergences
	}
	return 0
}

func (x *StartVerificationResponse) GetDocumentsMatch() bool {
	if x != nil {
		return x.DocumentsMatch
	}
	return false
}

type VerificationJob struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Id             string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	FileId         string                 `protobuf:"bytes,2,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
	Protocol       int32                  `protobuf:"varint,3,opt,name=protocol,proto3" json:"protocol,omitempty"`
	Status         string                 `protobuf:"bytes,4,opt,name=status,proto3" json:"status,omitempty"`
	StartedAt      string                 `protobuf:"bytes,5,opt,name=started_at,json=startedAt,proto3" json:"started_at,omitempty"`    // RFC 3339
	FinishedAt     string                 `protobuf:"bytes,6,opt,name=finished_at,json=finishedAt,proto3" json:"finished_at,omitempty"` // RFC 3339, empty while running
	ErrorMessage   string                 `protobuf:"bytes,7,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	Divergences    int32                  `protobuf:"varint,8,opt,name=divergences,proto3" json:"divergences,omitempty"`
	DocumentsMatch bool                   `protobuf:"varint,9,opt,name=documents_match,json=documentsMatch,proto3" json:"documents_match,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *VerificationJob) Reset() {
	*x = VerificationJob{}
	mi := &file_geoverify_v1_geoverify_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *VerificationJob) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*VerificationJob) ProtoMessage() {}

func (x *VerificationJob) ProtoReflect() protoreflect.Message {
	mi := &file_geoverify_v1_geoverify_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use VerificationJob.ProtoReflect.Descriptor instead.
func (*VerificationJob) Descriptor() ([]byte, []int) {
	return file_geoverify_v1_geoverify_proto_rawDescGZIP(), []int{2}
}

func (x *VerificationJob) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *VerificationJob) GetFileId() string {
	if x != nil {
		return x.FileId
	}
	return ""
}

func (x *VerificationJob) GetProtocol() int32 {
	if x != nil {
		return x.Protocol
	}
	return 0
}

func (x *VerificationJob) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *VerificationJob) GetStartedAt() string {
	if x != nil {
		return x.StartedAt
	}
	return ""
}

func (x *VerificationJob) GetFinishedAt() string {
	if x != nil {
		return x.FinishedAt
	}
	return ""
}

func (x *VerificationJob) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *VerificationJob) GetDivergences() int32 {
	if x != nil {
		return x.Divergences
	}
	return 0
}

func (x *VerificationJob) GetDocumentsMatch() bool {
	if x != nil {
		return x.DocumentsMatch
	}
	return false
}

type GetVerificationRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetVerificationRequest) Reset() {
	*x = GetVerificationRequest{}
	mi := &file_geoverify_v1_geoverify_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetVerificationRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetVerificationRequest) ProtoMessage() {}

func (x *GetVerificationRequest) ProtoReflect() protoreflect.Message {
	mi := &file_geoverify_v1_geoverify_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetVerificationRequest.ProtoReflect.Descriptor instead.
func (*GetVerificationRequest) Descriptor() ([]byte, []int) {
	return file_geoverify_v1_geoverify_proto_rawDescGZIP(), []int{3}
}

func (x *GetVerificationRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type GetVerificationResponse struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	Job   *VerificationJob       `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	// comparison_json is the persisted field-by-field diff, verbatim.
	ComparisonJson string `protobuf:"bytes,2,opt,name=comparison_json,json=comparisonJson,proto3" json:"comparison_json,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *GetVerificationResponse) Reset() {
	*x = GetVerificationResponse{}
	mi := &file_geoverify_v1_geoverify_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetVerificationResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetVerificationResponse) ProtoMessage() {}

func (x *GetVerificationResponse) ProtoReflect() protoreflect.Message {
	mi := &file_geoverify_v1_geoverify_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetVerificationResponse.ProtoReflect.Descriptor instead.
func (*GetVerificationResponse) Descriptor() ([]byte, []int) {
	return file_geoverify_v1_geoverify_proto_rawDescGZIP(), []int{4}
}

func (x *GetVerificationResponse) GetJob() *VerificationJob {
	if x != nil {
		return x.Job
	}
	return nil
}

func (x *GetVerificationResponse) GetComparisonJson() string {
	if x != nil {
		return x.ComparisonJson
	}
	return ""
}

type ListVerificationsRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// status filters by job status when set (QUEUED, RUNNING, EXTRACT_OK,
	// COMPARED, FAILED).
	Status        string `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	Limit         int32  `protobuf:"varint,2,opt,name=limit,proto3" json:"limit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListVerificationsRequest) Reset() {
	*x = ListVerificationsRequest{}
	mi := &file_geoverify_v1_geoverify_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListVerificationsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListVerificationsRequest) ProtoMessage() {}

func (x *ListVerificationsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_geoverify_v1_geoverify_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListVerificationsRequest.ProtoReflect.Descriptor instead.
func (*ListVerificationsRequest) Descriptor() ([]byte, []int) {
	return file_geoverify_v1_geoverify_proto_rawDescGZIP(), []int{5}
}

func (x *ListVerificationsRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ListVerificationsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type ListVerificationsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Jobs          []*VerificationJob     `protobuf:"bytes,1,rep,name=jobs,proto3" json:"jobs,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListVerificationsResponse) Reset() {
	*x = ListVerificationsResponse{}
	mi := &file_geoverify_v1_geoverify_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListVerificationsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListVerificationsResponse) ProtoMessage() {}

func (x *ListVerificationsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_geoverify_v1_geoverify_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListVerificationsResponse.ProtoReflect.Descriptor instead.
func (*ListVerificationsResponse) Descriptor() ([]byte, []int) {
	return file_geoverify_v1_geoverify_proto_rawDescGZIP(), []int{6}
}

func (x *ListVerificationsResponse) GetJobs() []*VerificationJob {
	if x != nil {
		return x.Jobs
	}
	return nil
}

type ExportReportRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportReportRequest) Reset() {
	*x = ExportReportRequest{}
	mi := &file_geoverify_v1_geoverify_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportReportRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportReportRequest) ProtoMessage() {}

func (x *ExportReportRequest) ProtoReflect() protoreflect.Message {
	mi := &file_geoverify_v1_geoverify_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportReportRequest.ProtoReflect.Descriptor instead.
func (*ExportReportRequest) Descriptor() ([]byte, []int) {
	return file_geoverify_v1_geoverify_proto_rawDescGZIP(), []int{7}
}

func (x *ExportReportRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type ExportReportResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	Summary       string                 `protobuf:"bytes,2,opt,name=summary,proto3" json:"summary,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportReportResponse) Reset() {
	*x = ExportReportResponse{}
	mi := &file_geoverify_v1_geoverify_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportReportResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportReportResponse) ProtoMessage() {}

func (x *ExportReportResponse) ProtoReflect() protoreflect.Message {
	mi := &file_geoverify_v1_geoverify_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportReportResponse.ProtoReflect.Descriptor instead.
func (*ExportReportResponse) Descriptor() ([]byte, []int) {
	return file_geoverify_v1_geoverify_proto_rawDescGZIP(), []int{8}
}

func (x *ExportReportResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

func (x *ExportReportResponse) GetSummary() string {
	if x != nil {
		return x.Summary
	}
	return ""
}

var File_geoverify_v1_geoverify_proto protoreflect.FileDescriptor

const file_geoverify_v1_geoverify_proto_rawDesc = "" +
	"\n" +
	"\x1cgeoverify/v1/geoverify.proto\x12\fgeoverify.v1\"J\n" +
	"\x18StartVerificationRequest\x12\x1a\n" +
	"\bprotocol\x18\x01 \x01(\x05R\bprotocol\x12\x12\n" +
	"\x04path\x18\x02 \x01(\tR\x04path\"\x95\x01\n" +
	"\x19StartVerificationResponse\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\x12 \n" +
	"\vdivergences\x18\x03 \x01(\x05R\vdivergences\x12'\n" +
	"\x0fdocuments_match\x18\x04 \x01(\bR\x0edocumentsMatch\"\x9e\x02\n" +
	"\x0fVerificationJob\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x17\n" +
	"\afile_id\x18\x02 \x01(\tR\x06fileId\x12\x1a\n" +
	"\bprotocol\x18\x03 \x01(\x05R\bprotocol\x12\x16\n" +
	"\x06status\x18\x04 \x01(\tR\x06status\x12\x1d\n" +
	"\n" +
	"started_at\x18\x05 \x01(\tR\tstartedAt\x12\x1f\n" +
	"\vfinished_at\x18\x06 \x01(\tR\n" +
	"finishedAt\x12#\n" +
	"\rerror_message\x18\a \x01(\tR\ferrorMessage\x12 \n" +
	"\vdivergences\x18\b \x01(\x05R\vdivergences\x12'\n" +
	"\x0fdocuments_match\x18\t \x01(\bR\x0edocumentsMatch\"/\n" +
	"\x16GetVerificationRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"s\n" +
	"\x17GetVerificationResponse\x12/\n" +
	"\x03job\x18\x01 \x01(\v2\x1d.geoverify.v1.VerificationJobR\x03job\x12'\n" +
	"\x0fcomparison_json\x18\x02 \x01(\tR\x0ecomparisonJson\"H\n" +
	"\x18ListVerificationsRequest\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\x12\x14\n" +
	"\x05limit\x18\x02 \x01(\x05R\x05limit\"N\n" +
	"\x19ListVerificationsResponse\x121\n" +
	"\x04jobs\x18\x01 \x03(\v2\x1d.geoverify.v1.VerificationJobR\x04jobs\",\n" +
	"\x13ExportReportRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"D\n" +
	"\x14ExportReportResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\x12\x18\n" +
	"\asummary\x18\x02 \x01(\tR\asummary2\x92\x03\n" +
	"\rVerifyService\x12d\n" +
	"\x11StartVerification\x12&.geoverify.v1.StartVerificationRequest\x1a'.geoverify.v1.StartVerificationResponse\x12^\n" +
	"\x0fGetVerification\x12$.geoverify.v1.GetVerificationRequest\x1a%.geoverify.v1.GetVerificationResponse\x12d\n" +
	"\x11ListVerifications\x12&.geoverify.v1.ListVerificationsRequest\x1a'.geoverify.v1.ListVerificationsResponse\x12U\n" +
	"\fExportReport\x12!.geoverify.v1.ExportReportRequest\x1a\".geoverify.v1.ExportReportResponseB?Z=github.com/lgasparetto/geoverify/gen/geoverify/v1;geoverifyv1b\x06proto3"

var (
	file_geoverify_v1_geoverify_proto_rawDescOnce sync.Once
	file_geoverify_v1_geoverify_proto_rawDescData []byte
)

func file_geoverify_v1_geoverify_proto_rawDescGZIP() []byte {
	file_geoverify_v1_geoverify_proto_rawDescOnce.Do(func() {
		file_geoverify_v1_geoverify_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_geoverify_v1_geoverify_proto_rawDesc), len(file_geoverify_v1_geoverify_proto_rawDesc)))
	})
	return file_geoverify_v1_geoverify_proto_rawDescData
}

var file_geoverify_v1_geoverify_proto_msgTypes = make([]protoimpl.MessageInfo, 9)
var file_geoverify_v1_geoverify_proto_goTypes = []any{
	(*StartVerificationRequest)(nil),  // 0: geoverify.v1.StartVerificationRequest
	(*StartVerificationResponse)(nil), // 1: geoverify.v1.StartVerificationResponse
	(*VerificationJob)(nil),           // 2: geoverify.v1.VerificationJob
	(*GetVerificationRequest)(nil),    // 3: geoverify.v1.GetVerificationRequest
	(*GetVerificationResponse)(nil),   // 4: geoverify.v1.GetVerificationResponse
	(*ListVerificationsRequest)(nil),  // 5: geoverify.v1.ListVerificationsRequest
	(*ListVerificationsResponse)(nil), // 6: geoverify.v1.ListVerificationsResponse
	(*ExportReportRequest)(nil),       // 7: geoverify.v1.ExportReportRequest
	(*ExportReportResponse)(nil),      // 8: geoverify.v1.ExportReportResponse
}
var file_geoverify_v1_geoverify_proto_depIdxs = []int32{
	2, // 0: geoverify.v1.GetVerificationResponse.job:type_name -> geoverify.v1.VerificationJob
	2, // 1: geoverify.v1.ListVerificationsResponse.jobs:type_name -> geoverify.v1.VerificationJob
	0, // 2: geoverify.v1.VerifyService.StartVerification:input_type -> geoverify.v1.StartVerificationRequest
	3, // 3: geoverify.v1.VerifyService.GetVerification:input_type -> geoverify.v1.GetVerificationRequest
	5, // 4: geoverify.v1.VerifyService.ListVerifications:input_type -> geoverify.v1.ListVerificationsRequest
	7, // 5: geoverify.v1.VerifyService.ExportReport:input_type -> geoverify.v1.ExportReportRequest
	1, // 6: geoverify.v1.VerifyService.StartVerification:output_type -> geoverify.v1.StartVerificationResponse
	4, // 7: geoverify.v1.VerifyService.GetVerification:output_type -> geoverify.v1.GetVerificationResponse
	6, // 8: geoverify.v1.VerifyService.ListVerifications:output_type -> geoverify.v1.ListVerificationsResponse
	8, // 9: geoverify.v1.VerifyService.ExportReport:output_type -> geoverify.v1.ExportReportResponse
	6, // [6:10] is the sub-list for method output_type
	2, // [2:6] is the sub-list for method input_type
	2, // [2:2] is the sub-list for extension type_name
	2, // [2:2] is the sub-list for extension extendee
	0, // [0:2] is the sub-list for field type_name
}

func init() { file_geoverify_v1_geoverify_proto_init() }
func file_geoverify_v1_geoverify_proto_init() {
	if File_geoverify_v1_geoverify_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_geoverify_v1_geoverify_proto_rawDesc), len(file_geoverify_v1_geoverify_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   9,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_geoverify_v1_geoverify_proto_goTypes,
		DependencyIndexes: file_geoverify_v1_geoverify_proto_depIdxs,
		MessageInfos:      file_geoverify_v1_geoverify_proto_msgTypes,
	}.Build()
	File_geoverify_v1_geoverify_proto = out.File
	file_geoverify_v1_geoverify_proto_goTypes = nil
	file_geoverify_v1_geoverify_proto_depIdxs = nil
}
