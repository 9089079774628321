package constants

// JobStatus is the canonical status for rows in verify_job.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusQueued    JobStatus = "QUEUED"     // queued for processing
	JobStatusRunning   JobStatus = "RUNNING"    // in progress
	JobStatusExtractOK JobStatus = "EXTRACT_OK" // stage 1 completed (both tables extracted)
	JobStatusCompared  JobStatus = "COMPARED"   // stage 2 completed (diff produced)
	JobStatusFailed    JobStatus = "FAILED"     // terminal failure
)

// JobStatuses holds the allowed values for the status field in verify_jobs.
var JobStatuses = []string{
	string(JobStatusQueued),
	string(JobStatusRunning),
	string(JobStatusExtractOK),
	string(JobStatusCompared),
	string(JobStatusFailed),
}
