package constants

// JobStatus is the canonical status for rows in extract_job.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusQueued  JobStatus = "QUEUED"   // queued for processing
	JobStatusRunning JobStatus = "RUNNING"  // in progress
	JobStatusInferOK JobStatus = "INFER_OK" // stage 1 completed (model reply persisted)
	JobStatusParseOK JobStatus = "PARSE_OK" // stage 2 completed (records extracted and saved)
	JobStatusFailed  JobStatus = "FAILED"   // terminal failure
)

// AllStatuses lists every status value the extract_job schema accepts.
var AllStatuses = []string{
	string(JobStatusQueued),
	string(JobStatusRunning),
	string(JobStatusInferOK),
	string(JobStatusParseOK),
	string(JobStatusFailed),
}
