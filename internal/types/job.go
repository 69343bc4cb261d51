package types

// JobStatus is the lifecycle state of a generation job.
type JobStatus string

const (
	StatusPending    JobStatus = "pending"
	StatusProcessing JobStatus = "processing"
	StatusCompleted  JobStatus = "completed"
	StatusError      JobStatus = "error"
)

// Terminal reports whether no further transitions are possible.
func (s JobStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusError
}

// JobResult is the assembled document, only visible once the job completes.
type JobResult struct {
	HTML         string            `json:"html"`
	TemplateName string            `json:"templateName"`
	Variables    map[string]string `json:"variables"`
}

// JobMetadata is the request payload captured at job creation.
type JobMetadata struct {
	SwipeResults []SwipeEvent       `json:"swipeResults"`
	Preferences  *PreferenceProfile `json:"preferences"`
}

// Job is the TTL-bounded lifecycle record owned by the job store.
// Timestamps are unix milliseconds.
type Job struct {
	ID        string       `json:"id"`
	Status    JobStatus    `json:"status"`
	Progress  int          `json:"progress"`
	Result    *JobResult   `json:"result,omitempty"`
	Error     string       `json:"error,omitempty"`
	CreatedAt int64        `json:"createdAt"`
	UpdatedAt int64        `json:"updatedAt"`
	Metadata  *JobMetadata `json:"metadata,omitempty"`
}
