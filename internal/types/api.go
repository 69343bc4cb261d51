package types

// GenerateRequest is the body of POST /api/generate-lp.
type GenerateRequest struct {
	SwipeResults []SwipeEvent       `json:"swipeResults"`
	Preferences  *PreferenceProfile `json:"preferences"`
}

// GenerateResponse acknowledges an accepted generation job.
type GenerateResponse struct {
	JobID  string `json:"jobId"`
	Status string `json:"status"`
}

// StatusResponse is the body of GET /api/generation-status.
type StatusResponse struct {
	Status   JobStatus `json:"status"`
	Progress int       `json:"progress"`
	Error    string    `json:"error,omitempty"`
}

// ResultResponse is the body of GET /api/get-result.
type ResultResponse struct {
	Code         string            `json:"code"`
	TemplateName string            `json:"templateName"`
	Variables    map[string]string `json:"variables"`
}
