package models

type JobStatus string

const (
	JobStatusPending    JobStatus = "pending"
	JobStatusProcessing JobStatus = "processing"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
)

// Terminal reports whether no further transitions are possible.
func (s JobStatus) Terminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed
}

// CanTransitionTo enforces the forward-only job state machine:
// pending -> processing -> completed | failed.
func (s JobStatus) CanTransitionTo(next JobStatus) bool {
	switch s {
	case JobStatusPending:
		return next == JobStatusProcessing
	case JobStatusProcessing:
		return next == JobStatusCompleted || next == JobStatusFailed
	}
	return false
}

type Job struct {
	ID     string          `json:"id"`
	Status JobStatus       `json:"status"`
	Result *CampaignResult `json:"result,omitempty"`
	Error  string          `json:"error,omitempty"`

	// Request is the immutable submission the executor runs from. It is
	// kept out of status responses.
	Request *CampaignRequest `json:"-"`
}
