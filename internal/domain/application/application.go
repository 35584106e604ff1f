package application

import (
	"time"

	"github.com/VijeshVS/LocalHire-sub001/internal/common"
)

// Status is the employer-controlled decision state.
type Status string

const (
	StatusApplied     Status = "applied"
	StatusShortlisted Status = "shortlisted"
	StatusAccepted    Status = "accepted"
	StatusRejected    Status = "rejected"
)

// WorkStatus is the execution sub-state, meaningful only once accepted.
type WorkStatus string

const (
	WorkStatusNone       WorkStatus = ""
	WorkStatusInProgress WorkStatus = "in_progress"
	WorkStatusCompleted  WorkStatus = "completed"
)

// Application records one worker's interest in one job posting. Exactly one
// application may exist per (job, worker) pair; the storage layer enforces
// this with a unique constraint.
type Application struct {
	ID                          common.UUID `json:"id"`
	JobPostingID                common.UUID `json:"job_posting_id"`
	EmployeeID                  common.UUID `json:"employee_id"`
	Status                      Status      `json:"status"`
	WorkStatus                  WorkStatus  `json:"work_status,omitempty"`
	EmployerConfirmationPending bool        `json:"employer_confirmation_pending"`
	AppliedAt                   time.Time   `json:"applied_at"`
	CompletedAt                 *time.Time  `json:"completed_at,omitempty"`
	CompletionNotes             string      `json:"completion_notes,omitempty"`
	EmployerRating              *int        `json:"employer_rating,omitempty"`
	EmployerReview              string      `json:"employer_review,omitempty"`
	WorkerRating                *int        `json:"worker_rating,omitempty"`
	WorkerReview                string      `json:"worker_review,omitempty"`
	UpdatedAt                   time.Time   `json:"updated_at"`
}

func (a Application) IsOpenCommitment() bool {
	return a.Status == StatusAccepted && a.WorkStatus != WorkStatusCompleted
}
