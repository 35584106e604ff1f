package application

import (
	"context"
	"time"

	"github.com/VijeshVS/LocalHire-sub001/internal/common"
)

// CompletionUpdate is the worker-side completion write.
type CompletionUpdate struct {
	CompletedAt    time.Time
	Notes          string
	EmployerRating *int
	EmployerReview string
}

// ConfirmationUpdate is the employer-side confirmation write.
type ConfirmationUpdate struct {
	WorkerRating *int
	WorkerReview string
}

type Repository interface {
	// Create inserts a new application; a unique-constraint violation on
	// (job_posting_id, employee_id) must surface as common.CodeConflict.
	Create(ctx context.Context, app Application) (*Application, error)
	GetByID(ctx context.Context, id common.UUID) (*Application, error)
	ListByWorker(ctx context.Context, workerID common.UUID) ([]Application, error)
	ListByJob(ctx context.Context, jobID common.UUID) ([]Application, error)
	ListOpenByWorker(ctx context.Context, workerID common.UUID) ([]Application, error)
	ListPendingConfirmation(ctx context.Context, employerID common.UUID) ([]Application, error)
	ExistsAcceptedForJob(ctx context.Context, jobID common.UUID) (bool, error)
	UpdateStatus(ctx context.Context, id common.UUID, status Status, workStatus WorkStatus) (*Application, error)
	MarkCompleted(ctx context.Context, id common.UUID, update CompletionUpdate) (*Application, error)
	ConfirmCompletion(ctx context.Context, id common.UUID, update ConfirmationUpdate) (*Application, error)
	Delete(ctx context.Context, id common.UUID) error
	WorkerRatings(ctx context.Context, workerID common.UUID) ([]int, error)
	EmployerRatings(ctx context.Context, employerID common.UUID) ([]int, error)
}
