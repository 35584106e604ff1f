package app

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/VijeshVS/LocalHire-sub001/internal/common"
	"github.com/VijeshVS/LocalHire-sub001/internal/domain/application"
	"github.com/VijeshVS/LocalHire-sub001/internal/domain/job"
	"github.com/VijeshVS/LocalHire-sub001/internal/domain/worker"
	"github.com/VijeshVS/LocalHire-sub001/internal/notify"
	"github.com/VijeshVS/LocalHire-sub001/internal/schedule"
)

// ApplicationService owns the application lifecycle: submission, employer
// decision, worker-side completion and employer-side confirmation. All state
// lives in the store; every transition is a synchronous call.
type ApplicationService struct {
	apps     application.Repository
	jobs     job.Repository
	workers  worker.Repository
	ratings  *RatingService
	notifier notify.Notifier
	logger   *logrus.Logger
	now      func() time.Time
}

func NewApplicationService(apps application.Repository, jobs job.Repository, workers worker.Repository, ratings *RatingService, notifier notify.Notifier, logger *logrus.Logger) *ApplicationService {
	return &ApplicationService{
		apps:     apps,
		jobs:     jobs,
		workers:  workers,
		ratings:  ratings,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

// Apply creates an application in state applied. Duplicate submissions are
// rejected by the storage-layer unique constraint on (job, worker), so two
// concurrent calls leave exactly one row behind.
func (s *ApplicationService) Apply(ctx context.Context, jobID, workerID common.UUID) (*application.Application, error) {
	posting, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if !posting.IsActive {
		return nil, common.NewError(common.CodeValidation, "job posting is no longer active", nil)
	}
	created, err := s.apps.Create(ctx, application.Application{
		JobPostingID: jobID,
		EmployeeID:   workerID,
		Status:       application.StatusApplied,
	})
	if err != nil {
		return nil, err
	}
	_ = s.notifier.Notify(ctx, notify.Notification{
		UserID: posting.EmployerID,
		Kind:   "application.created",
		Title:  "New application for " + posting.Title,
		Data:   map[string]string{"application_id": created.ID.String(), "job_id": jobID.String()},
	})
	return created, nil
}

// Decide applies an employer decision. Allowed moves are
// applied|shortlisted -> shortlisted|accepted|rejected; accepted and rejected
// are final. Re-deciding the current status is a harmless no-op write.
func (s *ApplicationService) Decide(ctx context.Context, applicationID common.UUID, status application.Status, employerID common.UUID) (*application.Application, error) {
	app, err := s.apps.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	posting, err := s.jobs.GetByID(ctx, app.JobPostingID)
	if err != nil {
		return nil, err
	}
	if posting.EmployerID != employerID {
		return nil, common.NewError(common.CodeForbidden, "application belongs to another employer", nil)
	}
	next := application.Status(strings.ToLower(strings.TrimSpace(string(status))))
	if !isKnownStatus(next) {
		return nil, common.NewValidationError("invalid status", map[string]string{"status": "status must be applied, shortlisted, accepted, or rejected"})
	}
	if next == app.Status {
		return s.apps.UpdateStatus(ctx, applicationID, next, app.WorkStatus)
	}
	if !isAllowedTransition(app.Status, next) {
		return nil, common.NewError(common.CodeValidation, "invalid status transition", nil)
	}
	workStatus := app.WorkStatus
	if next == application.StatusAccepted {
		workStatus = application.WorkStatusInProgress
	}
	updated, err := s.apps.UpdateStatus(ctx, applicationID, next, workStatus)
	if err != nil {
		return nil, err
	}
	switch next {
	case application.StatusAccepted:
		_ = s.notifier.Notify(ctx, notify.Notification{
			UserID: app.EmployeeID,
			Kind:   "application.accepted",
			Title:  "You were hired for " + posting.Title,
			Data:   map[string]string{"application_id": app.ID.String(), "job_id": posting.ID.String()},
		})
	case application.StatusRejected:
		_ = s.notifier.Notify(ctx, notify.Notification{
			UserID: app.EmployeeID,
			Kind:   "application.rejected",
			Title:  "Update on your application for " + posting.Title,
			Data:   map[string]string{"application_id": app.ID.String()},
		})
	}
	return updated, nil
}

func isAllowedTransition(from, to application.Status) bool {
	switch from {
	case application.StatusApplied, application.StatusShortlisted:
		return to == application.StatusShortlisted || to == application.StatusAccepted || to == application.StatusRejected
	default:
		return false
	}
}

func isKnownStatus(status application.Status) bool {
	switch status {
	case application.StatusApplied, application.StatusShortlisted, application.StatusAccepted, application.StatusRejected:
		return true
	default:
		return false
	}
}

// Withdraw deletes the worker's own application while it is still pending.
// Withdrawing after a decision is not supported.
func (s *ApplicationService) Withdraw(ctx context.Context, applicationID, workerID common.UUID) error {
	app, err := s.apps.GetByID(ctx, applicationID)
	if err != nil {
		return err
	}
	if app.EmployeeID != workerID {
		return common.NewError(common.CodeForbidden, "application belongs to another worker", nil)
	}
	if app.Status != application.StatusApplied {
		return common.NewError(common.CodeValidation, "only pending applications can be withdrawn", nil)
	}
	return s.apps.Delete(ctx, applicationID)
}

// MarkCompleted is the worker-side completion. It is gated by the posting's
// scheduled window; the worker's rating of the employer is stored verbatim
// and the employer's displayed rating is recomputed as a side effect.
func (s *ApplicationService) MarkCompleted(ctx context.Context, applicationID, workerID common.UUID, notes string, rating *int, review string) (*application.Application, error) {
	app, err := s.apps.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if app.EmployeeID != workerID {
		return nil, common.NewError(common.CodeForbidden, "application belongs to another worker", nil)
	}
	if app.Status != application.StatusAccepted {
		return nil, common.NewError(common.CodeValidation, "can only complete accepted jobs", nil)
	}
	if app.WorkStatus == application.WorkStatusCompleted {
		return nil, common.NewError(common.CodeValidation, "job is already marked as completed", nil)
	}
	if err := validateRating(rating, false); err != nil {
		return nil, err
	}
	posting, err := s.jobs.GetByID(ctx, app.JobPostingID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	gate := schedule.CanMarkComplete(*posting, now)
	if !gate.Allowed {
		details := map[string]string{"wait_remaining": schedule.FormatWait(gate.WaitRemaining)}
		if gate.EffectiveEnd != nil {
			details["scheduled_end"] = gate.EffectiveEnd.Format(time.RFC3339)
		}
		return nil, common.NewErrorWithDetails(common.CodeTooEarly, "cannot mark job as complete before its scheduled end", details, nil)
	}
	updated, err := s.apps.MarkCompleted(ctx, applicationID, application.CompletionUpdate{
		CompletedAt:    now.UTC(),
		Notes:          notes,
		EmployerRating: rating,
		EmployerReview: review,
	})
	if err != nil {
		return nil, err
	}
	if rating != nil {
		if _, err := s.ratings.RecomputeEmployer(ctx, posting.EmployerID); err != nil {
			s.logger.WithError(err).WithField("employer_id", posting.EmployerID.String()).Warn("employer rating recompute failed")
		}
	}
	_ = s.notifier.Notify(ctx, notify.Notification{
		UserID: posting.EmployerID,
		Kind:   "application.completed",
		Title:  "Work completed on " + posting.Title + ", confirmation needed",
		Data:   map[string]string{"application_id": app.ID.String(), "job_id": posting.ID.String()},
	})
	return updated, nil
}

// ConfirmCompletion is the employer-side confirmation. The confirmation
// write is the correctness-critical step; a failed rating recompute is
// logged and left for a re-run, never rolled back into the confirmation.
func (s *ApplicationService) ConfirmCompletion(ctx context.Context, applicationID, employerID common.UUID, rating *int, review string) (*application.Application, error) {
	app, err := s.apps.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	posting, err := s.jobs.GetByID(ctx, app.JobPostingID)
	if err != nil {
		return nil, err
	}
	if posting.EmployerID != employerID {
		return nil, common.NewError(common.CodeForbidden, "application belongs to another employer", nil)
	}
	if app.WorkStatus != application.WorkStatusCompleted {
		return nil, common.NewError(common.CodeValidation, "worker must mark the job as completed first", nil)
	}
	if err := validateRating(rating, true); err != nil {
		return nil, err
	}
	updated, err := s.apps.ConfirmCompletion(ctx, applicationID, application.ConfirmationUpdate{
		WorkerRating: rating,
		WorkerReview: review,
	})
	if err != nil {
		return nil, err
	}
	if _, err := s.ratings.RecomputeWorker(ctx, app.EmployeeID); err != nil {
		s.logger.WithError(err).WithField("worker_id", app.EmployeeID.String()).Warn("worker rating recompute failed")
	}
	_ = s.notifier.Notify(ctx, notify.Notification{
		UserID: app.EmployeeID,
		Kind:   "application.confirmed",
		Title:  "Your work on " + posting.Title + " was confirmed",
		Data:   map[string]string{"application_id": app.ID.String()},
	})
	return updated, nil
}

func validateRating(rating *int, required bool) error {
	if rating == nil {
		if required {
			return common.NewValidationError("rating is required", map[string]string{"rating": "rating is required"})
		}
		return nil
	}
	if *rating < 1 || *rating > 5 {
		return common.NewValidationError("invalid rating", map[string]string{"rating": "rating must be between 1 and 5"})
	}
	return nil
}
