package app

import (
	"context"
	"time"

	"github.com/VijeshVS/LocalHire-sub001/internal/common"
	"github.com/VijeshVS/LocalHire-sub001/internal/domain/application"
	"github.com/VijeshVS/LocalHire-sub001/internal/domain/job"
	"github.com/VijeshVS/LocalHire-sub001/internal/schedule"
)

// WorkerApplication is a worker's application annotated with its posting and
// the conflict flags derived on each read.
type WorkerApplication struct {
	application.Application
	Job                       *job.Posting  `json:"job_posting,omitempty"`
	JobDeleted                bool          `json:"job_deleted,omitempty"`
	HasConflicts              bool          `json:"has_conflicts"`
	ConflictingApplicationIDs []common.UUID `json:"conflicting_application_ids,omitempty"`
}

// AcceptanceCheck is the advisory conflict report for accepting one job.
// It never blocks an accept; races with concurrent accepts are tolerated.
type AcceptanceCheck struct {
	CanAccept         bool          `json:"can_accept"`
	ConflictingJobIDs []common.UUID `json:"conflicting_jobs,omitempty"`
	Reason            string        `json:"conflict_reason,omitempty"`
}

// PendingConfirmation is an employer-facing row for a completed job awaiting
// confirmation.
type PendingConfirmation struct {
	ApplicationID   common.UUID `json:"application_id"`
	JobID           common.UUID `json:"job_id"`
	JobTitle        string      `json:"job_title"`
	WorkerID        common.UUID `json:"worker_id"`
	WorkerName      string      `json:"worker_name"`
	WorkerRating    float64     `json:"worker_rating"`
	CompletedAt     *time.Time  `json:"completed_at,omitempty"`
	CompletionNotes string      `json:"completion_notes,omitempty"`
	DaysPending     int         `json:"days_pending"`
}

func (s *ApplicationService) Get(ctx context.Context, id, callerID common.UUID) (*application.Application, error) {
	app, err := s.apps.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if app.EmployeeID != callerID {
		return nil, common.NewError(common.CodeForbidden, "application belongs to another worker", nil)
	}
	return app, nil
}

// ListByWorker returns the worker's applications newest first, each annotated
// with overlapping-commitment flags.
func (s *ApplicationService) ListByWorker(ctx context.Context, workerID common.UUID) ([]WorkerApplication, error) {
	apps, err := s.apps.ListByWorker(ctx, workerID)
	if err != nil {
		return nil, err
	}
	postings, err := s.postingsFor(ctx, apps)
	if err != nil {
		return nil, err
	}
	commitments := make([]schedule.Commitment, 0, len(apps))
	for _, app := range apps {
		if posting, ok := postings[app.JobPostingID]; ok {
			commitments = append(commitments, schedule.Commitment{Application: app, Posting: posting})
		}
	}
	reportsByID := make(map[common.UUID]schedule.ConflictReport)
	for _, report := range schedule.ConflictsAmong(commitments) {
		reportsByID[report.ApplicationID] = report
	}

	items := make([]WorkerApplication, 0, len(apps))
	for _, app := range apps {
		item := WorkerApplication{Application: app}
		if posting, ok := postings[app.JobPostingID]; ok {
			p := posting
			item.Job = &p
		} else {
			item.JobDeleted = true
		}
		if report, ok := reportsByID[app.ID]; ok {
			item.HasConflicts = report.HasConflicts
			item.ConflictingApplicationIDs = report.ConflictingApplicationIDs
		}
		items = append(items, item)
	}
	return items, nil
}

// ValidateAcceptance checks whether accepting the application's job would
// overlap an already accepted, not-yet-completed job for the same worker.
func (s *ApplicationService) ValidateAcceptance(ctx context.Context, applicationID, workerID common.UUID) (*AcceptanceCheck, error) {
	app, err := s.apps.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if app.EmployeeID != workerID {
		return nil, common.NewError(common.CodeForbidden, "application belongs to another worker", nil)
	}
	target, err := s.jobs.GetByID(ctx, app.JobPostingID)
	if err != nil {
		return nil, err
	}
	open, err := s.apps.ListOpenByWorker(ctx, workerID)
	if err != nil {
		return nil, err
	}
	postings, err := s.postingsFor(ctx, open)
	if err != nil {
		return nil, err
	}
	commitments := make([]schedule.Commitment, 0, len(open))
	for _, openApp := range open {
		if openApp.ID == app.ID {
			continue
		}
		if posting, ok := postings[openApp.JobPostingID]; ok {
			commitments = append(commitments, schedule.Commitment{Application: openApp, Posting: posting})
		}
	}
	conflicts := schedule.ConflictsWith(*target, commitments)
	check := &AcceptanceCheck{CanAccept: len(conflicts) == 0}
	for _, c := range conflicts {
		check.ConflictingJobIDs = append(check.ConflictingJobIDs, c.Posting.ID)
	}
	if !check.CanAccept {
		check.Reason = "overlaps an accepted job that is not completed yet"
	}
	return check, nil
}

// ListPendingConfirmations lists completed, unconfirmed applications on the
// employer's postings, oldest first, with days pending.
func (s *ApplicationService) ListPendingConfirmations(ctx context.Context, employerID common.UUID) ([]PendingConfirmation, error) {
	apps, err := s.apps.ListPendingConfirmation(ctx, employerID)
	if err != nil {
		return nil, err
	}
	postings, err := s.postingsFor(ctx, apps)
	if err != nil {
		return nil, err
	}
	now := s.now()
	items := make([]PendingConfirmation, 0, len(apps))
	for _, app := range apps {
		item := PendingConfirmation{
			ApplicationID:   app.ID,
			WorkerID:        app.EmployeeID,
			CompletedAt:     app.CompletedAt,
			CompletionNotes: app.CompletionNotes,
		}
		if posting, ok := postings[app.JobPostingID]; ok {
			item.JobID = posting.ID
			item.JobTitle = posting.Title
		}
		if w, err := s.workers.GetByID(ctx, app.EmployeeID); err == nil {
			item.WorkerName = w.Name
			item.WorkerRating = w.Rating
		}
		if app.CompletedAt != nil {
			item.DaysPending = int(now.Sub(*app.CompletedAt).Hours() / 24)
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *ApplicationService) postingsFor(ctx context.Context, apps []application.Application) (map[common.UUID]job.Posting, error) {
	seen := make(map[common.UUID]struct{}, len(apps))
	ids := make([]common.UUID, 0, len(apps))
	for _, app := range apps {
		if _, ok := seen[app.JobPostingID]; ok {
			continue
		}
		seen[app.JobPostingID] = struct{}{}
		ids = append(ids, app.JobPostingID)
	}
	if len(ids) == 0 {
		return map[common.UUID]job.Posting{}, nil
	}
	postings, err := s.jobs.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[common.UUID]job.Posting, len(postings))
	for _, posting := range postings {
		byID[posting.ID] = posting
	}
	return byID, nil
}
