package app

import (
	"context"
	"strings"

	"github.com/VijeshVS/LocalHire-sub001/internal/common"
	"github.com/VijeshVS/LocalHire-sub001/internal/domain/application"
	"github.com/VijeshVS/LocalHire-sub001/internal/domain/job"
	"github.com/VijeshVS/LocalHire-sub001/internal/domain/worker"
	"github.com/VijeshVS/LocalHire-sub001/internal/schedule"
)

type JobService struct {
	jobs    job.Repository
	apps    application.Repository
	workers worker.Repository
}

func NewJobService(jobs job.Repository, apps application.Repository, workers worker.Repository) *JobService {
	return &JobService{jobs: jobs, apps: apps, workers: workers}
}

func (s *JobService) Create(ctx context.Context, posting job.Posting) (*job.Posting, error) {
	if err := validatePosting(posting); err != nil {
		return nil, err
	}
	posting.IsActive = true
	return s.jobs.Create(ctx, posting)
}

// Update rejects changes to the scheduled window or location once any
// application on the posting has been accepted, so conflict and completion
// state cannot drift under accepted workers. Everything else stays editable.
func (s *JobService) Update(ctx context.Context, posting job.Posting) (*job.Posting, error) {
	existing, err := s.jobs.GetByID(ctx, posting.ID)
	if err != nil {
		return nil, err
	}
	if existing.EmployerID != posting.EmployerID {
		return nil, common.NewError(common.CodeForbidden, "job posting belongs to another employer", nil)
	}
	if err := validatePosting(posting); err != nil {
		return nil, err
	}
	if scheduleOrLocationChanged(*existing, posting) {
		accepted, err := s.apps.ExistsAcceptedForJob(ctx, posting.ID)
		if err != nil {
			return nil, err
		}
		if accepted {
			return nil, common.NewError(common.CodeValidation, "schedule and location are locked once an application is accepted", nil)
		}
	}
	posting.IsActive = existing.IsActive
	return s.jobs.Update(ctx, posting)
}

func (s *JobService) SetActive(ctx context.Context, id, employerID common.UUID, active bool) (*job.Posting, error) {
	return s.jobs.SetActive(ctx, id, employerID, active)
}

func (s *JobService) Get(ctx context.Context, id common.UUID) (*job.Posting, error) {
	return s.jobs.GetByID(ctx, id)
}

func (s *JobService) ListByEmployer(ctx context.Context, employerID common.UUID) ([]job.Posting, error) {
	return s.jobs.ListByEmployer(ctx, employerID)
}

// Applicant is an employer-facing row: one application plus a summary of the
// worker behind it.
type Applicant struct {
	application.Application
	WorkerName        string   `json:"worker_name"`
	WorkerSkills      []string `json:"worker_skills,omitempty"`
	WorkerExperience  int      `json:"worker_years_of_experience"`
	WorkerRatingValue float64  `json:"worker_rating_value"`
}

func (s *JobService) ListApplicants(ctx context.Context, jobID, employerID common.UUID) ([]Applicant, error) {
	posting, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if posting.EmployerID != employerID {
		return nil, common.NewError(common.CodeForbidden, "job posting belongs to another employer", nil)
	}
	apps, err := s.apps.ListByJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	items := make([]Applicant, 0, len(apps))
	for _, app := range apps {
		item := Applicant{Application: app}
		if w, err := s.workers.GetByID(ctx, app.EmployeeID); err == nil {
			item.WorkerName = w.Name
			item.WorkerSkills = w.Skills
			item.WorkerExperience = w.YearsOfExperience
			item.WorkerRatingValue = w.Rating
		}
		items = append(items, item)
	}
	return items, nil
}

func validatePosting(posting job.Posting) error {
	fields := map[string]string{}
	if strings.TrimSpace(posting.Title) == "" {
		fields["title"] = "title is required"
	}
	if posting.Wage < 0 {
		fields["wage"] = "wage must not be negative"
	}
	if posting.RadiusKM < 0 {
		fields["radius_km"] = "radius_km must not be negative"
	}
	if (posting.Latitude == nil) != (posting.Longitude == nil) {
		fields["location"] = "latitude and longitude must be provided together"
	}
	if posting.ScheduledDate != "" && posting.ScheduledStartTime != "" && posting.ScheduledEndTime != "" {
		start, startErr := schedule.ParseAt(posting.ScheduledDate, posting.ScheduledStartTime)
		end, endErr := schedule.ParseAt(posting.ScheduledDate, posting.ScheduledEndTime)
		if startErr != nil {
			fields["scheduled_start_time"] = "scheduled_start_time must be HH:MM on scheduled_date YYYY-MM-DD"
		}
		if endErr != nil {
			fields["scheduled_end_time"] = "scheduled_end_time must be HH:MM"
		}
		if startErr == nil && endErr == nil && !end.After(start) {
			fields["scheduled_end_time"] = "scheduled end must be after the start"
		}
	}
	if len(fields) > 0 {
		return common.NewValidationError("invalid job posting", fields)
	}
	return nil
}

func scheduleOrLocationChanged(before, after job.Posting) bool {
	if before.ScheduledDate != after.ScheduledDate ||
		before.ScheduledStartTime != after.ScheduledStartTime ||
		before.ScheduledEndTime != after.ScheduledEndTime {
		return true
	}
	if !floatPtrEqual(before.DurationHours, after.DurationHours) {
		return true
	}
	if !floatPtrEqual(before.Latitude, after.Latitude) || !floatPtrEqual(before.Longitude, after.Longitude) {
		return true
	}
	if before.ExpectedCompletionAt == nil != (after.ExpectedCompletionAt == nil) {
		return true
	}
	if before.ExpectedCompletionAt != nil && after.ExpectedCompletionAt != nil && !before.ExpectedCompletionAt.Equal(*after.ExpectedCompletionAt) {
		return true
	}
	return false
}

func floatPtrEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
