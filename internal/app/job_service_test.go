package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/VijeshVS/LocalHire-sub001/internal/common"
	"github.com/VijeshVS/LocalHire-sub001/internal/domain/application"
	"github.com/VijeshVS/LocalHire-sub001/internal/domain/job"
	"github.com/VijeshVS/LocalHire-sub001/internal/domain/worker"
)

func newJobFixture() (*JobService, *fakeJobRepo, *fakeApplicationRepo, *fakeWorkerRepo) {
	jobs := newFakeJobRepo()
	apps := newFakeApplicationRepo(jobs)
	workers := newFakeWorkerRepo()
	return NewJobService(jobs, apps, workers), jobs, apps, workers
}

func TestCreateJobValidation(t *testing.T) {
	svc, _, _, _ := newJobFixture()
	ctx := context.Background()

	_, err := svc.Create(ctx, job.Posting{Title: "   "})
	require.True(t, common.Is(err, common.CodeValidation))

	_, err = svc.Create(ctx, job.Posting{Title: "ok", Wage: -1})
	require.True(t, common.Is(err, common.CodeValidation))

	lat := 12.97
	_, err = svc.Create(ctx, job.Posting{Title: "ok", Latitude: &lat})
	require.True(t, common.Is(err, common.CodeValidation), "latitude without longitude is rejected")

	_, err = svc.Create(ctx, job.Posting{
		Title:              "ok",
		ScheduledDate:      "2026-09-01",
		ScheduledStartTime: "17:00",
		ScheduledEndTime:   "09:00",
	})
	require.True(t, common.Is(err, common.CodeValidation), "end before start is rejected")

	created, err := svc.Create(ctx, job.Posting{Title: "Garden cleanup", Wage: 500})
	require.NoError(t, err)
	require.True(t, created.IsActive, "new postings start active")
}

func TestUpdateJobOwnership(t *testing.T) {
	svc, jobs, _, _ := newJobFixture()
	ctx := context.Background()
	owner := common.NewUUID()
	intruder := common.NewUUID()
	posting := jobs.put(job.Posting{EmployerID: owner, Title: "Fence repair", IsActive: true})

	posting.EmployerID = intruder
	_, err := svc.Update(ctx, posting)
	require.True(t, common.Is(err, common.CodeForbidden))
}

func TestUpdateJobScheduleLockedAfterAccept(t *testing.T) {
	svc, jobs, apps, _ := newJobFixture()
	ctx := context.Background()
	owner := common.NewUUID()
	posting := jobs.put(job.Posting{
		EmployerID:         owner,
		Title:              "House painting",
		ScheduledDate:      "2026-09-01",
		ScheduledStartTime: "09:00",
		ScheduledEndTime:   "17:00",
		IsActive:           true,
	})

	created, err := apps.Create(ctx, application.Application{JobPostingID: posting.ID, EmployeeID: common.NewUUID(), Status: application.StatusApplied})
	require.NoError(t, err)

	// Before any accept the schedule is still editable.
	moved := posting
	moved.ScheduledStartTime = "10:00"
	_, err = svc.Update(ctx, moved)
	require.NoError(t, err)

	_, err = apps.UpdateStatus(ctx, created.ID, application.StatusAccepted, application.WorkStatusInProgress)
	require.NoError(t, err)

	moved.ScheduledStartTime = "11:00"
	_, err = svc.Update(ctx, moved)
	require.True(t, common.Is(err, common.CodeValidation))

	// Non-schedule fields stay editable after the accept.
	retitled, err := svc.Get(ctx, posting.ID)
	require.NoError(t, err)
	edit := *retitled
	edit.Title = "House painting, two coats"
	edit.Wage = 900
	updated, err := svc.Update(ctx, edit)
	require.NoError(t, err)
	require.Equal(t, "House painting, two coats", updated.Title)
}

func TestListApplicantsEnrichesWorkerSummary(t *testing.T) {
	svc, jobs, apps, workers := newJobFixture()
	ctx := context.Background()
	owner := common.NewUUID()
	posting := jobs.put(job.Posting{EmployerID: owner, Title: "Moving help", IsActive: true})
	w := workers.put(worker.Worker{Name: "Kiran", Skills: []string{"lifting"}, YearsOfExperience: 4, Rating: 4.5, Status: worker.StatusActive})

	_, err := apps.Create(ctx, application.Application{JobPostingID: posting.ID, EmployeeID: w.ID, Status: application.StatusApplied})
	require.NoError(t, err)

	_, err = svc.ListApplicants(ctx, posting.ID, common.NewUUID())
	require.True(t, common.Is(err, common.CodeForbidden))

	items, err := svc.ListApplicants(ctx, posting.ID, owner)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "Kiran", items[0].WorkerName)
	require.Equal(t, []string{"lifting"}, items[0].WorkerSkills)
	require.Equal(t, 4, items[0].WorkerExperience)
	require.Equal(t, 4.5, items[0].WorkerRatingValue)
}

func TestSetActiveRequiresOwnership(t *testing.T) {
	svc, jobs, _, _ := newJobFixture()
	ctx := context.Background()
	owner := common.NewUUID()
	posting := jobs.put(job.Posting{EmployerID: owner, Title: "Gutter cleaning", IsActive: true})

	_, err := svc.SetActive(ctx, posting.ID, common.NewUUID(), false)
	require.True(t, common.Is(err, common.CodeForbidden))

	updated, err := svc.SetActive(ctx, posting.ID, owner, false)
	require.NoError(t, err)
	require.False(t, updated.IsActive)
}
