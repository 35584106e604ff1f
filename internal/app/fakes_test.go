package app

import (
	"context"
	"sync"
	"time"

	"github.com/VijeshVS/LocalHire-sub001/internal/common"
	"github.com/VijeshVS/LocalHire-sub001/internal/domain/application"
	"github.com/VijeshVS/LocalHire-sub001/internal/domain/employer"
	"github.com/VijeshVS/LocalHire-sub001/internal/domain/job"
	"github.com/VijeshVS/LocalHire-sub001/internal/domain/worker"
	"github.com/VijeshVS/LocalHire-sub001/internal/notify"
)

type fakeApplicationRepo struct {
	mu   sync.Mutex
	apps map[common.UUID]*application.Application
	jobs *fakeJobRepo
}

func newFakeApplicationRepo(jobs *fakeJobRepo) *fakeApplicationRepo {
	return &fakeApplicationRepo{apps: make(map[common.UUID]*application.Application), jobs: jobs}
}

func (r *fakeApplicationRepo) Create(ctx context.Context, app application.Application) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.apps {
		if existing.JobPostingID == app.JobPostingID && existing.EmployeeID == app.EmployeeID {
			return nil, common.NewError(common.CodeConflict, "you have already applied for this job", nil)
		}
	}
	app.ID = common.NewUUID()
	app.AppliedAt = time.Now().UTC()
	app.UpdatedAt = app.AppliedAt
	stored := app
	r.apps[app.ID] = &stored
	copied := stored
	return &copied, nil
}

func (r *fakeApplicationRepo) GetByID(ctx context.Context, id common.UUID) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	app, ok := r.apps[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "application not found", nil)
	}
	copied := *app
	return &copied, nil
}

func (r *fakeApplicationRepo) ListByWorker(ctx context.Context, workerID common.UUID) ([]application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []application.Application
	for _, app := range r.apps {
		if app.EmployeeID == workerID {
			items = append(items, *app)
		}
	}
	return items, nil
}

func (r *fakeApplicationRepo) ListByJob(ctx context.Context, jobID common.UUID) ([]application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []application.Application
	for _, app := range r.apps {
		if app.JobPostingID == jobID {
			items = append(items, *app)
		}
	}
	return items, nil
}

func (r *fakeApplicationRepo) ListOpenByWorker(ctx context.Context, workerID common.UUID) ([]application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []application.Application
	for _, app := range r.apps {
		if app.EmployeeID == workerID && app.IsOpenCommitment() {
			items = append(items, *app)
		}
	}
	return items, nil
}

func (r *fakeApplicationRepo) ListPendingConfirmation(ctx context.Context, employerID common.UUID) ([]application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []application.Application
	for _, app := range r.apps {
		if !app.EmployerConfirmationPending {
			continue
		}
		posting, err := r.jobs.GetByID(ctx, app.JobPostingID)
		if err != nil || posting.EmployerID != employerID {
			continue
		}
		items = append(items, *app)
	}
	return items, nil
}

func (r *fakeApplicationRepo) ExistsAcceptedForJob(ctx context.Context, jobID common.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, app := range r.apps {
		if app.JobPostingID == jobID && app.Status == application.StatusAccepted {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeApplicationRepo) UpdateStatus(ctx context.Context, id common.UUID, status application.Status, workStatus application.WorkStatus) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	app, ok := r.apps[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "application not found", nil)
	}
	app.Status = status
	app.WorkStatus = workStatus
	app.UpdatedAt = time.Now().UTC()
	copied := *app
	return &copied, nil
}

func (r *fakeApplicationRepo) MarkCompleted(ctx context.Context, id common.UUID, update application.CompletionUpdate) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	app, ok := r.apps[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "application not found", nil)
	}
	completedAt := update.CompletedAt
	app.WorkStatus = application.WorkStatusCompleted
	app.EmployerConfirmationPending = true
	app.CompletedAt = &completedAt
	app.CompletionNotes = update.Notes
	app.EmployerRating = update.EmployerRating
	app.EmployerReview = update.EmployerReview
	app.UpdatedAt = time.Now().UTC()
	copied := *app
	return &copied, nil
}

func (r *fakeApplicationRepo) ConfirmCompletion(ctx context.Context, id common.UUID, update application.ConfirmationUpdate) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	app, ok := r.apps[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "application not found", nil)
	}
	app.EmployerConfirmationPending = false
	app.WorkerRating = update.WorkerRating
	app.WorkerReview = update.WorkerReview
	app.UpdatedAt = time.Now().UTC()
	copied := *app
	return &copied, nil
}

func (r *fakeApplicationRepo) Delete(ctx context.Context, id common.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.apps[id]; !ok {
		return common.NewError(common.CodeNotFound, "application not found", nil)
	}
	delete(r.apps, id)
	return nil
}

func (r *fakeApplicationRepo) WorkerRatings(ctx context.Context, workerID common.UUID) ([]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var ratings []int
	for _, app := range r.apps {
		if app.EmployeeID == workerID && app.WorkerRating != nil {
			ratings = append(ratings, *app.WorkerRating)
		}
	}
	return ratings, nil
}

func (r *fakeApplicationRepo) EmployerRatings(ctx context.Context, employerID common.UUID) ([]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var ratings []int
	for _, app := range r.apps {
		if app.EmployerRating == nil {
			continue
		}
		posting, err := r.jobs.GetByID(ctx, app.JobPostingID)
		if err != nil || posting.EmployerID != employerID {
			continue
		}
		ratings = append(ratings, *app.EmployerRating)
	}
	return ratings, nil
}

type fakeJobRepo struct {
	mu       sync.Mutex
	postings map[common.UUID]*job.Posting
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{postings: make(map[common.UUID]*job.Posting)}
}

func (r *fakeJobRepo) put(p job.Posting) job.Posting {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID == "" {
		p.ID = common.NewUUID()
	}
	stored := p
	r.postings[p.ID] = &stored
	return stored
}

func (r *fakeJobRepo) Create(ctx context.Context, posting job.Posting) (*job.Posting, error) {
	posting.CreatedAt = time.Now().UTC()
	posting.UpdatedAt = posting.CreatedAt
	stored := r.put(posting)
	return &stored, nil
}

func (r *fakeJobRepo) Update(ctx context.Context, posting job.Posting) (*job.Posting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.postings[posting.ID]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "job posting not found", nil)
	}
	posting.CreatedAt = existing.CreatedAt
	posting.UpdatedAt = time.Now().UTC()
	stored := posting
	r.postings[posting.ID] = &stored
	copied := stored
	return &copied, nil
}

func (r *fakeJobRepo) GetByID(ctx context.Context, id common.UUID) (*job.Posting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	posting, ok := r.postings[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "job posting not found", nil)
	}
	copied := *posting
	return &copied, nil
}

func (r *fakeJobRepo) ListByIDs(ctx context.Context, ids []common.UUID) ([]job.Posting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []job.Posting
	for _, id := range ids {
		if posting, ok := r.postings[id]; ok {
			items = append(items, *posting)
		}
	}
	return items, nil
}

func (r *fakeJobRepo) ListByEmployer(ctx context.Context, employerID common.UUID) ([]job.Posting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []job.Posting
	for _, posting := range r.postings {
		if posting.EmployerID == employerID {
			items = append(items, *posting)
		}
	}
	return items, nil
}

func (r *fakeJobRepo) ListActive(ctx context.Context) ([]job.Posting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []job.Posting
	for _, posting := range r.postings {
		if posting.IsActive {
			items = append(items, *posting)
		}
	}
	return items, nil
}

func (r *fakeJobRepo) SetActive(ctx context.Context, id, employerID common.UUID, active bool) (*job.Posting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	posting, ok := r.postings[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "job posting not found", nil)
	}
	if posting.EmployerID != employerID {
		return nil, common.NewError(common.CodeForbidden, "job posting belongs to another employer", nil)
	}
	posting.IsActive = active
	posting.UpdatedAt = time.Now().UTC()
	copied := *posting
	return &copied, nil
}

type fakeWorkerRepo struct {
	mu      sync.Mutex
	workers map[common.UUID]*worker.Worker
}

func newFakeWorkerRepo() *fakeWorkerRepo {
	return &fakeWorkerRepo{workers: make(map[common.UUID]*worker.Worker)}
}

func (r *fakeWorkerRepo) put(w worker.Worker) worker.Worker {
	r.mu.Lock()
	defer r.mu.Unlock()
	if w.ID == "" {
		w.ID = common.NewUUID()
	}
	stored := w
	r.workers[w.ID] = &stored
	return stored
}

func (r *fakeWorkerRepo) GetByID(ctx context.Context, id common.UUID) (*worker.Worker, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.workers[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "worker not found", nil)
	}
	copied := *w
	return &copied, nil
}

func (r *fakeWorkerRepo) ListActive(ctx context.Context) ([]worker.Worker, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []worker.Worker
	for _, w := range r.workers {
		if w.Status == worker.StatusActive {
			items = append(items, *w)
		}
	}
	return items, nil
}

func (r *fakeWorkerRepo) UpdateRating(ctx context.Context, id common.UUID, rating float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.workers[id]
	if !ok {
		return common.NewError(common.CodeNotFound, "worker not found", nil)
	}
	w.Rating = rating
	return nil
}

type fakeEmployerRepo struct {
	mu        sync.Mutex
	employers map[common.UUID]*employer.Employer
}

func newFakeEmployerRepo() *fakeEmployerRepo {
	return &fakeEmployerRepo{employers: make(map[common.UUID]*employer.Employer)}
}

func (r *fakeEmployerRepo) put(e employer.Employer) employer.Employer {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e.ID == "" {
		e.ID = common.NewUUID()
	}
	stored := e
	r.employers[e.ID] = &stored
	return stored
}

func (r *fakeEmployerRepo) GetByID(ctx context.Context, id common.UUID) (*employer.Employer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.employers[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "employer not found", nil)
	}
	copied := *e
	return &copied, nil
}

func (r *fakeEmployerRepo) UpdateRating(ctx context.Context, id common.UUID, rating float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.employers[id]
	if !ok {
		return common.NewError(common.CodeNotFound, "employer not found", nil)
	}
	e.Rating = rating
	return nil
}

type fakeNotifier struct {
	mu   sync.Mutex
	sent []notify.Notification
}

func (n *fakeNotifier) Notify(ctx context.Context, notification notify.Notification) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, notification)
	return nil
}

func (n *fakeNotifier) kinds() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	kinds := make([]string, 0, len(n.sent))
	for _, notification := range n.sent {
		kinds = append(kinds, notification.Kind)
	}
	return kinds
}
