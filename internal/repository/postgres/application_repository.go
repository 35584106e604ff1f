package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	"github.com/VijeshVS/LocalHire-sub001/internal/common"
	"github.com/VijeshVS/LocalHire-sub001/internal/domain/application"
)

const applicationColumns = `id, job_posting_id, employee_id, status, work_status, employer_confirmation_pending,
	applied_at, completed_at, completion_notes, employer_rating, employer_review, worker_rating, worker_review, updated_at`

type ApplicationRepository struct {
	db *sql.DB
}

func NewApplicationRepository(db *sql.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Create(ctx context.Context, app application.Application) (*application.Application, error) {
	app.ID = common.NewUUID()
	now := time.Now().UTC()
	app.AppliedAt = now
	app.UpdatedAt = now
	_, err := r.db.ExecContext(ctx, `INSERT INTO job_applications (id, job_posting_id, employee_id, status, applied_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		app.ID, app.JobPostingID, app.EmployeeID, app.Status, app.AppliedAt, app.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, common.NewError(common.CodeConflict, "already applied for this job", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to create application", err)
	}
	return &app, nil
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id common.UUID) (*application.Application, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+applicationColumns+` FROM job_applications WHERE id = $1`, id)
	app, err := scanApplication(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "application not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load application", err)
	}
	return app, nil
}

func (r *ApplicationRepository) ListByWorker(ctx context.Context, workerID common.UUID) ([]application.Application, error) {
	return r.list(ctx, `SELECT `+applicationColumns+` FROM job_applications WHERE employee_id = $1 ORDER BY applied_at DESC`, workerID)
}

func (r *ApplicationRepository) ListByJob(ctx context.Context, jobID common.UUID) ([]application.Application, error) {
	return r.list(ctx, `SELECT `+applicationColumns+` FROM job_applications WHERE job_posting_id = $1 ORDER BY applied_at DESC`, jobID)
}

func (r *ApplicationRepository) ListOpenByWorker(ctx context.Context, workerID common.UUID) ([]application.Application, error) {
	return r.list(ctx, `SELECT `+applicationColumns+` FROM job_applications
		WHERE employee_id = $1 AND status = 'accepted' AND (work_status IS NULL OR work_status <> 'completed')`, workerID)
}

func (r *ApplicationRepository) ListPendingConfirmation(ctx context.Context, employerID common.UUID) ([]application.Application, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT a.id, a.job_posting_id, a.employee_id, a.status, a.work_status, a.employer_confirmation_pending,
			a.applied_at, a.completed_at, a.completion_notes, a.employer_rating, a.employer_review, a.worker_rating, a.worker_review, a.updated_at
		FROM job_applications a
		JOIN job_postings j ON j.id = a.job_posting_id
		WHERE j.employer_id = $1 AND a.work_status = 'completed' AND a.employer_confirmation_pending
		ORDER BY a.completed_at ASC`, employerID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list pending confirmations", err)
	}
	defer rows.Close()
	return collectApplications(rows)
}

func (r *ApplicationRepository) ExistsAcceptedForJob(ctx context.Context, jobID common.UUID) (bool, error) {
	row := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM job_applications WHERE job_posting_id = $1 AND status = 'accepted')`, jobID)
	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, common.NewError(common.CodeInternal, "failed to check accepted applications", err)
	}
	return exists, nil
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id common.UUID, status application.Status, workStatus application.WorkStatus) (*application.Application, error) {
	_, err := r.db.ExecContext(ctx, `UPDATE job_applications SET status = $1, work_status = NULLIF($2, ''), updated_at = $3 WHERE id = $4`,
		status, string(workStatus), time.Now().UTC(), id)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update application status", err)
	}
	return r.GetByID(ctx, id)
}

func (r *ApplicationRepository) MarkCompleted(ctx context.Context, id common.UUID, update application.CompletionUpdate) (*application.Application, error) {
	_, err := r.db.ExecContext(ctx, `UPDATE job_applications
		SET work_status = 'completed', completed_at = $1, completion_notes = NULLIF($2, ''),
			employer_rating = $3, employer_review = NULLIF($4, ''), employer_confirmation_pending = TRUE, updated_at = $5
		WHERE id = $6`,
		update.CompletedAt, update.Notes, update.EmployerRating, update.EmployerReview, time.Now().UTC(), id)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to mark application completed", err)
	}
	return r.GetByID(ctx, id)
}

func (r *ApplicationRepository) ConfirmCompletion(ctx context.Context, id common.UUID, update application.ConfirmationUpdate) (*application.Application, error) {
	_, err := r.db.ExecContext(ctx, `UPDATE job_applications
		SET worker_rating = $1, worker_review = NULLIF($2, ''), employer_confirmation_pending = FALSE, updated_at = $3
		WHERE id = $4`,
		update.WorkerRating, update.WorkerReview, time.Now().UTC(), id)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to confirm completion", err)
	}
	return r.GetByID(ctx, id)
}

func (r *ApplicationRepository) Delete(ctx context.Context, id common.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM job_applications WHERE id = $1`, id)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to delete application", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return common.NewError(common.CodeNotFound, "application not found", sql.ErrNoRows)
	}
	return nil
}

func (r *ApplicationRepository) WorkerRatings(ctx context.Context, workerID common.UUID) ([]int, error) {
	return r.ratings(ctx, `SELECT worker_rating FROM job_applications WHERE employee_id = $1 AND worker_rating IS NOT NULL`, workerID)
}

func (r *ApplicationRepository) EmployerRatings(ctx context.Context, employerID common.UUID) ([]int, error) {
	return r.ratings(ctx, `SELECT a.employer_rating FROM job_applications a
		JOIN job_postings j ON j.id = a.job_posting_id
		WHERE j.employer_id = $1 AND a.employer_rating IS NOT NULL`, employerID)
}

func (r *ApplicationRepository) ratings(ctx context.Context, query string, id common.UUID) ([]int, error) {
	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to load ratings", err)
	}
	defer rows.Close()
	var ratings []int
	for rows.Next() {
		var rating int
		if err := rows.Scan(&rating); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan rating", err)
		}
		ratings = append(ratings, rating)
	}
	return ratings, rows.Err()
}

func (r *ApplicationRepository) list(ctx context.Context, query string, args ...any) ([]application.Application, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list applications", err)
	}
	defer rows.Close()
	return collectApplications(rows)
}

func collectApplications(rows *sql.Rows) ([]application.Application, error) {
	var items []application.Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan application", err)
		}
		items = append(items, *app)
	}
	return items, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanApplication(row rowScanner) (*application.Application, error) {
	var (
		app             application.Application
		workStatus      sql.NullString
		completedAt     sql.NullTime
		completionNotes sql.NullString
		employerRating  sql.NullInt64
		employerReview  sql.NullString
		workerRating    sql.NullInt64
		workerReview    sql.NullString
	)
	err := row.Scan(&app.ID, &app.JobPostingID, &app.EmployeeID, &app.Status, &workStatus, &app.EmployerConfirmationPending,
		&app.AppliedAt, &completedAt, &completionNotes, &employerRating, &employerReview, &workerRating, &workerReview, &app.UpdatedAt)
	if err != nil {
		return nil, err
	}
	app.WorkStatus = application.WorkStatus(workStatus.String)
	if completedAt.Valid {
		t := completedAt.Time
		app.CompletedAt = &t
	}
	app.CompletionNotes = completionNotes.String
	if employerRating.Valid {
		v := int(employerRating.Int64)
		app.EmployerRating = &v
	}
	app.EmployerReview = employerReview.String
	if workerRating.Valid {
		v := int(workerRating.Int64)
		app.WorkerRating = &v
	}
	app.WorkerReview = workerReview.String
	return &app, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
