package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"github.com/VijeshVS/LocalHire-sub001/internal/common"
	"github.com/VijeshVS/LocalHire-sub001/internal/domain/job"
)

const jobColumns = `id, employer_id, title, category, description, wage, address, latitude, longitude, radius_km,
	scheduled_date, scheduled_start_time, scheduled_end_time, duration_hours, expected_completion_at,
	required_skills, is_active, created_at, updated_at`

type JobRepository struct {
	db *sql.DB
}

func NewJobRepository(db *sql.DB) *JobRepository {
	return &JobRepository{db: db}
}

func (r *JobRepository) Create(ctx context.Context, posting job.Posting) (*job.Posting, error) {
	posting.ID = common.NewUUID()
	now := time.Now().UTC()
	posting.CreatedAt = now
	posting.UpdatedAt = now
	_, err := r.db.ExecContext(ctx, `INSERT INTO job_postings (id, employer_id, title, category, description, wage, address,
			latitude, longitude, radius_km, scheduled_date, scheduled_start_time, scheduled_end_time, duration_hours,
			expected_completion_at, required_skills, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NULLIF($11, ''), NULLIF($12, ''), NULLIF($13, ''), $14, $15, $16, $17, $18, $19)`,
		posting.ID, posting.EmployerID, posting.Title, posting.Category, posting.Description, posting.Wage, posting.Address,
		posting.Latitude, posting.Longitude, posting.RadiusKM, posting.ScheduledDate, posting.ScheduledStartTime,
		posting.ScheduledEndTime, posting.DurationHours, posting.ExpectedCompletionAt, pq.Array(posting.RequiredSkills),
		posting.IsActive, posting.CreatedAt, posting.UpdatedAt)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create job posting", err)
	}
	return &posting, nil
}

func (r *JobRepository) Update(ctx context.Context, posting job.Posting) (*job.Posting, error) {
	posting.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx, `UPDATE job_postings SET title = $1, category = $2, description = $3, wage = $4,
			address = $5, latitude = $6, longitude = $7, radius_km = $8, scheduled_date = NULLIF($9, ''),
			scheduled_start_time = NULLIF($10, ''), scheduled_end_time = NULLIF($11, ''), duration_hours = $12,
			expected_completion_at = $13, required_skills = $14, updated_at = $15
		WHERE id = $16 AND employer_id = $17`,
		posting.Title, posting.Category, posting.Description, posting.Wage, posting.Address, posting.Latitude,
		posting.Longitude, posting.RadiusKM, posting.ScheduledDate, posting.ScheduledStartTime, posting.ScheduledEndTime,
		posting.DurationHours, posting.ExpectedCompletionAt, pq.Array(posting.RequiredSkills), posting.UpdatedAt,
		posting.ID, posting.EmployerID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update job posting", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return nil, common.NewError(common.CodeNotFound, "job posting not found", sql.ErrNoRows)
	}
	return r.GetByID(ctx, posting.ID)
}

func (r *JobRepository) GetByID(ctx context.Context, id common.UUID) (*job.Posting, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+jobColumns+` FROM job_postings WHERE id = $1`, id)
	posting, err := scanPosting(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "job posting not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load job posting", err)
	}
	return posting, nil
}

func (r *JobRepository) ListByIDs(ctx context.Context, ids []common.UUID) ([]job.Posting, error) {
	values := make([]string, 0, len(ids))
	for _, id := range ids {
		values = append(values, id.String())
	}
	return r.list(ctx, `SELECT `+jobColumns+` FROM job_postings WHERE id = ANY($1)`, pq.Array(values))
}

func (r *JobRepository) ListByEmployer(ctx context.Context, employerID common.UUID) ([]job.Posting, error) {
	return r.list(ctx, `SELECT `+jobColumns+` FROM job_postings WHERE employer_id = $1 ORDER BY created_at DESC`, employerID)
}

func (r *JobRepository) ListActive(ctx context.Context) ([]job.Posting, error) {
	return r.list(ctx, `SELECT `+jobColumns+` FROM job_postings WHERE is_active ORDER BY created_at DESC`)
}

func (r *JobRepository) SetActive(ctx context.Context, id, employerID common.UUID, active bool) (*job.Posting, error) {
	result, err := r.db.ExecContext(ctx, `UPDATE job_postings SET is_active = $1, updated_at = $2 WHERE id = $3 AND employer_id = $4`,
		active, time.Now().UTC(), id, employerID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update job posting", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return nil, common.NewError(common.CodeNotFound, "job posting not found", sql.ErrNoRows)
	}
	return r.GetByID(ctx, id)
}

func (r *JobRepository) list(ctx context.Context, query string, args ...any) ([]job.Posting, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list job postings", err)
	}
	defer rows.Close()
	var items []job.Posting
	for rows.Next() {
		posting, err := scanPosting(rows)
		if err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan job posting", err)
		}
		items = append(items, *posting)
	}
	return items, rows.Err()
}

func scanPosting(row rowScanner) (*job.Posting, error) {
	var (
		posting       job.Posting
		latitude      sql.NullFloat64
		longitude     sql.NullFloat64
		date          sql.NullString
		startTime     sql.NullString
		endTime       sql.NullString
		durationHours sql.NullFloat64
		expectedAt    sql.NullTime
	)
	err := row.Scan(&posting.ID, &posting.EmployerID, &posting.Title, &posting.Category, &posting.Description,
		&posting.Wage, &posting.Address, &latitude, &longitude, &posting.RadiusKM, &date, &startTime, &endTime,
		&durationHours, &expectedAt, pq.Array(&posting.RequiredSkills), &posting.IsActive, &posting.CreatedAt, &posting.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if latitude.Valid {
		v := latitude.Float64
		posting.Latitude = &v
	}
	if longitude.Valid {
		v := longitude.Float64
		posting.Longitude = &v
	}
	posting.ScheduledDate = date.String
	posting.ScheduledStartTime = startTime.String
	posting.ScheduledEndTime = endTime.String
	if durationHours.Valid {
		v := durationHours.Float64
		posting.DurationHours = &v
	}
	if expectedAt.Valid {
		t := expectedAt.Time
		posting.ExpectedCompletionAt = &t
	}
	return &posting, nil
}
