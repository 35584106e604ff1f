package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/VijeshVS/LocalHire-sub001/internal/common"
	"github.com/VijeshVS/LocalHire-sub001/internal/domain/worker"
)

const workerQuery = `SELECT e.id, e.name, e.latitude, e.longitude, e.years_of_experience, e.rating, e.status, e.created_at,
		COALESCE(array_agg(s.skill_name) FILTER (WHERE s.skill_name IS NOT NULL), '{}')
	FROM employees e
	LEFT JOIN employee_skills es ON es.employee_id = e.id
	LEFT JOIN skills s ON s.id = es.skill_id`

type WorkerRepository struct {
	db *sql.DB
}

func NewWorkerRepository(db *sql.DB) *WorkerRepository {
	return &WorkerRepository{db: db}
}

func (r *WorkerRepository) GetByID(ctx context.Context, id common.UUID) (*worker.Worker, error) {
	row := r.db.QueryRowContext(ctx, workerQuery+` WHERE e.id = $1 GROUP BY e.id`, id)
	w, err := scanWorker(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "worker not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load worker", err)
	}
	return w, nil
}

func (r *WorkerRepository) ListActive(ctx context.Context) ([]worker.Worker, error) {
	rows, err := r.db.QueryContext(ctx, workerQuery+` WHERE e.status = 'active' GROUP BY e.id`)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list workers", err)
	}
	defer rows.Close()
	var items []worker.Worker
	for rows.Next() {
		w, err := scanWorker(rows)
		if err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan worker", err)
		}
		items = append(items, *w)
	}
	return items, rows.Err()
}

func (r *WorkerRepository) UpdateRating(ctx context.Context, id common.UUID, rating float64) error {
	result, err := r.db.ExecContext(ctx, `UPDATE employees SET rating = $1 WHERE id = $2`, rating, id)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to update worker rating", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return common.NewError(common.CodeNotFound, "worker not found", sql.ErrNoRows)
	}
	return nil
}

func scanWorker(row rowScanner) (*worker.Worker, error) {
	var (
		w         worker.Worker
		latitude  sql.NullFloat64
		longitude sql.NullFloat64
	)
	err := row.Scan(&w.ID, &w.Name, &latitude, &longitude, &w.YearsOfExperience, &w.Rating, &w.Status, &w.CreatedAt, pq.Array(&w.Skills))
	if err != nil {
		return nil, err
	}
	if latitude.Valid {
		v := latitude.Float64
		w.Latitude = &v
	}
	if longitude.Valid {
		v := longitude.Float64
		w.Longitude = &v
	}
	return &w, nil
}
