package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/VijeshVS/LocalHire-sub001/internal/common"
	"github.com/VijeshVS/LocalHire-sub001/internal/domain/employer"
)

type EmployerRepository struct {
	db *sql.DB
}

func NewEmployerRepository(db *sql.DB) *EmployerRepository {
	return &EmployerRepository{db: db}
}

func (r *EmployerRepository) GetByID(ctx context.Context, id common.UUID) (*employer.Employer, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, name, COALESCE(business_name, ''), rating, created_at FROM employers WHERE id = $1`, id)
	var e employer.Employer
	if err := row.Scan(&e.ID, &e.Name, &e.BusinessName, &e.Rating, &e.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "employer not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load employer", err)
	}
	return &e, nil
}

func (r *EmployerRepository) UpdateRating(ctx context.Context, id common.UUID, rating float64) error {
	result, err := r.db.ExecContext(ctx, `UPDATE employers SET rating = $1 WHERE id = $2`, rating, id)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to update employer rating", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return common.NewError(common.CodeNotFound, "employer not found", sql.ErrNoRows)
	}
	return nil
}
