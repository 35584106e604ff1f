package worker

import (
	"context"

	"github.com/VijeshVS/LocalHire-sub001/internal/common"
)

type Repository interface {
	GetByID(ctx context.Context, id common.UUID) (*Worker, error)
	ListActive(ctx context.Context) ([]Worker, error)
	UpdateRating(ctx context.Context, id common.UUID, rating float64) error
}
