package employer

import (
	"context"
	"time"

	"github.com/VijeshVS/LocalHire-sub001/internal/common"
)

type Employer struct {
	ID           common.UUID `json:"id"`
	Name         string      `json:"name"`
	BusinessName string      `json:"business_name,omitempty"`
	Rating       float64     `json:"rating"`
	CreatedAt    time.Time   `json:"created_at"`
}

type Repository interface {
	GetByID(ctx context.Context, id common.UUID) (*Employer, error)
	UpdateRating(ctx context.Context, id common.UUID, rating float64) error
}
