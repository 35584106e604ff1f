package job

import (
	"context"

	"github.com/VijeshVS/LocalHire-sub001/internal/common"
)

type Repository interface {
	Create(ctx context.Context, posting Posting) (*Posting, error)
	Update(ctx context.Context, posting Posting) (*Posting, error)
	GetByID(ctx context.Context, id common.UUID) (*Posting, error)
	ListByIDs(ctx context.Context, ids []common.UUID) ([]Posting, error)
	ListByEmployer(ctx context.Context, employerID common.UUID) ([]Posting, error)
	ListActive(ctx context.Context) ([]Posting, error)
	SetActive(ctx context.Context, id, employerID common.UUID, active bool) (*Posting, error)
}
