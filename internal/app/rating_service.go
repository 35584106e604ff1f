package app

import (
	"context"
	"math"

	"github.com/VijeshVS/LocalHire-sub001/internal/common"
	"github.com/VijeshVS/LocalHire-sub001/internal/domain/application"
	"github.com/VijeshVS/LocalHire-sub001/internal/domain/employer"
	"github.com/VijeshVS/LocalHire-sub001/internal/domain/worker"
)

// RatingService recomputes displayed ratings from the full history of rated
// applications. A full recompute (not a running average) makes it idempotent
// and safe under concurrent confirmations; applications removed by
// withdrawal simply stop counting.
type RatingService struct {
	apps      application.Repository
	workers   worker.Repository
	employers employer.Repository
}

func NewRatingService(apps application.Repository, workers worker.Repository, employers employer.Repository) *RatingService {
	return &RatingService{apps: apps, workers: workers, employers: employers}
}

// RecomputeWorker recalculates the worker's displayed rating from every
// stored worker_rating and writes it back. With no ratings on record the
// stored value is left untouched.
func (s *RatingService) RecomputeWorker(ctx context.Context, workerID common.UUID) (float64, error) {
	ratings, err := s.apps.WorkerRatings(ctx, workerID)
	if err != nil {
		return 0, err
	}
	if len(ratings) == 0 {
		return 0, nil
	}
	rating := average(ratings)
	if err := s.workers.UpdateRating(ctx, workerID, rating); err != nil {
		return 0, err
	}
	return rating, nil
}

// RecomputeEmployer is the symmetric recompute over employer_rating values.
func (s *RatingService) RecomputeEmployer(ctx context.Context, employerID common.UUID) (float64, error) {
	ratings, err := s.apps.EmployerRatings(ctx, employerID)
	if err != nil {
		return 0, err
	}
	if len(ratings) == 0 {
		return 0, nil
	}
	rating := average(ratings)
	if err := s.employers.UpdateRating(ctx, employerID, rating); err != nil {
		return 0, err
	}
	return rating, nil
}

func average(ratings []int) float64 {
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	mean := float64(sum) / float64(len(ratings))
	return math.Round(mean*10) / 10
}
