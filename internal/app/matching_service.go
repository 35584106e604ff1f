package app

import (
	"context"
	"strings"

	"github.com/VijeshVS/LocalHire-sub001/internal/common"
	"github.com/VijeshVS/LocalHire-sub001/internal/domain/job"
	"github.com/VijeshVS/LocalHire-sub001/internal/domain/worker"
	"github.com/VijeshVS/LocalHire-sub001/internal/geo"
)

// MatchingService answers "what is near this point": active postings for
// workers, active workers (with their skill sets) for employers. Radius
// filtering and distance sorting live in the geo package.
type MatchingService struct {
	jobs    job.Repository
	workers worker.Repository
}

func NewMatchingService(jobs job.Repository, workers worker.Repository) *MatchingService {
	return &MatchingService{jobs: jobs, workers: workers}
}

type JobMatch struct {
	job.Posting
	DistanceKM float64 `json:"distance_km"`
}

type WorkerMatch struct {
	worker.Worker
	DistanceKM float64 `json:"distance_km"`
}

// FindJobsNear returns active postings within radiusKM of origin, closest
// first, optionally restricted to one category.
func (s *MatchingService) FindJobsNear(ctx context.Context, origin geo.Point, radiusKM float64, category string) ([]JobMatch, error) {
	if err := validateQuery(origin, radiusKM); err != nil {
		return nil, err
	}
	postings, err := s.jobs.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	if category = strings.TrimSpace(category); category != "" {
		filtered := postings[:0]
		for _, p := range postings {
			if strings.EqualFold(p.Category, category) {
				filtered = append(filtered, p)
			}
		}
		postings = filtered
	}
	matches := geo.WithinRadius(origin, radiusKM, postings, func(p job.Posting) (geo.Point, bool) {
		if !p.HasLocation() {
			return geo.Point{}, false
		}
		return geo.Point{Latitude: *p.Latitude, Longitude: *p.Longitude}, true
	})
	items := make([]JobMatch, 0, len(matches))
	for _, m := range matches {
		items = append(items, JobMatch{Posting: m.Item, DistanceKM: m.DistanceKM})
	}
	return items, nil
}

// FindWorkersNear returns active workers within radiusKM of origin, closest
// first. Results carry each worker's skill set so callers can filter without
// a second round trip.
func (s *MatchingService) FindWorkersNear(ctx context.Context, origin geo.Point, radiusKM float64) ([]WorkerMatch, error) {
	if err := validateQuery(origin, radiusKM); err != nil {
		return nil, err
	}
	workers, err := s.workers.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	matches := geo.WithinRadius(origin, radiusKM, workers, func(w worker.Worker) (geo.Point, bool) {
		if !w.HasLocation() {
			return geo.Point{}, false
		}
		return geo.Point{Latitude: *w.Latitude, Longitude: *w.Longitude}, true
	})
	items := make([]WorkerMatch, 0, len(matches))
	for _, m := range matches {
		items = append(items, WorkerMatch{Worker: m.Item, DistanceKM: m.DistanceKM})
	}
	return items, nil
}

func validateQuery(origin geo.Point, radiusKM float64) error {
	fields := map[string]string{}
	if origin.Latitude < -90 || origin.Latitude > 90 {
		fields["latitude"] = "latitude must be between -90 and 90"
	}
	if origin.Longitude < -180 || origin.Longitude > 180 {
		fields["longitude"] = "longitude must be between -180 and 180"
	}
	if radiusKM <= 0 {
		fields["radius_km"] = "radius_km must be positive"
	}
	if len(fields) > 0 {
		return common.NewValidationError("invalid search query", fields)
	}
	return nil
}
