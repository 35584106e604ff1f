package geo

import (
	"math"
	"sort"
)

// Point is a WGS84 coordinate pair.
type Point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

const earthRadiusKM = 6371.0

// DistanceKM returns the great-circle distance between two points using the
// haversine formula.
func DistanceKM(a, b Point) float64 {
	latA := a.Latitude * math.Pi / 180
	latB := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(latA)*math.Cos(latB)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKM * math.Asin(math.Sqrt(h))
}

// Match pairs an item with its distance from the query point.
type Match[T any] struct {
	Item       T       `json:"item"`
	DistanceKM float64 `json:"distance_km"`
}

// WithinRadius filters items to those whose location is at most radiusKM from
// origin (inclusive at the boundary) and returns them sorted by ascending
// distance. Items without a location are skipped. Distances are rounded to
// two decimals for display.
func WithinRadius[T any](origin Point, radiusKM float64, items []T, locate func(T) (Point, bool)) []Match[T] {
	var matches []Match[T]
	for _, item := range items {
		point, ok := locate(item)
		if !ok {
			continue
		}
		distance := DistanceKM(origin, point)
		if distance <= radiusKM {
			matches = append(matches, Match[T]{Item: item, DistanceKM: roundKM(distance)})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].DistanceKM < matches[j].DistanceKM
	})
	return matches
}

func roundKM(km float64) float64 {
	return math.Round(km*100) / 100
}
