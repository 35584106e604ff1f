package geo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type place struct {
	name string
	lat  *float64
	lon  *float64
}

func locatePlace(p place) (Point, bool) {
	if p.lat == nil || p.lon == nil {
		return Point{}, false
	}
	return Point{Latitude: *p.lat, Longitude: *p.lon}, true
}

func f(v float64) *float64 { return &v }

func TestDistanceKM(t *testing.T) {
	// One degree of latitude along a meridian is about 111.19 km.
	d := DistanceKM(Point{Latitude: 0, Longitude: 0}, Point{Latitude: 1, Longitude: 0})
	require.InDelta(t, 111.19, d, 0.01)

	require.Zero(t, DistanceKM(Point{Latitude: 12.97, Longitude: 77.59}, Point{Latitude: 12.97, Longitude: 77.59}))

	// Bengaluru city centre to the airport, roughly 32 km.
	d = DistanceKM(Point{Latitude: 12.9716, Longitude: 77.5946}, Point{Latitude: 13.1986, Longitude: 77.7066})
	require.InDelta(t, 28.0, d, 1.0)
}

func TestWithinRadiusSortsAscending(t *testing.T) {
	origin := Point{Latitude: 0, Longitude: 0}
	items := []place{
		{name: "far", lat: f(0.5), lon: f(0)},
		{name: "near", lat: f(0.1), lon: f(0)},
		{name: "mid", lat: f(0.3), lon: f(0)},
	}
	matches := WithinRadius(origin, 100, items, locatePlace)
	require.Len(t, matches, 3)
	require.Equal(t, "near", matches[0].Item.name)
	require.Equal(t, "mid", matches[1].Item.name)
	require.Equal(t, "far", matches[2].Item.name)
	for i := 1; i < len(matches); i++ {
		require.LessOrEqual(t, matches[i-1].DistanceKM, matches[i].DistanceKM)
	}
}

func TestWithinRadiusBoundaryInclusive(t *testing.T) {
	origin := Point{Latitude: 0, Longitude: 0}
	target := place{name: "edge", lat: f(0.2), lon: f(0)}
	edge := DistanceKM(origin, Point{Latitude: 0.2, Longitude: 0})

	matches := WithinRadius(origin, edge, []place{target}, locatePlace)
	require.Len(t, matches, 1, "a point exactly at the radius is included")

	matches = WithinRadius(origin, edge-0.01, []place{target}, locatePlace)
	require.Empty(t, matches)
}

func TestWithinRadiusSkipsMissingLocation(t *testing.T) {
	origin := Point{Latitude: 0, Longitude: 0}
	items := []place{
		{name: "located", lat: f(0.01), lon: f(0.01)},
		{name: "nowhere"},
	}
	matches := WithinRadius(origin, 50, items, locatePlace)
	require.Len(t, matches, 1)
	require.Equal(t, "located", matches[0].Item.name)
}

func TestWithinRadiusRoundsDistance(t *testing.T) {
	origin := Point{Latitude: 0, Longitude: 0}
	matches := WithinRadius(origin, 200, []place{{name: "p", lat: f(1), lon: f(0)}}, locatePlace)
	require.Len(t, matches, 1)
	require.Equal(t, 111.19, matches[0].DistanceKM)
}
