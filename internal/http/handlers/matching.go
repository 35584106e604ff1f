package handlers

import (
	"net/http"

	"github.com/VijeshVS/LocalHire-sub001/internal/app"
	"github.com/VijeshVS/LocalHire-sub001/internal/common"
	"github.com/VijeshVS/LocalHire-sub001/internal/geo"
	"github.com/VijeshVS/LocalHire-sub001/internal/http/response"
)

type MatchingHandler struct {
	matching      *app.MatchingService
	defaultRadius float64
}

func NewMatchingHandler(matching *app.MatchingService, defaultRadius float64) *MatchingHandler {
	return &MatchingHandler{matching: matching, defaultRadius: defaultRadius}
}

func (h *MatchingHandler) query(r *http.Request) (geo.Point, float64, error) {
	lat, okLat := floatQuery(r, "latitude")
	lng, okLng := floatQuery(r, "longitude")
	if !okLat || !okLng {
		return geo.Point{}, 0, common.NewValidationError("invalid request", map[string]string{
			"location": "latitude and longitude are required",
		})
	}
	radius, ok := floatQuery(r, "radius_km")
	if !ok {
		radius = h.defaultRadius
	}
	return geo.Point{Latitude: lat, Longitude: lng}, radius, nil
}

func (h *MatchingHandler) JobsNear(w http.ResponseWriter, r *http.Request) {
	origin, radius, err := h.query(r)
	if err != nil {
		response.Error(w, err)
		return
	}
	matches, err := h.matching.FindJobsNear(r.Context(), origin, radius, categoryFilter(r))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]any{"count": len(matches), "data": matches})
}

func (h *MatchingHandler) WorkersNear(w http.ResponseWriter, r *http.Request) {
	origin, radius, err := h.query(r)
	if err != nil {
		response.Error(w, err)
		return
	}
	matches, err := h.matching.FindWorkersNear(r.Context(), origin, radius)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]any{"count": len(matches), "data": matches})
}
