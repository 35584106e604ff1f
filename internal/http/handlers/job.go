package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/VijeshVS/LocalHire-sub001/internal/app"
	"github.com/VijeshVS/LocalHire-sub001/internal/common"
	"github.com/VijeshVS/LocalHire-sub001/internal/domain/job"
	"github.com/VijeshVS/LocalHire-sub001/internal/http/middleware"
	"github.com/VijeshVS/LocalHire-sub001/internal/http/response"
)

type JobHandler struct {
	jobs *app.JobService
}

func NewJobHandler(jobs *app.JobService) *JobHandler {
	return &JobHandler{jobs: jobs}
}

type jobRequest struct {
	Title                string     `json:"title"`
	Category             string     `json:"category"`
	Description          string     `json:"description"`
	Wage                 float64    `json:"wage"`
	Address              string     `json:"address"`
	Latitude             *float64   `json:"latitude"`
	Longitude            *float64   `json:"longitude"`
	RadiusKM             float64    `json:"radius_km"`
	ScheduledDate        string     `json:"scheduled_date"`
	ScheduledStartTime   string     `json:"scheduled_start_time"`
	ScheduledEndTime     string     `json:"scheduled_end_time"`
	DurationHours        *float64   `json:"duration_hours"`
	ExpectedCompletionAt *time.Time `json:"expected_completion_at"`
	RequiredSkills       []string   `json:"required_skills"`
}

func (req jobRequest) toPosting(employerID common.UUID) job.Posting {
	return job.Posting{
		EmployerID:           employerID,
		Title:                req.Title,
		Category:             req.Category,
		Description:          req.Description,
		Wage:                 req.Wage,
		Address:              req.Address,
		Latitude:             req.Latitude,
		Longitude:            req.Longitude,
		RadiusKM:             req.RadiusKM,
		ScheduledDate:        req.ScheduledDate,
		ScheduledStartTime:   req.ScheduledStartTime,
		ScheduledEndTime:     req.ScheduledEndTime,
		DurationHours:        req.DurationHours,
		ExpectedCompletionAt: req.ExpectedCompletionAt,
		RequiredSkills:       req.RequiredSkills,
	}
}

func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	employerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	var req jobRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	created, err := h.jobs.Create(r.Context(), req.toPosting(employerID))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

func (h *JobHandler) Update(w http.ResponseWriter, r *http.Request) {
	employerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	jobID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req jobRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	posting := req.toPosting(employerID)
	posting.ID = jobID
	updated, err := h.jobs.Update(r.Context(), posting)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

type jobStatusRequest struct {
	IsActive *bool `json:"is_active"`
}

func (h *JobHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	employerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	jobID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req jobStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	if req.IsActive == nil {
		response.Error(w, common.NewValidationError("invalid request", map[string]string{"is_active": "is_active is required"}))
		return
	}
	updated, err := h.jobs.SetActive(r.Context(), jobID, employerID, *req.IsActive)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	jobID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	item, err := h.jobs.Get(r.Context(), jobID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, item)
}

func (h *JobHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	employerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	items, err := h.jobs.ListByEmployer(r.Context(), employerID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

func (h *JobHandler) ListApplicants(w http.ResponseWriter, r *http.Request) {
	employerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	jobID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	items, err := h.jobs.ListApplicants(r.Context(), jobID, employerID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

// categoryFilter normalizes the optional ?category= query value.
func categoryFilter(r *http.Request) string {
	return strings.TrimSpace(r.URL.Query().Get("category"))
}
