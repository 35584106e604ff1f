package job

import (
	"time"

	"github.com/VijeshVS/LocalHire-sub001/internal/common"
)

// Posting is a gig offer with an optional scheduled window. Date and times
// are stored the way employers enter them: a calendar date plus wall-clock
// times ("2006-01-02" and "15:04"), with duration as a fallback for the end.
type Posting struct {
	ID                   common.UUID `json:"id"`
	EmployerID           common.UUID `json:"employer_id"`
	Title                string      `json:"title"`
	Category             string      `json:"category"`
	Description          string      `json:"description"`
	Wage                 float64     `json:"wage"`
	Address              string      `json:"address"`
	Latitude             *float64    `json:"latitude,omitempty"`
	Longitude            *float64    `json:"longitude,omitempty"`
	RadiusKM             float64     `json:"radius_km"`
	ScheduledDate        string      `json:"scheduled_date,omitempty"`
	ScheduledStartTime   string      `json:"scheduled_start_time,omitempty"`
	ScheduledEndTime     string      `json:"scheduled_end_time,omitempty"`
	DurationHours        *float64    `json:"duration_hours,omitempty"`
	ExpectedCompletionAt *time.Time  `json:"expected_completion_at,omitempty"`
	RequiredSkills       []string    `json:"required_skills,omitempty"`
	IsActive             bool        `json:"is_active"`
	CreatedAt            time.Time   `json:"created_at"`
	UpdatedAt            time.Time   `json:"updated_at"`
}

func (p Posting) HasLocation() bool {
	return p.Latitude != nil && p.Longitude != nil
}
