package worker

import (
	"time"

	"github.com/VijeshVS/LocalHire-sub001/internal/common"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

type Worker struct {
	ID                common.UUID `json:"id"`
	Name              string      `json:"name"`
	Latitude          *float64    `json:"latitude,omitempty"`
	Longitude         *float64    `json:"longitude,omitempty"`
	Skills            []string    `json:"skills,omitempty"`
	YearsOfExperience int         `json:"years_of_experience"`
	Rating            float64     `json:"rating"`
	Status            Status      `json:"status"`
	CreatedAt         time.Time   `json:"created_at"`
}

func (w Worker) HasLocation() bool {
	return w.Latitude != nil && w.Longitude != nil
}
