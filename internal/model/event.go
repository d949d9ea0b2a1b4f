package model

import (
	"time"

	"github.com/google/uuid"
)

// Event is a calendar entry visible to all members.
type Event struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	StartTime   string    `json:"start_time"` // HH:MM
	EndTime     string    `json:"end_time"`
	Location    string    `json:"location"`
	Type        string    `json:"type"` // meeting, maintenance, social, other
	CreatedBy   uuid.UUID `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}
