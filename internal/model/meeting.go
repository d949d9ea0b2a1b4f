package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	MeetingTypeGeneralAssembly = "AG"
	MeetingTypeBoard           = "board"
	MeetingTypeCommittee       = "committee"
)

const (
	ResolutionStatusDraft    = "draft"
	ResolutionStatusAdopted  = "adopted"
	ResolutionStatusRejected = "rejected"
)

// AgendaItem is one timed point on a meeting's agenda.
type AgendaItem struct {
	ID          uuid.UUID `json:"id"`
	MeetingID   uuid.UUID `json:"meeting_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Duration    int       `json:"duration"` // minutes
	Presenter   string    `json:"presenter"`
	Position    int       `json:"position"`
}

// RSVP records a member's attendance answer for a meeting.
type RSVP struct {
	MeetingID uuid.UUID `json:"meeting_id"`
	UserID    uuid.UUID `json:"user_id"`
	Attending bool      `json:"attending"`
	Proxy     string    `json:"proxy,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Meeting struct {
	ID        uuid.UUID    `json:"id"`
	Title     string       `json:"title"`
	Type      string       `json:"type"`
	Date      time.Time    `json:"date"`
	StartTime string       `json:"start_time"`
	EndTime   string       `json:"end_time"`
	Location  string       `json:"location"`
	Status    string       `json:"status"` // scheduled, held, cancelled
	Agenda    []AgendaItem `json:"agenda,omitempty"`
	Documents []uuid.UUID  `json:"documents,omitempty"`
	CreatedBy uuid.UUID    `json:"created_by"`
	CreatedAt time.Time    `json:"created_at"`
}

// Resolution is a decision put to vote during a meeting.
type Resolution struct {
	ID           uuid.UUID `json:"id"`
	MeetingID    uuid.UUID `json:"meeting_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	VotesFor     int       `json:"votes_for"`
	VotesAgainst int       `json:"votes_against"`
	Abstentions  int       `json:"abstentions"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}
