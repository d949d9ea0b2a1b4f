package model

import (
	"time"

	"github.com/google/uuid"
)

// Announcement priorities, highest first.
const (
	PriorityUrgent = "urgent"
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

type Announcement struct {
	ID                      uuid.UUID   `json:"id"`
	Title                   string      `json:"title"`
	Content                 string      `json:"content"`
	Priority                string      `json:"priority"`
	Category                string      `json:"category"` // maintenance, security, event, task, other
	ExpiresAt               *time.Time  `json:"expires_at,omitempty"`
	TargetAudience          []string    `json:"target_audience,omitempty"` // roles; empty means everyone
	AcknowledgmentRequired  bool        `json:"acknowledgment_required"`
	AcknowledgedBy          []uuid.UUID `json:"acknowledged_by,omitempty"`
	CreatedBy               uuid.UUID   `json:"created_by"`
	CreatedAt               time.Time   `json:"created_at"`
}

type FAQCategory struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Order       int       `json:"order"`
}

type FAQItem struct {
	ID         uuid.UUID `json:"id"`
	CategoryID uuid.UUID `json:"category_id"`
	Question   string    `json:"question"`
	Answer     string    `json:"answer"`
	Status     string    `json:"status"` // published, pending, archived
	Votes      int       `json:"votes"`
	Tags       []string  `json:"tags,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	UpdatedBy  uuid.UUID `json:"updated_by"`
}

type FAQSuggestion struct {
	ID          uuid.UUID `json:"id"`
	Question    string    `json:"question"`
	Context     string    `json:"context"`
	Status      string    `json:"status"` // pending, approved, rejected
	SubmittedBy uuid.UUID `json:"submitted_by"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// FAQVote is one member's up or down vote on an item; one vote per
// member per item, newer votes replace older ones.
type FAQVote struct {
	FAQItemID uuid.UUID `json:"faq_item_id"`
	UserID    uuid.UUID `json:"user_id"`
	VoteType  string    `json:"vote_type"` // up or down
}
