package model

import (
	"time"

	"github.com/google/uuid"
)

// Notification types, closed set. The type drives iconography on the
// client only; nothing branches on it server-side.
const (
	NotificationTypeDocument     = "document"
	NotificationTypeTask         = "task"
	NotificationTypeMeeting      = "meeting"
	NotificationTypeForum        = "forum"
	NotificationTypeAnnouncement = "announcement"
)

// Notification is one user-facing alert. A notification belongs to
// exactly one user and is immutable except for its read flag.
type Notification struct {
	ID        uuid.UUID         `json:"id"`
	UserID    uuid.UUID         `json:"user_id"`
	Type      string            `json:"type"`
	Title     string            `json:"title"`
	Content   string            `json:"content"`
	Link      string            `json:"link,omitempty"`
	Read      bool              `json:"read"`
	CreatedAt time.Time         `json:"created_at"`
	ExpiresAt *time.Time        `json:"expires_at,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}
