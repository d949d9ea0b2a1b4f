package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	TopicStatusOpen   = "open"
	TopicStatusClosed = "closed"
	TopicStatusLocked = "locked"
)

type ForumCategory struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	OrderPosition int       `json:"order_position"`
}

type ForumTopic struct {
	ID          uuid.UUID  `json:"id"`
	CategoryID  uuid.UUID  `json:"category_id"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	Status      string     `json:"status"`
	Pinned      bool       `json:"pinned"`
	Views       int        `json:"views"`
	Tags        []string   `json:"tags,omitempty"`
	LastReplyAt *time.Time `json:"last_reply_at,omitempty"`
	LastReplyBy *uuid.UUID `json:"last_reply_by,omitempty"`
	CreatedBy   uuid.UUID  `json:"created_by"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type ForumReply struct {
	ID        uuid.UUID  `json:"id"`
	TopicID   uuid.UUID  `json:"topic_id"`
	Content   string     `json:"content"`
	ParentID  *uuid.UUID `json:"parent_id,omitempty"`
	Status    string     `json:"status"` // active, hidden, deleted
	CreatedBy uuid.UUID  `json:"created_by"`
	CreatedAt time.Time  `json:"created_at"`
}

// ForumAttachment hangs off either a topic or a reply, never both.
type ForumAttachment struct {
	ID        uuid.UUID  `json:"id"`
	TopicID   *uuid.UUID `json:"topic_id,omitempty"`
	ReplyID   *uuid.UUID `json:"reply_id,omitempty"`
	URL       string     `json:"url"`
	Name      string     `json:"name"`
	Size      int64      `json:"size"`
	Type      string     `json:"type"`
	CreatedBy uuid.UUID  `json:"created_by"`
	CreatedAt time.Time  `json:"created_at"`
}

type ForumReport struct {
	ID          uuid.UUID `json:"id"`
	ContentType string    `json:"content_type"` // topic or reply
	ContentID   uuid.UUID `json:"content_id"`
	Reason      string    `json:"reason"`
	ReportedBy  uuid.UUID `json:"reported_by"`
	CreatedAt   time.Time `json:"created_at"`
}
