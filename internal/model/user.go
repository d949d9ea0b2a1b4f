package model

import (
	"time"

	"github.com/google/uuid"
)

// User roles within the cooperative.
const (
	RoleMember    = "member"
	RoleBoard     = "board"
	RoleCommittee = "committee"
	RoleAdmin     = "admin"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Role         string    `json:"role"`
	Unit         string    `json:"unit,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	// TelegramChatID is set when the member linked the cooperative bot;
	// empty means deliver urgent notices by email.
	TelegramChatID string    `json:"telegram_chat_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
