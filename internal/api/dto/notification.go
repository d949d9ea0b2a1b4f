package dto

type CreateNotificationRequest struct {
	UserID    string            `json:"user_id" validate:"required,uuid"`
	Type      string            `json:"type" validate:"required,oneof=document task meeting forum announcement"`
	Title     string            `json:"title" validate:"required"`
	Content   string            `json:"content" validate:"required"`
	Link      string            `json:"link"`
	ExpiresAt string            `json:"expires_at"`
	Metadata  map[string]string `json:"metadata"`
}
