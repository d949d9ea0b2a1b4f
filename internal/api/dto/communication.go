package dto

type CreateAnnouncementRequest struct {
	Title                  string   `json:"title" validate:"required"`
	Content                string   `json:"content" validate:"required"`
	Priority               string   `json:"priority" validate:"required,oneof=urgent high medium low"`
	Category               string   `json:"category" validate:"required,oneof=maintenance security event task other"`
	ExpiresAt              string   `json:"expires_at"`
	TargetAudience         []string `json:"target_audience" validate:"dive,oneof=member board committee admin"`
	AcknowledgmentRequired bool     `json:"acknowledgment_required"`
}

type FAQVoteRequest struct {
	VoteType string `json:"vote_type" validate:"required,oneof=up down"`
}

type FAQSuggestionRequest struct {
	Question string `json:"question" validate:"required"`
	Context  string `json:"context"`
}
