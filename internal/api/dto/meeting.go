package dto

type CreateMeetingRequest struct {
	Title     string   `json:"title" validate:"required"`
	Type      string   `json:"type" validate:"required,oneof=AG board committee"`
	Date      string   `json:"date" validate:"required"`
	StartTime string   `json:"start_time" validate:"required"`
	EndTime   string   `json:"end_time"`
	Location  string   `json:"location"`
	Documents []string `json:"documents" validate:"dive,uuid"`
}

type AgendaItemRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Duration    int    `json:"duration" validate:"min=0"`
	Presenter   string `json:"presenter"`
}

type RSVPRequest struct {
	Attending bool   `json:"attending"`
	Proxy     string `json:"proxy"`
}

type CreateResolutionRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

type ResolutionVoteRequest struct {
	Ballot string `json:"ballot" validate:"required,oneof=for against abstain"`
}
