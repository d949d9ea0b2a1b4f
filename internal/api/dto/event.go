package dto

type CreateEventRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Date        string `json:"date" validate:"required"`
	StartTime   string `json:"start_time" validate:"required"`
	EndTime     string `json:"end_time"`
	Location    string `json:"location"`
	Type        string `json:"type" validate:"required,oneof=meeting maintenance social other"`
}
