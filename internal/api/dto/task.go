package dto

type CreateTaskRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	AssignedTo  []string `json:"assigned_to" validate:"required,min=1,dive,uuid"`
	DueDate     string   `json:"due_date" validate:"required"`
	Floor       string   `json:"floor"`
}

type CompleteTaskRequest struct {
	PhotoURL string `json:"photo_url" validate:"required,url"`
	Comment  string `json:"comment"`
}
