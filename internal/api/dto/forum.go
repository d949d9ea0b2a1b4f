package dto

type AttachmentRequest struct {
	URL  string `json:"url" validate:"required,url"`
	Name string `json:"name" validate:"required"`
	Size int64  `json:"size"`
	Type string `json:"type"`
}

type CreateTopicRequest struct {
	CategoryID  string              `json:"category_id" validate:"required,uuid"`
	Title       string              `json:"title" validate:"required"`
	Content     string              `json:"content" validate:"required"`
	Tags        []string            `json:"tags"`
	Attachments []AttachmentRequest `json:"attachments" validate:"dive"`
}

type CreateReplyRequest struct {
	Content     string              `json:"content" validate:"required"`
	ParentID    string              `json:"parent_id" validate:"omitempty,uuid"`
	Attachments []AttachmentRequest `json:"attachments" validate:"dive"`
}

type ReportContentRequest struct {
	ContentType string `json:"content_type" validate:"required,oneof=topic reply"`
	ContentID   string `json:"content_id" validate:"required,uuid"`
	Reason      string `json:"reason" validate:"required"`
}
