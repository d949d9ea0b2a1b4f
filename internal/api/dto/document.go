package dto

type CreateDocumentRequest struct {
	Title             string `json:"title" validate:"required"`
	Description       string `json:"description"`
	URL               string `json:"url" validate:"required,url"`
	Category          string `json:"category" validate:"required,oneof=regulations contracts policies minutes reports other"`
	Type              string `json:"type" validate:"required,oneof=official signed template form"`
	Version           string `json:"version"`
	RequiresSignature bool   `json:"requires_signature"`
}

type SignDocumentRequest struct {
	// SignatureData is the base64 PNG data URL captured on the canvas.
	SignatureData string `json:"signature_data" validate:"required"`
}
