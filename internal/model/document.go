package model

import (
	"time"

	"github.com/google/uuid"
)

// Document categories and statuses mirror the cooperative's filing plan.
const (
	DocumentStatusDraft    = "draft"
	DocumentStatusActive   = "active"
	DocumentStatusArchived = "archived"
)

// SignatureMetadata records who signed a document, when, and where the
// signature image lives.
type SignatureMetadata struct {
	SignedBy     uuid.UUID `json:"signed_by"`
	SignedAt     time.Time `json:"signed_at"`
	SignatureURL string    `json:"signature_url"`
}

type Document struct {
	ID                uuid.UUID          `json:"id"`
	Title             string             `json:"title"`
	Description       string             `json:"description"`
	URL               string             `json:"url"`
	Category          string             `json:"category"` // regulations, contracts, policies, minutes, reports, other
	Type              string             `json:"type"`     // official, signed, template, form
	Version           string             `json:"version"`
	Status            string             `json:"status"`
	RequiresSignature bool               `json:"requires_signature"`
	SignedBy          *uuid.UUID         `json:"signed_by,omitempty"`
	SignedAt          *time.Time         `json:"signed_at,omitempty"`
	Signature         *SignatureMetadata `json:"signature_metadata,omitempty"`
	CreatedAt         time.Time          `json:"created_at"`
	CreatedBy         uuid.UUID          `json:"created_by"`
	UpdatedAt         time.Time          `json:"updated_at"`
	UpdatedBy         uuid.UUID          `json:"updated_by"`
}
