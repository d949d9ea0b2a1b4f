package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	TaskStatusPending    = "pending"
	TaskStatusInProgress = "in_progress"
	TaskStatusCompleted  = "completed"
)

// CompletionProof is attached when a member marks a task done: a photo
// of the finished work plus an optional comment.
type CompletionProof struct {
	PhotoURL    string    `json:"photo_url"`
	Comment     string    `json:"comment,omitempty"`
	CompletedAt time.Time `json:"completed_at"`
}

type Task struct {
	ID          uuid.UUID        `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	AssignedTo  []uuid.UUID      `json:"assigned_to"`
	DueDate     time.Time        `json:"due_date"`
	Status      string           `json:"status"`
	Floor       string           `json:"floor,omitempty"`
	Proof       *CompletionProof `json:"completion_proof,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	CreatedBy   uuid.UUID        `json:"created_by"`
}
