package project

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("project not found")

type Status string

const (
	StatusPlanning  Status = "planning"
	StatusActive    Status = "active"
	StatusOnHold    Status = "on_hold"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

type Project struct {
	ID          uuid.UUID `json:"id"`
	Key         string    `json:"key"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Status      Status    `json:"status"`
	Progress    int       `json:"progress_percentage"`
	CreatedBy   uuid.UUID `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func New(key, name, description string, createdBy uuid.UUID) Project {
	now := time.Now().UTC()
	return Project{
		ID:          uuid.New(),
		Key:         key,
		Name:        name,
		Description: description,
		Status:      StatusActive,
		CreatedBy:   createdBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Progress is the completed percentage rounded down to an integer.
// Zero tasks means zero progress, not a division error.
func Progress(done, total int) int {
	if total <= 0 {
		return 0
	}
	return done * 100 / total
}
