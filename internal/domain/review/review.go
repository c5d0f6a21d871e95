package review

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("review not found")

type Status string

const (
	StatusPending          Status = "pending"
	StatusInReview         Status = "in_review"
	StatusApproved         Status = "approved"
	StatusChangesRequested Status = "changes_requested"
	StatusRejected         Status = "rejected"
)

// Review is one pass through the code-review gate. A task accumulates one
// record per assignment, so rejected rounds stay visible in history.
type Review struct {
	ID          uuid.UUID  `json:"id"`
	TaskID      uuid.UUID  `json:"task_id"`
	SubmittedBy uuid.UUID  `json:"submitted_by"`
	ReviewerID  *uuid.UUID `json:"reviewer_id,omitempty"`
	Status      Status     `json:"status"`
	Notes       string     `json:"notes,omitempty"`
	Rating      *int       `json:"rating,omitempty"`
	SubmittedAt time.Time  `json:"submitted_at"`
	ReviewedAt  *time.Time `json:"reviewed_at,omitempty"`
}

func New(taskID, submittedBy, reviewerID uuid.UUID) Review {
	return Review{
		ID:          uuid.New(),
		TaskID:      taskID,
		SubmittedBy: submittedBy,
		ReviewerID:  &reviewerID,
		Status:      StatusInReview,
		SubmittedAt: time.Now().UTC(),
	}
}
