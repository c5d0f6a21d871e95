package notification

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("notification not found")

type Type string

const (
	TypeTaskAssigned        Type = "task_assigned"
	TypeTaskSubmitted       Type = "task_submitted"
	TypeTaskCompleted       Type = "task_completed"
	TypeCodeReviewAssigned  Type = "code_review_assigned"
	TypeCodeReviewCompleted Type = "code_review_completed"
	TypeTestingAssigned     Type = "testing_assigned"
	TypeTestingCompleted    Type = "testing_completed"
	TypeCommentAdded        Type = "comment_added"
	TypeSprintStarted       Type = "sprint_started"
	TypeSprintCompleted     Type = "sprint_completed"
)

// Notification is append-only: application code only ever flips IsRead.
type Notification struct {
	ID          uuid.UUID  `json:"id"`
	RecipientID uuid.UUID  `json:"recipient_id"`
	SenderID    *uuid.UUID `json:"sender_id,omitempty"`
	Type        Type       `json:"type"`
	TaskID      *uuid.UUID `json:"task_id,omitempty"`
	SprintID    *uuid.UUID `json:"sprint_id,omitempty"`
	Message     string     `json:"message"`
	IsRead      bool       `json:"is_read"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Ref points a notification at its originating entity.
type Ref struct {
	TaskID   *uuid.UUID
	SprintID *uuid.UUID
}

func New(recipientID uuid.UUID, senderID *uuid.UUID, typ Type, message string, ref Ref) Notification {
	return Notification{
		ID:          uuid.New(),
		RecipientID: recipientID,
		SenderID:    senderID,
		Type:        typ,
		TaskID:      ref.TaskID,
		SprintID:    ref.SprintID,
		Message:     message,
		CreatedAt:   time.Now().UTC(),
	}
}
