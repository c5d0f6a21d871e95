package activity

import (
	"time"

	"github.com/google/uuid"
)

type Action string

const (
	ActionCreated       Action = "created"
	ActionUpdated       Action = "updated"
	ActionStatusChanged Action = "status_changed"
	ActionAssigned      Action = "assigned"
	ActionCommented     Action = "commented"
	ActionReviewed      Action = "reviewed"
	ActionTimeLogged    Action = "time_logged"
)

// Entry is an append-only audit record. Application logic never mutates or
// deletes entries; they only cascade with their task.
type Entry struct {
	ID        uuid.UUID `json:"id"`
	TaskID    uuid.UUID `json:"task_id"`
	ActorID   uuid.UUID `json:"actor_id"`
	Action    Action    `json:"action"`
	Field     string    `json:"field,omitempty"`
	OldValue  string    `json:"old_value,omitempty"`
	NewValue  string    `json:"new_value,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func New(taskID, actorID uuid.UUID, action Action, field, oldValue, newValue string) Entry {
	return Entry{
		ID:        uuid.New(),
		TaskID:    taskID,
		ActorID:   actorID,
		Action:    action,
		Field:     field,
		OldValue:  oldValue,
		NewValue:  newValue,
		CreatedAt: time.Now().UTC(),
	}
}
