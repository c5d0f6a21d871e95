package timelog

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidHours = errors.New("hours must be positive")

type Entry struct {
	ID          uuid.UUID `json:"id"`
	TaskID      uuid.UUID `json:"task_id"`
	UserID      uuid.UUID `json:"user_id"`
	Hours       float64   `json:"hours"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}

func New(taskID, userID uuid.UUID, hours float64, description string, date time.Time) Entry {
	return Entry{
		ID:          uuid.New(),
		TaskID:      taskID,
		UserID:      userID,
		Hours:       hours,
		Description: description,
		Date:        date,
		CreatedAt:   time.Now().UTC(),
	}
}
