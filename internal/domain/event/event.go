package event

import (
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeTaskCreated      Type = "task_created"
	TypeTaskUpdated      Type = "task_updated"
	TypeTaskAssigned     Type = "task_assigned"
	TypeTaskCompleted    Type = "task_completed"
	TypeDependencyAdded  Type = "dependency_added"
	TypeCommentAdded     Type = "comment_added"
	TypeSprintStarted    Type = "sprint_started"
	TypeSprintCompleted  Type = "sprint_completed"
	TypeReviewAssigned   Type = "review_assigned"
	TypeReviewCompleted  Type = "review_completed"
	TypeTestingAssigned  Type = "testing_assigned"
	TypeTestingCompleted Type = "testing_completed"
	TypeNotificationSent Type = "notification_sent"
)

// Channel is a domain-scoped Postgres NOTIFY channel.
// All event types within a domain share one LISTEN connection.
type Channel string

const (
	ChannelTask         Channel = "task"
	ChannelSprint       Channel = "sprint"
	ChannelReview       Channel = "review"
	ChannelNotification Channel = "notification"
)

var typeToChannel = map[Type]Channel{
	TypeTaskCreated:      ChannelTask,
	TypeTaskUpdated:      ChannelTask,
	TypeTaskAssigned:     ChannelTask,
	TypeTaskCompleted:    ChannelTask,
	TypeDependencyAdded:  ChannelTask,
	TypeCommentAdded:     ChannelTask,
	TypeSprintStarted:    ChannelSprint,
	TypeSprintCompleted:  ChannelSprint,
	TypeReviewAssigned:   ChannelReview,
	TypeReviewCompleted:  ChannelReview,
	TypeTestingAssigned:  ChannelReview,
	TypeTestingCompleted: ChannelReview,
	TypeNotificationSent: ChannelNotification,
}

// ChannelFor returns the domain channel for a given event type.
func ChannelFor(t Type) Channel { return typeToChannel[t] }

// Event carries identifiers only, not full state.
// Subscribers fetch fresh state from the appropriate repository.
type Event struct {
	Type      Type      `json:"type"`
	EntityID  uuid.UUID `json:"entity_id"`
	Timestamp time.Time `json:"timestamp"`
}

func New(eventType Type, entityID uuid.UUID) Event {
	return Event{
		Type:      eventType,
		EntityID:  entityID,
		Timestamp: time.Now().UTC(),
	}
}
