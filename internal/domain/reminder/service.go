package reminder

import "context"

// EventName is the SSE event type used for reminder pushes.
const EventName = "reminders"

// Event is one message on the reminder stream.
type Event struct {
	Event string
	Data  interface{}
}

type ReminderService interface {
	// ListDue collects due notes and today's gatepass special notes
	ListDue(ctx context.Context) ([]Reminder, error)

	// Broadcast pushes the current due list to every stream subscriber
	Broadcast(ctx context.Context) error

	Subscribe(ctx context.Context) (<-chan Event, func())
}
