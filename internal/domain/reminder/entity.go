package reminder

import "time"

type Kind string

const (
	KindNote     Kind = "note"
	KindGatepass Kind = "gatepass"
)

// Reminder is one item on the dashboard's attention list.
type Reminder struct {
	Kind     Kind      `json:"kind"`
	SourceID string    `json:"source_id"`
	Message  string    `json:"message"`
	DueAt    time.Time `json:"due_at"`
	Overdue  bool      `json:"overdue"`
}
