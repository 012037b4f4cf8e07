package note

import (
	"time"

	"github.com/cmlabs-hris/backoffice-backend-go/internal/pkg/validator"
)

type Status string

const (
	StatusPending Status = "Pending"
	StatusDone    Status = "Done"
)

func (s Status) Valid() bool {
	return s == StatusPending || s == StatusDone
}

type Note struct {
	ID             string
	Content        string
	TargetDateTime time.Time
	Status         Status
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Overdue is a pending note whose target time has passed.
func (n Note) Overdue(now time.Time) bool {
	return n.Status == StatusPending && n.TargetDateTime.Before(now)
}

// DueToday is a pending note targeted at some time on now's calendar day.
func (n Note) DueToday(now time.Time) bool {
	return n.Status == StatusPending &&
		validator.DateOnly(n.TargetDateTime).Equal(validator.DateOnly(now))
}

// NeedsAttention is what the reminder feed shows: due today or overdue.
func (n Note) NeedsAttention(now time.Time) bool {
	return n.Overdue(now) || n.DueToday(now)
}
