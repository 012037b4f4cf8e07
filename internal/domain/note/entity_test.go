package note

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNote_NeedsAttention(t *testing.T) {
	now := time.Date(2025, 5, 2, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		note     Note
		overdue  bool
		dueToday bool
	}{
		{"yesterday pending", Note{Status: StatusPending, TargetDateTime: now.AddDate(0, 0, -1)}, true, false},
		{"this morning pending", Note{Status: StatusPending, TargetDateTime: now.Add(-3 * time.Hour)}, true, true},
		{"this evening pending", Note{Status: StatusPending, TargetDateTime: now.Add(6 * time.Hour)}, false, true},
		{"tomorrow pending", Note{Status: StatusPending, TargetDateTime: now.AddDate(0, 0, 1)}, false, false},
		{"yesterday done", Note{Status: StatusDone, TargetDateTime: now.AddDate(0, 0, -1)}, false, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.overdue, c.note.Overdue(now))
			assert.Equal(t, c.dueToday, c.note.DueToday(now))
			assert.Equal(t, c.overdue || c.dueToday, c.note.NeedsAttention(now))
		})
	}
}

func TestCreateNoteRequest_DefaultsToPending(t *testing.T) {
	req := CreateNoteRequest{Content: "Call the bank", TargetDateTime: "2025-05-03T10:00"}

	assert.NoError(t, req.Validate())
	n := req.ToEntity()
	assert.Equal(t, StatusPending, n.Status)
	assert.Equal(t, time.Date(2025, 5, 3, 10, 0, 0, 0, time.UTC), n.TargetDateTime)
}

func TestCreateNoteRequest_Validate(t *testing.T) {
	req := CreateNoteRequest{Status: "Later"}

	err := req.Validate()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "content: is required")
	assert.Contains(t, err.Error(), "target_date_time: is required")
	assert.Contains(t, err.Error(), "status:")
}
