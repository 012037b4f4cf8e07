package reminder

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/backoffice-backend-go/internal/domain/gatepass"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/domain/note"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/domain/reminder"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/pkg/clock"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/pkg/metrics"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/pkg/sse"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/repository/memory"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 9, 5, 10, 0, 0, 0, time.UTC)

type fixture struct {
	svc        reminder.ReminderService
	notes      note.NoteRepository
	gatepasses gatepass.GatepassRepository
	hub        *sse.Hub
	registry   *prometheus.Registry
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	registry := prometheus.NewRegistry()
	f := fixture{
		notes:      memory.NewNoteRepository(),
		gatepasses: memory.NewGatepassRepository(),
		hub:        sse.NewHub(),
		registry:   registry,
	}
	f.svc = NewReminderService(f.notes, f.gatepasses, f.hub, clock.NewFakeClock(testNow), metrics.New(registry))
	return f
}

func (f fixture) seed(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	noteDay := time.Date(2025, 9, 5, 0, 0, 0, 0, time.UTC)
	otherDay := noteDay.AddDate(0, 0, 1)

	for _, n := range []note.Note{
		{Content: "Overdue rent", TargetDateTime: testNow.Add(-26 * time.Hour), Status: note.StatusPending},
		{Content: "Bank at four", TargetDateTime: testNow.Add(6 * time.Hour), Status: note.StatusPending},
		{Content: "Tomorrow", TargetDateTime: testNow.Add(30 * time.Hour), Status: note.StatusPending},
		{Content: "Finished", TargetDateTime: testNow.Add(-time.Hour), Status: note.StatusDone},
	} {
		_, err := f.notes.Create(ctx, n)
		require.NoError(t, err)
	}

	for _, g := range []gatepass.Gatepass{
		{ReceiveDate: noteDay, Category: "Drums", SpecialNote: "Return 4 drums", NoteDate: &noteDay},
		{ReceiveDate: noteDay, Category: "Bags", SpecialNote: "Not yet", NoteDate: &otherDay},
		{ReceiveDate: noteDay, Category: "Blank", SpecialNote: "  ", NoteDate: &noteDay},
	} {
		_, err := f.gatepasses.Create(ctx, g)
		require.NoError(t, err)
	}
}

func (f fixture) pending(t *testing.T) float64 {
	t.Helper()
	families, err := f.registry.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() == "backoffice_reminders_pending" {
			return mf.GetMetric()[0].GetGauge().GetValue()
		}
	}
	t.Fatal("reminders_pending gauge not registered")
	return 0
}

func TestReminderService_ListDue(t *testing.T) {
	// Arrange
	f := newFixture(t)
	f.seed(t)

	// Act
	got, err := f.svc.ListDue(context.Background())

	// Assert
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, reminder.KindNote, got[0].Kind)
	assert.Equal(t, "Overdue rent", got[0].Message)
	assert.True(t, got[0].Overdue)

	assert.Equal(t, reminder.KindGatepass, got[1].Kind)
	assert.Equal(t, "Drums: Return 4 drums", got[1].Message)

	assert.Equal(t, "Bank at four", got[2].Message)
	assert.False(t, got[2].Overdue)
}

func TestReminderService_Broadcast_ReachesSubscribers(t *testing.T) {
	// Arrange
	f := newFixture(t)
	f.seed(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, cleanup := f.svc.Subscribe(ctx)
	defer cleanup()

	// Act
	require.NoError(t, f.svc.Broadcast(context.Background()))

	// Assert
	select {
	case ev := <-events:
		assert.Equal(t, reminder.EventName, ev.Event)
		reminders, ok := ev.Data.([]reminder.Reminder)
		require.True(t, ok)
		assert.Len(t, reminders, 3)
	case <-time.After(time.Second):
		t.Fatal("no reminder event received")
	}

	assert.Equal(t, 3.0, f.pending(t))
}

func TestReminderService_Broadcast_NoSubscribers(t *testing.T) {
	f := newFixture(t)
	f.seed(t)

	require.NoError(t, f.svc.Broadcast(context.Background()))

	assert.Equal(t, 0, f.hub.TotalSubscribers())
	assert.Equal(t, 3.0, f.pending(t))
}

func TestReminderService_Subscribe_StopsOnCancel(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())

	events, cleanup := f.svc.Subscribe(ctx)
	defer cleanup()
	cancel()

	select {
	case _, ok := <-events:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("stream not closed after cancel")
	}
}
