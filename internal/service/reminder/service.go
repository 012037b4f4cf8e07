package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/cmlabs-hris/backoffice-backend-go/internal/domain/gatepass"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/domain/note"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/domain/reminder"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/pkg/clock"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/pkg/metrics"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/pkg/sse"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/pkg/validator"
)

// Topic is the hub topic every dashboard stream listens on.
const Topic = "reminders"

type ReminderServiceImpl struct {
	noteRepo     note.NoteRepository
	gatepassRepo gatepass.GatepassRepository
	hub          *sse.Hub
	clock        clock.Clock
	metrics      *metrics.Metrics
}

func NewReminderService(
	noteRepo note.NoteRepository,
	gatepassRepo gatepass.GatepassRepository,
	hub *sse.Hub,
	clk clock.Clock,
	m *metrics.Metrics,
) reminder.ReminderService {
	return &ReminderServiceImpl{
		noteRepo:     noteRepo,
		gatepassRepo: gatepassRepo,
		hub:          hub,
		clock:        clk,
		metrics:      m,
	}
}

// ListDue implements reminder.ReminderService.
func (s *ReminderServiceImpl) ListDue(ctx context.Context) ([]reminder.Reminder, error) {
	now := s.clock.Now()
	today := validator.DateOnly(now)

	notes, err := s.noteRepo.ListPendingBefore(ctx, today.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("failed to load pending notes: %w", err)
	}

	entries, err := s.gatepassRepo.ListNotesOn(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("failed to load gatepass notes: %w", err)
	}

	reminders := make([]reminder.Reminder, 0, len(notes)+len(entries))
	for _, n := range notes {
		if !n.NeedsAttention(now) {
			continue
		}
		reminders = append(reminders, reminder.Reminder{
			Kind:     reminder.KindNote,
			SourceID: n.ID,
			Message:  n.Content,
			DueAt:    n.TargetDateTime,
			Overdue:  n.Overdue(now),
		})
	}
	for _, g := range entries {
		reminders = append(reminders, reminder.Reminder{
			Kind:     reminder.KindGatepass,
			SourceID: g.ID,
			Message:  fmt.Sprintf("%s: %s", g.Category, g.SpecialNote),
			DueAt:    *g.NoteDate,
		})
	}

	sort.SliceStable(reminders, func(i, j int) bool {
		return reminders[i].DueAt.Before(reminders[j].DueAt)
	})
	return reminders, nil
}

// Broadcast implements reminder.ReminderService.
func (s *ReminderServiceImpl) Broadcast(ctx context.Context) error {
	reminders, err := s.ListDue(ctx)
	if err != nil {
		return err
	}

	s.metrics.SetRemindersPending(len(reminders))

	subscribers := s.hub.SubscriberCount(Topic)
	if subscribers == 0 {
		return nil
	}

	s.hub.Publish(Topic, sse.Event{
		Event: reminder.EventName,
		Data:  reminders,
	})
	slog.Info("Reminders broadcast", "count", len(reminders), "subscribers", subscribers)
	return nil
}

// Subscribe implements reminder.ReminderService.
func (s *ReminderServiceImpl) Subscribe(ctx context.Context) (<-chan reminder.Event, func()) {
	ch, cleanup := s.hub.Subscribe(Topic)

	out := make(chan reminder.Event, 10)

	go func() {
		defer close(out)
		for {
			select {
			case event, ok := <-ch:
				if !ok {
					return
				}
				select {
				case out <- reminder.Event{Event: event.Event, Data: event.Data}:
				case <-ctx.Done():
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, cleanup
}
