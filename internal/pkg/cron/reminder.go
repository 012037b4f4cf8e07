package cron

import (
	"context"
	"time"

	"github.com/cmlabs-hris/backoffice-backend-go/internal/domain/reminder"
)

const DefaultReminderInterval = 15 * time.Minute

// ReminderJobs pushes due notes and today's gatepass notes to connected
// dashboards.
type ReminderJobs struct {
	reminderService reminder.ReminderService
	interval        time.Duration
}

func NewReminderJobs(reminderService reminder.ReminderService, interval time.Duration) *ReminderJobs {
	if interval <= 0 {
		interval = DefaultReminderInterval
	}
	return &ReminderJobs{
		reminderService: reminderService,
		interval:        interval,
	}
}

func (j *ReminderJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("broadcast_reminders", j.interval, j.BroadcastReminders)
}

func (j *ReminderJobs) BroadcastReminders(ctx context.Context) error {
	return j.reminderService.Broadcast(ctx)
}
