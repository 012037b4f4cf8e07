package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/cmlabs-hris/backoffice-backend-go/internal/domain/reminder"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/handler/http/response"
)

const streamKeepalive = 30 * time.Second

type ReminderHandler interface {
	List(w http.ResponseWriter, r *http.Request)

	// SSE
	Stream(w http.ResponseWriter, r *http.Request)
}

type reminderHandlerImpl struct {
	reminderService reminder.ReminderService
}

func NewReminderHandler(reminderService reminder.ReminderService) ReminderHandler {
	return &reminderHandlerImpl{
		reminderService: reminderService,
	}
}

// List returns everything that currently needs attention
func (h *reminderHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	reminders, err := h.reminderService.ListDue(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, reminders)
}

// Stream handles SSE connection for reminder pushes
func (h *reminderHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	// Check if streaming is supported
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	// Set SSE headers
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	events, cleanup := h.reminderService.Subscribe(r.Context())
	defer cleanup()

	fmt.Fprint(w, "event: connected\ndata: {\"status\":\"connected\"}\n\n")
	flusher.Flush()

	// Current list first, then every broadcast.
	if current, err := h.reminderService.ListDue(r.Context()); err == nil {
		writeEvent(w, reminder.EventName, current)
		flusher.Flush()
	}

	keepalive := time.NewTicker(streamKeepalive)
	defer keepalive.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			writeEvent(w, event.Event, event.Data)
			flusher.Flush()

		case <-keepalive.C:
			fmt.Fprintf(w, "event: ping\ndata: {\"timestamp\":%d}\n\n", time.Now().Unix())
			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}

func writeEvent(w http.ResponseWriter, name string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", name, data)
}
