package sse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_PublishReachesTopicSubscribers(t *testing.T) {
	// Arrange
	hub := NewHub()
	a, cleanupA := hub.Subscribe("reminders")
	defer cleanupA()
	b, cleanupB := hub.Subscribe("other")
	defer cleanupB()

	// Act
	hub.Publish("reminders", Event{Event: "reminders", Data: 3})

	// Assert
	require.Len(t, a, 1)
	got := <-a
	assert.Equal(t, "reminders", got.Topic)
	assert.Equal(t, 3, got.Data)
	assert.Len(t, b, 0)
}

func TestHub_CleanupRemovesSubscriber(t *testing.T) {
	hub := NewHub()
	_, cleanup := hub.Subscribe("reminders")
	assert.Equal(t, 1, hub.SubscriberCount("reminders"))

	cleanup()
	cleanup()

	assert.Equal(t, 0, hub.SubscriberCount("reminders"))
	assert.Equal(t, 0, hub.TotalSubscribers())
}

func TestHub_FullBufferDoesNotBlock(t *testing.T) {
	hub := NewHub()
	ch, cleanup := hub.Subscribe("reminders")
	defer cleanup()

	for i := 0; i < 25; i++ {
		hub.Publish("reminders", Event{Event: "reminders", Data: i})
	}

	assert.Len(t, ch, 10)
}
