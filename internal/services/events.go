package services

import (
	"salon/internal/metrics"

	"github.com/rs/zerolog"
)

// Event types published after successful mutations.
const (
	EventServiceCreated = "service.created"
	EventServiceUpdated = "service.updated"
	EventServiceDeleted = "service.deleted"
	EventBookingCreated = "booking.created"
	EventBookingUpdated = "booking.updated"
	EventBookingDeleted = "booking.deleted"
)

// EventPublisher delivers domain events to an external broker.
type EventPublisher interface {
	PublishEvent(eventType string, payload interface{}) error
}

// notify records the mutation and publishes it. Publish failures are logged, never returned.
func notify(events EventPublisher, log zerolog.Logger, resource, action, eventType string, payload interface{}) {
	metrics.IncMutation(resource, action)
	if events == nil {
		return
	}
	if err := events.PublishEvent(eventType, payload); err != nil {
		log.Warn().Err(err).Str("event", eventType).Msg("failed to publish event")
	}
}
