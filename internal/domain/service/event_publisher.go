package service

import (
	"context"

	"contacts/internal/domain/entity"
)

// EventPublisher hands outbound events to the notification channel.
type EventPublisher interface {
	// Publish delivers one event. A nil error means the channel accepted it.
	Publish(ctx context.Context, event *entity.OutboundEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

// EventDispatcher publishes the events of a committed mutation and records each outcome.
type EventDispatcher interface {
	// Dispatch publishes events in order. Failures are joined into the returned error
	// as domain PublishFailure values; events that failed stay pending for the relay.
	Dispatch(ctx context.Context, events []*entity.OutboundEvent) error
}
