package pubsub

import (
	"context"
	"log/slog"
	"time"

	"contacts/internal/domain/entity"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/domain/repository"
	"contacts/internal/domain/service"
	"contacts/internal/errors"
	"contacts/internal/infra/metrics"

	"go.uber.org/fx"
)

// dispatcher publishes committed events and records each outcome on the outbox row.
type dispatcher struct {
	publisher service.EventPublisher
	repos     repository.RepositoryFactory
	metrics   *metrics.Metrics
	clock     func() time.Time
	logger    *slog.Logger
}

// DispatcherParams holds dependencies for the dispatcher, injected by Fx.
type DispatcherParams struct {
	fx.In

	Publisher service.EventPublisher
	Repos     repository.RepositoryFactory
	Metrics   *metrics.Metrics `optional:"true"`
	Logger    *slog.Logger
}

// NewDispatcher creates the EventDispatcher used after a mutation commits.
func NewDispatcher(params DispatcherParams) service.EventDispatcher {
	return &dispatcher{
		publisher: params.Publisher,
		repos:     params.Repos,
		metrics:   params.Metrics,
		clock:     time.Now,
		logger:    params.Logger,
	}
}

// Dispatch publishes every event even when an earlier one fails.
func (d *dispatcher) Dispatch(ctx context.Context, events []*entity.OutboundEvent) error {
	var failures []error
	for _, event := range events {
		if err := publishOne(ctx, d.publisher, d.repos.OutboxRepo(), d.metrics, d.clock, event); err != nil {
			failures = append(failures, err)
		}
	}

	return errors.Join(failures...)
}

// publishOne hands one event to the publisher and records the outcome.
// A bookkeeping failure after a successful publish is logged only: the event may be sent again.
func publishOne(
	ctx context.Context,
	publisher service.EventPublisher,
	outbox repository.OutboxRepository,
	m *metrics.Metrics,
	clock func() time.Time,
	event *entity.OutboundEvent,
) error {
	if err := publisher.Publish(ctx, event); err != nil {
		m.IncPublishFailure(string(event.Kind))
		failure := &domainerrors.PublishFailure{EventID: event.ID.String(), Kind: string(event.Kind), Err: err}
		if markErr := outbox.MarkFailed(ctx, event.ID, err.Error()); markErr != nil {
			return errors.Join(failure, markErr)
		}
		event.Attempts++

		return failure
	}

	m.IncPublished(string(event.Kind), string(event.Source))
	event.Attempts++

	return errors.Wrap(outbox.MarkPublished(ctx, event.ID, clock()), "failed to mark event published")
}
