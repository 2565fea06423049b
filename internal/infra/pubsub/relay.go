package pubsub

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"contacts/config"
	"contacts/internal/domain/entity"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/domain/repository"
	"contacts/internal/domain/service"
	"contacts/internal/errors"
	"contacts/internal/infra/metrics"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// Relay retries outbox events that were not published right after their commit.
type Relay struct {
	txManager   repository.TransactionManager
	publisher   service.EventPublisher
	metrics     *metrics.Metrics
	interval    time.Duration
	gracePeriod time.Duration
	batchSize   int
	maxAttempts int
	clock       func() time.Time
	logger      *slog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// RelayParams holds dependencies for the relay, injected by Fx.
type RelayParams struct {
	fx.In

	Lc        fx.Lifecycle
	Config    *config.Config
	TxManager repository.TransactionManager
	Publisher service.EventPublisher
	Metrics   *metrics.Metrics `optional:"true"`
	Logger    *slog.Logger
}

// NewRelay creates the relay and ties its loop to the application lifecycle.
func NewRelay(params RelayParams) *Relay {
	cfg := params.Config.Outbox
	relay := &Relay{
		txManager:   params.TxManager,
		publisher:   params.Publisher,
		metrics:     params.Metrics,
		interval:    cfg.RelayInterval,
		gracePeriod: cfg.RelayGracePeriod,
		batchSize:   cfg.RelayBatchSize,
		maxAttempts: cfg.MaxAttempts,
		clock:       time.Now,
		logger:      params.Logger,
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			relay.Start()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return relay.Stop(ctx)
		},
	})

	return relay
}

// Start runs the relay loop in the background until Stop.
func (r *Relay) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()

		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := r.RelayOnce(ctx); err != nil && !errors.Is(err, context.Canceled) {
					r.logger.Error("Outbox relay pass failed", slog.Any("error", err))
				}
			}
		}
	}()

	r.logger.Info("Outbox relay started",
		slog.Duration("interval", r.interval),
		slog.Duration("grace_period", r.gracePeriod),
		slog.Int("max_attempts", r.maxAttempts),
	)
}

// Stop ends the loop and waits for the current pass to finish.
func (r *Relay) Stop(ctx context.Context) error {
	if r.cancel == nil {
		return nil
	}
	r.cancel()

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		r.logger.Info("Outbox relay stopped")

		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "outbox relay did not stop in time")
	}
}

// RelayOnce publishes one batch of pending events and returns how many were published.
// Each event is claimed and marked in its own transaction, so a bookkeeping failure on
// one event never undoes the marks of the others.
func (r *Relay) RelayOnce(ctx context.Context) (int, error) {
	var candidates []*entity.OutboundEvent
	err := r.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		var err error
		candidates, err = repos.OutboxRepo().FindPending(ctx, r.clock().Add(-r.gracePeriod), r.maxAttempts, r.batchSize)

		return err
	})
	if err != nil {
		return 0, err
	}

	published := 0
	for _, candidate := range candidates {
		if err := ctx.Err(); err != nil {
			return published, err
		}

		relayed, err := r.relayOne(ctx, candidate.ID)
		if err != nil {
			r.logger.Error("Outbound event relay failed",
				slog.String("event_id", candidate.ID.String()),
				slog.String("event_type", string(candidate.Kind)),
				slog.Any("error", err))

			continue
		}
		if relayed {
			published++
		}
	}

	return published, nil
}

func (r *Relay) relayOne(ctx context.Context, id uuid.UUID) (bool, error) {
	relayed := false
	err := r.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		outbox := repos.OutboxRepo()
		event, err := outbox.ClaimPending(ctx, id)
		if err != nil || event == nil {
			return err
		}

		err = publishOne(ctx, r.publisher, outbox, r.metrics, r.clock, event)
		var failure *domainerrors.PublishFailure
		switch {
		case err == nil:
			relayed = true
			r.metrics.IncRelayed()

			return nil
		case errors.As(err, &failure):
			r.logPublishFailure(event, err)
			if err != error(failure) {
				// MarkFailed failed as well.
				return err
			}

			return nil
		default:
			return err
		}
	})

	return relayed, err
}

func (r *Relay) logPublishFailure(event *entity.OutboundEvent, err error) {
	attrs := []any{
		slog.String("event_id", event.ID.String()),
		slog.String("event_type", string(event.Kind)),
		slog.Int("attempts", event.Attempts),
		slog.Any("error", err),
	}
	if event.Attempts >= r.maxAttempts {
		r.metrics.IncAbandoned()
		r.logger.Error("Outbound event abandoned after max attempts", attrs...)

		return
	}
	r.logger.Warn("Outbound event publish retry failed", attrs...)
}
