package impl

import (
	"context"
	"log/slog"
	"time"

	"contacts/internal/domain/entity"
	"contacts/internal/domain/repository"
	"contacts/internal/domain/service"
	"contacts/internal/errors"
	"contacts/internal/infra/metrics"
	"contacts/internal/usecase"

	deliverycontext "contacts/internal/delivery/context"

	"go.uber.org/fx"
)

// MutationState is the lifecycle stage a mutation has reached.
type MutationState string

// Mutation lifecycle stages.
const (
	StateValidating           MutationState = "validating"
	StateWriting              MutationState = "writing"
	StateEnforcingInvariants  MutationState = "enforcing_invariants"
	StateCommitting           MutationState = "committing"
	StatePublishing           MutationState = "publishing"
	StateDone                 MutationState = "done"
	StateRolledBack           MutationState = "rolled_back"
	StateCommittedUnpublished MutationState = "committed_unpublished"
)

// Mutation is the unit of work handed to a write. It carries the transaction-bound
// repositories, the requester and the events produced so far.
type Mutation struct {
	repos     repository.RepositoryFactory
	requester usecase.Requester
	validator *referenceValidator
	now       time.Time
	state     MutationState
	events    []*entity.OutboundEvent
}

// Repos returns repositories bound to the mutation's transaction.
func (mu *Mutation) Repos() repository.RepositoryFactory {
	return mu.repos
}

// Username is written to the audit columns.
func (mu *Mutation) Username() string {
	return mu.requester.Username
}

// Source is the surface the mutation came through.
func (mu *Mutation) Source() entity.Source {
	return mu.requester.Source
}

// FromSync reports whether the mutation replays a system-of-record write.
func (mu *Mutation) FromSync() bool {
	return mu.requester.Source == entity.SourceNOMIS
}

// Now is the mutation's single timestamp, shared by every row it writes.
func (mu *Mutation) Now() time.Time {
	return mu.now
}

// Record queues one outbound event for an entity written by this mutation.
func (mu *Mutation) Record(kind entity.EventKind, entityID int64, ref entity.PersonReference) {
	if mu.state == StateValidating {
		mu.state = StateWriting
	}
	mu.events = append(mu.events, &entity.OutboundEvent{
		Kind:            kind,
		EntityID:        entityID,
		Source:          mu.requester.Source,
		PersonReference: ref,
		OccurredAt:      mu.now,
	})
}

// Events returns the events queued so far.
func (mu *Mutation) Events() []*entity.OutboundEvent {
	return mu.events
}

func (mu *Mutation) enforcing() {
	mu.state = StateEnforcingInvariants
}

// Mutator is the mutation facade: every write goes through Run.
type Mutator struct {
	txManager  repository.TransactionManager
	dispatcher service.EventDispatcher
	validator  *referenceValidator
	clock      func() time.Time
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

// MutatorParams holds dependencies for the mutation facade, injected by Fx.
type MutatorParams struct {
	fx.In

	TxManager      repository.TransactionManager
	Dispatcher     service.EventDispatcher
	PrisonerSearch service.PrisonerSearch
	ReferenceCache service.ReferenceCodeCache `optional:"true"`
	Metrics        *metrics.Metrics          `optional:"true"`
	Logger         *slog.Logger
}

// NewMutator creates the mutation facade shared by every write use case.
func NewMutator(params MutatorParams) *Mutator {
	return &Mutator{
		txManager:  params.TxManager,
		dispatcher: params.Dispatcher,
		validator:  newReferenceValidator(params.ReferenceCache, params.PrisonerSearch),
		clock:      time.Now,
		metrics:    params.Metrics,
		logger:     params.Logger,
	}
}

func (m *Mutator) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, m.logger)
}

// Run executes fn in one transaction. The events fn records are stored in the outbox
// inside that transaction and published only once it has committed. A publish failure
// is logged and left for the relay; it never fails the caller.
func (m *Mutator) Run(ctx context.Context, op string, req usecase.Requester, fn func(ctx context.Context, mu *Mutation) error) error {
	var mu *Mutation
	err := m.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		mu = &Mutation{
			repos:     repos,
			requester: req,
			validator: m.validator,
			now:       m.clock(),
			state:     StateValidating,
		}
		if err := fn(ctx, mu); err != nil {
			return err
		}
		if len(mu.events) == 0 {
			return nil
		}

		mu.state = StateCommitting

		return errors.Wrap(repos.OutboxRepo().Append(ctx, mu.events), "failed to append outbound events")
	})
	if err != nil {
		stage := StateValidating
		if mu != nil {
			stage = mu.state
		}
		m.log(ctx).Warn("Mutation rolled back",
			slog.String("operation", op),
			slog.String("source", string(req.Source)),
			slog.String("stage", string(stage)),
			slog.String("state", string(StateRolledBack)),
			slog.Any("error", err))
		m.metrics.IncMutation(op, string(StateRolledBack))

		return err
	}
	m.metrics.IncMutation(op, "committed")

	if len(mu.events) == 0 {
		return nil
	}

	mu.state = StatePublishing
	if err := m.dispatcher.Dispatch(context.WithoutCancel(ctx), mu.events); err != nil {
		mu.state = StateCommittedUnpublished
		m.log(ctx).Error("Mutation committed but not all events were published",
			slog.String("operation", op),
			slog.String("source", string(req.Source)),
			slog.String("state", string(mu.state)),
			slog.Int("events", len(mu.events)),
			slog.Any("error", err))

		return nil
	}
	mu.state = StateDone

	m.log(ctx).Debug("Mutation completed",
		slog.String("operation", op),
		slog.String("source", string(req.Source)),
		slog.Int("events", len(mu.events)))

	return nil
}
