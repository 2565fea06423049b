package repository

import (
	"context"
	"time"

	"contacts/internal/domain/entity"

	"github.com/google/uuid"
)

// OutboxRepository stores outbound events alongside the writes that produced them.
type OutboxRepository interface {
	// Append stores events in the current transaction, assigning ids to events that lack one.
	Append(ctx context.Context, events []*entity.OutboundEvent) error

	// FindPending returns unpublished events created before the cutoff with fewer than maxAttempts tries,
	// oldest first, skipping rows another relay has locked.
	FindPending(ctx context.Context, createdBefore time.Time, maxAttempts, limit int) ([]*entity.OutboundEvent, error)

	// ClaimPending locks one event for the rest of the transaction. It returns nil when the
	// event is already published or another relay holds it.
	ClaimPending(ctx context.Context, id uuid.UUID) (*entity.OutboundEvent, error)

	MarkPublished(ctx context.Context, id uuid.UUID, at time.Time) error
	MarkFailed(ctx context.Context, id uuid.UUID, reason string) error
}
