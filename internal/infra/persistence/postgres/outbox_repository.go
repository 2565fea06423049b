package postgres

import (
	"context"
	"time"

	"contacts/internal/domain/entity"
	"contacts/internal/domain/repository"
	"contacts/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// outboxRepository implements the repository.OutboxRepository interface.
type outboxRepository struct {
	db *gorm.DB
}

// NewOutboxRepository is the constructor for outboxRepository.
func NewOutboxRepository(db *gorm.DB) repository.OutboxRepository {
	return &outboxRepository{
		db: db,
	}
}

// Append inserts the events in one statement.
func (repo *outboxRepository) Append(ctx context.Context, events []*entity.OutboundEvent) error {
	if len(events) == 0 {
		return nil
	}

	now := time.Now()
	eventModels := make([]*model.OutboundEventModel, 0, len(events))
	for _, event := range events {
		if event.ID == uuid.Nil {
			event.ID = uuid.New()
		}
		eventM := fromOutboundEventDomain(event)
		eventM.CreatedAt = now
		eventModels = append(eventModels, eventM)
	}

	if err := repo.db.WithContext(ctx).Create(&eventModels).Error; err != nil {
		return writeError(err, "outbound event")
	}

	return nil
}

// FindPending lists unpublished events. Rows locked by another relay are skipped.
func (repo *outboxRepository) FindPending(ctx context.Context, createdBefore time.Time, maxAttempts, limit int) ([]*entity.OutboundEvent, error) {
	var eventModels []*model.OutboundEventModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write, clause.Locking{Strength: clause.LockingStrengthUpdate, Options: clause.LockingOptionsSkipLocked}).
		Where("published_at IS NULL AND created_at < ? AND attempts < ?", createdBefore, maxAttempts).
		Order("created_at").
		Limit(limit).
		Find(&eventModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find pending outbound events")
	}

	events := make([]*entity.OutboundEvent, 0, len(eventModels))
	for _, eventM := range eventModels {
		events = append(events, toOutboundEventDomain(eventM))
	}

	return events, nil
}

func (repo *outboxRepository) ClaimPending(ctx context.Context, id uuid.UUID) (*entity.OutboundEvent, error) {
	var eventModels []*model.OutboundEventModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write, clause.Locking{Strength: clause.LockingStrengthUpdate, Options: clause.LockingOptionsSkipLocked}).
		Where("id = ? AND published_at IS NULL", id).
		Limit(1).
		Find(&eventModels).Error; err != nil {
		return nil, errors.Wrapf(err, "failed to claim outbound event %s", id)
	}
	if len(eventModels) == 0 {
		return nil, nil
	}

	return toOutboundEventDomain(eventModels[0]), nil
}

func (repo *outboxRepository) MarkPublished(ctx context.Context, id uuid.UUID, at time.Time) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.OutboundEventModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"published_at": at,
			"attempts":     gorm.Expr("attempts + 1"),
			"last_error":   nil,
		}).Error; err != nil {
		return errors.Wrap(err, "failed to mark outbound event published")
	}

	return nil
}

func (repo *outboxRepository) MarkFailed(ctx context.Context, id uuid.UUID, reason string) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.OutboundEventModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"attempts":   gorm.Expr("attempts + 1"),
			"last_error": reason,
		}).Error; err != nil {
		return errors.Wrap(err, "failed to mark outbound event failed")
	}

	return nil
}

func toOutboundEventDomain(data *model.OutboundEventModel) *entity.OutboundEvent {
	return &entity.OutboundEvent{
		ID:       data.ID,
		Kind:     entity.EventKind(data.EventType),
		EntityID: data.EntityID,
		Source:   entity.Source(data.Source),
		PersonReference: entity.PersonReference{
			DpsContactID: data.DpsContactID,
			NomsNumber:   data.NomsNumber,
		},
		OccurredAt: data.OccurredAt,
		Attempts:   data.Attempts,
	}
}

func fromOutboundEventDomain(data *entity.OutboundEvent) *model.OutboundEventModel {
	return &model.OutboundEventModel{
		ID:           data.ID,
		EventType:    string(data.Kind),
		EntityID:     data.EntityID,
		Source:       string(data.Source),
		DpsContactID: data.PersonReference.DpsContactID,
		NomsNumber:   data.PersonReference.NomsNumber,
		OccurredAt:   data.OccurredAt,
		Attempts:     data.Attempts,
	}
}
