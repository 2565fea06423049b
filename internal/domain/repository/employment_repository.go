package repository

import (
	"context"

	"contacts/internal/domain/entity"
	"contacts/internal/errors"
)

// Domain-specific errors for employment persistence.
var (
	ErrEmploymentNotFound   = errors.New("employment not found")
	ErrOrganisationNotFound = errors.New("organisation not found")
)

// EmploymentRepository defines persistence operations for employments.
type EmploymentRepository interface {
	Create(ctx context.Context, employment *entity.Employment) error
	FindByID(ctx context.Context, id int64) (*entity.Employment, error)
	FindByContact(ctx context.Context, contactID int64) ([]*entity.Employment, error)
	Update(ctx context.Context, employment *entity.Employment) error
	Delete(ctx context.Context, id int64) error
}

// OrganisationRepository is a read-only lookup of organisations.
type OrganisationRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Organisation, error)
}
