package repository

import (
	"context"

	"contacts/internal/domain/entity"
	"contacts/internal/errors"
)

// Domain-specific errors for restriction persistence.
var (
	ErrRestrictionNotFound                = errors.New("contact restriction not found")
	ErrPrisonerContactRestrictionNotFound = errors.New("prisoner contact restriction not found")
)

// RestrictionRepository defines persistence operations for contact (estate-wide) restrictions.
type RestrictionRepository interface {
	Create(ctx context.Context, restriction *entity.ContactRestriction) error
	FindByID(ctx context.Context, id int64) (*entity.ContactRestriction, error)
	FindByContact(ctx context.Context, contactID int64) ([]*entity.ContactRestriction, error)
	Update(ctx context.Context, restriction *entity.ContactRestriction) error
	Delete(ctx context.Context, id int64) error
}

// PrisonerContactRestrictionRepository defines persistence operations for relationship restrictions.
type PrisonerContactRestrictionRepository interface {
	Create(ctx context.Context, restriction *entity.PrisonerContactRestriction) error
	FindByID(ctx context.Context, id int64) (*entity.PrisonerContactRestriction, error)
	FindByPrisonerContact(ctx context.Context, prisonerContactID int64) ([]*entity.PrisonerContactRestriction, error)
	Update(ctx context.Context, restriction *entity.PrisonerContactRestriction) error
	Delete(ctx context.Context, id int64) error
}
