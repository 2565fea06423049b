package repository

import (
	"context"

	"contacts/internal/domain/entity"
	"contacts/internal/errors"
)

// ErrPrisonerContactNotFound is returned when a prisoner contact relationship does not exist.
var ErrPrisonerContactNotFound = errors.New("prisoner contact not found")

// PrisonerContactRepository defines persistence operations for prisoner contact relationships.
type PrisonerContactRepository interface {
	Create(ctx context.Context, relationship *entity.PrisonerContact) error
	FindByID(ctx context.Context, id int64) (*entity.PrisonerContact, error)
	FindByContact(ctx context.Context, contactID int64) ([]*entity.PrisonerContact, error)
	FindByPrisoner(ctx context.Context, prisonerNumber string) ([]*entity.PrisonerContact, error)
	Update(ctx context.Context, relationship *entity.PrisonerContact) error
	Delete(ctx context.Context, id int64) error
}
