package repository

import (
	"context"

	"contacts/internal/domain/entity"
	"contacts/internal/errors"
)

// Domain-specific errors for email and identity persistence.
var (
	ErrEmailNotFound    = errors.New("email not found")
	ErrIdentityNotFound = errors.New("identity not found")
)

// EmailRepository defines persistence operations for contact emails.
type EmailRepository interface {
	Create(ctx context.Context, email *entity.ContactEmail) error
	FindByID(ctx context.Context, id int64) (*entity.ContactEmail, error)
	FindByContact(ctx context.Context, contactID int64) ([]*entity.ContactEmail, error)
	Update(ctx context.Context, email *entity.ContactEmail) error
	Delete(ctx context.Context, id int64) error
}

// IdentityRepository defines persistence operations for contact identities.
type IdentityRepository interface {
	Create(ctx context.Context, identity *entity.ContactIdentity) error
	FindByID(ctx context.Context, id int64) (*entity.ContactIdentity, error)
	FindByContact(ctx context.Context, contactID int64) ([]*entity.ContactIdentity, error)
	Update(ctx context.Context, identity *entity.ContactIdentity) error
	Delete(ctx context.Context, id int64) error
}
