package usecase

import (
	"context"

	"contacts/internal/domain/entity"
)

// EmailInput describes an email address.
type EmailInput struct {
	EmailAddress string
}

// IdentityInput describes an identity document reference.
type IdentityInput struct {
	IdentityType     string
	IdentityValue    string
	IssuingAuthority *string
}

// EmailUsecase defines contact email use cases.
type EmailUsecase interface {
	CreateEmail(ctx context.Context, req Requester, contactID int64, input *EmailInput) (*entity.ContactEmail, error)
	GetEmail(ctx context.Context, contactID, emailID int64) (*entity.ContactEmail, error)
	UpdateEmail(ctx context.Context, req Requester, contactID, emailID int64, input *EmailInput) (*entity.ContactEmail, error)
	DeleteEmail(ctx context.Context, req Requester, contactID, emailID int64) error
}

// IdentityUsecase defines contact identity use cases.
type IdentityUsecase interface {
	CreateIdentity(ctx context.Context, req Requester, contactID int64, input *IdentityInput) (*entity.ContactIdentity, error)
	GetIdentity(ctx context.Context, contactID, identityID int64) (*entity.ContactIdentity, error)
	UpdateIdentity(ctx context.Context, req Requester, contactID, identityID int64, input *IdentityInput) (*entity.ContactIdentity, error)
	DeleteIdentity(ctx context.Context, req Requester, contactID, identityID int64) error
}
