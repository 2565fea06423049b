package usecase

import (
	"context"
	"time"

	"contacts/internal/domain/entity"
)

// RestrictionInput describes a restriction.
type RestrictionInput struct {
	RestrictionType string
	StartDate       *time.Time
	ExpiryDate      *time.Time
	Comments        *string
}

// ContactRestrictionView is a contact restriction with the display name of whoever entered it.
type ContactRestrictionView = entity.RestrictionView[*entity.ContactRestriction]

// PrisonerContactRestrictionView is a relationship restriction with the display name of whoever entered it.
type PrisonerContactRestrictionView = entity.RestrictionView[*entity.PrisonerContactRestriction]

// RestrictionUsecase defines restriction use cases for contacts and prisoner relationships.
type RestrictionUsecase interface {
	CreateContactRestriction(ctx context.Context, req Requester, contactID int64, input *RestrictionInput) (*entity.ContactRestriction, error)
	GetContactRestriction(ctx context.Context, contactID, restrictionID int64) (*entity.ContactRestriction, error)
	UpdateContactRestriction(ctx context.Context, req Requester, contactID, restrictionID int64, input *RestrictionInput) (*entity.ContactRestriction, error)
	DeleteContactRestriction(ctx context.Context, req Requester, contactID, restrictionID int64) error
	ListContactRestrictions(ctx context.Context, contactID int64) ([]*ContactRestrictionView, error)

	CreatePrisonerContactRestriction(ctx context.Context, req Requester, prisonerContactID int64, input *RestrictionInput) (*entity.PrisonerContactRestriction, error)
	GetPrisonerContactRestriction(ctx context.Context, restrictionID int64) (*entity.PrisonerContactRestriction, error)
	UpdatePrisonerContactRestriction(ctx context.Context, req Requester, prisonerContactID, restrictionID int64, input *RestrictionInput) (*entity.PrisonerContactRestriction, error)
	DeletePrisonerContactRestriction(ctx context.Context, req Requester, restrictionID int64) error
	ListPrisonerContactRestrictions(ctx context.Context, prisonerContactID int64) ([]*PrisonerContactRestrictionView, error)
}
