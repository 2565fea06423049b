package usecase

import (
	"context"

	"contacts/internal/domain/entity"
)

// CreatePrisonerContactInput links an existing contact to a prisoner.
type CreatePrisonerContactInput struct {
	ContactID    int64
	Relationship RelationshipInput
}

// UpdatePrisonerContactInput patches a relationship. Nil fields are left unchanged.
type UpdatePrisonerContactInput struct {
	RelationshipType       *string
	RelationshipToPrisoner *string
	NextOfKin              *bool
	EmergencyContact       *bool
	ApprovedVisitor        *bool
	Active                 *bool
	CurrentTerm            *bool
	Comments               *string
}

// PrisonerContactSummary is one row of a prisoner's contact list.
type PrisonerContactSummary struct {
	Relationship *entity.PrisonerContact
	Contact      *entity.Contact
	Address      *entity.ContactAddress
}

// PrisonerContactUsecase defines prisoner relationship use cases.
type PrisonerContactUsecase interface {
	CreatePrisonerContact(ctx context.Context, req Requester, input *CreatePrisonerContactInput) (*entity.PrisonerContact, error)
	GetPrisonerContact(ctx context.Context, prisonerContactID int64) (*entity.PrisonerContact, error)
	UpdatePrisonerContact(ctx context.Context, req Requester, prisonerContactID int64, input *UpdatePrisonerContactInput) (*entity.PrisonerContact, error)
	DeletePrisonerContact(ctx context.Context, req Requester, prisonerContactID int64) error
	ListPrisonerContacts(ctx context.Context, prisonerNumber string) ([]*PrisonerContactSummary, error)
}
