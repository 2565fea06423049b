package usecase

import (
	"context"
	"time"

	"contacts/internal/domain/entity"
)

// RelationshipInput describes a contact's relationship to a prisoner.
type RelationshipInput struct {
	PrisonerNumber         string
	RelationshipType       string
	RelationshipToPrisoner string
	NextOfKin              bool
	EmergencyContact       bool
	ApprovedVisitor        bool
	Comments               *string
}

// CreateContactInput represents the input for creating a contact.
type CreateContactInput struct {
	TitleCode           *string
	LastName            string
	FirstName           string
	MiddleNames         *string
	DateOfBirth         *time.Time
	LanguageCode        *string
	InterpreterRequired bool
	GenderCode          *string
	IsStaff             bool

	// Relationship, when set, links the new contact to a prisoner in the same transaction.
	Relationship *RelationshipInput
}

// UpdateContactInput patches a contact. Nil fields are left unchanged.
type UpdateContactInput struct {
	TitleCode           *string
	LastName            *string
	FirstName           *string
	MiddleNames         *string
	DateOfBirth         *time.Time
	LanguageCode        *string
	InterpreterRequired *bool
	GenderCode          *string
	IsStaff             *bool
}

// CreateContactOutput is the created contact and optional relationship.
type CreateContactOutput struct {
	Contact      *entity.Contact
	Relationship *entity.PrisonerContact
}

// ContactDetails is the full read projection of a contact.
type ContactDetails struct {
	Contact             *entity.Contact
	Addresses           []*entity.ContactAddress
	MostRelevantAddress *entity.ContactAddress
	Phones              []*entity.ContactPhone
	Emails              []*entity.ContactEmail
	Identities          []*entity.ContactIdentity
	Employments         []*entity.Employment
}

// SearchContactsInput filters contacts by last name.
type SearchContactsInput struct {
	LastName string
	Page     int
	Size     int
}

// SearchContactsOutput is one page of search results.
type SearchContactsOutput struct {
	Items []*entity.ContactSummary
	Total int64
	Page  int
	Size  int
}

// ContactUsecase defines contact use cases.
type ContactUsecase interface {
	CreateContact(ctx context.Context, req Requester, input *CreateContactInput) (*CreateContactOutput, error)
	GetContact(ctx context.Context, contactID int64) (*ContactDetails, error)
	UpdateContact(ctx context.Context, req Requester, contactID int64, input *UpdateContactInput) (*entity.Contact, error)
	DeleteContact(ctx context.Context, req Requester, contactID int64) error
	SearchContacts(ctx context.Context, input *SearchContactsInput) (*SearchContactsOutput, error)
}
