package entity

import (
	"time"

	"github.com/google/uuid"
)

// Source tags where a mutation originated.
type Source string

const (
	// SourceDPS marks writes made through this service's own domain API.
	SourceDPS Source = "DPS"
	// SourceNOMIS marks writes replayed from the system of record through the sync API.
	SourceNOMIS Source = "NOMIS"
)

// EventKind identifies the type of an outbound event.
type EventKind string

// Outbound event kinds, one created/updated/deleted triple per tracked entity.
const (
	EventContactCreated EventKind = "contacts-api.contact.created"
	EventContactUpdated EventKind = "contacts-api.contact.updated"
	EventContactDeleted EventKind = "contacts-api.contact.deleted"

	EventAddressCreated EventKind = "contacts-api.contact-address.created"
	EventAddressUpdated EventKind = "contacts-api.contact-address.updated"
	EventAddressDeleted EventKind = "contacts-api.contact-address.deleted"

	EventPhoneCreated EventKind = "contacts-api.contact-phone.created"
	EventPhoneUpdated EventKind = "contacts-api.contact-phone.updated"
	EventPhoneDeleted EventKind = "contacts-api.contact-phone.deleted"

	EventAddressPhoneCreated EventKind = "contacts-api.contact-address-phone.created"
	EventAddressPhoneUpdated EventKind = "contacts-api.contact-address-phone.updated"
	EventAddressPhoneDeleted EventKind = "contacts-api.contact-address-phone.deleted"

	EventEmailCreated EventKind = "contacts-api.contact-email.created"
	EventEmailUpdated EventKind = "contacts-api.contact-email.updated"
	EventEmailDeleted EventKind = "contacts-api.contact-email.deleted"

	EventIdentityCreated EventKind = "contacts-api.contact-identity.created"
	EventIdentityUpdated EventKind = "contacts-api.contact-identity.updated"
	EventIdentityDeleted EventKind = "contacts-api.contact-identity.deleted"

	EventRestrictionCreated EventKind = "contacts-api.contact-restriction.created"
	EventRestrictionUpdated EventKind = "contacts-api.contact-restriction.updated"
	EventRestrictionDeleted EventKind = "contacts-api.contact-restriction.deleted"

	EventPrisonerContactCreated EventKind = "contacts-api.prisoner-contact.created"
	EventPrisonerContactUpdated EventKind = "contacts-api.prisoner-contact.updated"
	EventPrisonerContactDeleted EventKind = "contacts-api.prisoner-contact.deleted"

	EventPrisonerContactRestrictionCreated EventKind = "contacts-api.prisoner-contact-restriction.created"
	EventPrisonerContactRestrictionUpdated EventKind = "contacts-api.prisoner-contact-restriction.updated"
	EventPrisonerContactRestrictionDeleted EventKind = "contacts-api.prisoner-contact-restriction.deleted"

	EventEmploymentCreated EventKind = "contacts-api.employment.created"
	EventEmploymentUpdated EventKind = "contacts-api.employment.updated"
	EventEmploymentDeleted EventKind = "contacts-api.employment.deleted"
)

// PersonReference identifies the people an event concerns.
// NomsNumber is set only for prisoner-relationship scoped entities.
type PersonReference struct {
	DpsContactID int64
	NomsNumber   *string
}

// OutboundEvent describes one completed mutation.
type OutboundEvent struct {
	ID              uuid.UUID
	Kind            EventKind
	EntityID        int64
	Source          Source
	PersonReference PersonReference
	OccurredAt      time.Time
	Attempts        int
}

// ContactReference builds a person reference for a contact-scoped entity.
func ContactReference(contactID int64) PersonReference {
	return PersonReference{DpsContactID: contactID}
}

// PrisonerReference builds a person reference for a prisoner-relationship scoped entity.
func PrisonerReference(contactID int64, prisonerNumber string) PersonReference {
	return PersonReference{DpsContactID: contactID, NomsNumber: &prisonerNumber}
}
