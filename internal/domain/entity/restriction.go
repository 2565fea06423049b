package entity

import "time"

// ContactRestriction is a restriction placed on a contact across all prisoners (an "estate-wide" restriction).
type ContactRestriction struct {
	ID              int64
	ContactID       int64
	RestrictionType string
	StartDate       *time.Time
	ExpiryDate      *time.Time
	Comments        *string
	Audit
}

// PrisonerContactRestriction is a restriction scoped to one prisoner relationship.
type PrisonerContactRestriction struct {
	ID                int64
	PrisonerContactID int64
	RestrictionType   string
	StartDate         *time.Time
	ExpiryDate        *time.Time
	Comments          *string
	Audit
}

// RestrictionView decorates a restriction with the display name of whoever entered it.
type RestrictionView[T any] struct {
	Restriction          T
	EnteredByDisplayName string
}
