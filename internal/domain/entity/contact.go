package entity

import "time"

// Contact is a person tracked by the service, independent of any prisoner relationship.
type Contact struct {
	ID                  int64
	TitleCode           *string
	LastName            string
	FirstName           string
	MiddleNames         *string
	DateOfBirth         *time.Time
	LanguageCode        *string
	InterpreterRequired bool
	GenderCode          *string
	IsStaff             bool
	Audit
}

// ContactSummary is the list/search projection of a contact.
// Address is the most relevant address, or nil when the contact has none in force.
type ContactSummary struct {
	Contact *Contact
	Address *ContactAddress
}
