package entity

// ContactEmail is an email address owned by a contact.
type ContactEmail struct {
	ID           int64
	ContactID    int64
	EmailAddress string
	Audit
}
