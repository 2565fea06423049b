package entity

// Employment records that a contact works for an organisation.
type Employment struct {
	ID             int64
	ContactID      int64
	OrganisationID int64
	IsActive       bool
	Audit
}

// Organisation is a read-only lookup row referenced by employments.
type Organisation struct {
	ID     int64
	Name   string
	Active bool
}
