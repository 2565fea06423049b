package entity

// ContactIdentity is an identity document reference, e.g. a passport or driving licence number.
type ContactIdentity struct {
	ID               int64
	ContactID        int64
	IdentityType     string
	IdentityValue    string
	IssuingAuthority *string
	Audit
}
