package entity

import "time"

// ContactAddress is a postal address owned by exactly one contact.
// Among a contact's addresses at most one is primary and at most one is the mail address.
type ContactAddress struct {
	ID             int64
	ContactID      int64
	AddressType    *string
	PrimaryAddress bool
	MailFlag       bool
	FlatNumber     *string
	Property       *string
	Street         *string
	Area           *string
	CityCode       *string
	CountyCode     *string
	PostCode       *string
	CountryCode    *string
	NoFixedAddress bool
	StartDate      *time.Time
	EndDate        *time.Time
	Comments       *string
	Verified       bool
	VerifiedBy     *string
	VerifiedTime   *time.Time
	Audit
}

// InForce reports whether the address has no end date or ends after the given day.
func (a *ContactAddress) InForce(now time.Time) bool {
	if a.EndDate == nil {
		return true
	}

	return truncateToDay(*a.EndDate).After(truncateToDay(now))
}

// SetVerified records the verification state, stamping who verified when it turns on.
func (a *ContactAddress) SetVerified(verified bool, username string, at time.Time) {
	switch {
	case verified && !a.Verified:
		a.Verified = true
		a.VerifiedBy = &username
		a.VerifiedTime = &at
	case !verified:
		a.Verified = false
		a.VerifiedBy = nil
		a.VerifiedTime = nil
	}
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
