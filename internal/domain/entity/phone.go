package entity

// ContactPhone is a phone number owned by a contact.
type ContactPhone struct {
	ID          int64
	ContactID   int64
	PhoneType   string
	PhoneNumber string
	ExtNumber   *string
	Audit
}

// ContactAddressPhone links one of a contact's phones to one of its addresses.
type ContactAddressPhone struct {
	ID               int64
	ContactID        int64
	ContactAddressID int64
	ContactPhoneID   int64
	Audit
}

// AddressPhone is the read projection of an address-linked phone.
type AddressPhone struct {
	Link  *ContactAddressPhone
	Phone *ContactPhone
}
