package model

import "time"

// ContactModel is the GORM-specific struct for the 'contact' table.
type ContactModel struct {
	ContactID           int64      `gorm:"primaryKey;autoIncrement"`
	Title               *string    `gorm:"type:varchar(12)"`
	LastName            string     `gorm:"type:varchar(35);not null;index:idx_contact_last_name"`
	FirstName           string     `gorm:"type:varchar(35);not null"`
	MiddleNames         *string    `gorm:"type:varchar(35)"`
	DateOfBirth         *time.Time `gorm:"type:date"`
	LanguageCode        *string    `gorm:"type:varchar(12)"`
	InterpreterRequired bool       `gorm:"not null;default:false"`
	Gender              *string    `gorm:"type:varchar(12)"`
	Staff               bool       `gorm:"column:staff_flag;not null;default:false"`
	AuditColumns
}

// TableName explicitly sets the table name for GORM.
func (ContactModel) TableName() string {
	return "contact"
}

// ContactAddressModel is the GORM-specific struct for the 'contact_address' table.
type ContactAddressModel struct {
	ContactAddressID int64      `gorm:"primaryKey;autoIncrement"`
	ContactID        int64      `gorm:"not null;index:idx_contact_address_contact_id"`
	AddressType      *string    `gorm:"type:varchar(12)"`
	PrimaryAddress   bool       `gorm:"not null;default:false"`
	MailFlag         bool       `gorm:"not null;default:false"`
	FlatNumber       *string    `gorm:"type:varchar(30)"`
	Property         *string    `gorm:"type:varchar(130)"`
	Street           *string    `gorm:"type:varchar(160)"`
	Area             *string    `gorm:"type:varchar(70)"`
	CityCode         *string    `gorm:"type:varchar(12)"`
	CountyCode       *string    `gorm:"type:varchar(12)"`
	PostCode         *string    `gorm:"type:varchar(12)"`
	CountryCode      *string    `gorm:"type:varchar(12)"`
	NoFixedAddress   bool       `gorm:"not null;default:false"`
	StartDate        *time.Time `gorm:"type:date"`
	EndDate          *time.Time `gorm:"type:date"`
	Comments         *string    `gorm:"type:varchar(240)"`
	Verified         bool       `gorm:"not null;default:false"`
	VerifiedBy       *string    `gorm:"type:varchar(100)"`
	VerifiedTime     *time.Time
	AuditColumns
}

// TableName explicitly sets the table name for GORM.
func (ContactAddressModel) TableName() string {
	return "contact_address"
}

// ContactPhoneModel is the GORM-specific struct for the 'contact_phone' table.
type ContactPhoneModel struct {
	ContactPhoneID int64   `gorm:"primaryKey;autoIncrement"`
	ContactID      int64   `gorm:"not null;index:idx_contact_phone_contact_id"`
	PhoneType      string  `gorm:"type:varchar(12);not null"`
	PhoneNumber    string  `gorm:"type:varchar(40);not null"`
	ExtNumber      *string `gorm:"type:varchar(7)"`
	AuditColumns
}

// TableName explicitly sets the table name for GORM.
func (ContactPhoneModel) TableName() string {
	return "contact_phone"
}

// ContactAddressPhoneModel is the GORM-specific struct for the 'contact_address_phone' table.
type ContactAddressPhoneModel struct {
	ContactAddressPhoneID int64 `gorm:"primaryKey;autoIncrement"`
	ContactID             int64 `gorm:"not null"`
	ContactAddressID      int64 `gorm:"not null;index:idx_contact_address_phone_address_id"`
	ContactPhoneID        int64 `gorm:"not null;index:idx_contact_address_phone_phone_id"`
	AuditColumns
}

// TableName explicitly sets the table name for GORM.
func (ContactAddressPhoneModel) TableName() string {
	return "contact_address_phone"
}

// ContactEmailModel is the GORM-specific struct for the 'contact_email' table.
type ContactEmailModel struct {
	ContactEmailID int64  `gorm:"primaryKey;autoIncrement"`
	ContactID      int64  `gorm:"not null;index:idx_contact_email_contact_id"`
	EmailAddress   string `gorm:"type:varchar(240);not null"`
	AuditColumns
}

// TableName explicitly sets the table name for GORM.
func (ContactEmailModel) TableName() string {
	return "contact_email"
}

// ContactIdentityModel is the GORM-specific struct for the 'contact_identity' table.
type ContactIdentityModel struct {
	ContactIdentityID int64   `gorm:"primaryKey;autoIncrement"`
	ContactID         int64   `gorm:"not null;index:idx_contact_identity_contact_id"`
	IdentityType      string  `gorm:"type:varchar(12);not null"`
	Identity          string  `gorm:"type:varchar(20);not null"`
	IssuingAuthority  *string `gorm:"type:varchar(40)"`
	AuditColumns
}

// TableName explicitly sets the table name for GORM.
func (ContactIdentityModel) TableName() string {
	return "contact_identity"
}

