package model

import "time"

// ContactRestrictionModel is the GORM-specific struct for the 'contact_restriction' table.
type ContactRestrictionModel struct {
	ContactRestrictionID int64      `gorm:"primaryKey;autoIncrement"`
	ContactID            int64      `gorm:"not null;index:idx_contact_restriction_contact_id"`
	RestrictionType      string     `gorm:"type:varchar(12);not null"`
	StartDate            *time.Time `gorm:"type:date"`
	ExpiryDate           *time.Time `gorm:"type:date"`
	Comments             *string    `gorm:"type:varchar(240)"`
	AuditColumns
}

// TableName explicitly sets the table name for GORM.
func (ContactRestrictionModel) TableName() string {
	return "contact_restriction"
}

// PrisonerContactModel is the GORM-specific struct for the 'prisoner_contact' table.
type PrisonerContactModel struct {
	PrisonerContactID int64   `gorm:"primaryKey;autoIncrement"`
	ContactID         int64   `gorm:"not null;index:idx_prisoner_contact_contact_id"`
	PrisonerNumber    string  `gorm:"type:varchar(7);not null;index:idx_prisoner_contact_prisoner_number"`
	RelationshipType  string  `gorm:"column:contact_type;type:varchar(12);not null"`
	RelationshipCode  string  `gorm:"column:relationship_type;type:varchar(12);not null"`
	NextOfKin         bool    `gorm:"not null;default:false"`
	EmergencyContact  bool    `gorm:"not null;default:false"`
	ApprovedVisitor   bool    `gorm:"not null;default:false"`
	Active            bool    `gorm:"not null;default:true"`
	CurrentTerm       bool    `gorm:"not null;default:true"`
	Comments          *string `gorm:"type:varchar(240)"`
	AuditColumns
}

// TableName explicitly sets the table name for GORM.
func (PrisonerContactModel) TableName() string {
	return "prisoner_contact"
}

// PrisonerContactRestrictionModel is the GORM-specific struct for the 'prisoner_contact_restriction' table.
type PrisonerContactRestrictionModel struct {
	PrisonerContactRestrictionID int64      `gorm:"primaryKey;autoIncrement"`
	PrisonerContactID            int64      `gorm:"not null;index:idx_prisoner_contact_restriction_pc_id"`
	RestrictionType              string     `gorm:"type:varchar(12);not null"`
	StartDate                    *time.Time `gorm:"type:date"`
	ExpiryDate                   *time.Time `gorm:"type:date"`
	Comments                     *string    `gorm:"type:varchar(240)"`
	AuditColumns
}

// TableName explicitly sets the table name for GORM.
func (PrisonerContactRestrictionModel) TableName() string {
	return "prisoner_contact_restriction"
}

// EmploymentModel is the GORM-specific struct for the 'employment' table.
type EmploymentModel struct {
	EmploymentID   int64 `gorm:"primaryKey;autoIncrement"`
	ContactID      int64 `gorm:"not null;index:idx_employment_contact_id"`
	OrganisationID int64 `gorm:"not null"`
	Active         bool  `gorm:"not null;default:true"`
	AuditColumns
}

// TableName explicitly sets the table name for GORM.
func (EmploymentModel) TableName() string {
	return "employment"
}

// OrganisationModel is the GORM-specific struct for the read-only 'organisation' table.
type OrganisationModel struct {
	OrganisationID   int64  `gorm:"primaryKey"`
	OrganisationName string `gorm:"type:varchar(40);not null"`
	Active           bool   `gorm:"not null;default:true"`
}

// TableName explicitly sets the table name for GORM.
func (OrganisationModel) TableName() string {
	return "organisation"
}
