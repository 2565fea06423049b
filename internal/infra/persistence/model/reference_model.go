package model

import (
	"time"

	"github.com/google/uuid"
)

// ReferenceCodeModel is the GORM-specific struct for the 'reference_codes' table.
type ReferenceCodeModel struct {
	ReferenceCodeID int64  `gorm:"primaryKey;autoIncrement"`
	GroupCode       string `gorm:"type:varchar(40);not null;uniqueIndex:uq_reference_codes_group_code"`
	Code            string `gorm:"type:varchar(40);not null;uniqueIndex:uq_reference_codes_group_code"`
	Description     string `gorm:"type:varchar(100);not null"`
	DisplayOrder    int    `gorm:"not null;default:0"`
	IsActive        bool   `gorm:"not null;default:true"`
}

// TableName explicitly sets the table name for GORM.
func (ReferenceCodeModel) TableName() string {
	return "reference_codes"
}

// OutboundEventModel is the GORM-specific struct for the 'outbound_events' table.
// Rows are written in the transaction of the mutation that produced them.
type OutboundEventModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	EventType    string    `gorm:"type:varchar(80);not null"`
	EntityID     int64     `gorm:"not null"`
	Source       string    `gorm:"type:varchar(10);not null"`
	DpsContactID int64     `gorm:"not null"`
	NomsNumber   *string   `gorm:"type:varchar(7)"`
	OccurredAt   time.Time `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null;index:idx_outbound_events_pending,where:published_at IS NULL"`
	PublishedAt  *time.Time
	Attempts     int     `gorm:"not null;default:0"`
	LastError    *string `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (OutboundEventModel) TableName() string {
	return "outbound_events"
}

// All lists every table model, in creation order.
func All() []any {
	return []any{
		&ReferenceCodeModel{},
		&OrganisationModel{},
		&ContactModel{},
		&ContactAddressModel{},
		&ContactPhoneModel{},
		&ContactAddressPhoneModel{},
		&ContactEmailModel{},
		&ContactIdentityModel{},
		&ContactRestrictionModel{},
		&PrisonerContactModel{},
		&PrisonerContactRestrictionModel{},
		&EmploymentModel{},
		&OutboundEventModel{},
	}
}
