// Package model contains the GORM table structs and their mapping to domain entities.
package model

import (
	"time"

	"contacts/internal/domain/entity"
)

// AuditColumns are embedded by every mutable table.
type AuditColumns struct {
	CreatedBy   string     `gorm:"type:varchar(100);not null"`
	CreatedTime time.Time  `gorm:"not null"`
	UpdatedBy   *string    `gorm:"type:varchar(100)"`
	UpdatedTime *time.Time
}

// ToAudit converts the columns into the domain audit block.
func (a AuditColumns) ToAudit() entity.Audit {
	return entity.Audit{
		CreatedBy:   a.CreatedBy,
		CreatedTime: a.CreatedTime,
		UpdatedBy:   a.UpdatedBy,
		UpdatedTime: a.UpdatedTime,
	}
}

// FromAudit converts the domain audit block into columns.
func FromAudit(a entity.Audit) AuditColumns {
	return AuditColumns{
		CreatedBy:   a.CreatedBy,
		CreatedTime: a.CreatedTime,
		UpdatedBy:   a.UpdatedBy,
		UpdatedTime: a.UpdatedTime,
	}
}
