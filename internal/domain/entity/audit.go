// Package entity contains the core business objects of the project.
package entity

import "time"

// Audit carries the who/when columns shared by every mutable row.
type Audit struct {
	CreatedBy   string
	CreatedTime time.Time
	UpdatedBy   *string
	UpdatedTime *time.Time
}

// Touch stamps the update columns.
func (a *Audit) Touch(username string, at time.Time) {
	a.UpdatedBy = &username
	a.UpdatedTime = &at
}

// Stamp stamps the create columns. Used for new rows only.
func (a *Audit) Stamp(username string, at time.Time) {
	a.CreatedBy = username
	a.CreatedTime = at
}
