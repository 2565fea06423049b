// Package usecase defines the application use cases and their inputs.
package usecase

import "contacts/internal/domain/entity"

// Requester identifies who is writing and through which surface.
type Requester struct {
	Username string
	Source   entity.Source
}

// DPS is a requester writing through the domain API.
func DPS(username string) Requester {
	return Requester{Username: username, Source: entity.SourceDPS}
}

// NOMIS is a requester replaying a write through the sync API.
func NOMIS(username string) Requester {
	return Requester{Username: username, Source: entity.SourceNOMIS}
}

// AnyContact skips the ownership check on id-addressed operations.
// Sync reads and deletes address rows by their own id only.
const AnyContact int64 = 0
