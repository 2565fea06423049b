// Package service defines contracts for collaborators outside the persistence layer.
package service

import (
	"context"

	"contacts/internal/domain/entity"
)

// PrisonerSearch looks prisoners up in the external prisoner search service.
type PrisonerSearch interface {
	// PrisonerExists reports whether the prisoner number is known.
	PrisonerExists(ctx context.Context, prisonerNumber string) (bool, error)
}

// UserDirectory resolves audit usernames to display names.
type UserDirectory interface {
	DisplayName(ctx context.Context, username string) (string, error)
}

// ReferenceCodeCache caches reference code lookups. A miss returns (nil, nil).
type ReferenceCodeCache interface {
	Get(ctx context.Context, group entity.ReferenceGroup, code string) (*entity.ReferenceCode, error)
	Set(ctx context.Context, referenceCode *entity.ReferenceCode) error
}

// Principal is the authenticated caller of the domain API.
type Principal struct {
	Username string
	Roles    []string
}

// TokenVerifier validates bearer tokens and extracts the caller.
type TokenVerifier interface {
	Verify(tokenString string) (*Principal, error)
}
