package repository

import (
	"context"

	"contacts/internal/domain/entity"
	"contacts/internal/errors"
)

// ErrReferenceCodeNotFound is returned when a group has no such code.
var ErrReferenceCodeNotFound = errors.New("reference code not found")

// ReferenceCodeRepository is a read-only lookup of coded values.
type ReferenceCodeRepository interface {
	FindByGroupAndCode(ctx context.Context, group entity.ReferenceGroup, code string) (*entity.ReferenceCode, error)
	FindByGroup(ctx context.Context, group entity.ReferenceGroup) ([]*entity.ReferenceCode, error)
}
