package postgres

import (
	"context"
	"strings"

	domainerrors "contacts/internal/domain/errors"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	return strings.Contains(err.Error(), "23505") // unique_violation
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	return strings.Contains(err.Error(), "23503") // foreign_key_violation
}

func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, "23502") // PostgreSQL not_null_violation error code
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	return strings.Contains(err.Error(), "23514") // check_violation
}

// writeError converts a failed insert or update into a domain error.
func writeError(err error, what string) error {
	switch {
	case isUniqueConstraintViolation(err):
		return domainerrors.ErrConflict.WrapMessage(what + " already exists")
	case isForeignKeyConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WrapMessage("invalid reference on " + what)
	case isNotNullConstraintViolation(err), isCheckConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WrapMessage("missing or invalid " + what + " information")
	default:
		return domainerrors.NewDatabaseExecuteError(err, "failed to write "+what)
	}
}

// checkAffected turns a write that matched no row into the repository's not-found sentinel.
func checkAffected(result *gorm.DB, notFound error, what string) error {
	if result.Error != nil {
		return writeError(result.Error, what)
	}
	if result.RowsAffected == 0 {
		return notFound
	}

	return nil
}

// updateRow writes every column of m except the primary key onto the row with the given id.
func updateRow(ctx context.Context, db *gorm.DB, m any, pkColumn string, id int64, notFound error, what string) error {
	result := db.WithContext(ctx).
		Model(m).
		Where(pkColumn+" = ?", id).
		Select("*").
		Omit(pkColumn).
		Updates(m)

	return checkAffected(result, notFound, what)
}

// deleteRow removes the row with the given id.
func deleteRow(ctx context.Context, db *gorm.DB, m any, pkColumn string, id int64, notFound error, what string) error {
	result := db.WithContext(ctx).
		Where(pkColumn+" = ?", id).
		Delete(m)

	return checkAffected(result, notFound, what)
}
