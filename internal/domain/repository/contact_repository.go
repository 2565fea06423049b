package repository

import (
	"context"

	"contacts/internal/domain/entity"
	"contacts/internal/errors"
)

// ErrContactNotFound is returned when a contact does not exist.
var ErrContactNotFound = errors.New("contact not found")

// ContactRepository defines persistence operations for contacts.
type ContactRepository interface {
	Create(ctx context.Context, contact *entity.Contact) error
	FindByID(ctx context.Context, id int64) (*entity.Contact, error)

	// LockByID loads the contact and holds a row lock on it until the transaction ends.
	// Writers touching a contact's address set or employments take this lock first,
	// which serialises them per contact.
	LockByID(ctx context.Context, id int64) (*entity.Contact, error)

	Update(ctx context.Context, contact *entity.Contact) error
	Delete(ctx context.Context, id int64) error

	// SearchByLastName matches last names by case-insensitive prefix, ordered by last then first name.
	SearchByLastName(ctx context.Context, lastName string, limit, offset int) ([]*entity.Contact, int64, error)

	// CountDependents counts rows of any kind still owned by the contact.
	CountDependents(ctx context.Context, id int64) (int64, error)
}
