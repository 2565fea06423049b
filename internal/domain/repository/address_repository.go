package repository

import (
	"context"

	"contacts/internal/domain/entity"
	"contacts/internal/errors"
)

// ErrAddressNotFound is returned when an address is not found.
var ErrAddressNotFound = errors.New("address not found")

// AddressRepository defines the interface for contact address persistence.
type AddressRepository interface {
	Create(ctx context.Context, address *entity.ContactAddress) error
	FindByID(ctx context.Context, id int64) (*entity.ContactAddress, error)

	// FindByContact returns all of a contact's addresses ordered by id.
	FindByContact(ctx context.Context, contactID int64) ([]*entity.ContactAddress, error)

	// FindByContactForUpdate is FindByContact holding row locks on the primary database.
	FindByContactForUpdate(ctx context.Context, contactID int64) ([]*entity.ContactAddress, error)

	// FindByContacts returns the addresses of several contacts in one query.
	FindByContacts(ctx context.Context, contactIDs []int64) ([]*entity.ContactAddress, error)

	Update(ctx context.Context, address *entity.ContactAddress) error
	Delete(ctx context.Context, id int64) error
}
