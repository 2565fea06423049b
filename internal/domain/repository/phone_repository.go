package repository

import (
	"context"

	"contacts/internal/domain/entity"
	"contacts/internal/errors"
)

// Domain-specific errors for phone persistence.
var (
	ErrPhoneNotFound        = errors.New("phone not found")
	ErrAddressPhoneNotFound = errors.New("address phone not found")
)

// PhoneRepository defines persistence operations for contact phones.
type PhoneRepository interface {
	Create(ctx context.Context, phone *entity.ContactPhone) error
	FindByID(ctx context.Context, id int64) (*entity.ContactPhone, error)
	FindByContact(ctx context.Context, contactID int64) ([]*entity.ContactPhone, error)
	Update(ctx context.Context, phone *entity.ContactPhone) error
	Delete(ctx context.Context, id int64) error
}

// AddressPhoneRepository defines persistence operations for address-phone links.
type AddressPhoneRepository interface {
	Create(ctx context.Context, link *entity.ContactAddressPhone) error
	FindByID(ctx context.Context, id int64) (*entity.ContactAddressPhone, error)
	FindByAddress(ctx context.Context, addressID int64) ([]*entity.ContactAddressPhone, error)
	FindByPhone(ctx context.Context, phoneID int64) ([]*entity.ContactAddressPhone, error)
	Delete(ctx context.Context, id int64) error
}
