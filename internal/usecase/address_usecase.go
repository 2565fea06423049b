package usecase

import (
	"context"
	"time"

	"contacts/internal/domain/entity"
)

// PhoneInput describes a phone number.
type PhoneInput struct {
	PhoneType   string
	PhoneNumber string
	ExtNumber   *string
}

// AddressInput is the full state of an address for create and update.
type AddressInput struct {
	AddressType    *string
	PrimaryAddress bool
	MailFlag       bool
	FlatNumber     *string
	Property       *string
	Street         *string
	Area           *string
	CityCode       *string
	CountyCode     *string
	PostCode       *string
	CountryCode    *string
	NoFixedAddress bool
	StartDate      *time.Time
	EndDate        *time.Time
	Comments       *string
	Verified       bool

	// PhoneNumbers are created and linked to the address. Ignored on update.
	PhoneNumbers []PhoneInput
}

// AddressDetails is an address with its linked phones.
type AddressDetails struct {
	Address *entity.ContactAddress
	Phones  []*entity.AddressPhone
}

// AddressUsecase defines contact address use cases.
type AddressUsecase interface {
	CreateAddress(ctx context.Context, req Requester, contactID int64, input *AddressInput) (*AddressDetails, error)
	GetAddress(ctx context.Context, contactID, addressID int64) (*AddressDetails, error)
	UpdateAddress(ctx context.Context, req Requester, contactID, addressID int64, input *AddressInput) (*entity.ContactAddress, error)
	DeleteAddress(ctx context.Context, req Requester, contactID, addressID int64) error
}

// PhoneUsecase defines contact phone use cases.
type PhoneUsecase interface {
	CreatePhone(ctx context.Context, req Requester, contactID int64, input *PhoneInput) (*entity.ContactPhone, error)
	GetPhone(ctx context.Context, contactID, phoneID int64) (*entity.ContactPhone, error)
	UpdatePhone(ctx context.Context, req Requester, contactID, phoneID int64, input *PhoneInput) (*entity.ContactPhone, error)
	DeletePhone(ctx context.Context, req Requester, contactID, phoneID int64) error
}

// AddressPhoneUsecase defines use cases for phones linked to an address.
type AddressPhoneUsecase interface {
	CreateAddressPhone(ctx context.Context, req Requester, contactID, addressID int64, input *PhoneInput) (*entity.AddressPhone, error)
	GetAddressPhone(ctx context.Context, contactID, linkID int64) (*entity.AddressPhone, error)
	UpdateAddressPhone(ctx context.Context, req Requester, contactID, linkID int64, input *PhoneInput) (*entity.AddressPhone, error)
	DeleteAddressPhone(ctx context.Context, req Requester, contactID, linkID int64) error
}
