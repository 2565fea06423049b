package impl

import (
	"context"

	domainaddress "contacts/internal/domain/address"
	"contacts/internal/domain/entity"
	"contacts/internal/domain/repository"
	"contacts/internal/errors"
	"contacts/internal/usecase"

	"go.uber.org/fx"
)

type addressService struct {
	mutator *Mutator
	repos   repository.RepositoryFactory
}

// AddressServiceParams holds dependencies for AddressService, injected by Fx.
type AddressServiceParams struct {
	fx.In

	Mutator *Mutator
	Repos   repository.RepositoryFactory
}

// NewAddressService creates a new address service instance
func NewAddressService(params AddressServiceParams) usecase.AddressUsecase {
	return &addressService{
		mutator: params.Mutator,
		repos:   params.Repos,
	}
}

// CreateAddress adds an address to a contact, together with any phone numbers given for it.
// A primary or mail address takes the flag from whichever sibling held it.
func (s *addressService) CreateAddress(ctx context.Context, req usecase.Requester, contactID int64, input *usecase.AddressInput) (*usecase.AddressDetails, error) {
	var out *usecase.AddressDetails
	err := s.mutator.Run(ctx, "create-address", req, func(ctx context.Context, mu *Mutation) error {
		if _, err := mu.LockContact(ctx, contactID); err != nil {
			return err
		}
		if err := validateAddressCodes(ctx, mu, nil, input); err != nil {
			return err
		}
		for i := range input.PhoneNumbers {
			if err := mu.RequireCode(ctx, entity.GroupPhoneType, input.PhoneNumbers[i].PhoneType); err != nil {
				return err
			}
		}

		addr := &entity.ContactAddress{ContactID: contactID}
		applyAddressInput(addr, input)
		addr.SetVerified(input.Verified, mu.Username(), mu.Now())
		addr.Stamp(mu.Username(), mu.Now())
		if err := mu.Repos().AddressRepo().Create(ctx, addr); err != nil {
			return errors.Wrap(err, "failed to create address")
		}
		mu.Record(entity.EventAddressCreated, addr.ID, entity.ContactReference(contactID))

		if err := enforceAddressExclusivity(ctx, mu, addr); err != nil {
			return err
		}

		phones := make([]*entity.AddressPhone, 0, len(input.PhoneNumbers))
		for i := range input.PhoneNumbers {
			linked, err := createAddressPhone(ctx, mu, addr, &input.PhoneNumbers[i])
			if err != nil {
				return err
			}
			phones = append(phones, linked)
		}

		out = &usecase.AddressDetails{Address: addr, Phones: phones}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// GetAddress returns an address with its linked phones.
func (s *addressService) GetAddress(ctx context.Context, contactID, addressID int64) (*usecase.AddressDetails, error) {
	addr, err := s.repos.AddressRepo().FindByID(ctx, addressID)
	if err != nil {
		return nil, notFound(err, repository.ErrAddressNotFound, "Contact address", addressID)
	}
	if err := owned(contactID, addr.ContactID, "Contact address", addressID); err != nil {
		return nil, err
	}

	phones, err := loadAddressPhones(ctx, s.repos, addressID)
	if err != nil {
		return nil, err
	}

	return &usecase.AddressDetails{Address: addr, Phones: phones}, nil
}

// UpdateAddress replaces an address's state. Setting the primary or mail flag
// clears it on the contact's other addresses in the same transaction.
func (s *addressService) UpdateAddress(ctx context.Context, req usecase.Requester, contactID, addressID int64, input *usecase.AddressInput) (*entity.ContactAddress, error) {
	var out *entity.ContactAddress
	err := s.mutator.Run(ctx, "update-address", req, func(ctx context.Context, mu *Mutation) error {
		addr, err := lockedAddress(ctx, mu, contactID, addressID)
		if err != nil {
			return err
		}
		if err := validateAddressCodes(ctx, mu, addr, input); err != nil {
			return err
		}

		applyAddressInput(addr, input)
		addr.SetVerified(input.Verified, mu.Username(), mu.Now())
		addr.Touch(mu.Username(), mu.Now())
		if err := mu.Repos().AddressRepo().Update(ctx, addr); err != nil {
			return errors.Wrap(err, "failed to update address")
		}
		mu.Record(entity.EventAddressUpdated, addr.ID, entity.ContactReference(addr.ContactID))

		if err := enforceAddressExclusivity(ctx, mu, addr); err != nil {
			return err
		}
		out = addr

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// DeleteAddress removes an address and its phone links. The phones themselves stay with the contact.
func (s *addressService) DeleteAddress(ctx context.Context, req usecase.Requester, contactID, addressID int64) error {
	return s.mutator.Run(ctx, "delete-address", req, func(ctx context.Context, mu *Mutation) error {
		addr, err := lockedAddress(ctx, mu, contactID, addressID)
		if err != nil {
			return err
		}
		ref := entity.ContactReference(addr.ContactID)

		links, err := mu.Repos().AddressPhoneRepo().FindByAddress(ctx, addr.ID)
		if err != nil {
			return errors.Wrap(err, "failed to find address phones")
		}
		for _, link := range links {
			if err := mu.Repos().AddressPhoneRepo().Delete(ctx, link.ID); err != nil {
				return errors.Wrap(err, "failed to delete address phone")
			}
			mu.Record(entity.EventAddressPhoneDeleted, link.ID, ref)
		}

		if err := mu.Repos().AddressRepo().Delete(ctx, addr.ID); err != nil {
			return errors.Wrap(err, "failed to delete address")
		}
		mu.Record(entity.EventAddressDeleted, addr.ID, ref)

		return nil
	})
}

// lockedAddress locks the owning contact, then loads the address. The contact id of a
// sync request may be usecase.AnyContact, in which case the address's owner is locked.
func lockedAddress(ctx context.Context, mu *Mutation, contactID, addressID int64) (*entity.ContactAddress, error) {
	if contactID != usecase.AnyContact {
		if _, err := mu.LockContact(ctx, contactID); err != nil {
			return nil, err
		}
	}

	addr, err := mu.Repos().AddressRepo().FindByID(ctx, addressID)
	if err != nil {
		return nil, notFound(err, repository.ErrAddressNotFound, "Contact address", addressID)
	}
	if err := owned(contactID, addr.ContactID, "Contact address", addressID); err != nil {
		return nil, err
	}

	if contactID == usecase.AnyContact {
		if _, err := mu.LockContact(ctx, addr.ContactID); err != nil {
			return nil, err
		}
	}

	return addr, nil
}

// enforceAddressExclusivity clears the primary and mail flags the written address now
// holds from its siblings. Each corrected sibling is written once and gets its own event.
// The caller must hold the contact lock.
func enforceAddressExclusivity(ctx context.Context, mu *Mutation, written *entity.ContactAddress) error {
	if !written.PrimaryAddress && !written.MailFlag {
		return nil
	}
	mu.enforcing()

	siblings, err := mu.Repos().AddressRepo().FindByContactForUpdate(ctx, written.ContactID)
	if err != nil {
		return errors.Wrap(err, "failed to load sibling addresses")
	}

	for _, c := range domainaddress.PlanExclusivity(siblings, written.ID, written.PrimaryAddress, written.MailFlag) {
		c.Apply()
		c.Address.Touch(mu.Username(), mu.Now())
		if err := mu.Repos().AddressRepo().Update(ctx, c.Address); err != nil {
			return errors.Wrapf(err, "failed to clear flags on address %d", c.Address.ID)
		}
		mu.Record(entity.EventAddressUpdated, c.Address.ID, entity.ContactReference(written.ContactID))
	}

	return nil
}

// validateAddressCodes checks the coded fields. With a stored address only changed codes are checked.
func validateAddressCodes(ctx context.Context, mu *Mutation, stored *entity.ContactAddress, input *usecase.AddressInput) error {
	var prev entity.ContactAddress
	if stored != nil {
		prev = *stored
	}

	checks := []struct {
		group    entity.ReferenceGroup
		previous *string
		next     *string
	}{
		{entity.GroupAddressType, prev.AddressType, input.AddressType},
		{entity.GroupCity, prev.CityCode, input.CityCode},
		{entity.GroupCounty, prev.CountyCode, input.CountyCode},
		{entity.GroupCountry, prev.CountryCode, input.CountryCode},
	}
	for _, check := range checks {
		if err := mu.RequireChangedCode(ctx, check.group, check.previous, check.next); err != nil {
			return err
		}
	}

	return nil
}

func applyAddressInput(addr *entity.ContactAddress, input *usecase.AddressInput) {
	addr.AddressType = input.AddressType
	addr.PrimaryAddress = input.PrimaryAddress
	addr.MailFlag = input.MailFlag
	addr.FlatNumber = input.FlatNumber
	addr.Property = input.Property
	addr.Street = input.Street
	addr.Area = input.Area
	addr.CityCode = input.CityCode
	addr.CountyCode = input.CountyCode
	addr.PostCode = input.PostCode
	addr.CountryCode = input.CountryCode
	addr.NoFixedAddress = input.NoFixedAddress
	addr.StartDate = input.StartDate
	addr.EndDate = input.EndDate
	addr.Comments = input.Comments
}
