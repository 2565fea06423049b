package impl

import (
	"context"

	"contacts/internal/domain/entity"
	"contacts/internal/domain/repository"
	"contacts/internal/errors"
	"contacts/internal/usecase"

	"go.uber.org/fx"
)

type phoneService struct {
	mutator *Mutator
	repos   repository.RepositoryFactory
}

// PhoneServiceParams holds dependencies for the phone services, injected by Fx.
type PhoneServiceParams struct {
	fx.In

	Mutator *Mutator
	Repos   repository.RepositoryFactory
}

// NewPhoneService creates a new phone service instance
func NewPhoneService(params PhoneServiceParams) usecase.PhoneUsecase {
	return &phoneService{mutator: params.Mutator, repos: params.Repos}
}

// NewAddressPhoneService creates a new address phone service instance
func NewAddressPhoneService(params PhoneServiceParams) usecase.AddressPhoneUsecase {
	return &addressPhoneService{mutator: params.Mutator, repos: params.Repos}
}

func (s *phoneService) CreatePhone(ctx context.Context, req usecase.Requester, contactID int64, input *usecase.PhoneInput) (*entity.ContactPhone, error) {
	var out *entity.ContactPhone
	err := s.mutator.Run(ctx, "create-phone", req, func(ctx context.Context, mu *Mutation) error {
		if _, err := mu.LockContact(ctx, contactID); err != nil {
			return err
		}
		if err := mu.RequireCode(ctx, entity.GroupPhoneType, input.PhoneType); err != nil {
			return err
		}

		phone, err := createPhone(ctx, mu, contactID, input)
		if err != nil {
			return err
		}
		out = phone

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (s *phoneService) GetPhone(ctx context.Context, contactID, phoneID int64) (*entity.ContactPhone, error) {
	phone, err := s.repos.PhoneRepo().FindByID(ctx, phoneID)
	if err != nil {
		return nil, notFound(err, repository.ErrPhoneNotFound, "Contact phone", phoneID)
	}
	if err := owned(contactID, phone.ContactID, "Contact phone", phoneID); err != nil {
		return nil, err
	}

	return phone, nil
}

func (s *phoneService) UpdatePhone(ctx context.Context, req usecase.Requester, contactID, phoneID int64, input *usecase.PhoneInput) (*entity.ContactPhone, error) {
	var out *entity.ContactPhone
	err := s.mutator.Run(ctx, "update-phone", req, func(ctx context.Context, mu *Mutation) error {
		phone, err := mu.Repos().PhoneRepo().FindByID(ctx, phoneID)
		if err != nil {
			return notFound(err, repository.ErrPhoneNotFound, "Contact phone", phoneID)
		}
		if err := owned(contactID, phone.ContactID, "Contact phone", phoneID); err != nil {
			return err
		}
		if err := mu.RequireChangedCode(ctx, entity.GroupPhoneType, &phone.PhoneType, &input.PhoneType); err != nil {
			return err
		}

		if err := updatePhone(ctx, mu, phone, input); err != nil {
			return err
		}
		mu.Record(entity.EventPhoneUpdated, phone.ID, entity.ContactReference(phone.ContactID))
		out = phone

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// DeletePhone removes a phone and any links to the contact's addresses.
func (s *phoneService) DeletePhone(ctx context.Context, req usecase.Requester, contactID, phoneID int64) error {
	return s.mutator.Run(ctx, "delete-phone", req, func(ctx context.Context, mu *Mutation) error {
		phone, err := mu.Repos().PhoneRepo().FindByID(ctx, phoneID)
		if err != nil {
			return notFound(err, repository.ErrPhoneNotFound, "Contact phone", phoneID)
		}
		if err := owned(contactID, phone.ContactID, "Contact phone", phoneID); err != nil {
			return err
		}
		ref := entity.ContactReference(phone.ContactID)

		links, err := mu.Repos().AddressPhoneRepo().FindByPhone(ctx, phone.ID)
		if err != nil {
			return errors.Wrap(err, "failed to find address phones")
		}
		for _, link := range links {
			if err := mu.Repos().AddressPhoneRepo().Delete(ctx, link.ID); err != nil {
				return errors.Wrap(err, "failed to delete address phone")
			}
			mu.Record(entity.EventAddressPhoneDeleted, link.ID, ref)
		}

		if err := mu.Repos().PhoneRepo().Delete(ctx, phone.ID); err != nil {
			return errors.Wrap(err, "failed to delete phone")
		}
		mu.Record(entity.EventPhoneDeleted, phone.ID, ref)

		return nil
	})
}

type addressPhoneService struct {
	mutator *Mutator
	repos   repository.RepositoryFactory
}

// CreateAddressPhone creates a phone for the contact and links it to the address.
func (s *addressPhoneService) CreateAddressPhone(ctx context.Context, req usecase.Requester, contactID, addressID int64, input *usecase.PhoneInput) (*entity.AddressPhone, error) {
	var out *entity.AddressPhone
	err := s.mutator.Run(ctx, "create-address-phone", req, func(ctx context.Context, mu *Mutation) error {
		addr, err := lockedAddress(ctx, mu, contactID, addressID)
		if err != nil {
			return err
		}
		if err := mu.RequireCode(ctx, entity.GroupPhoneType, input.PhoneType); err != nil {
			return err
		}

		linked, err := createAddressPhone(ctx, mu, addr, input)
		if err != nil {
			return err
		}
		out = linked

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (s *addressPhoneService) GetAddressPhone(ctx context.Context, contactID, linkID int64) (*entity.AddressPhone, error) {
	link, err := s.repos.AddressPhoneRepo().FindByID(ctx, linkID)
	if err != nil {
		return nil, notFound(err, repository.ErrAddressPhoneNotFound, "Contact address phone", linkID)
	}
	if err := owned(contactID, link.ContactID, "Contact address phone", linkID); err != nil {
		return nil, err
	}

	phone, err := s.repos.PhoneRepo().FindByID(ctx, link.ContactPhoneID)
	if err != nil {
		return nil, notFound(err, repository.ErrPhoneNotFound, "Contact phone", link.ContactPhoneID)
	}

	return &entity.AddressPhone{Link: link, Phone: phone}, nil
}

// UpdateAddressPhone updates the phone behind a link. Consumers track the link,
// so the event is an address phone update.
func (s *addressPhoneService) UpdateAddressPhone(ctx context.Context, req usecase.Requester, contactID, linkID int64, input *usecase.PhoneInput) (*entity.AddressPhone, error) {
	var out *entity.AddressPhone
	err := s.mutator.Run(ctx, "update-address-phone", req, func(ctx context.Context, mu *Mutation) error {
		link, err := mu.Repos().AddressPhoneRepo().FindByID(ctx, linkID)
		if err != nil {
			return notFound(err, repository.ErrAddressPhoneNotFound, "Contact address phone", linkID)
		}
		if err := owned(contactID, link.ContactID, "Contact address phone", linkID); err != nil {
			return err
		}
		phone, err := mu.Repos().PhoneRepo().FindByID(ctx, link.ContactPhoneID)
		if err != nil {
			return notFound(err, repository.ErrPhoneNotFound, "Contact phone", link.ContactPhoneID)
		}
		if err := mu.RequireChangedCode(ctx, entity.GroupPhoneType, &phone.PhoneType, &input.PhoneType); err != nil {
			return err
		}

		if err := updatePhone(ctx, mu, phone, input); err != nil {
			return err
		}
		mu.Record(entity.EventAddressPhoneUpdated, link.ID, entity.ContactReference(link.ContactID))
		out = &entity.AddressPhone{Link: link, Phone: phone}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// DeleteAddressPhone removes the link and the phone behind it.
func (s *addressPhoneService) DeleteAddressPhone(ctx context.Context, req usecase.Requester, contactID, linkID int64) error {
	return s.mutator.Run(ctx, "delete-address-phone", req, func(ctx context.Context, mu *Mutation) error {
		link, err := mu.Repos().AddressPhoneRepo().FindByID(ctx, linkID)
		if err != nil {
			return notFound(err, repository.ErrAddressPhoneNotFound, "Contact address phone", linkID)
		}
		if err := owned(contactID, link.ContactID, "Contact address phone", linkID); err != nil {
			return err
		}
		ref := entity.ContactReference(link.ContactID)

		if err := mu.Repos().AddressPhoneRepo().Delete(ctx, link.ID); err != nil {
			return errors.Wrap(err, "failed to delete address phone")
		}
		mu.Record(entity.EventAddressPhoneDeleted, link.ID, ref)

		if err := mu.Repos().PhoneRepo().Delete(ctx, link.ContactPhoneID); err != nil {
			return errors.Wrap(err, "failed to delete phone")
		}
		mu.Record(entity.EventPhoneDeleted, link.ContactPhoneID, ref)

		return nil
	})
}

func createPhone(ctx context.Context, mu *Mutation, contactID int64, input *usecase.PhoneInput) (*entity.ContactPhone, error) {
	phone := &entity.ContactPhone{
		ContactID:   contactID,
		PhoneType:   input.PhoneType,
		PhoneNumber: input.PhoneNumber,
		ExtNumber:   input.ExtNumber,
	}
	phone.Stamp(mu.Username(), mu.Now())
	if err := mu.Repos().PhoneRepo().Create(ctx, phone); err != nil {
		return nil, errors.Wrap(err, "failed to create phone")
	}
	mu.Record(entity.EventPhoneCreated, phone.ID, entity.ContactReference(contactID))

	return phone, nil
}

// updatePhone writes the new phone state. The caller records the event.
func updatePhone(ctx context.Context, mu *Mutation, phone *entity.ContactPhone, input *usecase.PhoneInput) error {
	phone.PhoneType = input.PhoneType
	phone.PhoneNumber = input.PhoneNumber
	phone.ExtNumber = input.ExtNumber
	phone.Touch(mu.Username(), mu.Now())
	if err := mu.Repos().PhoneRepo().Update(ctx, phone); err != nil {
		return errors.Wrap(err, "failed to update phone")
	}

	return nil
}

func createAddressPhone(ctx context.Context, mu *Mutation, addr *entity.ContactAddress, input *usecase.PhoneInput) (*entity.AddressPhone, error) {
	phone, err := createPhone(ctx, mu, addr.ContactID, input)
	if err != nil {
		return nil, err
	}

	link := &entity.ContactAddressPhone{
		ContactID:        addr.ContactID,
		ContactAddressID: addr.ID,
		ContactPhoneID:   phone.ID,
	}
	link.Stamp(mu.Username(), mu.Now())
	if err := mu.Repos().AddressPhoneRepo().Create(ctx, link); err != nil {
		return nil, errors.Wrap(err, "failed to link phone to address")
	}
	mu.Record(entity.EventAddressPhoneCreated, link.ID, entity.ContactReference(addr.ContactID))

	return &entity.AddressPhone{Link: link, Phone: phone}, nil
}

func loadAddressPhones(ctx context.Context, repos repository.RepositoryFactory, addressID int64) ([]*entity.AddressPhone, error) {
	links, err := repos.AddressPhoneRepo().FindByAddress(ctx, addressID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find address phones")
	}

	phones := make([]*entity.AddressPhone, 0, len(links))
	for _, link := range links {
		phone, err := repos.PhoneRepo().FindByID(ctx, link.ContactPhoneID)
		if err != nil {
			return nil, notFound(err, repository.ErrPhoneNotFound, "Contact phone", link.ContactPhoneID)
		}
		phones = append(phones, &entity.AddressPhone{Link: link, Phone: phone})
	}

	return phones, nil
}
