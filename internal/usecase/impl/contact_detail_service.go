package impl

import (
	"context"

	"contacts/internal/domain/entity"
	"contacts/internal/domain/repository"
	"contacts/internal/errors"
	"contacts/internal/usecase"

	"go.uber.org/fx"
)

// ContactDetailServiceParams holds dependencies for the email and identity services, injected by Fx.
type ContactDetailServiceParams struct {
	fx.In

	Mutator *Mutator
	Repos   repository.RepositoryFactory
}

type emailService struct {
	mutator *Mutator
	repos   repository.RepositoryFactory
}

// NewEmailService creates a new email service instance
func NewEmailService(params ContactDetailServiceParams) usecase.EmailUsecase {
	return &emailService{mutator: params.Mutator, repos: params.Repos}
}

func (s *emailService) CreateEmail(ctx context.Context, req usecase.Requester, contactID int64, input *usecase.EmailInput) (*entity.ContactEmail, error) {
	var out *entity.ContactEmail
	err := s.mutator.Run(ctx, "create-email", req, func(ctx context.Context, mu *Mutation) error {
		if _, err := mu.LockContact(ctx, contactID); err != nil {
			return err
		}

		email := &entity.ContactEmail{ContactID: contactID, EmailAddress: input.EmailAddress}
		email.Stamp(mu.Username(), mu.Now())
		if err := mu.Repos().EmailRepo().Create(ctx, email); err != nil {
			return errors.Wrap(err, "failed to create email")
		}
		mu.Record(entity.EventEmailCreated, email.ID, entity.ContactReference(contactID))
		out = email

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (s *emailService) GetEmail(ctx context.Context, contactID, emailID int64) (*entity.ContactEmail, error) {
	email, err := s.repos.EmailRepo().FindByID(ctx, emailID)
	if err != nil {
		return nil, notFound(err, repository.ErrEmailNotFound, "Contact email", emailID)
	}
	if err := owned(contactID, email.ContactID, "Contact email", emailID); err != nil {
		return nil, err
	}

	return email, nil
}

func (s *emailService) UpdateEmail(ctx context.Context, req usecase.Requester, contactID, emailID int64, input *usecase.EmailInput) (*entity.ContactEmail, error) {
	var out *entity.ContactEmail
	err := s.mutator.Run(ctx, "update-email", req, func(ctx context.Context, mu *Mutation) error {
		email, err := mu.Repos().EmailRepo().FindByID(ctx, emailID)
		if err != nil {
			return notFound(err, repository.ErrEmailNotFound, "Contact email", emailID)
		}
		if err := owned(contactID, email.ContactID, "Contact email", emailID); err != nil {
			return err
		}

		email.EmailAddress = input.EmailAddress
		email.Touch(mu.Username(), mu.Now())
		if err := mu.Repos().EmailRepo().Update(ctx, email); err != nil {
			return errors.Wrap(err, "failed to update email")
		}
		mu.Record(entity.EventEmailUpdated, email.ID, entity.ContactReference(email.ContactID))
		out = email

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (s *emailService) DeleteEmail(ctx context.Context, req usecase.Requester, contactID, emailID int64) error {
	return s.mutator.Run(ctx, "delete-email", req, func(ctx context.Context, mu *Mutation) error {
		email, err := mu.Repos().EmailRepo().FindByID(ctx, emailID)
		if err != nil {
			return notFound(err, repository.ErrEmailNotFound, "Contact email", emailID)
		}
		if err := owned(contactID, email.ContactID, "Contact email", emailID); err != nil {
			return err
		}

		if err := mu.Repos().EmailRepo().Delete(ctx, email.ID); err != nil {
			return errors.Wrap(err, "failed to delete email")
		}
		mu.Record(entity.EventEmailDeleted, email.ID, entity.ContactReference(email.ContactID))

		return nil
	})
}

type identityService struct {
	mutator *Mutator
	repos   repository.RepositoryFactory
}

// NewIdentityService creates a new identity service instance
func NewIdentityService(params ContactDetailServiceParams) usecase.IdentityUsecase {
	return &identityService{mutator: params.Mutator, repos: params.Repos}
}

func (s *identityService) CreateIdentity(ctx context.Context, req usecase.Requester, contactID int64, input *usecase.IdentityInput) (*entity.ContactIdentity, error) {
	var out *entity.ContactIdentity
	err := s.mutator.Run(ctx, "create-identity", req, func(ctx context.Context, mu *Mutation) error {
		if _, err := mu.LockContact(ctx, contactID); err != nil {
			return err
		}
		if err := mu.RequireCode(ctx, entity.GroupIdentityType, input.IdentityType); err != nil {
			return err
		}

		identity := &entity.ContactIdentity{
			ContactID:        contactID,
			IdentityType:     input.IdentityType,
			IdentityValue:    input.IdentityValue,
			IssuingAuthority: input.IssuingAuthority,
		}
		identity.Stamp(mu.Username(), mu.Now())
		if err := mu.Repos().IdentityRepo().Create(ctx, identity); err != nil {
			return errors.Wrap(err, "failed to create identity")
		}
		mu.Record(entity.EventIdentityCreated, identity.ID, entity.ContactReference(contactID))
		out = identity

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (s *identityService) GetIdentity(ctx context.Context, contactID, identityID int64) (*entity.ContactIdentity, error) {
	identity, err := s.repos.IdentityRepo().FindByID(ctx, identityID)
	if err != nil {
		return nil, notFound(err, repository.ErrIdentityNotFound, "Contact identity", identityID)
	}
	if err := owned(contactID, identity.ContactID, "Contact identity", identityID); err != nil {
		return nil, err
	}

	return identity, nil
}

func (s *identityService) UpdateIdentity(ctx context.Context, req usecase.Requester, contactID, identityID int64, input *usecase.IdentityInput) (*entity.ContactIdentity, error) {
	var out *entity.ContactIdentity
	err := s.mutator.Run(ctx, "update-identity", req, func(ctx context.Context, mu *Mutation) error {
		identity, err := mu.Repos().IdentityRepo().FindByID(ctx, identityID)
		if err != nil {
			return notFound(err, repository.ErrIdentityNotFound, "Contact identity", identityID)
		}
		if err := owned(contactID, identity.ContactID, "Contact identity", identityID); err != nil {
			return err
		}
		if err := mu.RequireChangedCode(ctx, entity.GroupIdentityType, &identity.IdentityType, &input.IdentityType); err != nil {
			return err
		}

		identity.IdentityType = input.IdentityType
		identity.IdentityValue = input.IdentityValue
		identity.IssuingAuthority = input.IssuingAuthority
		identity.Touch(mu.Username(), mu.Now())
		if err := mu.Repos().IdentityRepo().Update(ctx, identity); err != nil {
			return errors.Wrap(err, "failed to update identity")
		}
		mu.Record(entity.EventIdentityUpdated, identity.ID, entity.ContactReference(identity.ContactID))
		out = identity

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (s *identityService) DeleteIdentity(ctx context.Context, req usecase.Requester, contactID, identityID int64) error {
	return s.mutator.Run(ctx, "delete-identity", req, func(ctx context.Context, mu *Mutation) error {
		identity, err := mu.Repos().IdentityRepo().FindByID(ctx, identityID)
		if err != nil {
			return notFound(err, repository.ErrIdentityNotFound, "Contact identity", identityID)
		}
		if err := owned(contactID, identity.ContactID, "Contact identity", identityID); err != nil {
			return err
		}

		if err := mu.Repos().IdentityRepo().Delete(ctx, identity.ID); err != nil {
			return errors.Wrap(err, "failed to delete identity")
		}
		mu.Record(entity.EventIdentityDeleted, identity.ID, entity.ContactReference(identity.ContactID))

		return nil
	})
}
