package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "contacts/internal/delivery/context"
	domainaddress "contacts/internal/domain/address"
	"contacts/internal/domain/entity"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/domain/repository"
	"contacts/internal/errors"
	"contacts/internal/usecase"

	"go.uber.org/fx"
)

type contactService struct {
	mutator *Mutator
	repos   repository.RepositoryFactory
	clock   func() time.Time
	logger  *slog.Logger
}

// ContactServiceParams holds dependencies for ContactService, injected by Fx.
type ContactServiceParams struct {
	fx.In

	Mutator *Mutator
	Repos   repository.RepositoryFactory
	Logger  *slog.Logger
}

// NewContactService creates a new contact service instance
func NewContactService(params ContactServiceParams) usecase.ContactUsecase {
	return &contactService{
		mutator: params.Mutator,
		repos:   params.Repos,
		clock:   time.Now,
		logger:  params.Logger,
	}
}

func (s *contactService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// CreateContact creates a contact and, when requested, its relationship to a prisoner.
func (s *contactService) CreateContact(ctx context.Context, req usecase.Requester, input *usecase.CreateContactInput) (*usecase.CreateContactOutput, error) {
	out := &usecase.CreateContactOutput{}
	err := s.mutator.Run(ctx, "create-contact", req, func(ctx context.Context, mu *Mutation) error {
		if err := validateContactCodes(ctx, mu, nil, input.TitleCode, input.GenderCode, input.LanguageCode); err != nil {
			return err
		}
		if input.Relationship != nil {
			if err := validateRelationship(ctx, mu, input.Relationship); err != nil {
				return err
			}
		}

		contact := &entity.Contact{
			TitleCode:           input.TitleCode,
			LastName:            input.LastName,
			FirstName:           input.FirstName,
			MiddleNames:         input.MiddleNames,
			DateOfBirth:         input.DateOfBirth,
			LanguageCode:        input.LanguageCode,
			InterpreterRequired: input.InterpreterRequired,
			GenderCode:          input.GenderCode,
			IsStaff:             input.IsStaff,
		}
		contact.Stamp(mu.Username(), mu.Now())
		if err := mu.Repos().ContactRepo().Create(ctx, contact); err != nil {
			return errors.Wrap(err, "failed to create contact")
		}
		mu.Record(entity.EventContactCreated, contact.ID, entity.ContactReference(contact.ID))
		out.Contact = contact

		if input.Relationship == nil {
			return nil
		}

		relationship, err := createRelationship(ctx, mu, contact.ID, input.Relationship)
		if err != nil {
			return err
		}
		out.Relationship = relationship

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log(ctx).Debug("Contact created", slog.Int64("contactID", out.Contact.ID), slog.String("source", string(req.Source)))

	return out, nil
}

// GetContact returns a contact with its owned records and most relevant address.
func (s *contactService) GetContact(ctx context.Context, contactID int64) (*usecase.ContactDetails, error) {
	contact, err := s.repos.ContactRepo().FindByID(ctx, contactID)
	if err != nil {
		return nil, notFound(err, repository.ErrContactNotFound, "Contact", contactID)
	}

	details := &usecase.ContactDetails{Contact: contact}
	if details.Addresses, err = s.repos.AddressRepo().FindByContact(ctx, contactID); err != nil {
		return nil, errors.Wrap(err, "failed to find addresses")
	}
	if details.Phones, err = s.repos.PhoneRepo().FindByContact(ctx, contactID); err != nil {
		return nil, errors.Wrap(err, "failed to find phones")
	}
	if details.Emails, err = s.repos.EmailRepo().FindByContact(ctx, contactID); err != nil {
		return nil, errors.Wrap(err, "failed to find emails")
	}
	if details.Identities, err = s.repos.IdentityRepo().FindByContact(ctx, contactID); err != nil {
		return nil, errors.Wrap(err, "failed to find identities")
	}
	if details.Employments, err = s.repos.EmploymentRepo().FindByContact(ctx, contactID); err != nil {
		return nil, errors.Wrap(err, "failed to find employments")
	}
	details.MostRelevantAddress = domainaddress.SelectMostRelevant(details.Addresses, s.clock())

	return details, nil
}

// UpdateContact patches the contact's own columns.
func (s *contactService) UpdateContact(ctx context.Context, req usecase.Requester, contactID int64, input *usecase.UpdateContactInput) (*entity.Contact, error) {
	var out *entity.Contact
	err := s.mutator.Run(ctx, "update-contact", req, func(ctx context.Context, mu *Mutation) error {
		contact, err := mu.LockContact(ctx, contactID)
		if err != nil {
			return err
		}
		if err := validateContactCodes(ctx, mu, contact, input.TitleCode, input.GenderCode, input.LanguageCode); err != nil {
			return err
		}

		patchContact(contact, input)
		contact.Touch(mu.Username(), mu.Now())
		if err := mu.Repos().ContactRepo().Update(ctx, contact); err != nil {
			return errors.Wrap(err, "failed to update contact")
		}
		mu.Record(entity.EventContactUpdated, contact.ID, entity.ContactReference(contact.ID))
		out = contact

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// DeleteContact removes a contact that owns nothing else.
func (s *contactService) DeleteContact(ctx context.Context, req usecase.Requester, contactID int64) error {
	return s.mutator.Run(ctx, "delete-contact", req, func(ctx context.Context, mu *Mutation) error {
		if _, err := mu.LockContact(ctx, contactID); err != nil {
			return err
		}

		dependents, err := mu.Repos().ContactRepo().CountDependents(ctx, contactID)
		if err != nil {
			return errors.Wrap(err, "failed to count contact dependents")
		}
		if dependents > 0 {
			return domainerrors.ErrConflict.WithMessage("Contact still has dependent records").
				WithDetails(fmt.Sprintf("contact %d owns %d rows", contactID, dependents))
		}

		if err := mu.Repos().ContactRepo().Delete(ctx, contactID); err != nil {
			return errors.Wrap(err, "failed to delete contact")
		}
		mu.Record(entity.EventContactDeleted, contactID, entity.ContactReference(contactID))

		return nil
	})
}

// SearchContacts pages through contacts by last name, each with its most relevant address.
func (s *contactService) SearchContacts(ctx context.Context, input *usecase.SearchContactsInput) (*usecase.SearchContactsOutput, error) {
	contacts, total, err := s.repos.ContactRepo().SearchByLastName(ctx, input.LastName, input.Size, input.Page*input.Size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search contacts")
	}

	ids := make([]int64, len(contacts))
	for i, c := range contacts {
		ids[i] = c.ID
	}
	addresses, err := s.repos.AddressRepo().FindByContacts(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find addresses")
	}

	byContact := make(map[int64][]*entity.ContactAddress, len(contacts))
	for _, a := range addresses {
		byContact[a.ContactID] = append(byContact[a.ContactID], a)
	}

	now := s.clock()
	items := make([]*entity.ContactSummary, len(contacts))
	for i, c := range contacts {
		items[i] = &entity.ContactSummary{
			Contact: c,
			Address: domainaddress.SelectMostRelevant(byContact[c.ID], now),
		}
	}

	return &usecase.SearchContactsOutput{Items: items, Total: total, Page: input.Page, Size: input.Size}, nil
}

func validateContactCodes(ctx context.Context, mu *Mutation, stored *entity.Contact, title, gender, language *string) error {
	var prev entity.Contact
	if stored != nil {
		prev = *stored
	}
	if err := mu.RequireChangedCode(ctx, entity.GroupTitle, prev.TitleCode, title); err != nil {
		return err
	}
	if err := mu.RequireChangedCode(ctx, entity.GroupGender, prev.GenderCode, gender); err != nil {
		return err
	}

	return mu.RequireChangedCode(ctx, entity.GroupLanguage, prev.LanguageCode, language)
}

func patchContact(contact *entity.Contact, input *usecase.UpdateContactInput) {
	if input.TitleCode != nil {
		contact.TitleCode = input.TitleCode
	}
	if input.LastName != nil {
		contact.LastName = *input.LastName
	}
	if input.FirstName != nil {
		contact.FirstName = *input.FirstName
	}
	if input.MiddleNames != nil {
		contact.MiddleNames = input.MiddleNames
	}
	if input.DateOfBirth != nil {
		contact.DateOfBirth = input.DateOfBirth
	}
	if input.LanguageCode != nil {
		contact.LanguageCode = input.LanguageCode
	}
	if input.InterpreterRequired != nil {
		contact.InterpreterRequired = *input.InterpreterRequired
	}
	if input.GenderCode != nil {
		contact.GenderCode = input.GenderCode
	}
	if input.IsStaff != nil {
		contact.IsStaff = *input.IsStaff
	}
}
