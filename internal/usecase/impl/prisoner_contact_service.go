package impl

import (
	"context"
	"time"

	domainaddress "contacts/internal/domain/address"
	"contacts/internal/domain/entity"
	"contacts/internal/domain/repository"
	"contacts/internal/errors"
	"contacts/internal/usecase"

	"go.uber.org/fx"
)

type prisonerContactService struct {
	mutator *Mutator
	repos   repository.RepositoryFactory
	clock   func() time.Time
}

// PrisonerContactServiceParams holds dependencies for PrisonerContactService, injected by Fx.
type PrisonerContactServiceParams struct {
	fx.In

	Mutator *Mutator
	Repos   repository.RepositoryFactory
}

// NewPrisonerContactService creates a new prisoner contact service instance
func NewPrisonerContactService(params PrisonerContactServiceParams) usecase.PrisonerContactUsecase {
	return &prisonerContactService{
		mutator: params.Mutator,
		repos:   params.Repos,
		clock:   time.Now,
	}
}

// CreatePrisonerContact links an existing contact to a prisoner.
func (s *prisonerContactService) CreatePrisonerContact(ctx context.Context, req usecase.Requester, input *usecase.CreatePrisonerContactInput) (*entity.PrisonerContact, error) {
	var out *entity.PrisonerContact
	err := s.mutator.Run(ctx, "create-prisoner-contact", req, func(ctx context.Context, mu *Mutation) error {
		if _, err := mu.LockContact(ctx, input.ContactID); err != nil {
			return err
		}
		if err := validateRelationship(ctx, mu, &input.Relationship); err != nil {
			return err
		}

		relationship, err := createRelationship(ctx, mu, input.ContactID, &input.Relationship)
		if err != nil {
			return err
		}
		out = relationship

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (s *prisonerContactService) GetPrisonerContact(ctx context.Context, prisonerContactID int64) (*entity.PrisonerContact, error) {
	relationship, err := s.repos.PrisonerContactRepo().FindByID(ctx, prisonerContactID)
	if err != nil {
		return nil, notFound(err, repository.ErrPrisonerContactNotFound, "Prisoner contact", prisonerContactID)
	}

	return relationship, nil
}

// UpdatePrisonerContact patches a relationship. When the type or code changes, the
// resulting code is checked against the group of the resulting type.
func (s *prisonerContactService) UpdatePrisonerContact(ctx context.Context, req usecase.Requester, prisonerContactID int64, input *usecase.UpdatePrisonerContactInput) (*entity.PrisonerContact, error) {
	var out *entity.PrisonerContact
	err := s.mutator.Run(ctx, "update-prisoner-contact", req, func(ctx context.Context, mu *Mutation) error {
		relationship, err := mu.Repos().PrisonerContactRepo().FindByID(ctx, prisonerContactID)
		if err != nil {
			return notFound(err, repository.ErrPrisonerContactNotFound, "Prisoner contact", prisonerContactID)
		}

		nextType, nextCode := relationship.RelationshipType, relationship.RelationshipToPrisoner
		if input.RelationshipType != nil {
			nextType = *input.RelationshipType
		}
		if input.RelationshipToPrisoner != nil {
			nextCode = *input.RelationshipToPrisoner
		}
		if nextType != relationship.RelationshipType || nextCode != relationship.RelationshipToPrisoner {
			if err := mu.RequireCode(ctx, entity.RelationshipGroup(nextType), nextCode); err != nil {
				return err
			}
		}

		patchRelationship(relationship, input)
		relationship.Touch(mu.Username(), mu.Now())
		if err := mu.Repos().PrisonerContactRepo().Update(ctx, relationship); err != nil {
			return errors.Wrap(err, "failed to update prisoner contact")
		}
		mu.Record(entity.EventPrisonerContactUpdated, relationship.ID, relationshipReference(relationship))
		out = relationship

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// DeletePrisonerContact removes a relationship together with its restrictions.
func (s *prisonerContactService) DeletePrisonerContact(ctx context.Context, req usecase.Requester, prisonerContactID int64) error {
	return s.mutator.Run(ctx, "delete-prisoner-contact", req, func(ctx context.Context, mu *Mutation) error {
		relationship, err := mu.Repos().PrisonerContactRepo().FindByID(ctx, prisonerContactID)
		if err != nil {
			return notFound(err, repository.ErrPrisonerContactNotFound, "Prisoner contact", prisonerContactID)
		}
		ref := relationshipReference(relationship)

		restrictions, err := mu.Repos().PrisonerContactRestrictionRepo().FindByPrisonerContact(ctx, relationship.ID)
		if err != nil {
			return errors.Wrap(err, "failed to find prisoner contact restrictions")
		}
		for _, restriction := range restrictions {
			if err := mu.Repos().PrisonerContactRestrictionRepo().Delete(ctx, restriction.ID); err != nil {
				return errors.Wrap(err, "failed to delete prisoner contact restriction")
			}
			mu.Record(entity.EventPrisonerContactRestrictionDeleted, restriction.ID, ref)
		}

		if err := mu.Repos().PrisonerContactRepo().Delete(ctx, relationship.ID); err != nil {
			return errors.Wrap(err, "failed to delete prisoner contact")
		}
		mu.Record(entity.EventPrisonerContactDeleted, relationship.ID, ref)

		return nil
	})
}

// ListPrisonerContacts lists a prisoner's contacts, each with its most relevant address.
func (s *prisonerContactService) ListPrisonerContacts(ctx context.Context, prisonerNumber string) ([]*usecase.PrisonerContactSummary, error) {
	relationships, err := s.repos.PrisonerContactRepo().FindByPrisoner(ctx, prisonerNumber)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find prisoner contacts")
	}

	ids := make([]int64, 0, len(relationships))
	for _, r := range relationships {
		ids = append(ids, r.ContactID)
	}
	addresses, err := s.repos.AddressRepo().FindByContacts(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find addresses")
	}
	byContact := make(map[int64][]*entity.ContactAddress)
	for _, a := range addresses {
		byContact[a.ContactID] = append(byContact[a.ContactID], a)
	}

	now := s.clock()
	summaries := make([]*usecase.PrisonerContactSummary, 0, len(relationships))
	for _, r := range relationships {
		contact, err := s.repos.ContactRepo().FindByID(ctx, r.ContactID)
		if err != nil {
			return nil, notFound(err, repository.ErrContactNotFound, "Contact", r.ContactID)
		}
		summaries = append(summaries, &usecase.PrisonerContactSummary{
			Relationship: r,
			Contact:      contact,
			Address:      domainaddress.SelectMostRelevant(byContact[r.ContactID], now),
		})
	}

	return summaries, nil
}

// validateRelationship checks the prisoner and the relationship code for its type.
func validateRelationship(ctx context.Context, mu *Mutation, input *usecase.RelationshipInput) error {
	if err := mu.RequirePrisoner(ctx, input.PrisonerNumber); err != nil {
		return err
	}

	return mu.RequireCode(ctx, entity.RelationshipGroup(input.RelationshipType), input.RelationshipToPrisoner)
}

func createRelationship(ctx context.Context, mu *Mutation, contactID int64, input *usecase.RelationshipInput) (*entity.PrisonerContact, error) {
	relationship := &entity.PrisonerContact{
		ContactID:              contactID,
		PrisonerNumber:         input.PrisonerNumber,
		RelationshipType:       input.RelationshipType,
		RelationshipToPrisoner: input.RelationshipToPrisoner,
		NextOfKin:              input.NextOfKin,
		EmergencyContact:       input.EmergencyContact,
		ApprovedVisitor:        input.ApprovedVisitor,
		Active:                 true,
		CurrentTerm:            true,
		Comments:               input.Comments,
	}
	relationship.Stamp(mu.Username(), mu.Now())
	if err := mu.Repos().PrisonerContactRepo().Create(ctx, relationship); err != nil {
		return nil, errors.Wrap(err, "failed to create prisoner contact")
	}
	mu.Record(entity.EventPrisonerContactCreated, relationship.ID, relationshipReference(relationship))

	return relationship, nil
}

func patchRelationship(relationship *entity.PrisonerContact, input *usecase.UpdatePrisonerContactInput) {
	if input.RelationshipType != nil {
		relationship.RelationshipType = *input.RelationshipType
	}
	if input.RelationshipToPrisoner != nil {
		relationship.RelationshipToPrisoner = *input.RelationshipToPrisoner
	}
	if input.NextOfKin != nil {
		relationship.NextOfKin = *input.NextOfKin
	}
	if input.EmergencyContact != nil {
		relationship.EmergencyContact = *input.EmergencyContact
	}
	if input.ApprovedVisitor != nil {
		relationship.ApprovedVisitor = *input.ApprovedVisitor
	}
	if input.Active != nil {
		relationship.Active = *input.Active
	}
	if input.CurrentTerm != nil {
		relationship.CurrentTerm = *input.CurrentTerm
	}
	if input.Comments != nil {
		relationship.Comments = input.Comments
	}
}

func relationshipReference(relationship *entity.PrisonerContact) entity.PersonReference {
	return entity.PrisonerReference(relationship.ContactID, relationship.PrisonerNumber)
}
