package impl

import (
	"context"
	"fmt"

	"contacts/internal/domain/entity"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/domain/repository"
	"contacts/internal/errors"
	"contacts/internal/usecase"

	"go.uber.org/fx"
)

type employmentService struct {
	mutator *Mutator
	repos   repository.RepositoryFactory
}

// EmploymentServiceParams holds dependencies for EmploymentService, injected by Fx.
type EmploymentServiceParams struct {
	fx.In

	Mutator *Mutator
	Repos   repository.RepositoryFactory
}

// NewEmploymentService creates a new employment service instance
func NewEmploymentService(params EmploymentServiceParams) usecase.EmploymentUsecase {
	return &employmentService{
		mutator: params.Mutator,
		repos:   params.Repos,
	}
}

func (s *employmentService) CreateEmployment(ctx context.Context, req usecase.Requester, contactID int64, input *usecase.EmploymentInput) (*entity.Employment, error) {
	var out *entity.Employment
	err := s.mutator.Run(ctx, "create-employment", req, func(ctx context.Context, mu *Mutation) error {
		if _, err := mu.LockContact(ctx, contactID); err != nil {
			return err
		}
		if err := mu.RequireOrganisation(ctx, input.OrganisationID); err != nil {
			return err
		}

		employment, err := createEmployment(ctx, mu, contactID, *input)
		if err != nil {
			return err
		}
		out = employment

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (s *employmentService) GetEmployment(ctx context.Context, contactID, employmentID int64) (*entity.Employment, error) {
	employment, err := s.repos.EmploymentRepo().FindByID(ctx, employmentID)
	if err != nil {
		return nil, notFound(err, repository.ErrEmploymentNotFound, "Employment", employmentID)
	}
	if err := owned(contactID, employment.ContactID, "Employment", employmentID); err != nil {
		return nil, err
	}

	return employment, nil
}

func (s *employmentService) ListEmployments(ctx context.Context, contactID int64) ([]*entity.Employment, error) {
	if _, err := s.repos.ContactRepo().FindByID(ctx, contactID); err != nil {
		return nil, notFound(err, repository.ErrContactNotFound, "Contact", contactID)
	}

	employments, err := s.repos.EmploymentRepo().FindByContact(ctx, contactID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find employments")
	}

	return employments, nil
}

func (s *employmentService) UpdateEmployment(ctx context.Context, req usecase.Requester, contactID, employmentID int64, input *usecase.EmploymentInput) (*entity.Employment, error) {
	var out *entity.Employment
	err := s.mutator.Run(ctx, "update-employment", req, func(ctx context.Context, mu *Mutation) error {
		employment, err := lockedEmployment(ctx, mu, contactID, employmentID)
		if err != nil {
			return err
		}
		if employment.OrganisationID != input.OrganisationID {
			if err := mu.RequireOrganisation(ctx, input.OrganisationID); err != nil {
				return err
			}
		}

		if err := updateEmployment(ctx, mu, employment, input.OrganisationID, input.IsActive); err != nil {
			return err
		}
		out = employment

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (s *employmentService) DeleteEmployment(ctx context.Context, req usecase.Requester, contactID, employmentID int64) error {
	return s.mutator.Run(ctx, "delete-employment", req, func(ctx context.Context, mu *Mutation) error {
		employment, err := lockedEmployment(ctx, mu, contactID, employmentID)
		if err != nil {
			return err
		}

		return deleteEmployment(ctx, mu, employment)
	})
}

// PatchEmployments applies a batch of employment changes all-or-nothing. Every reference
// in the batch is checked before the first write, so a bad organisation or employment id
// leaves the contact's employments and the event stream untouched.
func (s *employmentService) PatchEmployments(ctx context.Context, req usecase.Requester, contactID int64, input *usecase.PatchEmploymentsInput) ([]*entity.Employment, error) {
	err := s.mutator.Run(ctx, "patch-employments", req, func(ctx context.Context, mu *Mutation) error {
		if _, err := mu.LockContact(ctx, contactID); err != nil {
			return err
		}
		if err := checkDistinctEmployments(input); err != nil {
			return err
		}

		for _, create := range input.Create {
			if err := mu.RequireOrganisation(ctx, create.OrganisationID); err != nil {
				return err
			}
		}
		for _, update := range input.Update {
			if err := mu.RequireOrganisation(ctx, update.OrganisationID); err != nil {
				return err
			}
		}

		updates := make([]*entity.Employment, len(input.Update))
		for i, update := range input.Update {
			employment, err := ownedEmployment(ctx, mu, contactID, update.EmploymentID)
			if err != nil {
				return err
			}
			updates[i] = employment
		}

		deletes := make([]*entity.Employment, len(input.Delete))
		for i, id := range input.Delete {
			employment, err := ownedEmployment(ctx, mu, contactID, id)
			if err != nil {
				return err
			}
			deletes[i] = employment
		}

		for _, create := range input.Create {
			if _, err := createEmployment(ctx, mu, contactID, create); err != nil {
				return err
			}
		}
		for i, update := range input.Update {
			if err := updateEmployment(ctx, mu, updates[i], update.OrganisationID, update.IsActive); err != nil {
				return err
			}
		}
		for _, employment := range deletes {
			if err := deleteEmployment(ctx, mu, employment); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	employments, err := s.repos.EmploymentRepo().FindByContact(ctx, contactID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find employments")
	}

	return employments, nil
}

func lockedEmployment(ctx context.Context, mu *Mutation, contactID, employmentID int64) (*entity.Employment, error) {
	if contactID != usecase.AnyContact {
		if _, err := mu.LockContact(ctx, contactID); err != nil {
			return nil, err
		}
	}

	employment, err := ownedEmployment(ctx, mu, contactID, employmentID)
	if err != nil {
		return nil, err
	}
	if contactID == usecase.AnyContact {
		if _, err := mu.LockContact(ctx, employment.ContactID); err != nil {
			return nil, err
		}
	}

	return employment, nil
}

func ownedEmployment(ctx context.Context, mu *Mutation, contactID, employmentID int64) (*entity.Employment, error) {
	employment, err := mu.Repos().EmploymentRepo().FindByID(ctx, employmentID)
	if err != nil {
		return nil, notFound(err, repository.ErrEmploymentNotFound, "Employment", employmentID)
	}
	if err := owned(contactID, employment.ContactID, "Employment", employmentID); err != nil {
		return nil, err
	}

	return employment, nil
}

func createEmployment(ctx context.Context, mu *Mutation, contactID int64, input usecase.EmploymentInput) (*entity.Employment, error) {
	employment := &entity.Employment{
		ContactID:      contactID,
		OrganisationID: input.OrganisationID,
		IsActive:       input.IsActive,
	}
	employment.Stamp(mu.Username(), mu.Now())
	if err := mu.Repos().EmploymentRepo().Create(ctx, employment); err != nil {
		return nil, errors.Wrap(err, "failed to create employment")
	}
	mu.Record(entity.EventEmploymentCreated, employment.ID, entity.ContactReference(contactID))

	return employment, nil
}

func updateEmployment(ctx context.Context, mu *Mutation, employment *entity.Employment, organisationID int64, isActive bool) error {
	employment.OrganisationID = organisationID
	employment.IsActive = isActive
	employment.Touch(mu.Username(), mu.Now())
	if err := mu.Repos().EmploymentRepo().Update(ctx, employment); err != nil {
		return errors.Wrapf(err, "failed to update employment %d", employment.ID)
	}
	mu.Record(entity.EventEmploymentUpdated, employment.ID, entity.ContactReference(employment.ContactID))

	return nil
}

func deleteEmployment(ctx context.Context, mu *Mutation, employment *entity.Employment) error {
	if err := mu.Repos().EmploymentRepo().Delete(ctx, employment.ID); err != nil {
		return errors.Wrapf(err, "failed to delete employment %d", employment.ID)
	}
	mu.Record(entity.EventEmploymentDeleted, employment.ID, entity.ContactReference(employment.ContactID))

	return nil
}

// checkDistinctEmployments rejects a batch that names the same employment more than once
// across its updates and deletes.
func checkDistinctEmployments(input *usecase.PatchEmploymentsInput) error {
	seen := make(map[int64]struct{}, len(input.Update)+len(input.Delete))
	ids := make([]int64, 0, len(input.Update)+len(input.Delete))
	for _, update := range input.Update {
		ids = append(ids, update.EmploymentID)
	}
	ids = append(ids, input.Delete...)

	for _, id := range ids {
		if _, dup := seen[id]; dup {
			return domainerrors.NewValidationError(fmt.Sprintf("Employment (%d) appears more than once in the batch", id))
		}
		seen[id] = struct{}{}
	}

	return nil
}
