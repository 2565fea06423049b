package impl

import (
	"context"

	"contacts/internal/domain/entity"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/domain/repository"
	"contacts/internal/domain/service"
	"contacts/internal/errors"
	"contacts/internal/usecase"
)

// referenceValidator checks coded values and external references.
// Domain writes need active codes; sync writes accept any known code because the
// system of record may still hold values that have since been retired.
type referenceValidator struct {
	cache          service.ReferenceCodeCache
	prisonerSearch service.PrisonerSearch
}

func newReferenceValidator(cache service.ReferenceCodeCache, prisonerSearch service.PrisonerSearch) *referenceValidator {
	return &referenceValidator{cache: cache, prisonerSearch: prisonerSearch}
}

func (v *referenceValidator) lookup(ctx context.Context, repo repository.ReferenceCodeRepository, group entity.ReferenceGroup, code string) (*entity.ReferenceCode, error) {
	if v.cache != nil {
		// a broken cache falls through to the database
		if cached, err := v.cache.Get(ctx, group, code); err == nil && cached != nil {
			return cached, nil
		}
	}

	ref, err := repo.FindByGroupAndCode(ctx, group, code)
	if err != nil {
		return nil, err
	}

	if v.cache != nil {
		_ = v.cache.Set(ctx, ref)
	}

	return ref, nil
}

func (v *referenceValidator) code(ctx context.Context, repo repository.ReferenceCodeRepository, group entity.ReferenceGroup, code string, allowInactive bool) error {
	ref, err := v.lookup(ctx, repo, group, code)
	if errors.Is(err, repository.ErrReferenceCodeNotFound) {
		return domainerrors.NewUnsupportedValueError(string(group), code)
	}
	if err != nil {
		return errors.Wrapf(err, "failed to look up %s reference code", group)
	}
	if !ref.IsActive && !allowInactive {
		return domainerrors.NewUnsupportedValueError(string(group), code)
	}

	return nil
}

// RequireCode validates a mandatory coded value.
func (mu *Mutation) RequireCode(ctx context.Context, group entity.ReferenceGroup, code string) error {
	return mu.validator.code(ctx, mu.repos.ReferenceCodeRepo(), group, code, mu.FromSync())
}

// RequireOptionalCode validates a coded value when present.
func (mu *Mutation) RequireOptionalCode(ctx context.Context, group entity.ReferenceGroup, code *string) error {
	if code == nil {
		return nil
	}

	return mu.RequireCode(ctx, group, *code)
}

// RequireChangedCode validates next only when it differs from the stored value,
// so an update that keeps a since-retired code still succeeds.
func (mu *Mutation) RequireChangedCode(ctx context.Context, group entity.ReferenceGroup, previous, next *string) error {
	if next == nil || (previous != nil && *previous == *next) {
		return nil
	}

	return mu.RequireCode(ctx, group, *next)
}

// RequireOrganisation checks that an organisation exists. Sync writes are not re-validated.
func (mu *Mutation) RequireOrganisation(ctx context.Context, organisationID int64) error {
	if mu.FromSync() {
		return nil
	}

	_, err := mu.repos.OrganisationRepo().FindByID(ctx, organisationID)
	if errors.Is(err, repository.ErrOrganisationNotFound) {
		return domainerrors.NewExternalReferenceNotFoundError("Organisation", organisationID)
	}

	return errors.Wrap(err, "failed to look up organisation")
}

// RequirePrisoner checks the prisoner number against prisoner search. Sync writes are not re-validated.
func (mu *Mutation) RequirePrisoner(ctx context.Context, prisonerNumber string) error {
	if mu.FromSync() {
		return nil
	}

	exists, err := mu.validator.prisonerSearch.PrisonerExists(ctx, prisonerNumber)
	if err != nil {
		return errors.Wrap(err, "failed to look up prisoner")
	}
	if !exists {
		return domainerrors.NewExternalReferenceNotFoundError("Prisoner", prisonerNumber)
	}

	return nil
}

// LockContact loads the contact with a row lock held until commit.
func (mu *Mutation) LockContact(ctx context.Context, contactID int64) (*entity.Contact, error) {
	contact, err := mu.repos.ContactRepo().LockByID(ctx, contactID)
	if err != nil {
		return nil, notFound(err, repository.ErrContactNotFound, "Contact", contactID)
	}

	return contact, nil
}

// notFound maps a repository not-found sentinel to the API error and wraps anything else.
func notFound(err, sentinel error, kind string, id any) error {
	if errors.Is(err, sentinel) {
		return domainerrors.NewNotFoundError(kind, id)
	}

	return errors.Wrapf(err, "failed to load %s", kind)
}

// owned rejects a row that belongs to another contact as not found.
// usecase.AnyContact skips the check.
func owned(contactID, ownerID int64, kind string, id int64) error {
	if contactID != usecase.AnyContact && contactID != ownerID {
		return domainerrors.NewNotFoundError(kind, id)
	}

	return nil
}
