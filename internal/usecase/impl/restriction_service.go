package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "contacts/internal/delivery/context"
	"contacts/internal/domain/entity"
	"contacts/internal/domain/repository"
	"contacts/internal/domain/service"
	"contacts/internal/errors"
	"contacts/internal/infra/metrics"
	"contacts/internal/usecase"

	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// displayNameLookups bounds concurrent calls to the user directory per listing.
const displayNameLookups = 4

type restrictionService struct {
	mutator   *Mutator
	repos     repository.RepositoryFactory
	directory service.UserDirectory
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

// RestrictionServiceParams holds dependencies for RestrictionService, injected by Fx.
type RestrictionServiceParams struct {
	fx.In

	Mutator       *Mutator
	Repos         repository.RepositoryFactory
	UserDirectory service.UserDirectory
	Metrics       *metrics.Metrics `optional:"true"`
	Logger        *slog.Logger
}

// NewRestrictionService creates a new restriction service instance
func NewRestrictionService(params RestrictionServiceParams) usecase.RestrictionUsecase {
	return &restrictionService{
		mutator:   params.Mutator,
		repos:     params.Repos,
		directory: params.UserDirectory,
		metrics:   params.Metrics,
		logger:    params.Logger,
	}
}

func (s *restrictionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func (s *restrictionService) CreateContactRestriction(ctx context.Context, req usecase.Requester, contactID int64, input *usecase.RestrictionInput) (*entity.ContactRestriction, error) {
	var out *entity.ContactRestriction
	err := s.mutator.Run(ctx, "create-contact-restriction", req, func(ctx context.Context, mu *Mutation) error {
		if _, err := mu.LockContact(ctx, contactID); err != nil {
			return err
		}
		if err := mu.RequireCode(ctx, entity.GroupRestriction, input.RestrictionType); err != nil {
			return err
		}

		restriction := &entity.ContactRestriction{
			ContactID:       contactID,
			RestrictionType: input.RestrictionType,
			StartDate:       input.StartDate,
			ExpiryDate:      input.ExpiryDate,
			Comments:        input.Comments,
		}
		restriction.Stamp(mu.Username(), mu.Now())
		if err := mu.Repos().RestrictionRepo().Create(ctx, restriction); err != nil {
			return errors.Wrap(err, "failed to create contact restriction")
		}
		mu.Record(entity.EventRestrictionCreated, restriction.ID, entity.ContactReference(contactID))
		out = restriction

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (s *restrictionService) GetContactRestriction(ctx context.Context, contactID, restrictionID int64) (*entity.ContactRestriction, error) {
	restriction, err := s.repos.RestrictionRepo().FindByID(ctx, restrictionID)
	if err != nil {
		return nil, notFound(err, repository.ErrRestrictionNotFound, "Contact restriction", restrictionID)
	}
	if err := owned(contactID, restriction.ContactID, "Contact restriction", restrictionID); err != nil {
		return nil, err
	}

	return restriction, nil
}

func (s *restrictionService) UpdateContactRestriction(ctx context.Context, req usecase.Requester, contactID, restrictionID int64, input *usecase.RestrictionInput) (*entity.ContactRestriction, error) {
	var out *entity.ContactRestriction
	err := s.mutator.Run(ctx, "update-contact-restriction", req, func(ctx context.Context, mu *Mutation) error {
		restriction, err := mu.Repos().RestrictionRepo().FindByID(ctx, restrictionID)
		if err != nil {
			return notFound(err, repository.ErrRestrictionNotFound, "Contact restriction", restrictionID)
		}
		if err := owned(contactID, restriction.ContactID, "Contact restriction", restrictionID); err != nil {
			return err
		}
		if err := mu.RequireChangedCode(ctx, entity.GroupRestriction, &restriction.RestrictionType, &input.RestrictionType); err != nil {
			return err
		}

		restriction.RestrictionType = input.RestrictionType
		restriction.StartDate = input.StartDate
		restriction.ExpiryDate = input.ExpiryDate
		restriction.Comments = input.Comments
		restriction.Touch(mu.Username(), mu.Now())
		if err := mu.Repos().RestrictionRepo().Update(ctx, restriction); err != nil {
			return errors.Wrap(err, "failed to update contact restriction")
		}
		mu.Record(entity.EventRestrictionUpdated, restriction.ID, entity.ContactReference(restriction.ContactID))
		out = restriction

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (s *restrictionService) DeleteContactRestriction(ctx context.Context, req usecase.Requester, contactID, restrictionID int64) error {
	return s.mutator.Run(ctx, "delete-contact-restriction", req, func(ctx context.Context, mu *Mutation) error {
		restriction, err := mu.Repos().RestrictionRepo().FindByID(ctx, restrictionID)
		if err != nil {
			return notFound(err, repository.ErrRestrictionNotFound, "Contact restriction", restrictionID)
		}
		if err := owned(contactID, restriction.ContactID, "Contact restriction", restrictionID); err != nil {
			return err
		}

		if err := mu.Repos().RestrictionRepo().Delete(ctx, restriction.ID); err != nil {
			return errors.Wrap(err, "failed to delete contact restriction")
		}
		mu.Record(entity.EventRestrictionDeleted, restriction.ID, entity.ContactReference(restriction.ContactID))

		return nil
	})
}

// ListContactRestrictions lists a contact's restrictions with the display name of whoever entered each.
func (s *restrictionService) ListContactRestrictions(ctx context.Context, contactID int64) ([]*usecase.ContactRestrictionView, error) {
	if _, err := s.repos.ContactRepo().FindByID(ctx, contactID); err != nil {
		return nil, notFound(err, repository.ErrContactNotFound, "Contact", contactID)
	}

	restrictions, err := s.repos.RestrictionRepo().FindByContact(ctx, contactID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find contact restrictions")
	}

	usernames := make([]string, len(restrictions))
	for i, r := range restrictions {
		usernames[i] = r.CreatedBy
	}
	names := s.displayNames(ctx, usernames)

	views := make([]*usecase.ContactRestrictionView, len(restrictions))
	for i, r := range restrictions {
		views[i] = &usecase.ContactRestrictionView{Restriction: r, EnteredByDisplayName: names[r.CreatedBy]}
	}

	return views, nil
}

func (s *restrictionService) CreatePrisonerContactRestriction(ctx context.Context, req usecase.Requester, prisonerContactID int64, input *usecase.RestrictionInput) (*entity.PrisonerContactRestriction, error) {
	var out *entity.PrisonerContactRestriction
	err := s.mutator.Run(ctx, "create-prisoner-contact-restriction", req, func(ctx context.Context, mu *Mutation) error {
		relationship, err := mu.Repos().PrisonerContactRepo().FindByID(ctx, prisonerContactID)
		if err != nil {
			return notFound(err, repository.ErrPrisonerContactNotFound, "Prisoner contact", prisonerContactID)
		}
		if err := mu.RequireCode(ctx, entity.GroupRestriction, input.RestrictionType); err != nil {
			return err
		}

		restriction := &entity.PrisonerContactRestriction{
			PrisonerContactID: relationship.ID,
			RestrictionType:   input.RestrictionType,
			StartDate:         input.StartDate,
			ExpiryDate:        input.ExpiryDate,
			Comments:          input.Comments,
		}
		restriction.Stamp(mu.Username(), mu.Now())
		if err := mu.Repos().PrisonerContactRestrictionRepo().Create(ctx, restriction); err != nil {
			return errors.Wrap(err, "failed to create prisoner contact restriction")
		}
		mu.Record(entity.EventPrisonerContactRestrictionCreated, restriction.ID, relationshipReference(relationship))
		out = restriction

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (s *restrictionService) GetPrisonerContactRestriction(ctx context.Context, restrictionID int64) (*entity.PrisonerContactRestriction, error) {
	restriction, err := s.repos.PrisonerContactRestrictionRepo().FindByID(ctx, restrictionID)
	if err != nil {
		return nil, notFound(err, repository.ErrPrisonerContactRestrictionNotFound, "Prisoner contact restriction", restrictionID)
	}

	return restriction, nil
}

func (s *restrictionService) UpdatePrisonerContactRestriction(ctx context.Context, req usecase.Requester, prisonerContactID, restrictionID int64, input *usecase.RestrictionInput) (*entity.PrisonerContactRestriction, error) {
	var out *entity.PrisonerContactRestriction
	err := s.mutator.Run(ctx, "update-prisoner-contact-restriction", req, func(ctx context.Context, mu *Mutation) error {
		restriction, relationship, err := loadPrisonerContactRestriction(ctx, mu, restrictionID)
		if err != nil {
			return err
		}
		if err := owned(prisonerContactID, restriction.PrisonerContactID, "Prisoner contact restriction", restrictionID); err != nil {
			return err
		}
		if err := mu.RequireChangedCode(ctx, entity.GroupRestriction, &restriction.RestrictionType, &input.RestrictionType); err != nil {
			return err
		}

		restriction.RestrictionType = input.RestrictionType
		restriction.StartDate = input.StartDate
		restriction.ExpiryDate = input.ExpiryDate
		restriction.Comments = input.Comments
		restriction.Touch(mu.Username(), mu.Now())
		if err := mu.Repos().PrisonerContactRestrictionRepo().Update(ctx, restriction); err != nil {
			return errors.Wrap(err, "failed to update prisoner contact restriction")
		}
		mu.Record(entity.EventPrisonerContactRestrictionUpdated, restriction.ID, relationshipReference(relationship))
		out = restriction

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (s *restrictionService) DeletePrisonerContactRestriction(ctx context.Context, req usecase.Requester, restrictionID int64) error {
	return s.mutator.Run(ctx, "delete-prisoner-contact-restriction", req, func(ctx context.Context, mu *Mutation) error {
		restriction, relationship, err := loadPrisonerContactRestriction(ctx, mu, restrictionID)
		if err != nil {
			return err
		}

		if err := mu.Repos().PrisonerContactRestrictionRepo().Delete(ctx, restriction.ID); err != nil {
			return errors.Wrap(err, "failed to delete prisoner contact restriction")
		}
		mu.Record(entity.EventPrisonerContactRestrictionDeleted, restriction.ID, relationshipReference(relationship))

		return nil
	})
}

// ListPrisonerContactRestrictions lists a relationship's restrictions with the display name of whoever entered each.
func (s *restrictionService) ListPrisonerContactRestrictions(ctx context.Context, prisonerContactID int64) ([]*usecase.PrisonerContactRestrictionView, error) {
	if _, err := s.repos.PrisonerContactRepo().FindByID(ctx, prisonerContactID); err != nil {
		return nil, notFound(err, repository.ErrPrisonerContactNotFound, "Prisoner contact", prisonerContactID)
	}

	restrictions, err := s.repos.PrisonerContactRestrictionRepo().FindByPrisonerContact(ctx, prisonerContactID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find prisoner contact restrictions")
	}

	usernames := make([]string, len(restrictions))
	for i, r := range restrictions {
		usernames[i] = r.CreatedBy
	}
	names := s.displayNames(ctx, usernames)

	views := make([]*usecase.PrisonerContactRestrictionView, len(restrictions))
	for i, r := range restrictions {
		views[i] = &usecase.PrisonerContactRestrictionView{Restriction: r, EnteredByDisplayName: names[r.CreatedBy]}
	}

	return views, nil
}

func loadPrisonerContactRestriction(ctx context.Context, mu *Mutation, restrictionID int64) (*entity.PrisonerContactRestriction, *entity.PrisonerContact, error) {
	restriction, err := mu.Repos().PrisonerContactRestrictionRepo().FindByID(ctx, restrictionID)
	if err != nil {
		return nil, nil, notFound(err, repository.ErrPrisonerContactRestrictionNotFound, "Prisoner contact restriction", restrictionID)
	}

	relationship, err := mu.Repos().PrisonerContactRepo().FindByID(ctx, restriction.PrisonerContactID)
	if err != nil {
		return nil, nil, notFound(err, repository.ErrPrisonerContactNotFound, "Prisoner contact", restriction.PrisonerContactID)
	}

	return restriction, relationship, nil
}

// displayNames resolves each distinct username once. A username the directory cannot
// resolve falls back to the username itself.
func (s *restrictionService) displayNames(ctx context.Context, usernames []string) map[string]string {
	var mu sync.Mutex
	names := make(map[string]string, len(usernames))
	distinct := make([]string, 0, len(usernames))
	for _, u := range usernames {
		if _, seen := names[u]; !seen {
			names[u] = u
			distinct = append(distinct, u)
		}
	}

	var g errgroup.Group
	g.SetLimit(displayNameLookups)
	for _, username := range distinct {
		g.Go(func() error {
			name, err := s.directory.DisplayName(ctx, username)
			if err != nil {
				s.metrics.IncDisplayNameFailure()
				s.log(ctx).Warn("Failed to resolve display name", slog.String("username", username), slog.Any("error", err))
				return nil
			}
			if name == "" {
				return nil
			}

			mu.Lock()
			names[username] = name
			mu.Unlock()

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.log(ctx).Warn("Display name lookups failed", slog.Any("error", err))
	}

	return names
}
