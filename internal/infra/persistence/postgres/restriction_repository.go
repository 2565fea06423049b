package postgres

import (
	"context"

	"contacts/internal/domain/entity"
	"contacts/internal/domain/repository"
	"contacts/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// restrictionRepository implements the repository.RestrictionRepository interface.
type restrictionRepository struct {
	db *gorm.DB
}

// NewRestrictionRepository is the constructor for restrictionRepository.
func NewRestrictionRepository(db *gorm.DB) repository.RestrictionRepository {
	return &restrictionRepository{
		db: db,
	}
}

func (repo *restrictionRepository) Create(ctx context.Context, restriction *entity.ContactRestriction) error {
	restrictionM := fromRestrictionDomain(restriction)

	if err := repo.db.WithContext(ctx).Create(restrictionM).Error; err != nil {
		return writeError(err, "contact restriction")
	}
	restriction.ID = restrictionM.ContactRestrictionID

	return nil
}

func (repo *restrictionRepository) FindByID(ctx context.Context, id int64) (*entity.ContactRestriction, error) {
	var restrictionM model.ContactRestrictionModel

	if err := repo.db.WithContext(ctx).
		Where("contact_restriction_id = ?", id).
		First(&restrictionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRestrictionNotFound
		}

		return nil, errors.Wrap(err, "failed to find contact restriction by ID")
	}

	return toRestrictionDomain(&restrictionM), nil
}

func (repo *restrictionRepository) FindByContact(ctx context.Context, contactID int64) ([]*entity.ContactRestriction, error) {
	var restrictionModels []*model.ContactRestrictionModel

	if err := repo.db.WithContext(ctx).
		Where("contact_id = ?", contactID).
		Order("contact_restriction_id").
		Find(&restrictionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find contact restrictions")
	}

	restrictions := make([]*entity.ContactRestriction, 0, len(restrictionModels))
	for _, restrictionM := range restrictionModels {
		restrictions = append(restrictions, toRestrictionDomain(restrictionM))
	}

	return restrictions, nil
}

func (repo *restrictionRepository) Update(ctx context.Context, restriction *entity.ContactRestriction) error {
	return updateRow(ctx, repo.db, fromRestrictionDomain(restriction), "contact_restriction_id", restriction.ID,
		repository.ErrRestrictionNotFound, "contact restriction")
}

func (repo *restrictionRepository) Delete(ctx context.Context, id int64) error {
	return deleteRow(ctx, repo.db, &model.ContactRestrictionModel{}, "contact_restriction_id", id,
		repository.ErrRestrictionNotFound, "contact restriction")
}

// prisonerContactRestrictionRepository implements the repository.PrisonerContactRestrictionRepository interface.
type prisonerContactRestrictionRepository struct {
	db *gorm.DB
}

// NewPrisonerContactRestrictionRepository is the constructor for prisonerContactRestrictionRepository.
func NewPrisonerContactRestrictionRepository(db *gorm.DB) repository.PrisonerContactRestrictionRepository {
	return &prisonerContactRestrictionRepository{
		db: db,
	}
}

func (repo *prisonerContactRestrictionRepository) Create(ctx context.Context, restriction *entity.PrisonerContactRestriction) error {
	restrictionM := fromPrisonerContactRestrictionDomain(restriction)

	if err := repo.db.WithContext(ctx).Create(restrictionM).Error; err != nil {
		return writeError(err, "prisoner contact restriction")
	}
	restriction.ID = restrictionM.PrisonerContactRestrictionID

	return nil
}

func (repo *prisonerContactRestrictionRepository) FindByID(ctx context.Context, id int64) (*entity.PrisonerContactRestriction, error) {
	var restrictionM model.PrisonerContactRestrictionModel

	if err := repo.db.WithContext(ctx).
		Where("prisoner_contact_restriction_id = ?", id).
		First(&restrictionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPrisonerContactRestrictionNotFound
		}

		return nil, errors.Wrap(err, "failed to find prisoner contact restriction by ID")
	}

	return toPrisonerContactRestrictionDomain(&restrictionM), nil
}

func (repo *prisonerContactRestrictionRepository) FindByPrisonerContact(ctx context.Context, prisonerContactID int64) ([]*entity.PrisonerContactRestriction, error) {
	var restrictionModels []*model.PrisonerContactRestrictionModel

	if err := repo.db.WithContext(ctx).
		Where("prisoner_contact_id = ?", prisonerContactID).
		Order("prisoner_contact_restriction_id").
		Find(&restrictionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find prisoner contact restrictions")
	}

	restrictions := make([]*entity.PrisonerContactRestriction, 0, len(restrictionModels))
	for _, restrictionM := range restrictionModels {
		restrictions = append(restrictions, toPrisonerContactRestrictionDomain(restrictionM))
	}

	return restrictions, nil
}

func (repo *prisonerContactRestrictionRepository) Update(ctx context.Context, restriction *entity.PrisonerContactRestriction) error {
	return updateRow(ctx, repo.db, fromPrisonerContactRestrictionDomain(restriction), "prisoner_contact_restriction_id", restriction.ID,
		repository.ErrPrisonerContactRestrictionNotFound, "prisoner contact restriction")
}

func (repo *prisonerContactRestrictionRepository) Delete(ctx context.Context, id int64) error {
	return deleteRow(ctx, repo.db, &model.PrisonerContactRestrictionModel{}, "prisoner_contact_restriction_id", id,
		repository.ErrPrisonerContactRestrictionNotFound, "prisoner contact restriction")
}

func toRestrictionDomain(data *model.ContactRestrictionModel) *entity.ContactRestriction {
	return &entity.ContactRestriction{
		ID:              data.ContactRestrictionID,
		ContactID:       data.ContactID,
		RestrictionType: data.RestrictionType,
		StartDate:       data.StartDate,
		ExpiryDate:      data.ExpiryDate,
		Comments:        data.Comments,
		Audit:           data.ToAudit(),
	}
}

func fromRestrictionDomain(data *entity.ContactRestriction) *model.ContactRestrictionModel {
	return &model.ContactRestrictionModel{
		ContactRestrictionID: data.ID,
		ContactID:            data.ContactID,
		RestrictionType:      data.RestrictionType,
		StartDate:            data.StartDate,
		ExpiryDate:           data.ExpiryDate,
		Comments:             data.Comments,
		AuditColumns:         model.FromAudit(data.Audit),
	}
}

func toPrisonerContactRestrictionDomain(data *model.PrisonerContactRestrictionModel) *entity.PrisonerContactRestriction {
	return &entity.PrisonerContactRestriction{
		ID:                data.PrisonerContactRestrictionID,
		PrisonerContactID: data.PrisonerContactID,
		RestrictionType:   data.RestrictionType,
		StartDate:         data.StartDate,
		ExpiryDate:        data.ExpiryDate,
		Comments:          data.Comments,
		Audit:             data.ToAudit(),
	}
}

func fromPrisonerContactRestrictionDomain(data *entity.PrisonerContactRestriction) *model.PrisonerContactRestrictionModel {
	return &model.PrisonerContactRestrictionModel{
		PrisonerContactRestrictionID: data.ID,
		PrisonerContactID:            data.PrisonerContactID,
		RestrictionType:              data.RestrictionType,
		StartDate:                    data.StartDate,
		ExpiryDate:                   data.ExpiryDate,
		Comments:                     data.Comments,
		AuditColumns:                 model.FromAudit(data.Audit),
	}
}
