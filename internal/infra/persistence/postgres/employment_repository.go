package postgres

import (
	"context"

	"contacts/internal/domain/entity"
	"contacts/internal/domain/repository"
	"contacts/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// employmentRepository implements the repository.EmploymentRepository interface.
type employmentRepository struct {
	db *gorm.DB
}

// NewEmploymentRepository is the constructor for employmentRepository.
func NewEmploymentRepository(db *gorm.DB) repository.EmploymentRepository {
	return &employmentRepository{
		db: db,
	}
}

func (repo *employmentRepository) Create(ctx context.Context, employment *entity.Employment) error {
	employmentM := fromEmploymentDomain(employment)

	if err := repo.db.WithContext(ctx).Create(employmentM).Error; err != nil {
		return writeError(err, "employment")
	}
	employment.ID = employmentM.EmploymentID

	return nil
}

func (repo *employmentRepository) FindByID(ctx context.Context, id int64) (*entity.Employment, error) {
	var employmentM model.EmploymentModel

	if err := repo.db.WithContext(ctx).
		Where("employment_id = ?", id).
		First(&employmentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEmploymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find employment by ID")
	}

	return toEmploymentDomain(&employmentM), nil
}

func (repo *employmentRepository) FindByContact(ctx context.Context, contactID int64) ([]*entity.Employment, error) {
	var employmentModels []*model.EmploymentModel

	if err := repo.db.WithContext(ctx).
		Where("contact_id = ?", contactID).
		Order("employment_id").
		Find(&employmentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find employments by contact")
	}

	employments := make([]*entity.Employment, 0, len(employmentModels))
	for _, employmentM := range employmentModels {
		employments = append(employments, toEmploymentDomain(employmentM))
	}

	return employments, nil
}

func (repo *employmentRepository) Update(ctx context.Context, employment *entity.Employment) error {
	return updateRow(ctx, repo.db, fromEmploymentDomain(employment), "employment_id", employment.ID,
		repository.ErrEmploymentNotFound, "employment")
}

func (repo *employmentRepository) Delete(ctx context.Context, id int64) error {
	return deleteRow(ctx, repo.db, &model.EmploymentModel{}, "employment_id", id,
		repository.ErrEmploymentNotFound, "employment")
}

// organisationRepository implements the repository.OrganisationRepository interface.
type organisationRepository struct {
	db *gorm.DB
}

// NewOrganisationRepository is the constructor for organisationRepository.
func NewOrganisationRepository(db *gorm.DB) repository.OrganisationRepository {
	return &organisationRepository{
		db: db,
	}
}

func (repo *organisationRepository) FindByID(ctx context.Context, id int64) (*entity.Organisation, error) {
	var organisationM model.OrganisationModel

	if err := repo.db.WithContext(ctx).
		Where("organisation_id = ?", id).
		First(&organisationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrganisationNotFound
		}

		return nil, errors.Wrap(err, "failed to find organisation by ID")
	}

	return &entity.Organisation{
		ID:     organisationM.OrganisationID,
		Name:   organisationM.OrganisationName,
		Active: organisationM.Active,
	}, nil
}

func toEmploymentDomain(data *model.EmploymentModel) *entity.Employment {
	return &entity.Employment{
		ID:             data.EmploymentID,
		ContactID:      data.ContactID,
		OrganisationID: data.OrganisationID,
		IsActive:       data.Active,
		Audit:          data.ToAudit(),
	}
}

func fromEmploymentDomain(data *entity.Employment) *model.EmploymentModel {
	return &model.EmploymentModel{
		EmploymentID:   data.ID,
		ContactID:      data.ContactID,
		OrganisationID: data.OrganisationID,
		Active:         data.IsActive,
		AuditColumns:   model.FromAudit(data.Audit),
	}
}
