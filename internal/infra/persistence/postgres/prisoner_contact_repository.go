package postgres

import (
	"context"

	"contacts/internal/domain/entity"
	"contacts/internal/domain/repository"
	"contacts/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// prisonerContactRepository implements the repository.PrisonerContactRepository interface.
type prisonerContactRepository struct {
	db *gorm.DB
}

// NewPrisonerContactRepository is the constructor for prisonerContactRepository.
func NewPrisonerContactRepository(db *gorm.DB) repository.PrisonerContactRepository {
	return &prisonerContactRepository{
		db: db,
	}
}

func (repo *prisonerContactRepository) Create(ctx context.Context, relationship *entity.PrisonerContact) error {
	relationshipM := fromPrisonerContactDomain(relationship)

	if err := repo.db.WithContext(ctx).Create(relationshipM).Error; err != nil {
		return writeError(err, "prisoner contact")
	}
	relationship.ID = relationshipM.PrisonerContactID

	return nil
}

func (repo *prisonerContactRepository) FindByID(ctx context.Context, id int64) (*entity.PrisonerContact, error) {
	var relationshipM model.PrisonerContactModel

	if err := repo.db.WithContext(ctx).
		Where("prisoner_contact_id = ?", id).
		First(&relationshipM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPrisonerContactNotFound
		}

		return nil, errors.Wrap(err, "failed to find prisoner contact by ID")
	}

	return toPrisonerContactDomain(&relationshipM), nil
}

func (repo *prisonerContactRepository) FindByContact(ctx context.Context, contactID int64) ([]*entity.PrisonerContact, error) {
	return repo.findWhere(ctx, "contact_id = ?", contactID)
}

func (repo *prisonerContactRepository) FindByPrisoner(ctx context.Context, prisonerNumber string) ([]*entity.PrisonerContact, error) {
	return repo.findWhere(ctx, "prisoner_number = ?", prisonerNumber)
}

func (repo *prisonerContactRepository) findWhere(ctx context.Context, query string, arg any) ([]*entity.PrisonerContact, error) {
	var relationshipModels []*model.PrisonerContactModel

	if err := repo.db.WithContext(ctx).
		Where(query, arg).
		Order("prisoner_contact_id").
		Find(&relationshipModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find prisoner contacts")
	}

	relationships := make([]*entity.PrisonerContact, 0, len(relationshipModels))
	for _, relationshipM := range relationshipModels {
		relationships = append(relationships, toPrisonerContactDomain(relationshipM))
	}

	return relationships, nil
}

func (repo *prisonerContactRepository) Update(ctx context.Context, relationship *entity.PrisonerContact) error {
	return updateRow(ctx, repo.db, fromPrisonerContactDomain(relationship), "prisoner_contact_id", relationship.ID,
		repository.ErrPrisonerContactNotFound, "prisoner contact")
}

func (repo *prisonerContactRepository) Delete(ctx context.Context, id int64) error {
	return deleteRow(ctx, repo.db, &model.PrisonerContactModel{}, "prisoner_contact_id", id,
		repository.ErrPrisonerContactNotFound, "prisoner contact")
}

func toPrisonerContactDomain(data *model.PrisonerContactModel) *entity.PrisonerContact {
	return &entity.PrisonerContact{
		ID:                     data.PrisonerContactID,
		ContactID:              data.ContactID,
		PrisonerNumber:         data.PrisonerNumber,
		RelationshipType:       data.RelationshipType,
		RelationshipToPrisoner: data.RelationshipCode,
		NextOfKin:              data.NextOfKin,
		EmergencyContact:       data.EmergencyContact,
		ApprovedVisitor:        data.ApprovedVisitor,
		Active:                 data.Active,
		CurrentTerm:            data.CurrentTerm,
		Comments:               data.Comments,
		Audit:                  data.ToAudit(),
	}
}

func fromPrisonerContactDomain(data *entity.PrisonerContact) *model.PrisonerContactModel {
	return &model.PrisonerContactModel{
		PrisonerContactID: data.ID,
		ContactID:         data.ContactID,
		PrisonerNumber:    data.PrisonerNumber,
		RelationshipType:  data.RelationshipType,
		RelationshipCode:  data.RelationshipToPrisoner,
		NextOfKin:         data.NextOfKin,
		EmergencyContact:  data.EmergencyContact,
		ApprovedVisitor:   data.ApprovedVisitor,
		Active:            data.Active,
		CurrentTerm:       data.CurrentTerm,
		Comments:          data.Comments,
		AuditColumns:      model.FromAudit(data.Audit),
	}
}
