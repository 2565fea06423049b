// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"strings"

	"contacts/internal/domain/entity"
	"contacts/internal/domain/repository"
	"contacts/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// contactRepository implements the repository.ContactRepository interface.
type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository is the constructor for contactRepository.
func NewContactRepository(db *gorm.DB) repository.ContactRepository {
	return &contactRepository{
		db: db,
	}
}

// Create persists a new contact and assigns its id.
func (repo *contactRepository) Create(ctx context.Context, contact *entity.Contact) error {
	contactM := fromContactDomain(contact)

	if err := repo.db.WithContext(ctx).Create(contactM).Error; err != nil {
		return writeError(err, "contact")
	}
	contact.ID = contactM.ContactID

	return nil
}

// FindByID retrieves a contact by its id.
func (repo *contactRepository) FindByID(ctx context.Context, id int64) (*entity.Contact, error) {
	var contactM model.ContactModel

	if err := repo.db.WithContext(ctx).
		Where("contact_id = ?", id).
		First(&contactM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrContactNotFound
		}

		return nil, errors.Wrap(err, "failed to find contact by ID")
	}

	return toContactDomain(&contactM), nil
}

// LockByID loads the contact with SELECT ... FOR UPDATE on the primary.
func (repo *contactRepository) LockByID(ctx context.Context, id int64) (*entity.Contact, error) {
	var contactM model.ContactModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write, clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("contact_id = ?", id).
		First(&contactM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrContactNotFound
		}

		return nil, errors.Wrap(err, "failed to lock contact")
	}

	return toContactDomain(&contactM), nil
}

// Update writes every column of the contact.
func (repo *contactRepository) Update(ctx context.Context, contact *entity.Contact) error {
	return updateRow(ctx, repo.db, fromContactDomain(contact), "contact_id", contact.ID,
		repository.ErrContactNotFound, "contact")
}

// Delete removes a contact.
func (repo *contactRepository) Delete(ctx context.Context, id int64) error {
	return deleteRow(ctx, repo.db, &model.ContactModel{}, "contact_id", id, repository.ErrContactNotFound, "contact")
}

// SearchByLastName returns one page of contacts whose last name starts with the given text.
func (repo *contactRepository) SearchByLastName(ctx context.Context, lastName string, limit, offset int) ([]*entity.Contact, int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.ContactModel{}).
		Where("LOWER(last_name) LIKE ?", escapeLike(strings.ToLower(lastName))+"%")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count contacts")
	}

	var contactModels []*model.ContactModel
	if err := query.
		Order("last_name, first_name, contact_id").
		Limit(limit).
		Offset(offset).
		Find(&contactModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to search contacts")
	}

	contacts := make([]*entity.Contact, 0, len(contactModels))
	for _, contactM := range contactModels {
		contacts = append(contacts, toContactDomain(contactM))
	}

	return contacts, total, nil
}

// CountDependents counts the rows every owned table still holds for the contact.
func (repo *contactRepository) CountDependents(ctx context.Context, id int64) (int64, error) {
	var total int64
	for _, m := range []any{
		&model.ContactAddressModel{},
		&model.ContactPhoneModel{},
		&model.ContactEmailModel{},
		&model.ContactIdentityModel{},
		&model.ContactRestrictionModel{},
		&model.PrisonerContactModel{},
		&model.EmploymentModel{},
	} {
		var n int64
		if err := repo.db.WithContext(ctx).Model(m).Where("contact_id = ?", id).Count(&n).Error; err != nil {
			return 0, errors.Wrap(err, "failed to count contact dependents")
		}
		total += n
	}

	return total, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func toContactDomain(data *model.ContactModel) *entity.Contact {
	return &entity.Contact{
		ID:                  data.ContactID,
		TitleCode:           data.Title,
		LastName:            data.LastName,
		FirstName:           data.FirstName,
		MiddleNames:         data.MiddleNames,
		DateOfBirth:         data.DateOfBirth,
		LanguageCode:        data.LanguageCode,
		InterpreterRequired: data.InterpreterRequired,
		GenderCode:          data.Gender,
		IsStaff:             data.Staff,
		Audit:               data.ToAudit(),
	}
}

func fromContactDomain(data *entity.Contact) *model.ContactModel {
	return &model.ContactModel{
		ContactID:           data.ID,
		Title:               data.TitleCode,
		LastName:            data.LastName,
		FirstName:           data.FirstName,
		MiddleNames:         data.MiddleNames,
		DateOfBirth:         data.DateOfBirth,
		LanguageCode:        data.LanguageCode,
		InterpreterRequired: data.InterpreterRequired,
		Gender:              data.GenderCode,
		Staff:               data.IsStaff,
		AuditColumns:        model.FromAudit(data.Audit),
	}
}
