package postgres

import (
	"context"

	"contacts/internal/domain/entity"
	"contacts/internal/domain/repository"
	"contacts/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// phoneRepository implements the repository.PhoneRepository interface.
type phoneRepository struct {
	db *gorm.DB
}

// NewPhoneRepository is the constructor for phoneRepository.
func NewPhoneRepository(db *gorm.DB) repository.PhoneRepository {
	return &phoneRepository{
		db: db,
	}
}

func (repo *phoneRepository) Create(ctx context.Context, phone *entity.ContactPhone) error {
	phoneM := fromPhoneDomain(phone)

	if err := repo.db.WithContext(ctx).Create(phoneM).Error; err != nil {
		return writeError(err, "phone")
	}
	phone.ID = phoneM.ContactPhoneID

	return nil
}

func (repo *phoneRepository) FindByID(ctx context.Context, id int64) (*entity.ContactPhone, error) {
	var phoneM model.ContactPhoneModel

	if err := repo.db.WithContext(ctx).
		Where("contact_phone_id = ?", id).
		First(&phoneM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPhoneNotFound
		}

		return nil, errors.Wrap(err, "failed to find phone by ID")
	}

	return toPhoneDomain(&phoneM), nil
}

func (repo *phoneRepository) FindByContact(ctx context.Context, contactID int64) ([]*entity.ContactPhone, error) {
	var phoneModels []*model.ContactPhoneModel

	if err := repo.db.WithContext(ctx).
		Where("contact_id = ?", contactID).
		Order("contact_phone_id").
		Find(&phoneModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find phones by contact")
	}

	phones := make([]*entity.ContactPhone, 0, len(phoneModels))
	for _, phoneM := range phoneModels {
		phones = append(phones, toPhoneDomain(phoneM))
	}

	return phones, nil
}

func (repo *phoneRepository) Update(ctx context.Context, phone *entity.ContactPhone) error {
	return updateRow(ctx, repo.db, fromPhoneDomain(phone), "contact_phone_id", phone.ID,
		repository.ErrPhoneNotFound, "phone")
}

func (repo *phoneRepository) Delete(ctx context.Context, id int64) error {
	return deleteRow(ctx, repo.db, &model.ContactPhoneModel{}, "contact_phone_id", id,
		repository.ErrPhoneNotFound, "phone")
}

// addressPhoneRepository implements the repository.AddressPhoneRepository interface.
type addressPhoneRepository struct {
	db *gorm.DB
}

// NewAddressPhoneRepository is the constructor for addressPhoneRepository.
func NewAddressPhoneRepository(db *gorm.DB) repository.AddressPhoneRepository {
	return &addressPhoneRepository{
		db: db,
	}
}

func (repo *addressPhoneRepository) Create(ctx context.Context, link *entity.ContactAddressPhone) error {
	linkM := fromAddressPhoneDomain(link)

	if err := repo.db.WithContext(ctx).Create(linkM).Error; err != nil {
		return writeError(err, "address phone")
	}
	link.ID = linkM.ContactAddressPhoneID

	return nil
}

func (repo *addressPhoneRepository) FindByID(ctx context.Context, id int64) (*entity.ContactAddressPhone, error) {
	var linkM model.ContactAddressPhoneModel

	if err := repo.db.WithContext(ctx).
		Where("contact_address_phone_id = ?", id).
		First(&linkM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressPhoneNotFound
		}

		return nil, errors.Wrap(err, "failed to find address phone by ID")
	}

	return toAddressPhoneDomain(&linkM), nil
}

func (repo *addressPhoneRepository) FindByAddress(ctx context.Context, addressID int64) ([]*entity.ContactAddressPhone, error) {
	return repo.findWhere(ctx, "contact_address_id = ?", addressID)
}

func (repo *addressPhoneRepository) FindByPhone(ctx context.Context, phoneID int64) ([]*entity.ContactAddressPhone, error) {
	return repo.findWhere(ctx, "contact_phone_id = ?", phoneID)
}

func (repo *addressPhoneRepository) findWhere(ctx context.Context, query string, id int64) ([]*entity.ContactAddressPhone, error) {
	var linkModels []*model.ContactAddressPhoneModel

	if err := repo.db.WithContext(ctx).
		Where(query, id).
		Order("contact_address_phone_id").
		Find(&linkModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find address phones")
	}

	links := make([]*entity.ContactAddressPhone, 0, len(linkModels))
	for _, linkM := range linkModels {
		links = append(links, toAddressPhoneDomain(linkM))
	}

	return links, nil
}

func (repo *addressPhoneRepository) Delete(ctx context.Context, id int64) error {
	return deleteRow(ctx, repo.db, &model.ContactAddressPhoneModel{}, "contact_address_phone_id", id,
		repository.ErrAddressPhoneNotFound, "address phone")
}

func toPhoneDomain(data *model.ContactPhoneModel) *entity.ContactPhone {
	return &entity.ContactPhone{
		ID:          data.ContactPhoneID,
		ContactID:   data.ContactID,
		PhoneType:   data.PhoneType,
		PhoneNumber: data.PhoneNumber,
		ExtNumber:   data.ExtNumber,
		Audit:       data.ToAudit(),
	}
}

func fromPhoneDomain(data *entity.ContactPhone) *model.ContactPhoneModel {
	return &model.ContactPhoneModel{
		ContactPhoneID: data.ID,
		ContactID:      data.ContactID,
		PhoneType:      data.PhoneType,
		PhoneNumber:    data.PhoneNumber,
		ExtNumber:      data.ExtNumber,
		AuditColumns:   model.FromAudit(data.Audit),
	}
}

func toAddressPhoneDomain(data *model.ContactAddressPhoneModel) *entity.ContactAddressPhone {
	return &entity.ContactAddressPhone{
		ID:               data.ContactAddressPhoneID,
		ContactID:        data.ContactID,
		ContactAddressID: data.ContactAddressID,
		ContactPhoneID:   data.ContactPhoneID,
		Audit:            data.ToAudit(),
	}
}

func fromAddressPhoneDomain(data *entity.ContactAddressPhone) *model.ContactAddressPhoneModel {
	return &model.ContactAddressPhoneModel{
		ContactAddressPhoneID: data.ID,
		ContactID:             data.ContactID,
		ContactAddressID:      data.ContactAddressID,
		ContactPhoneID:        data.ContactPhoneID,
		AuditColumns:          model.FromAudit(data.Audit),
	}
}
