package postgres

import (
	"context"

	"contacts/internal/domain/entity"
	"contacts/internal/domain/repository"
	"contacts/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// addressRepository implements the repository.AddressRepository interface.
type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{
		db: db,
	}
}

// Create persists a new address and assigns its id.
func (repo *addressRepository) Create(ctx context.Context, address *entity.ContactAddress) error {
	addressM := fromAddressDomain(address)

	if err := repo.db.WithContext(ctx).Create(addressM).Error; err != nil {
		return writeError(err, "address")
	}
	address.ID = addressM.ContactAddressID

	return nil
}

// FindByID retrieves an address by its id.
func (repo *addressRepository) FindByID(ctx context.Context, id int64) (*entity.ContactAddress, error) {
	var addressM model.ContactAddressModel

	if err := repo.db.WithContext(ctx).
		Where("contact_address_id = ?", id).
		First(&addressM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find address by ID")
	}

	return toAddressDomain(&addressM), nil
}

// FindByContact returns all of a contact's addresses ordered by id.
func (repo *addressRepository) FindByContact(ctx context.Context, contactID int64) ([]*entity.ContactAddress, error) {
	return repo.findByContact(repo.db.WithContext(ctx), contactID)
}

// FindByContactForUpdate locks every address row of the contact on the primary.
func (repo *addressRepository) FindByContactForUpdate(ctx context.Context, contactID int64) ([]*entity.ContactAddress, error) {
	return repo.findByContact(repo.db.WithContext(ctx).
		Clauses(dbresolver.Write, clause.Locking{Strength: clause.LockingStrengthUpdate}), contactID)
}

func (repo *addressRepository) findByContact(db *gorm.DB, contactID int64) ([]*entity.ContactAddress, error) {
	var addressModels []*model.ContactAddressModel

	if err := db.
		Where("contact_id = ?", contactID).
		Order("contact_address_id").
		Find(&addressModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find addresses by contact")
	}

	return toAddressDomains(addressModels), nil
}

// FindByContacts returns the addresses of several contacts in one query.
func (repo *addressRepository) FindByContacts(ctx context.Context, contactIDs []int64) ([]*entity.ContactAddress, error) {
	if len(contactIDs) == 0 {
		return []*entity.ContactAddress{}, nil
	}

	var addressModels []*model.ContactAddressModel
	if err := repo.db.WithContext(ctx).
		Where("contact_id IN ?", contactIDs).
		Order("contact_id, contact_address_id").
		Find(&addressModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find addresses by contacts")
	}

	return toAddressDomains(addressModels), nil
}

// Update writes every column of the address.
func (repo *addressRepository) Update(ctx context.Context, address *entity.ContactAddress) error {
	return updateRow(ctx, repo.db, fromAddressDomain(address), "contact_address_id", address.ID,
		repository.ErrAddressNotFound, "address")
}

// Delete removes an address.
func (repo *addressRepository) Delete(ctx context.Context, id int64) error {
	return deleteRow(ctx, repo.db, &model.ContactAddressModel{}, "contact_address_id", id,
		repository.ErrAddressNotFound, "address")
}

func toAddressDomains(addressModels []*model.ContactAddressModel) []*entity.ContactAddress {
	addresses := make([]*entity.ContactAddress, 0, len(addressModels))
	for _, addressM := range addressModels {
		addresses = append(addresses, toAddressDomain(addressM))
	}

	return addresses
}

func toAddressDomain(data *model.ContactAddressModel) *entity.ContactAddress {
	return &entity.ContactAddress{
		ID:             data.ContactAddressID,
		ContactID:      data.ContactID,
		AddressType:    data.AddressType,
		PrimaryAddress: data.PrimaryAddress,
		MailFlag:       data.MailFlag,
		FlatNumber:     data.FlatNumber,
		Property:       data.Property,
		Street:         data.Street,
		Area:           data.Area,
		CityCode:       data.CityCode,
		CountyCode:     data.CountyCode,
		PostCode:       data.PostCode,
		CountryCode:    data.CountryCode,
		NoFixedAddress: data.NoFixedAddress,
		StartDate:      data.StartDate,
		EndDate:        data.EndDate,
		Comments:       data.Comments,
		Verified:       data.Verified,
		VerifiedBy:     data.VerifiedBy,
		VerifiedTime:   data.VerifiedTime,
		Audit:          data.ToAudit(),
	}
}

func fromAddressDomain(data *entity.ContactAddress) *model.ContactAddressModel {
	return &model.ContactAddressModel{
		ContactAddressID: data.ID,
		ContactID:        data.ContactID,
		AddressType:      data.AddressType,
		PrimaryAddress:   data.PrimaryAddress,
		MailFlag:         data.MailFlag,
		FlatNumber:       data.FlatNumber,
		Property:         data.Property,
		Street:           data.Street,
		Area:             data.Area,
		CityCode:         data.CityCode,
		CountyCode:       data.CountyCode,
		PostCode:         data.PostCode,
		CountryCode:      data.CountryCode,
		NoFixedAddress:   data.NoFixedAddress,
		StartDate:        data.StartDate,
		EndDate:          data.EndDate,
		Comments:         data.Comments,
		Verified:         data.Verified,
		VerifiedBy:       data.VerifiedBy,
		VerifiedTime:     data.VerifiedTime,
		AuditColumns:     model.FromAudit(data.Audit),
	}
}
