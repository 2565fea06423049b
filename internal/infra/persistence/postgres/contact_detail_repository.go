package postgres

import (
	"context"

	"contacts/internal/domain/entity"
	"contacts/internal/domain/repository"
	"contacts/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// emailRepository implements the repository.EmailRepository interface.
type emailRepository struct {
	db *gorm.DB
}

// NewEmailRepository is the constructor for emailRepository.
func NewEmailRepository(db *gorm.DB) repository.EmailRepository {
	return &emailRepository{
		db: db,
	}
}

func (repo *emailRepository) Create(ctx context.Context, email *entity.ContactEmail) error {
	emailM := fromEmailDomain(email)

	if err := repo.db.WithContext(ctx).Create(emailM).Error; err != nil {
		return writeError(err, "email")
	}
	email.ID = emailM.ContactEmailID

	return nil
}

func (repo *emailRepository) FindByID(ctx context.Context, id int64) (*entity.ContactEmail, error) {
	var emailM model.ContactEmailModel

	if err := repo.db.WithContext(ctx).
		Where("contact_email_id = ?", id).
		First(&emailM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEmailNotFound
		}

		return nil, errors.Wrap(err, "failed to find email by ID")
	}

	return toEmailDomain(&emailM), nil
}

func (repo *emailRepository) FindByContact(ctx context.Context, contactID int64) ([]*entity.ContactEmail, error) {
	var emailModels []*model.ContactEmailModel

	if err := repo.db.WithContext(ctx).
		Where("contact_id = ?", contactID).
		Order("contact_email_id").
		Find(&emailModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find emails by contact")
	}

	emails := make([]*entity.ContactEmail, 0, len(emailModels))
	for _, emailM := range emailModels {
		emails = append(emails, toEmailDomain(emailM))
	}

	return emails, nil
}

func (repo *emailRepository) Update(ctx context.Context, email *entity.ContactEmail) error {
	return updateRow(ctx, repo.db, fromEmailDomain(email), "contact_email_id", email.ID,
		repository.ErrEmailNotFound, "email")
}

func (repo *emailRepository) Delete(ctx context.Context, id int64) error {
	return deleteRow(ctx, repo.db, &model.ContactEmailModel{}, "contact_email_id", id,
		repository.ErrEmailNotFound, "email")
}

// identityRepository implements the repository.IdentityRepository interface.
type identityRepository struct {
	db *gorm.DB
}

// NewIdentityRepository is the constructor for identityRepository.
func NewIdentityRepository(db *gorm.DB) repository.IdentityRepository {
	return &identityRepository{
		db: db,
	}
}

func (repo *identityRepository) Create(ctx context.Context, identity *entity.ContactIdentity) error {
	identityM := fromIdentityDomain(identity)

	if err := repo.db.WithContext(ctx).Create(identityM).Error; err != nil {
		return writeError(err, "identity")
	}
	identity.ID = identityM.ContactIdentityID

	return nil
}

func (repo *identityRepository) FindByID(ctx context.Context, id int64) (*entity.ContactIdentity, error) {
	var identityM model.ContactIdentityModel

	if err := repo.db.WithContext(ctx).
		Where("contact_identity_id = ?", id).
		First(&identityM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIdentityNotFound
		}

		return nil, errors.Wrap(err, "failed to find identity by ID")
	}

	return toIdentityDomain(&identityM), nil
}

func (repo *identityRepository) FindByContact(ctx context.Context, contactID int64) ([]*entity.ContactIdentity, error) {
	var identityModels []*model.ContactIdentityModel

	if err := repo.db.WithContext(ctx).
		Where("contact_id = ?", contactID).
		Order("contact_identity_id").
		Find(&identityModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find identities by contact")
	}

	identities := make([]*entity.ContactIdentity, 0, len(identityModels))
	for _, identityM := range identityModels {
		identities = append(identities, toIdentityDomain(identityM))
	}

	return identities, nil
}

func (repo *identityRepository) Update(ctx context.Context, identity *entity.ContactIdentity) error {
	return updateRow(ctx, repo.db, fromIdentityDomain(identity), "contact_identity_id", identity.ID,
		repository.ErrIdentityNotFound, "identity")
}

func (repo *identityRepository) Delete(ctx context.Context, id int64) error {
	return deleteRow(ctx, repo.db, &model.ContactIdentityModel{}, "contact_identity_id", id,
		repository.ErrIdentityNotFound, "identity")
}

func toEmailDomain(data *model.ContactEmailModel) *entity.ContactEmail {
	return &entity.ContactEmail{
		ID:           data.ContactEmailID,
		ContactID:    data.ContactID,
		EmailAddress: data.EmailAddress,
		Audit:        data.ToAudit(),
	}
}

func fromEmailDomain(data *entity.ContactEmail) *model.ContactEmailModel {
	return &model.ContactEmailModel{
		ContactEmailID: data.ID,
		ContactID:      data.ContactID,
		EmailAddress:   data.EmailAddress,
		AuditColumns:   model.FromAudit(data.Audit),
	}
}

func toIdentityDomain(data *model.ContactIdentityModel) *entity.ContactIdentity {
	return &entity.ContactIdentity{
		ID:               data.ContactIdentityID,
		ContactID:        data.ContactID,
		IdentityType:     data.IdentityType,
		IdentityValue:    data.Identity,
		IssuingAuthority: data.IssuingAuthority,
		Audit:            data.ToAudit(),
	}
}

func fromIdentityDomain(data *entity.ContactIdentity) *model.ContactIdentityModel {
	return &model.ContactIdentityModel{
		ContactIdentityID: data.ID,
		ContactID:         data.ContactID,
		IdentityType:      data.IdentityType,
		Identity:          data.IdentityValue,
		IssuingAuthority:  data.IssuingAuthority,
		AuditColumns:      model.FromAudit(data.Audit),
	}
}
