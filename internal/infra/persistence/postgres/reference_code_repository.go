package postgres

import (
	"context"

	"contacts/internal/domain/entity"
	"contacts/internal/domain/repository"
	"contacts/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// referenceCodeRepository implements the repository.ReferenceCodeRepository interface.
type referenceCodeRepository struct {
	db *gorm.DB
}

// NewReferenceCodeRepository is the constructor for referenceCodeRepository.
func NewReferenceCodeRepository(db *gorm.DB) repository.ReferenceCodeRepository {
	return &referenceCodeRepository{
		db: db,
	}
}

func (repo *referenceCodeRepository) FindByGroupAndCode(ctx context.Context, group entity.ReferenceGroup, code string) (*entity.ReferenceCode, error) {
	var codeM model.ReferenceCodeModel

	if err := repo.db.WithContext(ctx).
		Where("group_code = ? AND code = ?", string(group), code).
		First(&codeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReferenceCodeNotFound
		}

		return nil, errors.Wrap(err, "failed to find reference code")
	}

	return toReferenceCodeDomain(&codeM), nil
}

func (repo *referenceCodeRepository) FindByGroup(ctx context.Context, group entity.ReferenceGroup) ([]*entity.ReferenceCode, error) {
	var codeModels []*model.ReferenceCodeModel

	if err := repo.db.WithContext(ctx).
		Where("group_code = ?", string(group)).
		Order("display_order, code").
		Find(&codeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find reference codes by group")
	}

	codes := make([]*entity.ReferenceCode, 0, len(codeModels))
	for _, codeM := range codeModels {
		codes = append(codes, toReferenceCodeDomain(codeM))
	}

	return codes, nil
}

func toReferenceCodeDomain(data *model.ReferenceCodeModel) *entity.ReferenceCode {
	return &entity.ReferenceCode{
		ID:           data.ReferenceCodeID,
		Group:        entity.ReferenceGroup(data.GroupCode),
		Code:         data.Code,
		Description:  data.Description,
		DisplayOrder: data.DisplayOrder,
		IsActive:     data.IsActive,
	}
}
