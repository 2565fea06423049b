package usecase

import (
	"context"

	"contacts/internal/domain/entity"
)

// EmploymentInput describes an employment.
type EmploymentInput struct {
	OrganisationID int64
	IsActive       bool
}

// EmploymentUpdate replaces an existing employment's state.
type EmploymentUpdate struct {
	EmploymentID   int64
	OrganisationID int64
	IsActive       bool
}

// PatchEmploymentsInput is a batch of employment changes applied all-or-nothing.
type PatchEmploymentsInput struct {
	Create []EmploymentInput
	Update []EmploymentUpdate
	Delete []int64
}

// EmploymentUsecase defines employment use cases.
type EmploymentUsecase interface {
	CreateEmployment(ctx context.Context, req Requester, contactID int64, input *EmploymentInput) (*entity.Employment, error)
	GetEmployment(ctx context.Context, contactID, employmentID int64) (*entity.Employment, error)
	UpdateEmployment(ctx context.Context, req Requester, contactID, employmentID int64, input *EmploymentInput) (*entity.Employment, error)
	DeleteEmployment(ctx context.Context, req Requester, contactID, employmentID int64) error
	ListEmployments(ctx context.Context, contactID int64) ([]*entity.Employment, error)

	// PatchEmployments applies creates, then updates, then deletes in one transaction,
	// and returns the contact's employments afterwards.
	PatchEmployments(ctx context.Context, req Requester, contactID int64, input *PatchEmploymentsInput) ([]*entity.Employment, error)
}
