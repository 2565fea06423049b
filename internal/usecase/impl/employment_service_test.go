package impl

import (
	"context"
	"net/http"
	"testing"

	"contacts/internal/domain/entity"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/errors"
	"contacts/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmploymentService_PatchEmployments_AppliesInOrder(t *testing.T) {
	f := createTestFixtures(t)
	ctx := context.Background()

	contact := f.store.seedContact("Smith")
	f.store.addOrganisation(999)
	f.store.addOrganisation(123)
	e1 := f.store.seedEmployment(contact.ID, 999)
	e2 := f.store.seedEmployment(contact.ID, 999)
	untouched := f.store.seedEmployment(contact.ID, 123)

	got, err := f.employmentService().PatchEmployments(ctx, dpsUser, contact.ID, &usecase.PatchEmploymentsInput{
		Create: []usecase.EmploymentInput{{OrganisationID: 123, IsActive: true}},
		Update: []usecase.EmploymentUpdate{{EmploymentID: e1.ID, OrganisationID: 123, IsActive: false}},
		Delete: []int64{e2.ID},
	})
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, []entity.EventKind{
		entity.EventEmploymentCreated,
		entity.EventEmploymentUpdated,
		entity.EventEmploymentDeleted,
	}, f.dispatcher.kinds())
	assert.Equal(t, e1.ID, f.dispatcher.dispatched[1].EntityID)
	assert.Equal(t, e2.ID, f.dispatcher.dispatched[2].EntityID)

	stored, err := f.store.employments.find(untouched.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.UpdatedBy)

	updated, err := f.store.employments.find(e1.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(123), updated.OrganisationID)
	assert.False(t, updated.IsActive)
}

func TestEmploymentService_PatchEmployments_UnknownOrganisationAbortsBatch(t *testing.T) {
	f := createTestFixtures(t)
	ctx := context.Background()

	contact := f.store.seedContact("Smith")
	f.store.addOrganisation(999)
	e1 := f.store.seedEmployment(contact.ID, 999)
	e2 := f.store.seedEmployment(contact.ID, 999)
	before, _ := f.store.EmploymentRepo().FindByContact(ctx, contact.ID)

	_, err := f.employmentService().PatchEmployments(ctx, dpsUser, contact.ID, &usecase.PatchEmploymentsInput{
		Create: []usecase.EmploymentInput{{OrganisationID: 999, IsActive: true}},
		Update: []usecase.EmploymentUpdate{{EmploymentID: e1.ID, OrganisationID: 987654321, IsActive: true}},
		Delete: []int64{e2.ID},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrExternalReferenceNotFound)
	assert.Contains(t, err.Error(), "987654321")

	after, _ := f.store.EmploymentRepo().FindByContact(ctx, contact.ID)
	assert.Equal(t, before, after)
	assert.Empty(t, f.dispatcher.dispatched)
	assert.Empty(t, f.store.outbox)
}

func TestEmploymentService_PatchEmployments_MissingDeleteAbortsBatch(t *testing.T) {
	f := createTestFixtures(t)
	ctx := context.Background()

	contact := f.store.seedContact("Smith")
	other := f.store.seedContact("Jones")
	f.store.addOrganisation(999)
	e1 := f.store.seedEmployment(contact.ID, 999)
	foreign := f.store.seedEmployment(other.ID, 999)

	for _, missing := range []int64{424242, foreign.ID} {
		_, err := f.employmentService().PatchEmployments(ctx, dpsUser, contact.ID, &usecase.PatchEmploymentsInput{
			Create: []usecase.EmploymentInput{{OrganisationID: 999, IsActive: true}},
			Delete: []int64{e1.ID, missing},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	}

	employments, _ := f.store.EmploymentRepo().FindByContact(ctx, contact.ID)
	require.Len(t, employments, 1)
	assert.Equal(t, e1.ID, employments[0].ID)
	assert.Empty(t, f.dispatcher.dispatched)
}

func TestEmploymentService_PatchEmployments_RepeatedIDAbortsBatch(t *testing.T) {
	f := createTestFixtures(t)
	ctx := context.Background()

	contact := f.store.seedContact("Smith")
	f.store.addOrganisation(999)
	e1 := f.store.seedEmployment(contact.ID, 999)
	e2 := f.store.seedEmployment(contact.ID, 999)

	tests := []struct {
		name  string
		input *usecase.PatchEmploymentsInput
	}{
		{
			name:  "repeated delete",
			input: &usecase.PatchEmploymentsInput{Delete: []int64{e2.ID, e2.ID}},
		},
		{
			name: "repeated update",
			input: &usecase.PatchEmploymentsInput{Update: []usecase.EmploymentUpdate{
				{EmploymentID: e1.ID, OrganisationID: 999, IsActive: true},
				{EmploymentID: e1.ID, OrganisationID: 999, IsActive: false},
			}},
		},
		{
			name: "updated and deleted",
			input: &usecase.PatchEmploymentsInput{
				Create: []usecase.EmploymentInput{{OrganisationID: 999, IsActive: true}},
				Update: []usecase.EmploymentUpdate{{EmploymentID: e1.ID, OrganisationID: 999, IsActive: false}},
				Delete: []int64{e1.ID},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.employmentService().PatchEmployments(ctx, dpsUser, contact.ID, tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
		})
	}

	employments, _ := f.store.EmploymentRepo().FindByContact(ctx, contact.ID)
	require.Len(t, employments, 2)
	for _, e := range employments {
		assert.True(t, e.IsActive)
	}
	assert.Empty(t, f.dispatcher.dispatched)
}

func TestEmploymentService_PatchEmployments_WriteFailureRollsBack(t *testing.T) {
	f := createTestFixtures(t)
	ctx := context.Background()

	contact := f.store.seedContact("Smith")
	f.store.addOrganisation(999)
	e1 := f.store.seedEmployment(contact.ID, 999)
	f.store.failures["employment.delete"] = errors.New("connection reset")

	_, err := f.employmentService().PatchEmployments(ctx, dpsUser, contact.ID, &usecase.PatchEmploymentsInput{
		Create: []usecase.EmploymentInput{{OrganisationID: 999, IsActive: true}},
		Delete: []int64{e1.ID},
	})
	require.Error(t, err)

	employments, _ := f.store.EmploymentRepo().FindByContact(ctx, contact.ID)
	require.Len(t, employments, 1)
	assert.Empty(t, f.dispatcher.dispatched)
}

func TestEmploymentService_PatchEmployments_UnknownContact(t *testing.T) {
	f := createTestFixtures(t)

	_, err := f.employmentService().PatchEmployments(context.Background(), dpsUser, 404, &usecase.PatchEmploymentsInput{})
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestEmploymentService_SyncSkipsOrganisationCheck(t *testing.T) {
	f := createTestFixtures(t)
	ctx := context.Background()
	contact := f.store.seedContact("Smith")

	employment, err := f.employmentService().CreateEmployment(ctx, nomisUser, contact.ID, &usecase.EmploymentInput{OrganisationID: 555, IsActive: true})
	require.NoError(t, err)
	require.Len(t, f.dispatcher.dispatched, 1)
	assert.Equal(t, entity.SourceNOMIS, f.dispatcher.dispatched[0].Source)
	assert.Equal(t, employment.ID, f.dispatcher.dispatched[0].EntityID)

	_, err = f.employmentService().CreateEmployment(ctx, dpsUser, contact.ID, &usecase.EmploymentInput{OrganisationID: 555})
	assert.ErrorIs(t, err, domainerrors.ErrExternalReferenceNotFound)
}

func TestEmploymentService_UpdateAndDelete(t *testing.T) {
	f := createTestFixtures(t)
	ctx := context.Background()
	svc := f.employmentService()
	contact := f.store.seedContact("Smith")
	f.store.addOrganisation(1)
	e1 := f.store.seedEmployment(contact.ID, 1)

	updated, err := svc.UpdateEmployment(ctx, nomisUser, usecase.AnyContact, e1.ID, &usecase.EmploymentInput{OrganisationID: 1, IsActive: false})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
	assert.Equal(t, "nomis.user", *updated.UpdatedBy)

	require.NoError(t, svc.DeleteEmployment(ctx, nomisUser, usecase.AnyContact, e1.ID))
	_, err = svc.GetEmployment(ctx, contact.ID, e1.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	assert.Equal(t, []entity.EventKind{entity.EventEmploymentUpdated, entity.EventEmploymentDeleted}, f.dispatcher.kinds())
}
