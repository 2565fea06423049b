package impl

import (
	"context"
	"testing"

	"contacts/internal/domain/entity"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/errors"
	"contacts/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRestrictionService_ListContactRestrictions_ResolvesDisplayNames(t *testing.T) {
	f := createTestFixtures(t)
	ctx := context.Background()
	contact := f.store.seedContact("Smith")
	for _, by := range []string{"jbloggs", "jbloggs", "asmith", "ghost"} {
		f.store.restrictions.create(&entity.ContactRestriction{ContactID: contact.ID, RestrictionType: "BAN", Audit: entity.Audit{CreatedBy: by}})
	}

	f.userDirectory.EXPECT().DisplayName(mock.Anything, "jbloggs").Return("Joe Bloggs", nil).Once()
	f.userDirectory.EXPECT().DisplayName(mock.Anything, "asmith").Return("Alice Smith", nil).Once()
	f.userDirectory.EXPECT().DisplayName(mock.Anything, "ghost").Return("", errors.New("404")).Once()

	views, err := f.restrictionService().ListContactRestrictions(ctx, contact.ID)
	require.NoError(t, err)
	require.Len(t, views, 4)
	assert.Equal(t, "Joe Bloggs", views[0].EnteredByDisplayName)
	assert.Equal(t, "Joe Bloggs", views[1].EnteredByDisplayName)
	assert.Equal(t, "Alice Smith", views[2].EnteredByDisplayName)
	assert.Equal(t, "ghost", views[3].EnteredByDisplayName)
}

func TestRestrictionService_ListContactRestrictions_FailedLookupLeavesOthersRunning(t *testing.T) {
	f := createTestFixtures(t)
	ctx := context.Background()
	contact := f.store.seedContact("Smith")
	users := []string{"down1", "down2", "jbloggs", "asmith", "mjones", "kpatel"}
	for _, by := range users {
		f.store.restrictions.create(&entity.ContactRestriction{ContactID: contact.ID, RestrictionType: "BAN", Audit: entity.Audit{CreatedBy: by}})
	}

	live := mock.MatchedBy(func(ctx context.Context) bool { return ctx.Err() == nil })
	f.userDirectory.EXPECT().DisplayName(live, "down1").Return("", errors.New("timeout")).Once()
	f.userDirectory.EXPECT().DisplayName(live, "down2").Return("", errors.New("timeout")).Once()
	f.userDirectory.EXPECT().DisplayName(live, "jbloggs").Return("Joe Bloggs", nil).Once()
	f.userDirectory.EXPECT().DisplayName(live, "asmith").Return("Alice Smith", nil).Once()
	f.userDirectory.EXPECT().DisplayName(live, "mjones").Return("Mary Jones", nil).Once()
	f.userDirectory.EXPECT().DisplayName(live, "kpatel").Return("Kiran Patel", nil).Once()

	views, err := f.restrictionService().ListContactRestrictions(ctx, contact.ID)
	require.NoError(t, err)
	require.Len(t, views, len(users))

	got := make([]string, len(views))
	for i, v := range views {
		got[i] = v.EnteredByDisplayName
	}
	assert.Equal(t, []string{"down1", "down2", "Joe Bloggs", "Alice Smith", "Mary Jones", "Kiran Patel"}, got)
}

func TestRestrictionService_ContactRestrictionLifecycle(t *testing.T) {
	f := createTestFixtures(t)
	ctx := context.Background()
	svc := f.restrictionService()
	contact := f.store.seedContact("Smith")

	_, err := svc.CreateContactRestriction(ctx, dpsUser, contact.ID, &usecase.RestrictionInput{RestrictionType: "CLOSED"})
	require.ErrorIs(t, err, domainerrors.ErrUnsupportedValue)

	created, err := svc.CreateContactRestriction(ctx, dpsUser, contact.ID, &usecase.RestrictionInput{RestrictionType: "BAN", StartDate: day(2025, 1, 1)})
	require.NoError(t, err)

	updated, err := svc.UpdateContactRestriction(ctx, dpsUser, contact.ID, created.ID, &usecase.RestrictionInput{RestrictionType: "BAN", Comments: ptr("reviewed")})
	require.NoError(t, err)
	assert.Equal(t, "reviewed", *updated.Comments)

	require.NoError(t, svc.DeleteContactRestriction(ctx, nomisUser, usecase.AnyContact, created.ID))

	assert.Equal(t, []entity.EventKind{
		entity.EventRestrictionCreated,
		entity.EventRestrictionUpdated,
		entity.EventRestrictionDeleted,
	}, f.dispatcher.kinds())
	assert.Equal(t, entity.SourceNOMIS, f.dispatcher.dispatched[2].Source)
}

func TestRestrictionService_PrisonerContactRestrictionCarriesNomsNumber(t *testing.T) {
	f := createTestFixtures(t)
	ctx := context.Background()
	contact := f.store.seedContact("Smith")
	rel := &entity.PrisonerContact{ContactID: contact.ID, PrisonerNumber: "A1234BC"}
	f.store.prisonerContacts.create(rel)

	created, err := f.restrictionService().CreatePrisonerContactRestriction(ctx, dpsUser, rel.ID, &usecase.RestrictionInput{RestrictionType: "BAN"})
	require.NoError(t, err)
	assert.Equal(t, rel.ID, created.PrisonerContactID)

	require.Len(t, f.dispatcher.dispatched, 1)
	ref := f.dispatcher.dispatched[0].PersonReference
	assert.Equal(t, contact.ID, ref.DpsContactID)
	require.NotNil(t, ref.NomsNumber)
	assert.Equal(t, "A1234BC", *ref.NomsNumber)

	_, err = f.restrictionService().CreatePrisonerContactRestriction(ctx, dpsUser, 777, &usecase.RestrictionInput{RestrictionType: "BAN"})
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
