package impl

import (
	"context"
	"testing"

	"contacts/internal/domain/entity"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/errors"
	"contacts/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressService_CreatePrimary_ClearsPreviousPrimary(t *testing.T) {
	f := createTestFixtures(t)
	ctx := context.Background()

	contact := f.store.seedContact("Smith")
	a1 := f.store.seedAddress(&entity.ContactAddress{ContactID: contact.ID, PrimaryAddress: true})
	a2 := f.store.seedAddress(&entity.ContactAddress{ContactID: contact.ID})
	a3 := f.store.seedAddress(&entity.ContactAddress{ContactID: contact.ID, MailFlag: true})

	out, err := f.addressService().CreateAddress(ctx, dpsUser, contact.ID, &usecase.AddressInput{
		AddressType:    ptr("HOME"),
		PrimaryAddress: true,
	})
	require.NoError(t, err)

	a4 := out.Address
	assert.True(t, f.store.address(t, a4.ID).PrimaryAddress)
	assert.False(t, f.store.address(t, a1.ID).PrimaryAddress)
	assert.Equal(t, "dps.user", *f.store.address(t, a1.ID).UpdatedBy)
	assert.Nil(t, f.store.address(t, a2.ID).UpdatedBy)
	// primary does not take the mail flag
	assert.True(t, f.store.address(t, a3.ID).MailFlag)
	assert.Nil(t, f.store.address(t, a3.ID).UpdatedBy)

	require.Len(t, f.dispatcher.dispatched, 2)
	assert.Equal(t, entity.EventAddressCreated, f.dispatcher.dispatched[0].Kind)
	assert.Equal(t, a4.ID, f.dispatcher.dispatched[0].EntityID)
	assert.Equal(t, entity.EventAddressUpdated, f.dispatcher.dispatched[1].Kind)
	assert.Equal(t, a1.ID, f.dispatcher.dispatched[1].EntityID)
	for _, e := range f.dispatcher.dispatched {
		assert.Equal(t, entity.SourceDPS, e.Source)
		assert.Equal(t, contact.ID, e.PersonReference.DpsContactID)
		assert.Nil(t, e.PersonReference.NomsNumber)
	}
}

func TestAddressService_CreatePrimaryAndMail_ClearsCombinedSiblingOnce(t *testing.T) {
	f := createTestFixtures(t)
	ctx := context.Background()

	contact := f.store.seedContact("Smith")
	a1 := f.store.seedAddress(&entity.ContactAddress{ContactID: contact.ID, PrimaryAddress: true, MailFlag: true})

	out, err := f.addressService().CreateAddress(ctx, dpsUser, contact.ID, &usecase.AddressInput{
		PrimaryAddress: true,
		MailFlag:       true,
	})
	require.NoError(t, err)

	got := f.store.address(t, a1.ID)
	assert.False(t, got.PrimaryAddress)
	assert.False(t, got.MailFlag)
	assert.Equal(t, 1, f.store.writes["address.update"])
	assert.Len(t, f.dispatcher.ofKind(entity.EventAddressUpdated), 1)
	assert.Len(t, f.dispatcher.ofKind(entity.EventAddressCreated), 1)
	assert.True(t, f.store.address(t, out.Address.ID).PrimaryAddress)
	assert.True(t, f.store.address(t, out.Address.ID).MailFlag)
}

func TestAddressService_CreateWithoutFlags_TouchesNoSibling(t *testing.T) {
	f := createTestFixtures(t)
	ctx := context.Background()

	contact := f.store.seedContact("Smith")
	f.store.seedAddress(&entity.ContactAddress{ContactID: contact.ID, PrimaryAddress: true})

	_, err := f.addressService().CreateAddress(ctx, dpsUser, contact.ID, &usecase.AddressInput{})
	require.NoError(t, err)

	assert.Equal(t, []entity.EventKind{entity.EventAddressCreated}, f.dispatcher.kinds())
	assert.Zero(t, f.store.writes["address.update"])
}

func TestAddressService_Update_KeepsSinglePrimaryAndMail(t *testing.T) {
	f := createTestFixtures(t)
	ctx := context.Background()
	svc := f.addressService()

	contact := f.store.seedContact("Smith")
	a1 := f.store.seedAddress(&entity.ContactAddress{ContactID: contact.ID, PrimaryAddress: true})
	a2 := f.store.seedAddress(&entity.ContactAddress{ContactID: contact.ID, MailFlag: true})
	a3 := f.store.seedAddress(&entity.ContactAddress{ContactID: contact.ID})

	steps := []struct {
		id            int64
		primary, mail bool
	}{
		{a3.ID, true, false},
		{a1.ID, false, true},
		{a2.ID, true, true},
		{a3.ID, false, true},
	}
	for _, step := range steps {
		_, err := svc.UpdateAddress(ctx, dpsUser, contact.ID, step.id, &usecase.AddressInput{
			PrimaryAddress: step.primary,
			MailFlag:       step.mail,
		})
		require.NoError(t, err)

		addresses, _ := f.store.AddressRepo().FindByContact(ctx, contact.ID)
		var primaries, mails int
		for _, a := range addresses {
			if a.PrimaryAddress {
				primaries++
			}
			if a.MailFlag {
				mails++
			}
		}
		assert.LessOrEqual(t, primaries, 1)
		assert.LessOrEqual(t, mails, 1)
	}

	assert.True(t, f.store.address(t, a2.ID).PrimaryAddress)
	assert.True(t, f.store.address(t, a3.ID).MailFlag)
}

func TestAddressService_SiblingUpdateFailure_RollsBackEverything(t *testing.T) {
	f := createTestFixtures(t)
	ctx := context.Background()

	contact := f.store.seedContact("Smith")
	a1 := f.store.seedAddress(&entity.ContactAddress{ContactID: contact.ID, PrimaryAddress: true})
	f.store.failures["address.update"] = errors.New("disk full")

	_, err := f.addressService().CreateAddress(ctx, dpsUser, contact.ID, &usecase.AddressInput{PrimaryAddress: true})
	require.Error(t, err)

	addresses, _ := f.store.AddressRepo().FindByContact(ctx, contact.ID)
	require.Len(t, addresses, 1)
	assert.Equal(t, a1.ID, addresses[0].ID)
	assert.True(t, addresses[0].PrimaryAddress)
	assert.Empty(t, f.dispatcher.dispatched)
	assert.Empty(t, f.store.outbox)
}

func TestAddressService_Create_UnknownOrInactiveType(t *testing.T) {
	f := createTestFixtures(t)
	ctx := context.Background()
	contact := f.store.seedContact("Smith")

	for _, code := range []string{"NOPE", "OLD"} {
		_, err := f.addressService().CreateAddress(ctx, dpsUser, contact.ID, &usecase.AddressInput{AddressType: ptr(code)})
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrUnsupportedValue)
		assert.Contains(t, err.Error(), code)
	}
	assert.Empty(t, f.dispatcher.dispatched)
}

func TestAddressService_SyncCreate_AcceptsInactiveTypeAndTagsNomis(t *testing.T) {
	f := createTestFixtures(t)
	ctx := context.Background()
	contact := f.store.seedContact("Smith")

	out, err := f.addressService().CreateAddress(ctx, nomisUser, contact.ID, &usecase.AddressInput{AddressType: ptr("OLD")})
	require.NoError(t, err)

	require.Len(t, f.dispatcher.dispatched, 1)
	assert.Equal(t, entity.SourceNOMIS, f.dispatcher.dispatched[0].Source)
	assert.Equal(t, out.Address.ID, f.dispatcher.dispatched[0].EntityID)
	assert.Equal(t, "nomis.user", out.Address.CreatedBy)
}

func TestAddressService_Update_KeepsRetiredTypeWithoutRevalidation(t *testing.T) {
	f := createTestFixtures(t)
	ctx := context.Background()
	contact := f.store.seedContact("Smith")
	a1 := f.store.seedAddress(&entity.ContactAddress{ContactID: contact.ID, AddressType: ptr("OLD")})

	_, err := f.addressService().UpdateAddress(ctx, dpsUser, contact.ID, a1.ID, &usecase.AddressInput{
		AddressType: ptr("OLD"),
		Street:      ptr("High Street"),
	})
	require.NoError(t, err)
	assert.Equal(t, "High Street", *f.store.address(t, a1.ID).Street)
}

func TestAddressService_CreateWithPhones(t *testing.T) {
	f := createTestFixtures(t)
	ctx := context.Background()
	contact := f.store.seedContact("Smith")

	out, err := f.addressService().CreateAddress(ctx, dpsUser, contact.ID, &usecase.AddressInput{
		PhoneNumbers: []usecase.PhoneInput{{PhoneType: "MOB", PhoneNumber: "07700 900000"}},
	})
	require.NoError(t, err)
	require.Len(t, out.Phones, 1)
	assert.Equal(t, out.Address.ID, out.Phones[0].Link.ContactAddressID)
	assert.Equal(t, []entity.EventKind{
		entity.EventAddressCreated,
		entity.EventPhoneCreated,
		entity.EventAddressPhoneCreated,
	}, f.dispatcher.kinds())
}

func TestAddressService_CreateWithBadPhoneType_CreatesNothing(t *testing.T) {
	f := createTestFixtures(t)
	ctx := context.Background()
	contact := f.store.seedContact("Smith")

	_, err := f.addressService().CreateAddress(ctx, dpsUser, contact.ID, &usecase.AddressInput{
		PhoneNumbers: []usecase.PhoneInput{{PhoneType: "FAX", PhoneNumber: "0"}},
	})
	require.ErrorIs(t, err, domainerrors.ErrUnsupportedValue)

	addresses, _ := f.store.AddressRepo().FindByContact(ctx, contact.ID)
	assert.Empty(t, addresses)
}

func TestAddressService_Delete_CascadesPhoneLinks(t *testing.T) {
	f := createTestFixtures(t)
	ctx := context.Background()
	svc := f.addressService()
	contact := f.store.seedContact("Smith")

	created, err := svc.CreateAddress(ctx, dpsUser, contact.ID, &usecase.AddressInput{
		PhoneNumbers: []usecase.PhoneInput{{PhoneType: "MOB", PhoneNumber: "1"}},
	})
	require.NoError(t, err)
	f.dispatcher.dispatched = nil

	require.NoError(t, svc.DeleteAddress(ctx, dpsUser, contact.ID, created.Address.ID))

	assert.Equal(t, []entity.EventKind{entity.EventAddressPhoneDeleted, entity.EventAddressDeleted}, f.dispatcher.kinds())
	phones, _ := f.store.PhoneRepo().FindByContact(ctx, contact.ID)
	assert.Len(t, phones, 1)
}

func TestAddressService_NotFound(t *testing.T) {
	f := createTestFixtures(t)
	ctx := context.Background()
	svc := f.addressService()
	contact := f.store.seedContact("Smith")
	other := f.store.seedContact("Jones")
	a1 := f.store.seedAddress(&entity.ContactAddress{ContactID: other.ID})

	_, err := svc.CreateAddress(ctx, dpsUser, 9999, &usecase.AddressInput{})
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = svc.UpdateAddress(ctx, dpsUser, contact.ID, a1.ID, &usecase.AddressInput{})
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = svc.GetAddress(ctx, contact.ID, a1.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	got, err := svc.GetAddress(ctx, usecase.AnyContact, a1.ID)
	require.NoError(t, err)
	assert.Equal(t, other.ID, got.Address.ContactID)
}

func TestAddressService_VerifiedStampsVerifier(t *testing.T) {
	f := createTestFixtures(t)
	ctx := context.Background()
	contact := f.store.seedContact("Smith")

	out, err := f.addressService().CreateAddress(ctx, dpsUser, contact.ID, &usecase.AddressInput{Verified: true})
	require.NoError(t, err)
	require.NotNil(t, out.Address.VerifiedBy)
	assert.Equal(t, "dps.user", *out.Address.VerifiedBy)
	assert.Equal(t, f.now, *out.Address.VerifiedTime)
}
