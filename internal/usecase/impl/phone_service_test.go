package impl

import (
	"context"
	"testing"

	"contacts/internal/domain/entity"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhoneService_DeleteRemovesAddressLinks(t *testing.T) {
	f := createTestFixtures(t)
	ctx := context.Background()
	contact := f.store.seedContact("Smith")

	created, err := f.addressService().CreateAddress(ctx, dpsUser, contact.ID, &usecase.AddressInput{
		PhoneNumbers: []usecase.PhoneInput{{PhoneType: "HOME", PhoneNumber: "0114 496 0000"}},
	})
	require.NoError(t, err)
	f.dispatcher.dispatched = nil

	phoneID := created.Phones[0].Phone.ID
	require.NoError(t, f.phoneService().DeletePhone(ctx, dpsUser, contact.ID, phoneID))

	assert.Equal(t, []entity.EventKind{entity.EventAddressPhoneDeleted, entity.EventPhoneDeleted}, f.dispatcher.kinds())
	assert.Empty(t, f.store.addressPhones.rows)
}

func TestAddressPhoneService_UpdateEmitsOneEvent(t *testing.T) {
	f := createTestFixtures(t)
	ctx := context.Background()
	contact := f.store.seedContact("Smith")
	addr := f.store.seedAddress(&entity.ContactAddress{ContactID: contact.ID})

	linked, err := f.addressPhoneService().CreateAddressPhone(ctx, dpsUser, contact.ID, addr.ID, &usecase.PhoneInput{PhoneType: "MOB", PhoneNumber: "1"})
	require.NoError(t, err)
	f.dispatcher.dispatched = nil

	updated, err := f.addressPhoneService().UpdateAddressPhone(ctx, dpsUser, contact.ID, linked.Link.ID, &usecase.PhoneInput{PhoneType: "HOME", PhoneNumber: "2"})
	require.NoError(t, err)
	assert.Equal(t, "2", updated.Phone.PhoneNumber)
	assert.Equal(t, []entity.EventKind{entity.EventAddressPhoneUpdated}, f.dispatcher.kinds())

	_, err = f.addressPhoneService().GetAddressPhone(ctx, contact.ID+1000, linked.Link.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
