package impl

import (
	"context"
	"testing"

	"contacts/internal/domain/entity"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/errors"
	mockService "contacts/internal/mocks/service"
	"contacts/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMutator_Run_PublishesAfterCommit(t *testing.T) {
	f := createTestFixtures(t)
	ctx := context.Background()

	err := f.mutator.Run(ctx, "test", dpsUser, func(ctx context.Context, mu *Mutation) error {
		mu.Record(entity.EventContactUpdated, 1, entity.ContactReference(1))
		mu.Record(entity.EventContactUpdated, 2, entity.ContactReference(2))
		assert.Empty(t, f.dispatcher.dispatched)

		return nil
	})
	require.NoError(t, err)

	require.Len(t, f.store.outbox, 2)
	require.Len(t, f.dispatcher.dispatched, 2)
	assert.Equal(t, f.store.outbox[0].ID, f.dispatcher.dispatched[0].ID)
	assert.Equal(t, f.now, f.dispatcher.dispatched[0].OccurredAt)
}

func TestMutator_Run_RollbackPublishesNothing(t *testing.T) {
	f := createTestFixtures(t)
	boom := errors.New("later step failed")

	err := f.mutator.Run(context.Background(), "test", dpsUser, func(ctx context.Context, mu *Mutation) error {
		mu.Record(entity.EventContactUpdated, 1, entity.ContactReference(1))

		return boom
	})
	require.ErrorIs(t, err, boom)
	assert.Empty(t, f.store.outbox)
	assert.Empty(t, f.dispatcher.dispatched)
}

func TestMutator_Run_CommitFailurePublishesNothing(t *testing.T) {
	f := createTestFixtures(t)
	f.store.failures["commit"] = errors.New("serialization failure")

	err := f.mutator.Run(context.Background(), "test", dpsUser, func(ctx context.Context, mu *Mutation) error {
		mu.Record(entity.EventContactUpdated, 1, entity.ContactReference(1))

		return nil
	})
	require.Error(t, err)
	assert.Empty(t, f.dispatcher.dispatched)
}

func TestMutator_Run_PublishFailureDoesNotFailCaller(t *testing.T) {
	f := createTestFixtures(t)
	f.dispatcher.err = &domainerrors.PublishFailure{EventID: "x", Kind: string(entity.EventContactUpdated), Err: errors.New("topic unavailable")}

	contact := f.store.seedContact("Smith")
	updated, err := f.contactService().UpdateContact(context.Background(), dpsUser, contact.ID, &usecase.UpdateContactInput{FirstName: ptr("Jo")})
	require.NoError(t, err)
	assert.Equal(t, "Jo", updated.FirstName)

	stored, _ := f.store.contacts.find(contact.ID)
	assert.Equal(t, "Jo", stored.FirstName)
	require.Len(t, f.store.outbox, 1, "event stays in the outbox for the relay")
}

func TestMutator_Run_NoEventsSkipsDispatch(t *testing.T) {
	f := createTestFixtures(t)
	dispatcher := mockService.NewMockEventDispatcher(t)
	f.mutator.dispatcher = dispatcher

	err := f.mutator.Run(context.Background(), "test", dpsUser, func(context.Context, *Mutation) error { return nil })
	require.NoError(t, err)
	dispatcher.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
}

func TestMutator_ReferenceCache(t *testing.T) {
	f := createTestFixtures(t)
	ctx := context.Background()
	cache := mockService.NewMockReferenceCodeCache(t)
	f.mutator.validator.cache = cache

	cached := &entity.ReferenceCode{Group: entity.GroupPhoneType, Code: "SAT", IsActive: true}
	cache.EXPECT().Get(mock.Anything, entity.GroupPhoneType, "SAT").Return(cached, nil).Once()
	cache.EXPECT().Get(mock.Anything, entity.GroupPhoneType, "MOB").Return(nil, nil).Once()
	cache.EXPECT().Set(mock.Anything, mock.MatchedBy(func(r *entity.ReferenceCode) bool { return r.Code == "MOB" })).Return(nil).Once()

	err := f.mutator.Run(ctx, "test", dpsUser, func(ctx context.Context, mu *Mutation) error {
		if err := mu.RequireCode(ctx, entity.GroupPhoneType, "SAT"); err != nil {
			return err
		}

		return mu.RequireCode(ctx, entity.GroupPhoneType, "MOB")
	})
	require.NoError(t, err)
}
