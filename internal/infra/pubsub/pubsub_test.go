package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"maps"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"contacts/internal/domain/entity"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/domain/repository"
	"contacts/internal/errors"
	mockService "contacts/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeOutbox struct {
	pending   []*entity.OutboundEvent
	published map[uuid.UUID]time.Time
	failed    map[uuid.UUID]string
	markErr   map[uuid.UUID]error
	cutoff    time.Time
}

func newFakeOutbox(pending ...*entity.OutboundEvent) *fakeOutbox {
	return &fakeOutbox{
		pending:   pending,
		published: map[uuid.UUID]time.Time{},
		failed:    map[uuid.UUID]string{},
		markErr:   map[uuid.UUID]error{},
	}
}

func (o *fakeOutbox) Append(context.Context, []*entity.OutboundEvent) error { return nil }

func (o *fakeOutbox) FindPending(_ context.Context, createdBefore time.Time, maxAttempts, limit int) ([]*entity.OutboundEvent, error) {
	o.cutoff = createdBefore
	var events []*entity.OutboundEvent
	for _, event := range o.pending {
		if event.Attempts < maxAttempts && len(events) < limit {
			events = append(events, event)
		}
	}

	return events, nil
}

func (o *fakeOutbox) ClaimPending(_ context.Context, id uuid.UUID) (*entity.OutboundEvent, error) {
	if _, done := o.published[id]; done {
		return nil, nil
	}
	for _, event := range o.pending {
		if event.ID == id {
			return event, nil
		}
	}

	return nil, nil
}

func (o *fakeOutbox) MarkPublished(_ context.Context, id uuid.UUID, at time.Time) error {
	if err := o.markErr[id]; err != nil {
		return err
	}
	o.published[id] = at

	return nil
}

func (o *fakeOutbox) MarkFailed(_ context.Context, id uuid.UUID, reason string) error {
	o.failed[id] = reason

	return nil
}

// outboxOnly serves the outbox and nothing else.
type outboxOnly struct {
	repository.RepositoryFactory
	outbox *fakeOutbox
}

func (f outboxOnly) OutboxRepo() repository.OutboxRepository { return f.outbox }

type inlineTx struct {
	factory repository.RepositoryFactory
}

// Execute restores the fake outbox's marks when fn fails, like a rolled-back transaction.
func (tx inlineTx) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	f, ok := tx.factory.(outboxOnly)
	if !ok {
		return fn(tx.factory)
	}

	published, failed := maps.Clone(f.outbox.published), maps.Clone(f.outbox.failed)
	if err := fn(tx.factory); err != nil {
		f.outbox.published, f.outbox.failed = published, failed

		return err
	}

	return nil
}

func newEvent(kind entity.EventKind) *entity.OutboundEvent {
	return &entity.OutboundEvent{
		ID:              uuid.New(),
		Kind:            kind,
		EntityID:        7,
		Source:          entity.SourceDPS,
		PersonReference: entity.ContactReference(42),
		OccurredAt:      time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC),
	}
}

func TestDispatcher_Dispatch_MarksEachOutcome(t *testing.T) {
	publisher := mockService.NewMockEventPublisher(t)
	outbox := newFakeOutbox()
	ok := newEvent(entity.EventAddressCreated)
	bad := newEvent(entity.EventAddressUpdated)
	last := newEvent(entity.EventAddressUpdated)

	publisher.EXPECT().Publish(mock.Anything, ok).Return(nil).Once()
	publisher.EXPECT().Publish(mock.Anything, bad).Return(errors.New("topic unavailable")).Once()
	publisher.EXPECT().Publish(mock.Anything, last).Return(nil).Once()

	d := NewDispatcher(DispatcherParams{
		Publisher: publisher,
		Repos:     outboxOnly{outbox: outbox},
		Logger:    newDiscardLogger(),
	})

	err := d.Dispatch(context.Background(), []*entity.OutboundEvent{ok, bad, last})

	require.Error(t, err)
	var failure *domainerrors.PublishFailure
	require.True(t, errors.As(err, &failure))
	assert.Equal(t, bad.ID.String(), failure.EventID)
	assert.Contains(t, outbox.published, ok.ID)
	assert.Contains(t, outbox.published, last.ID)
	assert.Equal(t, "topic unavailable", outbox.failed[bad.ID])
	assert.NotContains(t, outbox.published, bad.ID)
}

func TestDispatcher_Dispatch_AllPublished(t *testing.T) {
	publisher := mockService.NewMockEventPublisher(t)
	outbox := newFakeOutbox()
	event := newEvent(entity.EventEmploymentCreated)
	publisher.EXPECT().Publish(mock.Anything, event).Return(nil).Once()

	d := NewDispatcher(DispatcherParams{Publisher: publisher, Repos: outboxOnly{outbox: outbox}, Logger: newDiscardLogger()})

	require.NoError(t, d.Dispatch(context.Background(), []*entity.OutboundEvent{event}))
	assert.Len(t, outbox.published, 1)
	assert.Empty(t, outbox.failed)
}

func newTestRelay(outbox *fakeOutbox, publisher *mockService.MockEventPublisher, now time.Time) *Relay {
	return &Relay{
		txManager:   inlineTx{factory: outboxOnly{outbox: outbox}},
		publisher:   publisher,
		interval:    time.Second,
		gracePeriod: 30 * time.Second,
		batchSize:   10,
		maxAttempts: 3,
		clock:       func() time.Time { return now },
		logger:      newDiscardLogger(),
	}
}

func TestRelay_RelayOnce_PublishesPendingAfterGracePeriod(t *testing.T) {
	now := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	first := newEvent(entity.EventContactCreated)
	second := newEvent(entity.EventContactUpdated)
	outbox := newFakeOutbox(first, second)

	publisher := mockService.NewMockEventPublisher(t)
	publisher.EXPECT().Publish(mock.Anything, first).Return(nil).Once()
	publisher.EXPECT().Publish(mock.Anything, second).Return(errors.New("still down")).Once()

	relay := newTestRelay(outbox, publisher, now)

	published, err := relay.RelayOnce(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, published)
	assert.Equal(t, now.Add(-30*time.Second), outbox.cutoff)
	assert.Contains(t, outbox.published, first.ID)
	assert.Equal(t, "still down", outbox.failed[second.ID])
	assert.Equal(t, 1, second.Attempts)
}

func TestRelay_RelayOnce_MarkFailureKeepsOtherMarks(t *testing.T) {
	now := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	first := newEvent(entity.EventContactCreated)
	second := newEvent(entity.EventContactUpdated)
	third := newEvent(entity.EventContactDeleted)
	outbox := newFakeOutbox(first, second, third)
	outbox.markErr[second.ID] = errors.New("connection reset")

	publisher := mockService.NewMockEventPublisher(t)
	publisher.EXPECT().Publish(mock.Anything, first).Return(nil).Once()
	publisher.EXPECT().Publish(mock.Anything, second).Return(nil).Once()
	publisher.EXPECT().Publish(mock.Anything, third).Return(nil).Once()

	relay := newTestRelay(outbox, publisher, now)

	published, err := relay.RelayOnce(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, published)
	assert.Contains(t, outbox.published, first.ID)
	assert.Contains(t, outbox.published, third.ID)
	assert.NotContains(t, outbox.published, second.ID)
}

func TestRelay_RelayOnce_SkipsClaimedEvents(t *testing.T) {
	now := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	event := newEvent(entity.EventContactCreated)
	outbox := newFakeOutbox(event)
	outbox.published[event.ID] = now
	publisher := mockService.NewMockEventPublisher(t)

	relay := newTestRelay(outbox, publisher, now)

	published, err := relay.RelayOnce(context.Background())

	require.NoError(t, err)
	assert.Zero(t, published)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestRelay_RelayOnce_SkipsExhaustedEvents(t *testing.T) {
	exhausted := newEvent(entity.EventPhoneDeleted)
	exhausted.Attempts = 3
	outbox := newFakeOutbox(exhausted)
	publisher := mockService.NewMockEventPublisher(t)

	relay := newTestRelay(outbox, publisher, time.Now())

	published, err := relay.RelayOnce(context.Background())

	require.NoError(t, err)
	assert.Zero(t, published)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestRelay_StartStop(t *testing.T) {
	relay := newTestRelay(newFakeOutbox(), mockService.NewMockEventPublisher(t), time.Now())

	relay.Start()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	require.NoError(t, relay.Stop(ctx))
}

func TestLocalHTTPPublisher_Publish(t *testing.T) {
	var received PubSubPushMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	nomsNumber := "A1234BC"
	event := newEvent(entity.EventPrisonerContactCreated)
	event.Source = entity.SourceNOMIS
	event.PersonReference = entity.PrisonerReference(42, nomsNumber)

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	require.NoError(t, publisher.Publish(context.Background(), event))

	assert.Equal(t, event.ID.String(), received.Message.MessageID)
	assert.Equal(t, "contact-42", received.Message.OrderingKey)
	assert.Equal(t, string(entity.EventPrisonerContactCreated), received.Message.Attributes["eventType"])
	assert.Equal(t, "NOMIS", received.Message.Attributes["source"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var body eventMessage
	require.NoError(t, json.Unmarshal(data, &body))
	assert.Equal(t, string(entity.EventPrisonerContactCreated), body.EventType)
	assert.Equal(t, int64(7), body.AdditionalInformation.EntityID)
	assert.Equal(t, "NOMIS", body.AdditionalInformation.Source)
	assert.Equal(t, []personIdentifier{
		{Type: "DPS_CONTACT_ID", Value: "42"},
		{Type: "NOMS", Value: nomsNumber},
	}, body.PersonReference.Identifiers)
}

func TestLocalHTTPPublisher_Publish_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	err := publisher.Publish(context.Background(), newEvent(entity.EventEmailCreated))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}
