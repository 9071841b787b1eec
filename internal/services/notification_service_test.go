package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scipress-events/internal/domain/notification"
	"scipress-events/internal/domain/user"
	"scipress-events/internal/events"
)

func TestNotificationServiceStoresAndPublishes(t *testing.T) {
	notifRepo := &fakeNotifRepo{}
	publisher := &fakePublisher{}
	bus := events.NewBus(nil)
	NewNotificationService(notifRepo, &fakeUserRepo{}, publisher, nil, nil).Register(bus)

	ev := newDepositPublishedEvent(t)
	ownerID := ev.DTO().Data.(events.DepositEventData).Owner.ID

	bus.Publish(context.Background(), ev)
	bus.Wait()

	created := notifRepo.all()
	require.Len(t, created, 1)
	assert.Equal(t, ownerID, created[0].UserID)
	assert.Equal(t, "Publication published", created[0].Title)

	published := publisher.all()
	require.Len(t, published, 1)
	assert.Equal(t, events.ChannelPrefixUser+ownerID.String(), published[0].channel)

	var env events.Envelope
	require.NoError(t, json.Unmarshal(published[0].payload, &env))
	assert.Equal(t, events.EventTypeDepositPublished, env.EventType)

	var n notification.AppNotification
	require.NoError(t, json.Unmarshal(env.Payload, &n))
	assert.Equal(t, created[0].ID, n.ID)
}

func TestNotificationServiceIgnoresEventsWithoutRecipients(t *testing.T) {
	notifRepo := &fakeNotifRepo{}
	publisher := &fakePublisher{}
	bus := events.NewBus(nil)
	NewNotificationService(notifRepo, &fakeUserRepo{}, publisher, nil, nil).Register(bus)

	bus.Publish(context.Background(), newFeedbackEvent(t))
	bus.Wait()

	assert.Empty(t, notifRepo.all())
	assert.Empty(t, publisher.all())
}

func TestNotificationServicePushesToActiveTokens(t *testing.T) {
	parentOwner := uuid.New()
	userRepo := &fakeUserRepo{tokens: map[uuid.UUID][]user.PushToken{
		parentOwner: {
			{ID: uuid.New(), UserID: parentOwner, Endpoint: "https://push.example/1", Active: true},
			{ID: uuid.New(), UserID: parentOwner, Endpoint: "https://push.example/2", Active: false},
		},
	}}
	push := &fakePushSender{}
	bus := events.NewBus(nil)
	NewNotificationService(&fakeNotifRepo{}, userRepo, &fakePublisher{}, push, nil).Register(bus)

	bus.Publish(context.Background(), newCommentRepliedEvent(t, parentOwner))
	bus.Wait()

	sent := push.all()
	require.Len(t, sent, 1)
	assert.Equal(t, "https://push.example/1", sent[0].token.Endpoint)
	assert.Equal(t, "New reply to your comment", sent[0].payload.Title)
}

func TestNotificationServiceSkipsPushWhenEventHasNone(t *testing.T) {
	push := &fakePushSender{}
	bus := events.NewBus(nil)
	NewNotificationService(&fakeNotifRepo{}, &fakeUserRepo{}, &fakePublisher{}, push, nil).Register(bus)

	// deposit.submitted notifies in-app but never pushes
	data := depositEventData()
	ev, err := events.NewDepositSubmittedEvent(data)
	require.NoError(t, err)

	bus.Publish(context.Background(), ev)
	bus.Wait()

	assert.Empty(t, push.all())
}
