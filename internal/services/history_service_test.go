package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scipress-events/internal/domain/community"
	"scipress-events/internal/domain/user"
	"scipress-events/internal/events"

	"github.com/google/uuid"
)

func TestHistoryServiceAppendsToDeposit(t *testing.T) {
	repo := &fakeHistoryRepo{}
	bus := events.NewBus(nil)
	NewHistoryService(repo, nil).Register(bus)

	ev := newDepositPublishedEvent(t)
	depositID := ev.DTO().Data.(events.DepositEventData).Deposit.ID

	bus.Publish(context.Background(), ev)
	bus.Wait()

	entries := repo.all()
	require.Len(t, entries, 1)
	assert.Equal(t, "deposit", entries[0].ResourceType)
	assert.Equal(t, depositID, entries[0].ResourceID)
	assert.Contains(t, entries[0].Description, "published")
	assert.False(t, entries[0].CreatedAt.IsZero())
}

func TestHistoryServiceAppendsToCommunity(t *testing.T) {
	repo := &fakeHistoryRepo{}
	bus := events.NewBus(nil)
	NewHistoryService(repo, nil).Register(bus)

	communityID := uuid.New()
	ev, err := events.NewCommunityAcceptedEvent(events.CommunityEventData{
		Community: &community.Community{ID: communityID, Name: "Astrobiology", Codename: "astro"},
		Publisher: &user.User{ID: uuid.New(), Email: "pub@example.org"},
	})
	require.NoError(t, err)

	bus.Publish(context.Background(), ev)
	bus.Wait()

	entries := repo.all()
	require.Len(t, entries, 1)
	assert.Equal(t, "community", entries[0].ResourceType)
	assert.Equal(t, communityID, entries[0].ResourceID)
}

func TestHistoryServiceIgnoresSilentEvents(t *testing.T) {
	repo := &fakeHistoryRepo{}
	bus := events.NewBus(nil)
	NewHistoryService(repo, nil).Register(bus)

	bus.Publish(context.Background(), newFeedbackEvent(t))
	bus.Publish(context.Background(), newCommentRepliedEvent(t, uuid.New()))
	bus.Wait()

	assert.Empty(t, repo.all())
}
