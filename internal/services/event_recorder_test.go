package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scipress-events/internal/events"
)

func TestEventRecorderPersistsDispatchedEvents(t *testing.T) {
	repo := &fakeEventRepo{}
	bus := events.NewBus(nil)
	NewEventRecorder(repo, nil).Register(bus)

	bus.Publish(context.Background(), newFeedbackEvent(t))
	bus.Wait()

	records := repo.all()
	require.Len(t, records, 1)
	rec := records[0]
	assert.Equal(t, "feedback.created", rec.EventType)
	assert.Equal(t, "system", rec.Scope)

	var payload struct {
		Feedback struct {
			Description string `json:"description"`
		} `json:"feedback"`
	}
	require.NoError(t, json.Unmarshal(rec.Payload, &payload))
	assert.Equal(t, "something is off", payload.Feedback.Description)
}

func TestEventRecorderRecordsEveryKindOnce(t *testing.T) {
	repo := &fakeEventRepo{}
	bus := events.NewBus(nil)
	NewEventRecorder(repo, nil).Register(bus)

	bus.Publish(context.Background(), newDepositPublishedEvent(t))
	bus.Publish(context.Background(), newCommentRepliedEvent(t, depositEventData().Owner.ID))
	bus.Wait()

	records := repo.all()
	require.Len(t, records, 2)
	kinds := []string{records[0].EventType, records[1].EventType}
	assert.ElementsMatch(t, []string{"deposit.published", "comment.replied"}, kinds)
}

func TestEventRecorderContainsPersistenceFailure(t *testing.T) {
	repo := &fakeEventRepo{err: assert.AnError}
	bus := events.NewBus(nil)
	NewEventRecorder(repo, nil).Register(bus)

	// Publish must not panic or surface the repository error.
	require.NotPanics(t, func() {
		bus.Publish(context.Background(), newFeedbackEvent(t))
		bus.Wait()
	})
	assert.Empty(t, repo.all())
}
