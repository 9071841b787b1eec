package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scipress-events/internal/domain/feedback"
	"scipress-events/internal/events"
	scipress_errors "scipress-events/pkg/errors"
)

func TestFeedbackServiceCreatePersistsAndPublishes(t *testing.T) {
	repo := &fakeFeedbackRepo{}
	eventRepo := &fakeEventRepo{}
	bus := events.NewBus(nil)
	NewEventRecorder(eventRepo, nil).Register(bus)
	svc := NewFeedbackService(repo, bus, nil, nil)

	fb := &feedback.Feedback{Description: "cannot upload my manuscript"}
	require.NoError(t, svc.Create(context.Background(), fb))
	bus.Wait()

	require.Len(t, repo.created, 1)
	records := eventRepo.all()
	require.Len(t, records, 1)
	assert.Equal(t, "feedback.created", records[0].EventType)
}

func TestFeedbackServiceRejectsEmptyDescription(t *testing.T) {
	svc := NewFeedbackService(&fakeFeedbackRepo{}, events.NewBus(nil), nil, nil)

	err := svc.Create(context.Background(), &feedback.Feedback{})
	assert.ErrorIs(t, err, scipress_errors.ErrInvalidInput)

	err = svc.Create(context.Background(), nil)
	assert.ErrorIs(t, err, scipress_errors.ErrInvalidInput)
}

func TestFeedbackServiceArchivesScreenshot(t *testing.T) {
	archiver := &fakeArchiver{}
	svc := NewFeedbackService(&fakeFeedbackRepo{}, events.NewBus(nil), archiver, nil)

	fb := &feedback.Feedback{
		Description: "layout glitch",
		Screenshot:  []byte{0xff, 0xd8},
	}
	require.NoError(t, svc.Create(context.Background(), fb))

	require.Len(t, archiver.keys, 1)
	assert.Equal(t, "feedback/"+fb.ID.String()+".jpeg", archiver.keys[0])
}

func TestFeedbackServiceSurvivesArchiveFailure(t *testing.T) {
	archiver := &fakeArchiver{err: assert.AnError}
	svc := NewFeedbackService(&fakeFeedbackRepo{}, events.NewBus(nil), archiver, nil)

	fb := &feedback.Feedback{
		Description: "still stored",
		Screenshot:  []byte{0xff},
	}
	assert.NoError(t, svc.Create(context.Background(), fb))
}

func TestFeedbackServicePropagatesStoreFailure(t *testing.T) {
	repo := &fakeFeedbackRepo{err: assert.AnError}
	eventRepo := &fakeEventRepo{}
	bus := events.NewBus(nil)
	NewEventRecorder(eventRepo, nil).Register(bus)
	svc := NewFeedbackService(repo, bus, nil, nil)

	err := svc.Create(context.Background(), &feedback.Feedback{Description: "doomed"})
	require.Error(t, err)
	bus.Wait()
	assert.Empty(t, eventRepo.all())
}
