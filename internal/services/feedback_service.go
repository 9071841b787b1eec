package services

import (
	"context"

	"scipress-events/internal/domain/feedback"
	"scipress-events/internal/events"
	"scipress-events/internal/repository"
	scipress_errors "scipress-events/pkg/errors"
	"scipress-events/pkg/logger"
)

// ScreenshotArchiver stores a feedback screenshot in object storage.
type ScreenshotArchiver interface {
	Archive(ctx context.Context, key string, data []byte) error
}

// FeedbackService persists visitor feedback and publishes the matching
// event. The caller sees only the persistence result: downstream
// channel failures never bubble up.
type FeedbackService struct {
	repo     repository.FeedbackRepository
	bus      *events.Bus
	archiver ScreenshotArchiver
	log      *logger.Logger
}

func NewFeedbackService(repo repository.FeedbackRepository, bus *events.Bus, archiver ScreenshotArchiver, l *logger.Logger) *FeedbackService {
	return &FeedbackService{repo: repo, bus: bus, archiver: archiver, log: l}
}

func (s *FeedbackService) Create(ctx context.Context, fb *feedback.Feedback) error {
	if fb == nil || fb.Description == "" {
		return scipress_errors.ErrInvalidInput
	}
	if err := s.repo.Create(ctx, fb); err != nil {
		return err
	}

	if s.archiver != nil && len(fb.Screenshot) > 0 {
		key := "feedback/" + fb.ID.String() + ".jpeg"
		if err := s.archiver.Archive(ctx, key, fb.Screenshot); err != nil {
			// The record and its inline screenshot survive; only the
			// archive copy is missing.
			s.errorf("failed to archive screenshot for feedback %s: %v", fb.ID, err)
		}
	}

	ev, err := events.NewFeedbackCreatedEvent(events.FeedbackCreatedData{Feedback: fb})
	if err != nil {
		return err
	}
	s.bus.Publish(ctx, ev)
	return nil
}

func (s *FeedbackService) errorf(template string, args ...interface{}) {
	if s.log != nil {
		s.log.Errorf(template, args...)
	}
}
