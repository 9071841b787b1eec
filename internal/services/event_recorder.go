package services

import (
	"context"
	"encoding/json"

	"scipress-events/internal/domain/event"
	"scipress-events/internal/events"
	"scipress-events/internal/repository"
	"scipress-events/pkg/logger"
)

// persistedEventTypes is the closed set of event kinds that leave a
// durable record. Adding a kind here is the only change needed to
// persist it; the catch-all logger is untouched.
var persistedEventTypes = []events.EventType{
	events.EventTypeFeedbackCreated,
	events.EventTypeDepositSubmitted,
	events.EventTypeDepositAccepted,
	events.EventTypeDepositPublished,
	events.EventTypeReviewCreated,
	events.EventTypeReviewInvitationCreated,
	events.EventTypeCommentCreated,
	events.EventTypeCommentReplied,
	events.EventTypeCommunitySubmitted,
	events.EventTypeCommunityAccepted,
	events.EventTypeUserConfirmEmail,
}

// EventRecorder bridges the bus to logging and durable event records.
// Failures stay inside its handlers: the business operation that
// published the event has already succeeded.
type EventRecorder struct {
	repo repository.EventRepository
	log  *logger.Logger
}

func NewEventRecorder(repo repository.EventRepository, l *logger.Logger) *EventRecorder {
	return &EventRecorder{repo: repo, log: l}
}

// Register wires the recorder's handlers into the bus: one catch-all
// debug logger plus one persistence handler per recorded kind.
func (r *EventRecorder) Register(bus *events.Bus) {
	bus.SubscribeAll(r.logEvent)
	for _, t := range persistedEventTypes {
		bus.Subscribe(t, r.recordEvent)
	}
}

// logEvent is observability only. It never returns an error.
func (r *EventRecorder) logEvent(ctx context.Context, e events.Event) error {
	if r.log != nil {
		r.log.Debugf("event dispatched: type=%s scope=%s", e.Type(), e.Scope())
	}
	return nil
}

func (r *EventRecorder) recordEvent(ctx context.Context, e events.Event) error {
	dto := e.DTO()
	payload, err := json.Marshal(dto.Data)
	if err != nil {
		r.errorf("failed to encode event %s: %v", e.Type(), err)
		return nil
	}

	rec := &event.Record{
		EventType: string(dto.EventType),
		Scope:     string(e.Scope()),
		Payload:   payload,
	}
	if err := r.repo.Create(ctx, rec); err != nil {
		// Surfaced to logs only; the publisher must never see this.
		r.errorf("failed to persist event %s: %v", e.Type(), err)
	}
	return nil
}

func (r *EventRecorder) errorf(template string, args ...interface{}) {
	if r.log != nil {
		r.log.Errorf(template, args...)
	}
}
