package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"scipress-events/internal/domain/notification"
	"scipress-events/internal/domain/user"
	"scipress-events/internal/events"
	"scipress-events/internal/repository"
	pkgevents "scipress-events/pkg/events"
	"scipress-events/pkg/logger"
)

// PushSender delivers a rendered push payload to one device
// subscription.
type PushSender interface {
	Send(ctx context.Context, token user.PushToken, payload *events.PushPayload) error
}

// NotificationService turns events into persisted in-app notifications
// and push deliveries. Live delivery rides the broker: each stored
// notification is also published on the recipient's user channel so
// connected websocket clients see it immediately.
type NotificationService struct {
	notifRepo repository.NotificationRepository
	userRepo  repository.UserRepository
	publisher pkgevents.Publisher
	push      PushSender
	log       *logger.Logger
}

func NewNotificationService(
	notifRepo repository.NotificationRepository,
	userRepo repository.UserRepository,
	publisher pkgevents.Publisher,
	push PushSender,
	l *logger.Logger,
) *NotificationService {
	return &NotificationService{
		notifRepo: notifRepo,
		userRepo:  userRepo,
		publisher: publisher,
		push:      push,
		log:       l,
	}
}

func (s *NotificationService) Register(bus *events.Bus) {
	bus.SubscribeAll(s.handleEvent)
}

// handleEvent never returns an error: channel failures are logged and
// contained so they cannot reach the code that published the event.
func (s *NotificationService) handleEvent(ctx context.Context, e events.Event) error {
	recipients := notificationRecipients(e)
	if len(recipients) == 0 {
		return nil
	}

	pushPayload := e.PushNotificationTemplate()
	for _, userID := range recipients {
		if draft := e.AppNotificationTemplate(userID.String()); draft != nil {
			s.deliverInApp(ctx, e, userID, draft)
		}
		if pushPayload != nil {
			s.deliverPush(ctx, userID, pushPayload)
		}
	}
	return nil
}

func (s *NotificationService) deliverInApp(ctx context.Context, e events.Event, userID uuid.UUID, draft *events.AppNotificationDraft) {
	n := &notification.AppNotification{
		UserID: userID,
		Title:  draft.Title,
		Body:   draft.Body,
		Icon:   draft.Icon,
		Action: draft.Action,
	}
	if err := s.notifRepo.Create(ctx, n); err != nil {
		s.errorf("failed to store notification for event %s: %v", e.Type(), err)
		return
	}
	s.publishLive(ctx, e, n)
}

func (s *NotificationService) publishLive(ctx context.Context, e events.Event, n *notification.AppNotification) {
	if s.publisher == nil {
		return
	}
	body, err := json.Marshal(n)
	if err != nil {
		s.errorf("failed to encode notification %s: %v", n.ID, err)
		return
	}
	env := events.Envelope{
		EventType:  e.Type(),
		Scope:      e.Scope(),
		OccurredAt: time.Now().UTC(),
		Payload:    body,
	}
	raw, err := json.Marshal(env)
	if err != nil {
		s.errorf("failed to encode envelope for %s: %v", e.Type(), err)
		return
	}
	channel := events.ChannelPrefixUser + n.UserID.String()
	if err := s.publisher.Publish(ctx, channel, raw); err != nil {
		s.errorf("failed to publish notification to %s: %v", channel, err)
	}
}

func (s *NotificationService) deliverPush(ctx context.Context, userID uuid.UUID, payload *events.PushPayload) {
	if s.push == nil {
		return
	}
	tokens, err := s.userRepo.GetUserPushTokens(ctx, userID)
	if err != nil {
		s.errorf("failed to load push tokens for %s: %v", userID, err)
		return
	}
	for _, token := range tokens {
		if !token.Active {
			continue
		}
		if err := s.push.Send(ctx, token, payload); err != nil {
			s.errorf("push delivery failed for token %s: %v", token.ID, err)
		}
	}
}

func (s *NotificationService) errorf(template string, args ...interface{}) {
	if s.log != nil {
		s.log.Errorf(template, args...)
	}
}
