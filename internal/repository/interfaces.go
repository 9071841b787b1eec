package repository

import (
	"context"

	"github.com/google/uuid"

	"scipress-events/internal/domain/event"
	"scipress-events/internal/domain/feedback"
	"scipress-events/internal/domain/history"
	"scipress-events/internal/domain/notification"
	"scipress-events/internal/domain/outbox"
	"scipress-events/internal/domain/user"
)

// EventRepository durably records dispatched events. Create is the
// single method the dispatch layer depends on; any store satisfying
// it fulfils the contract.
type EventRepository interface {
	Create(ctx context.Context, rec *event.Record) error
	ListByType(ctx context.Context, eventType string, limit int) ([]event.Record, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, n *notification.AppNotification) error
	ListByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit int) ([]notification.AppNotification, error)
	MarkRead(ctx context.Context, id, userID uuid.UUID) error
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)
}

type OutboxRepository interface {
	Create(ctx context.Context, msg *outbox.EmailMessage) error
	GetPending(ctx context.Context, limit int) ([]outbox.EmailMessage, error)
	MarkProcessing(ctx context.Context, id uuid.UUID) error
	MarkCompleted(ctx context.Context, id uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID, errorMsg string) error
	IncrementRetry(ctx context.Context, id uuid.UUID) error
}

type FeedbackRepository interface {
	Create(ctx context.Context, fb *feedback.Feedback) error
}

type HistoryRepository interface {
	Create(ctx context.Context, e *history.Entry) error
	ListByResource(ctx context.Context, resourceType string, resourceID uuid.UUID) ([]history.Entry, error)
}

type UserRepository interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (user.User, error)
	GetUserPushTokens(ctx context.Context, userID uuid.UUID) ([]user.PushToken, error)
}
