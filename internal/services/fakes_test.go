package services

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"scipress-events/internal/domain/comment"
	"scipress-events/internal/domain/community"
	"scipress-events/internal/domain/deposit"
	"scipress-events/internal/domain/event"
	"scipress-events/internal/domain/feedback"
	"scipress-events/internal/domain/history"
	"scipress-events/internal/domain/notification"
	"scipress-events/internal/domain/outbox"
	"scipress-events/internal/domain/user"
	"scipress-events/internal/events"
	scipress_errors "scipress-events/pkg/errors"
)

type fakeEventRepo struct {
	mu      sync.Mutex
	records []*event.Record
	err     error
}

func (f *fakeEventRepo) Create(ctx context.Context, rec *event.Record) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.records = append(f.records, rec)
	return nil
}

func (f *fakeEventRepo) ListByType(ctx context.Context, eventType string, limit int) ([]event.Record, error) {
	return nil, nil
}

func (f *fakeEventRepo) all() []*event.Record {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*event.Record(nil), f.records...)
}

type fakeOutboxRepo struct {
	mu       sync.Mutex
	messages []*outbox.EmailMessage
}

func (f *fakeOutboxRepo) Create(ctx context.Context, msg *outbox.EmailMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, msg)
	return nil
}

func (f *fakeOutboxRepo) GetPending(ctx context.Context, limit int) ([]outbox.EmailMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []outbox.EmailMessage
	for _, m := range f.messages {
		if m.Status == outbox.StatusPending {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (f *fakeOutboxRepo) setStatus(id uuid.UUID, status outbox.Status) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range f.messages {
		if m.ID == id {
			m.Status = status
			return nil
		}
	}
	return scipress_errors.ErrNotFound
}

func (f *fakeOutboxRepo) MarkProcessing(ctx context.Context, id uuid.UUID) error {
	return f.setStatus(id, outbox.StatusProcessing)
}

func (f *fakeOutboxRepo) MarkCompleted(ctx context.Context, id uuid.UUID) error {
	return f.setStatus(id, outbox.StatusCompleted)
}

func (f *fakeOutboxRepo) MarkFailed(ctx context.Context, id uuid.UUID, errorMsg string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range f.messages {
		if m.ID == id {
			m.Status = outbox.StatusFailed
			m.Error = errorMsg
			return nil
		}
	}
	return scipress_errors.ErrNotFound
}

func (f *fakeOutboxRepo) IncrementRetry(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range f.messages {
		if m.ID == id {
			m.RetryCount++
			m.Status = outbox.StatusPending
			return nil
		}
	}
	return scipress_errors.ErrNotFound
}

func (f *fakeOutboxRepo) all() []*outbox.EmailMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*outbox.EmailMessage(nil), f.messages...)
}

type fakeNotifRepo struct {
	mu      sync.Mutex
	created []*notification.AppNotification
}

func (f *fakeNotifRepo) Create(ctx context.Context, n *notification.AppNotification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	n.ID = uuid.New()
	f.created = append(f.created, n)
	return nil
}

func (f *fakeNotifRepo) ListByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit int) ([]notification.AppNotification, error) {
	return nil, nil
}

func (f *fakeNotifRepo) MarkRead(ctx context.Context, id, userID uuid.UUID) error { return nil }

func (f *fakeNotifRepo) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	return 0, nil
}

func (f *fakeNotifRepo) all() []*notification.AppNotification {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*notification.AppNotification(nil), f.created...)
}

type fakeUserRepo struct {
	tokens map[uuid.UUID][]user.PushToken
}

func (f *fakeUserRepo) GetUserByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	return user.User{}, scipress_errors.ErrNotFound
}

func (f *fakeUserRepo) GetUserPushTokens(ctx context.Context, userID uuid.UUID) ([]user.PushToken, error) {
	return f.tokens[userID], nil
}

type fakeHistoryRepo struct {
	mu      sync.Mutex
	entries []*history.Entry
}

func (f *fakeHistoryRepo) Create(ctx context.Context, e *history.Entry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, e)
	return nil
}

func (f *fakeHistoryRepo) ListByResource(ctx context.Context, resourceType string, resourceID uuid.UUID) ([]history.Entry, error) {
	return nil, nil
}

func (f *fakeHistoryRepo) all() []*history.Entry {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*history.Entry(nil), f.entries...)
}

type fakeFeedbackRepo struct {
	mu      sync.Mutex
	created []*feedback.Feedback
	err     error
}

func (f *fakeFeedbackRepo) Create(ctx context.Context, fb *feedback.Feedback) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	fb.ID = uuid.New()
	f.created = append(f.created, fb)
	return nil
}

type publishedMessage struct {
	channel string
	payload []byte
}

type fakePublisher struct {
	mu        sync.Mutex
	published []publishedMessage
}

func (f *fakePublisher) Publish(ctx context.Context, channel string, payload []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.published = append(f.published, publishedMessage{channel: channel, payload: payload})
	return nil
}

func (f *fakePublisher) all() []publishedMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]publishedMessage(nil), f.published...)
}

type sentPush struct {
	token   user.PushToken
	payload *events.PushPayload
}

type fakePushSender struct {
	mu   sync.Mutex
	sent []sentPush
	err  error
}

func (f *fakePushSender) Send(ctx context.Context, token user.PushToken, payload *events.PushPayload) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentPush{token: token, payload: payload})
	return nil
}

func (f *fakePushSender) all() []sentPush {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]sentPush(nil), f.sent...)
}

type fakeArchiver struct {
	mu   sync.Mutex
	keys []string
	err  error
}

func (f *fakeArchiver) Archive(ctx context.Context, key string, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.keys = append(f.keys, key)
	return nil
}

// event fixtures

func depositEventData() events.DepositEventData {
	return events.DepositEventData{
		Deposit: &deposit.Deposit{
			ID:      uuid.New(),
			OwnerID: uuid.New(),
			Title:   "Neural Correlates of Procrastination",
			Version: 1,
		},
		Owner: &user.User{
			ID:        uuid.New(),
			Email:     "owner@example.org",
			FirstName: "Grace",
			LastName:  "Hopper",
		},
		Community: &community.Community{
			ID:       uuid.New(),
			Name:     "Neuroscience",
			Codename: "neuro",
		},
	}
}

func newDepositPublishedEvent(t *testing.T) *events.DepositPublishedEvent {
	t.Helper()
	ev, err := events.NewDepositPublishedEvent(depositEventData())
	require.NoError(t, err)
	return ev
}

func newFeedbackEvent(t *testing.T) *events.FeedbackCreatedEvent {
	t.Helper()
	ev, err := events.NewFeedbackCreatedEvent(events.FeedbackCreatedData{
		Feedback: &feedback.Feedback{
			Email:       "visitor@example.org",
			Description: "something is off",
		},
	})
	require.NoError(t, err)
	return ev
}

func newCommentRepliedEvent(t *testing.T, parentOwner uuid.UUID) *events.CommentRepliedEvent {
	t.Helper()
	d := &deposit.Deposit{ID: uuid.New(), OwnerID: uuid.New(), Title: "Commented Deposit"}
	ev, err := events.NewCommentRepliedEvent(events.CommentRepliedData{
		Comment:   &comment.Comment{ID: uuid.New(), DepositID: d.ID, OwnerID: uuid.New()},
		Parent:    &comment.Comment{ID: uuid.New(), DepositID: d.ID, OwnerID: parentOwner},
		Deposit:   d,
		Author:    &user.User{ID: uuid.New(), FirstName: "Alan", LastName: "Turing"},
		Community: &community.Community{ID: uuid.New(), Name: "CS", Codename: "cs"},
	})
	require.NoError(t, err)
	return ev
}
