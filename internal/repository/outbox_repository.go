package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"scipress-events/internal/domain/outbox"
	scipress_errors "scipress-events/pkg/errors"
)

type PostgresOutboxRepository struct {
	db *gorm.DB
}

func NewOutboxRepository(db *gorm.DB) OutboxRepository {
	return &PostgresOutboxRepository{db: db}
}

func (r *PostgresOutboxRepository) Create(ctx context.Context, msg *outbox.EmailMessage) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *PostgresOutboxRepository) GetPending(ctx context.Context, limit int) ([]outbox.EmailMessage, error) {
	var messages []outbox.EmailMessage
	q := r.db.WithContext(ctx).
		Where("status = ?", outbox.StatusPending).
		Order("created_at ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *PostgresOutboxRepository) MarkProcessing(ctx context.Context, id uuid.UUID) error {
	return r.updateStatus(ctx, id, map[string]interface{}{
		"status":     outbox.StatusProcessing,
		"updated_at": time.Now(),
	})
}

func (r *PostgresOutboxRepository) MarkCompleted(ctx context.Context, id uuid.UUID) error {
	now := time.Now()
	return r.updateStatus(ctx, id, map[string]interface{}{
		"status":       outbox.StatusCompleted,
		"processed_at": &now,
		"updated_at":   now,
	})
}

func (r *PostgresOutboxRepository) MarkFailed(ctx context.Context, id uuid.UUID, errorMsg string) error {
	return r.updateStatus(ctx, id, map[string]interface{}{
		"status":     outbox.StatusFailed,
		"error":      errorMsg,
		"updated_at": time.Now(),
	})
}

func (r *PostgresOutboxRepository) IncrementRetry(ctx context.Context, id uuid.UUID) error {
	return r.updateStatus(ctx, id, map[string]interface{}{
		"retry_count": gorm.Expr("retry_count + 1"),
		"status":      outbox.StatusPending,
		"updated_at":  time.Now(),
	})
}

func (r *PostgresOutboxRepository) updateStatus(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	res := r.db.WithContext(ctx).
		Model(&outbox.EmailMessage{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return scipress_errors.ErrNotFound
	}
	return nil
}
