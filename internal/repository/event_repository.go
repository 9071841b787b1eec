package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"scipress-events/internal/domain/event"
	scipress_errors "scipress-events/pkg/errors"
)

type PostgresEventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &PostgresEventRepository{db: db}
}

func (r *PostgresEventRepository) Create(ctx context.Context, rec *event.Record) error {
	res := r.db.WithContext(ctx).Create(rec)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return scipress_errors.ErrAlreadyExists
		}
		return res.Error
	}
	return nil
}

func (r *PostgresEventRepository) ListByType(ctx context.Context, eventType string, limit int) ([]event.Record, error) {
	var records []event.Record
	q := r.db.WithContext(ctx).Where("event_type = ?", eventType).Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
