package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"scipress-events/internal/domain/history"
)

type PostgresHistoryRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) HistoryRepository {
	return &PostgresHistoryRepository{db: db}
}

func (r *PostgresHistoryRepository) Create(ctx context.Context, e *history.Entry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *PostgresHistoryRepository) ListByResource(ctx context.Context, resourceType string, resourceID uuid.UUID) ([]history.Entry, error) {
	var entries []history.Entry
	err := r.db.WithContext(ctx).
		Where("resource_type = ? AND resource_id = ?", resourceType, resourceID).
		Order("created_at ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
