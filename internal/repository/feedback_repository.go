package repository

import (
	"context"

	"gorm.io/gorm"

	"scipress-events/internal/domain/feedback"
)

type PostgresFeedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &PostgresFeedbackRepository{db: db}
}

func (r *PostgresFeedbackRepository) Create(ctx context.Context, fb *feedback.Feedback) error {
	return r.db.WithContext(ctx).Create(fb).Error
}
