package services

import (
	"context"

	"github.com/google/uuid"

	"scipress-events/pkg/logger"
)

type userIDKey struct{}

// WithUserContext stores the authenticated user on the request
// context, both for handlers and for log enrichment.
func WithUserContext(ctx context.Context, userID uuid.UUID) context.Context {
	ctx = context.WithValue(ctx, userIDKey{}, userID)
	return context.WithValue(ctx, logger.UserIdKey, userID.String())
}

func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey{}).(uuid.UUID)
	return id, ok
}
