package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scipress-events/internal/domain/event"
)

func TestEventRepositoryCreateAndList(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEventRepository(db)
	ctx := context.Background()

	base := time.Date(2026, time.August, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		rec := &event.Record{
			ID:        uuid.New(),
			EventType: "deposit.published",
			Scope:     "community",
			Payload:   []byte(fmt.Sprintf(`{"n":%d}`, i)),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, repo.Create(ctx, rec))
	}
	other := &event.Record{
		ID:        uuid.New(),
		EventType: "feedback.created",
		Scope:     "system",
		Payload:   []byte(`{}`),
		CreatedAt: base,
	}
	require.NoError(t, repo.Create(ctx, other))

	records, err := repo.ListByType(ctx, "deposit.published", 0)
	require.NoError(t, err)
	require.Len(t, records, 3)
	// Newest first
	assert.True(t, records[0].CreatedAt.After(records[2].CreatedAt))

	records, err = repo.ListByType(ctx, "deposit.published", 2)
	require.NoError(t, err)
	assert.Len(t, records, 2)

	records, err = repo.ListByType(ctx, "user.confirm_email", 0)
	require.NoError(t, err)
	assert.Empty(t, records)
}
