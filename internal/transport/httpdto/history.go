package httpdto

import (
	"time"

	"scipress-events/internal/domain/history"
)

// HistoryEntryDTO represents one audit line in API responses
type HistoryEntryDTO struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
}

// ListHistoryResponse is returned when reading a resource's audit log
type ListHistoryResponse struct {
	Entries []HistoryEntryDTO `json:"entries"`
}

func FromHistoryEntry(e history.Entry) HistoryEntryDTO {
	return HistoryEntryDTO{
		ID:          e.ID.String(),
		Description: e.Description,
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
	}
}

func FromHistoryEntrySlice(items []history.Entry) []HistoryEntryDTO {
	out := make([]HistoryEntryDTO, 0, len(items))
	for _, e := range items {
		out = append(out, FromHistoryEntry(e))
	}
	return out
}
