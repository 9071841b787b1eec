package httpdto

import (
	"encoding/json"
	"time"

	"scipress-events/internal/domain/event"
)

// IngestEventRequest is used for POST /internal/events by trusted
// backend services. Payload must match the shape the event kind
// expects.
type IngestEventRequest struct {
	EventType string          `json:"event_type" binding:"required"`
	Payload   json.RawMessage `json:"payload" binding:"required"`
}

// IngestEventResponse acknowledges a dispatched event
type IngestEventResponse struct {
	EventType string `json:"event_type"`
	Scope     string `json:"scope"`
}

// EventRecordDTO represents a persisted event record
type EventRecordDTO struct {
	ID        string          `json:"id"`
	EventType string          `json:"event_type"`
	Scope     string          `json:"scope"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt string          `json:"created_at"`
}

// ListEventRecordsResponse is returned when querying the event log
type ListEventRecordsResponse struct {
	Events []EventRecordDTO `json:"events"`
}

func FromEventRecord(rec event.Record) EventRecordDTO {
	return EventRecordDTO{
		ID:        rec.ID.String(),
		EventType: rec.EventType,
		Scope:     rec.Scope,
		Payload:   json.RawMessage(rec.Payload),
		CreatedAt: rec.CreatedAt.Format(time.RFC3339),
	}
}

func FromEventRecordSlice(items []event.Record) []EventRecordDTO {
	out := make([]EventRecordDTO, 0, len(items))
	for _, rec := range items {
		out = append(out, FromEventRecord(rec))
	}
	return out
}
