package events

import (
	"encoding/json"
	"time"
)

// Envelope is the wire form of an event or notification crossing a
// process boundary (HTTP ingest, Redis pub/sub).
type Envelope struct {
	EventType  EventType       `json:"event_type"`
	Scope      Scope           `json:"scope"`
	OccurredAt time.Time       `json:"occurred_at"`
	Payload    json.RawMessage `json:"payload"`
}
