package event

import (
	"time"

	"github.com/google/uuid"
)

// Record is the minimal durable trace of a dispatched domain event:
// its kind plus the payload it was constructed with. Records are
// append-only and never mutated.
type Record struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	EventType string    `gorm:"type:varchar(50);not null;index"`
	Scope     string    `gorm:"type:varchar(20);not null"`
	Payload   []byte    `gorm:"type:jsonb;not null"`
	CreatedAt time.Time `gorm:"not null;default:now()"`
}

// TableName returns the database table name
func (Record) TableName() string {
	return "event_records"
}
