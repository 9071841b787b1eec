package history

import (
	"time"

	"github.com/google/uuid"
)

// Entry is a single audit line attached to a deposit or community
type Entry struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ResourceType string    `gorm:"type:varchar(30);not null;index:idx_history_resource"`
	ResourceID   uuid.UUID `gorm:"type:uuid;not null;index:idx_history_resource"`
	Description  string    `gorm:"type:text;not null"`
	CreatedAt    time.Time `gorm:"not null;default:now()"`
}

// TableName returns the database table name
func (Entry) TableName() string {
	return "history_entries"
}
