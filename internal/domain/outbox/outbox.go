package outbox

import (
	"time"

	"github.com/google/uuid"
)

// Status represents the processing state of an outbox email
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusProcessing Status = "PROCESSING"
	StatusCompleted  Status = "COMPLETED"
	StatusFailed     Status = "FAILED"
)

// EmailMessage stores a rendered email waiting to be handed to the
// mail transport
type EmailMessage struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	EventType   string    `gorm:"type:varchar(50);not null"`
	Recipient   string    `gorm:"type:varchar(255);not null"`
	Subject     string    `gorm:"type:varchar(300);not null"`
	HTML        string    `gorm:"type:text;not null"`
	Attachments []byte    `gorm:"type:jsonb"`
	Status      Status    `gorm:"type:varchar(20);not null;default:'PENDING'"`
	RetryCount  int       `gorm:"default:0"`
	Error       string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"not null;default:now()"`
	UpdatedAt   time.Time `gorm:"not null;default:now()"`
	ProcessedAt *time.Time
}

// TableName returns the database table name
func (EmailMessage) TableName() string {
	return "email_outbox"
}
