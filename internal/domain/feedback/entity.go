package feedback

import (
	"time"

	"github.com/google/uuid"
)

// Feedback is a bug report or comment sent from the frontend widget.
// Screenshot and Data are optional; Email may be empty for anonymous
// reports.
type Feedback struct {
	ID          uuid.UUID              `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email       string                 `gorm:"type:varchar(255)"`
	Description string                 `gorm:"type:text;not null"`
	Data        map[string]interface{} `gorm:"serializer:json"`
	Screenshot  []byte                 `gorm:"type:bytea"`
	CreatedAt   time.Time              `gorm:"not null;default:now()"`
}

// TableName returns the database table name
func (Feedback) TableName() string {
	return "feedback"
}
