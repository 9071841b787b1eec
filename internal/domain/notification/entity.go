package notification

import (
	"time"

	"github.com/google/uuid"
)

// AppNotification is an in-app notification shown in the user's inbox
type AppNotification struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Title     string    `gorm:"type:varchar(200);not null"`
	Body      string    `gorm:"type:text"`
	Icon      string    `gorm:"type:varchar(100)"`
	Action    string    `gorm:"type:varchar(300)"`
	Read      bool      `gorm:"default:false"`
	CreatedAt time.Time `gorm:"not null;default:now()"`
	ReadAt    *time.Time
}

// TableName returns the database table name
func (AppNotification) TableName() string {
	return "app_notifications"
}
