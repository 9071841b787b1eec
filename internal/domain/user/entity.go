package user

import (
	"time"

	"github.com/google/uuid"
)

// User represents a platform profile, the recipient of notifications
type User struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email          string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	FirstName      string    `gorm:"type:varchar(100)"`
	LastName       string    `gorm:"type:varchar(100)"`
	Nickname       string    `gorm:"type:varchar(100);uniqueIndex"`
	Institutions   []string  `gorm:"serializer:json"`
	EmailConfirmed bool      `gorm:"default:false"`
	CreatedAt      time.Time `gorm:"not null;default:now()"`
	UpdatedAt      time.Time `gorm:"not null;default:now()"`
}

// TableName returns the database table name
func (User) TableName() string {
	return "users"
}

// FullName joins first and last name for template substitution
func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// PushToken stores a Web Push subscription endpoint for a user device
type PushToken struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Endpoint  string    `gorm:"type:text;not null"`
	P256dh    string    `gorm:"type:varchar(255)"`
	Auth      string    `gorm:"type:varchar(255)"`
	Active    bool      `gorm:"default:true"`
	CreatedAt time.Time `gorm:"not null;default:now()"`
}

func (PushToken) TableName() string {
	return "push_tokens"
}
