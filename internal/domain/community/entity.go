package community

import (
	"time"

	"github.com/google/uuid"
)

// Status represents the moderation state of a community
type Status string

const (
	StatusDraft     Status = "draft"
	StatusSubmitted Status = "submitted"
	StatusPublished Status = "published"
)

// Community represents a scientific community hosting publications
type Community struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name         string    `gorm:"type:varchar(200);not null"`
	Codename     string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	Description  string    `gorm:"type:text"`
	Country      string    `gorm:"type:varchar(100)"`
	TwitterURL   string    `gorm:"type:varchar(300)"`
	WebsiteURL   string    `gorm:"type:varchar(300)"`
	LogoURL      string    `gorm:"type:varchar(300)"`
	Guidelines   string    `gorm:"type:text"`
	Status       Status    `gorm:"type:varchar(20);not null;default:'draft'"`
	CreatedAt    time.Time `gorm:"not null;default:now()"`
	UpdatedAt    time.Time `gorm:"not null;default:now()"`
}

// TableName returns the database table name
func (Community) TableName() string {
	return "communities"
}

// Moderator links a user to a community with moderation rights
type Moderator struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CommunityID uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time `gorm:"not null;default:now()"`
}

func (Moderator) TableName() string {
	return "community_moderators"
}
