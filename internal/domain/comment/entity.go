package comment

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a discussion entry on a deposit. ParentID is set for
// replies.
type Comment struct {
	ID        uuid.UUID     `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	DepositID uuid.UUID     `gorm:"type:uuid;not null;index"`
	OwnerID   uuid.UUID     `gorm:"type:uuid;not null;index"`
	ParentID  uuid.NullUUID `gorm:"type:uuid"`
	Content   string        `gorm:"type:text;not null"`
	CreatedAt time.Time     `gorm:"not null;default:now()"`
}

// TableName returns the database table name
func (Comment) TableName() string {
	return "comments"
}
