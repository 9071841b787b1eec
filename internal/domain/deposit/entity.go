package deposit

import (
	"time"

	"github.com/google/uuid"
)

// Status represents the review lifecycle of a deposit
type Status string

const (
	StatusDraft            Status = "draft"
	StatusPendingApproval  Status = "pending approval"
	StatusInReview         Status = "in review"
	StatusPublished        Status = "published"
	StatusPreprint         Status = "preprint"
	StatusRejected         Status = "rejected"
	StatusMerged           Status = "merged"
)

// AccessRight values mirror the license choices offered on submission.
// AccessRightNone is a sentinel meaning "no specific license".
const (
	AccessRightNone = "none"
	AccessRightCCBY = "cc by"
	AccessRightCC0  = "cc0"
)

// AcceptedForNone is the sentinel for deposits not accepted for
// presentation anywhere.
const AcceptedForNone = "none"

type Author struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Orcid     string `json:"orcid,omitempty"`
	Credit    string `json:"credit,omitempty"`
}

// Deposit represents a publication submitted to a community
type Deposit struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CommunityID uuid.UUID `gorm:"type:uuid;not null;index"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"type:text;not null"`
	Abstract    string    `gorm:"type:text"`
	Authors     []Author  `gorm:"serializer:json"`
	Keywords    []string  `gorm:"serializer:json"`
	Disciplines []string  `gorm:"serializer:json"`
	PublicationType string `gorm:"type:varchar(50)"`
	AccessRight string    `gorm:"type:varchar(20);default:'none'"`
	AcceptedFor string    `gorm:"type:varchar(50);default:'none'"`
	Track       string    `gorm:"type:varchar(100)"`
	Version     int       `gorm:"default:1"`
	Status      Status    `gorm:"type:varchar(30);not null;default:'draft'"`
	Doi         string    `gorm:"type:varchar(100)"`
	CreatedAt   time.Time `gorm:"not null;default:now()"`
	UpdatedAt   time.Time `gorm:"not null;default:now()"`
	SubmissionDate *time.Time
	PublicationDate *time.Time
}

// TableName returns the database table name
func (Deposit) TableName() string {
	return "deposits"
}
