package review

import (
	"time"

	"github.com/google/uuid"
)

// Decision values a reviewer can reach
type Decision string

const (
	DecisionAccepted       Decision = "accepted"
	DecisionMinorRevision  Decision = "minor revision"
	DecisionMajorRevision  Decision = "major revision"
)

// Kind distinguishes peer reviews from editorial comments
type Kind string

const (
	KindPeerReview      Kind = "peer review"
	KindCopyEditing     Kind = "copy editing"
)

// Review represents a peer review of a deposit
type Review struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	DepositID   uuid.UUID `gorm:"type:uuid;not null;index"`
	CommunityID uuid.UUID `gorm:"type:uuid;not null;index"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Kind        Kind      `gorm:"type:varchar(30);not null;default:'peer review'"`
	Decision    Decision  `gorm:"type:varchar(30)"`
	Comments    string    `gorm:"type:text"`
	Published   bool      `gorm:"default:false"`
	CreatedAt   time.Time `gorm:"not null;default:now()"`
	UpdatedAt   time.Time `gorm:"not null;default:now()"`
}

// TableName returns the database table name
func (Review) TableName() string {
	return "reviews"
}

// InvitationStatus tracks the lifecycle of a review invitation
type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "pending"
	InvitationAccepted InvitationStatus = "accepted"
	InvitationRejected InvitationStatus = "rejected"
)

// Invitation asks an external reviewer to review a deposit
type Invitation struct {
	ID          uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	DepositID   uuid.UUID        `gorm:"type:uuid;not null;index"`
	CommunityID uuid.UUID        `gorm:"type:uuid;not null;index"`
	InviterID   uuid.UUID        `gorm:"type:uuid;not null"`
	Email       string           `gorm:"type:varchar(255);not null"`
	Status      InvitationStatus `gorm:"type:varchar(20);not null;default:'pending'"`
	DateLimit   *time.Time
	CreatedAt   time.Time `gorm:"not null;default:now()"`
}

func (Invitation) TableName() string {
	return "review_invitations"
}
