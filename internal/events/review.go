package events

import (
	"time"

	"scipress-events/internal/domain/community"
	"scipress-events/internal/domain/deposit"
	"scipress-events/internal/domain/review"
	"scipress-events/internal/domain/user"
	"scipress-events/internal/templates"
	scipress_errors "scipress-events/pkg/errors"
)

// ReviewCreatedData is the payload of a review.created event. Owner
// is the populated profile of the reviewed deposit's author.
type ReviewCreatedData struct {
	Review    *review.Review       `json:"review"`
	Deposit   *deposit.Deposit     `json:"deposit"`
	Owner     *user.User           `json:"owner"`
	Community *community.Community `json:"community"`
}

// ReviewCreatedEvent is published when a reviewer posts a review on a
// deposit.
type ReviewCreatedEvent struct {
	data ReviewCreatedData
}

var _ Event = (*ReviewCreatedEvent)(nil)

func NewReviewCreatedEvent(data ReviewCreatedData) (*ReviewCreatedEvent, error) {
	if data.Review == nil {
		return nil, scipress_errors.MissingEventData("review")
	}
	if data.Deposit == nil {
		return nil, scipress_errors.MissingEventData("deposit")
	}
	if data.Owner == nil {
		return nil, scipress_errors.MissingEventData("owner")
	}
	if data.Community == nil {
		return nil, scipress_errors.MissingEventData("community")
	}
	return &ReviewCreatedEvent{data: data}, nil
}

func (e *ReviewCreatedEvent) Type() EventType { return EventTypeReviewCreated }
func (e *ReviewCreatedEvent) Scope() Scope    { return ScopeCommunity }

func (e *ReviewCreatedEvent) DTO() EventDTO {
	return EventDTO{EventType: e.Type(), Data: e.data}
}

func (e *ReviewCreatedEvent) EmailTemplateName() string { return "review-created" }

func (e *ReviewCreatedEvent) EmailTemplate(src string, strict bool) (*EmailOptions, error) {
	vars := templates.Merge(
		templates.CommonVars(BaseURL()),
		templates.UserVars(e.data.Owner),
		templates.CommunityVars(e.data.Community, e.EmailTemplateName(), BaseURL()),
		templates.PublicationVars(e.data.Deposit, e.EmailTemplateName(), BaseURL()),
		templates.ReviewVars(e.data.Review, e.EmailTemplateName(), BaseURL()),
	)
	return renderVarsEmail(src, "A new review has been posted on your publication", vars, strict)
}

func (e *ReviewCreatedEvent) AppNotificationTemplate(userID string) *AppNotificationDraft {
	return &AppNotificationDraft{
		UserID: userID,
		Title:  "New review",
		Body:   e.data.Deposit.Title,
		Icon:   "review",
		Action: "/reviews/" + e.data.Review.ID.String() + "/read",
	}
}

func (e *ReviewCreatedEvent) PushNotificationTemplate() *PushPayload { return nil }

func (e *ReviewCreatedEvent) HistoryTemplate() *HistoryLine {
	return &HistoryLine{
		CreatedAt:   time.Now().UTC(),
		Description: "Review created for publication " + e.data.Deposit.Title,
	}
}

// ReviewInvitationData is the payload of a review.invitation_created
// event. The invitee may not have a profile yet, so only an email
// address is guaranteed.
type ReviewInvitationData struct {
	Invitation *review.Invitation   `json:"invitation"`
	Deposit    *deposit.Deposit     `json:"deposit"`
	Inviter    *user.User           `json:"inviter"`
	Community  *community.Community `json:"community"`
}

// ReviewInvitationEvent is published when a moderator invites an
// external reviewer. Email is the only channel: the invitee has no
// inbox, token or history on the platform yet.
type ReviewInvitationEvent struct {
	data ReviewInvitationData
}

var _ Event = (*ReviewInvitationEvent)(nil)

func NewReviewInvitationEvent(data ReviewInvitationData) (*ReviewInvitationEvent, error) {
	if data.Invitation == nil {
		return nil, scipress_errors.MissingEventData("invitation")
	}
	if data.Deposit == nil {
		return nil, scipress_errors.MissingEventData("deposit")
	}
	if data.Inviter == nil {
		return nil, scipress_errors.MissingEventData("inviter")
	}
	if data.Community == nil {
		return nil, scipress_errors.MissingEventData("community")
	}
	return &ReviewInvitationEvent{data: data}, nil
}

func (e *ReviewInvitationEvent) Type() EventType { return EventTypeReviewInvitationCreated }
func (e *ReviewInvitationEvent) Scope() Scope    { return ScopeCommunity }

func (e *ReviewInvitationEvent) DTO() EventDTO {
	return EventDTO{EventType: e.Type(), Data: e.data}
}

func (e *ReviewInvitationEvent) EmailTemplateName() string { return "review-invitation" }

func (e *ReviewInvitationEvent) EmailTemplate(src string, strict bool) (*EmailOptions, error) {
	vars := templates.Merge(
		templates.CommonVars(BaseURL()),
		templates.UserVars(e.data.Inviter),
		templates.CommunityVars(e.data.Community, e.EmailTemplateName(), BaseURL()),
		templates.PublicationVars(e.data.Deposit, e.EmailTemplateName(), BaseURL()),
		templates.InvitationVars(e.data.Invitation, e.EmailTemplateName(), BaseURL()),
	)
	return renderVarsEmail(src, e.data.Inviter.FullName()+" has invited you to review a publication", vars, strict)
}

func (e *ReviewInvitationEvent) AppNotificationTemplate(userID string) *AppNotificationDraft {
	return nil
}

func (e *ReviewInvitationEvent) PushNotificationTemplate() *PushPayload { return nil }

func (e *ReviewInvitationEvent) HistoryTemplate() *HistoryLine { return nil }
