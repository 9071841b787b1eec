package events

import (
	"time"

	"scipress-events/internal/domain/community"
	"scipress-events/internal/domain/user"
	"scipress-events/internal/templates"
	scipress_errors "scipress-events/pkg/errors"
)

// CommunityEventData is the payload shared by the community lifecycle
// events. Publisher is the populated profile of the user who created
// the community.
type CommunityEventData struct {
	Community *community.Community `json:"community"`
	Publisher *user.User           `json:"publisher"`
}

func (d CommunityEventData) validate() error {
	if d.Community == nil {
		return scipress_errors.MissingEventData("community")
	}
	if d.Publisher == nil {
		return scipress_errors.MissingEventData("publisher")
	}
	return nil
}

func (d CommunityEventData) emailVars(templateName string) templates.Vars {
	return templates.Merge(
		templates.CommonVars(BaseURL()),
		templates.UserVars(d.Publisher),
		templates.CommunityVars(d.Community, templateName, BaseURL()),
	)
}

// CommunitySubmittedEvent is published when a community is submitted
// for platform approval.
type CommunitySubmittedEvent struct {
	data CommunityEventData
}

var _ Event = (*CommunitySubmittedEvent)(nil)

func NewCommunitySubmittedEvent(data CommunityEventData) (*CommunitySubmittedEvent, error) {
	if err := data.validate(); err != nil {
		return nil, err
	}
	return &CommunitySubmittedEvent{data: data}, nil
}

func (e *CommunitySubmittedEvent) Type() EventType { return EventTypeCommunitySubmitted }
func (e *CommunitySubmittedEvent) Scope() Scope    { return ScopeCommunity }

func (e *CommunitySubmittedEvent) DTO() EventDTO {
	return EventDTO{EventType: e.Type(), Data: e.data}
}

func (e *CommunitySubmittedEvent) EmailTemplateName() string { return "community-submitted" }

func (e *CommunitySubmittedEvent) EmailTemplate(src string, strict bool) (*EmailOptions, error) {
	return renderVarsEmail(src, "Community "+e.data.Community.Name+" submitted for approval",
		e.data.emailVars(e.EmailTemplateName()), strict)
}

func (e *CommunitySubmittedEvent) AppNotificationTemplate(userID string) *AppNotificationDraft {
	return nil
}

func (e *CommunitySubmittedEvent) PushNotificationTemplate() *PushPayload { return nil }

func (e *CommunitySubmittedEvent) HistoryTemplate() *HistoryLine {
	return &HistoryLine{
		CreatedAt:   time.Now().UTC(),
		Description: "Community submitted for approval",
	}
}

// CommunityAcceptedEvent is published when the platform approves a
// community.
type CommunityAcceptedEvent struct {
	data CommunityEventData
}

var _ Event = (*CommunityAcceptedEvent)(nil)

func NewCommunityAcceptedEvent(data CommunityEventData) (*CommunityAcceptedEvent, error) {
	if err := data.validate(); err != nil {
		return nil, err
	}
	return &CommunityAcceptedEvent{data: data}, nil
}

func (e *CommunityAcceptedEvent) Type() EventType { return EventTypeCommunityAccepted }
func (e *CommunityAcceptedEvent) Scope() Scope    { return ScopeCommunity }

func (e *CommunityAcceptedEvent) DTO() EventDTO {
	return EventDTO{EventType: e.Type(), Data: e.data}
}

func (e *CommunityAcceptedEvent) EmailTemplateName() string { return "community-accepted" }

func (e *CommunityAcceptedEvent) EmailTemplate(src string, strict bool) (*EmailOptions, error) {
	return renderVarsEmail(src, "Your community has been accepted",
		e.data.emailVars(e.EmailTemplateName()), strict)
}

func (e *CommunityAcceptedEvent) AppNotificationTemplate(userID string) *AppNotificationDraft {
	return &AppNotificationDraft{
		UserID: userID,
		Title:  "Community accepted",
		Body:   e.data.Community.Name,
		Icon:   "community",
		Action: "/communities/" + e.data.Community.Codename + "/view",
	}
}

func (e *CommunityAcceptedEvent) PushNotificationTemplate() *PushPayload { return nil }

func (e *CommunityAcceptedEvent) HistoryTemplate() *HistoryLine {
	return &HistoryLine{
		CreatedAt:   time.Now().UTC(),
		Description: "Community accepted",
	}
}
