package events

import (
	"time"

	"scipress-events/internal/domain/community"
	"scipress-events/internal/domain/deposit"
	"scipress-events/internal/domain/user"
	"scipress-events/internal/templates"
	scipress_errors "scipress-events/pkg/errors"
)

// DepositEventData is the payload shared by the deposit lifecycle
// events. Owner is the populated profile of the submitting user.
type DepositEventData struct {
	Deposit   *deposit.Deposit     `json:"deposit"`
	Owner     *user.User           `json:"owner"`
	Community *community.Community `json:"community"`
}

func (d DepositEventData) validate() error {
	if d.Deposit == nil {
		return scipress_errors.MissingEventData("deposit")
	}
	if d.Owner == nil {
		return scipress_errors.MissingEventData("owner")
	}
	if d.Community == nil {
		return scipress_errors.MissingEventData("community")
	}
	return nil
}

func (d DepositEventData) emailVars(templateName string) templates.Vars {
	return templates.Merge(
		templates.CommonVars(BaseURL()),
		templates.UserVars(d.Owner),
		templates.CommunityVars(d.Community, templateName, BaseURL()),
		templates.PublicationVars(d.Deposit, templateName, BaseURL()),
	)
}

// renderVarsEmail renders a variable-map template source into email
// content with a fixed subject.
func renderVarsEmail(src, subject string, vars templates.Vars, strict bool) (*EmailOptions, error) {
	body, err := templates.Render(src, vars, strict)
	if err != nil {
		return nil, err
	}
	return &EmailOptions{Subject: subject, HTML: body}, nil
}

// DepositSubmittedEvent is published when an author submits a
// publication to a community.
type DepositSubmittedEvent struct {
	data DepositEventData
}

var _ Event = (*DepositSubmittedEvent)(nil)

func NewDepositSubmittedEvent(data DepositEventData) (*DepositSubmittedEvent, error) {
	if err := data.validate(); err != nil {
		return nil, err
	}
	return &DepositSubmittedEvent{data: data}, nil
}

func (e *DepositSubmittedEvent) Type() EventType { return EventTypeDepositSubmitted }
func (e *DepositSubmittedEvent) Scope() Scope    { return ScopeCommunity }

func (e *DepositSubmittedEvent) DTO() EventDTO {
	return EventDTO{EventType: e.Type(), Data: e.data}
}

func (e *DepositSubmittedEvent) EmailTemplateName() string { return "deposit-submitted" }

func (e *DepositSubmittedEvent) EmailTemplate(src string, strict bool) (*EmailOptions, error) {
	return renderVarsEmail(src, "Your publication has been submitted",
		e.data.emailVars(e.EmailTemplateName()), strict)
}

func (e *DepositSubmittedEvent) AppNotificationTemplate(userID string) *AppNotificationDraft {
	return &AppNotificationDraft{
		UserID: userID,
		Title:  "Publication submitted",
		Body:   e.data.Deposit.Title,
		Icon:   "publication",
		Action: "/deposits/" + e.data.Deposit.ID.String() + "/view",
	}
}

func (e *DepositSubmittedEvent) PushNotificationTemplate() *PushPayload { return nil }

func (e *DepositSubmittedEvent) HistoryTemplate() *HistoryLine {
	return &HistoryLine{
		CreatedAt:   time.Now().UTC(),
		Description: "Publication submitted to " + e.data.Community.Name,
	}
}

// DepositAcceptedEvent is published when a moderator accepts a
// submission into review.
type DepositAcceptedEvent struct {
	data DepositEventData
}

var _ Event = (*DepositAcceptedEvent)(nil)

func NewDepositAcceptedEvent(data DepositEventData) (*DepositAcceptedEvent, error) {
	if err := data.validate(); err != nil {
		return nil, err
	}
	return &DepositAcceptedEvent{data: data}, nil
}

func (e *DepositAcceptedEvent) Type() EventType { return EventTypeDepositAccepted }
func (e *DepositAcceptedEvent) Scope() Scope    { return ScopeCommunity }

func (e *DepositAcceptedEvent) DTO() EventDTO {
	return EventDTO{EventType: e.Type(), Data: e.data}
}

func (e *DepositAcceptedEvent) EmailTemplateName() string { return "deposit-accepted" }

func (e *DepositAcceptedEvent) EmailTemplate(src string, strict bool) (*EmailOptions, error) {
	return renderVarsEmail(src, "Your publication has been accepted",
		e.data.emailVars(e.EmailTemplateName()), strict)
}

func (e *DepositAcceptedEvent) AppNotificationTemplate(userID string) *AppNotificationDraft {
	return &AppNotificationDraft{
		UserID: userID,
		Title:  "Publication accepted",
		Body:   e.data.Deposit.Title,
		Icon:   "publication",
		Action: "/deposits/" + e.data.Deposit.ID.String() + "/view",
	}
}

func (e *DepositAcceptedEvent) PushNotificationTemplate() *PushPayload { return nil }

func (e *DepositAcceptedEvent) HistoryTemplate() *HistoryLine {
	return &HistoryLine{
		CreatedAt:   time.Now().UTC(),
		Description: "Publication accepted into review",
	}
}

// DepositPublishedEvent is published when a deposit becomes publicly
// visible. It is the only deposit event that also pushes.
type DepositPublishedEvent struct {
	data DepositEventData
}

var _ Event = (*DepositPublishedEvent)(nil)

func NewDepositPublishedEvent(data DepositEventData) (*DepositPublishedEvent, error) {
	if err := data.validate(); err != nil {
		return nil, err
	}
	return &DepositPublishedEvent{data: data}, nil
}

func (e *DepositPublishedEvent) Type() EventType { return EventTypeDepositPublished }
func (e *DepositPublishedEvent) Scope() Scope    { return ScopeCommunity }

func (e *DepositPublishedEvent) DTO() EventDTO {
	return EventDTO{EventType: e.Type(), Data: e.data}
}

func (e *DepositPublishedEvent) EmailTemplateName() string { return "deposit-published" }

func (e *DepositPublishedEvent) EmailTemplate(src string, strict bool) (*EmailOptions, error) {
	return renderVarsEmail(src, "Your publication is now published",
		e.data.emailVars(e.EmailTemplateName()), strict)
}

func (e *DepositPublishedEvent) AppNotificationTemplate(userID string) *AppNotificationDraft {
	return &AppNotificationDraft{
		UserID: userID,
		Title:  "Publication published",
		Body:   e.data.Deposit.Title,
		Icon:   "publication",
		Action: "/deposits/" + e.data.Deposit.ID.String() + "/view",
	}
}

func (e *DepositPublishedEvent) PushNotificationTemplate() *PushPayload {
	return &PushPayload{
		Title: "Publication published",
		Body:  e.data.Deposit.Title,
		Icon:  "publication",
		Data:  map[string]string{"depositId": e.data.Deposit.ID.String()},
	}
}

func (e *DepositPublishedEvent) HistoryTemplate() *HistoryLine {
	return &HistoryLine{
		CreatedAt:   time.Now().UTC(),
		Description: "Publication published in " + e.data.Community.Name,
	}
}
