package events

import (
	"scipress-events/internal/domain/user"
	"scipress-events/internal/templates"
	scipress_errors "scipress-events/pkg/errors"
)

// UserConfirmEmailData is the payload of a user.confirm_email event
type UserConfirmEmailData struct {
	User *user.User `json:"user"`
	Code string     `json:"code"`
}

// UserConfirmEmailEvent carries the confirmation code a new user must
// enter to verify their address. Email only.
type UserConfirmEmailEvent struct {
	data UserConfirmEmailData
}

var _ Event = (*UserConfirmEmailEvent)(nil)

func NewUserConfirmEmailEvent(data UserConfirmEmailData) (*UserConfirmEmailEvent, error) {
	if data.User == nil {
		return nil, scipress_errors.MissingEventData("user")
	}
	if data.Code == "" {
		return nil, scipress_errors.MissingEventData("code")
	}
	return &UserConfirmEmailEvent{data: data}, nil
}

func (e *UserConfirmEmailEvent) Type() EventType { return EventTypeUserConfirmEmail }
func (e *UserConfirmEmailEvent) Scope() Scope    { return ScopeSystem }

func (e *UserConfirmEmailEvent) DTO() EventDTO {
	return EventDTO{EventType: e.Type(), Data: e.data}
}

func (e *UserConfirmEmailEvent) EmailTemplateName() string { return "confirm-email" }

func (e *UserConfirmEmailEvent) EmailTemplate(src string, strict bool) (*EmailOptions, error) {
	vars := templates.Merge(
		templates.CommonVars(BaseURL()),
		templates.UserVars(e.data.User),
		templates.Vars{"CONFIRMATION_CODE": e.data.Code},
	)
	return renderVarsEmail(src, "Confirm your email address", vars, strict)
}

func (e *UserConfirmEmailEvent) AppNotificationTemplate(userID string) *AppNotificationDraft {
	return nil
}

func (e *UserConfirmEmailEvent) PushNotificationTemplate() *PushPayload { return nil }

func (e *UserConfirmEmailEvent) HistoryTemplate() *HistoryLine { return nil }
