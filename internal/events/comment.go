package events

import (
	"scipress-events/internal/domain/comment"
	"scipress-events/internal/domain/community"
	"scipress-events/internal/domain/deposit"
	"scipress-events/internal/domain/user"
	scipress_errors "scipress-events/pkg/errors"
)

// CommentCreatedData is the payload of a comment.created event.
// Author is the populated profile of the commenter.
type CommentCreatedData struct {
	Comment   *comment.Comment     `json:"comment"`
	Deposit   *deposit.Deposit     `json:"deposit"`
	Author    *user.User           `json:"author"`
	Community *community.Community `json:"community"`
}

func (d CommentCreatedData) validate() error {
	if d.Comment == nil {
		return scipress_errors.MissingEventData("comment")
	}
	if d.Deposit == nil {
		return scipress_errors.MissingEventData("deposit")
	}
	if d.Author == nil {
		return scipress_errors.MissingEventData("author")
	}
	if d.Community == nil {
		return scipress_errors.MissingEventData("community")
	}
	return nil
}

// CommentCreatedEvent notifies the deposit owner in-app. No email, no
// push, no history.
type CommentCreatedEvent struct {
	data CommentCreatedData
}

var _ Event = (*CommentCreatedEvent)(nil)

func NewCommentCreatedEvent(data CommentCreatedData) (*CommentCreatedEvent, error) {
	if err := data.validate(); err != nil {
		return nil, err
	}
	return &CommentCreatedEvent{data: data}, nil
}

func (e *CommentCreatedEvent) Type() EventType { return EventTypeCommentCreated }
func (e *CommentCreatedEvent) Scope() Scope    { return ScopeCommunity }

func (e *CommentCreatedEvent) DTO() EventDTO {
	return EventDTO{EventType: e.Type(), Data: e.data}
}

func (e *CommentCreatedEvent) EmailTemplateName() string { return "" }

func (e *CommentCreatedEvent) EmailTemplate(src string, strict bool) (*EmailOptions, error) {
	return nil, nil
}

func (e *CommentCreatedEvent) AppNotificationTemplate(userID string) *AppNotificationDraft {
	return &AppNotificationDraft{
		UserID: userID,
		Title:  "New comment on your publication",
		Body:   e.data.Author.FullName() + " commented on " + e.data.Deposit.Title,
		Icon:   "comment",
		Action: "/deposits/" + e.data.Deposit.ID.String() + "/view",
	}
}

func (e *CommentCreatedEvent) PushNotificationTemplate() *PushPayload { return nil }

func (e *CommentCreatedEvent) HistoryTemplate() *HistoryLine { return nil }

// CommentRepliedData is the payload of a comment.replied event.
// Parent is the comment being replied to; its owner is the recipient.
type CommentRepliedData struct {
	Comment   *comment.Comment     `json:"comment"`
	Parent    *comment.Comment     `json:"parent"`
	Deposit   *deposit.Deposit     `json:"deposit"`
	Author    *user.User           `json:"author"`
	Community *community.Community `json:"community"`
}

// CommentRepliedEvent notifies the parent comment's author in-app and
// over push.
type CommentRepliedEvent struct {
	data CommentRepliedData
}

var _ Event = (*CommentRepliedEvent)(nil)

func NewCommentRepliedEvent(data CommentRepliedData) (*CommentRepliedEvent, error) {
	if data.Comment == nil {
		return nil, scipress_errors.MissingEventData("comment")
	}
	if data.Parent == nil {
		return nil, scipress_errors.MissingEventData("parent")
	}
	if data.Deposit == nil {
		return nil, scipress_errors.MissingEventData("deposit")
	}
	if data.Author == nil {
		return nil, scipress_errors.MissingEventData("author")
	}
	if data.Community == nil {
		return nil, scipress_errors.MissingEventData("community")
	}
	return &CommentRepliedEvent{data: data}, nil
}

func (e *CommentRepliedEvent) Type() EventType { return EventTypeCommentReplied }
func (e *CommentRepliedEvent) Scope() Scope    { return ScopeCommunity }

func (e *CommentRepliedEvent) DTO() EventDTO {
	return EventDTO{EventType: e.Type(), Data: e.data}
}

func (e *CommentRepliedEvent) EmailTemplateName() string { return "" }

func (e *CommentRepliedEvent) EmailTemplate(src string, strict bool) (*EmailOptions, error) {
	return nil, nil
}

func (e *CommentRepliedEvent) AppNotificationTemplate(userID string) *AppNotificationDraft {
	return &AppNotificationDraft{
		UserID: userID,
		Title:  "New reply to your comment",
		Body:   e.data.Author.FullName() + " replied on " + e.data.Deposit.Title,
		Icon:   "comment",
		Action: "/deposits/" + e.data.Deposit.ID.String() + "/view",
	}
}

func (e *CommentRepliedEvent) PushNotificationTemplate() *PushPayload {
	return &PushPayload{
		Title: "New reply to your comment",
		Body:  e.data.Author.FullName() + " replied on " + e.data.Deposit.Title,
		Icon:  "comment",
		Data:  map[string]string{"depositId": e.data.Deposit.ID.String()},
	}
}

func (e *CommentRepliedEvent) HistoryTemplate() *HistoryLine { return nil }
