package events

import (
	"encoding/base64"
	"encoding/json"
	"html"
	"strings"

	"scipress-events/internal/domain/feedback"
	"scipress-events/internal/templates"
	scipress_errors "scipress-events/pkg/errors"
)

// FeedbackCreatedData is the payload of a feedback.created event
type FeedbackCreatedData struct {
	Feedback *feedback.Feedback `json:"feedback"`
}

// FeedbackCreatedEvent is published when a visitor submits the
// feedback widget. It only emails the platform team: no in-app, push
// or history content.
type FeedbackCreatedEvent struct {
	data FeedbackCreatedData
}

var _ Event = (*FeedbackCreatedEvent)(nil)

func NewFeedbackCreatedEvent(data FeedbackCreatedData) (*FeedbackCreatedEvent, error) {
	if data.Feedback == nil {
		return nil, scipress_errors.MissingEventData("feedback")
	}
	return &FeedbackCreatedEvent{data: data}, nil
}

func (e *FeedbackCreatedEvent) Type() EventType {
	return EventTypeFeedbackCreated
}

func (e *FeedbackCreatedEvent) Scope() Scope {
	return ScopeSystem
}

func (e *FeedbackCreatedEvent) DTO() EventDTO {
	return EventDTO{EventType: e.Type(), Data: e.data}
}

func (e *FeedbackCreatedEvent) EmailTemplateName() string {
	return "feedback-created"
}

func (e *FeedbackCreatedEvent) EmailTemplate(src string, strict bool) (*EmailOptions, error) {
	fb := e.data.Feedback

	var content strings.Builder
	content.WriteString("<p>Email: " + html.EscapeString(fb.Email) + "</p>")
	content.WriteString("<p>Description: " + html.EscapeString(fb.Description) + "</p>")
	if len(fb.Data) > 0 {
		raw, err := json.Marshal(fb.Data)
		if err != nil {
			return nil, err
		}
		content.WriteString("<pre>" + html.EscapeString(string(raw)) + "</pre>")
	}

	vars := map[string]interface{}{
		"CONTENT": templates.RawHTML(content.String()),
	}
	for k, v := range templates.CommonVars(BaseURL()) {
		vars[k] = v
	}
	body, err := templates.Render(src, vars, strict)
	if err != nil {
		return nil, err
	}

	opts := &EmailOptions{
		Subject: "New feedback received",
		HTML:    body,
	}
	// A missing screenshot means no attachments, not an error.
	if len(fb.Screenshot) > 0 {
		opts.Attachments = []Attachment{{
			Filename:    "screenshot.jpeg",
			Content:     base64.StdEncoding.EncodeToString(fb.Screenshot),
			Encoding:    "base64",
			ContentType: "image/jpeg",
		}}
	}
	return opts, nil
}

func (e *FeedbackCreatedEvent) AppNotificationTemplate(userID string) *AppNotificationDraft {
	return nil
}

func (e *FeedbackCreatedEvent) PushNotificationTemplate() *PushPayload {
	return nil
}

func (e *FeedbackCreatedEvent) HistoryTemplate() *HistoryLine {
	return nil
}
