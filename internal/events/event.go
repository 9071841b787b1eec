package events

import "time"

// EventType identifies an event kind in domain.action format
type EventType string

// Scope discriminates events concerning the platform itself from
// events happening inside a specific community.
type Scope string

const (
	ScopeSystem    Scope = "system"
	ScopeCommunity Scope = "community"
)

// EventDTO is the minimal persistable projection of an event: its
// kind plus the exact payload it was constructed with.
type EventDTO struct {
	EventType EventType   `json:"eventType"`
	Data      interface{} `json:"data"`
}

// Attachment describes an inline email attachment. Content is the
// base64 encoding of the raw bytes; the shape must match what the
// mail transport expects.
type Attachment struct {
	Filename    string `json:"filename"`
	Content     string `json:"content"`
	Encoding    string `json:"encoding"`
	ContentType string `json:"contentType"`
}

// EmailOptions is channel-ready email content
type EmailOptions struct {
	Subject     string       `json:"subject"`
	HTML        string       `json:"html"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

// AppNotificationDraft is the in-app notification content for one
// recipient, before persistence assigns it an identity.
type AppNotificationDraft struct {
	UserID string
	Title  string
	Body   string
	Icon   string
	Action string
}

// PushPayload is the Web Push notification body
type PushPayload struct {
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Icon  string            `json:"icon,omitempty"`
	Data  map[string]string `json:"data,omitempty"`
}

// HistoryLine is a single audit entry produced by an event
type HistoryLine struct {
	CreatedAt   time.Time
	Description string
}

// Event is the capability set every domain event implements. Each
// concrete event owns its payload shape and its per-channel rendering
// policy; any channel method may return nil meaning "no content for
// this channel". Events are immutable after construction.
type Event interface {
	Type() EventType
	Scope() Scope

	// DTO is pure: same output for the same instance on every call,
	// carrying exactly the data given at construction.
	DTO() EventDTO

	// EmailTemplateName names the stored template source to render
	// with, or "" when the event never emails.
	EmailTemplateName() string

	// EmailTemplate renders channel-ready email content from a raw
	// template source. A nil result means no email for this event.
	// Missing optional payload fields are not errors; missing required
	// fields surface ErrMissingEventData.
	EmailTemplate(src string, strict bool) (*EmailOptions, error)

	AppNotificationTemplate(userID string) *AppNotificationDraft
	PushNotificationTemplate() *PushPayload
	HistoryTemplate() *HistoryLine
}
