package events

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scipress-events/internal/domain/feedback"
	scipress_errors "scipress-events/pkg/errors"
)

func TestNewFeedbackCreatedEventRequiresFeedback(t *testing.T) {
	_, err := NewFeedbackCreatedEvent(FeedbackCreatedData{})
	require.Error(t, err)
	assert.ErrorIs(t, err, scipress_errors.ErrMissingEventData)
}

func TestFeedbackEmailTemplate(t *testing.T) {
	screenshot := []byte{0xff, 0xd8, 0xff, 0xe0, 0x00, 0x10}
	ev, err := NewFeedbackCreatedEvent(FeedbackCreatedData{
		Feedback: &feedback.Feedback{
			Email:       "visitor@example.org",
			Description: "The submit button does nothing",
			Data:        map[string]interface{}{"browser": "firefox"},
			Screenshot:  screenshot,
		},
	})
	require.NoError(t, err)

	opts, err := ev.EmailTemplate(`<div>{{.CONTENT}}</div>`, true)
	require.NoError(t, err)
	require.NotNil(t, opts)

	assert.Equal(t, "New feedback received", opts.Subject)
	assert.Contains(t, opts.HTML, "Email: visitor@example.org")
	assert.Contains(t, opts.HTML, "Description: The submit button does nothing")
	assert.Contains(t, opts.HTML, "firefox")

	require.Len(t, opts.Attachments, 1)
	att := opts.Attachments[0]
	assert.Equal(t, "screenshot.jpeg", att.Filename)
	assert.Equal(t, "base64", att.Encoding)
	assert.Equal(t, "image/jpeg", att.ContentType)
	decoded, err := base64.StdEncoding.DecodeString(att.Content)
	require.NoError(t, err)
	assert.Equal(t, screenshot, decoded)
}

func TestFeedbackEmailTemplateWithoutScreenshot(t *testing.T) {
	ev, err := NewFeedbackCreatedEvent(FeedbackCreatedData{
		Feedback: &feedback.Feedback{Description: "no screenshot here"},
	})
	require.NoError(t, err)

	opts, err := ev.EmailTemplate(`{{.CONTENT}}`, true)
	require.NoError(t, err)
	require.NotNil(t, opts)
	assert.Empty(t, opts.Attachments)
}

func TestFeedbackEmailTemplateEscapesDescription(t *testing.T) {
	ev, err := NewFeedbackCreatedEvent(FeedbackCreatedData{
		Feedback: &feedback.Feedback{Description: `<script>alert("x")</script>`},
	})
	require.NoError(t, err)

	opts, err := ev.EmailTemplate(`{{.CONTENT}}`, true)
	require.NoError(t, err)
	assert.NotContains(t, opts.HTML, "<script>")
}

func TestFeedbackOtherChannelsAreSilent(t *testing.T) {
	ev := newTestFeedbackEvent(t)

	assert.Nil(t, ev.AppNotificationTemplate("some-user"))
	assert.Nil(t, ev.PushNotificationTemplate())
	assert.Nil(t, ev.HistoryTemplate())
	assert.Equal(t, ScopeSystem, ev.Scope())
}

func TestFeedbackDTOIsStable(t *testing.T) {
	ev := newTestFeedbackEvent(t)

	first := ev.DTO()
	second := ev.DTO()
	assert.Equal(t, first, second)
	assert.Equal(t, EventTypeFeedbackCreated, first.EventType)
}
