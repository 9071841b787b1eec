package events

import (
	"encoding/json"
	"fmt"

	scipress_errors "scipress-events/pkg/errors"
)

// Decode reconstructs a typed event from its wire payload. Unknown
// kinds are rejected; payloads missing required fields fail through
// the event constructors.
func Decode(t EventType, payload []byte) (Event, error) {
	switch t {
	case EventTypeFeedbackCreated:
		var d FeedbackCreatedData
		if err := json.Unmarshal(payload, &d); err != nil {
			return nil, err
		}
		return NewFeedbackCreatedEvent(d)
	case EventTypeDepositSubmitted:
		var d DepositEventData
		if err := json.Unmarshal(payload, &d); err != nil {
			return nil, err
		}
		return NewDepositSubmittedEvent(d)
	case EventTypeDepositAccepted:
		var d DepositEventData
		if err := json.Unmarshal(payload, &d); err != nil {
			return nil, err
		}
		return NewDepositAcceptedEvent(d)
	case EventTypeDepositPublished:
		var d DepositEventData
		if err := json.Unmarshal(payload, &d); err != nil {
			return nil, err
		}
		return NewDepositPublishedEvent(d)
	case EventTypeReviewCreated:
		var d ReviewCreatedData
		if err := json.Unmarshal(payload, &d); err != nil {
			return nil, err
		}
		return NewReviewCreatedEvent(d)
	case EventTypeReviewInvitationCreated:
		var d ReviewInvitationData
		if err := json.Unmarshal(payload, &d); err != nil {
			return nil, err
		}
		return NewReviewInvitationEvent(d)
	case EventTypeCommentCreated:
		var d CommentCreatedData
		if err := json.Unmarshal(payload, &d); err != nil {
			return nil, err
		}
		return NewCommentCreatedEvent(d)
	case EventTypeCommentReplied:
		var d CommentRepliedData
		if err := json.Unmarshal(payload, &d); err != nil {
			return nil, err
		}
		return NewCommentRepliedEvent(d)
	case EventTypeCommunitySubmitted:
		var d CommunityEventData
		if err := json.Unmarshal(payload, &d); err != nil {
			return nil, err
		}
		return NewCommunitySubmittedEvent(d)
	case EventTypeCommunityAccepted:
		var d CommunityEventData
		if err := json.Unmarshal(payload, &d); err != nil {
			return nil, err
		}
		return NewCommunityAcceptedEvent(d)
	case EventTypeUserConfirmEmail:
		var d UserConfirmEmailData
		if err := json.Unmarshal(payload, &d); err != nil {
			return nil, err
		}
		return NewUserConfirmEmailEvent(d)
	}
	return nil, fmt.Errorf("%w: unknown event type %q", scipress_errors.ErrInvalidInput, t)
}
