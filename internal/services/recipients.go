package services

import (
	"github.com/google/uuid"

	"scipress-events/internal/events"
)

// notificationRecipients resolves which user inboxes an event targets.
// The payload already carries every profile needed, so resolution is a
// pure switch on the concrete event type. An empty result silences the
// in-app and push channels for this event.
func notificationRecipients(e events.Event) []uuid.UUID {
	switch data := e.DTO().Data.(type) {
	case events.DepositEventData:
		return []uuid.UUID{data.Owner.ID}
	case events.ReviewCreatedData:
		return []uuid.UUID{data.Owner.ID}
	case events.CommentCreatedData:
		return []uuid.UUID{data.Deposit.OwnerID}
	case events.CommentRepliedData:
		return []uuid.UUID{data.Parent.OwnerID}
	case events.CommunityEventData:
		if e.Type() == events.EventTypeCommunityAccepted {
			return []uuid.UUID{data.Publisher.ID}
		}
		return nil
	default:
		return nil
	}
}

// emailRecipient resolves the single address an event emails, or ""
// when the event has no email audience. Platform-facing events go to
// the admin inbox; the rest go to the profile the payload names.
func emailRecipient(e events.Event, adminEmail string) string {
	switch data := e.DTO().Data.(type) {
	case events.FeedbackCreatedData:
		return adminEmail
	case events.DepositEventData:
		return data.Owner.Email
	case events.ReviewCreatedData:
		return data.Owner.Email
	case events.ReviewInvitationData:
		return data.Invitation.Email
	case events.CommunityEventData:
		if e.Type() == events.EventTypeCommunitySubmitted {
			return adminEmail
		}
		return data.Publisher.Email
	case events.UserConfirmEmailData:
		return data.User.Email
	default:
		return ""
	}
}
