package events

// Event type constants follow the format: domain.action

// Feedback events
const (
	EventTypeFeedbackCreated EventType = "feedback.created"
)

// Deposit (publication) events
const (
	EventTypeDepositSubmitted EventType = "deposit.submitted"
	EventTypeDepositAccepted  EventType = "deposit.accepted"
	EventTypeDepositPublished EventType = "deposit.published"
)

// Review events
const (
	EventTypeReviewCreated           EventType = "review.created"
	EventTypeReviewInvitationCreated EventType = "review.invitation_created"
)

// Comment events
const (
	EventTypeCommentCreated EventType = "comment.created"
	EventTypeCommentReplied EventType = "comment.replied"
)

// Community events
const (
	EventTypeCommunitySubmitted EventType = "community.submitted"
	EventTypeCommunityAccepted  EventType = "community.accepted"
)

// User events
const (
	EventTypeUserConfirmEmail EventType = "user.confirm_email"
)

// Redis channel prefixes for live notification delivery
const (
	ChannelPrefixUser = "channel:user:"
)
