package templates

import "scipress-events/internal/domain/review"

// InvitationVars projects a review invitation into template variables.
// The deadline resolves to "" when no date limit was set.
func InvitationVars(inv *review.Invitation, templateName, baseURL string) Vars {
	deadline := ""
	if inv.DateLimit != nil {
		deadline = inv.DateLimit.Format("2 January 2006")
	}
	return Vars{
		"INVITATION_EMAIL":    inv.Email,
		"INVITATION_DEADLINE": deadline,
		"INVITATION_LINK":     trackedLink(baseURL, "/invitations/"+inv.ID.String(), templateName),
	}
}
