package templates

import "scipress-events/internal/domain/review"

// ReviewVars projects a review into template variables.
func ReviewVars(r *review.Review, templateName, baseURL string) Vars {
	return Vars{
		"REVIEW_KIND":     string(r.Kind),
		"REVIEW_DECISION": string(r.Decision),
		"REVIEW_COMMENTS": r.Comments,
		"REVIEW_LINK":     trackedLink(baseURL, "/reviews/"+r.ID.String()+"/read", templateName),
	}
}
