package services

// defaultTemplateSources maps an event's template name to the HTML
// source it is rendered with. Sources use the uppercase substitution
// keys the template projections emit; operators can override any entry
// via the service constructor.
func defaultTemplateSources() map[string]string {
	const layoutOpen = `<div style="font-family:sans-serif;max-width:600px;margin:0 auto">` +
		`<img src="{{.LOGO_URL}}" alt="{{.PLATFORM_NAME}}" height="40"/>`
	const layoutClose = `<p style="color:#888;font-size:12px">{{.PLATFORM_NAME}} &middot; <a href="{{.BASE_URL}}">{{.BASE_URL}}</a></p></div>`

	return map[string]string{
		"feedback-created": layoutOpen +
			`<h2>New feedback received</h2>{{.CONTENT}}` + layoutClose,

		"deposit-submitted": layoutOpen +
			`<p>Dear {{.USER_FULLNAME}},</p>` +
			`<p>Your publication <a href="{{.PUBLICATION_LINK}}">{{.PUBLICATION_TITLE}}</a> ` +
			`has been submitted to <a href="{{.COMMUNITY_LINK}}">{{.COMMUNITY_NAME}}</a>.</p>` +
			`<p>You will be notified when the moderators reach a decision.</p>` + layoutClose,

		"deposit-accepted": layoutOpen +
			`<p>Dear {{.USER_FULLNAME}},</p>` +
			`<p>Your publication <a href="{{.PUBLICATION_LINK}}">{{.PUBLICATION_TITLE}}</a> ` +
			`has been accepted into review by <a href="{{.COMMUNITY_LINK}}">{{.COMMUNITY_NAME}}</a>.</p>` + layoutClose,

		"deposit-published": layoutOpen +
			`<p>Dear {{.USER_FULLNAME}},</p>` +
			`<p>Your publication <a href="{{.PUBLICATION_LINK}}">{{.PUBLICATION_TITLE}}</a> ` +
			`is now published in <a href="{{.COMMUNITY_LINK}}">{{.COMMUNITY_NAME}}</a>.</p>` + layoutClose,

		"review-created": layoutOpen +
			`<p>Dear {{.USER_FULLNAME}},</p>` +
			`<p>A new review has been posted on your publication ` +
			`<a href="{{.PUBLICATION_LINK}}">{{.PUBLICATION_TITLE}}</a>: ` +
			`<a href="{{.REVIEW_LINK}}">read the review</a>.</p>` + layoutClose,

		"review-invitation": layoutOpen +
			`<p>Hello,</p>` +
			`<p>{{.USER_FULLNAME}} has invited you to review the publication ` +
			`<a href="{{.PUBLICATION_LINK}}">{{.PUBLICATION_TITLE}}</a> ` +
			`for <a href="{{.COMMUNITY_LINK}}">{{.COMMUNITY_NAME}}</a>.</p>` +
			`<p><a href="{{.INVITATION_LINK}}">Accept or decline the invitation</a>.</p>` + layoutClose,

		"community-submitted": layoutOpen +
			`<h2>Community submitted for approval</h2>` +
			`<p>{{.USER_FULLNAME}} submitted the community ` +
			`<a href="{{.COMMUNITY_LINK}}">{{.COMMUNITY_NAME}}</a> for approval.</p>` + layoutClose,

		"community-accepted": layoutOpen +
			`<p>Dear {{.USER_FULLNAME}},</p>` +
			`<p>Your community <a href="{{.COMMUNITY_LINK}}">{{.COMMUNITY_NAME}}</a> ` +
			`has been accepted. You can now receive submissions.</p>` + layoutClose,

		"confirm-email": layoutOpen +
			`<p>Dear {{.USER_FULLNAME}},</p>` +
			`<p>Enter this code to confirm your email address:</p>` +
			`<h2 style="letter-spacing:4px">{{.CONFIRMATION_CODE}}</h2>` + layoutClose,
	}
}
