package httpdto

// CreateFeedbackRequest is used for POST /api/feedback. Screenshot is
// base64-encoded JPEG bytes; Data carries arbitrary client context
// (browser, viewport, current page).
type CreateFeedbackRequest struct {
	Email       string                 `json:"email,omitempty"`
	Description string                 `json:"description" binding:"required"`
	Data        map[string]interface{} `json:"data,omitempty"`
	Screenshot  string                 `json:"screenshot,omitempty"`
}

// CreateFeedbackResponse is returned after the feedback is stored
type CreateFeedbackResponse struct {
	ID        string `json:"id"`
	CreatedAt string `json:"created_at"`
}
