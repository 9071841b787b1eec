package handler

import (
	"encoding/base64"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"scipress-events/internal/domain/feedback"
	"scipress-events/internal/services"
	"scipress-events/internal/transport/httpdto"
)

type FeedbackHandler struct {
	service *services.FeedbackService
}

func NewFeedbackHandler(service *services.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{service: service}
}

// Create accepts the public feedback widget submission. No auth: the
// widget works for anonymous visitors.
func (h *FeedbackHandler) Create(c *gin.Context) {
	var req httpdto.CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid request", "INVALID_REQUEST"))
		return
	}

	fb := &feedback.Feedback{
		Email:       req.Email,
		Description: req.Description,
		Data:        req.Data,
	}
	if req.Screenshot != "" {
		raw, err := base64.StdEncoding.DecodeString(req.Screenshot)
		if err != nil {
			c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid screenshot encoding", "INVALID_REQUEST"))
			return
		}
		fb.Screenshot = raw
	}

	if err := h.service.Create(c.Request.Context(), fb); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse(err.Error(), "REQUEST_FAILED"))
		return
	}

	c.JSON(http.StatusCreated, httpdto.NewSuccessResponse(httpdto.CreateFeedbackResponse{
		ID:        fb.ID.String(),
		CreatedAt: fb.CreatedAt.Format(time.RFC3339),
	}))
}
