package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"scipress-events/internal/repository"
	"scipress-events/internal/services"
	"scipress-events/internal/transport/httpdto"
)

type NotificationHandler struct {
	repo repository.NotificationRepository
}

func NewNotificationHandler(repo repository.NotificationRepository) *NotificationHandler {
	return &NotificationHandler{repo: repo}
}

// List returns the authenticated user's inbox, newest first.
func (h *NotificationHandler) List(c *gin.Context) {
	userID, ok := services.UserIDFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("unauthorized", "UNAUTHORIZED"))
		return
	}

	limit, _ := strconv.Atoi(c.Query("limit"))
	unreadOnly := c.Query("unread") == "true"

	items, err := h.repo.ListByUser(c.Request.Context(), userID, unreadOnly, limit)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse(err.Error(), "REQUEST_FAILED"))
		return
	}
	unread, err := h.repo.CountUnread(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse(err.Error(), "REQUEST_FAILED"))
		return
	}

	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(httpdto.ListNotificationsResponse{
		Notifications: httpdto.FromNotificationSlice(items),
		Unread:        unread,
	}))
}

// MarkRead flips one notification to read. Ownership is enforced in
// the repository query.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID, ok := services.UserIDFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("unauthorized", "UNAUTHORIZED"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid notification id", "INVALID_REQUEST"))
		return
	}

	if err := h.repo.MarkRead(c.Request.Context(), id, userID); err != nil {
		c.JSON(http.StatusNotFound, httpdto.NewErrorResponse("notification not found", "NOT_FOUND"))
		return
	}

	c.JSON(http.StatusOK, httpdto.NewSuccessResponse[any](nil))
}
