package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"scipress-events/internal/repository"
	"scipress-events/internal/transport/httpdto"
)

type HistoryHandler struct {
	repo repository.HistoryRepository
}

func NewHistoryHandler(repo repository.HistoryRepository) *HistoryHandler {
	return &HistoryHandler{repo: repo}
}

// ListByResource returns the audit log of one deposit or community.
func (h *HistoryHandler) ListByResource(c *gin.Context) {
	resourceType := c.Param("type")
	if resourceType != "deposit" && resourceType != "community" {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid resource type", "INVALID_REQUEST"))
		return
	}

	resourceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid resource id", "INVALID_REQUEST"))
		return
	}

	items, err := h.repo.ListByResource(c.Request.Context(), resourceType, resourceID)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse(err.Error(), "REQUEST_FAILED"))
		return
	}

	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(httpdto.ListHistoryResponse{
		Entries: httpdto.FromHistoryEntrySlice(items),
	}))
}
