package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"scipress-events/internal/events"
	"scipress-events/internal/repository"
	"scipress-events/internal/transport/httpdto"
	scipress_errors "scipress-events/pkg/errors"
)

// EventHandler ingests events from trusted backend services and
// exposes the durable event log.
type EventHandler struct {
	bus  *events.Bus
	repo repository.EventRepository
}

func NewEventHandler(bus *events.Bus, repo repository.EventRepository) *EventHandler {
	return &EventHandler{bus: bus, repo: repo}
}

// Ingest decodes and dispatches one event. Dispatch is asynchronous:
// a 202 only means the event was accepted, not that every channel
// succeeded.
func (h *EventHandler) Ingest(c *gin.Context) {
	var req httpdto.IngestEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid request", "INVALID_REQUEST"))
		return
	}

	ev, err := events.Decode(events.EventType(req.EventType), req.Payload)
	if err != nil {
		code := "INVALID_REQUEST"
		if errors.Is(err, scipress_errors.ErrMissingEventData) {
			code = "MISSING_EVENT_DATA"
		}
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse(err.Error(), code))
		return
	}

	h.bus.Publish(c.Request.Context(), ev)

	c.JSON(http.StatusAccepted, httpdto.NewSuccessResponse(httpdto.IngestEventResponse{
		EventType: string(ev.Type()),
		Scope:     string(ev.Scope()),
	}))
}

// ListRecords queries the event log by kind.
func (h *EventHandler) ListRecords(c *gin.Context) {
	eventType := c.Query("type")
	if eventType == "" {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("type is required", "INVALID_REQUEST"))
		return
	}
	limit, _ := strconv.Atoi(c.Query("limit"))

	items, err := h.repo.ListByType(c.Request.Context(), eventType, limit)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse(err.Error(), "REQUEST_FAILED"))
		return
	}

	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(httpdto.ListEventRecordsResponse{
		Events: httpdto.FromEventRecordSlice(items),
	}))
}
