package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/rahulrai19/Sentiment-Analysis-WebApp/errors"
	"github.com/rahulrai19/Sentiment-Analysis-WebApp/services"
	"github.com/rahulrai19/Sentiment-Analysis-WebApp/types"
)

// EventHandler handles the event projection endpoints.
type EventHandler struct {
	feedbackService *services.FeedbackService
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(feedbackService *services.FeedbackService) *EventHandler {
	return &EventHandler{feedbackService: feedbackService}
}

// ListEvents godoc
// @Summary      List events
// @Description  Distinct event names across stored feedback, sorted ascending
// @Tags         events
// @Produce      json
// @Success      200  {object}  types.EventListResponse
// @Failure      500  {object}  types.ErrorResponse
// @Router       /api/events [get]
func (h *EventHandler) ListEvents(c *gin.Context) {
	events, err := h.feedbackService.ListEvents(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, types.EventListResponse{Events: events})
}

// CreateEvent godoc
// @Summary      Create event
// @Description  Registers an event name so it appears in listings before any feedback arrives
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        body  body      types.EventCreate  true  "Event payload"
// @Success      201   {object}  types.EventCreateResponse
// @Failure      400   {object}  types.ErrorResponse
// @Failure      409   {object}  types.ErrorResponse
// @Failure      500   {object}  types.ErrorResponse
// @Router       /api/events [post]
// @Security     ApiKeyAuth
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req types.EventCreate
	if !bindJSONOrError(c, &req) {
		return
	}

	if err := h.feedbackService.CreateEvent(c.Request.Context(), req.Name); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, types.EventCreateResponse{
		Message: "Event created",
		Event:   req.Name,
	})
}

// DeleteEvent godoc
// @Summary      Delete event
// @Description  Deletes every feedback record attached to the named event
// @Tags         events
// @Produce      json
// @Param        event_name  path      string  true  "Event name"
// @Success      200         {object}  types.MessageResponse
// @Failure      404         {object}  types.ErrorResponse
// @Failure      500         {object}  types.ErrorResponse
// @Router       /api/events/{event_name} [delete]
// @Security     ApiKeyAuth
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	name := c.Param("event_name")
	if name == "" {
		_ = c.Error(apperrors.ValidationFailed("invalid_event_name", "event name must not be blank"))
		return
	}

	if _, err := h.feedbackService.DeleteEvent(c.Request.Context(), name); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, types.MessageResponse{Message: "Event deleted"})
}
