package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CMPUT301F25quartz/quartz-events-sub000/internal/models"
	appErrors "github.com/CMPUT301F25quartz/quartz-events-sub000/pkg/errors"
	"github.com/CMPUT301F25quartz/quartz-events-sub000/pkg/response"
)

type eventManager interface {
	GetByID(ctx context.Context, id string) (*models.Event, error)
	Create(ctx context.Context, event *models.Event, organizerID string) error
	ListByOrganizer(ctx context.Context, organizerID string) ([]models.Event, error)
}

// EventHandler exposes the minimal event endpoints the lottery flows need.
type EventHandler struct {
	events eventManager
}

// NewEventHandler constructs the handler.
func NewEventHandler(events eventManager) *EventHandler {
	return &EventHandler{events: events}
}

// Get handles GET /events/:id.
func (h *EventHandler) Get(c *gin.Context) {
	event, err := h.events.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "event not found"))
		return
	}
	response.JSON(c, http.StatusOK, event, nil)
}

// Create handles POST /events.
func (h *EventHandler) Create(c *gin.Context) {
	organizerID, ok := callerID(c)
	if !ok {
		return
	}

	var event models.Event
	if err := c.ShouldBindJSON(&event); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid request body"))
		return
	}

	if err := h.events.Create(c.Request.Context(), &event, organizerID); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, event)
}

// ListMine handles GET /events.
func (h *EventHandler) ListMine(c *gin.Context) {
	organizerID, ok := callerID(c)
	if !ok {
		return
	}

	events, err := h.events.ListByOrganizer(c.Request.Context(), organizerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, events, nil)
}
