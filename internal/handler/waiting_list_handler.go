package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CMPUT301F25quartz/quartz-events-sub000/internal/middleware"
	"github.com/CMPUT301F25quartz/quartz-events-sub000/internal/models"
	appErrors "github.com/CMPUT301F25quartz/quartz-events-sub000/pkg/errors"
	"github.com/CMPUT301F25quartz/quartz-events-sub000/pkg/response"
)

type waitingListManager interface {
	List(ctx context.Context, eventID string) ([]models.WaitingListEntry, error)
	Join(ctx context.Context, eventID, entrantID string) error
	Leave(ctx context.Context, eventID, entrantID string) error
	Accept(ctx context.Context, eventID, entrantID string) error
	Decline(ctx context.Context, eventID, entrantID string) error
}

// WaitingListHandler exposes entrant membership endpoints. The entrant is
// always the authenticated caller; organizers read the list through List.
type WaitingListHandler struct {
	waitingList waitingListManager
}

// NewWaitingListHandler constructs the handler.
func NewWaitingListHandler(waitingList waitingListManager) *WaitingListHandler {
	return &WaitingListHandler{waitingList: waitingList}
}

// List handles GET /events/:id/waiting-list.
func (h *WaitingListHandler) List(c *gin.Context) {
	entries, err := h.waitingList.List(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entries, nil)
}

// Join handles POST /events/:id/waiting-list.
func (h *WaitingListHandler) Join(c *gin.Context) {
	entrantID, ok := callerID(c)
	if !ok {
		return
	}
	if err := h.waitingList.Join(c.Request.Context(), c.Param("id"), entrantID); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, gin.H{"event_id": c.Param("id"), "entrant_id": entrantID})
}

// Leave handles DELETE /events/:id/waiting-list.
func (h *WaitingListHandler) Leave(c *gin.Context) {
	entrantID, ok := callerID(c)
	if !ok {
		return
	}
	if err := h.waitingList.Leave(c.Request.Context(), c.Param("id"), entrantID); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Accept handles POST /events/:id/waiting-list/accept.
func (h *WaitingListHandler) Accept(c *gin.Context) {
	h.respond(c, h.waitingList.Accept)
}

// Decline handles POST /events/:id/waiting-list/decline.
func (h *WaitingListHandler) Decline(c *gin.Context) {
	h.respond(c, h.waitingList.Decline)
}

func (h *WaitingListHandler) respond(c *gin.Context, fn func(ctx context.Context, eventID, entrantID string) error) {
	entrantID, ok := callerID(c)
	if !ok {
		return
	}
	if err := fn(c.Request.Context(), c.Param("id"), entrantID); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

func callerID(c *gin.Context) (string, bool) {
	claims := middleware.ClaimsFrom(c)
	if claims == nil || claims.UserID == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, ""))
		return "", false
	}
	return claims.UserID, true
}
