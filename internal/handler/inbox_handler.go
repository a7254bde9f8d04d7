package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/CMPUT301F25quartz/quartz-events-sub000/internal/dto"
	"github.com/CMPUT301F25quartz/quartz-events-sub000/internal/models"
	"github.com/CMPUT301F25quartz/quartz-events-sub000/pkg/response"
)

type inboxReader interface {
	List(ctx context.Context, userID string, page, pageSize int) ([]dto.InboxItemView, int, error)
	UnreadCount(ctx context.Context, userID string) (int, error)
	MarkRead(ctx context.Context, userID, inboxID string) error
}

// InboxHandler exposes the entrant inbox endpoints.
type InboxHandler struct {
	inbox inboxReader
}

// NewInboxHandler constructs the handler.
func NewInboxHandler(inbox inboxReader) *InboxHandler {
	return &InboxHandler{inbox: inbox}
}

// List handles GET /inbox.
func (h *InboxHandler) List(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	views, total, err := h.inbox.List(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, views, &models.Pagination{
		Page:       page,
		PageSize:   pageSize,
		TotalCount: total,
	})
}

// UnreadCount handles GET /inbox/unread.
func (h *InboxHandler) UnreadCount(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	count, err := h.inbox.UnreadCount(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.UnreadCountResponse{UserID: userID, Unread: count}, nil)
}

// MarkRead handles POST /inbox/:id/read.
func (h *InboxHandler) MarkRead(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	if err := h.inbox.MarkRead(c.Request.Context(), userID, c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
