package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CMPUT301F25quartz/quartz-events-sub000/internal/dto"
	"github.com/CMPUT301F25quartz/quartz-events-sub000/internal/middleware"
	"github.com/CMPUT301F25quartz/quartz-events-sub000/internal/models"
	appErrors "github.com/CMPUT301F25quartz/quartz-events-sub000/pkg/errors"
	"github.com/CMPUT301F25quartz/quartz-events-sub000/pkg/response"
)

type notifier interface {
	NotifyAudience(ctx context.Context, eventID string, req dto.NotifyAudienceRequest, actor *models.JWTClaims) (*dto.NotifyResponse, error)
	NotifySingle(ctx context.Context, eventID string, req dto.NotifySingleRequest, actor *models.JWTClaims) (*dto.NotifyResponse, error)
}

// NotificationHandler exposes the organizer-facing notify endpoints.
type NotificationHandler struct {
	notifier notifier
}

// NewNotificationHandler constructs the handler.
func NewNotificationHandler(notifier notifier) *NotificationHandler {
	return &NotificationHandler{notifier: notifier}
}

// NotifyAudience handles POST /events/:id/notifications.
func (h *NotificationHandler) NotifyAudience(c *gin.Context) {
	var req dto.NotifyAudienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid request body"))
		return
	}

	resp, err := h.notifier.NotifyAudience(c.Request.Context(), c.Param("id"), req, middleware.ClaimsFrom(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resp, nil)
}

// NotifySingle handles POST /events/:id/notifications/single.
func (h *NotificationHandler) NotifySingle(c *gin.Context) {
	var req dto.NotifySingleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid request body"))
		return
	}

	resp, err := h.notifier.NotifySingle(c.Request.Context(), c.Param("id"), req, middleware.ClaimsFrom(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resp, nil)
}
