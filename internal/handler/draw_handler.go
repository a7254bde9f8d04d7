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

type drawRunner interface {
	RunDraw(ctx context.Context, eventID string, req dto.RunDrawRequest, actor *models.JWTClaims) (*dto.DrawResponse, error)
	DrawReplacement(ctx context.Context, eventID string, actor *models.JWTClaims) (*dto.DrawResponse, error)
}

// DrawHandler exposes the lottery endpoints.
type DrawHandler struct {
	draws drawRunner
}

// NewDrawHandler constructs the handler.
func NewDrawHandler(draws drawRunner) *DrawHandler {
	return &DrawHandler{draws: draws}
}

// RunDraw handles POST /events/:id/draw.
func (h *DrawHandler) RunDraw(c *gin.Context) {
	var req dto.RunDrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid request body"))
		return
	}

	resp, err := h.draws.RunDraw(c.Request.Context(), c.Param("id"), req, middleware.ClaimsFrom(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resp, nil)
}

// DrawReplacement handles POST /events/:id/draw/replacement.
func (h *DrawHandler) DrawReplacement(c *gin.Context) {
	resp, err := h.draws.DrawReplacement(c.Request.Context(), c.Param("id"), middleware.ClaimsFrom(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resp, nil)
}
