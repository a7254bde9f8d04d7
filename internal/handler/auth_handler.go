package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CMPUT301F25quartz/quartz-events-sub000/internal/models"
	appErrors "github.com/CMPUT301F25quartz/quartz-events-sub000/pkg/errors"
	"github.com/CMPUT301F25quartz/quartz-events-sub000/pkg/response"
)

type authenticator interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)
}

// AuthHandler exposes the login endpoint.
type AuthHandler struct {
	auth authenticator
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(auth authenticator) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid request body"))
		return
	}

	resp, err := h.auth.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resp, nil)
}
