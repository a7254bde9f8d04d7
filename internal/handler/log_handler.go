package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CMPUT301F25quartz/quartz-events-sub000/internal/dto"
	"github.com/CMPUT301F25quartz/quartz-events-sub000/internal/models"
	appErrors "github.com/CMPUT301F25quartz/quartz-events-sub000/pkg/errors"
	"github.com/CMPUT301F25quartz/quartz-events-sub000/pkg/response"
)

type logReader interface {
	List(ctx context.Context, query dto.NotificationLogQuery) ([]models.NotificationLog, int, error)
	Export(ctx context.Context, req dto.ExportLogsRequest) (*dto.ExportResponse, error)
	ResolveDownload(token string) (string, error)
}

type exportOpener interface {
	Path(filename string) string
}

// LogHandler exposes the admin audit-log endpoints.
type LogHandler struct {
	logs    logReader
	exports exportOpener
}

// NewLogHandler constructs the handler.
func NewLogHandler(logs logReader, exports exportOpener) *LogHandler {
	return &LogHandler{logs: logs, exports: exports}
}

// List handles GET /admin/notification-logs.
func (h *LogHandler) List(c *gin.Context) {
	var query dto.NotificationLogQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid query"))
		return
	}

	logs, total, err := h.logs.List(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, logs, &models.Pagination{
		Page:       query.Page,
		PageSize:   query.PageSize,
		TotalCount: total,
	})
}

// Export handles POST /admin/notification-logs/export.
func (h *LogHandler) Export(c *gin.Context) {
	var req dto.ExportLogsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid request body"))
		return
	}

	resp, err := h.logs.Export(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, resp)
}

// Download handles GET /admin/notification-logs/export/download. The token
// query parameter carries the signed reference; no session is required so
// the link can be handed off.
func (h *LogHandler) Download(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "token required"))
		return
	}

	relPath, err := h.logs.ResolveDownload(token)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.FileAttachment(h.exports.Path(relPath), relPath)
}
