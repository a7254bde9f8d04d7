package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/CMPUT301F25quartz/quartz-events-sub000/internal/dto"
	"github.com/CMPUT301F25quartz/quartz-events-sub000/internal/models"
	appErrors "github.com/CMPUT301F25quartz/quartz-events-sub000/pkg/errors"
	"github.com/CMPUT301F25quartz/quartz-events-sub000/pkg/export"
)

type notificationLogReader interface {
	List(ctx context.Context, filter models.NotificationLogFilter) ([]models.NotificationLog, int, error)
}

type exportStorage interface {
	Save(filename string, data []byte) (string, error)
}

type urlSigner interface {
	Generate(exportID, relPath string) (string, time.Time, error)
	Parse(token string, allowExpired bool) (exportID, relPath string, expiresAt time.Time, err error)
}

// LogService serves the admin audit-log views and renders downloadable
// exports of them.
type LogService struct {
	logs      notificationLogReader
	csv       *export.CSVExporter
	pdf       *export.PDFExporter
	storage   exportStorage
	signer    urlSigner
	validator *validator.Validate
	logger    *zap.Logger
}

// NewLogService constructs the service.
func NewLogService(logs notificationLogReader, storage exportStorage, signer urlSigner, validate *validator.Validate, logger *zap.Logger) *LogService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogService{
		logs:      logs,
		csv:       export.NewCSVExporter(),
		pdf:       export.NewPDFExporter(),
		storage:   storage,
		signer:    signer,
		validator: validate,
		logger:    logger,
	}
}

// List returns one page of audit entries, newest first.
func (s *LogService) List(ctx context.Context, query dto.NotificationLogQuery) ([]models.NotificationLog, int, error) {
	filter := models.NotificationLogFilter{
		EventID:  query.EventID,
		Page:     query.Page,
		PageSize: query.PageSize,
	}
	if query.Audience != "" {
		audience := models.Audience(query.Audience)
		if !audience.Valid() && audience != models.AudienceRemoved {
			return nil, 0, appErrors.Clone(appErrors.ErrValidation, "unknown audience filter")
		}
		filter.Audience = &audience
	}

	logs, total, err := s.logs.List(ctx, filter)
	if err != nil {
		return nil, 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list notification logs")
	}
	return logs, total, nil
}

var exportHeaders = []string{"timestamp", "event", "audience", "recipients", "sender", "message"}

// Export renders the matching audit entries to CSV or PDF, stores the file,
// and returns a signed download token.
func (s *LogService) Export(ctx context.Context, req dto.ExportLogsRequest) (*dto.ExportResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid export request")
	}

	logs, _, err := s.logs.List(ctx, models.NotificationLogFilter{EventID: req.EventID, PageSize: 100})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load logs for export")
	}

	dataset := export.Dataset{Headers: exportHeaders, Rows: make([]map[string]string, 0, len(logs))}
	for _, log := range logs {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"timestamp":  log.Timestamp.UTC().Format(time.RFC3339),
			"event":      log.EventTitle,
			"audience":   string(log.Audience),
			"recipients": strconv.Itoa(log.RecipientCount),
			"sender":     log.SenderID,
			"message":    log.Message,
		})
	}

	exportID := uuid.NewString()
	var rendered []byte
	switch req.Format {
	case "pdf":
		rendered, err = s.pdf.Render(dataset, "Notification Logs")
	default:
		rendered, err = s.csv.Render(dataset)
	}
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}

	filename := fmt.Sprintf("notification-logs/%s.%s", exportID, req.Format)
	relPath, err := s.storage.Save(filename, rendered)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store export")
	}

	token, expiresAt, err := s.signer.Generate(exportID, relPath)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to sign export url")
	}

	s.logger.Info("audit export rendered",
		zap.String("export_id", exportID),
		zap.String("format", req.Format),
		zap.Int("entries", len(logs)),
	)
	return &dto.ExportResponse{
		ExportID:  exportID,
		Filename:  relPath,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// ResolveDownload validates a signed token and returns the stored file path.
func (s *LogService) ResolveDownload(token string) (string, error) {
	_, relPath, _, err := s.signer.Parse(token, false)
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrUnauthorized.Code, appErrors.ErrUnauthorized.Status, "invalid download token")
	}
	return relPath, nil
}
