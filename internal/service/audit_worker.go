package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/CMPUT301F25quartz/quartz-events-sub000/internal/models"
	"github.com/CMPUT301F25quartz/quartz-events-sub000/pkg/jobs"
)

type notificationLogWriter interface {
	Create(ctx context.Context, log *models.NotificationLog) error
}

// AuditWorker persists admin notification logs off the notify hot path.
// Writes are best-effort: the queue retries a few times, then drops the
// record with an error log. Notify outcomes never depend on it.
type AuditWorker struct {
	queue  *jobs.Queue
	logs   notificationLogWriter
	logger *zap.Logger
}

// NewAuditWorker builds the worker and its backing queue.
func NewAuditWorker(logs notificationLogWriter, cfg jobs.QueueConfig, logger *zap.Logger) *AuditWorker {
	if logger == nil {
		logger = zap.NewNop()
	}
	w := &AuditWorker{logs: logs, logger: logger}
	cfg.Logger = logger
	w.queue = jobs.NewQueue("notification-audit", w.handle, cfg)
	return w
}

// Start launches the queue workers.
func (w *AuditWorker) Start(ctx context.Context) { w.queue.Start(ctx) }

// Stop drains the workers.
func (w *AuditWorker) Stop() { w.queue.Stop() }

// Log enqueues one audit record. Failures are logged and swallowed.
func (w *AuditWorker) Log(log models.NotificationLog) {
	if err := w.queue.Enqueue(jobs.Job{
		ID:      uuid.NewString(),
		Type:    "notification_log",
		Payload: log,
	}); err != nil {
		w.logger.Warn("audit log dropped", zap.String("event_id", log.EventID), zap.Error(err))
	}
}

func (w *AuditWorker) handle(ctx context.Context, job jobs.Job) error {
	log, ok := job.Payload.(models.NotificationLog)
	if !ok {
		return fmt.Errorf("unexpected audit payload %T", job.Payload)
	}
	if err := w.logs.Create(ctx, &log); err != nil {
		return fmt.Errorf("persist notification log: %w", err)
	}
	return nil
}
