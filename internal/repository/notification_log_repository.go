package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/CMPUT301F25quartz/quartz-events-sub000/internal/models"
)

// NotificationLogRepository persists the global admin audit log.
type NotificationLogRepository struct {
	db *sqlx.DB
}

// NewNotificationLogRepository creates the repository.
func NewNotificationLogRepository(db *sqlx.DB) *NotificationLogRepository {
	return &NotificationLogRepository{db: db}
}

// Create appends one log entry. Entries are never updated or deleted.
func (r *NotificationLogRepository) Create(ctx context.Context, log *models.NotificationLog) error {
	if log.ID == "" {
		log.ID = uuid.NewString()
	}
	if log.Type == "" {
		log.Type = "broadcast"
	}
	const query = `INSERT INTO notification_logs (id, event_id, event_title, message, audience, recipient_count, type, sender_id, timestamp)
VALUES (:id, :event_id, :event_title, :message, :audience, :recipient_count, :type, :sender_id, NOW())`
	if _, err := r.db.NamedExecContext(ctx, query, log); err != nil {
		return fmt.Errorf("create notification log: %w", err)
	}
	return nil
}

// List returns log entries matching the filter, newest first.
func (r *NotificationLogRepository) List(ctx context.Context, filter models.NotificationLogFilter) ([]models.NotificationLog, int, error) {
	where := []string{"1=1"}
	args := []interface{}{}
	if filter.EventID != "" {
		where = append(where, fmt.Sprintf("event_id = $%d", len(args)+1))
		args = append(args, filter.EventID)
	}
	if filter.Audience != nil {
		where = append(where, fmt.Sprintf("audience = $%d", len(args)+1))
		args = append(args, *filter.Audience)
	}
	whereClause := strings.Join(where, " AND ")

	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 || size > 100 {
		size = 20
	}
	offset := (page - 1) * size

	query := fmt.Sprintf(`SELECT id, event_id, event_title, message, audience, recipient_count, type, sender_id, timestamp
FROM notification_logs WHERE %s
ORDER BY timestamp DESC
LIMIT %d OFFSET %d`, whereClause, size, offset)
	var logs []models.NotificationLog
	if err := r.db.SelectContext(ctx, &logs, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list notification logs: %w", err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM notification_logs WHERE %s", whereClause)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count notification logs: %w", err)
	}
	return logs, total, nil
}
