package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/CMPUT301F25quartz/quartz-events-sub000/internal/models"
)

// InboxRepository persists the two inbox mirrors: event_inbox rows read by
// organizer tooling and user_inbox rows read by entrant clients. Both copies
// of an item share the same id so they can be correlated later.
type InboxRepository struct {
	db *sqlx.DB
}

// NewInboxRepository creates the repository.
func NewInboxRepository(db *sqlx.DB) *InboxRepository {
	return &InboxRepository{db: db}
}

const insertEventInbox = `INSERT INTO event_inbox (id, type, audience, event_id, event_title, recipient_id, message, include_poster, link_url, read, show_popup, broadcast_id, created_at)
VALUES (:id, :type, :audience, :event_id, :event_title, :recipient_id, :message, :include_poster, :link_url, :read, :show_popup, :broadcast_id, NOW())`

const insertUserInbox = `INSERT INTO user_inbox (id, type, audience, event_id, event_title, recipient_id, message, include_poster, link_url, read, show_popup, broadcast_id, created_at)
VALUES (:id, :type, :audience, :event_id, :event_title, :recipient_id, :message, :include_poster, :link_url, :read, :show_popup, :broadcast_id, NOW())`

// InsertBatch writes every item into both mirrors inside one transaction.
// The whole batch lands or none of it does; callers chunk their recipient
// lists so one transaction never exceeds the configured operation ceiling.
func (r *InboxRepository) InsertBatch(ctx context.Context, items []models.InboxItem) error {
	if len(items) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin inbox batch: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	for i := range items {
		if _, err := tx.NamedExecContext(ctx, insertEventInbox, &items[i]); err != nil {
			return fmt.Errorf("insert event inbox %s: %w", items[i].ID, err)
		}
		if _, err := tx.NamedExecContext(ctx, insertUserInbox, &items[i]); err != nil {
			return fmt.Errorf("insert user inbox %s: %w", items[i].ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit inbox batch: %w", err)
	}
	return nil
}

// ListForUser returns a user's inbox mirror, newest first.
func (r *InboxRepository) ListForUser(ctx context.Context, userID string, page, pageSize int) ([]models.InboxItem, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	query := fmt.Sprintf(`SELECT id, type, audience, event_id, event_title, recipient_id, message, include_poster, link_url, read, show_popup, broadcast_id, created_at
FROM user_inbox WHERE recipient_id = $1
ORDER BY created_at DESC
LIMIT %d OFFSET %d`, pageSize, offset)
	var items []models.InboxItem
	if err := r.db.SelectContext(ctx, &items, query, userID); err != nil {
		return nil, 0, fmt.Errorf("list user inbox: %w", err)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM user_inbox WHERE recipient_id = $1", userID); err != nil {
		return nil, 0, fmt.Errorf("count user inbox: %w", err)
	}
	return items, total, nil
}

// UnreadCount returns the number of unread items in a user's inbox.
func (r *InboxRepository) UnreadCount(ctx context.Context, userID string) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM user_inbox WHERE recipient_id = $1 AND read = FALSE", userID); err != nil {
		return 0, fmt.Errorf("count unread inbox: %w", err)
	}
	return count, nil
}

// MarkRead flips the read flag on both mirrors of one inbox item. The two
// copies are independent documents, so both updates ride one transaction.
func (r *InboxRepository) MarkRead(ctx context.Context, userID, inboxID string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin mark read: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	res, err := tx.ExecContext(ctx, "UPDATE user_inbox SET read = TRUE WHERE id = $1 AND recipient_id = $2", inboxID, userID)
	if err != nil {
		return fmt.Errorf("mark user inbox read: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("mark read result: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	if _, err := tx.ExecContext(ctx, "UPDATE event_inbox SET read = TRUE WHERE id = $1 AND recipient_id = $2", inboxID, userID); err != nil {
		return fmt.Errorf("mark event inbox read: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit mark read: %w", err)
	}
	return nil
}
