package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/CMPUT301F25quartz/quartz-events-sub000/internal/models"
)

// BroadcastRepository persists broadcast audit records.
type BroadcastRepository struct {
	db *sqlx.DB
}

// NewBroadcastRepository creates the repository.
func NewBroadcastRepository(db *sqlx.DB) *BroadcastRepository {
	return &BroadcastRepository{db: db}
}

// Create appends one broadcast record. The creation timestamp is assigned by
// the database so audit ordering does not depend on caller clocks.
func (r *BroadcastRepository) Create(ctx context.Context, broadcast *models.Broadcast) error {
	if broadcast.ID == "" {
		broadcast.ID = uuid.NewString()
	}
	const query = `INSERT INTO broadcasts (id, event_id, audience, message, include_poster, link_url, created_at)
VALUES ($1, $2, $3, $4, $5, $6, NOW())
RETURNING created_at`
	if err := r.db.QueryRowxContext(ctx, query,
		broadcast.ID,
		broadcast.EventID,
		broadcast.Audience,
		broadcast.Message,
		broadcast.IncludePoster,
		broadcast.LinkURL,
	).Scan(&broadcast.CreatedAt); err != nil {
		return fmt.Errorf("create broadcast: %w", err)
	}
	return nil
}

// GetByID returns a broadcast record by identifier.
func (r *BroadcastRepository) GetByID(ctx context.Context, id string) (*models.Broadcast, error) {
	const query = `SELECT id, event_id, audience, message, include_poster, link_url, created_at
FROM broadcasts WHERE id = $1`
	var broadcast models.Broadcast
	if err := r.db.GetContext(ctx, &broadcast, query, id); err != nil {
		return nil, err
	}
	return &broadcast, nil
}

// ListByEvent returns the broadcast history for one event, newest first.
func (r *BroadcastRepository) ListByEvent(ctx context.Context, eventID string) ([]models.Broadcast, error) {
	const query = `SELECT id, event_id, audience, message, include_poster, link_url, created_at
FROM broadcasts WHERE event_id = $1 ORDER BY created_at DESC`
	var broadcasts []models.Broadcast
	if err := r.db.SelectContext(ctx, &broadcasts, query, eventID); err != nil {
		return nil, fmt.Errorf("list broadcasts: %w", err)
	}
	return broadcasts, nil
}
