package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/CMPUT301F25quartz/quartz-events-sub000/internal/models"
)

// EventRepository persists events.
type EventRepository struct {
	db *sqlx.DB
}

// NewEventRepository creates the repository.
func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

// GetByID returns an event by identifier.
func (r *EventRepository) GetByID(ctx context.Context, id string) (*models.Event, error) {
	const query = `SELECT id, title, description, organizer_id, poster_url, capacity, event_date, created_at, updated_at
FROM events WHERE id = $1`
	var event models.Event
	if err := r.db.GetContext(ctx, &event, query, id); err != nil {
		return nil, err
	}
	return &event, nil
}

// Create inserts a new event.
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if event.CreatedAt.IsZero() {
		event.CreatedAt = now
	}
	event.UpdatedAt = now
	const query = `INSERT INTO events (id, title, description, organizer_id, poster_url, capacity, event_date, created_at, updated_at)
VALUES (:id, :title, :description, :organizer_id, :poster_url, :capacity, :event_date, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, event); err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

// ListByOrganizer returns the events one organizer owns, newest first.
func (r *EventRepository) ListByOrganizer(ctx context.Context, organizerID string) ([]models.Event, error) {
	const query = `SELECT id, title, description, organizer_id, poster_url, capacity, event_date, created_at, updated_at
FROM events WHERE organizer_id = $1 ORDER BY created_at DESC`
	var events []models.Event
	if err := r.db.SelectContext(ctx, &events, query, organizerID); err != nil {
		return nil, fmt.Errorf("list organizer events: %w", err)
	}
	return events, nil
}
