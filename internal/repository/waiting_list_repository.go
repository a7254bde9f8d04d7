package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/CMPUT301F25quartz/quartz-events-sub000/internal/models"
)

// WaitingListRepository persists waiting-list memberships.
type WaitingListRepository struct {
	db *sqlx.DB
}

// NewWaitingListRepository creates the repository.
func NewWaitingListRepository(db *sqlx.DB) *WaitingListRepository {
	return &WaitingListRepository{db: db}
}

const entryColumns = "event_id, entrant_id, status, responded, joined_at, selected_at"

// ListByEvent returns the full waiting-list snapshot for one event.
func (r *WaitingListRepository) ListByEvent(ctx context.Context, eventID string) ([]models.WaitingListEntry, error) {
	query := fmt.Sprintf("SELECT %s FROM waiting_list WHERE event_id = $1 ORDER BY joined_at", entryColumns)
	var entries []models.WaitingListEntry
	if err := r.db.SelectContext(ctx, &entries, query, eventID); err != nil {
		return nil, fmt.Errorf("list waiting list: %w", err)
	}
	return entries, nil
}

// ListByStatus returns entries matching one lifecycle status.
func (r *WaitingListRepository) ListByStatus(ctx context.Context, eventID string, status models.EntrantStatus) ([]models.WaitingListEntry, error) {
	query := fmt.Sprintf("SELECT %s FROM waiting_list WHERE event_id = $1 AND status = $2 ORDER BY joined_at", entryColumns)
	var entries []models.WaitingListEntry
	if err := r.db.SelectContext(ctx, &entries, query, eventID, status); err != nil {
		return nil, fmt.Errorf("list waiting list by status: %w", err)
	}
	return entries, nil
}

// Get returns one entrant's membership for one event.
func (r *WaitingListRepository) Get(ctx context.Context, eventID, entrantID string) (*models.WaitingListEntry, error) {
	query := fmt.Sprintf("SELECT %s FROM waiting_list WHERE event_id = $1 AND entrant_id = $2", entryColumns)
	var entry models.WaitingListEntry
	if err := r.db.GetContext(ctx, &entry, query, eventID, entrantID); err != nil {
		return nil, err
	}
	return &entry, nil
}

// Join adds an entrant to the waiting list with status waiting.
func (r *WaitingListRepository) Join(ctx context.Context, eventID, entrantID string) error {
	const query = `INSERT INTO waiting_list (event_id, entrant_id, status, responded, joined_at)
VALUES ($1, $2, $3, '', NOW())`
	if _, err := r.db.ExecContext(ctx, query, eventID, entrantID, models.StatusWaiting); err != nil {
		return fmt.Errorf("join waiting list: %w", err)
	}
	return nil
}

// Leave removes an entrant's membership. This is the only hard delete the
// waiting list supports.
func (r *WaitingListRepository) Leave(ctx context.Context, eventID, entrantID string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM waiting_list WHERE event_id = $1 AND entrant_id = $2", eventID, entrantID); err != nil {
		return fmt.Errorf("leave waiting list: %w", err)
	}
	return nil
}

// SetResponded records an entrant's reply to an invitation.
func (r *WaitingListRepository) SetResponded(ctx context.Context, eventID, entrantID string, responded models.RespondedState) error {
	const query = `UPDATE waiting_list SET responded = $3
WHERE event_id = $1 AND entrant_id = $2 AND status = $4`
	res, err := r.db.ExecContext(ctx, query, eventID, entrantID, responded, models.StatusChosen)
	if err != nil {
		return fmt.Errorf("set responded: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("set responded result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("no chosen entry for entrant %s", entrantID)
	}
	return nil
}

// MarkChosen flips the given entrants to chosen/pending in one statement so
// a draw's winners land as a single batch.
func (r *WaitingListRepository) MarkChosen(ctx context.Context, eventID string, entrantIDs []string) error {
	if len(entrantIDs) == 0 {
		return nil
	}
	const query = `UPDATE waiting_list
SET status = $3, responded = $4, selected_at = NOW()
WHERE event_id = $1 AND entrant_id = ANY($2)`
	if _, err := r.db.ExecContext(ctx, query, eventID, pq.Array(entrantIDs), models.StatusChosen, models.RespondedPending); err != nil {
		return fmt.Errorf("mark chosen: %w", err)
	}
	return nil
}
