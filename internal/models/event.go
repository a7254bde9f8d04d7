package models

import "time"

// Event is the capacity-limited event entrants join a waiting list for.
type Event struct {
	ID          string    `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	OrganizerID *string   `db:"organizer_id" json:"organizer_id,omitempty"`
	PosterURL   *string   `db:"poster_url" json:"poster_url,omitempty"`
	Capacity    int       `db:"capacity" json:"capacity"`
	EventDate   time.Time `db:"event_date" json:"event_date"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// SenderFallback is recorded on admin logs when an event has no organizer.
const SenderFallback = "organizer"
