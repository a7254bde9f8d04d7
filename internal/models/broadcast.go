package models

import "time"

// Broadcast is the immutable audit record written before any fan-out.
// Its id ties every resulting inbox item back to the message that produced it.
type Broadcast struct {
	ID            string    `db:"id" json:"id"`
	EventID       string    `db:"event_id" json:"event_id"`
	Audience      Audience  `db:"audience" json:"audience"`
	Message       string    `db:"message" json:"message"`
	IncludePoster bool      `db:"include_poster" json:"include_poster"`
	LinkURL       *string   `db:"link_url" json:"link_url,omitempty"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

// InboxItem is one recipient's copy of a broadcast. Every item is written
// twice with the same id: once under the event and once under the recipient.
type InboxItem struct {
	ID            string    `db:"id" json:"id"`
	Type          string    `db:"type" json:"type"`
	Audience      Audience  `db:"audience" json:"audience"`
	EventID       string    `db:"event_id" json:"event_id"`
	EventTitle    string    `db:"event_title" json:"event_title"`
	RecipientID   string    `db:"recipient_id" json:"recipient_id"`
	Message       string    `db:"message" json:"message"`
	IncludePoster bool      `db:"include_poster" json:"include_poster"`
	LinkURL       *string   `db:"link_url" json:"link_url,omitempty"`
	Read          bool      `db:"read" json:"read"`
	ShowPopup     bool      `db:"show_popup" json:"show_popup"`
	BroadcastID   string    `db:"broadcast_id" json:"broadcast_id"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}
