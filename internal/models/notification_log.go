package models

import "time"

// NotificationLog is an append-only admin record of one completed fan-out.
// Writing it is best-effort and never affects the notify outcome.
type NotificationLog struct {
	ID             string    `db:"id" json:"id"`
	EventID        string    `db:"event_id" json:"event_id"`
	EventTitle     string    `db:"event_title" json:"event_title"`
	Message        string    `db:"message" json:"message"`
	Audience       Audience  `db:"audience" json:"audience"`
	RecipientCount int       `db:"recipient_count" json:"recipient_count"`
	Type           string    `db:"type" json:"type"`
	SenderID       string    `db:"sender_id" json:"sender_id"`
	Timestamp      time.Time `db:"timestamp" json:"timestamp"`
}

// NotificationLogFilter narrows admin log listings.
type NotificationLogFilter struct {
	EventID  string
	Audience *Audience
	Page     int
	PageSize int
}
