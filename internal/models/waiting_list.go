package models

import "time"

// EntrantStatus is the primary lifecycle state of a waiting-list membership.
type EntrantStatus string

const (
	StatusWaiting   EntrantStatus = "waiting"
	StatusChosen    EntrantStatus = "chosen"
	StatusSelected  EntrantStatus = "selected"
	StatusCancelled EntrantStatus = "cancelled"
)

// RespondedState describes an entrant's reply to a lottery invitation.
// It is only meaningful while the entry's status is "chosen".
type RespondedState string

const (
	RespondedPending  RespondedState = "pending"
	RespondedAccepted RespondedState = "accepted"
	RespondedDeclined RespondedState = "declined"
)

// WaitingListEntry is one entrant's membership on one event's waiting list.
type WaitingListEntry struct {
	EventID    string         `db:"event_id" json:"event_id"`
	EntrantID  string         `db:"entrant_id" json:"entrant_id"`
	Status     EntrantStatus  `db:"status" json:"status"`
	Responded  RespondedState `db:"responded" json:"responded,omitempty"`
	JoinedAt   time.Time      `db:"joined_at" json:"joined_at"`
	SelectedAt *time.Time     `db:"selected_at" json:"selected_at,omitempty"`
}
