package dto

import (
	"time"

	"github.com/CMPUT301F25quartz/quartz-events-sub000/internal/models"
)

// InboxItemView is one inbox entry as rendered to an entrant.
type InboxItemView struct {
	ID            string          `json:"id"`
	Type          string          `json:"type"`
	Audience      models.Audience `json:"audience"`
	EventID       string          `json:"event_id"`
	EventTitle    string          `json:"event_title"`
	Message       string          `json:"message"`
	IncludePoster bool            `json:"include_poster"`
	LinkURL       *string         `json:"link_url,omitempty"`
	Read          bool            `json:"read"`
	CreatedAt     time.Time       `json:"created_at"`
}

// UnreadCountResponse reports the cached unread total for a user.
type UnreadCountResponse struct {
	UserID string `json:"user_id"`
	Unread int    `json:"unread"`
}
