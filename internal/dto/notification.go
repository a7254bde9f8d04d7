package dto

import "github.com/CMPUT301F25quartz/quartz-events-sub000/internal/models"

// NotifyAudienceRequest captures POST /events/:id/notifications payload.
type NotifyAudienceRequest struct {
	Message       string  `json:"message" validate:"required"`
	Audience      string  `json:"audience" validate:"required,audience"`
	IncludePoster bool    `json:"include_poster"`
	LinkURL       *string `json:"link_url,omitempty" validate:"omitempty,url"`
}

// NotifySingleRequest captures POST /events/:id/notifications/single payload.
type NotifySingleRequest struct {
	RecipientID   string  `json:"recipient_id" validate:"required"`
	Message       string  `json:"message" validate:"required"`
	Audience      string  `json:"audience" validate:"required"`
	IncludePoster bool    `json:"include_poster"`
	LinkURL       *string `json:"link_url,omitempty" validate:"omitempty,url"`
}

// NotifyResponse reports the terminal outcome of a notify call.
type NotifyResponse struct {
	BroadcastID    string          `json:"broadcast_id"`
	Audience       models.Audience `json:"audience"`
	DeliveredCount int             `json:"delivered_count"`
}
