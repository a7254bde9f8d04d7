package dto

import "time"

// NotificationLogQuery captures GET /admin/notification-logs filters.
type NotificationLogQuery struct {
	EventID  string `form:"event_id"`
	Audience string `form:"audience"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

// ExportLogsRequest captures POST /admin/notification-logs/export payload.
type ExportLogsRequest struct {
	EventID string `json:"event_id"`
	Format  string `json:"format" validate:"required,oneof=csv pdf"`
}

// ExportResponse returns the signed download token for a rendered export.
type ExportResponse struct {
	ExportID  string    `json:"export_id"`
	Filename  string    `json:"filename"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
