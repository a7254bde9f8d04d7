package dto

// RunDrawRequest captures POST /events/:id/draw payload.
type RunDrawRequest struct {
	Count int `json:"count" validate:"required,min=1"`
}

// DrawResponse summarizes a completed lottery draw.
type DrawResponse struct {
	EventID    string   `json:"event_id"`
	Requested  int      `json:"requested"`
	DrawnCount int      `json:"drawn_count"`
	WinnerIDs  []string `json:"winner_ids"`
}
