package models

// Session represents one uploaded player trajectory
type Session struct {
	ID          int64   `json:"id" db:"id"`
	Player      string  `json:"player" db:"player"`
	SourceFile  string  `json:"sourceFile" db:"source_file"`
	SampleCount int     `json:"sampleCount" db:"sample_count"`
	DurationS   float64 `json:"durationS" db:"duration_s"`
	CreatedAt   string  `json:"createdAt" db:"created_at"`
}

// SessionsResponse represents a paginated response of sessions
type SessionsResponse struct {
	Data       []Session `json:"data"`
	Total      int64     `json:"total"`
	Page       int       `json:"page"`
	PageSize   int       `json:"pageSize"`
	TotalPages int       `json:"totalPages"`
}

// SessionFilter represents filter parameters for querying sessions
type SessionFilter struct {
	Player   string `form:"player"`
	Page     int    `form:"page"`
	PageSize int    `form:"pageSize"`
}
