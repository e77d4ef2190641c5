package models

// Sample represents one tracking record for a player: a timestamp in seconds
// from kickoff and a pitch-relative position in meters, origin at pitch center.
// The x axis runs along the pitch length, the y axis along the width.
type Sample struct {
	ID        int64   `json:"id,omitempty" db:"id"`
	SessionID int64   `json:"sessionId,omitempty" db:"session_id"`
	Timestamp float64 `json:"timestamp" db:"ts"` // seconds from kickoff
	X         float64 `json:"x" db:"x"`
	Y         float64 `json:"y" db:"y"`

	// Derived at ingest time from the segment leading into this sample.
	// Zero for the first sample of a session.
	Speed       float64 `json:"speed" db:"speed"`               // m/s
	Heading     float64 `json:"heading" db:"heading"`           // degrees, atan2(dy,dx)
	CumDistance float64 `json:"cumDistance" db:"cum_distance"`  // meters since first sample
}

// SamplesResponse represents a paginated response of samples
type SamplesResponse struct {
	Data       []Sample `json:"data"`
	Total      int64    `json:"total"`
	Page       int      `json:"page"`
	PageSize   int      `json:"pageSize"`
	TotalPages int      `json:"totalPages"`
}

// SampleFilter represents filter parameters for querying samples
type SampleFilter struct {
	StartTime float64 `form:"startTime"` // seconds from kickoff
	EndTime   float64 `form:"endTime"`
	MinSpeed  float64 `form:"minSpeed"`
	MaxSpeed  float64 `form:"maxSpeed"`
	Page      int     `form:"page"`
	PageSize  int     `form:"pageSize"`
}
