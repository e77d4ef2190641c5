package models

// Metrics holds the derived movement metrics for one session's trajectory
type Metrics struct {
	SessionID int64 `json:"sessionId,omitempty" db:"session_id"`

	TotalDistanceM float64   `json:"totalDistanceM" db:"total_distance_m"`
	ZoneTimes      ZoneTimes `json:"zoneTimes"`
	SprintTimeS    float64   `json:"sprintTimeS" db:"sprint_time_s"`
	QuickTurns     int       `json:"quickTurns" db:"quick_turns"`

	// Speed summary over per-segment instantaneous speeds
	AvgSpeedMS float64 `json:"avgSpeedMs" db:"avg_speed_ms"`
	MaxSpeedMS float64 `json:"maxSpeedMs" db:"max_speed_ms"`
	SpeedP50   float64 `json:"speedP50" db:"speed_p50"`
	SpeedP90   float64 `json:"speedP90" db:"speed_p90"`
	SpeedP95   float64 `json:"speedP95" db:"speed_p95"`

	// Spatial summary: distance-weighted mean direction of travel and the
	// dispersion of positions around their centroid
	MeanHeadingDeg  float64 `json:"meanHeadingDeg" db:"mean_heading_deg"`
	CentroidX       float64 `json:"centroidX" db:"centroid_x"`
	CentroidY       float64 `json:"centroidY" db:"centroid_y"`
	RadiusGyrationM float64 `json:"radiusGyrationM" db:"radius_gyration_m"`

	DurationS   float64 `json:"durationS" db:"duration_s"`
	SampleCount int     `json:"sampleCount" db:"sample_count"`
}
