package repository

import (
	"database/sql"
	"fmt"

	"github.com/matchlens/pitchtrack/internal/models"
)

// MetricsRepository handles database operations for derived session metrics
type MetricsRepository struct {
	db *sql.DB
}

// NewMetricsRepository creates a new metrics repository
func NewMetricsRepository(db *sql.DB) *MetricsRepository {
	return &MetricsRepository{db: db}
}

// Upsert stores the metrics for a session, replacing any previous run
func (r *MetricsRepository) Upsert(m *models.Metrics) error {
	_, err := r.db.Exec(`
		INSERT INTO session_metrics (
			session_id, total_distance_m, zone_def_s, zone_mid_s, zone_att_s,
			sprint_time_s, quick_turns, avg_speed_ms, max_speed_ms,
			speed_p50, speed_p90, speed_p95,
			mean_heading_deg, centroid_x, centroid_y, radius_gyration_m
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(session_id) DO UPDATE SET
			total_distance_m = excluded.total_distance_m,
			zone_def_s = excluded.zone_def_s,
			zone_mid_s = excluded.zone_mid_s,
			zone_att_s = excluded.zone_att_s,
			sprint_time_s = excluded.sprint_time_s,
			quick_turns = excluded.quick_turns,
			avg_speed_ms = excluded.avg_speed_ms,
			max_speed_ms = excluded.max_speed_ms,
			speed_p50 = excluded.speed_p50,
			speed_p90 = excluded.speed_p90,
			speed_p95 = excluded.speed_p95,
			mean_heading_deg = excluded.mean_heading_deg,
			centroid_x = excluded.centroid_x,
			centroid_y = excluded.centroid_y,
			radius_gyration_m = excluded.radius_gyration_m`,
		m.SessionID, m.TotalDistanceM,
		m.ZoneTimes.DefensiveS, m.ZoneTimes.MiddleS, m.ZoneTimes.AttackingS,
		m.SprintTimeS, m.QuickTurns, m.AvgSpeedMS, m.MaxSpeedMS,
		m.SpeedP50, m.SpeedP90, m.SpeedP95,
		m.MeanHeadingDeg, m.CentroidX, m.CentroidY, m.RadiusGyrationM,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert metrics: %w", err)
	}
	return nil
}

// Get retrieves the stored metrics for a session. Returns sql.ErrNoRows
// when the session has no computed metrics.
func (r *MetricsRepository) Get(sessionID int64) (*models.Metrics, error) {
	var m models.Metrics
	err := r.db.QueryRow(`
		SELECT sm.session_id, sm.total_distance_m,
		       sm.zone_def_s, sm.zone_mid_s, sm.zone_att_s,
		       sm.sprint_time_s, sm.quick_turns, sm.avg_speed_ms, sm.max_speed_ms,
		       sm.speed_p50, sm.speed_p90, sm.speed_p95,
		       sm.mean_heading_deg, sm.centroid_x, sm.centroid_y, sm.radius_gyration_m,
		       s.duration_s, s.sample_count
		FROM session_metrics sm
		JOIN sessions s ON s.id = sm.session_id
		WHERE sm.session_id = ?`, sessionID,
	).Scan(
		&m.SessionID, &m.TotalDistanceM,
		&m.ZoneTimes.DefensiveS, &m.ZoneTimes.MiddleS, &m.ZoneTimes.AttackingS,
		&m.SprintTimeS, &m.QuickTurns, &m.AvgSpeedMS, &m.MaxSpeedMS,
		&m.SpeedP50, &m.SpeedP90, &m.SpeedP95,
		&m.MeanHeadingDeg, &m.CentroidX, &m.CentroidY, &m.RadiusGyrationM,
		&m.DurationS, &m.SampleCount,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
