package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/matchlens/pitchtrack/internal/models"
)

// SampleRepository handles database operations for trajectory samples
type SampleRepository struct {
	db *sql.DB
}

// NewSampleRepository creates a new sample repository
func NewSampleRepository(db *sql.DB) *SampleRepository {
	return &SampleRepository{db: db}
}

// BulkInsert stores all samples of one session inside a transaction
func (r *SampleRepository) BulkInsert(sessionID int64, samples []models.Sample) error {
	if len(samples) == 0 {
		return nil
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO samples (session_id, ts, x, y, speed, heading, cum_distance)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, s := range samples {
		if _, err := stmt.Exec(sessionID, s.Timestamp, s.X, s.Y, s.Speed, s.Heading, s.CumDistance); err != nil {
			return fmt.Errorf("failed to insert sample: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetBySession retrieves a session's samples with filtering and pagination.
// A zero PageSize returns the full trajectory in time order.
func (r *SampleRepository) GetBySession(sessionID int64, filter models.SampleFilter) ([]models.Sample, int64, error) {
	query := `SELECT id, session_id, ts, x, y, speed, heading, cum_distance FROM samples`
	countQuery := `SELECT COUNT(*) FROM samples`

	conditions := []string{"session_id = ?"}
	args := []interface{}{sessionID}

	if filter.StartTime > 0 {
		conditions = append(conditions, "ts >= ?")
		args = append(args, filter.StartTime)
	}
	if filter.EndTime > 0 {
		conditions = append(conditions, "ts <= ?")
		args = append(args, filter.EndTime)
	}
	if filter.MinSpeed > 0 {
		conditions = append(conditions, "speed >= ?")
		args = append(args, filter.MinSpeed)
	}
	if filter.MaxSpeed > 0 {
		conditions = append(conditions, "speed <= ?")
		args = append(args, filter.MaxSpeed)
	}

	where := " WHERE " + strings.Join(conditions, " AND ")
	query += where
	countQuery += where

	var total int64
	if err := r.db.QueryRow(countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count samples: %w", err)
	}

	query += " ORDER BY ts"
	if filter.PageSize > 0 {
		if filter.Page < 1 {
			filter.Page = 1
		}
		query += " LIMIT ? OFFSET ?"
		args = append(args, filter.PageSize, (filter.Page-1)*filter.PageSize)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query samples: %w", err)
	}
	defer rows.Close()

	samples := []models.Sample{}
	for rows.Next() {
		var s models.Sample
		if err := rows.Scan(&s.ID, &s.SessionID, &s.Timestamp, &s.X, &s.Y, &s.Speed, &s.Heading, &s.CumDistance); err != nil {
			return nil, 0, fmt.Errorf("failed to scan sample: %w", err)
		}
		samples = append(samples, s)
	}

	return samples, total, rows.Err()
}

// GetTrajectory retrieves the full time-ordered trajectory of a session
func (r *SampleRepository) GetTrajectory(sessionID int64) ([]models.Sample, error) {
	samples, _, err := r.GetBySession(sessionID, models.SampleFilter{})
	return samples, err
}

// CountBySession returns the number of stored samples for a session
func (r *SampleRepository) CountBySession(sessionID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow("SELECT COUNT(*) FROM samples WHERE session_id = ?", sessionID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count samples: %w", err)
	}
	return count, nil
}
