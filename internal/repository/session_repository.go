package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/matchlens/pitchtrack/internal/models"
)

// SessionRepository handles database operations for tracking sessions
type SessionRepository struct {
	db *sql.DB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create inserts a session and returns its ID
func (r *SessionRepository) Create(s *models.Session) (int64, error) {
	result, err := r.db.Exec(`
		INSERT INTO sessions (player, source_file, sample_count, duration_s)
		VALUES (?, ?, ?, ?)`,
		s.Player, s.SourceFile, s.SampleCount, s.DurationS,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read session id: %w", err)
	}
	return id, nil
}

// GetByID retrieves one session. Returns sql.ErrNoRows when missing.
func (r *SessionRepository) GetByID(id int64) (*models.Session, error) {
	var s models.Session
	err := r.db.QueryRow(`
		SELECT id, player, source_file, sample_count, duration_s, created_at
		FROM sessions WHERE id = ?`, id,
	).Scan(&s.ID, &s.Player, &s.SourceFile, &s.SampleCount, &s.DurationS, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// List retrieves sessions with filtering and pagination
func (r *SessionRepository) List(filter models.SessionFilter) ([]models.Session, int64, error) {
	query := `SELECT id, player, source_file, sample_count, duration_s, created_at FROM sessions`
	countQuery := `SELECT COUNT(*) FROM sessions`

	var conditions []string
	var args []interface{}

	if filter.Player != "" {
		conditions = append(conditions, "player = ?")
		args = append(args, filter.Player)
	}

	if len(conditions) > 0 {
		where := " WHERE " + strings.Join(conditions, " AND ")
		query += where
		countQuery += where
	}

	var total int64
	if err := r.db.QueryRow(countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count sessions: %w", err)
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 || filter.PageSize > 500 {
		filter.PageSize = 50
	}
	query += " ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?"
	args = append(args, filter.PageSize, (filter.Page-1)*filter.PageSize)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	sessions := []models.Session{}
	for rows.Next() {
		var s models.Session
		if err := rows.Scan(&s.ID, &s.Player, &s.SourceFile, &s.SampleCount, &s.DurationS, &s.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, s)
	}

	return sessions, total, rows.Err()
}

// Delete removes a session; samples and metrics follow via cascade
func (r *SessionRepository) Delete(id int64) error {
	result, err := r.db.Exec("DELETE FROM sessions WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
