package service

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/matchlens/pitchtrack/internal/analysis"
	"github.com/matchlens/pitchtrack/internal/ingest"
	"github.com/matchlens/pitchtrack/internal/models"
	"github.com/matchlens/pitchtrack/internal/repository"
)

// SessionService handles business logic for tracking sessions: ingest,
// metric derivation and persistence
type SessionService struct {
	sessions *repository.SessionRepository
	samples  *repository.SampleRepository
	metrics  *repository.MetricsRepository
	analyzer *analysis.TrajectoryAnalyzer
}

// NewSessionService creates a new session service
func NewSessionService(
	sessions *repository.SessionRepository,
	samples *repository.SampleRepository,
	metrics *repository.MetricsRepository,
	analyzer *analysis.TrajectoryAnalyzer,
) *SessionService {
	return &SessionService{
		sessions: sessions,
		samples:  samples,
		metrics:  metrics,
		analyzer: analyzer,
	}
}

// CreateFromCSV ingests one player's tracking CSV, derives the movement
// metrics and persists session, samples and metrics. Ingest and trajectory
// validation errors pass through unchanged so callers can classify them.
func (s *SessionService) CreateFromCSV(r io.Reader, player, sourceFile string) (*models.Session, *models.Metrics, error) {
	tr, err := ingest.Parse(r)
	if err != nil {
		return nil, nil, err
	}

	m, err := s.analyzer.Analyze(tr)
	if err != nil {
		return nil, nil, err
	}

	annotated, err := s.analyzer.Annotate(tr)
	if err != nil {
		return nil, nil, err
	}

	session := &models.Session{
		Player:      player,
		SourceFile:  sourceFile,
		SampleCount: len(tr),
		DurationS:   tr.Duration(),
	}

	id, err := s.sessions.Create(session)
	if err != nil {
		return nil, nil, err
	}
	session.ID = id

	if err := s.samples.BulkInsert(id, annotated); err != nil {
		return nil, nil, err
	}

	m.SessionID = id
	if err := s.metrics.Upsert(&m); err != nil {
		return nil, nil, err
	}

	log.Printf("[SessionService] Created session %d (%s): %d samples, %.1f m",
		id, player, len(tr), m.TotalDistanceM)

	stored, err := s.sessions.GetByID(id)
	if err != nil {
		return session, &m, nil
	}
	return stored, &m, nil
}

// Get retrieves one session
func (s *SessionService) Get(id int64) (*models.Session, error) {
	return s.sessions.GetByID(id)
}

// List retrieves sessions as a paginated response
func (s *SessionService) List(filter models.SessionFilter) (models.SessionsResponse, error) {
	sessions, total, err := s.sessions.List(filter)
	if err != nil {
		return models.SessionsResponse{}, err
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 || filter.PageSize > 500 {
		filter.PageSize = 50
	}

	return models.SessionsResponse{
		Data:       sessions,
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages(total, filter.PageSize),
	}, nil
}

// Delete removes a session with its samples and metrics
func (s *SessionService) Delete(id int64) error {
	return s.sessions.Delete(id)
}

// Metrics retrieves the stored metrics for a session, recomputing them from
// the stored samples when no metrics row exists yet
func (s *SessionService) Metrics(sessionID int64) (*models.Metrics, error) {
	m, err := s.metrics.Get(sessionID)
	if err == nil {
		return m, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	// No stored metrics; the session must still exist
	if _, err := s.sessions.GetByID(sessionID); err != nil {
		return nil, err
	}

	samples, err := s.samples.GetTrajectory(sessionID)
	if err != nil {
		return nil, err
	}

	computed, err := s.analyzer.Analyze(analysis.Trajectory(samples))
	if err != nil {
		return nil, fmt.Errorf("failed to recompute metrics: %w", err)
	}
	computed.SessionID = sessionID

	if err := s.metrics.Upsert(&computed); err != nil {
		return nil, err
	}
	return &computed, nil
}

// Samples retrieves a session's samples as a paginated response
func (s *SessionService) Samples(sessionID int64, filter models.SampleFilter) (models.SamplesResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 || filter.PageSize > 5000 {
		filter.PageSize = 1000
	}

	samples, total, err := s.samples.GetBySession(sessionID, filter)
	if err != nil {
		return models.SamplesResponse{}, err
	}

	return models.SamplesResponse{
		Data:       samples,
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages(total, filter.PageSize),
	}, nil
}

// totalPages computes the page count for a total and page size
func totalPages(total int64, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	pages := int(total) / pageSize
	if int(total)%pageSize != 0 {
		pages++
	}
	return pages
}
