package service

import (
	"database/sql"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/matchlens/pitchtrack/internal/analysis"
	"github.com/matchlens/pitchtrack/internal/database"
	"github.com/matchlens/pitchtrack/internal/ingest"
	"github.com/matchlens/pitchtrack/internal/models"
	"github.com/matchlens/pitchtrack/internal/repository"
)

const squareWalkCSV = `time,x,y
0,0,0
1,0,4
2,4,4
3,4,0
`

func newTestService(t *testing.T) (*SessionService, *sql.DB) {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	db.SetMaxOpenConns(1)

	_, err = db.Exec("PRAGMA foreign_keys = ON")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	svc := NewSessionService(
		repository.NewSessionRepository(db),
		repository.NewSampleRepository(db),
		repository.NewMetricsRepository(db),
		analysis.NewTrajectoryAnalyzer(analysis.DefaultConfig()),
	)
	return svc, db
}

func TestCreateFromCSV(t *testing.T) {
	svc, _ := newTestService(t)

	session, m, err := svc.CreateFromCSV(strings.NewReader(squareWalkCSV), "kane", "square.csv")
	require.NoError(t, err)
	require.NotNil(t, session)
	require.NotNil(t, m)

	assert.NotZero(t, session.ID)
	assert.Equal(t, "kane", session.Player)
	assert.Equal(t, 4, session.SampleCount)
	assert.InDelta(t, 3.0, session.DurationS, 1e-9)

	// 4 m per second around a square: every segment sprints
	assert.InDelta(t, 12.0, m.TotalDistanceM, 1e-9)
	assert.InDelta(t, 3.0, m.SprintTimeS, 1e-9)
	assert.InDelta(t, 4.0, m.MaxSpeedMS, 1e-9)
	assert.Zero(t, m.QuickTurns)
	// All four samples sit in the middle third
	assert.InDelta(t, 3.0, m.ZoneTimes.MiddleS, 1e-9)
	assert.Zero(t, m.ZoneTimes.DefensiveS)
	assert.InDelta(t, 2.0, m.CentroidX, 1e-9)
	assert.InDelta(t, 2.0, m.CentroidY, 1e-9)
}

func TestCreateFromCSVErrors(t *testing.T) {
	svc, _ := newTestService(t)

	t.Run("malformed input", func(t *testing.T) {
		_, _, err := svc.CreateFromCSV(strings.NewReader("time,x\n0,1\n"), "", "")
		var formatErr *ingest.InputFormatError
		assert.ErrorAs(t, err, &formatErr)
	})

	t.Run("non-increasing timestamps", func(t *testing.T) {
		_, _, err := svc.CreateFromCSV(strings.NewReader("time,x,y\n0,0,0\n0,1,1\n"), "", "")
		var trajErr *analysis.InvalidTrajectoryError
		require.ErrorAs(t, err, &trajErr)
		assert.Equal(t, 1, trajErr.Index)
	})
}

func TestSessionLifecycle(t *testing.T) {
	svc, _ := newTestService(t)

	created, _, err := svc.CreateFromCSV(strings.NewReader(squareWalkCSV), "saka", "square.csv")
	require.NoError(t, err)

	got, err := svc.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	list, err := svc.List(models.SessionFilter{Player: "saka"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, list.Total)
	assert.Equal(t, 1, list.TotalPages)

	resp, err := svc.Samples(created.ID, models.SampleFilter{})
	require.NoError(t, err)
	assert.EqualValues(t, 4, resp.Total)
	require.Len(t, resp.Data, 4)
	// Stored samples carry the derived per-sample fields
	assert.InDelta(t, 4.0, resp.Data[1].Speed, 1e-9)
	assert.InDelta(t, 12.0, resp.Data[3].CumDistance, 1e-9)

	require.NoError(t, svc.Delete(created.ID))
	_, err = svc.Get(created.ID)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.ErrorIs(t, svc.Delete(created.ID), sql.ErrNoRows)
}

func TestMetricsRecompute(t *testing.T) {
	svc, db := newTestService(t)

	created, stored, err := svc.CreateFromCSV(strings.NewReader(squareWalkCSV), "rice", "square.csv")
	require.NoError(t, err)

	m, err := svc.Metrics(created.ID)
	require.NoError(t, err)
	assert.InDelta(t, stored.TotalDistanceM, m.TotalDistanceM, 1e-9)

	// Drop the cached row; Metrics rebuilds it from the stored samples
	_, err = db.Exec("DELETE FROM session_metrics WHERE session_id = ?", created.ID)
	require.NoError(t, err)

	recomputed, err := svc.Metrics(created.ID)
	require.NoError(t, err)
	assert.InDelta(t, stored.TotalDistanceM, recomputed.TotalDistanceM, 1e-9)
	assert.Equal(t, stored.QuickTurns, recomputed.QuickTurns)
	assert.InDelta(t, stored.MeanHeadingDeg, recomputed.MeanHeadingDeg, 1e-9)
	assert.InDelta(t, stored.RadiusGyrationM, recomputed.RadiusGyrationM, 1e-9)

	_, err = svc.metrics.Get(created.ID)
	require.NoError(t, err)

	_, err = svc.Metrics(99999)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
