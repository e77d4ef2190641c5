package pitch

import (
	"math"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 5.0, Distance(r2.Point{}, r2.Point{X: 3, Y: 4}), 1e-9)
	assert.Zero(t, Distance(r2.Point{X: 1, Y: 1}, r2.Point{X: 1, Y: 1}))
}

func TestHeading(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		to   r2.Point
		want float64
	}{
		{"toward attacking goal", r2.Point{X: 1}, 0},
		{"up the pitch", r2.Point{Y: 1}, 90},
		{"toward own goal", r2.Point{X: -1}, 180},
		{"down the pitch", r2.Point{Y: -1}, -90},
		{"diagonal", r2.Point{X: 1, Y: 1}, 45},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, Heading(r2.Point{}, tc.to), 1e-9)
		})
	}
}

func TestAngleDelta(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		from, to float64
		want     float64
	}{
		{"no change", 45, 45, 0},
		{"quarter left", 0, 90, 90},
		{"quarter right", 0, -90, -90},
		{"wraps across the 180 seam", 170, -170, 20},
		{"wraps the other way", -170, 170, -20},
		{"reversal", 0, 180, 180},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, AngleDelta(tc.from, tc.to), 1e-9)
		})
	}
}

func TestPathLength(t *testing.T) {
	t.Parallel()

	path := []r2.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}}
	assert.InDelta(t, 8.0, PathLength(path), 1e-9)
	assert.Zero(t, PathLength(nil))
	assert.Zero(t, PathLength(path[:1]))
}

func TestCentroid(t *testing.T) {
	t.Parallel()

	points := []r2.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}}
	c := Centroid(points)
	assert.InDelta(t, 2.0, c.X, 1e-9)
	assert.InDelta(t, 2.0, c.Y, 1e-9)

	assert.Equal(t, r2.Point{}, Centroid(nil))
}

func TestRadiusOfGyration(t *testing.T) {
	t.Parallel()

	// Four corners of a 4 m square: every point is sqrt(8) from the center
	points := []r2.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}}
	assert.InDelta(t, math.Sqrt(8), RadiusOfGyration(points), 1e-9)

	assert.Zero(t, RadiusOfGyration(nil))
	assert.Zero(t, RadiusOfGyration(points[:1]))
}

func TestCircularMeanDegrees(t *testing.T) {
	t.Parallel()

	t.Run("mean across the wraparound", func(t *testing.T) {
		t.Parallel()
		m := CircularMeanDegrees([]float64{350, 10}, nil)
		// The mean sits on the 0/360 seam
		assert.True(t, m < 1e-6 || m > 360-1e-6, "mean heading %v should sit at the seam", m)
	})

	t.Run("plain mean away from the seam", func(t *testing.T) {
		t.Parallel()
		m := CircularMeanDegrees([]float64{90, 180}, nil)
		assert.InDelta(t, 135.0, m, 1e-6)
	})

	t.Run("weights pull the mean", func(t *testing.T) {
		t.Parallel()
		m := CircularMeanDegrees([]float64{0, 90}, []float64{1, 0})
		assert.InDelta(t, 0.0, m, 1e-6)
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()
		assert.Zero(t, CircularMeanDegrees(nil, nil))
	})
}

func TestPitchGeometry(t *testing.T) {
	t.Parallel()

	p := Default()
	assert.InDelta(t, -50.0, p.MinX(), 1e-9)
	assert.InDelta(t, 50.0, p.MaxX(), 1e-9)
	assert.InDelta(t, -30.0, p.MinY(), 1e-9)
	assert.InDelta(t, 30.0, p.MaxY(), 1e-9)

	b1, b2 := p.ThirdBoundaries()
	assert.InDelta(t, -100.0/6, b1, 1e-9)
	assert.InDelta(t, 100.0/6, b2, 1e-9)

	assert.True(t, p.Contains(r2.Point{}))
	assert.True(t, p.Contains(r2.Point{X: 50, Y: 30}))
	assert.False(t, p.Contains(r2.Point{X: 50.01, Y: 0}))
}
