package analysis

import (
	"math"

	"github.com/golang/geo/r2"

	"github.com/matchlens/pitchtrack/internal/models"
)

// Trajectory is the time-ordered sample sequence for one player. Insertion
// order is time order; callers own the slice and must not mutate it while
// an analysis is running.
type Trajectory []models.Sample

// Duration returns last timestamp minus first timestamp in seconds,
// 0 for trajectories with fewer than two samples
func (tr Trajectory) Duration() float64 {
	if len(tr) < 2 {
		return 0
	}
	return tr[len(tr)-1].Timestamp - tr[0].Timestamp
}

// Positions returns the sample positions as planar points
func (tr Trajectory) Positions() []r2.Point {
	points := make([]r2.Point, len(tr))
	for i, s := range tr {
		points[i] = r2.Point{X: s.X, Y: s.Y}
	}
	return points
}

// Position returns the i-th sample position as a planar point
func (tr Trajectory) Position(i int) r2.Point {
	return r2.Point{X: tr[i].X, Y: tr[i].Y}
}

// Validate checks the trajectory invariants. Timestamps must be finite and
// strictly increasing; violations return an *InvalidTrajectoryError naming
// the offending sample. A trajectory with fewer than two samples is
// degenerate but valid.
func (tr Trajectory) Validate() error {
	for i := range tr {
		// NaN compares false against everything, so the strict-increase
		// check alone would let it through
		if math.IsNaN(tr[i].Timestamp) || math.IsInf(tr[i].Timestamp, 0) {
			return &InvalidTrajectoryError{
				Index:  i,
				Reason: "timestamp must be finite",
			}
		}
	}
	for i := 1; i < len(tr); i++ {
		if tr[i].Timestamp <= tr[i-1].Timestamp {
			return &InvalidTrajectoryError{
				Index:  i,
				Reason: "timestamps must be strictly increasing",
			}
		}
	}
	return nil
}

// VelocitySample is the derived motion state of one consecutive sample pair
type VelocitySample struct {
	Speed   float64 // m/s
	Heading float64 // degrees, atan2(dy,dx) of the segment
	DT      float64 // seconds between the two samples
	Dist    float64 // meters between the two samples
}
