package analysis

import (
	"math"

	"github.com/matchlens/pitchtrack/internal/models"
	"github.com/matchlens/pitchtrack/internal/pitch"
	"github.com/matchlens/pitchtrack/internal/stats"
)

// Reference thresholds for motion-state classification
const (
	DefaultSprintSpeedMS = 3.0  // speed above which a segment counts as sprinting
	DefaultTurnAngleDeg  = 90.0 // heading change that must be exceeded for a quick turn
)

// Config holds the analyzer parameters. The thresholds and zone boundaries
// are configuration rather than embedded literals so tests can exercise the
// boundary cases directly.
type Config struct {
	SprintSpeedMS float64     // sprint classification threshold, m/s
	TurnAngleDeg  float64     // quick-turn threshold, degrees, strict inequality
	Pitch         pitch.Pitch // playing surface extent
	ZoneBoundary1 float64     // x below this is the defensive third
	ZoneBoundary2 float64     // x at or above this is the attacking third
}

// DefaultConfig returns the reference configuration: 3 m/s sprint threshold,
// 90 degree turn threshold, default pitch split into equal thirds
func DefaultConfig() Config {
	p := pitch.Default()
	b1, b2 := p.ThirdBoundaries()
	return Config{
		SprintSpeedMS: DefaultSprintSpeedMS,
		TurnAngleDeg:  DefaultTurnAngleDeg,
		Pitch:         p,
		ZoneBoundary1: b1,
		ZoneBoundary2: b2,
	}
}

// TrajectoryAnalyzer derives movement metrics from a single player's
// trajectory. It holds no per-trajectory state; one analyzer may be shared
// across goroutines.
type TrajectoryAnalyzer struct {
	cfg Config
}

// NewTrajectoryAnalyzer creates a new analyzer with the given configuration
func NewTrajectoryAnalyzer(cfg Config) *TrajectoryAnalyzer {
	return &TrajectoryAnalyzer{cfg: cfg}
}

// Config returns the analyzer configuration
func (a *TrajectoryAnalyzer) Config() Config {
	return a.cfg
}

// ZoneOf classifies an x coordinate into a pitch third using the closed-open
// convention: x < b1 is defensive, b1 <= x < b2 is middle, b2 <= x attacking
func (a *TrajectoryAnalyzer) ZoneOf(x float64) models.Zone {
	switch {
	case x < a.cfg.ZoneBoundary1:
		return models.ZoneDefensive
	case x < a.cfg.ZoneBoundary2:
		return models.ZoneMiddle
	default:
		return models.ZoneAttacking
	}
}

// Velocities derives one velocity sample per consecutive sample pair.
// Returns an empty slice for trajectories with fewer than two samples.
func (a *TrajectoryAnalyzer) Velocities(tr Trajectory) ([]VelocitySample, error) {
	if err := tr.Validate(); err != nil {
		return nil, err
	}

	if len(tr) < 2 {
		return []VelocitySample{}, nil
	}

	velocities := make([]VelocitySample, 0, len(tr)-1)
	for i := 1; i < len(tr); i++ {
		dt := tr[i].Timestamp - tr[i-1].Timestamp
		dist := pitch.Distance(tr.Position(i-1), tr.Position(i))
		velocities = append(velocities, VelocitySample{
			Speed:   dist / dt,
			Heading: pitch.Heading(tr.Position(i-1), tr.Position(i)),
			DT:      dt,
			Dist:    dist,
		})
	}

	return velocities, nil
}

// TotalDistance sums the Euclidean distances between consecutive samples.
// A trajectory with fewer than two samples covers zero distance.
func (a *TrajectoryAnalyzer) TotalDistance(tr Trajectory) (float64, error) {
	if err := tr.Validate(); err != nil {
		return 0, err
	}
	return pitch.PathLength(tr.Positions()), nil
}

// ZoneTimes attributes each inter-sample interval to the zone of the
// starting sample's position. The three values sum to the trajectory
// duration.
func (a *TrajectoryAnalyzer) ZoneTimes(tr Trajectory) (models.ZoneTimes, error) {
	var zt models.ZoneTimes
	if err := tr.Validate(); err != nil {
		return zt, err
	}

	for i := 1; i < len(tr); i++ {
		dt := tr[i].Timestamp - tr[i-1].Timestamp
		zt.Add(a.ZoneOf(tr[i-1].X), dt)
	}
	return zt, nil
}

// SprintTime sums the inter-sample intervals where the instantaneous speed
// exceeds the sprint threshold
func (a *TrajectoryAnalyzer) SprintTime(tr Trajectory) (float64, error) {
	velocities, err := a.Velocities(tr)
	if err != nil {
		return 0, err
	}

	var sprint float64
	for _, v := range velocities {
		if v.Speed > a.cfg.SprintSpeedMS {
			sprint += v.DT
		}
	}
	return sprint, nil
}

// QuickTurns counts heading changes whose magnitude strictly exceeds the
// turn threshold at interior samples, where the incoming segment was
// classified as sprinting. The heading delta is normalized into [-180, 180]
// before comparison; an exactly-threshold change does not count.
func (a *TrajectoryAnalyzer) QuickTurns(tr Trajectory) (int, error) {
	velocities, err := a.Velocities(tr)
	if err != nil {
		return 0, err
	}

	turns := 0
	for i := 1; i < len(velocities); i++ {
		in := velocities[i-1]
		out := velocities[i]

		// Heading is undefined for a zero-length segment
		if in.Dist == 0 || out.Dist == 0 {
			continue
		}
		if in.Speed <= a.cfg.SprintSpeedMS {
			continue
		}

		delta := pitch.AngleDelta(in.Heading, out.Heading)
		if math.Abs(delta) > a.cfg.TurnAngleDeg {
			turns++
		}
	}
	return turns, nil
}

// Analyze runs the full metric pipeline over one trajectory
func (a *TrajectoryAnalyzer) Analyze(tr Trajectory) (models.Metrics, error) {
	var m models.Metrics
	velocities, err := a.Velocities(tr)
	if err != nil {
		return m, err
	}

	speeds := make([]float64, len(velocities))
	for i, v := range velocities {
		m.TotalDistanceM += v.Dist
		if v.Speed > a.cfg.SprintSpeedMS {
			m.SprintTimeS += v.DT
		}
		speeds[i] = v.Speed
	}

	for i := 1; i < len(tr); i++ {
		dt := tr[i].Timestamp - tr[i-1].Timestamp
		m.ZoneTimes.Add(a.ZoneOf(tr[i-1].X), dt)
	}

	turns, err := a.QuickTurns(tr)
	if err != nil {
		return m, err
	}
	m.QuickTurns = turns

	if len(speeds) > 0 {
		m.AvgSpeedMS = stats.Mean(speeds)
		m.MaxSpeedMS = stats.Max(speeds)
		ps := stats.Percentiles(speeds, []float64{50, 90, 95})
		m.SpeedP50, m.SpeedP90, m.SpeedP95 = ps[0], ps[1], ps[2]
	}

	heading, err := a.MeanHeading(tr)
	if err != nil {
		return m, err
	}
	m.MeanHeadingDeg = heading

	if len(tr) > 0 {
		points := tr.Positions()
		c := pitch.Centroid(points)
		m.CentroidX, m.CentroidY = c.X, c.Y
		m.RadiusGyrationM = pitch.RadiusOfGyration(points)
	}

	m.DurationS = tr.Duration()
	m.SampleCount = len(tr)
	return m, nil
}

// Annotate returns a copy of the trajectory with per-sample Speed, Heading
// and CumDistance filled from the segment leading into each sample. The
// first sample keeps zero values.
func (a *TrajectoryAnalyzer) Annotate(tr Trajectory) (Trajectory, error) {
	velocities, err := a.Velocities(tr)
	if err != nil {
		return nil, err
	}

	annotated := make(Trajectory, len(tr))
	copy(annotated, tr)

	var cum float64
	for i, v := range velocities {
		cum += v.Dist
		annotated[i+1].Speed = v.Speed
		annotated[i+1].Heading = v.Heading
		annotated[i+1].CumDistance = cum
	}
	return annotated, nil
}

// MeanHeading returns the circular mean heading of travel in degrees
// [0, 360), weighted by segment distance. Zero-length trajectories return 0.
func (a *TrajectoryAnalyzer) MeanHeading(tr Trajectory) (float64, error) {
	velocities, err := a.Velocities(tr)
	if err != nil {
		return 0, err
	}

	headings := make([]float64, 0, len(velocities))
	weights := make([]float64, 0, len(velocities))
	for _, v := range velocities {
		if v.Dist == 0 {
			continue
		}
		headings = append(headings, v.Heading)
		weights = append(weights, v.Dist)
	}
	return pitch.CircularMeanDegrees(headings, weights), nil
}
