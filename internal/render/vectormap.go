package render

import (
	"image"

	"github.com/matchlens/pitchtrack/internal/analysis"
	"github.com/matchlens/pitchtrack/internal/stats"
)

// VectorMap renders one line segment per consecutive sample pair over a
// green pitch background. Segment color interpolates red (slow) to white
// (fast) against this trajectory's own min/max speed. velocities must be
// the per-pair velocity samples of tr; degenerate trajectories render the
// bare pitch.
func (r *Renderer) VectorMap(tr analysis.Trajectory, velocities []analysis.VelocitySample) *image.NRGBA {
	img := r.newCanvas(grassGreen)
	r.drawPitchMarkings(img, markingWhite)

	n := len(tr) - 1
	if n > len(velocities) {
		n = len(velocities)
	}
	if n <= 0 {
		return img
	}

	speeds := make([]float64, n)
	for i := 0; i < n; i++ {
		speeds[i] = velocities[i].Speed
	}
	minSpeed := stats.Min(speeds)
	maxSpeed := stats.Max(speeds)
	speedRange := maxSpeed - minSpeed

	for i := 0; i < n; i++ {
		t := 0.0
		if speedRange > 0 {
			t = (speeds[i] - minSpeed) / speedRange
		}
		r.strokeSegment(img, tr.Position(i), tr.Position(i+1), speedColor(t), r.cfg.LineWidth)
	}

	return img
}
