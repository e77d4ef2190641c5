package render

import (
	"io"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/matchlens/pitchtrack/internal/analysis"
)

// SpeedChart renders a line chart of instantaneous speed against elapsed
// time, with the sprint threshold drawn as a dashed reference line. At
// least two velocity samples are required; shorter inputs return an
// *analysis.InvalidTrajectoryError since there is no curve to draw.
func SpeedChart(velocities []analysis.VelocitySample, sprintThreshold float64, w io.Writer) error {
	if len(velocities) < 2 {
		return &analysis.InvalidTrajectoryError{
			Index:  -1,
			Reason: "speed chart requires at least three samples",
		}
	}

	xs := make([]float64, len(velocities))
	ys := make([]float64, len(velocities))
	elapsed := 0.0
	for i, v := range velocities {
		elapsed += v.DT
		xs[i] = elapsed
		ys[i] = v.Speed
	}

	threshold := make([]float64, len(xs))
	for i := range threshold {
		threshold[i] = sprintThreshold
	}

	graph := chart.Chart{
		Title:  "Speed profile",
		Width:  900,
		Height: 360,
		XAxis: chart.XAxis{
			Name: "Elapsed time (s)",
		},
		YAxis: chart.YAxis{
			Name: "Speed (m/s)",
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "speed",
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: chart.ColorBlue,
					StrokeWidth: 1.5,
				},
			},
			chart.ContinuousSeries{
				Name:    "sprint threshold",
				XValues: xs,
				YValues: threshold,
				Style: chart.Style{
					StrokeColor:     drawing.ColorRed,
					StrokeWidth:     1.0,
					StrokeDashArray: []float64{5.0, 5.0},
				},
			},
		},
	}

	return graph.Render(chart.PNG, w)
}
