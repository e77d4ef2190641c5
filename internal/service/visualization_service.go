package service

import (
	"io"

	"github.com/matchlens/pitchtrack/internal/analysis"
	"github.com/matchlens/pitchtrack/internal/models"
	"github.com/matchlens/pitchtrack/internal/render"
	"github.com/matchlens/pitchtrack/internal/repository"
)

// VisualizationService renders stored sessions into heatmap, vector map
// and speed chart artifacts
type VisualizationService struct {
	samples  *repository.SampleRepository
	analyzer *analysis.TrajectoryAnalyzer
	renderer *render.Renderer
}

// NewVisualizationService creates a new visualization service
func NewVisualizationService(
	samples *repository.SampleRepository,
	analyzer *analysis.TrajectoryAnalyzer,
	renderer *render.Renderer,
) *VisualizationService {
	return &VisualizationService{
		samples:  samples,
		analyzer: analyzer,
		renderer: renderer,
	}
}

// trajectory loads the full stored trajectory of one session
func (s *VisualizationService) trajectory(sessionID int64) (analysis.Trajectory, error) {
	samples, err := s.samples.GetTrajectory(sessionID)
	if err != nil {
		return nil, err
	}
	return analysis.Trajectory(samples), nil
}

// HeatmapData returns the occupancy grid of a session as JSON-ready cells
func (s *VisualizationService) HeatmapData(sessionID int64) (models.HeatmapResponse, error) {
	tr, err := s.trajectory(sessionID)
	if err != nil {
		return models.HeatmapResponse{}, err
	}
	return s.renderer.HeatmapData(tr), nil
}

// HeatmapPNG writes the positional heatmap of a session as PNG
func (s *VisualizationService) HeatmapPNG(sessionID int64, w io.Writer) error {
	tr, err := s.trajectory(sessionID)
	if err != nil {
		return err
	}
	return render.EncodePNG(s.renderer.Heatmap(tr), w)
}

// VectorMapPNG writes the speed-coded vector map of a session as PNG
func (s *VisualizationService) VectorMapPNG(sessionID int64, w io.Writer) error {
	tr, err := s.trajectory(sessionID)
	if err != nil {
		return err
	}

	velocities, err := s.analyzer.Velocities(tr)
	if err != nil {
		return err
	}
	return render.EncodePNG(s.renderer.VectorMap(tr, velocities), w)
}

// SpeedChartPNG writes the speed profile chart of a session as PNG
func (s *VisualizationService) SpeedChartPNG(sessionID int64, w io.Writer) error {
	tr, err := s.trajectory(sessionID)
	if err != nil {
		return err
	}

	velocities, err := s.analyzer.Velocities(tr)
	if err != nil {
		return err
	}
	return render.SpeedChart(velocities, s.analyzer.Config().SprintSpeedMS, w)
}
