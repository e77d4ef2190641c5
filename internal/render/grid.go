package render

import (
	"github.com/matchlens/pitchtrack/internal/analysis"
	"github.com/matchlens/pitchtrack/internal/models"
)

// Grid is a rectangular occupancy histogram over the pitch extent.
// Cells are row-major; row 0 holds the lowest y band.
type Grid struct {
	Counts []int
	Rows   int
	Cols   int
	CellM  float64
	Max    int
}

// At returns the count for one cell
func (g *Grid) At(row, col int) int {
	return g.Counts[row*g.Cols+col]
}

// Occupancy bins the trajectory positions into pitch cells. Positions off
// the pitch extent are clamped into the border cells.
func (r *Renderer) Occupancy(tr analysis.Trajectory) *Grid {
	p := r.cfg.Pitch
	cols := int(p.Length/r.cfg.CellM + 0.5)
	rows := int(p.Width/r.cfg.CellM + 0.5)
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	g := &Grid{
		Counts: make([]int, rows*cols),
		Rows:   rows,
		Cols:   cols,
		CellM:  r.cfg.CellM,
	}

	for _, s := range tr {
		col := clampIndex(int((s.X-p.MinX())/r.cfg.CellM), cols)
		row := clampIndex(int((s.Y-p.MinY())/r.cfg.CellM), rows)
		idx := row*cols + col
		g.Counts[idx]++
		if g.Counts[idx] > g.Max {
			g.Max = g.Counts[idx]
		}
	}

	return g
}

// HeatmapData converts an occupancy grid into the heatmap API response,
// listing only occupied cells with intensity normalized against the
// busiest cell
func (r *Renderer) HeatmapData(tr analysis.Trajectory) models.HeatmapResponse {
	g := r.Occupancy(tr)
	p := r.cfg.Pitch

	resp := models.HeatmapResponse{
		Cells:    []models.HeatmapCell{},
		CellSize: g.CellM,
		Rows:     g.Rows,
		Cols:     g.Cols,
		MaxCount: g.Max,
	}

	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			count := g.At(row, col)
			if count == 0 {
				continue
			}
			resp.Cells = append(resp.Cells, models.HeatmapCell{
				X:         p.MinX() + (float64(col)+0.5)*g.CellM,
				Y:         p.MinY() + (float64(row)+0.5)*g.CellM,
				Count:     count,
				Intensity: float64(count) / float64(g.Max),
			})
		}
	}

	return resp
}

// clampIndex clamps an index into [0, n)
func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
