package render

import (
	"image"

	"github.com/golang/geo/r2"

	"github.com/matchlens/pitchtrack/internal/analysis"
)

// Heatmap renders a positional density map over the full pitch extent.
// Cell color follows the hot ramp proportional to local point density;
// empty trajectories render the bare grid background with markings.
func (r *Renderer) Heatmap(tr analysis.Trajectory) *image.NRGBA {
	img := r.newCanvas(heatmapBase)
	g := r.Occupancy(tr)

	if g.Max > 0 {
		p := r.cfg.Pitch
		for row := 0; row < g.Rows; row++ {
			for col := 0; col < g.Cols; col++ {
				count := g.At(row, col)
				if count == 0 {
					continue
				}

				col0 := heatColor(float64(count) / float64(g.Max))

				// Fill the cell's pixel rectangle
				x0 := p.MinX() + float64(col)*g.CellM
				y0 := p.MinY() + float64(row)*g.CellM
				px0, py1 := r.toPixel(r2.Point{X: x0, Y: y0})
				px1, py0 := r.toPixel(r2.Point{X: x0 + g.CellM, Y: y0 + g.CellM})
				for py := int(py0); py < int(py1); py++ {
					for px := int(px0); px < int(px1); px++ {
						if image.Pt(px, py).In(img.Bounds()) {
							img.SetNRGBA(px, py, col0)
						}
					}
				}
			}
		}
	}

	r.drawPitchMarkings(img, heatmapLines)
	return img
}
