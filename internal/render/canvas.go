package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/golang/geo/r2"
)

// Pitch marking dimensions in meters (standard markings, scaled pitch)
const (
	centerCircleRadiusM = 9.15
	penaltyAreaDepthM   = 16.5
	penaltyAreaWidthM   = 40.32
)

// imageSize returns the canvas dimensions in pixels
func (r *Renderer) imageSize() (int, int) {
	w := int(r.cfg.Pitch.Length*r.cfg.Scale) + 2*r.cfg.Margin
	h := int(r.cfg.Pitch.Width*r.cfg.Scale) + 2*r.cfg.Margin
	return w, h
}

// toPixel maps a pitch point to canvas pixel coordinates. The y axis is
// flipped: larger y is further up the image.
func (r *Renderer) toPixel(pt r2.Point) (float64, float64) {
	px := float64(r.cfg.Margin) + (pt.X-r.cfg.Pitch.MinX())*r.cfg.Scale
	py := float64(r.cfg.Margin) + (r.cfg.Pitch.MaxY()-pt.Y)*r.cfg.Scale
	return px, py
}

// newCanvas allocates a canvas filled with the background color
func (r *Renderer) newCanvas(bg color.NRGBA) *image.NRGBA {
	w, h := r.imageSize()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	return img
}

// drawPitchMarkings draws the outline, halfway line, center circle and
// penalty areas
func (r *Renderer) drawPitchMarkings(img *image.NRGBA, col color.NRGBA) {
	p := r.cfg.Pitch
	lw := 1.5

	// Outline
	r.strokeRect(img, p.MinX(), p.MinY(), p.MaxX(), p.MaxY(), col, lw)

	// Halfway line
	r.strokeSegment(img, r2.Point{X: 0, Y: p.MinY()}, r2.Point{X: 0, Y: p.MaxY()}, col, lw)

	// Center circle
	cx, cy := r.toPixel(r2.Point{})
	strokeCircle(img, cx, cy, centerCircleRadiusM*r.cfg.Scale, col, lw)

	// Penalty areas, when the pitch is wide enough to hold them
	if penaltyAreaWidthM < p.Width {
		half := penaltyAreaWidthM / 2
		r.strokeRect(img, p.MinX(), -half, p.MinX()+penaltyAreaDepthM, half, col, lw)
		r.strokeRect(img, p.MaxX()-penaltyAreaDepthM, -half, p.MaxX(), half, col, lw)
	}
}

// strokeRect draws a rectangle outline between two pitch corners
func (r *Renderer) strokeRect(img *image.NRGBA, x0, y0, x1, y1 float64, col color.NRGBA, width float64) {
	a := r2.Point{X: x0, Y: y0}
	b := r2.Point{X: x1, Y: y0}
	c := r2.Point{X: x1, Y: y1}
	d := r2.Point{X: x0, Y: y1}
	r.strokeSegment(img, a, b, col, width)
	r.strokeSegment(img, b, c, col, width)
	r.strokeSegment(img, c, d, col, width)
	r.strokeSegment(img, d, a, col, width)
}

// strokeSegment draws a line between two pitch points
func (r *Renderer) strokeSegment(img *image.NRGBA, a, b r2.Point, col color.NRGBA, width float64) {
	ax, ay := r.toPixel(a)
	bx, by := r.toPixel(b)
	strokeLine(img, ax, ay, bx, by, col, width)
}

// strokeLine draws a line in pixel space by stamping along the segment
func strokeLine(img *image.NRGBA, x0, y0, x1, y1 float64, col color.NRGBA, width float64) {
	dx := x1 - x0
	dy := y1 - y0
	length := math.Hypot(dx, dy)
	if length == 0 {
		stamp(img, x0, y0, col, width)
		return
	}

	steps := int(length*2) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		stamp(img, x0+dx*t, y0+dy*t, col, width)
	}
}

// strokeCircle draws a circle outline in pixel space
func strokeCircle(img *image.NRGBA, cx, cy, radius float64, col color.NRGBA, width float64) {
	if radius <= 0 {
		return
	}

	steps := int(2*math.Pi*radius*2) + 8
	for i := 0; i <= steps; i++ {
		theta := 2 * math.Pi * float64(i) / float64(steps)
		stamp(img, cx+radius*math.Cos(theta), cy+radius*math.Sin(theta), col, width)
	}
}

// stamp fills a small square of the given width centered on the point
func stamp(img *image.NRGBA, x, y float64, col color.NRGBA, width float64) {
	half := width / 2
	x0 := int(math.Floor(x - half))
	x1 := int(math.Ceil(x + half))
	y0 := int(math.Floor(y - half))
	y1 := int(math.Ceil(y + half))

	bounds := img.Bounds()
	for py := y0; py <= y1; py++ {
		for px := x0; px <= x1; px++ {
			if px >= bounds.Min.X && px < bounds.Max.X && py >= bounds.Min.Y && py < bounds.Max.Y {
				img.SetNRGBA(px, py, col)
			}
		}
	}
}
