package pitch

import "github.com/golang/geo/r2"

// Pitch describes the playing surface extent. Coordinates are meters with
// the origin at the pitch center: x runs along the length (goal to goal),
// y along the width.
type Pitch struct {
	Length float64 // meters, goal line to goal line
	Width  float64 // meters, touchline to touchline
}

// Standard dimensions of the reference tracking data set
const (
	DefaultLength = 100.0
	DefaultWidth  = 60.0
)

// Default returns the default pitch used by the reference data set
func Default() Pitch {
	return Pitch{Length: DefaultLength, Width: DefaultWidth}
}

// MinX returns the defensive goal-line x coordinate
func (p Pitch) MinX() float64 { return -p.Length / 2 }

// MaxX returns the attacking goal-line x coordinate
func (p Pitch) MaxX() float64 { return p.Length / 2 }

// MinY returns the lower touchline y coordinate
func (p Pitch) MinY() float64 { return -p.Width / 2 }

// MaxY returns the upper touchline y coordinate
func (p Pitch) MaxY() float64 { return p.Width / 2 }

// Contains reports whether the point lies on the pitch (touchlines included)
func (p Pitch) Contains(pt r2.Point) bool {
	return pt.X >= p.MinX() && pt.X <= p.MaxX() &&
		pt.Y >= p.MinY() && pt.Y <= p.MaxY()
}

// ThirdBoundaries returns the two x values that split the pitch into three
// equal longitudinal thirds
func (p Pitch) ThirdBoundaries() (b1, b2 float64) {
	return -p.Length / 6, p.Length / 6
}
