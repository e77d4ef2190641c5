package pitch

import (
	"math"

	"github.com/golang/geo/r2"
)

// Distance calculates the Euclidean distance between two pitch points in meters
func Distance(a, b r2.Point) float64 {
	return b.Sub(a).Norm()
}

// Heading calculates the direction of travel from a to b in degrees,
// atan2(dy, dx): 0 points toward the attacking goal line, 90 toward the
// upper touchline. Result is in (-180, 180].
func Heading(a, b r2.Point) float64 {
	d := b.Sub(a)
	return math.Atan2(d.Y, d.X) * 180 / math.Pi
}

// AngleDelta returns the signed smallest rotation from heading `from` to
// heading `to`, normalized into [-180, 180]. Inputs are degrees.
func AngleDelta(from, to float64) float64 {
	delta := math.Mod(to-from, 360)
	if delta > 180 {
		delta -= 360
	} else if delta < -180 {
		delta += 360
	}
	return delta
}

// PathLength calculates the total length of the polyline through the points
func PathLength(points []r2.Point) float64 {
	var total float64
	for i := 1; i < len(points); i++ {
		total += Distance(points[i-1], points[i])
	}
	return total
}

// Centroid calculates the centroid of a set of pitch points
func Centroid(points []r2.Point) r2.Point {
	if len(points) == 0 {
		return r2.Point{}
	}

	var sum r2.Point
	for _, p := range points {
		sum = sum.Add(p)
	}
	return sum.Mul(1 / float64(len(points)))
}

// RadiusOfGyration calculates the spatial dispersion of the points around
// their centroid, in meters
func RadiusOfGyration(points []r2.Point) float64 {
	if len(points) == 0 {
		return 0
	}

	center := Centroid(points)

	var sumSquaredDist float64
	for _, p := range points {
		d := Distance(center, p)
		sumSquaredDist += d * d
	}

	return math.Sqrt(sumSquaredDist / float64(len(points)))
}
