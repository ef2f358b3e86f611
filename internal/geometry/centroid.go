package geometry

import (
	"errors"
	"math"
)

// ErrDegeneratePolygon is returned when the exact centroid is requested for
// a polygon whose signed area is zero (fewer than 3 vertices, or all
// vertices collinear).
var ErrDegeneratePolygon = errors.New("degenerate polygon: signed area is zero")

// ErrEmptyPolygon is returned when a computation needs at least one vertex.
var ErrEmptyPolygon = errors.New("empty polygon")

// Centroid computes the exact centroid of a polygon using the signed-area
// (shoelace) formula. Each coordinate is rounded half away from zero.
func Centroid(p Polygon) (Point, error) {
	if len(p) < 3 {
		return Point{}, ErrDegeneratePolygon
	}

	var area, cx, cy float64
	n := len(p)

	for i := 0; i < n; i++ {
		p1 := p[i]
		p2 := p[(i+1)%n] // wrap around to the first vertex
		cross := float64(p1.X*p2.Y - p2.X*p1.Y)
		area += cross
		cx += float64(p1.X+p2.X) * cross
		cy += float64(p1.Y+p2.Y) * cross
	}

	area *= 0.5
	if area == 0 {
		return Point{}, ErrDegeneratePolygon
	}

	cx /= 6 * area
	cy /= 6 * area

	return Point{X: round(cx), Y: round(cy)}, nil
}

// ApproxCentroid computes the arithmetic mean of the polygon's vertices.
// It is defined for any non-empty polygon, including degenerate ones, but
// drifts from the exact centroid on irregular shapes where vertices cluster
// on one side. That divergence is inherent to the formula, not a bug.
func ApproxCentroid(p Polygon) (Point, error) {
	if len(p) == 0 {
		return Point{}, ErrEmptyPolygon
	}

	var sx, sy int
	for _, v := range p {
		sx += v.X
		sy += v.Y
	}

	n := float64(len(p))
	return Point{X: round(float64(sx) / n), Y: round(float64(sy) / n)}, nil
}

// Area returns the absolute enclosed area of the polygon. A polygon with
// fewer than 3 vertices has zero area.
func Area(p Polygon) float64 {
	if len(p) < 3 {
		return 0
	}

	var sum float64
	n := len(p)
	for i := 0; i < n; i++ {
		p1 := p[i]
		p2 := p[(i+1)%n]
		sum += float64(p1.X*p2.Y - p2.X*p1.Y)
	}

	return math.Abs(sum / 2)
}

// round rounds half away from zero, per math.Round.
func round(v float64) int {
	return int(math.Round(v))
}
