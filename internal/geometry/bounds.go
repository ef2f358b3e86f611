package geometry

import "github.com/jbeda/geom"

// Coord converts a Point to a float coordinate for use with the geom package.
func Coord(p Point) geom.Coord {
	return geom.Coord{X: float64(p.X), Y: float64(p.Y)}
}

// Bounds returns the axis-aligned bounding box of a non-empty polygon.
func Bounds(p Polygon) (geom.Rect, error) {
	if len(p) == 0 {
		return geom.Rect{}, ErrEmptyPolygon
	}

	r := geom.Rect{Min: Coord(p[0]), Max: Coord(p[0])}
	for _, v := range p[1:] {
		r.ExpandToContainCoord(Coord(v))
	}
	return r, nil
}

// ContainsCursor reports whether the cursor position falls inside the
// polygon's bounding box. Used for hover hit-testing on the canvas.
func ContainsCursor(p Polygon, cursor Point) bool {
	r, err := Bounds(p)
	if err != nil {
		return false
	}
	return r.ContainsCoord(Coord(cursor))
}

// NearestVertex returns the index of the vertex closest to the cursor and
// its distance in pixels. Returns -1 for an empty polygon.
func NearestVertex(p Polygon, cursor Point) (int, float64) {
	best := -1
	bestDist := 0.0
	c := Coord(cursor)

	for i, v := range p {
		d := Coord(v).DistanceFrom(c)
		if best < 0 || d < bestDist {
			best = i
			bestDist = d
		}
	}

	return best, bestDist
}
