package geometry

// Point represents a 2D point on the canvas in pixel coordinates
type Point struct {
	X, Y int
}

// Polygon is an ordered sequence of vertices. Insertion order is drawing
// order: vertex i connects to vertex i+1, and the last vertex closes back
// to the first when the polygon is treated as a closed shape.
type Polygon []Point

// Clone returns an independent copy of the polygon
func (p Polygon) Clone() Polygon {
	if p == nil {
		return nil
	}
	out := make(Polygon, len(p))
	copy(out, p)
	return out
}
