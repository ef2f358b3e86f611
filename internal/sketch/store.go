// Package sketch holds the polygons for one drawing session: the finalized
// polygons in completion order, plus the single polygon currently being drawn.
package sketch

import "chosenoffset.com/polydraw/internal/geometry"

// Listener receives notifications when the store changes. Implementations
// typically log the mutation or trigger a redraw.
type Listener interface {
	// VertexAdded is called after a vertex is appended to the active polygon.
	VertexAdded(p geometry.Point)

	// PolygonFinalized is called after a non-empty active polygon is
	// committed to the finalized sequence.
	PolygonFinalized(poly geometry.Polygon)

	// Cleared is called after all polygons are removed.
	Cleared()
}

// Store owns all polygon state for a session. A Store belongs to a single
// goroutine (the event loop); it is not safe for concurrent use.
type Store struct {
	finalized []geometry.Polygon
	active    geometry.Polygon
	listener  Listener
}

// New creates an empty Store.
func New() *Store {
	return &Store{}
}

// SetListener registers the change listener. A nil listener disables
// notifications.
func (s *Store) SetListener(l Listener) {
	s.listener = l
}

// AppendVertex appends a vertex to the active polygon. Coordinates are not
// range-checked.
func (s *Store) AppendVertex(p geometry.Point) {
	s.active = append(s.active, p)
	if s.listener != nil {
		s.listener.VertexAdded(p)
	}
}

// FinalizeActive commits the active polygon to the finalized sequence as an
// independent snapshot and starts a fresh active polygon. Finalizing an
// empty active polygon is a no-op.
func (s *Store) FinalizeActive() {
	if len(s.active) == 0 {
		return
	}

	snapshot := s.active.Clone()
	s.finalized = append(s.finalized, snapshot)
	s.active = nil

	if s.listener != nil {
		s.listener.PolygonFinalized(snapshot)
	}
}

// ClearAll removes every finalized polygon and the active polygon.
func (s *Store) ClearAll() {
	s.finalized = nil
	s.active = nil
	if s.listener != nil {
		s.listener.Cleared()
	}
}

// Replace swaps in a fully-formed polygon set, discarding all current state.
// Used when loading a sketch from disk; the listener is not notified.
func (s *Store) Replace(polys []geometry.Polygon) {
	s.finalized = polys
	s.active = nil
}

// Finalized returns the finalized polygons in completion order. The returned
// slice is a view into the store and must not be modified.
func (s *Store) Finalized() []geometry.Polygon {
	return s.finalized
}

// Active returns the polygon currently being drawn. The returned slice is a
// view into the store and must not be modified.
func (s *Store) Active() geometry.Polygon {
	return s.active
}

// Len returns the number of finalized polygons.
func (s *Store) Len() int {
	return len(s.finalized)
}

// TotalVertices returns the vertex count across all finalized polygons and
// the active polygon.
func (s *Store) TotalVertices() int {
	total := len(s.active)
	for _, poly := range s.finalized {
		total += len(poly)
	}
	return total
}
