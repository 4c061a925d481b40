package models

import (
	"sync"

	"desktop-gis/internal/geometry"

	"github.com/google/uuid"
)

// Shape is a record held by the store under a stable identifier
type Shape struct {
	ID     string
	Record geometry.Record
}

// ShapeStore is the ordered set of shapes backing the map
type ShapeStore struct {
	mu     sync.RWMutex
	shapes []Shape
}

// NewShapeStore creates an empty store
func NewShapeStore() *ShapeStore {
	return &ShapeStore{
		shapes: make([]Shape, 0),
	}
}

// Clear removes all shapes
func (s *ShapeStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shapes = make([]Shape, 0)
}

// Add appends a record and returns it with its new identifier
func (s *ShapeStore) Add(record geometry.Record) Shape {
	shape := Shape{
		ID:     uuid.NewString(),
		Record: record,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.shapes = append(s.shapes, shape)
	return shape
}

// AddAll appends records in order
func (s *ShapeStore) AddAll(records []geometry.Record) {
	for _, record := range records {
		s.Add(record)
	}
}

// Remove deletes the shapes with the given identifiers and returns how
// many were removed. Unknown identifiers are ignored.
func (s *ShapeStore) Remove(ids ...string) int {
	if len(ids) == 0 {
		return 0
	}

	doomed := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		doomed[id] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.shapes[:0]
	for _, shape := range s.shapes {
		if _, ok := doomed[shape.ID]; ok {
			continue
		}
		kept = append(kept, shape)
	}

	removed := len(s.shapes) - len(kept)
	s.shapes = kept
	return removed
}

// Shapes returns a snapshot of all shapes in store order
func (s *ShapeStore) Shapes() []Shape {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Shape, len(s.shapes))
	copy(out, s.shapes)
	return out
}

// Records returns the records in store order
func (s *ShapeStore) Records() []geometry.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]geometry.Record, len(s.shapes))
	for i, shape := range s.shapes {
		out[i] = shape.Record
	}
	return out
}

// Len returns the number of shapes
func (s *ShapeStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.shapes)
}

// Serialize renders the store as text lines, one per shape
func (s *ShapeStore) Serialize() []string {
	return geometry.Serialize(s.Records())
}

// TopmostAt returns the last shape in store order hit by p
func (s *ShapeStore) TopmostAt(p geometry.Vertex, tolerance float64) (Shape, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := len(s.shapes) - 1; i >= 0; i-- {
		if s.shapes[i].Record.Hit(p, tolerance) {
			return s.shapes[i], true
		}
	}
	return Shape{}, false
}

// GetStats summarises the store contents by kind
func (s *ShapeStore) GetStats() StoreStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := StoreStats{Total: len(s.shapes)}
	for _, shape := range s.shapes {
		switch shape.Record.Kind() {
		case geometry.KindPoint:
			stats.Points++
		case geometry.KindSegment:
			stats.Segments++
		case geometry.KindPolygon:
			stats.Polygons++
		}
	}
	return stats
}

// StoreStats contains shape counts
type StoreStats struct {
	Total    int
	Points   int
	Segments int
	Polygons int
}
