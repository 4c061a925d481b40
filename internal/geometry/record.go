package geometry

import (
	"fmt"
)

// Kind identifies which shape a Record holds
type Kind int

const (
	KindPoint Kind = iota + 1
	KindSegment
	KindPolygon
)

// MinPolygonVertices is the smallest vertex count a polygon may have
const MinPolygonVertices = 3

func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "point"
	case KindSegment:
		return "segment"
	case KindPolygon:
		return "polygon"
	default:
		return "unknown"
	}
}

// Vertex is a single coordinate pair in world space
type Vertex struct {
	X float64
	Y float64
}

// Record is a parsed geometric shape. The zero value is not a valid
// record; use NewPoint, NewSegment or NewPolygon.
type Record struct {
	kind     Kind
	vertices []Vertex
}

// NewPoint creates a point record
func NewPoint(x, y float64) Record {
	return Record{
		kind:     KindPoint,
		vertices: []Vertex{{X: x, Y: y}},
	}
}

// NewSegment creates a line segment record from (x1, y1) to (x2, y2)
func NewSegment(x1, y1, x2, y2 float64) Record {
	return Record{
		kind:     KindSegment,
		vertices: []Vertex{{X: x1, Y: y1}, {X: x2, Y: y2}},
	}
}

// NewPolygon creates a polygon record. The vertex slice is copied.
func NewPolygon(vertices []Vertex) (Record, error) {
	if len(vertices) < MinPolygonVertices {
		return Record{}, fmt.Errorf("polygon needs at least %d vertices, got %d", MinPolygonVertices, len(vertices))
	}

	owned := make([]Vertex, len(vertices))
	copy(owned, vertices)

	return Record{
		kind:     KindPolygon,
		vertices: owned,
	}, nil
}

// Kind returns the shape kind
func (r Record) Kind() Kind {
	return r.kind
}

// Vertices returns a copy of the record's vertices in order
func (r Record) Vertices() []Vertex {
	out := make([]Vertex, len(r.vertices))
	copy(out, r.vertices)
	return out
}

// VertexCount returns the number of vertices without copying
func (r Record) VertexCount() int {
	return len(r.vertices)
}

// Vertex returns the i-th vertex
func (r Record) Vertex(i int) Vertex {
	return r.vertices[i]
}

// Valid reports whether the record was built by one of the constructors
func (r Record) Valid() bool {
	switch r.kind {
	case KindPoint:
		return len(r.vertices) == 1
	case KindSegment:
		return len(r.vertices) == 2
	case KindPolygon:
		return len(r.vertices) >= MinPolygonVertices
	default:
		return false
	}
}

// Equal reports whether two records have the same kind and vertices
func (r Record) Equal(other Record) bool {
	if r.kind != other.kind || len(r.vertices) != len(other.vertices) {
		return false
	}
	for i := range r.vertices {
		if r.vertices[i] != other.vertices[i] {
			return false
		}
	}
	return true
}

func (r Record) String() string {
	return fmt.Sprintf("%s(%s)", r.kind, Format(r))
}
