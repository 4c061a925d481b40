package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPolygon_RejectsTooFewVertices(t *testing.T) {
	_, err := NewPolygon([]Vertex{{0, 0}, {1, 1}})
	require.Error(t, err)
}

func TestNewPolygon_CopiesInput(t *testing.T) {
	in := []Vertex{{0, 0}, {1, 0}, {1, 1}}
	rec, err := NewPolygon(in)
	require.NoError(t, err)

	in[0].X = 42
	assert.Equal(t, 0.0, rec.Vertex(0).X)

	out := rec.Vertices()
	out[1].Y = 42
	assert.Equal(t, 0.0, rec.Vertex(1).Y)
}

func TestRecord_Valid(t *testing.T) {
	assert.True(t, NewPoint(1, 1).Valid())
	assert.True(t, NewSegment(1, 1, 2, 2).Valid())
	assert.True(t, mustPolygon(t, 0, 0, 1, 0, 0, 1).Valid())
	assert.False(t, Record{}.Valid())
}

func TestRecord_String(t *testing.T) {
	assert.Equal(t, "segment(1 2 3 4)", NewSegment(1, 2, 3, 4).String())
}

func TestRecord_Hit(t *testing.T) {
	square := mustPolygon(t, 0, 0, 10, 0, 10, 10, 0, 10)
	ell := mustPolygon(t, 0, 0, 10, 0, 10, 4, 4, 4, 4, 10, 0, 10)

	tests := []struct {
		name   string
		record Record
		at     Vertex
		tol    float64
		want   bool
	}{
		{"point center", NewPoint(5, 5), Vertex{5, 5}, 0, true},
		{"point marker edge", NewPoint(5, 5), Vertex{10, 5}, 0, true},
		{"point outside", NewPoint(5, 5), Vertex{11, 5}, 0.5, false},
		{"segment on line", NewSegment(0, 0, 10, 0), Vertex{5, 0}, 0, true},
		{"segment within tolerance", NewSegment(0, 0, 10, 0), Vertex{5, 2}, 3, true},
		{"segment past end", NewSegment(0, 0, 10, 0), Vertex{14, 0}, 3, false},
		{"degenerate segment", NewSegment(2, 2, 2, 2), Vertex{2, 3}, 1, true},
		{"polygon inside", square, Vertex{5, 5}, 0, true},
		{"polygon near edge", square, Vertex{11, 5}, 2, true},
		{"polygon outside", square, Vertex{20, 5}, 2, false},
		{"polygon closing edge", square, Vertex{-1, 5}, 1.5, true},
		{"concave inside arm", ell, Vertex{2, 8}, 0, true},
		{"concave notch", ell, Vertex{8, 8}, 0.5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.record.Hit(tt.at, tt.tol))
		})
	}
}
