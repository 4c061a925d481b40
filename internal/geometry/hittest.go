package geometry

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// PointMarkerRadius is the world-space radius a point is drawn with
const PointMarkerRadius = 5.0

// Hit reports whether p touches the record within tolerance world units
func (r Record) Hit(p Vertex, tolerance float64) bool {
	at := p.orbPoint()

	switch r.kind {
	case KindPoint:
		return planar.Distance(at, r.vertices[0].orbPoint()) <= PointMarkerRadius+tolerance
	case KindSegment:
		return planar.DistanceFromSegment(r.vertices[0].orbPoint(), r.vertices[1].orbPoint(), at) <= tolerance
	case KindPolygon:
		ring := r.orbRing()
		if planar.RingContains(ring, at) {
			return true
		}
		for i := 0; i < len(ring)-1; i++ {
			if planar.DistanceFromSegment(ring[i], ring[i+1], at) <= tolerance {
				return true
			}
		}
		return false
	default:
		return false
	}
}

func (v Vertex) orbPoint() orb.Point {
	return orb.Point{v.X, v.Y}
}

// orbRing returns the polygon outline as a closed ring
func (r Record) orbRing() orb.Ring {
	ring := make(orb.Ring, 0, len(r.vertices)+1)
	for _, v := range r.vertices {
		ring = append(ring, v.orbPoint())
	}
	return append(ring, ring[0])
}
