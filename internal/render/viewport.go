package render

import (
	"desktop-gis/internal/geometry"
)

const (
	ZoomInFactor  = 1.25
	ZoomOutFactor = 0.8
	MinZoom       = 0.05
	MaxZoom       = 50.0
)

// Viewport maps world coordinates to screen coordinates:
// screen = world*Zoom + Offset.
type Viewport struct {
	OffsetX float64
	OffsetY float64
	Zoom    float64
}

// NewViewport returns the identity viewport
func NewViewport() Viewport {
	return Viewport{Zoom: 1}
}

// ToScreen converts a world position to screen units
func (v Viewport) ToScreen(p geometry.Vertex) (float64, float64) {
	return p.X*v.Zoom + v.OffsetX, p.Y*v.Zoom + v.OffsetY
}

// ToWorld converts a screen position to world units
func (v Viewport) ToWorld(x, y float64) geometry.Vertex {
	return geometry.Vertex{
		X: (x - v.OffsetX) / v.Zoom,
		Y: (y - v.OffsetY) / v.Zoom,
	}
}

// Pan moves the view by a screen-space delta
func (v Viewport) Pan(dx, dy float64) Viewport {
	v.OffsetX += dx
	v.OffsetY += dy
	return v
}

// ZoomAt scales the view by factor while keeping the world point under
// the screen anchor fixed. The result is clamped to [MinZoom, MaxZoom].
func (v Viewport) ZoomAt(anchorX, anchorY, factor float64) Viewport {
	anchor := v.ToWorld(anchorX, anchorY)

	zoom := v.Zoom * factor
	if zoom < MinZoom {
		zoom = MinZoom
	}
	if zoom > MaxZoom {
		zoom = MaxZoom
	}

	v.Zoom = zoom
	v.OffsetX = anchorX - anchor.X*zoom
	v.OffsetY = anchorY - anchor.Y*zoom
	return v
}

// Wheel applies one mouse wheel step: positive delta zooms in
func (v Viewport) Wheel(anchorX, anchorY, delta float64) Viewport {
	if delta > 0 {
		return v.ZoomAt(anchorX, anchorY, ZoomInFactor)
	}
	return v.ZoomAt(anchorX, anchorY, ZoomOutFactor)
}
