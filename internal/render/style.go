package render

import (
	"image/color"

	"desktop-gis/internal/geometry"
)

// Style describes how one shape kind is drawn
type Style struct {
	Stroke      color.Color
	StrokeWidth float64
	// Fill is nil for unfilled shapes
	Fill   color.Color
	Radius float64
}

var (
	pointStroke   = color.RGBA{R: 255, A: 255}
	pointFill     = color.Black
	segmentStroke = color.RGBA{B: 255, A: 255}
	polygonStroke = color.RGBA{G: 255, A: 255}
	polygonFill   = color.NRGBA{G: 255, A: 100}

	selectionStroke = color.RGBA{R: 255, G: 140, A: 255}
	gridStroke      = color.RGBA{R: 211, G: 211, B: 211, A: 255}
	background      = color.White
)

// StyleFor returns the style for a shape kind
func StyleFor(kind geometry.Kind) Style {
	switch kind {
	case geometry.KindPoint:
		return Style{Stroke: pointStroke, StrokeWidth: 1, Fill: pointFill, Radius: geometry.PointMarkerRadius}
	case geometry.KindSegment:
		return Style{Stroke: segmentStroke, StrokeWidth: 2}
	case geometry.KindPolygon:
		return Style{Stroke: polygonStroke, StrokeWidth: 2, Fill: polygonFill}
	default:
		return Style{Stroke: color.Black, StrokeWidth: 1}
	}
}

// Selected returns the highlighted variant of a style
func (s Style) Selected() Style {
	s.Stroke = selectionStroke
	s.StrokeWidth += 1
	return s
}
