package render

import (
	"image"
	"image/color"
	"image/draw"

	"desktop-gis/internal/geometry"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// Item is one shape as the renderer sees it
type Item struct {
	Record   geometry.Record
	Selected bool
}

// Renderer rasterizes the grid overlay and shapes into an image
type Renderer struct {
	grid Grid
}

// NewRenderer creates a renderer drawing the given grid beneath shapes
func NewRenderer(grid Grid) *Renderer {
	return &Renderer{grid: grid}
}

// Render draws a width x height pixel image. pixelScale converts the
// viewport's screen units into pixels.
func (r *Renderer) Render(width, height int, pixelScale float64, vp Viewport, items []Item) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	if width <= 0 || height <= 0 {
		return img
	}
	if pixelScale <= 0 {
		pixelScale = 1
	}

	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	c := &canvasPainter{
		filler:     rasterx.NewFiller(width, height, scanner),
		stroker:    rasterx.NewStroker(width, height, scanner),
		viewport:   vp,
		pixelScale: pixelScale,
	}

	for _, line := range r.grid.Lines() {
		c.polyline([]geometry.Vertex{line.From, line.To}, false, gridStroke, 1)
	}

	for _, item := range items {
		style := StyleFor(item.Record.Kind())
		if item.Selected {
			style = style.Selected()
		}
		c.shape(item.Record, style)
	}

	return img
}

type canvasPainter struct {
	filler     *rasterx.Filler
	stroker    *rasterx.Stroker
	viewport   Viewport
	pixelScale float64
}

func (c *canvasPainter) toPixel(p geometry.Vertex) (float64, float64) {
	x, y := c.viewport.ToScreen(p)
	return x * c.pixelScale, y * c.pixelScale
}

func (c *canvasPainter) toFixed(p geometry.Vertex) fixed.Point26_6 {
	return rasterx.ToFixedP(c.toPixel(p))
}

func (c *canvasPainter) shape(record geometry.Record, style Style) {
	switch record.Kind() {
	case geometry.KindPoint:
		c.circle(record.Vertex(0), style)
	case geometry.KindSegment:
		c.polyline(record.Vertices(), false, style.Stroke, style.StrokeWidth)
	case geometry.KindPolygon:
		vertices := record.Vertices()
		if style.Fill != nil {
			c.fillPolygon(vertices, style.Fill)
		}
		c.polyline(vertices, true, style.Stroke, style.StrokeWidth)
	}
}

func (c *canvasPainter) circle(center geometry.Vertex, style Style) {
	cx, cy := c.toPixel(center)
	radius := style.Radius * c.viewport.Zoom * c.pixelScale

	if style.Fill != nil {
		c.filler.Clear()
		c.filler.SetColor(style.Fill)
		rasterx.AddCircle(cx, cy, radius, c.filler)
		c.filler.Draw()
	}

	c.setStroke(style.StrokeWidth)
	c.stroker.SetColor(style.Stroke)
	rasterx.AddCircle(cx, cy, radius, c.stroker)
	c.stroker.Draw()
}

func (c *canvasPainter) fillPolygon(vertices []geometry.Vertex, fill color.Color) {
	c.filler.Clear()
	c.filler.SetColor(fill)
	c.filler.Start(c.toFixed(vertices[0]))
	for _, v := range vertices[1:] {
		c.filler.Line(c.toFixed(v))
	}
	c.filler.Stop(true)
	c.filler.Draw()
}

func (c *canvasPainter) polyline(vertices []geometry.Vertex, closed bool, stroke color.Color, width float64) {
	if len(vertices) < 2 {
		return
	}

	c.setStroke(width)
	c.stroker.SetColor(stroke)
	c.stroker.Start(c.toFixed(vertices[0]))
	for _, v := range vertices[1:] {
		c.stroker.Line(c.toFixed(v))
	}
	c.stroker.Stop(closed)
	c.stroker.Draw()
}

func (c *canvasPainter) setStroke(width float64) {
	c.stroker.Clear()
	c.stroker.SetStroke(
		fixed.Int26_6(width*c.pixelScale*64),
		fixed.I(4),
		rasterx.ButtCap,
		rasterx.ButtCap,
		rasterx.RoundGap,
		rasterx.Round,
	)
}
