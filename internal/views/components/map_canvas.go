package components

import (
	"image"
	"sync"

	"desktop-gis/internal/geometry"
	"desktop-gis/internal/render"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

const (
	MapMinWidth  = 400
	MapMinHeight = 300

	// hitTolerance is measured in screen units
	hitTolerance = 4.0
)

// MapCanvas draws the grid and shapes and turns pointer input into pan,
// zoom and selection.
type MapCanvas struct {
	widget.BaseWidget

	mu       sync.Mutex
	viewport render.Viewport
	renderer *render.Renderer
	items    func() []render.Item

	tapHandler func(world geometry.Vertex, tolerance float64)
}

var (
	_ fyne.Draggable  = (*MapCanvas)(nil)
	_ fyne.Scrollable = (*MapCanvas)(nil)
	_ fyne.Tappable   = (*MapCanvas)(nil)
)

// NewMapCanvas creates a map canvas. items is called on every redraw.
func NewMapCanvas(renderer *render.Renderer, items func() []render.Item) *MapCanvas {
	mc := &MapCanvas{
		viewport: render.NewViewport(),
		renderer: renderer,
		items:    items,
	}
	mc.ExtendBaseWidget(mc)
	return mc
}

// CreateRenderer builds the raster the scene is painted into
func (mc *MapCanvas) CreateRenderer() fyne.WidgetRenderer {
	raster := canvas.NewRaster(mc.paint)
	return &mapCanvasRenderer{
		mapCanvas: mc,
		raster:    raster,
		objects:   []fyne.CanvasObject{raster},
	}
}

// SetTapHandler sets the handler called with the tapped world position
// and a hit tolerance in world units.
func (mc *MapCanvas) SetTapHandler(handler func(world geometry.Vertex, tolerance float64)) {
	mc.tapHandler = handler
}

// Viewport returns the current pan and zoom
func (mc *MapCanvas) Viewport() render.Viewport {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	return mc.viewport
}

func (mc *MapCanvas) Dragged(e *fyne.DragEvent) {
	mc.mu.Lock()
	mc.viewport = mc.viewport.Pan(float64(e.Dragged.DX), float64(e.Dragged.DY))
	mc.mu.Unlock()
	mc.Refresh()
}

func (mc *MapCanvas) DragEnd() {}

func (mc *MapCanvas) Scrolled(e *fyne.ScrollEvent) {
	if e.Scrolled.DY == 0 {
		return
	}
	mc.mu.Lock()
	mc.viewport = mc.viewport.Wheel(float64(e.Position.X), float64(e.Position.Y), float64(e.Scrolled.DY))
	mc.mu.Unlock()
	mc.Refresh()
}

func (mc *MapCanvas) Tapped(e *fyne.PointEvent) {
	if mc.tapHandler == nil {
		return
	}

	vp := mc.Viewport()
	world := vp.ToWorld(float64(e.Position.X), float64(e.Position.Y))
	mc.tapHandler(world, hitTolerance/vp.Zoom)
}

// paint is the raster generator; w and h are in pixels
func (mc *MapCanvas) paint(w, h int) image.Image {
	scale := 1.0
	if size := mc.Size(); size.Width > 0 {
		scale = float64(w) / float64(size.Width)
	}

	var items []render.Item
	if mc.items != nil {
		items = mc.items()
	}
	return mc.renderer.Render(w, h, scale, mc.Viewport(), items)
}

type mapCanvasRenderer struct {
	mapCanvas *MapCanvas
	raster    *canvas.Raster
	objects   []fyne.CanvasObject
}

func (r *mapCanvasRenderer) Destroy()                     {}
func (r *mapCanvasRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *mapCanvasRenderer) MinSize() fyne.Size           { return fyne.NewSize(MapMinWidth, MapMinHeight) }
func (r *mapCanvasRenderer) Refresh()                     { r.raster.Refresh() }

func (r *mapCanvasRenderer) Layout(size fyne.Size) {
	r.raster.Resize(size)
	r.raster.Move(fyne.NewPos(0, 0))
}
