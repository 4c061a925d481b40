package render

import "desktop-gis/internal/geometry"

// Grid is the decorative background overlay. Its lines are generated
// on every render and never stored with the shapes.
type Grid struct {
	CellSize int
	Width    int
	Height   int
}

// DefaultGrid is a 20-unit grid over an 800x600 area
func DefaultGrid() Grid {
	return Grid{CellSize: 20, Width: 800, Height: 600}
}

// GridLine is one overlay line in world units
type GridLine struct {
	From geometry.Vertex
	To   geometry.Vertex
}

// Lines returns the vertical lines followed by the horizontal ones
func (g Grid) Lines() []GridLine {
	if g.CellSize <= 0 {
		return nil
	}

	lines := make([]GridLine, 0, g.Width/g.CellSize+g.Height/g.CellSize+2)
	for x := 0; x < g.Width; x += g.CellSize {
		lines = append(lines, GridLine{
			From: geometry.Vertex{X: float64(x)},
			To:   geometry.Vertex{X: float64(x), Y: float64(g.Height)},
		})
	}
	for y := 0; y < g.Height; y += g.CellSize {
		lines = append(lines, GridLine{
			From: geometry.Vertex{Y: float64(y)},
			To:   geometry.Vertex{X: float64(g.Width), Y: float64(y)},
		})
	}
	return lines
}
