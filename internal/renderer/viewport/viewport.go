// Package viewport maps terminal cells to diagram coordinates and back.
//
// A terminal cell is roughly twice as tall as it is wide, so one row spans
// more diagram units than one column. The viewport keeps that aspect ratio
// so circles stay round while panning and zooming.
package viewport

import (
	"math"

	"github.com/dshills/linkdraw/internal/geom"
)

const (
	// DefaultUnitsPerColumn is the diagram width of one column at zoom 1.
	DefaultUnitsPerColumn = 4.0

	// DefaultCellAspect is the height of a cell relative to its width.
	DefaultCellAspect = 2.0

	// MinZoom and MaxZoom bound ZoomAt.
	MinZoom = 0.25
	MaxZoom = 8.0
)

// Viewport is the transform between screen cells and diagram space.
type Viewport struct {
	width  int
	height int

	// origin is the diagram point drawn at cell (0, 0).
	origin geom.Point

	unitsPerColumn float64
	aspect         float64
	zoom           float64
}

// NewViewport creates a viewport with the given size.
// Width and height are clamped to a minimum of 1.
func NewViewport(width, height int) *Viewport {
	v := &Viewport{
		unitsPerColumn: DefaultUnitsPerColumn,
		aspect:         DefaultCellAspect,
		zoom:           1,
	}
	v.Resize(width, height)
	return v
}

// Resize changes the screen size. The origin is kept.
func (v *Viewport) Resize(width, height int) {
	v.width = max(width, 1)
	v.height = max(height, 1)
}

// Width returns the viewport width in cells.
func (v *Viewport) Width() int {
	return v.width
}

// Height returns the viewport height in cells.
func (v *Viewport) Height() int {
	return v.height
}

// SetAspect sets the cell height-to-width ratio. Non-positive values are ignored.
func (v *Viewport) SetAspect(aspect float64) {
	if aspect > 0 {
		v.aspect = aspect
	}
}

// Zoom returns the current zoom factor.
func (v *Viewport) Zoom() float64 {
	return v.zoom
}

// Origin returns the diagram point at cell (0, 0).
func (v *Viewport) Origin() geom.Point {
	return v.origin
}

// Scale returns the diagram units spanned by one column and one row.
func (v *Viewport) Scale() (sx, sy float64) {
	sx = v.unitsPerColumn / v.zoom
	return sx, sx * v.aspect
}

// ToLocal converts a screen position to diagram coordinates.
func (v *Viewport) ToLocal(screen geom.Point) geom.Point {
	sx, sy := v.Scale()
	return geom.Pt(v.origin.X+screen.X*sx, v.origin.Y+screen.Y*sy)
}

// ToScreen converts diagram coordinates to a fractional screen position.
func (v *Viewport) ToScreen(local geom.Point) geom.Point {
	sx, sy := v.Scale()
	return geom.Pt((local.X-v.origin.X)/sx, (local.Y-v.origin.Y)/sy)
}

// Cell returns the cell containing local and whether it is on screen.
func (v *Viewport) Cell(local geom.Point) (x, y int, ok bool) {
	s := v.ToScreen(local)
	x = int(math.Floor(s.X))
	y = int(math.Floor(s.Y))
	return x, y, x >= 0 && x < v.width && y >= 0 && y < v.height
}

// Pan scrolls the view by the given number of cells.
func (v *Viewport) Pan(dx, dy int) {
	sx, sy := v.Scale()
	v.origin = v.origin.Plus(geom.Pt(float64(dx)*sx, float64(dy)*sy))
}

// ZoomAt multiplies the zoom by factor, keeping the diagram point under
// screen fixed. The result is clamped to [MinZoom, MaxZoom].
func (v *Viewport) ZoomAt(screen geom.Point, factor float64) {
	if factor <= 0 {
		return
	}
	anchor := v.ToLocal(screen)
	v.zoom = min(max(v.zoom*factor, MinZoom), MaxZoom)

	sx, sy := v.Scale()
	v.origin = geom.Pt(anchor.X-screen.X*sx, anchor.Y-screen.Y*sy)
}

// Reset restores the origin and zoom.
func (v *Viewport) Reset() {
	v.origin = geom.Zero
	v.zoom = 1
}
