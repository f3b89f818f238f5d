package renderer

import (
	"fmt"
	"math"

	"github.com/dshills/linkdraw/internal/diagram"
	"github.com/dshills/linkdraw/internal/geom"
	"github.com/dshills/linkdraw/internal/renderer/backend"
	"github.com/dshills/linkdraw/internal/renderer/core"
	"github.com/dshills/linkdraw/internal/renderer/viewport"
)

// Scene is the editor state a frame is drawn from.
type Scene interface {
	Model() *diagram.Model
	NodeHighlighted(n *diagram.Node) bool
	NodeDragging(n *diagram.Node) bool
	HoveredNode() *diagram.Node
	LinkHighlight(l *diagram.Link) float64
	Lasso() *diagram.Lasso
	ActiveBehavior() string
}

// Options configures the renderer.
type Options struct {
	// NodeRadius and ArrowLength are in diagram units and must match the
	// values the editor hit-tests with.
	NodeRadius  float64
	ArrowLength float64

	// ShowStatus reserves the bottom row for the status line.
	ShowStatus bool
}

// DefaultOptions returns sensible default options.
func DefaultOptions() Options {
	return Options{
		NodeRadius:  10,
		ArrowLength: 8,
		ShowStatus:  true,
	}
}

// Renderer composes frames onto a backend.
type Renderer struct {
	backend backend.Backend
	view    *viewport.Viewport
	theme   Theme
	opts    Options

	message    string
	frameCount uint64
}

// New creates a renderer drawing through view onto b.
func New(b backend.Backend, view *viewport.Viewport, opts Options) *Renderer {
	return &Renderer{
		backend: b,
		view:    view,
		theme:   DefaultTheme(),
		opts:    opts,
	}
}

// SetTheme replaces the theme.
func (r *Renderer) SetTheme(t Theme) {
	r.theme = t
}

// SetOptions replaces the options.
func (r *Renderer) SetOptions(opts Options) {
	r.opts = opts
}

// SetMessage sets the text shown at the right of the status line.
func (r *Renderer) SetMessage(msg string) {
	r.message = msg
}

// Viewport returns the viewport.
func (r *Renderer) Viewport() *viewport.Viewport {
	return r.view
}

// FrameCount returns the number of frames rendered.
func (r *Renderer) FrameCount() uint64 {
	return r.frameCount
}

// Resize adapts the viewport to a new terminal size.
func (r *Renderer) Resize(width, height int) {
	if r.opts.ShowStatus {
		height--
	}
	r.view.Resize(width, height)
}

// Render draws one frame of s and flushes it.
func (r *Renderer) Render(s Scene) {
	r.backend.Clear()

	m := s.Model()
	for _, l := range m.Links() {
		r.drawLink(l, s.LinkHighlight(l))
	}
	if p := m.Pending(); p != nil {
		r.drawSegment(geom.Seg(p.Source.Pos, p.Pos), r.theme.Pending, 0)
	}
	if lasso := s.Lasso(); lasso != nil {
		r.drawPath(lasso.Points(), r.theme.Lasso)
	}

	hovered := s.HoveredNode()
	for _, n := range m.Nodes() {
		style := r.theme.Node
		switch {
		case s.NodeDragging(n):
			style = r.theme.NodeDragging
		case s.NodeHighlighted(n):
			style = r.theme.NodeHighlight
		case n == hovered:
			style = style.Reverse()
		}
		r.drawNode(n, style)
	}

	if r.opts.ShowStatus {
		r.drawStatus(s)
	}

	r.backend.Show()
	r.frameCount++
}

func (r *Renderer) drawLink(l *diagram.Link, highlight float64) {
	style := r.theme.Link
	if l.Marked {
		style = r.theme.LinkMarked
	}

	seg := diagram.LinkGeometry(l, r.opts.NodeRadius, r.opts.ArrowLength)
	r.drawSegment(seg, style, 0)

	if highlight > 0 {
		r.drawSegment(diagram.HighlightSegment(l, highlight), r.theme.LinkHover, 0)
	}

	// The arrowhead sits on the target's rim.
	tip := l.Target.Pos.PointCloserTo(l.Source.Pos, r.opts.NodeRadius)
	d := r.view.ToScreen(l.Target.Pos).Minus(r.view.ToScreen(l.Source.Pos))
	if x, y, ok := r.view.Cell(tip); ok {
		r.backend.SetCell(x, y, core.NewStyledCell(arrowChar(d.X, d.Y), style))
	}
}

// drawSegment rasterizes seg. A zero ch picks a character from the slope.
func (r *Renderer) drawSegment(seg geom.Segment, style core.Style, ch rune) {
	a := r.view.ToScreen(seg.A)
	b := r.view.ToScreen(seg.B)
	if ch == 0 {
		ch = lineChar(b.X-a.X, b.Y-a.Y)
	}

	x0, y0 := int(math.Floor(a.X)), int(math.Floor(a.Y))
	x1, y1 := int(math.Floor(b.X)), int(math.Floor(b.Y))
	if !r.segmentVisible(x0, y0, x1, y1) {
		return
	}
	cell := core.NewStyledCell(ch, style)
	for _, p := range bresenham(x0, y0, x1, y1) {
		r.setCell(p.X, p.Y, cell)
	}
}

func (r *Renderer) drawPath(points []geom.Point, style core.Style) {
	for i := 1; i < len(points); i++ {
		r.drawSegment(geom.Seg(points[i-1], points[i]), style, '·')
	}
	if len(points) == 1 {
		if x, y, ok := r.view.Cell(points[0]); ok {
			r.setCell(x, y, core.NewStyledCell('·', style))
		}
	}
}

// drawNode writes the label in parentheses centered on the node.
func (r *Renderer) drawNode(n *diagram.Node, style core.Style) {
	x, y, _ := r.view.Cell(n.Pos)
	text := []rune("(" + n.Label + ")")
	start := x - len(text)/2
	for i, ch := range text {
		r.setCell(start+i, y, core.NewStyledCell(ch, style))
	}
}

func (r *Renderer) drawStatus(s Scene) {
	width, height := r.backend.Size()
	y := height - 1
	r.backend.Fill(core.RectFromSize(y, 0, 1, width), core.NewStyledCell(' ', r.theme.Status))

	m := s.Model()
	mode := s.ActiveBehavior()
	if mode == "" {
		mode = "idle"
	}
	left := fmt.Sprintf(" %s │ %d nodes │ %d links", mode, len(m.Nodes()), len(m.Links()))
	if marked := m.MarkedCount(); marked > 0 {
		left += fmt.Sprintf(" │ %d marked", marked)
	}
	r.writeString(0, y, left, r.theme.Status)

	if r.message != "" {
		msg := r.message + " "
		if x := width - len([]rune(msg)); x > len([]rune(left)) {
			r.writeString(x, y, msg, r.theme.Status)
		}
	}
}

func (r *Renderer) writeString(x, y int, s string, style core.Style) {
	for i, ch := range []rune(s) {
		r.backend.SetCell(x+i, y, core.NewStyledCell(ch, style))
	}
}

// setCell draws inside the diagram area only, leaving the status row alone.
func (r *Renderer) setCell(x, y int, cell core.Cell) {
	if x < 0 || y < 0 || x >= r.view.Width() || y >= r.view.Height() {
		return
	}
	r.backend.SetCell(x, y, cell)
}

// segmentVisible rejects segments entirely off one side of the view.
func (r *Renderer) segmentVisible(x0, y0, x1, y1 int) bool {
	w, h := r.view.Width(), r.view.Height()
	switch {
	case x0 < 0 && x1 < 0, y0 < 0 && y1 < 0:
		return false
	case x0 >= w && x1 >= w, y0 >= h && y1 >= h:
		return false
	}
	return true
}

// String returns a short description for logs.
func (r *Renderer) String() string {
	sx, sy := r.view.Scale()
	return fmt.Sprintf("renderer{%dx%d scale=%.2fx%.2f frames=%d}", r.view.Width(), r.view.Height(), sx, sy, r.frameCount)
}
