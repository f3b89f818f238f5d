package editor

import (
	"errors"
	"strconv"

	"github.com/dshills/linkdraw/internal/diagram"
	"github.com/dshills/linkdraw/internal/drag"
	"github.com/dshills/linkdraw/internal/geom"
	"github.com/dshills/linkdraw/internal/input/mouse"
)

// Behavior names, used in logs and the status line.
const (
	MoveNodeName = "move-node"
	AddLinkName  = "add-link"
	SelectName   = "select"
)

// CoordinateSpace maps host screen coordinates to diagram coordinates.
// The view layer owns it; the editor only calls it from drag subscribers.
type CoordinateSpace interface {
	ToLocal(screen geom.Point) geom.Point
}

// IdentitySpace uses screen coordinates as diagram coordinates.
type IdentitySpace struct{}

// ToLocal returns screen unchanged.
func (IdentitySpace) ToLocal(screen geom.Point) geom.Point {
	return screen
}

// Logger is the subset of the application logger the editor uses.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}

// Config tunes hit testing and drag policy.
type Config struct {
	// NodeRadius is the node hit radius in diagram units.
	NodeRadius float64

	// ArrowLength is the arrowhead length in diagram units.
	ArrowLength float64

	// LinkTolerance is how far from a link the pointer may be to hover it.
	LinkTolerance float64

	// Policy resolves a drag started while another of the same kind is active.
	Policy drag.Policy
}

// DefaultConfig returns the default editor configuration.
func DefaultConfig() Config {
	return Config{
		NodeRadius:    10,
		ArrowLength:   8,
		LinkTolerance: 4,
		Policy:        drag.Supersede,
	}
}

// Option configures an Editor.
type Option func(*Editor)

// WithLogger sets the logger.
func WithLogger(l Logger) Option {
	return func(e *Editor) {
		if l != nil {
			e.log = l
		}
	}
}

// WithSpace sets the coordinate space used to convert pointer positions.
func WithSpace(space CoordinateSpace) Option {
	return func(e *Editor) {
		if space != nil {
			e.space = space
		}
	}
}

// Editor wires pointer input, drag behaviors and the diagram model.
type Editor struct {
	model *diagram.Model
	hub   *mouse.Hub
	space CoordinateSpace
	cfg   Config
	log   Logger

	moveNode *drag.Behavior[*diagram.Node]
	addLink  *drag.Behavior[*diagram.PendingLink]
	sel      *drag.Behavior[*diagram.Lasso]

	// lasso is the selection path while a select drag is active.
	lasso *diagram.Lasso

	hoverNode *diagram.Node
	pointer   geom.Point

	removers []func()
}

// New creates an editor listening to hub.
func New(model *diagram.Model, hub *mouse.Hub, cfg Config, opts ...Option) *Editor {
	e := &Editor{
		model: model,
		hub:   hub,
		space: IdentitySpace{},
		cfg:   cfg,
		log:   nopLogger{},
	}
	for _, opt := range opts {
		opt(e)
	}

	policy := drag.WithPolicy(cfg.Policy)
	e.moveNode = drag.NewBehavior[*diagram.Node](MoveNodeName, hub, policy)
	e.addLink = drag.NewBehavior[*diagram.PendingLink](AddLinkName, hub, policy)
	e.sel = drag.NewBehavior[*diagram.Lasso](SelectName, hub, policy)

	e.removers = append(e.removers,
		hub.OnMove(e.handleMove),
		hub.OnPress(e.handlePress),
	)
	return e
}

// Close cancels any active drag and detaches from the hub.
func (e *Editor) Close() {
	e.CancelAll()
	for _, remove := range e.removers {
		remove()
	}
	e.removers = nil
}

// SetConfig replaces the tuning values and the start policy of every
// behavior. Drags already in progress keep running.
func (e *Editor) SetConfig(cfg Config) {
	e.cfg = cfg
	e.moveNode.SetPolicy(cfg.Policy)
	e.addLink.SetPolicy(cfg.Policy)
	e.sel.SetPolicy(cfg.Policy)
}

// Model returns the diagram model.
func (e *Editor) Model() *diagram.Model {
	return e.model
}

// MoveNode returns the node-dragging behavior.
func (e *Editor) MoveNode() *drag.Behavior[*diagram.Node] {
	return e.moveNode
}

// AddLink returns the link-drawing behavior.
func (e *Editor) AddLink() *drag.Behavior[*diagram.PendingLink] {
	return e.addLink
}

// Select returns the lasso behavior.
func (e *Editor) Select() *drag.Behavior[*diagram.Lasso] {
	return e.sel
}

// Lasso returns the selection path being drawn, or nil.
func (e *Editor) Lasso() *diagram.Lasso {
	return e.lasso
}

// handlePress routes a button press to the interaction it starts.
func (e *Editor) handlePress(ev mouse.Event) {
	screen := ev.Position.Point()
	local := e.space.ToLocal(screen)
	e.pointer = local
	node := e.model.NodeAt(local, e.cfg.NodeRadius)

	switch ev.Button {
	case mouse.ButtonLeft:
		if op, ok := e.addLink.Current(); ok {
			e.dropLink(op, node)
			return
		}
		switch {
		case node != nil:
			e.startMoveNode(node, screen)
		case ev.IsDoubleClick():
			e.addNodeAt(local)
		default:
			e.startSelect(local, screen)
		}

	case mouse.ButtonRight:
		if node != nil {
			e.startAddLink(node, screen)
		}
	}
}

func (e *Editor) startMoveNode(node *diagram.Node, screen geom.Point) {
	op, err := e.moveNode.StartAt(node, screen)
	if err != nil {
		e.log.Debug("start %s: %v", MoveNodeName, err)
		return
	}
	op.EndOnRelease(mouse.ButtonLeft)

	op.OnMove().Subscribe(func(ev drag.MoveEvent[*diagram.Node]) {
		ev.Payload.Pos = e.space.ToLocal(ev.Position)
		e.model.RecomputeMarks(e.lasso)
	})
	op.OnEnd().Subscribe(func(ev drag.EndEvent[*diagram.Node]) {
		e.log.Debug("node %s moved to %v (cancelled=%v)", ev.Payload.Label, ev.Payload.Pos, ev.Cancelled)
	})
}

func (e *Editor) startAddLink(source *diagram.Node, screen geom.Point) {
	pending := diagram.NewPendingLink(source)

	op, err := e.addLink.StartAt(pending, screen)
	if err != nil {
		e.log.Debug("start %s: %v", AddLinkName, err)
		return
	}
	op.EndOnRelease(mouse.ButtonRight)

	op.OnMove().Subscribe(func(ev drag.MoveEvent[*diagram.PendingLink]) {
		e.model.SetPending(ev.Payload)
		ev.Payload.Pos = e.space.ToLocal(ev.Position)
	})
	op.OnEnd().Subscribe(func(ev drag.EndEvent[*diagram.PendingLink]) {
		e.model.SetPending(nil)

		p := ev.Payload
		if ev.Cancelled || p.PossibleTarget == nil {
			return
		}

		l, err := e.model.AddLink(p.Source, p.PossibleTarget)
		switch {
		case errors.Is(err, diagram.ErrSelfLink), errors.Is(err, diagram.ErrDuplicateLink):
			e.log.Debug("link %s -> %s not added: %v", p.Source.Label, p.PossibleTarget.Label, err)
		case err != nil:
			e.log.Info("add link: %v", err)
		default:
			e.log.Info("linked %s -> %s", l.Source.Label, l.Target.Label)
			e.model.RecomputeMarks(e.lasso)
		}
	})
}

// dropLink finishes the link being drawn on target, creating a node at
// the free end when target is nil.
func (e *Editor) dropLink(op *drag.Operation[*diagram.PendingLink], target *diagram.Node) {
	p := op.Payload()
	if target == nil {
		target = e.addNodeAt(p.Pos)
	}
	p.PossibleTarget = target
	op.End()
}

func (e *Editor) startSelect(local, screen geom.Point) {
	lasso := diagram.NewLasso(local)

	op, err := e.sel.StartAt(lasso, screen)
	if err != nil {
		e.log.Debug("start %s: %v", SelectName, err)
		return
	}
	op.EndOnRelease(mouse.ButtonLeft)

	e.lasso = lasso
	e.model.ClearMarks()

	op.OnMove().Subscribe(func(ev drag.MoveEvent[*diagram.Lasso]) {
		ev.Payload.Extend(e.space.ToLocal(ev.Position))
		e.model.RecomputeMarks(ev.Payload)
	})
	op.OnEnd().Subscribe(func(ev drag.EndEvent[*diagram.Lasso]) {
		if e.lasso == ev.Payload {
			e.lasso = nil
		}
		if ev.Cancelled {
			e.model.ClearMarks()
			return
		}
		e.log.Debug("selection marked %d links", e.model.MarkedCount())
	})
}

func (e *Editor) addNodeAt(local geom.Point) *diagram.Node {
	label := strconv.Itoa(len(e.model.Nodes()) + 1)
	n := e.model.AddNode(label, local)
	e.log.Info("added node %s at %v", label, local)
	return n
}

// handleMove tracks which node or link is under the pointer.
func (e *Editor) handleMove(ev mouse.Event) {
	local := e.space.ToLocal(ev.Position.Point())
	e.pointer = local

	node := e.model.NodeAt(local, e.cfg.NodeRadius)
	if node != e.hoverNode {
		if e.hoverNode != nil {
			e.nodeHover(e.hoverNode, false)
		}
		e.hoverNode = node
		if node != nil {
			e.nodeHover(node, true)
		}
	}

	if node != nil {
		e.model.SetHovered(nil)
		return
	}
	e.model.SetHovered(e.model.LinkAt(local, e.cfg.LinkTolerance))
}

// nodeHover updates the pending link's target as the pointer enters and
// leaves nodes.
func (e *Editor) nodeHover(n *diagram.Node, enter bool) {
	op, ok := e.addLink.Current()
	if !ok {
		return
	}
	if enter {
		op.Payload().PossibleTarget = n
	} else {
		op.Payload().PossibleTarget = nil
	}
}

// HoveredNode returns the node under the pointer, or nil.
func (e *Editor) HoveredNode() *diagram.Node {
	return e.hoverNode
}

// Pointer returns the last pointer position in diagram coordinates.
func (e *Editor) Pointer() geom.Point {
	return e.pointer
}

// NodeHighlighted reports whether n is the source or candidate target of
// the link being drawn.
func (e *Editor) NodeHighlighted(n *diagram.Node) bool {
	return e.addLink.TestPayload(func(p *diagram.PendingLink) bool {
		return p.Source == n || p.PossibleTarget == n
	})
}

// LinkHighlight returns the hover animation progress of l in [0, 100].
func (e *Editor) LinkHighlight(l *diagram.Link) float64 {
	return l.Highlight()
}

// NodeDragging reports whether n is being moved.
func (e *Editor) NodeDragging(n *diagram.Node) bool {
	return e.moveNode.TestPayload(func(d *diagram.Node) bool { return d == n })
}

// CancelAll cancels every active drag. It reports whether any was active.
func (e *Editor) CancelAll() bool {
	cancelled := e.moveNode.Cancel()
	cancelled = e.addLink.Cancel() || cancelled
	cancelled = e.sel.Cancel() || cancelled
	return cancelled
}

// ClearSelection drops the lasso path and every mark.
func (e *Editor) ClearSelection() {
	e.lasso = nil
	e.model.ClearMarks()
}

// DeleteMarked removes the links the lasso marked.
func (e *Editor) DeleteMarked() int {
	n := e.model.RemoveMarked()
	if n > 0 {
		e.log.Info("deleted %d links", n)
	}
	return n
}

// Tick advances animations by dt seconds and reports whether any are
// still running.
func (e *Editor) Tick(dt float64) bool {
	return e.model.Step(dt)
}

// ActiveBehavior returns the name of the active drag behavior, or "".
func (e *Editor) ActiveBehavior() string {
	switch {
	case e.moveNode.IsActive():
		return MoveNodeName
	case e.addLink.IsActive():
		return AddLinkName
	case e.sel.IsActive():
		return SelectName
	default:
		return ""
	}
}

// Config returns the current configuration.
func (e *Editor) Config() Config {
	return e.cfg
}
