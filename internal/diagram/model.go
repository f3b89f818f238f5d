package diagram

import (
	"errors"
	"slices"

	"github.com/google/uuid"

	"github.com/dshills/linkdraw/internal/geom"
)

var (
	// ErrSelfLink is returned when a link would connect a node to itself.
	ErrSelfLink = errors.New("link source and target are the same node")

	// ErrDuplicateLink is returned when an identical link already exists.
	ErrDuplicateLink = errors.New("link already exists")

	// ErrUnknownNode is returned when a link endpoint is not in the model.
	ErrUnknownNode = errors.New("node not in model")
)

// Node is a labelled point in diagram space.
type Node struct {
	ID    uuid.UUID
	Label string
	Pos   geom.Point
}

// NewNode creates a node with a fresh ID.
func NewNode(label string, pos geom.Point) *Node {
	return &Node{ID: uuid.New(), Label: label, Pos: pos}
}

// Link is a directed edge between two nodes.
type Link struct {
	ID     uuid.UUID
	Source *Node
	Target *Node

	// Marked is true while the lasso path crosses the link.
	Marked bool

	// highlight animates the hover indicator.
	highlight Spring
}

// Segment returns the straight segment between the link's node centers.
func (l *Link) Segment() geom.Segment {
	return geom.Seg(l.Source.Pos, l.Target.Pos)
}

// Highlight returns the hover indicator progress in [0, 100].
func (l *Link) Highlight() float64 {
	return l.highlight.Value()
}

// PendingLink is a link being drawn from Source toward the pointer.
type PendingLink struct {
	Source *Node

	// Pos is the free end, in diagram space.
	Pos geom.Point

	// PossibleTarget is the node under the pointer, or nil.
	PossibleTarget *Node
}

// NewPendingLink starts a pending link at its source node.
func NewPendingLink(source *Node) *PendingLink {
	return &PendingLink{Source: source, Pos: source.Pos}
}

// Model is the diagram: nodes, links, and transient editing state.
type Model struct {
	nodes   []*Node
	links   []*Link
	pending *PendingLink
	hovered *Link

	spring SpringConfig
}

// NewModel creates an empty model.
func NewModel() *Model {
	return &Model{spring: DefaultSpringConfig()}
}

// SetSpringConfig changes the spring used by link hover animations.
func (m *Model) SetSpringConfig(cfg SpringConfig) {
	m.spring = cfg
	for _, l := range m.links {
		l.highlight.Config = cfg
	}
}

// AddNode appends a new node and returns it.
func (m *Model) AddNode(label string, pos geom.Point) *Node {
	n := NewNode(label, pos)
	m.nodes = append(m.nodes, n)
	return n
}

// AddLink connects source to target.
func (m *Model) AddLink(source, target *Node) (*Link, error) {
	if source == target {
		return nil, ErrSelfLink
	}
	if !m.hasNode(source) || !m.hasNode(target) {
		return nil, ErrUnknownNode
	}
	for _, l := range m.links {
		if l.Source == source && l.Target == target {
			return nil, ErrDuplicateLink
		}
	}

	l := &Link{
		ID:        uuid.New(),
		Source:    source,
		Target:    target,
		highlight: Spring{Config: m.spring},
	}
	m.links = append(m.links, l)
	return l, nil
}

// RemoveLink deletes l. It reports whether the link was present.
func (m *Model) RemoveLink(l *Link) bool {
	i := slices.Index(m.links, l)
	if i < 0 {
		return false
	}
	m.links = slices.Delete(m.links, i, i+1)
	if m.hovered == l {
		m.hovered = nil
	}
	return true
}

// RemoveMarked deletes every marked link and returns how many were removed.
func (m *Model) RemoveMarked() int {
	before := len(m.links)
	m.links = slices.DeleteFunc(m.links, func(l *Link) bool { return l.Marked })
	if m.hovered != nil && m.hovered.Marked {
		m.hovered = nil
	}
	return before - len(m.links)
}

// Clear removes every node and link.
func (m *Model) Clear() {
	m.nodes = nil
	m.links = nil
	m.pending = nil
	m.hovered = nil
}

func (m *Model) hasNode(n *Node) bool {
	return n != nil && slices.Contains(m.nodes, n)
}

// Nodes returns the nodes in creation order. The slice must not be modified.
func (m *Model) Nodes() []*Node {
	return m.nodes
}

// Links returns the links in creation order. The slice must not be modified.
func (m *Model) Links() []*Link {
	return m.links
}

// NodeByID looks up a node by ID.
func (m *Model) NodeByID(id uuid.UUID) (*Node, bool) {
	for _, n := range m.nodes {
		if n.ID == id {
			return n, true
		}
	}
	return nil, false
}

// NodeByLabel returns the first node with the given label.
func (m *Model) NodeByLabel(label string) (*Node, bool) {
	for _, n := range m.nodes {
		if n.Label == label {
			return n, true
		}
	}
	return nil, false
}

// Pending returns the link being drawn, or nil.
func (m *Model) Pending() *PendingLink {
	return m.pending
}

// SetPending sets or clears the link being drawn.
func (m *Model) SetPending(p *PendingLink) {
	m.pending = p
}

// Hovered returns the link under the pointer, or nil.
func (m *Model) Hovered() *Link {
	return m.hovered
}

// SetHovered moves the hover indicator to l (nil clears it). The previous
// link's animation retracts and the new one extends.
func (m *Model) SetHovered(l *Link) {
	if m.hovered == l {
		return
	}
	if m.hovered != nil {
		m.hovered.highlight.SetTarget(0)
	}
	m.hovered = l
	if l != nil {
		l.highlight.SetTarget(100)
	}
}

// Step advances every link animation by dt seconds. It reports whether
// any animation is still moving.
func (m *Model) Step(dt float64) bool {
	moving := false
	for _, l := range m.links {
		l.highlight.Step(dt)
		if !l.highlight.AtRest() {
			moving = true
		}
	}
	return moving
}
