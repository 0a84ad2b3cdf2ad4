package wordgraph

import (
	"fmt"
	"maps"
	"slices"
)

// NodeID is a stable handle to a node in a Graph's arena. Handles are never
// reused: a node removed by Fuse leaves its handle dangling forever.
type NodeID int

// edgeStart identifies one transition by its source node and symbol. As a
// parent link it reads "parent node owns a transition on ch into me".
type edgeStart struct {
	node NodeID
	ch   rune
}

func (edge edgeStart) String() string {
	return fmt.Sprintf("(%d, '%c')", edge.node, edge.ch)
}

type node struct {
	label     int // display only, see Graph.Renumber
	accepting bool
	edges     map[rune]NodeID
	parents   map[NodeID]map[rune]struct{}
}

func (n *node) isLeaf() bool {
	return len(n.edges) == 0
}

// symbols returns the node's outgoing symbols in ascending order.
func (n *node) symbols() []rune {
	return slices.Sorted(maps.Keys(n.edges))
}

func (n *node) clone() *node {
	c := &node{
		label:     n.label,
		accepting: n.accepting,
		edges:     maps.Clone(n.edges),
		parents:   make(map[NodeID]map[rune]struct{}, len(n.parents)),
	}
	for p, syms := range n.parents {
		c.parents[p] = maps.Clone(syms)
	}
	return c
}

// NodeSet is an unordered set of node handles.
type NodeSet map[NodeID]struct{}

// NewNodeSet returns a set holding ids.
func NewNodeSet(ids ...NodeID) NodeSet {
	s := make(NodeSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Add inserts id into the set.
func (s NodeSet) Add(id NodeID) { s[id] = struct{}{} }

// Has reports whether id is in the set.
func (s NodeSet) Has(id NodeID) bool {
	_, ok := s[id]
	return ok
}

// Sorted returns the members in ascending handle order.
func (s NodeSet) Sorted() []NodeID {
	return slices.Sorted(maps.Keys(s))
}

// newNode allocates a fresh non-accepting node with no transitions. Each
// link seeds the node's parent map.
func (g *Graph) newNode(links ...edgeStart) NodeID {
	id := g.nextID
	g.nextID++
	g.nodes[id] = &node{
		label:   int(id),
		edges:   make(map[rune]NodeID),
		parents: make(map[NodeID]map[rune]struct{}),
	}
	for _, link := range links {
		g.addParent(id, link.node, link.ch)
	}
	return id
}

// transitionOn follows the transition on ch out of from. When it is missing
// and create is set, a new node is attached there and returned.
func (g *Graph) transitionOn(from NodeID, ch rune, create bool) (NodeID, bool) {
	n := g.nodes[from]
	if next, ok := n.edges[ch]; ok {
		return next, true
	}
	if !create {
		return 0, false
	}
	next := g.newNode(edgeStart{node: from, ch: ch})
	n.edges[ch] = next
	return next, true
}

func (g *Graph) addParent(child, parent NodeID, ch rune) {
	c := g.nodes[child]
	syms, ok := c.parents[parent]
	if !ok {
		syms = make(map[rune]struct{})
		c.parents[parent] = syms
	}
	syms[ch] = struct{}{}
}
