package wordgraph

import (
	"bytes"
	"io"
	"maps"
	"slices"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
)

// ProgressFunc receives an estimate of minimization progress. done never
// decreases between calls and reaches total on success.
type ProgressFunc func(done, total int)

// Option configures Minimize.
type Option func(*minimizeConfig)

type minimizeConfig struct {
	logger   *log.Logger
	progress ProgressFunc
}

// WithLogger sends minimization diagnostics to l. Fusions are logged at
// debug level and the summary at info level.
func WithLogger(l *log.Logger) Option {
	return func(c *minimizeConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithProgress registers fn to be called as nodes are finalized.
func WithProgress(fn ProgressFunc) Option {
	return func(c *minimizeConfig) {
		if fn != nil {
			c.progress = fn
		}
	}
}

// Minimize turns the trie into a minimal DAWG by fusing every group of
// suffix-equivalent nodes. Afterwards Insert and Minimize fail with
// ErrCodeInvalidState.
//
// The work is done on a copy of the graph. If it fails the graph keeps its
// previous shape and remains open for insertion.
func (g *Graph) Minimize(opts ...Option) error {
	if g.minimized {
		return NewError(ErrCodeInvalidState, "graph is already minimized")
	}

	cfg := minimizeConfig{
		logger:   log.New(io.Discard),
		progress: func(int, int) {},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	start := time.Now()
	before := len(g.nodes)

	work := g.clone()
	if err := work.minimize(&cfg); err != nil {
		return err
	}

	g.nodes = work.nodes
	g.root = work.root
	g.nextID = work.nextID
	g.counts = nil
	g.minimized = true

	cfg.logger.Info("minimized", "nodes_before", before, "nodes_after", len(g.nodes),
		"elapsed", time.Since(start).Round(time.Millisecond))
	return nil
}

func (g *Graph) clone() *Graph {
	c := &Graph{
		nodes:  make(map[NodeID]*node, len(g.nodes)),
		root:   g.root,
		nextID: g.nextID,
	}
	for id, n := range g.nodes {
		c.nodes[id] = n.clone()
	}
	return c
}

// minimize is a single bottom-up pass. A node's equivalence class is known
// once all of its children are finalized, so classes are settled from the
// leaves towards the root.
func (g *Graph) minimize(cfg *minimizeConfig) error {
	total := len(g.nodes)

	var queue []NodeID
	queued := make(NodeSet)
	enqueue := func(id NodeID) {
		if !queued.Has(id) {
			queued.Add(id)
			queue = append(queue, id)
		}
	}

	// leaves are grouped by acceptance; Fuse rejects mixed groups
	accepting, rejecting := make(NodeSet), make(NodeSet)
	for id := range g.Leaves() {
		if g.nodes[id].accepting {
			accepting.Add(id)
		} else {
			rejecting.Add(id)
		}
	}
	for _, group := range []NodeSet{rejecting, accepting} {
		if len(group) == 0 {
			continue
		}
		rep, err := g.representative(group, cfg.logger)
		if err != nil {
			return err
		}
		enqueue(rep)
	}

	finalized := make(NodeSet)
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		if finalized.Has(s) {
			continue
		}
		finalized.Add(s)
		cfg.progress(len(finalized), total)

		groups := make(map[string]NodeSet)
		var order []string
		for _, p := range slices.Sorted(maps.Keys(g.nodes[s].parents)) {
			if finalized.Has(p) || queued.Has(p) || !g.childrenIn(p, finalized) {
				continue
			}
			sig := g.signature(p)
			if _, ok := groups[sig]; !ok {
				groups[sig] = make(NodeSet)
				order = append(order, sig)
			}
			groups[sig].Add(p)
		}

		for _, sig := range order {
			rep, err := g.representative(groups[sig], cfg.logger)
			if err != nil {
				return err
			}
			enqueue(rep)
		}
	}

	cfg.progress(total, total)
	return nil
}

// representative returns the single member of a one-node group, or fuses a
// larger group into a new node.
func (g *Graph) representative(group NodeSet, logger *log.Logger) (NodeID, error) {
	if len(group) == 1 {
		for id := range group {
			return id, nil
		}
	}
	id, err := g.Fuse(group)
	if err != nil {
		return 0, err
	}
	logger.Debug("fused", "members", len(group), "node", id, "accepting", g.nodes[id].accepting)
	return id, nil
}

func (g *Graph) childrenIn(id NodeID, set NodeSet) bool {
	for _, child := range g.nodes[id].edges {
		if !set.Has(child) {
			return false
		}
	}
	return true
}

// signature encodes acceptance and the (symbol, target) pairs of a node.
// Two nodes with equal signatures recognize the same suffix language once
// their children are finalized.
func (g *Graph) signature(id NodeID) string {
	n := g.nodes[id]
	buff := bytes.Buffer{}
	for _, ch := range n.symbols() {
		buff.WriteByte('_')
		buff.WriteRune(ch)
		buff.WriteByte(':')
		buff.WriteString(strconv.Itoa(int(n.edges[ch])))
	}

	if n.accepting {
		buff.WriteByte('!')
	}

	return buff.String()
}

// Fuse replaces every node in nodes by one new node with their shared
// acceptance and the union of their transitions. Every parent transition
// into a member is redirected to the new node and the members are removed.
//
// Fuse does not check that the members are equivalent; fusing nodes with
// different suffix languages changes the recognized language. Nothing is
// modified when an error is returned.
func (g *Graph) Fuse(nodes NodeSet) (NodeID, error) {
	if len(nodes) == 0 {
		return 0, NewError(ErrCodeInvalidArgument, "fuse: empty node set")
	}

	members := nodes.Sorted()
	for _, id := range members {
		if _, ok := g.nodes[id]; !ok {
			return 0, NewError(ErrCodeInvalidArgument, "fuse: unknown node %d", id)
		}
	}

	accepting := g.nodes[members[0]].accepting
	edges := make(map[rune]NodeID)
	for _, id := range members {
		n := g.nodes[id]
		if n.accepting != accepting {
			return 0, NewError(ErrCodeInvalidArgument, "fuse: mixed acceptance (nodes %d and %d)", members[0], id)
		}
		for ch, next := range n.edges {
			if nodes.Has(next) {
				return 0, NewError(ErrCodeInvalidArgument, "fuse: node %d has a transition into node %d of the same set", id, next)
			}
			if prev, ok := edges[ch]; ok && prev != next {
				return 0, NewError(ErrCodeInternalInvariant,
					"fuse: conflicting targets %d and %d on '%c'", prev, next, ch)
			}
			edges[ch] = next
		}
	}

	fused := g.newNode()
	fn := g.nodes[fused]
	fn.accepting = accepting
	fn.edges = edges

	for _, id := range members {
		n := g.nodes[id]

		// children forget the member and learn the fused node
		for _, child := range n.edges {
			delete(g.nodes[child].parents, id)
		}

		// parents are rewired to the fused node
		for parent, syms := range n.parents {
			pn := g.nodes[parent]
			for ch := range syms {
				pn.edges[ch] = fused
				g.addParent(fused, parent, ch)
			}
		}

		if id == g.root {
			g.root = fused
		}
		delete(g.nodes, id)
	}

	for ch, child := range edges {
		g.addParent(child, fused, ch)
	}

	g.counts = nil
	return fused, nil
}
