package wordgraph

import "iter"

// TraversalMode selects how Traverse walks the graph.
type TraversalMode int

const (
	// IdentityMode visits every reachable node exactly once, breadth-first.
	// The prefix passed along is the shortest one leading to the node.
	IdentityMode TraversalMode = iota

	// PathMode visits every root-to-node path, depth-first in ascending
	// symbol order. A node shared by several paths is visited once per path.
	PathMode
)

func (m TraversalMode) String() string {
	switch m {
	case IdentityMode:
		return "identity"
	case PathMode:
		return "path"
	}
	return "unknown"
}

// Traverse calls fn for each node reached in the given mode until fn
// returns false.
func (g *Graph) Traverse(mode TraversalMode, fn func(prefix string, id NodeID) bool) error {
	var seq iter.Seq2[string, NodeID]
	switch mode {
	case IdentityMode:
		seq = g.Reachable()
	case PathMode:
		seq = g.Paths()
	default:
		return NewError(ErrCodeUnsupportedTraversal, "traversal mode %d", int(mode))
	}

	for prefix, id := range seq {
		if !fn(prefix, id) {
			break
		}
	}
	return nil
}

// Nodes yields each reachable node once. Every call starts a new traversal.
func (g *Graph) Nodes() iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		for _, id := range g.Reachable() {
			if !yield(id) {
				return
			}
		}
	}
}

// Reachable yields each reachable node once, breadth-first, together with
// the shortest prefix leading to it. Every call starts a new traversal.
func (g *Graph) Reachable() iter.Seq2[string, NodeID] {
	type item struct {
		prefix string
		id     NodeID
	}
	return func(yield func(string, NodeID) bool) {
		seen := NewNodeSet(g.root)
		queue := []item{{id: g.root}}
		for len(queue) > 0 {
			it := queue[0]
			queue = queue[1:]
			if !yield(it.prefix, it.id) {
				return
			}

			n := g.nodes[it.id]
			for _, ch := range n.symbols() {
				next := n.edges[ch]
				if seen.Has(next) {
					continue
				}
				seen.Add(next)
				queue = append(queue, item{prefix: it.prefix + string(ch), id: next})
			}
		}
	}
}

// Paths yields every (prefix, node) pair reachable from the root, without
// deduplicating shared nodes. The root is yielded first with "".
func (g *Graph) Paths() iter.Seq2[string, NodeID] {
	return func(yield func(string, NodeID) bool) {
		var walk func(prefix string, id NodeID) bool
		walk = func(prefix string, id NodeID) bool {
			if !yield(prefix, id) {
				return false
			}
			n := g.nodes[id]
			for _, ch := range n.symbols() {
				if !walk(prefix+string(ch), n.edges[ch]) {
					return false
				}
			}
			return true
		}
		walk("", g.root)
	}
}

// Words yields every recognized word in lexicographic order.
func (g *Graph) Words() iter.Seq[string] {
	return func(yield func(string) bool) {
		for prefix, id := range g.Paths() {
			if g.nodes[id].accepting && !yield(prefix) {
				return
			}
		}
	}
}

// EnumFn is called by Enumerate for every prefix. index is the number of
// recognized words ordered before the prefix.
type EnumFn = func(index int, word []rune, final bool) EnumerationResult

// EnumerationResult is returned by the enumeration function to indicate
// whether enumeration should continue below this prefix or stop altogether.
type EnumerationResult = int

const (
	// Continue enumerating all words with this prefix
	Continue EnumerationResult = iota

	// Skip will skip all words with this prefix
	Skip

	// Stop will immediately stop enumerating words
	Stop
)

// Enumerate will call fn for every prefix in the graph, in lexicographic
// order. Return Continue to descend, Skip to skip this branch, or Stop to
// stop enumeration.
func (g *Graph) Enumerate(fn EnumFn) {
	g.enumerate(0, g.root, nil, fn)
}

func (g *Graph) enumerate(index int, id NodeID, runes []rune, fn EnumFn) EnumerationResult {
	n := g.nodes[id]

	result := fn(index, runes, n.accepting)
	if result != Continue {
		return result
	}

	if n.accepting {
		index++
	}

	l := len(runes)
	runes = append(runes, 0)

	for _, ch := range n.symbols() {
		next := n.edges[ch]
		runes[l] = ch
		result = g.enumerate(index, next, runes, fn)
		if result == Stop {
			break
		}
		index += g.wordCount(next)
	}

	return result
}
