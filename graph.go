package wordgraph

import (
	"iter"
	"maps"
	"slices"
	"unicode/utf8"
)

// FindResult is the result of a prefix lookup. It contains both the word
// found and its index in lexicographic order of all recognized words.
type FindResult struct {
	Word  string
	Index int
}

// Finder is the interface for querying a graph. It is valid both before
// and after minimization, with identical answers.
type Finder interface {
	Accepts(word string) bool
	FindAllPrefixesOf(input string) []FindResult
	IndexOf(word string) int
	Words() iter.Seq[string]
	Enumerate(fn EnumFn)
	CountWords() int
	CountNodes() int
	CountEdges() int
	Dump() string
}

// Builder is the interface for constructing a graph. Words may be inserted
// in any order until Minimize is called.
type Builder interface {
	Insert(word string) error
	Minimize(opts ...Option) error
}

// Graph is a deterministic acyclic transition graph over runes. It starts
// out as a trie and becomes a minimal DAWG after Minimize.
type Graph struct {
	nodes     map[NodeID]*node
	root      NodeID
	nextID    NodeID
	minimized bool

	// number of recognized words reachable from each node, including the
	// node itself. Filled lazily, dropped on any structural change.
	counts map[NodeID]int
}

var (
	_ Finder  = (*Graph)(nil)
	_ Builder = (*Graph)(nil)
)

// New creates a graph holding only a non-accepting root.
func New() *Graph {
	g := &Graph{nodes: make(map[NodeID]*node)}
	g.root = g.newNode()
	return g
}

// Insert adds a word. Inserting a word twice is harmless. It fails with
// ErrCodeInvalidState once the graph is minimized, and with
// ErrCodeInvalidArgument if word is not valid UTF-8.
func (g *Graph) Insert(word string) error {
	if g.minimized {
		return NewError(ErrCodeInvalidState, "insert %q: graph is minimized", word)
	}
	if !utf8.ValidString(word) {
		return NewError(ErrCodeInvalidArgument, "insert %q: not valid UTF-8", word)
	}

	n := g.root
	for _, ch := range word {
		n, _ = g.transitionOn(n, ch, true)
	}
	g.nodes[n].accepting = true
	g.counts = nil
	return nil
}

// Accepts reports whether word is recognized.
func (g *Graph) Accepts(word string) bool {
	n, ok := g.Walk(word)
	return ok && g.nodes[n].accepting
}

// Walk follows word from the root and returns the node it ends in. The
// second result is false if some transition along the way is missing or
// word is not valid UTF-8.
func (g *Graph) Walk(word string) (NodeID, bool) {
	if !utf8.ValidString(word) {
		return 0, false
	}
	n := g.root
	for _, ch := range word {
		next, ok := g.transitionOn(n, ch, false)
		if !ok {
			return 0, false
		}
		n = next
	}
	return n, true
}

// Root returns the handle of the root node.
func (g *Graph) Root() NodeID { return g.root }

// Minimized reports whether Minimize has completed.
func (g *Graph) Minimized() bool { return g.minimized }

// Contains reports whether id names a live node.
func (g *Graph) Contains(id NodeID) bool {
	_, ok := g.nodes[id]
	return ok
}

// IsAccepting reports whether id is an accepting node.
func (g *Graph) IsAccepting(id NodeID) bool {
	n, ok := g.nodes[id]
	return ok && n.accepting
}

// Label returns the display ordinal of id.
func (g *Graph) Label(id NodeID) int {
	if n, ok := g.nodes[id]; ok {
		return n.label
	}
	return -1
}

// Transitions yields the outgoing transitions of id in ascending symbol order.
func (g *Graph) Transitions(id NodeID) iter.Seq2[rune, NodeID] {
	return func(yield func(rune, NodeID) bool) {
		n, ok := g.nodes[id]
		if !ok {
			return
		}
		for _, ch := range n.symbols() {
			if !yield(ch, n.edges[ch]) {
				return
			}
		}
	}
}

// Parents returns, for each node holding a transition into id, the symbols
// of those transitions in ascending order.
func (g *Graph) Parents(id NodeID) map[NodeID][]rune {
	n, ok := g.nodes[id]
	if !ok {
		return nil
	}
	parents := make(map[NodeID][]rune, len(n.parents))
	for p, syms := range n.parents {
		parents[p] = slices.Sorted(maps.Keys(syms))
	}
	return parents
}

// FindAllPrefixesOf returns all recognized words that are a prefix of the
// input, shortest first.
func (g *Graph) FindAllPrefixesOf(input string) []FindResult {
	var results []FindResult
	skipped := 0
	n := g.nodes[g.root]

	// for each character of the input
	for pos, letter := range input {
		if n.accepting {
			results = append(results, FindResult{Word: input[:pos], Index: skipped})
			skipped++
		}

		// invalid UTF-8 never matches a transition
		if letter == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(input[pos:]); size == 1 {
				return results
			}
		}

		next, ok := n.edges[letter]
		if !ok {
			return results
		}
		skipped += g.skippedBefore(n, letter)
		n = g.nodes[next]
	}

	if n.accepting {
		results = append(results, FindResult{Word: input, Index: skipped})
	}

	return results
}

// IndexOf returns the position of word in the lexicographic order of all
// recognized words, or -1 if it is not recognized.
func (g *Graph) IndexOf(word string) int {
	if !utf8.ValidString(word) {
		return -1
	}
	skipped := 0
	n := g.nodes[g.root]

	for _, letter := range word {
		next, ok := n.edges[letter]
		if !ok {
			return -1
		}
		if n.accepting {
			skipped++
		}
		skipped += g.skippedBefore(n, letter)
		n = g.nodes[next]
	}

	if n.accepting {
		return skipped
	}
	return -1
}

// skippedBefore counts the words reachable through transitions of n on
// symbols smaller than ch.
func (g *Graph) skippedBefore(n *node, ch rune) int {
	total := 0
	for sym, next := range n.edges {
		if sym < ch {
			total += g.wordCount(next)
		}
	}
	return total
}

// wordCount returns how many recognized words end at or below id.
func (g *Graph) wordCount(id NodeID) int {
	if g.counts == nil {
		g.counts = make(map[NodeID]int)
	}
	if count, ok := g.counts[id]; ok {
		return count
	}

	n := g.nodes[id]
	count := 0
	if n.accepting {
		count++
	}
	for _, next := range n.edges {
		count += g.wordCount(next)
	}

	g.counts[id] = count
	return count
}

// CountWords returns the number of recognized words, counted once per
// accepting root-to-node path.
func (g *Graph) CountWords() int {
	count := 0
	for _, id := range g.Paths() {
		if g.nodes[id].accepting {
			count++
		}
	}
	return count
}

// CountNodes returns the number of distinct reachable nodes.
func (g *Graph) CountNodes() int {
	count := 0
	for range g.Nodes() {
		count++
	}
	return count
}

// CountEdges returns the number of distinct transitions between reachable
// nodes.
func (g *Graph) CountEdges() int {
	count := 0
	for id := range g.Nodes() {
		count += len(g.nodes[id].edges)
	}
	return count
}

// Leaves returns every reachable node without outgoing transitions,
// whether accepting or not.
func (g *Graph) Leaves() NodeSet {
	leaves := make(NodeSet)
	for id := range g.Nodes() {
		if g.nodes[id].isLeaf() {
			leaves.Add(id)
		}
	}
	return leaves
}

// Renumber assigns consecutive display labels in breadth-first order,
// starting with 0 at the root. It has no effect on the language.
func (g *Graph) Renumber() {
	next := 0
	for id := range g.Nodes() {
		g.nodes[id].label = next
		next++
	}
}
