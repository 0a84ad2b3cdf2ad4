package wordgraph

import (
	"bytes"
	"strconv"
)

// Dump returns one line per distinct node in breadth-first order: the
// node's label, a '*' if it is accepting, then its transitions as
// symbol:label pairs. It is meant for debugging; call Renumber first for
// consecutive labels.
//
//	0 c:1
//	1 a:2
//	2 r:3 t:4
//	3*
//	4* s:3
func (g *Graph) Dump() string {
	var buf bytes.Buffer
	for id := range g.Nodes() {
		n := g.nodes[id]
		buf.WriteString(strconv.Itoa(n.label))
		if n.accepting {
			buf.WriteByte('*')
		}
		for _, ch := range n.symbols() {
			buf.WriteByte(' ')
			buf.WriteRune(ch)
			buf.WriteByte(':')
			buf.WriteString(strconv.Itoa(g.nodes[n.edges[ch]].label))
		}
		buf.WriteByte('\n')
	}
	return buf.String()
}
