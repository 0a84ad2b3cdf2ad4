/*
Package wordgraph builds a compact recognizer for a finite set of words: a
Directed Acyclic Word Graph (DAWG), also known as a minimal acyclic word graph.

Words are first inserted into a trie, in any order. Prefixes are shared
automatically because insertion follows existing transitions, but suffixes are
not. Once all words are in, Minimize runs a single bottom-up pass from the
leaves to the root, fusing every group of nodes that have the same acceptance
and the same outgoing (symbol, target) transitions. The result recognizes
exactly the inserted words with far fewer nodes.

In general, to use it you first create a graph with wordgraph.New() and Insert
words. Then call Minimize. The graph can be queried at any time with Accepts,
FindAllPrefixesOf, IndexOf, Words and Enumerate; the answers are the same before
and after minimization. After Minimize, Insert fails with an error whose code
is ErrCodeInvalidState.

Nodes are kept in an arena owned by the Graph and addressed by NodeID handles.
Every node also records which parents point at it, and on which symbols; these
back links exist only so that Fuse can redirect parents and never keep a node
alive on their own.

A Graph is not safe for concurrent use.
*/
package wordgraph
